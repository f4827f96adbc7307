// Package normalize cleans raw PDF and OCR text before analysis.
package normalize

import (
	"regexp"
	"strings"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reDisallowed = regexp.MustCompile(`[^A-Za-z0-9.,;:@/\-\s()&%+*]+`)
	reNewlines   = regexp.MustCompile(`\n{2,}`)
	reSpaces     = regexp.MustCompile(`[^\S\n]{2,}`)
	reUnivers    = regexp.MustCompile(`(?i)\bunivers\.*\b`)
)

// replacements run in order; most glyphs here are already gone after the
// allow-list filter and are kept so the table stays complete.
var replacements = []struct{ old, new string }{
	{" ,", ","},
	{" .", "."},
	{" - ", "-"},
	{"–", "-"},
	{"—", "-"},
	{"…", ""},
	{"•", ""},
	{"§", ""},
	{"ï", ""},
	{"’", "'"},
	{"ﬁ", "fi"},
	{"ﬂ", "fl"},
}

// Normalize strips artifact characters, collapses whitespace and repairs the
// "Univers" OCR truncation. The output is a fixed point of Normalize.
func Normalize(raw string) string {
	if raw == "" {
		return raw
	}
	s := reCRLF.ReplaceAllString(raw, "\n")
	s = reDisallowed.ReplaceAllString(s, " ")
	s = reNewlines.ReplaceAllString(s, "\n")
	s = reSpaces.ReplaceAllString(s, " ")
	for _, r := range replacements {
		s = strings.ReplaceAll(s, r.old, r.new)
	}
	s = reUnivers.ReplaceAllString(s, "University")
	return strings.TrimSpace(s)
}
