// Package sections splits resume text into well-known sections by their headings.
package sections

import (
	"regexp"
	"sort"
	"strings"
)

// Name is one of the recognised section names.
type Name string

const (
	Summary      Name = "Summary"
	Skills       Name = "Skills"
	Projects     Name = "Projects"
	Education    Name = "Education"
	Achievements Name = "Achievements"
)

// Names lists every section in the order patterns are tried.
var Names = []Name{Summary, Skills, Projects, Education, Achievements}

// Heading patterns overlap on purpose: "experience" opens Projects even inside "work experience".
var patterns = map[Name]*regexp.Regexp{
	Summary:      regexp.MustCompile(`(?i)(summary|objective)`),
	Skills:       regexp.MustCompile(`(?i)(skills|technical skills|skill set)`),
	Projects:     regexp.MustCompile(`(?i)(projects|work experience|experience|internship)`),
	Education:    regexp.MustCompile(`(?i)(education|academic|qualification)`),
	Achievements: regexp.MustCompile(`(?i)(achievements|awards|certifications)`),
}

var reWhitespace = regexp.MustCompile(`\s{2,}`)

// Section is a named slice of the resume text.
type Section struct {
	Name    Name   `json:"name"`
	Content string `json:"content"`
}

// Map holds the detected sections in reading order.
type Map []Section

// Lookup returns the content of the named section and whether it was detected.
func (m Map) Lookup(name Name) (string, bool) {
	for _, s := range m {
		if s.Name == name {
			return s.Content, true
		}
	}
	return "", false
}

// NonEmpty counts sections whose content is not blank.
func (m Map) NonEmpty() int {
	n := 0
	for _, s := range m {
		if strings.TrimSpace(s.Content) != "" {
			n++
		}
	}
	return n
}

type heading struct {
	name   Name
	offset int
}

// Segment finds the first heading of every section and assigns it the text up
// to the next detected heading. It returns an empty Map when no heading is found.
func Segment(text string) Map {
	clean := reWhitespace.ReplaceAllString(strings.ReplaceAll(text, "\n", " "), " ")

	var found []heading
	for _, name := range Names {
		if loc := patterns[name].FindStringIndex(clean); loc != nil {
			found = append(found, heading{name: name, offset: loc[0]})
		}
	}

	if len(found) == 0 {
		return Map{}
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].offset < found[j].offset })

	result := make(Map, 0, len(found))
	for i, h := range found {
		end := len(clean)
		if i+1 < len(found) {
			end = found[i+1].offset
		}

		span := clean[h.offset:end]
		if loc := patterns[h.name].FindStringIndex(span); loc != nil {
			span = span[:loc[0]] + span[loc[1]:]
		}

		result = append(result, Section{Name: h.name, Content: strings.TrimSpace(span)})
	}

	return result
}
