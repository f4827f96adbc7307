// Package template renders plain-text resume skeletons from detected sections.
package template

import (
	"embed"
	"errors"
	"fmt"
	"strings"
	texttemplate "text/template"

	"github.com/spigell/resume-analyzer/internal/sections"
)

// Style selects the resume layout.
type Style string

const (
	Modern      Style = "Modern"
	Minimal     Style = "Minimal"
	ATSFriendly Style = "ATS-friendly"
)

// Styles lists the supported styles, default first.
var Styles = []Style{Modern, Minimal, ATSFriendly}

var ErrUnknownStyle = errors.New("unknown template style")

const skillsPlaceholder = "Add your main skills here"

//go:embed templates/*.tmpl
var files embed.FS

var templates = map[Style]*texttemplate.Template{
	Modern:      parse("modern.tmpl"),
	Minimal:     parse("minimal.tmpl"),
	ATSFriendly: parse("ats-friendly.tmpl"),
}

func parse(name string) *texttemplate.Template {
	return texttemplate.Must(texttemplate.New(name).ParseFS(files, "templates/"+name))
}

// ParseStyle resolves a style name case-insensitively. An empty name selects Modern.
func ParseStyle(name string) (Style, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Modern, nil
	}
	for _, s := range Styles {
		if strings.EqualFold(name, string(s)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q (supported: Modern, Minimal, ATS-friendly)", ErrUnknownStyle, name)
}

type data struct {
	Summary      string
	Skills       string
	Projects     string
	Education    string
	Achievements string
}

// Build fills the style's template with section contents and skills.
// Empty sections are replaced with writing hints.
func Build(m sections.Map, skills []string, style Style) (string, error) {
	tpl, ok := templates[style]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}

	d := data{Skills: skillsPlaceholder}
	d.Summary, _ = m.Lookup(sections.Summary)
	d.Projects, _ = m.Lookup(sections.Projects)
	d.Education, _ = m.Lookup(sections.Education)
	d.Achievements, _ = m.Lookup(sections.Achievements)
	if len(skills) > 0 {
		d.Skills = strings.Join(skills, ", ")
	}

	var b strings.Builder
	if err := tpl.Execute(&b, d); err != nil {
		return "", fmt.Errorf("render %s template: %w", style, err)
	}

	return strings.TrimSpace(b.String()), nil
}

// FileName returns the download name for a generated template.
func FileName(style Style) string {
	return "generated_resume_" + strings.ReplaceAll(strings.ToLower(string(style)), " ", "_") + ".txt"
}
