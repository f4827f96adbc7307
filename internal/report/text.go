package report

import (
	"fmt"
	"strings"
	"time"
)

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

// RenderText renders a plain-text report for terminals.
func RenderText(r *Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Resume analysis %s\n", r.ID)
	fmt.Fprintf(&b, "Document: %s\n", r.Document)
	fmt.Fprintf(&b, "Generated: %s\n\n", r.CreatedAt.Format(time.RFC3339))

	fmt.Fprintf(&b, "Extraction: %s, %d page(s), OCR used: %s\n", r.Extraction.Method, r.Extraction.Pages, yesNo(r.Extraction.OCRUsed))
	if r.Extraction.Fallback != "" {
		fmt.Fprintf(&b, "Fallback: %s\n", r.Extraction.Fallback)
	}
	for _, w := range r.Extraction.Warnings {
		fmt.Fprintf(&b, "Warning: %s\n", w)
	}

	fmt.Fprintf(&b, "\nResume score: %d%% (%s)\n", r.Analysis.Score, r.Badge)
	fmt.Fprintf(&b, "Word count: %d\n", r.Analysis.WordCount)
	fmt.Fprintf(&b, "Skills (%d): %s\n", r.Analysis.NumSkills(), joinOrNone(r.Analysis.Skills))
	if r.Analysis.JDProvided {
		fmt.Fprintf(&b, "Job match: %d%% (%s)\n", r.Analysis.JDMatchScore, joinOrNone(r.Analysis.JDMatchedSkills))
	}

	fmt.Fprintf(&b, "\nATS score: %d/100\n", r.ATS.Total)
	for _, c := range r.ATS.Components {
		fmt.Fprintf(&b, "  %-10s %2d/%d\n", c.Name, c.Score, c.Max)
	}

	b.WriteString("\nSections:\n")
	if len(r.Sections) == 0 {
		b.WriteString("  none detected\n")
	}
	for _, s := range r.Sections {
		fmt.Fprintf(&b, "  %s: %s\n", s.Name, s.Content)
	}

	b.WriteString("\nSuggestions:\n")
	for _, s := range r.Suggestions {
		fmt.Fprintf(&b, "  - %s\n", s)
	}

	fmt.Fprintf(&b, "\nFeedback:\n%s\n", r.Feedback)

	return b.String()
}

// RenderMarkdown renders the report as GitHub-flavoured markdown.
func RenderMarkdown(r *Report) string {
	var b strings.Builder

	b.WriteString("# Resume analysis\n\n")
	fmt.Fprintf(&b, "- **Document:** %s\n", r.Document)
	fmt.Fprintf(&b, "- **Report ID:** %s\n", r.ID)
	fmt.Fprintf(&b, "- **Generated:** %s\n", r.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "- **Extraction:** %s, %d page(s), OCR used: %s\n", r.Extraction.Method, r.Extraction.Pages, yesNo(r.Extraction.OCRUsed))
	if r.Extraction.Fallback != "" {
		fmt.Fprintf(&b, "- **Fallback:** %s\n", r.Extraction.Fallback)
	}

	b.WriteString("\n## Score\n\n")
	fmt.Fprintf(&b, "**%d%%** (%s), %d words.\n\n", r.Analysis.Score, r.Badge, r.Analysis.WordCount)
	fmt.Fprintf(&b, "Skills (%d): %s\n", r.Analysis.NumSkills(), joinOrNone(r.Analysis.Skills))
	if r.Analysis.JDProvided {
		fmt.Fprintf(&b, "\nJob match: **%d%%** (%s)\n", r.Analysis.JDMatchScore, joinOrNone(r.Analysis.JDMatchedSkills))
	}

	b.WriteString("\n## ATS breakdown\n\n")
	b.WriteString("| Component | Score | Max |\n|---|---|---|\n")
	for _, c := range r.ATS.Components {
		fmt.Fprintf(&b, "| %s | %d | %d |\n", c.Name, c.Score, c.Max)
	}
	fmt.Fprintf(&b, "| **total** | **%d** | 100 |\n", r.ATS.Total)

	b.WriteString("\n## Sections\n\n")
	if len(r.Sections) == 0 {
		b.WriteString("No sections detected.\n")
	}
	for _, s := range r.Sections {
		fmt.Fprintf(&b, "### %s\n\n%s\n\n", s.Name, s.Content)
	}

	b.WriteString("\n## Suggestions\n\n")
	for _, s := range r.Suggestions {
		fmt.Fprintf(&b, "- %s\n", s)
	}

	fmt.Fprintf(&b, "\n## Feedback\n\n%s\n", r.Feedback)

	fmt.Fprintf(&b, "\n## Extracted text\n\n```\n%s\n```\n", r.Preview)

	return b.String()
}
