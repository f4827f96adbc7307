// Package report assembles analysis results and renders them in several formats.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/spigell/resume-analyzer/internal/extractor"
	"github.com/spigell/resume-analyzer/internal/feedback"
	"github.com/spigell/resume-analyzer/internal/scoring"
	"github.com/spigell/resume-analyzer/internal/sections"
	"github.com/spigell/resume-analyzer/internal/skills"
	"github.com/spigell/resume-analyzer/internal/utils"
)

// PreviewLimit caps the resume text embedded in a report.
const PreviewLimit = 2500

// Extraction summarises how the text was obtained.
type Extraction struct {
	Method   string        `json:"method"`
	Fallback string        `json:"fallback,omitempty"`
	OCRUsed  bool          `json:"ocr_used"`
	Pages    int           `json:"pages"`
	Warnings []string      `json:"warnings,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

// Report is a complete analysis of one resume.
type Report struct {
	ID          string            `json:"id"`
	CreatedAt   time.Time         `json:"created_at"`
	Document    string            `json:"document"`
	Extraction  Extraction        `json:"extraction"`
	Preview     string            `json:"preview"`
	Sections    sections.Map      `json:"sections"`
	Analysis    skills.Analysis   `json:"analysis"`
	Badge       string            `json:"badge"`
	ATS         scoring.Breakdown `json:"ats"`
	Feedback    string            `json:"feedback"`
	Suggestions []string          `json:"suggestions"`
}

// Input carries the pipeline outputs a report is built from.
type Input struct {
	Document   string
	Extraction extractor.Result
	Sections   sections.Map
	Analysis   skills.Analysis
	ATS        scoring.Breakdown
}

// New builds a report and derives feedback and suggestions from the analysis.
func New(in Input) *Report {
	return &Report{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Document:  in.Document,
		Extraction: Extraction{
			Method:   string(in.Extraction.Method),
			Fallback: string(in.Extraction.Fallback),
			OCRUsed:  in.Extraction.OCRUsed,
			Pages:    in.Extraction.Pages,
			Warnings: in.Extraction.Warnings,
			Duration: in.Extraction.Duration,
		},
		Preview:  utils.Preview(in.Extraction.Text, PreviewLimit),
		Sections: in.Sections,
		Analysis: in.Analysis,
		Badge:    feedback.Badge(in.Analysis.Score),
		ATS:      in.ATS,
		Feedback: feedback.Generate(in.Analysis),
		Suggestions: feedback.Suggestions(feedback.SuggestionInput{
			WordCount:     in.Analysis.WordCount,
			NumSkills:     in.Analysis.NumSkills(),
			JDMatchScore:  in.Analysis.JDMatchScore,
			ATSScore:      in.ATS.Total,
			SectionsCount: in.Sections.NonEmpty(),
		}),
	}
}
