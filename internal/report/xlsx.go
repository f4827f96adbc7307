package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/spigell/resume-analyzer/internal/scoring"
)

const (
	summarySheet  = "Summary"
	skillsSheet   = "Skills"
	sectionsSheet = "Sections"
	atsSheet      = "ATS"
)

// renderXLSX writes a workbook with Summary, Skills, Sections and ATS sheets.
func renderXLSX(w io.Writer, r *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for _, sheet := range []string{skillsSheet, sectionsSheet, atsSheet} {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("new sheet %s: %w", sheet, err)
		}
	}

	rows := map[string][][]any{
		summarySheet: {
			{"Field", "Value"},
			{"Report ID", r.ID},
			{"Document", r.Document},
			{"Generated", r.CreatedAt.Format("2006-01-02 15:04:05")},
			{"Extraction method", r.Extraction.Method},
			{"Fallback", r.Extraction.Fallback},
			{"Pages", r.Extraction.Pages},
			{"OCR used", yesNo(r.Extraction.OCRUsed)},
			{"Resume score", r.Analysis.Score},
			{"Rating", r.Badge},
			{"Word count", r.Analysis.WordCount},
			{"Job match score", r.Analysis.JDMatchScore},
			{"ATS score", r.ATS.Total},
			{"Suggestions", strings.Join(r.Suggestions, "\n")},
		},
		skillsSheet:   {{"Skill", "Matches job description"}},
		sectionsSheet: {{"Section", "Content"}},
		atsSheet:      {{"Component", "Score", "Max"}},
	}

	matched := make(map[string]bool, len(r.Analysis.JDMatchedSkills))
	for _, s := range r.Analysis.JDMatchedSkills {
		matched[s] = true
	}
	for _, s := range r.Analysis.Skills {
		rows[skillsSheet] = append(rows[skillsSheet], []any{s, yesNo(matched[s])})
	}
	for _, s := range r.Sections {
		rows[sectionsSheet] = append(rows[sectionsSheet], []any{string(s.Name), s.Content})
	}
	for _, c := range r.ATS.Components {
		rows[atsSheet] = append(rows[atsSheet], []any{c.Name, c.Score, c.Max})
	}
	rows[atsSheet] = append(rows[atsSheet], []any{"total", r.ATS.Total, scoring.MaxTotal})

	for sheet, sheetRows := range rows {
		for i, row := range sheetRows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
			}
		}
	}

	_ = f.SetColWidth(summarySheet, "A", "A", 20)
	_ = f.SetColWidth(summarySheet, "B", "B", 60)
	_ = f.SetColWidth(skillsSheet, "A", "B", 24)
	_ = f.SetColWidth(sectionsSheet, "A", "A", 14)
	_ = f.SetColWidth(sectionsSheet, "B", "B", 100)
	_ = f.SetColWidth(atsSheet, "A", "C", 14)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}
