// Package feedback turns an analysis into human-readable advice.
package feedback

import (
	"fmt"
	"strings"

	"github.com/spigell/resume-analyzer/internal/skills"
)

const (
	Outstanding      = "Outstanding"
	Strong           = "Strong"
	Moderate         = "Moderate"
	NeedsImprovement = "Needs Improvement"
)

// Badge maps a score to a rating label.
func Badge(score int) string {
	switch {
	case score >= 85:
		return Outstanding
	case score >= 70:
		return Strong
	case score >= 50:
		return Moderate
	default:
		return NeedsImprovement
	}
}

// Generate builds the markdown feedback text.
func Generate(a skills.Analysis) string {
	lines := []string{fmt.Sprintf("Overall rating: **%s** (%d%%).", Badge(a.Score), a.Score)}

	if len(a.Skills) == 0 {
		lines = append(lines, "I couldn't detect many skills. Make sure you have a clear **Skills** section with bullet points.")
	} else {
		lines = append(lines, fmt.Sprintf("Detected skills: %s.", strings.Join(a.Skills, ", ")))
	}

	switch {
	case a.WordCount < 100:
		lines = append(lines, "Your resume seems quite short. Consider adding more details about projects, internships, or responsibilities.")
	case a.WordCount > 400:
		lines = append(lines, "Your resume is fairly long. Try to keep it concise (1 page for students / freshers).")
	}

	if a.CategoryCounts[skills.Technical] == 0 {
		lines = append(lines, "I don't see many technical skills. If you are applying for tech roles, highlight programming languages and tools.")
	}
	if a.CategoryCounts[skills.Soft] == 0 {
		lines = append(lines, "Try to mention soft skills like teamwork, communication, or problem solving if relevant.")
	}

	if a.JDMatchScore > 0 {
		lines = append(lines, fmt.Sprintf("Job match score (based on skills) is around **%d%%**.", a.JDMatchScore))
		if len(a.JDMatchedSkills) > 0 {
			lines = append(lines, fmt.Sprintf("Skills matching the job description: %s.", strings.Join(a.JDMatchedSkills, ", ")))
		}
	} else {
		lines = append(lines, "For better targeting, paste a job description so I can compare your resume against it.")
	}

	lines = append(lines,
		"\n**Suggestions:**",
		"- Use bullet points and start them with action verbs (Built, Designed, Implemented, Led...).",
		`- Quantify achievements where possible ("Improved X by 20%", "Handled Y users", etc.).`,
		"- Ensure there are no spelling or grammar mistakes.",
		"- Keep section titles consistent: Summary, Education, Projects, Skills, Achievements.",
	)

	return strings.Join(lines, "\n")
}

// SuggestionInput carries the figures the quick suggestions are based on.
type SuggestionInput struct {
	WordCount     int
	NumSkills     int
	JDMatchScore  int
	ATSScore      int
	SectionsCount int
}

// Suggestions returns short, actionable tips.
func Suggestions(in SuggestionInput) []string {
	var out []string

	switch {
	case in.WordCount < 120:
		out = append(out, "Add more content: projects, internships, or responsibilities.")
	case in.WordCount > 450:
		out = append(out, "Try to reduce length: keep it concise (1-2 pages).")
	}

	switch {
	case in.NumSkills < 5:
		out = append(out, "Add more relevant skills in a dedicated Skills section.")
	case in.NumSkills > 15:
		out = append(out, "Group similar skills and avoid listing too many buzzwords.")
	}

	switch {
	case in.JDMatchScore > 0 && in.JDMatchScore < 60:
		out = append(out, "Tailor your skills and keywords to better match the job description.")
	case in.JDMatchScore >= 60:
		out = append(out, "Good job match, highlight your strongest matching skills on top.")
	}

	if in.SectionsCount < 4 {
		out = append(out, "Consider adding standard sections: Summary, Skills, Projects, Education, Achievements.")
	}

	if in.ATSScore < 60 {
		out = append(out, "Focus on improving skills, structure, and keywords to boost ATS score.")
	} else {
		out = append(out, "ATS score is decent, refine wording and quantify achievements.")
	}

	return out
}
