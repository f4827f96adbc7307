// Package skills detects vocabulary skills in resume text and scores the resume.
package skills

import (
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Analysis is the outcome of scanning a resume for skills.
type Analysis struct {
	Skills          []string       `json:"skills"`
	Score           int            `json:"score"`
	WordCount       int            `json:"word_count"`
	CategoryCounts  map[string]int `json:"category_counts"`
	JDProvided      bool           `json:"jd_provided"`
	JDMatchScore    int            `json:"jd_match_score"`
	JDMatchedSkills []string       `json:"jd_matched_skills"`
}

// NumSkills returns the number of distinct skills detected.
func (a Analysis) NumSkills() int { return len(a.Skills) }

type term struct {
	skill    string
	category string
	re       *regexp.Regexp
}

// Analyzer holds compiled patterns for a vocabulary.
type Analyzer struct {
	terms []term
}

// NewAnalyzer compiles a word-boundary pattern for every skill in v.
func NewAnalyzer(v Vocabulary) *Analyzer {
	a := &Analyzer{}
	for _, c := range v.Categories {
		for _, s := range c.Skills {
			s = strings.ToLower(strings.TrimSpace(s))
			if s == "" {
				continue
			}
			a.terms = append(a.terms, term{
				skill:    s,
				category: c.Name,
				re:       regexp.MustCompile(`\b` + regexp.QuoteMeta(s) + `\b`),
			})
		}
	}
	return a
}

var defaultAnalyzer = NewAnalyzer(DefaultVocabulary())

// Analyze runs the built-in vocabulary over text.
func Analyze(text, jobDescription string) Analysis {
	return defaultAnalyzer.Analyze(text, jobDescription)
}

// Analyze detects skills, counts words and computes the resume score.
// A blank job description is treated as absent.
func (a *Analyzer) Analyze(text, jobDescription string) Analysis {
	lower := strings.ToLower(text)

	res := Analysis{
		Skills:          []string{},
		CategoryCounts:  map[string]int{},
		JDMatchedSkills: []string{},
		WordCount:       len(strings.Fields(text)),
	}

	seen := make(map[string]bool)
	for _, t := range a.terms {
		if seen[t.skill] || !t.re.MatchString(lower) {
			continue
		}
		seen[t.skill] = true
		res.Skills = append(res.Skills, Display(t.skill))
		res.CategoryCounts[t.category]++
	}

	score := min(100, 20+len(res.Skills)*4)
	if res.WordCount < 80 {
		score = max(30, score-10)
	}

	if strings.TrimSpace(jobDescription) != "" {
		res.JDProvided = true
		jd := strings.ToLower(jobDescription)
		for _, s := range res.Skills {
			if strings.Contains(jd, strings.ToLower(s)) {
				res.JDMatchedSkills = append(res.JDMatchedSkills, s)
			}
		}
		if len(res.Skills) > 0 {
			res.JDMatchScore = int(math.RoundToEven(float64(len(res.JDMatchedSkills)) / float64(len(res.Skills)) * 100))
		}
		score = int(math.RoundToEven(float64(score)*0.7 + float64(res.JDMatchScore)*0.3))
	}

	res.Score = score
	return res
}

// Display upper-cases the first letter of a skill and lower-cases the rest.
func Display(skill string) string {
	r, size := utf8.DecodeRuneInString(skill)
	if r == utf8.RuneError {
		return skill
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(skill[size:])
}
