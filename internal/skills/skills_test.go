package skills

import (
	"reflect"
	"strings"
	"testing"
)

func filler(n int) string {
	return strings.Repeat("word ", n)
}

func TestAnalyzeSkills(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		text       string
		skills     []string
		categories map[string]int
	}{
		{
			name:       "nothing",
			text:       "I like long walks.",
			skills:     []string{},
			categories: map[string]int{},
		},
		{
			name:       "vocabulary order and display form",
			text:       "Worked with SQL, Python and Power BI. Strong Leadership.",
			skills:     []string{"Python", "Sql", "Power bi", "Leadership"},
			categories: map[string]int{Technical: 3, Soft: 1},
		},
		{
			name:       "word boundaries",
			text:       "javascript gitlab nodejs",
			skills:     []string{"Javascript"},
			categories: map[string]int{Technical: 1},
		},
		{
			name:       "duplicates counted once",
			text:       "docker docker DOCKER",
			skills:     []string{"Docker"},
			categories: map[string]int{Technical: 1},
		},
		{
			name:       "c++ needs a trailing word character",
			text:       "c++ and c++11",
			skills:     []string{"C++"},
			categories: map[string]int{Technical: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Analyze(tt.text, "")
			if !reflect.DeepEqual(got.Skills, tt.skills) {
				t.Fatalf("expected skills %v, got %v", tt.skills, got.Skills)
			}
			if !reflect.DeepEqual(got.CategoryCounts, tt.categories) {
				t.Fatalf("expected categories %v, got %v", tt.categories, got.CategoryCounts)
			}
		})
	}
}

func TestAnalyzeScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		jd      string
		score   int
		jdScore int
		matched []string
	}{
		{
			name:  "short resume floor",
			text:  "nothing here",
			score: 30,
		},
		{
			name:  "short resume penalty",
			text:  "python java sql git docker aws pandas numpy",
			score: 42, // 20 + 8*4 - 10
		},
		{
			name:  "long resume",
			text:  "python java sql " + filler(100),
			score: 32,
		},
		{
			name:  "score is capped",
			text:  strings.Join(DefaultVocabulary().Categories[0].Skills, " ") + " " + filler(100),
			score: 100,
		},
		{
			name:    "job description blend",
			text:    "python java sql " + filler(100),
			jd:      "We need Python and SQL.",
			score:   42, // round(32*0.7 + 67*0.3) = round(42.5) -> 42
			jdScore: 67,
			matched: []string{"Python", "Sql"},
		},
		{
			name:    "job description without skills",
			text:    filler(100),
			jd:      "We need Python.",
			score:   14, // round(20*0.7)
			jdScore: 0,
		},
		{
			name:  "blank job description is ignored",
			text:  "python " + filler(100),
			jd:    "   \n",
			score: 24,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Analyze(tt.text, tt.jd)
			if got.Score != tt.score {
				t.Fatalf("expected score %d, got %d", tt.score, got.Score)
			}
			if got.JDMatchScore != tt.jdScore {
				t.Fatalf("expected jd score %d, got %d", tt.jdScore, got.JDMatchScore)
			}
			if tt.matched != nil && !reflect.DeepEqual(got.JDMatchedSkills, tt.matched) {
				t.Fatalf("expected matched %v, got %v", tt.matched, got.JDMatchedSkills)
			}
			if got.JDProvided != (strings.TrimSpace(tt.jd) != "") {
				t.Fatalf("unexpected JDProvided %v", got.JDProvided)
			}
		})
	}
}

func TestAnalyzeWordCount(t *testing.T) {
	t.Parallel()

	if got := Analyze("  one\ttwo\nthree  ", "").WordCount; got != 3 {
		t.Fatalf("expected 3 words, got %d", got)
	}
}

func TestDisplay(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"python":           "Python",
		"machine learning": "Machine learning",
		"c++":              "C++",
		"AWS":              "Aws",
		"":                 "",
	}
	for in, expect := range tests {
		if got := Display(in); got != expect {
			t.Fatalf("Display(%q): expected %q, got %q", in, expect, got)
		}
	}
}
