package normalize

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "empty",
			input:  "",
			expect: "",
		},
		{
			name:   "strips bullets and symbols",
			input:  "• Python ★ SQL",
			expect: "Python SQL",
		},
		{
			name:   "collapses blank lines",
			input:  "Skills\n\n\nPython",
			expect: "Skills\nPython",
		},
		{
			name:   "collapses spaces but keeps line breaks",
			input:  "Skills   Python\t\tSQL\nGit",
			expect: "Skills Python SQL\nGit",
		},
		{
			name:   "crlf line endings",
			input:  "Skills\r\n\r\nPython",
			expect: "Skills\nPython",
		},
		{
			name:   "space before punctuation",
			input:  "Python , SQL .",
			expect: "Python, SQL.",
		},
		{
			name:   "spaced hyphen",
			input:  "2019 - 2023",
			expect: "2019-2023",
		},
		{
			name:   "dashes outside the allowed set become hyphen-less spacing",
			input:  "2019–2023",
			expect: "2019 2023",
		},
		{
			name:   "ligatures are filtered before expansion",
			input:  "ﬁnance",
			expect: "nance",
		},
		{
			name:   "keeps allowed punctuation",
			input:  "me@mail.com (C++ & Go) 95% +1 a*b; x:y/z",
			expect: "me@mail.com (C++ & Go) 95% +1 a*b; x:y/z",
		},
		{
			name:   "trims",
			input:  "  \n Resume \n ",
			expect: "Resume",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tt.input); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestNormalizeRepairsUniversity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		expect string
	}{
		{input: "Delhi Univers", expect: "Delhi University"},
		{input: "Univers. of Mumbai", expect: "University. of Mumbai"},
		{input: "UNIVERS of Pune", expect: "University of Pune"},
		{input: "univers", expect: "University"},
		{input: "Stanford University", expect: "Stanford University"},
		{input: "Universal Studios", expect: "Universal Studios"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.expect {
			t.Fatalf("Normalize(%q): expected %q, got %q", tt.input, tt.expect, got)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"Objective Become a great engineer. Skills Python, SQL.",
		"  • Led a team of 5 — shipped 3 releases …\n\n\n  Univers. of X  ",
		"a - - - b , , c . . d",
		"x\t \t.\n \n ,y",
		"Résumé ﬁle ’quoted’ § 12",
		"Univers..x Univers.. Univers",
		"\r\n\r\n line \r one \r\n",
		strings.Repeat("Python ,  SQL .\n\n", 20),
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
