package utils

import "testing"

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{
			name:   "returns empty when limit non-positive",
			input:  "hello world",
			limit:  0,
			expect: "",
		},
		{
			name:   "shorter than limit",
			input:  "hello",
			limit:  10,
			expect: "hello",
		},
		{
			name:   "truncates and adds ellipsis",
			input:  "hello world",
			limit:  5,
			expect: "hello...",
		},
		{
			name:   "trims surrounding whitespace",
			input:  "  spaced  ",
			limit:  5,
			expect: "space...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestYield(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		expect int
	}{
		{input: "", expect: 0},
		{input: " \n\t ", expect: 0},
		{input: "a b\nc", expect: 3},
		{input: "  Go, SQL.  ", expect: 7},
	}

	for _, tt := range tests {
		if got := Yield(tt.input); got != tt.expect {
			t.Fatalf("Yield(%q): expected %d, got %d", tt.input, tt.expect, got)
		}
	}
}

func TestPreview(t *testing.T) {
	t.Parallel()

	if got := Preview("abcdef", 3); got != "abc..." {
		t.Fatalf("unexpected preview: %q", got)
	}
	if got := Preview(" abc ", 10); got != " abc " {
		t.Fatalf("expected untouched string, got %q", got)
	}
}
