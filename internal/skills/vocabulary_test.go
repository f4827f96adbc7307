package skills

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseVocabulary(t *testing.T) {
	t.Parallel()

	data := []byte(`{"categories":[{"name":"Cloud","skills":["Kubernetes","terraform"]},{"name":"Soft","skills":["mentoring"]}]}`)

	v, err := ParseVocabulary(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expect := Vocabulary{Categories: []Category{
		{Name: "Cloud", Skills: []string{"Kubernetes", "terraform"}},
		{Name: "Soft", Skills: []string{"mentoring"}},
	}}
	if !reflect.DeepEqual(v, expect) {
		t.Fatalf("expected %+v, got %+v", expect, v)
	}

	got := NewAnalyzer(v).Analyze("Deployed kubernetes with Terraform, mentoring juniors", "")
	if !reflect.DeepEqual(got.Skills, []string{"Kubernetes", "Terraform", "Mentoring"}) {
		t.Fatalf("unexpected skills %v", got.Skills)
	}
	if got.CategoryCounts["Cloud"] != 2 || got.CategoryCounts["Soft"] != 1 {
		t.Fatalf("unexpected categories %v", got.CategoryCounts)
	}
}

func TestParseVocabularyInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: `{categories`},
		{name: "missing categories", data: `{}`},
		{name: "empty categories", data: `{"categories":[]}`},
		{name: "unknown field", data: `{"categories":[{"name":"A","skills":["x"],"weight":2}]}`},
		{name: "blank skill", data: `{"categories":[{"name":"A","skills":["  "]}]}`},
		{name: "wrong type", data: `{"categories":[{"name":"A","skills":"x"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := ParseVocabulary([]byte(tt.data)); !errors.Is(err, ErrInvalidVocabulary) {
				t.Fatalf("expected ErrInvalidVocabulary, got %v", err)
			}
		})
	}
}

func TestLoadVocabulary(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "skills.json")
	if err := os.WriteFile(path, []byte(`{"categories":[{"name":"Go","skills":["goroutines"]}]}`), 0o600); err != nil {
		t.Fatal(err)
	}

	v, err := LoadVocabulary(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v.Categories) != 1 || v.Categories[0].Name != "Go" {
		t.Fatalf("unexpected vocabulary %+v", v)
	}

	if _, err := LoadVocabulary(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
