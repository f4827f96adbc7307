package skills

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	Technical = "Technical"
	Soft      = "Soft"
)

// ErrInvalidVocabulary is returned when a vocabulary file does not match the schema.
var ErrInvalidVocabulary = errors.New("invalid skill vocabulary")

//go:embed vocabulary.schema.json
var vocabularySchema []byte

// Category groups skills under a name such as Technical or Soft.
type Category struct {
	Name   string   `json:"name" mapstructure:"name"`
	Skills []string `json:"skills" mapstructure:"skills"`
}

// Vocabulary is the ordered list of categories searched for in a resume.
type Vocabulary struct {
	Categories []Category `json:"categories" mapstructure:"categories"`
}

// DefaultVocabulary returns the built-in technical and soft skills.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{Categories: []Category{
		{
			Name: Technical,
			Skills: []string{
				"python", "java", "c++", "javascript", "react", "node", "html", "css",
				"machine learning", "deep learning", "tensorflow", "pytorch",
				"data science", "sql", "mongodb", "git", "docker", "aws", "azure",
				"flask", "streamlit", "excel", "tableau", "power bi", "pandas", "numpy",
			},
		},
		{
			Name: Soft,
			Skills: []string{
				"leadership", "communication", "teamwork", "problem solving",
				"creativity", "adaptability", "time management", "collaboration",
				"critical thinking", "decision making", "analytical thinking",
			},
		},
	}}
}

// LoadVocabulary reads a JSON vocabulary file.
func LoadVocabulary(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("read vocabulary file: %w", err)
	}
	return ParseVocabulary(data)
}

// ParseVocabulary validates data against the embedded schema and decodes it.
func ParseVocabulary(data []byte) (Vocabulary, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("vocabulary.schema.json", bytes.NewReader(vocabularySchema)); err != nil {
		return Vocabulary{}, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("vocabulary.schema.json")
	if err != nil {
		return Vocabulary{}, fmt.Errorf("compile schema: %w", err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Vocabulary{}, fmt.Errorf("%w: %w", ErrInvalidVocabulary, err)
	}
	if err := schema.Validate(raw); err != nil {
		return Vocabulary{}, fmt.Errorf("%w: %w", ErrInvalidVocabulary, err)
	}

	var v Vocabulary
	if err := mapstructure.Decode(raw, &v); err != nil {
		return Vocabulary{}, fmt.Errorf("%w: %w", ErrInvalidVocabulary, err)
	}

	return v, nil
}
