// Package textsrc resolves free-form text inputs such as job descriptions
// that may be given inline or through a file.
package textsrc

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNotConfigured is returned when a source carries neither a file nor a value.
var ErrNotConfigured = errors.New("text source is not configured")

// Source describes how to load a text value.
type Source struct {
	// Name is used in error messages to give more context about the value.
	Name string
	// Value is inline text provided via configuration or flags.
	Value string
	// File points to a file containing the text. When set it takes
	// precedence over Value.
	File string
}

// IsSet reports whether the source names a file or carries a non-blank value.
func (s Source) IsSet() bool {
	return strings.TrimSpace(s.File) != "" || strings.TrimSpace(s.Value) != ""
}

// Load returns the resolved text from the provided source. When File is set it
// takes precedence over Value. The returned text is always trimmed. An error is
// returned when neither File nor Value contain usable text.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "text"
	}

	file := strings.TrimSpace(src.File)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		src.Value = string(data)
		src.File = file
	}

	text := strings.TrimSpace(src.Value)
	if text == "" {
		if src.File != "" {
			return "", fmt.Errorf("%s file %q is empty", name, src.File)
		}
		return "", fmt.Errorf("%s: %w", name, ErrNotConfigured)
	}

	return text, nil
}
