package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Format names a report renderer.
type Format string

const (
	Text     Format = "text"
	Markdown Format = "markdown"
	JSON     Format = "json"
	HTML     Format = "html"
	XLSX     Format = "xlsx"
)

var Formats = []Format{Text, Markdown, JSON, HTML, XLSX}

var ErrUnknownFormat = errors.New("unknown report format")

// ParseFormat resolves a format name. An empty name selects text; "md" is accepted for markdown.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "":
		return Text, nil
	case "md":
		return Markdown, nil
	}
	for _, f := range Formats {
		if name == string(f) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Binary reports whether the format must not be written to a terminal.
func (f Format) Binary() bool { return f == XLSX }

// Extension returns the file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Markdown:
		return ".md"
	case Text:
		return ".txt"
	default:
		return "." + string(f)
	}
}

// Render writes r to w in the requested format.
func Render(w io.Writer, r *Report, f Format) error {
	switch f {
	case Text:
		_, err := io.WriteString(w, RenderText(r))
		return err
	case Markdown:
		_, err := io.WriteString(w, RenderMarkdown(r))
		return err
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case HTML:
		return renderHTML(w, r)
	case XLSX:
		return renderXLSX(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}
