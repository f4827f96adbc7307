package report

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// renderHTML converts the markdown report to sanitised HTML.
func renderHTML(w io.Writer, r *Report) error {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(RenderMarkdown(r)), &buf); err != nil {
		return fmt.Errorf("markdown to html: %w", err)
	}

	body := bluemonday.UGCPolicy().SanitizeBytes(buf.Bytes())

	_, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>Resume analysis: %s</title>\n</head>\n<body>\n%s</body>\n</html>\n",
		html.EscapeString(r.Document), body)
	return err
}
