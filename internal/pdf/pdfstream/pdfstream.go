// Package pdfstream extracts text by scanning page content streams decoded by pdfcpu.
//
// Only literal strings shown by the text operators are recovered. Hex strings
// and font encodings are not interpreted.
package pdfstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"

	"github.com/spigell/resume-analyzer/internal/extractor"
	"github.com/spigell/resume-analyzer/internal/logger"
)

// Parser is the content-stream alternate parser. It also implements
// extractor.Reader.
type Parser struct {
	logger *zap.Logger
}

// New returns a Parser logging to l, or to a no-op logger when l is nil.
func New(l *zap.Logger) *Parser {
	if l == nil {
		l = zap.NewNop()
	}
	return &Parser{logger: l}
}

// Parse returns the text of every page followed by a blank line, and the page count.
func (p *Parser) Parse(ctx context.Context, data []byte) (text string, pages int, err error) {
	defer recovered(&err)

	conf := model.NewDefaultConfiguration()
	pctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return "", 0, fmt.Errorf("pdfcpu read: %w", err)
	}

	var b strings.Builder
	for pageNr := 1; pageNr <= pctx.PageCount; pageNr++ {
		if err := ctx.Err(); err != nil {
			return "", 0, err
		}

		r, err := pdfcpu.ExtractPageContent(pctx, pageNr)
		if err != nil || r == nil {
			p.logger.Debug("no content stream", logger.Page(pageNr-1), zap.Error(err))
			continue
		}
		content, err := io.ReadAll(r)
		if err != nil {
			p.logger.Debug("reading content stream", logger.Page(pageNr-1), zap.Error(err))
			continue
		}

		b.WriteString(ContentText(content))
		b.WriteString("\n\n")
	}

	return b.String(), pctx.PageCount, nil
}

// ContentText returns the text shown by Tj, TJ, ' and " operators in a decoded content stream.
func ContentText(content []byte) string {
	var (
		b       strings.Builder
		pending []string
	)

	flush := func() {
		for _, s := range pending {
			b.WriteString(s)
		}
	}
	newline := func() {
		if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
			b.WriteByte('\n')
		}
	}

	for i := 0; i < len(content); {
		c := content[i]
		switch {
		case c == '(':
			s, next := literal(content, i)
			pending = append(pending, s)
			i = next
		case c == '%':
			for i < len(content) && content[i] != '\n' && content[i] != '\r' {
				i++
			}
		case c == '<':
			// hex strings and dictionaries
			for i < len(content) && content[i] != '>' {
				i++
			}
			i++
		case isSpace(c) || isDelimiter(c):
			i++
		default:
			start := i
			for i < len(content) && !isSpace(content[i]) && !isDelimiter(content[i]) {
				i++
			}
			op := string(content[start:i])
			if !isOperator(op) {
				continue
			}

			switch op {
			case "Tj", "TJ":
				flush()
			case "'", "\"":
				newline()
				flush()
			case "Td", "TD", "Tm":
				if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
					b.WriteByte(' ')
				}
			case "T*", "ET":
				newline()
			}
			pending = pending[:0]
		}
	}

	return strings.TrimSpace(b.String())
}

// recovered turns a panic inside pdfcpu into an error. It must be deferred directly.
func recovered(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("pdfcpu: %v", r)
	}
}

// literal decodes the string literal starting at content[start] == '(' and
// returns it with the index just past the closing parenthesis.
func literal(content []byte, start int) (string, int) {
	var b strings.Builder
	depth := 0
	i := start
	for ; i < len(content); i++ {
		c := content[i]
		switch c {
		case '\\':
			if i+1 >= len(content) {
				continue
			}
			i++
			switch e := content[i]; e {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case 'b', 'f':
			case '\r', '\n':
				// line continuation
			default:
				if e >= '0' && e <= '7' {
					val := int(e - '0')
					for n := 0; n < 2 && i+1 < len(content) && content[i+1] >= '0' && content[i+1] <= '7'; n++ {
						i++
						val = val*8 + int(content[i]-'0')
					}
					b.WriteByte(byte(val))
					continue
				}
				b.WriteByte(e)
			}
		case '(':
			if depth > 0 {
				b.WriteByte(c)
			}
			depth++
		case ')':
			depth--
			if depth == 0 {
				return b.String(), i + 1
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), i
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', 0:
		return true
	}
	return false
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

// isOperator tells operators apart from numbers and booleans.
func isOperator(tok string) bool {
	switch tok {
	case "true", "false", "null":
		return false
	}
	c := tok[0]
	return c == '\'' || c == '"' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// Open implements extractor.Reader on top of pdfcpu.
func (p *Parser) Open(ctx context.Context, data []byte) (doc extractor.Document, err error) {
	defer recovered(&err)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read: %w", err)
	}

	return &document{ctx: pctx}, nil
}

type document struct {
	ctx *model.Context
}

func (d *document) PageCount() int { return d.ctx.PageCount }

func (d *document) Text(page int) (text string, err error) {
	defer recovered(&err)

	r, err := pdfcpu.ExtractPageContent(d.ctx, page+1)
	if err != nil {
		return "", err
	}
	if r == nil {
		return "", nil
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return ContentText(content), nil
}

func (d *document) Close() error { return nil }
