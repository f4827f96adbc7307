// Package plain reads PDF text with the pure Go ledongthuc/pdf reader.
package plain

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"github.com/spigell/resume-analyzer/internal/extractor"
	"github.com/spigell/resume-analyzer/internal/logger"
)

// Parser is the default alternate parser.
type Parser struct {
	logger *zap.Logger
}

func New(l *zap.Logger) *Parser {
	if l == nil {
		l = zap.NewNop()
	}
	return &Parser{logger: l}
}

// Parse returns the plain text of every page, each followed by a blank line.
func (p *Parser) Parse(ctx context.Context, data []byte) (text string, pages int, err error) {
	// The reader panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ledongthuc/pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("failed to read pdf: %w", err)
	}

	var b strings.Builder
	pages = reader.NumPage()
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return "", 0, err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			p.logger.Debug("skipping page", logger.Page(i-1), zap.Error(err))
			continue
		}
		b.WriteString(pageText)
		b.WriteString("\n\n")
	}

	return b.String(), pages, nil
}

// Open implements extractor.Reader so ledongthuc/pdf can also serve as the primary reader.
func (p *Parser) Open(ctx context.Context, data []byte) (doc extractor.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ledongthuc/pdf: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to read pdf: %w", err)
	}

	return &document{reader: reader}, nil
}

type document struct {
	reader *pdf.Reader
}

func (d *document) PageCount() int { return d.reader.NumPage() }

func (d *document) Text(page int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ledongthuc/pdf: page %d: %v", page+1, r)
		}
	}()

	p := d.reader.Page(page + 1)
	if p.V.IsNull() {
		return "", nil
	}
	return p.GetPlainText(nil)
}

func (d *document) Close() error { return nil }
