// Package mupdf reads PDF text layers and renders pages with MuPDF (go-fitz).
package mupdf

import (
	"context"
	"fmt"

	"github.com/gen2brain/go-fitz"

	"github.com/spigell/resume-analyzer/internal/extractor"
)

// Reader opens documents from memory. It is the default primary reader.
type Reader struct{}

// NewReader returns a MuPDF Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Open parses data with MuPDF. The returned document must be closed.
func (r *Reader) Open(ctx context.Context, data []byte) (extractor.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("mupdf: %w", err)
	}

	return &document{doc: doc}, nil
}

type document struct {
	doc *fitz.Document
}

func (d *document) PageCount() int { return d.doc.NumPage() }

func (d *document) Text(page int) (string, error) {
	return d.doc.Text(page)
}

func (d *document) Close() error { return d.doc.Close() }

// Rasterizer renders pages to PNG. Every call opens its own document so pages can be rendered concurrently.
type Rasterizer struct{}

// NewRasterizer returns a MuPDF Rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

// Rasterize renders the zero-based page at dpi and returns it as PNG.
func (r *Rasterizer) Rasterize(ctx context.Context, data []byte, page, dpi int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("mupdf: %w", err)
	}
	defer doc.Close()

	img, err := doc.ImagePNG(page, float64(dpi))
	if err != nil {
		return nil, fmt.Errorf("mupdf: render page %d: %w", page+1, err)
	}

	return img, nil
}
