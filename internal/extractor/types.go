package extractor

import (
	"context"
	"errors"
	"time"
)

const (
	// DefaultMinPageChars is the per-page yield below which a page is OCR'd.
	DefaultMinPageChars = 100
	// DefaultMinDocumentChars is the document yield below which the alternate parser runs.
	DefaultMinDocumentChars = 500
	// DefaultDPI is the rasterization resolution used for OCR.
	DefaultDPI = 300
	// DefaultOCRWorkers bounds how many pages are OCR'd at once.
	DefaultOCRWorkers = 1

	DefaultOpenTimeout = 30 * time.Second
	DefaultOCRTimeout  = 2 * time.Minute
)

var (
	// ErrUnreadable is returned when neither the primary reader nor the alternate parser could read the document.
	ErrUnreadable = errors.New("document is unreadable")
	// ErrTimeout is returned when opening the document or OCR of a page exceeded its time budget.
	ErrTimeout = errors.New("extraction timed out")
	// ErrEmptyDocument is returned for zero-length input.
	ErrEmptyDocument = errors.New("empty document")
)

// Method names the strategy that produced the final text.
type Method string

const (
	MethodTextLayer Method = "text-layer"
	MethodOCR       Method = "text-layer+ocr"
	MethodAlternate Method = "alternate"
)

// Fallback records why the alternate parser ran.
type Fallback string

const (
	FallbackNone          Fallback = ""
	FallbackPrimaryFailed Fallback = "primary-failed"
	FallbackLowYield      Fallback = "low-yield"
)

// Reader opens a document and exposes its text layer page by page.
type Reader interface {
	Open(ctx context.Context, data []byte) (Document, error)
}

// Document is an opened PDF. Pages are zero-based.
type Document interface {
	PageCount() int
	Text(page int) (string, error)
	Close() error
}

// Rasterizer renders a single zero-based page as a PNG image.
type Rasterizer interface {
	Rasterize(ctx context.Context, data []byte, page, dpi int) ([]byte, error)
}

// Recognizer runs OCR over an image.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) (string, error)
}

// Parser re-extracts the whole document with an independent implementation.
type Parser interface {
	Parse(ctx context.Context, data []byte) (text string, pages int, err error)
}

// Config holds the extraction thresholds and time budgets. Zero values fall back to defaults.
type Config struct {
	MinPageChars     int           `mapstructure:"min-page-chars"`
	MinDocumentChars int           `mapstructure:"min-document-chars"`
	DPI              int           `mapstructure:"dpi"`
	OCRWorkers       int           `mapstructure:"ocr-workers"`
	OpenTimeout      time.Duration `mapstructure:"open-timeout"`
	OCRTimeout       time.Duration `mapstructure:"ocr-timeout"`
}

func (c Config) withDefaults() Config {
	if c.MinPageChars <= 0 {
		c.MinPageChars = DefaultMinPageChars
	}
	if c.MinDocumentChars <= 0 {
		c.MinDocumentChars = DefaultMinDocumentChars
	}
	if c.DPI <= 0 {
		c.DPI = DefaultDPI
	}
	if c.OCRWorkers <= 0 {
		c.OCRWorkers = DefaultOCRWorkers
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = DefaultOpenTimeout
	}
	if c.OCRTimeout <= 0 {
		c.OCRTimeout = DefaultOCRTimeout
	}
	return c
}

// Result is the outcome of a single extraction.
type Result struct {
	Text     string
	OCRUsed  bool
	Pages    int
	Method   Method
	Fallback Fallback
	Warnings []string
	Duration time.Duration
}
