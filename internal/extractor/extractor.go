// Package extractor turns PDF bytes into normalized text.
//
// Each page's text layer is read first. Pages with too little text are
// rasterized and OCR'd. When the whole document still yields too little text,
// or the primary reader cannot open it at all, an alternate parser re-extracts
// the document.
package extractor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spigell/resume-analyzer/internal/logger"
	"github.com/spigell/resume-analyzer/internal/normalize"
	"github.com/spigell/resume-analyzer/internal/utils"

	"go.uber.org/zap"
)

// Deps aggregates the collaborators used by the Extractor.
type Deps struct {
	Reader     Reader
	Rasterizer Rasterizer
	Recognizer Recognizer
	Parser     Parser
	Logger     *zap.Logger
}

type Extractor struct {
	cfg        Config
	reader     Reader
	rasterizer Rasterizer
	recognizer Recognizer
	parser     Parser
	logger     *zap.Logger
}

// attempt is the explicit outcome of one extraction strategy.
type attempt struct {
	text     string
	pages    int
	ocrUsed  bool
	warnings []string
	err      error
}

// New creates an Extractor. All collaborators except the logger are required.
func New(cfg *Config, deps Deps) (*Extractor, error) {
	switch {
	case deps.Reader == nil:
		return nil, errors.New("primary reader is required")
	case deps.Rasterizer == nil:
		return nil, errors.New("rasterizer is required")
	case deps.Recognizer == nil:
		return nil, errors.New("ocr recognizer is required")
	case deps.Parser == nil:
		return nil, errors.New("alternate parser is required")
	}

	var c Config
	if cfg != nil {
		c = *cfg
	}

	l := deps.Logger
	if l == nil {
		l = zap.NewNop()
	}

	return &Extractor{
		cfg:        c.withDefaults(),
		reader:     deps.Reader,
		rasterizer: deps.Rasterizer,
		recognizer: deps.Recognizer,
		parser:     deps.Parser,
		logger:     l,
	}, nil
}

// Extract returns the normalized text of the document.
func (e *Extractor) Extract(ctx context.Context, data []byte) (Result, error) {
	start := time.Now()

	if len(data) == 0 {
		return Result{}, ErrEmptyDocument
	}

	primary := e.primary(ctx, data)
	if err := fatal(ctx, primary.err); err != nil {
		return Result{}, err
	}

	res := Result{
		Text:     primary.text,
		OCRUsed:  primary.ocrUsed,
		Pages:    primary.pages,
		Method:   MethodTextLayer,
		Warnings: primary.warnings,
	}
	if primary.ocrUsed {
		res.Method = MethodOCR
	}

	switch {
	case primary.err != nil:
		res.Fallback = FallbackPrimaryFailed
		e.logger.Warn("primary reader failed, trying alternate parser", zap.Error(primary.err))
	case utils.Yield(primary.text) < e.cfg.MinDocumentChars:
		res.Fallback = FallbackLowYield
		e.logger.Info("low text yield, trying alternate parser",
			zap.Int("yield", utils.Yield(primary.text)),
			zap.Int("threshold", e.cfg.MinDocumentChars),
		)
	}

	if res.Fallback != FallbackNone {
		alt := e.alternate(ctx, data)
		if err := fatal(ctx, alt.err); err != nil {
			return Result{}, err
		}

		switch {
		case alt.err != nil && res.Fallback == FallbackPrimaryFailed:
			return Result{}, fmt.Errorf("%w: %w", ErrUnreadable, errors.Join(primary.err, alt.err))
		case alt.err != nil:
			res.Warnings = append(res.Warnings, fmt.Sprintf("alternate parser failed: %s", alt.err))
			e.logger.Warn("alternate parser failed, keeping primary text", zap.Error(alt.err))
		case res.Fallback == FallbackLowYield && utils.Yield(alt.text) == 0:
			res.Warnings = append(res.Warnings, "alternate parser returned no text")
			e.logger.Warn("alternate parser returned no text, keeping primary text")
		default:
			res.Text = alt.text
			res.Method = MethodAlternate
			if res.Fallback == FallbackPrimaryFailed {
				res.Pages = alt.pages
			}
		}
	}

	res.Text = normalize.Normalize(res.Text)
	res.Duration = time.Since(start)

	e.logger.Info("extraction finished",
		zap.String(logger.FieldMethod, string(res.Method)),
		zap.String("fallback", string(res.Fallback)),
		zap.Bool("ocr_used", res.OCRUsed),
		zap.Int("pages", res.Pages),
		zap.Int("chars", len(res.Text)),
		zap.Duration("duration", res.Duration),
	)

	return res, nil
}

// primary reads the text layer of every page and OCRs the pages that yield too little.
func (e *Extractor) primary(ctx context.Context, data []byte) attempt {
	openCtx, cancel := context.WithTimeout(ctx, e.cfg.OpenTimeout)
	doc, err := await(openCtx, func(ctx context.Context) (Document, error) {
		return e.reader.Open(ctx, data)
	}, e.closeLate)
	expired := errors.Is(openCtx.Err(), context.DeadlineExceeded)
	cancel()
	if err != nil {
		if expired && ctx.Err() == nil {
			return attempt{err: fmt.Errorf("%w: opening document after %s", ErrTimeout, e.cfg.OpenTimeout)}
		}
		return attempt{err: fmt.Errorf("open: %w", err)}
	}
	defer func() {
		if err := doc.Close(); err != nil {
			e.logger.Warn("closing document", zap.Error(err))
		}
	}()

	count := doc.PageCount()
	if count <= 0 {
		return attempt{err: errors.New("document has no pages")}
	}

	var warnings []string
	texts := make([]string, count)
	var scanned []int
	for i := range count {
		text, err := doc.Text(i)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("page %d: reading text layer: %s", i+1, err))
			e.logger.Warn("reading text layer", logger.Page(i), zap.Error(err))
			text = ""
		}
		texts[i] = text

		if utils.Yield(text) < e.cfg.MinPageChars {
			scanned = append(scanned, i)
		}
	}

	out := attempt{pages: count, warnings: warnings}

	if len(scanned) > 0 {
		out.ocrUsed = true
		e.logger.Debug("pages need ocr", zap.Ints("pages", scanned))
		failed, err := e.ocrPages(ctx, data, scanned, texts)
		if err != nil {
			out.err = err
			return out
		}
		out.warnings = append(out.warnings, failed...)
	}

	var b strings.Builder
	for _, text := range texts {
		b.WriteString(text)
		b.WriteString("\n\n")
	}
	out.text = b.String()

	return out
}

// closeLate releases a document whose Open returned after the deadline.
func (e *Extractor) closeLate(doc Document) {
	if doc == nil {
		return
	}
	if err := doc.Close(); err != nil {
		e.logger.Warn("closing late document", zap.Error(err))
	}
}

// await runs fn in its own goroutine and returns as soon as ctx is done, even
// when fn ignores ctx. A value fn produces after that is handed to release.
func await[T any](ctx context.Context, fn func(context.Context) (T, error), release func(T)) (T, error) {
	type result struct {
		v   T
		err error
	}

	done := make(chan result, 1)
	go func() {
		v, err := fn(ctx)
		done <- result{v: v, err: err}
	}()

	select {
	case r := <-done:
		return r.v, r.err
	case <-ctx.Done():
		go func() {
			r := <-done
			if r.err == nil && release != nil {
				release(r.v)
			}
		}()
		var zero T
		return zero, ctx.Err()
	}
}

func (e *Extractor) alternate(ctx context.Context, data []byte) attempt {
	text, pages, err := e.parser.Parse(ctx, data)
	if err != nil {
		return attempt{err: fmt.Errorf("alternate parser: %w", err)}
	}
	return attempt{text: text, pages: pages}
}

// fatal returns the error that must abort extraction, if any.
func fatal(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errors.Is(err, ErrTimeout) {
		return err
	}
	return nil
}
