package extractor

import (
	"context"
	"errors"
	"fmt"

	"github.com/spigell/resume-analyzer/internal/logger"
	"github.com/spigell/resume-analyzer/internal/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ocrPages replaces texts[i] with OCR output for every i in pages.
// Results are stored by page index so the concatenation order never depends on scheduling.
// A page that fails to OCR keeps its text layer and is reported in the returned
// warnings. Only timeouts and cancellation abort the run.
func (e *Extractor) ocrPages(ctx context.Context, data []byte, pages []int, texts []string) ([]string, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.OCRWorkers)

	failures := make([]error, len(pages))
	for i, page := range pages {
		g.Go(func() error {
			text, err := e.ocrPage(gctx, data, page)
			switch {
			case err == nil:
				texts[page] = text
			case errors.Is(err, ErrTimeout) || gctx.Err() != nil:
				return err
			default:
				failures[i] = err
				e.logger.Warn("page ocr failed, keeping text layer", logger.Page(page), zap.Error(err))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, err := range failures {
		if err != nil {
			warnings = append(warnings, err.Error())
		}
	}
	return warnings, nil
}

func (e *Extractor) ocrPage(ctx context.Context, data []byte, page int) (string, error) {
	pageCtx, cancel := context.WithTimeout(ctx, e.cfg.OCRTimeout)
	defer cancel()

	text, err := await(pageCtx, func(ctx context.Context) (string, error) {
		return e.recognizePage(ctx, data, page)
	}, nil)
	if err != nil {
		if errors.Is(pageCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return "", fmt.Errorf("%w: ocr of page %d after %s", ErrTimeout, page+1, e.cfg.OCRTimeout)
		}
		return "", fmt.Errorf("ocr of page %d: %w", page+1, err)
	}

	e.logger.Debug("page ocr done",
		logger.Page(page),
		zap.Int("yield", utils.Yield(text)),
		zap.String("preview", utils.TruncateForLog(text, 80)),
	)

	return text, nil
}

func (e *Extractor) recognizePage(ctx context.Context, data []byte, page int) (string, error) {
	img, err := e.rasterizer.Rasterize(ctx, data, page, e.cfg.DPI)
	if err != nil {
		return "", fmt.Errorf("rasterize: %w", err)
	}

	text, err := e.recognizer.Recognize(ctx, img)
	if err != nil {
		return "", fmt.Errorf("recognize: %w", err)
	}

	return text, nil
}
