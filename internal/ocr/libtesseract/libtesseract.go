// Package libtesseract runs OCR in-process through the gosseract bindings.
package libtesseract

import (
	"context"
	"fmt"
	"strconv"

	"github.com/otiai10/gosseract/v2"

	"github.com/spigell/resume-analyzer/internal/ocr"
)

type Recognizer struct {
	cfg           ocr.Config
	clientFactory func() *gosseract.Client
}

func New(cfg ocr.Config) *Recognizer {
	return &Recognizer{cfg: cfg.WithDefaults(), clientFactory: gosseract.NewClient}
}

// Recognize creates a client per image; gosseract clients are not safe for concurrent use.
func (r *Recognizer) Recognize(ctx context.Context, image []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c := r.clientFactory()
	defer c.Close()

	if r.cfg.TessdataDir != "" {
		if err := c.SetTessdataPrefix(r.cfg.TessdataDir); err != nil {
			return "", fmt.Errorf("set tessdata dir: %w", err)
		}
	}
	if err := c.SetLanguage(r.cfg.Languages()...); err != nil {
		return "", fmt.Errorf("set languages: %w", err)
	}
	if r.cfg.PSM > 0 {
		if err := c.SetPageSegMode(gosseract.PageSegMode(r.cfg.PSM)); err != nil {
			return "", fmt.Errorf("set page segmentation mode: %w", err)
		}
	}
	if r.cfg.DPI > 0 {
		if err := c.SetVariable(gosseract.SettableVariable("user_defined_dpi"), strconv.Itoa(r.cfg.DPI)); err != nil {
			return "", fmt.Errorf("set dpi: %w", err)
		}
	}
	if err := c.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}

	return text, nil
}
