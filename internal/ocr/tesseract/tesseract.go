// Package tesseract runs the tesseract binary over page images.
package tesseract

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/resume-analyzer/internal/ocr"
	"github.com/spigell/resume-analyzer/internal/runner"
)

type Recognizer struct {
	cfg    ocr.Config
	runner runner.Runner
	logger *zap.Logger
}

func New(cfg ocr.Config, r runner.Runner, l *zap.Logger) *Recognizer {
	if l == nil {
		l = zap.NewNop()
	}
	if r == nil {
		r = runner.NewExec(l)
	}
	return &Recognizer{cfg: cfg.WithDefaults(), runner: r, logger: l}
}

func (t *Recognizer) Recognize(ctx context.Context, image []byte) (string, error) {
	f, err := os.CreateTemp("", "resume-analyzer-ocr-*.png")
	if err != nil {
		return "", err
	}
	path := f.Name()
	defer func() {
		if err := os.Remove(path); err != nil {
			t.logger.Warn("failed to remove temp image", zap.String("path", path), zap.Error(err))
		}
	}()

	if _, err := f.Write(image); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	// tesseract <file> stdout -l <lang>
	out, errb, err := t.runner.Run(ctx, t.cfg.Binary, t.args(path)...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w: %s", err, strings.TrimSpace(string(errb)))
	}

	return string(out), nil
}

func (t *Recognizer) args(path string) []string {
	args := []string{path, "stdout", "-l", t.cfg.Lang}
	if t.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", t.cfg.TessdataDir)
	}
	if t.cfg.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(t.cfg.PSM))
	}
	if t.cfg.DPI > 0 {
		args = append(args, "--dpi", strconv.Itoa(t.cfg.DPI))
	}
	return args
}
