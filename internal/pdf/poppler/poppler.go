// Package poppler shells out to the poppler-utils binaries pdftotext and pdftoppm.
package poppler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/resume-analyzer/internal/runner"
)

const (
	DefaultPdftotext = "pdftotext"
	DefaultPdftoppm  = "pdftoppm"
)

// Config names the binaries to run.
type Config struct {
	Pdftotext string `mapstructure:"pdftotext"`
	Pdftoppm  string `mapstructure:"pdftoppm"`
}

// Tools implements both the alternate Parser (pdftotext) and the Rasterizer (pdftoppm).
type Tools struct {
	cfg    Config
	runner runner.Runner
	logger *zap.Logger
}

func New(cfg Config, r runner.Runner, l *zap.Logger) *Tools {
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = DefaultPdftotext
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = DefaultPdftoppm
	}
	if l == nil {
		l = zap.NewNop()
	}
	if r == nil {
		r = runner.NewExec(l)
	}
	return &Tools{cfg: cfg, runner: r, logger: l}
}

// Parse runs pdftotext. Pages are separated by form feeds in its output.
func (t *Tools) Parse(ctx context.Context, data []byte) (string, int, error) {
	dir, path, err := t.writeTemp(data)
	if err != nil {
		return "", 0, err
	}
	defer t.removeTemp(dir)

	// pdftotext -enc UTF-8 -eol unix <in.pdf> -
	out, errb, err := t.runner.Run(ctx, t.cfg.Pdftotext, "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", 0, fmt.Errorf("pdftotext: %w: %s", err, strings.TrimSpace(string(errb)))
	}

	text := string(out)
	pages := strings.Count(text, "\f")
	if pages == 0 && strings.TrimSpace(text) != "" {
		pages = 1
	}

	return strings.ReplaceAll(text, "\f", "\n\n"), pages, nil
}

// Rasterize runs pdftoppm for a single zero-based page.
func (t *Tools) Rasterize(ctx context.Context, data []byte, page, dpi int) ([]byte, error) {
	dir, path, err := t.writeTemp(data)
	if err != nil {
		return nil, err
	}
	defer t.removeTemp(dir)

	prefix := filepath.Join(dir, "page")
	pageNr := strconv.Itoa(page + 1)

	// pdftoppm -r 300 -png -f N -l N -singlefile <in.pdf> <tmp/page>
	_, errb, err := t.runner.Run(ctx, t.cfg.Pdftoppm,
		"-r", strconv.Itoa(dpi), "-png", "-f", pageNr, "-l", pageNr, "-singlefile", path, prefix)
	if err != nil {
		return nil, fmt.Errorf("pdftoppm: %w: %s", err, strings.TrimSpace(string(errb)))
	}

	img, err := os.ReadFile(prefix + ".png")
	if err != nil {
		return nil, fmt.Errorf("pdftoppm produced no image for page %s: %w", pageNr, err)
	}

	return img, nil
}

func (t *Tools) writeTemp(data []byte) (string, string, error) {
	dir, err := os.MkdirTemp("", "resume-analyzer-poppler-*")
	if err != nil {
		return "", "", err
	}

	path := filepath.Join(dir, "in.pdf")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.removeTemp(dir)
		return "", "", err
	}

	return dir, path, nil
}

func (t *Tools) removeTemp(dir string) {
	if err := os.RemoveAll(dir); err != nil {
		t.logger.Warn("failed to remove temp dir", zap.String("dir", dir), zap.Error(err))
	}
}
