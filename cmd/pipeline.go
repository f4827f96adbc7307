package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/resume-analyzer/internal/extractor"
	"github.com/spigell/resume-analyzer/internal/logger"
	"github.com/spigell/resume-analyzer/internal/ocr/libtesseract"
	"github.com/spigell/resume-analyzer/internal/ocr/tesseract"
	"github.com/spigell/resume-analyzer/internal/pdf/mupdf"
	"github.com/spigell/resume-analyzer/internal/pdf/pdfstream"
	"github.com/spigell/resume-analyzer/internal/pdf/plain"
	"github.com/spigell/resume-analyzer/internal/pdf/poppler"
	"github.com/spigell/resume-analyzer/internal/report"
	"github.com/spigell/resume-analyzer/internal/runner"
	"github.com/spigell/resume-analyzer/internal/scoring"
	"github.com/spigell/resume-analyzer/internal/sections"
	"github.com/spigell/resume-analyzer/internal/skills"
	"github.com/spigell/resume-analyzer/internal/textsrc"
)

const (
	readerMuPDF      = "mupdf"
	readerLedongthuc = "ledongthuc"
	readerPdfcpu     = "pdfcpu"

	rasterizerMuPDF   = "mupdf"
	rasterizerPoppler = "poppler"

	ocrTesseract = "tesseract"
	ocrGosseract = "gosseract"

	parserLedongthuc = "ledongthuc"
	parserPdfcpu     = "pdfcpu"
	parserPoppler    = "poppler"
)

// newExtractor wires the configured collaborators into an Extractor.
func newExtractor(cfg *ExtractConfig, logger *zap.Logger) (*extractor.Extractor, error) {
	if cfg == nil {
		cfg = &ExtractConfig{}
	}

	exec := runner.NewExec(logger.Named("exec"))
	tools := poppler.New(cfg.Poppler, exec, logger)

	var deps extractor.Deps
	deps.Logger = logger

	switch strings.ToLower(cfg.Reader) {
	case readerMuPDF, "":
		deps.Reader = mupdf.NewReader()
	case readerLedongthuc:
		deps.Reader = plain.New(logger)
	case readerPdfcpu:
		deps.Reader = pdfstream.New(logger)
	default:
		return nil, fmt.Errorf("unsupported reader: %s", cfg.Reader)
	}

	switch strings.ToLower(cfg.Rasterizer) {
	case rasterizerMuPDF, "":
		deps.Rasterizer = mupdf.NewRasterizer()
	case rasterizerPoppler:
		deps.Rasterizer = tools
	default:
		return nil, fmt.Errorf("unsupported rasterizer: %s", cfg.Rasterizer)
	}

	ocrCfg := cfg.Tesseract
	ocrCfg.DPI = cfg.DPI
	if ocrCfg.DPI <= 0 {
		ocrCfg.DPI = extractor.DefaultDPI
	}

	switch strings.ToLower(cfg.OCREngine) {
	case ocrTesseract, "":
		deps.Recognizer = tesseract.New(ocrCfg, exec, logger)
	case ocrGosseract:
		deps.Recognizer = libtesseract.New(ocrCfg)
	default:
		return nil, fmt.Errorf("unsupported ocr engine: %s", cfg.OCREngine)
	}

	switch strings.ToLower(cfg.AlternateParser) {
	case parserLedongthuc, "":
		deps.Parser = plain.New(logger)
	case parserPdfcpu:
		deps.Parser = pdfstream.New(logger)
	case parserPoppler:
		deps.Parser = tools
	default:
		return nil, fmt.Errorf("unsupported alternate parser: %s", cfg.AlternateParser)
	}

	logger.Debug("extractor wired",
		zap.String("reader", cfg.Reader),
		zap.String("rasterizer", cfg.Rasterizer),
		zap.String("ocr_engine", cfg.OCREngine),
		zap.String("alternate_parser", cfg.AlternateParser),
		zap.String("ocr_lang", ocrCfg.WithDefaults().Lang),
	)

	return extractor.New(&cfg.Config, deps)
}

// extractFile reads the PDF at path and extracts its text.
func extractFile(ctx context.Context, config *Config, path string, l *zap.Logger) (extractor.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return extractor.Result{}, fmt.Errorf("reading %s: %w", path, err)
	}

	docLogger := logger.WithDocumentFields(l, filepath.Base(path), "")

	ex, err := newExtractor(config.Extract, docLogger)
	if err != nil {
		return extractor.Result{}, fmt.Errorf("building extractor: %w", err)
	}

	return ex.Extract(ctx, data)
}

// analyzeFile runs the whole pipeline: extraction, segmentation, skills, ATS scoring.
func analyzeFile(ctx context.Context, config *Config, path string, l *zap.Logger) (*report.Report, error) {
	res, err := extractFile(ctx, config, path, l)
	if err != nil {
		return nil, err
	}

	m := sections.Segment(res.Text)
	l.Debug("sections detected", zap.Int("count", len(m)))

	analyzer, err := newAnalyzer(config.Skills)
	if err != nil {
		return nil, err
	}

	jd, err := resolveJobDescription(config.JobDescription)
	if err != nil {
		return nil, err
	}

	analysis := analyzer.Analyze(res.Text, jd)

	steps := scoring.Default()
	if config.Scoring != nil {
		for _, name := range config.Scoring.Disabled {
			if !scoring.DisableByName(steps, strings.TrimSpace(name), "disabled in config") {
				l.Warn("unknown ats component in scoring.disabled", zap.String("name", name))
			}
		}
	}
	l.Debug("ats components", zap.Any("components", scoring.Describe(steps)))
	breakdown := scoring.Run(scoring.Input{Analysis: analysis, Sections: m}, steps, l)

	return report.New(report.Input{
		Document:   filepath.Base(path),
		Extraction: res,
		Sections:   m,
		Analysis:   analysis,
		ATS:        breakdown,
	}), nil
}

func newAnalyzer(cfg *SkillsConfig) (*skills.Analyzer, error) {
	if cfg == nil || strings.TrimSpace(cfg.VocabularyFile) == "" {
		return skills.NewAnalyzer(skills.DefaultVocabulary()), nil
	}

	vocab, err := skills.LoadVocabulary(cfg.VocabularyFile)
	if err != nil {
		return nil, fmt.Errorf("loading skill vocabulary: %w", err)
	}

	return skills.NewAnalyzer(vocab), nil
}

// resolveJobDescription returns an empty string when no job description is configured.
func resolveJobDescription(cfg *TextConfig) (string, error) {
	if cfg == nil {
		return "", nil
	}

	src := textsrc.Source{
		Name:  "job description",
		Value: cfg.Text,
		File:  cfg.File,
	}
	if !src.IsSet() {
		return "", nil
	}

	return textsrc.Load(src)
}
