package cmd

import (
	"errors"
	"io/fs"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/resume-analyzer/internal/extractor"
	"github.com/spigell/resume-analyzer/internal/ocr"
	"github.com/spigell/resume-analyzer/internal/pdf/poppler"
)

const (
	app       = "resume-analyzer"
	envPrefix = "RESUME_ANALYZER"
)

type Config struct {
	Extract        *ExtractConfig  `mapstructure:"extract"`
	Skills         *SkillsConfig   `mapstructure:"skills"`
	Scoring        *ScoringConfig  `mapstructure:"scoring"`
	Report         *ReportConfig   `mapstructure:"report"`
	Template       *TemplateConfig `mapstructure:"template"`
	JobDescription *TextConfig     `mapstructure:"job-description"`
}

type ExtractConfig struct {
	extractor.Config `mapstructure:",squash"`

	Reader          string         `mapstructure:"reader"`
	Rasterizer      string         `mapstructure:"rasterizer"`
	OCREngine       string         `mapstructure:"ocr-engine"`
	AlternateParser string         `mapstructure:"alternate-parser"`
	Tesseract       ocr.Config     `mapstructure:"tesseract"`
	Poppler         poppler.Config `mapstructure:"poppler"`
}

type SkillsConfig struct {
	VocabularyFile string `mapstructure:"vocabulary-file"`
}

type ScoringConfig struct {
	Disabled []string `mapstructure:"disabled"`
}

type ReportConfig struct {
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

type TemplateConfig struct {
	Style string `mapstructure:"style"`
}

type TextConfig struct {
	Text string `mapstructure:"text"`
	File string `mapstructure:"file"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-analyzer extracts text from a PDF resume, scores it and suggests improvements",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-analyzer.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	setDefaults()
}

func setDefaults() {
	viper.SetDefault("extract.min-page-chars", extractor.DefaultMinPageChars)
	viper.SetDefault("extract.min-document-chars", extractor.DefaultMinDocumentChars)
	viper.SetDefault("extract.dpi", extractor.DefaultDPI)
	viper.SetDefault("extract.ocr-workers", extractor.DefaultOCRWorkers)
	viper.SetDefault("extract.open-timeout", extractor.DefaultOpenTimeout)
	viper.SetDefault("extract.ocr-timeout", extractor.DefaultOCRTimeout)
	viper.SetDefault("extract.reader", readerMuPDF)
	viper.SetDefault("extract.rasterizer", rasterizerMuPDF)
	viper.SetDefault("extract.ocr-engine", ocrTesseract)
	viper.SetDefault("extract.alternate-parser", parserLedongthuc)
	viper.SetDefault("extract.tesseract.binary", ocr.DefaultBinary)
	viper.SetDefault("extract.tesseract.lang", ocr.DefaultLang)
	viper.SetDefault("extract.tesseract.tessdata-dir", "")
	viper.SetDefault("extract.tesseract.psm", 0)
	viper.SetDefault("extract.poppler.pdftotext", poppler.DefaultPdftotext)
	viper.SetDefault("extract.poppler.pdftoppm", poppler.DefaultPdftoppm)
	viper.SetDefault("skills.vocabulary-file", "")
	viper.SetDefault("scoring.disabled", []string{})
	viper.SetDefault("report.format", "text")
	viper.SetDefault("report.output", "")
	viper.SetDefault("template.style", "Modern")
	viper.SetDefault("job-description.text", "")
	viper.SetDefault("job-description.file", "")
}

func initConfig() {
	// A missing .env is fine.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env: %v", err)
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	// Defaults cover every key, so only an explicitly requested or unparsable config is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
