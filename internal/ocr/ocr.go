// Package ocr holds the settings shared by the OCR engines.
package ocr

import "strings"

const (
	DefaultBinary = "tesseract"
	DefaultLang   = "eng"
)

// Config configures a tesseract engine, whether run as a binary or linked in.
type Config struct {
	Binary      string `mapstructure:"binary"`
	Lang        string `mapstructure:"lang"`
	TessdataDir string `mapstructure:"tessdata-dir"`
	PSM         int    `mapstructure:"psm"`
	// DPI is the resolution the images were rendered at.
	DPI int `mapstructure:"-"`
}

// WithDefaults fills the binary and language when unset.
func (c Config) WithDefaults() Config {
	if strings.TrimSpace(c.Binary) == "" {
		c.Binary = DefaultBinary
	}
	if strings.TrimSpace(c.Lang) == "" {
		c.Lang = DefaultLang
	}
	return c
}

// Languages splits a tesseract language string such as "eng+deu".
func (c Config) Languages() []string {
	var langs []string
	for _, l := range strings.Split(c.Lang, "+") {
		if l = strings.TrimSpace(l); l != "" {
			langs = append(langs, l)
		}
	}
	return langs
}
