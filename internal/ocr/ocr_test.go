package ocr

import (
	"slices"
	"testing"
)

func TestWithDefaults(t *testing.T) {
	t.Parallel()

	cfg := Config{}.WithDefaults()
	if cfg.Binary != DefaultBinary || cfg.Lang != DefaultLang {
		t.Fatalf("unexpected defaults %+v", cfg)
	}

	cfg = Config{Binary: "/usr/local/bin/tesseract", Lang: "deu"}.WithDefaults()
	if cfg.Binary != "/usr/local/bin/tesseract" || cfg.Lang != "deu" {
		t.Fatalf("explicit values must be kept, got %+v", cfg)
	}
}

func TestLanguages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lang   string
		expect []string
	}{
		{lang: "eng", expect: []string{"eng"}},
		{lang: "eng+deu", expect: []string{"eng", "deu"}},
		{lang: " eng + + rus ", expect: []string{"eng", "rus"}},
		{lang: "", expect: nil},
	}

	for _, tt := range tests {
		if got := (Config{Lang: tt.lang}).Languages(); !slices.Equal(got, tt.expect) {
			t.Fatalf("Languages(%q): expected %v, got %v", tt.lang, tt.expect, got)
		}
	}
}
