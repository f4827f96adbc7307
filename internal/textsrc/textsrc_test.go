package textsrc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	jdFile := filepath.Join(dir, "jd.txt")
	if err := os.WriteFile(jdFile, []byte("\n  Python developer with SQL  \n"), 0o600); err != nil {
		t.Fatal(err)
	}
	emptyFile := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(emptyFile, []byte("  \n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		src     Source
		want    string
		wantErr string
	}{
		{
			name: "inline value is trimmed",
			src:  Source{Name: "job description", Value: "  Go engineer "},
			want: "Go engineer",
		},
		{
			name: "file wins over value",
			src:  Source{Name: "job description", Value: "ignored", File: jdFile},
			want: "Python developer with SQL",
		},
		{
			name:    "empty file",
			src:     Source{Name: "job description", File: emptyFile},
			wantErr: "is empty",
		},
		{
			name:    "missing file",
			src:     Source{Name: "job description", File: filepath.Join(dir, "nope.txt")},
			wantErr: "reading job description",
		},
		{
			name:    "nothing configured",
			src:     Source{},
			wantErr: "text source is not configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Load(tt.src)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLoadNotConfiguredIsSentinel(t *testing.T) {
	_, err := Load(Source{Name: "job description", Value: "   "})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestIsSet(t *testing.T) {
	if (Source{Value: "  "}).IsSet() {
		t.Fatal("blank value must not count as set")
	}
	if !(Source{File: "jd.txt"}).IsSet() {
		t.Fatal("file must count as set")
	}
}
