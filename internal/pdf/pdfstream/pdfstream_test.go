package pdfstream

import (
	"context"
	"strings"
	"testing"
)

func TestContentText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		expect  string
	}{
		{
			name:    "empty",
			content: "",
			expect:  "",
		},
		{
			name:    "simple show",
			content: "BT /F1 12 Tf 72 712 Td (Hello) Tj ET",
			expect:  "Hello",
		},
		{
			name:    "positioning and arrays",
			content: "BT\n/F1 12 Tf\n72 712 Td\n(Jane Doe) Tj\n0 -14 Td\n[(Sk) -30 (ills)] TJ\nT*\n(Python\\051 and \\(Go\\)) '\nET",
			expect:  "Jane Doe Skills\nPython) and (Go)",
		},
		{
			name:    "nested parentheses",
			content: "BT (a (b) c) Tj ET",
			expect:  "a (b) c",
		},
		{
			name:    "hex strings are skipped",
			content: "BT <48656c6c6f> Tj (x) Tj ET",
			expect:  "x",
		},
		{
			name:    "comments are skipped",
			content: "BT\n% (hidden) Tj\n(shown) Tj\nET",
			expect:  "shown",
		},
		{
			name:    "strings without a show operator are dropped",
			content: "/Span <</ActualText (ignored)>> BDC (orphan) BT (kept) Tj ET EMC",
			expect:  "kept",
		},
		{
			name:    "escapes",
			content: "BT (tab\\there) Tj T* (line\\nbreak) Tj ET",
			expect:  "tab\there\nline\nbreak",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ContentText([]byte(tt.content)); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, _, err := New(nil).Parse(context.Background(), []byte("definitely not a pdf")); err == nil {
		t.Fatal("expected an error")
	}
}

func TestOpenRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := New(nil).Open(context.Background(), []byte("definitely not a pdf")); err == nil {
		t.Fatal("expected an error")
	}
}

func TestRecoveredTurnsPanicIntoError(t *testing.T) {
	t.Parallel()

	parse := func() (err error) {
		defer recovered(&err)
		panic("index out of range in xref")
	}

	err := parse()
	if err == nil || !strings.Contains(err.Error(), "index out of range in xref") {
		t.Fatalf("expected the panic to be returned as an error, got %v", err)
	}
}

func TestParseTruncatedDocument(t *testing.T) {
	t.Parallel()

	truncated := []byte("%PDF-1.7\n1 0 obj\n<< /Type /Catalog /Pages 2 0 R\nstream\nBT (Hi) Tj")
	if _, _, err := New(nil).Parse(context.Background(), truncated); err == nil {
		t.Fatal("expected an error")
	}
	if _, err := New(nil).Open(context.Background(), truncated); err == nil {
		t.Fatal("expected an error")
	}
}
