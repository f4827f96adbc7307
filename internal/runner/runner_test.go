package runner

import (
	"context"
	"os/exec"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestExecRun(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh is not available")
	}

	core, logs := observer.New(zap.DebugLevel)
	r := NewExec(zap.New(core))

	out, _, err := r.Run(context.Background(), "sh", "-c", "printf hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "hello" {
		t.Fatalf("expected stdout %q, got %q", "hello", out)
	}
	if logs.FilterMessage("exec ok").Len() != 1 {
		t.Fatalf("expected an exec ok entry, got %v", logs.All())
	}
}

func TestExecRunFailure(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh is not available")
	}

	core, logs := observer.New(zap.DebugLevel)
	r := NewExec(zap.New(core))

	_, stderr, err := r.Run(context.Background(), "sh", "-c", "printf boom >&2; exit 3")
	if err == nil {
		t.Fatal("expected an error")
	}
	if string(stderr) != "boom" {
		t.Fatalf("expected stderr %q, got %q", "boom", stderr)
	}

	entries := logs.FilterMessage("exec failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected one exec failed entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["stderr"]; got != "boom" {
		t.Fatalf("expected logged stderr %q, got %v", "boom", got)
	}
}

func TestNewExecNilLogger(t *testing.T) {
	if NewExec(nil).logger == nil {
		t.Fatal("expected a no-op logger")
	}
}
