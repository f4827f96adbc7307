// Package runner executes external programs such as pdftoppm and tesseract.
package runner

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/spigell/resume-analyzer/internal/utils"

	"go.uber.org/zap"
)

// stderrLogLimit caps how much of a failing command's stderr ends up in logs.
const stderrLogLimit = 8 << 10

// Runner lets callers stub external commands in tests.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// Exec runs commands with os/exec.
type Exec struct {
	logger *zap.Logger
}

// NewExec returns a Runner backed by os/exec.
func NewExec(logger *zap.Logger) *Exec {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exec{logger: logger}
}

func (e *Exec) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	start := time.Now()

	e.logger.Debug("running command", zap.String("cmd_line", strings.Join(append([]string{name}, args...), " ")))

	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	err := cmd.Run()
	dur := time.Since(start)

	if err != nil {
		e.logger.Error("exec failed",
			zap.String("cmd", name),
			zap.Int64("duration_ms", dur.Milliseconds()),
			zap.Error(err),
			zap.String("stderr", utils.TruncateForLog(errb.String(), stderrLogLimit)),
		)
	} else {
		e.logger.Debug("exec ok",
			zap.String("cmd", name),
			zap.Int64("duration_ms", dur.Milliseconds()),
			zap.Int("stdout_bytes", out.Len()),
			zap.Int("stderr_bytes", errb.Len()),
		)
	}

	return out.Bytes(), errb.Bytes(), err
}
