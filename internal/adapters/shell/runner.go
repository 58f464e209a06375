// Package shell provides the external process runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"time"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
	"go.trai.ch/zerr"
)

// waitDelay bounds how long Run waits for pipes after the process is killed.
const waitDelay = time.Second

// Runner implements ports.CommandRunner using os/exec.
type Runner struct{}

// NewRunner creates a new Runner.
func NewRunner() *Runner {
	return &Runner{}
}

var _ ports.CommandRunner = (*Runner)(nil)

// Run executes the command and captures both output streams.
// A non-zero exit returns the captured output together with an error
// matching domain.ErrCommandFailed.
func (r *Runner) Run(ctx context.Context, c domain.Command) (domain.CommandOutput, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, c.Path, c.Args...) //nolint:gosec // interpreter paths come from discovery
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay
	cmd.SysProcAttr = sysProcAttr()

	err := cmd.Run()
	out := domain.CommandOutput{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err == nil {
		return out, nil
	}

	name := filepath.Base(c.Path)

	if ctxErr := ctx.Err(); ctxErr != nil {
		out.ExitCode = -1
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return out, zerr.With(zerr.Wrap(domain.ErrCommandTimeout, name), "timeout", c.Timeout.String())
		}
		return out, zerr.Wrap(ctxErr, name)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		out.ExitCode = exitErr.ExitCode()
		failed := zerr.With(zerr.Wrap(domain.ErrCommandFailed, name), "exit_code", out.ExitCode)
		return out, zerr.With(failed, "stderr", out.Stderr)
	}

	out.ExitCode = -1
	return out, zerr.With(zerr.Wrap(err, domain.ErrCommandFailed.Error()), "path", c.Path)
}
