package shell_test

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/seek/internal/adapters/shell"
	"go.trai.ch/seek/internal/core/domain"
)

func requireShell(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	return "/bin/sh"
}

func TestRunner_CapturesOutput(t *testing.T) {
	sh := requireShell(t)

	out, err := shell.NewRunner().Run(context.Background(), domain.Command{
		Path: sh,
		Args: []string{"-c", "echo 'Python 3.12.1'; echo warn >&2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Python 3.12.1\n", out.Stdout)
	assert.Equal(t, "warn\n", out.Stderr)
	assert.Zero(t, out.ExitCode)
}

func TestRunner_NonZeroExit(t *testing.T) {
	sh := requireShell(t)

	out, err := shell.NewRunner().Run(context.Background(), domain.Command{
		Path: sh,
		Args: []string{"-c", "echo 'No module named PyInstaller' >&2; exit 3"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCommandFailed))
	assert.Equal(t, 3, out.ExitCode)
	assert.Contains(t, out.Stderr, "No module named PyInstaller")
}

func TestRunner_Timeout(t *testing.T) {
	sh := requireShell(t)

	start := time.Now()
	out, err := shell.NewRunner().Run(context.Background(), domain.Command{
		Path:    sh,
		Args:    []string{"-c", "sleep 5"},
		Timeout: 50 * time.Millisecond,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCommandTimeout))
	assert.Equal(t, -1, out.ExitCode)
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestRunner_MissingBinary(t *testing.T) {
	_, err := shell.NewRunner().Run(context.Background(), domain.Command{
		Path: filepath.Join(t.TempDir(), "does-not-exist"),
	})
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrCommandTimeout))
}
