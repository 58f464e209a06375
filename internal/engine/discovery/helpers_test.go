package discovery_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	return path
}

func mkdir(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0o750))
	return path
}

// backdate sets the modification time of every path under root to an hour ago.
func backdate(t *testing.T, root string) {
	t.Helper()
	old := time.Now().Add(-time.Hour)
	require.NoError(t, filepath.Walk(root, func(path string, _ os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		return os.Chtimes(path, old, old)
	}))
}

// bump marks path as modified now.
func bump(t *testing.T, path string) {
	t.Helper()
	now := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, now, now))
}

func chtimes(path string, at time.Time) error {
	return os.Chtimes(path, at, at)
}
