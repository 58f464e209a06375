package validator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/seek/internal/adapters/validator"
)

// layout creates dirs (trailing slash) and files under root.
func layout(t *testing.T, root string, entries ...string) {
	t.Helper()
	for _, e := range entries {
		p := filepath.Join(root, filepath.FromSlash(e))
		if e[len(e)-1] == '/' {
			require.NoError(t, os.MkdirAll(p, 0o750))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
		require.NoError(t, os.WriteFile(p, nil, 0o600))
	}
}

func TestValidator_Grade(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		target  string
		want    validator.Grade
	}{
		{"manager base with condabin", []string{"conda-meta/", "condabin/", "bin/python3"}, "bin/python3", validator.GradeManagerBase},
		{"manager base with envs", []string{"conda-meta/", "envs/", "python.exe"}, "python.exe", validator.GradeManagerBase},
		{"manager base with conda exe", []string{"conda-meta/", "_conda.exe"}, "", validator.GradeManagerBase},
		{"virtualenv manifest", []string{"pyvenv.cfg", "bin/python"}, "bin/python", validator.GradeVirtualenv},
		{"manifest wins over layout", []string{"pyvenv.cfg", "bin/pip", "bin/python"}, "bin/python", validator.GradeVirtualenv},
		{"conda metadata only", []string{"conda-meta/", "bin/python3"}, "bin/python3", validator.GradeManagerMeta},
		{"windows site-packages", []string{"Lib/site-packages/", "python.exe"}, "python.exe", validator.GradeLayout},
		{"unix site-packages", []string{"lib/python3.12/site-packages/", "bin/python3"}, "bin/python3", validator.GradeLayout},
		{"debian dist-packages", []string{"lib/python3/dist-packages/", "bin/python3"}, "bin/python3", validator.GradeLayout},
		{"pip executable", []string{"Scripts/pip.exe", "Scripts/python.exe"}, "Scripts/python.exe", validator.GradeLayout},
		{"activation script", []string{"bin/activate", "bin/python"}, "bin/python", validator.GradeLayout},
		{"powershell activation", []string{"Scripts/Activate.ps1"}, "", validator.GradeLayout},
		{"bare interpreter", []string{"bin/python3"}, "bin/python3", validator.GradeRejected},
		{"empty root", []string{"bin/"}, "", validator.GradeRejected},
	}

	v := validator.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			layout(t, root, tt.entries...)

			target := root
			if tt.target != "" {
				target = filepath.Join(root, filepath.FromSlash(tt.target))
			}
			assert.Equal(t, tt.want, v.Grade(target), "grade %s", v.Grade(target))
			assert.Equal(t, tt.want != validator.GradeRejected, v.IsValid(target))
		})
	}
}

func TestValidator_MissingPath(t *testing.T) {
	root := t.TempDir()
	layout(t, root, "pyvenv.cfg")

	v := validator.New()
	assert.False(t, v.IsValid(filepath.Join(root, "bin", "python3")), "a missing interpreter is rejected even under a valid root")
	assert.False(t, v.IsValid(filepath.Join(root, "nope")))
}

func TestGrade_String(t *testing.T) {
	assert.Equal(t, "manager-base", validator.GradeManagerBase.String())
	assert.Equal(t, "rejected", validator.GradeRejected.String())
	assert.Equal(t, "layout", validator.GradeLayout.String())
}
