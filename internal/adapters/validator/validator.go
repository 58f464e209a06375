// Package validator decides whether a discovered interpreter belongs to a
// usable environment by looking for the markers its root must carry.
package validator

import (
	"context"
	"os"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
)

// NodeID is the unique identifier for the validator Graft node.
const NodeID graft.ID = "adapter.validator"

// Grade is the first marker set an environment root satisfied.
type Grade int

const (
	// GradeRejected means no marker set matched.
	GradeRejected Grade = iota
	// GradeManagerBase is conda metadata together with a manager executable or envs folder.
	GradeManagerBase
	// GradeVirtualenv is a virtual environment manifest.
	GradeVirtualenv
	// GradeManagerMeta is conda metadata alone.
	GradeManagerMeta
	// GradeLayout is a standard library layout, pip or an activation script.
	GradeLayout
)

// String returns the grade name.
func (g Grade) String() string {
	switch g {
	case GradeManagerBase:
		return "manager-base"
	case GradeVirtualenv:
		return "virtualenv"
	case GradeManagerMeta:
		return "manager-meta"
	case GradeLayout:
		return "layout"
	default:
		return "rejected"
	}
}

var (
	managerMarkers = []string{
		"condabin",
		domain.EnvsDirName,
		filepath.Join("bin", "conda"),
		filepath.Join("Scripts", "conda.exe"),
		"_conda.exe",
	}

	layoutMarkers = []string{
		filepath.Join("Lib", "site-packages"),
		filepath.Join("bin", "pip"),
		filepath.Join("bin", "pip3"),
		filepath.Join("Scripts", "pip.exe"),
		filepath.Join("Scripts", "pip3.exe"),
		filepath.Join("bin", "activate"),
		filepath.Join("Scripts", "activate.bat"),
		filepath.Join("Scripts", "Activate.ps1"),
	}

	layoutGlobs = []string{
		filepath.Join("lib", "python*", "site-packages"),
		filepath.Join("lib", "python*", "dist-packages"),
	}
)

// Validator implements ports.Validator against the local filesystem.
type Validator struct{}

// New creates a new Validator.
func New() *Validator {
	return &Validator{}
}

var _ ports.Validator = (*Validator)(nil)

// IsValid reports whether path passes any marker check.
func (v *Validator) IsValid(path string) bool {
	return v.Grade(path) != GradeRejected
}

// Grade grades path. A directory is graded as an environment root; a file is
// graded on the root inferred from its location.
func (v *Validator) Grade(path string) Grade {
	info, err := os.Stat(path)
	if err != nil {
		return GradeRejected
	}

	root := path
	if !info.IsDir() {
		root = domain.InferEnvRoot(path)
	}

	hasMeta := exists(root, "conda-meta")
	switch {
	case hasMeta && anyExists(root, managerMarkers):
		return GradeManagerBase
	case exists(root, "pyvenv.cfg"):
		return GradeVirtualenv
	case hasMeta:
		return GradeManagerMeta
	case anyExists(root, layoutMarkers) || anyGlob(root, layoutGlobs):
		return GradeLayout
	default:
		return GradeRejected
	}
}

func exists(root, rel string) bool {
	_, err := os.Stat(filepath.Join(root, rel))
	return err == nil
}

func anyExists(root string, rels []string) bool {
	for _, rel := range rels {
		if exists(root, rel) {
			return true
		}
	}
	return false
}

func anyGlob(root string, patterns []string) bool {
	for _, p := range patterns {
		matches, err := filepath.Glob(filepath.Join(root, p))
		if err == nil && len(matches) > 0 {
			return true
		}
	}
	return false
}

func init() {
	graft.Register(graft.Node[ports.Validator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Validator, error) {
			return New(), nil
		},
	})
}
