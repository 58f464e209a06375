package scanner

import (
	"context"
	"path/filepath"
	"strings"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
)

// Family describes how to locate one environment-manager distribution.
type Family struct {
	Name string
	// Vars are consulted in order. A variable ending in _EXE names the manager
	// executable, two levels below the root.
	Vars []string
	// Dirs are conventional root directory names under the home directory and
	// each install prefix.
	Dirs []string
}

// Families are the supported environment-manager distributions in resolution order.
var Families = []Family{
	{Name: "anaconda", Vars: []string{"CONDA_ROOT", "CONDA_EXE"}, Dirs: []string{"anaconda3", "Anaconda3", "anaconda"}},
	{Name: "miniconda", Vars: []string{"MINICONDA_HOME"}, Dirs: []string{"miniconda3", "Miniconda3", "miniconda"}},
	{Name: "miniforge", Vars: []string{"MINIFORGE_HOME"}, Dirs: []string{"miniforge3", "Miniforge3", "mambaforge"}},
	{Name: "micromamba", Vars: []string{"MAMBA_ROOT_PREFIX"}, Dirs: []string{"micromamba", ".micromamba"}},
}

// Manager finds environment-manager base interpreters and their environments.
// It also resolves manager roots for the invalidator and the version probe.
type Manager struct{}

var (
	_ ports.Scanner        = Manager{}
	_ ports.ManagerLocator = Manager{}
)

// Name identifies the scanner.
func (Manager) Name() string { return "env-manager" }

// Roots resolves the root of every family, one entry per distinct directory.
// Unreadable candidates are skipped.
func (Manager) Roots(h domain.HostSnapshot) []domain.ManagerRoot {
	roots, _ := resolveRoots(h)
	return roots
}

func resolveRoots(h domain.HostSnapshot) ([]domain.ManagerRoot, error) {
	var (
		out     []domain.ManagerRoot
		errList errs
	)
	seen := make(map[string]bool)
	for _, f := range Families {
		root, err := resolveRoot(f, h)
		if err != nil {
			errList = append(errList, err)
		}
		if root == "" || seen[root] {
			continue
		}
		seen[root] = true
		out = append(out, domain.ManagerRoot{Family: f.Name, Root: root})
	}
	return out, errList.err()
}

// resolveRoot returns the first candidate that is a directory. Stat failures
// are reported only when no candidate resolves.
func resolveRoot(f Family, h domain.HostSnapshot) (string, error) {
	var candidates []string
	for _, v := range f.Vars {
		val := h.Getenv(v)
		if val == "" {
			continue
		}
		if strings.HasSuffix(v, "_EXE") {
			val = filepath.Dir(filepath.Dir(val))
		}
		candidates = append(candidates, val)
	}
	for _, d := range f.Dirs {
		candidates = append(candidates, h.HomePath(d))
	}
	for _, p := range h.Prefixes {
		for _, d := range f.Dirs {
			candidates = append(candidates, filepath.Join(p, d))
		}
	}

	var errList errs
	for _, c := range candidates {
		ok, err := dirExists(c)
		if err != nil {
			errList.add(err, c)
			continue
		}
		if ok {
			return filepath.Clean(c), nil
		}
	}
	return "", errList.err()
}

// Scan reports the base interpreter of each resolved root and every
// environment under its envs folder.
func (m Manager) Scan(ctx context.Context, in domain.ScanInput) ([]domain.InterpreterRecord, error) {
	var (
		out     []domain.InterpreterRecord
		errList errs
	)
	roots, err := resolveRoots(in.Host)
	if err != nil {
		errList = append(errList, err)
	}
	for _, root := range roots {
		base, err := scanRoots(ctx, []string{root.Root}, in.Host.OS, domain.ProvenanceManagerBase)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			errList = append(errList, err)
		}
		out = append(out, base...)

		envs, err := scanContainers(ctx, []string{root.EnvsDir()}, in.Host.OS, domain.ProvenanceManagerEnv)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			errList = append(errList, err)
		}
		out = append(out, envs...)
	}
	return out, errList.err()
}
