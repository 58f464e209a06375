package scanner

import (
	"context"
	"path/filepath"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
)

// Virtualenv finds standalone virtual environments and the siblings of
// environments found by other scanners.
type Virtualenv struct{}

var _ ports.Scanner = Virtualenv{}

// Name identifies the scanner.
func (Virtualenv) Name() string { return "virtualenv" }

// Scan walks the sibling folders of found environments, the conventional
// container directories, and the active and project-local environments.
func (Virtualenv) Scan(ctx context.Context, in domain.ScanInput) ([]domain.InterpreterRecord, error) {
	containers := uniq(append(siblingContainers(in.Found), ContainerDirs(in.Host)...))
	fromContainers, err := scanContainers(ctx, containers, in.Host.OS, domain.ProvenanceVirtualenv)
	if err != nil && ctx.Err() != nil {
		return nil, ctx.Err()
	}

	direct, directErr := scanRoots(ctx, DirectRoots(in.Host), in.Host.OS, domain.ProvenanceVirtualenv)
	if directErr != nil && ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return append(fromContainers, direct...), joinErrs(err, directErr)
}

// siblingContainers returns the envs folders holding already-found environments.
func siblingContainers(found []domain.InterpreterRecord) []string {
	var out []string
	for _, rec := range found {
		parent := filepath.Dir(rec.Root())
		if filepath.Base(parent) == domain.EnvsDirName {
			out = append(out, parent)
		}
	}
	return out
}

// ContainerDirs returns the conventional directories holding many virtual environments.
func ContainerDirs(h domain.HostSnapshot) []string {
	workon := h.Getenv("WORKON_HOME")
	if workon == "" {
		workon = h.HomePath(".virtualenvs")
	}
	return uniq([]string{
		workon,
		h.HomePath(".venvs"),
		h.HomePath("venvs"),
		h.HomePath(".local", "share", "virtualenvs"),
	})
}

// DirectRoots returns single environments: the active one and the project-local ones.
func DirectRoots(h domain.HostSnapshot) []string {
	roots := []string{h.Getenv("VIRTUAL_ENV")}
	if h.WorkDir != "" {
		roots = append(roots, filepath.Join(h.WorkDir, ".venv"), filepath.Join(h.WorkDir, "venv"))
	}
	return uniq(roots)
}

func joinErrs(a, b error) error {
	var e errs
	if a != nil {
		e = append(e, a)
	}
	if b != nil {
		e = append(e, b)
	}
	return e.err()
}
