package scanner

import (
	"context"
	"path/filepath"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
)

const frameworkVersions = "/Library/Frameworks/Python.framework/Versions"

// InstallDir finds interpreters under well-known installation roots.
type InstallDir struct{}

var _ ports.Scanner = InstallDir{}

// Name identifies the scanner.
func (InstallDir) Name() string { return "install-dir" }

// Scan tests each immediate subdirectory of every installation root.
func (InstallDir) Scan(ctx context.Context, in domain.ScanInput) ([]domain.InterpreterRecord, error) {
	return scanContainers(ctx, InstallRoots(in.Host), in.Host.OS, domain.ProvenanceInstallDir)
}

// InstallRoots returns the per-user roots followed by the machine-wide ones.
func InstallRoots(h domain.HostSnapshot) []string {
	var roots []string
	if h.IsWindows() {
		if local := h.Getenv("LOCALAPPDATA"); local != "" {
			roots = append(roots, filepath.Join(local, "Programs", "Python"))
		}
		roots = append(roots, h.Prefixes...)
		return uniq(roots)
	}

	roots = append(roots,
		h.HomePath(".pyenv", "versions"),
		h.HomePath(".local", "share", "uv", "python"),
	)
	for _, p := range h.Prefixes {
		roots = append(roots, filepath.Join(p, "python"))
	}
	if h.OS == "darwin" {
		roots = append(roots, frameworkVersions)
	}
	return uniq(roots)
}
