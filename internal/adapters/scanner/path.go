package scanner

import (
	"context"
	"path/filepath"
	"strings"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
)

// PathEnv finds interpreters in the directories listed by PATH.
type PathEnv struct{}

var _ ports.Scanner = PathEnv{}

// Name identifies the scanner.
func (PathEnv) Name() string { return "path" }

// Scan tests every interpreter name in every PATH directory.
func (PathEnv) Scan(ctx context.Context, in domain.ScanInput) ([]domain.InterpreterRecord, error) {
	var (
		out     []domain.InterpreterRecord
		errList errs
	)
	names := domain.InterpreterNames(in.Host.OS)

	for _, dir := range in.Host.PathDirs() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// Store aliases there only open the installer.
		if in.Host.IsWindows() && strings.Contains(strings.ToLower(dir), "windowsapps") {
			continue
		}
		for _, name := range names {
			candidate := filepath.Join(dir, name)
			ok, err := regularFile(candidate)
			if err != nil {
				errList.add(err, candidate)
				continue
			}
			if ok {
				out = append(out, domain.InterpreterRecord{Path: candidate, Provenance: domain.ProvenancePathEnv})
			}
		}
	}
	return out, errList.err()
}
