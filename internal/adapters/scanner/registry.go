package scanner

import (
	"context"
	"errors"
	"path/filepath"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
	"go.trai.ch/zerr"
)

// registryNamespaces are the native and 32-bit compatibility registration keys.
var registryNamespaces = []string{
	`SOFTWARE\Python\PythonCore`,
	`SOFTWARE\WOW6432Node\Python\PythonCore`,
}

// Registry finds interpreters registered in the host package registry.
type Registry struct {
	reader ports.RegistryReader
}

// NewRegistry creates a Registry scanner reading through reader.
func NewRegistry(reader ports.RegistryReader) *Registry {
	return &Registry{reader: reader}
}

var _ ports.Scanner = (*Registry)(nil)

// Name identifies the scanner.
func (*Registry) Name() string { return "registry" }

// Scan reads the install path of every registered version under both scopes.
// A host without a registry reports ErrSourceUnavailable.
func (r *Registry) Scan(ctx context.Context, _ domain.ScanInput) ([]domain.InterpreterRecord, error) {
	var (
		out     []domain.InterpreterRecord
		errList errs
	)

	for _, scope := range []domain.RegistryScope{domain.ScopeMachine, domain.ScopeUser} {
		for _, ns := range registryNamespaces {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			versions, err := r.reader.SubKeys(scope, ns)
			switch {
			case errors.Is(err, domain.ErrRegistryUnavailable):
				return nil, zerr.Wrap(domain.ErrSourceUnavailable, err.Error())
			case errors.Is(err, domain.ErrRegistryKeyNotFound):
				continue
			case err != nil:
				errList = append(errList, err)
				continue
			}

			for _, version := range versions {
				rec, ok, err := r.lookup(scope, ns+`\`+version)
				if err != nil {
					errList = append(errList, err)
					continue
				}
				if ok {
					out = append(out, rec)
				}
			}
		}
	}
	return out, errList.err()
}

func (r *Registry) lookup(scope domain.RegistryScope, key string) (domain.InterpreterRecord, bool, error) {
	install, err := r.reader.StringValue(scope, key+`\InstallPath`, "")
	if errors.Is(err, domain.ErrRegistryKeyNotFound) || (err == nil && install == "") {
		return domain.InterpreterRecord{}, false, nil
	}
	if err != nil {
		return domain.InterpreterRecord{}, false, err
	}

	var errList errs
	for _, candidate := range []string{
		filepath.Join(install, "python.exe"),
		filepath.Join(install, "bin", "python.exe"),
	} {
		ok, err := regularFile(candidate)
		if err != nil {
			errList.add(err, candidate)
			continue
		}
		if ok {
			return domain.InterpreterRecord{
				Path:       candidate,
				Provenance: domain.ProvenanceRegistry,
				EnvRoot:    filepath.Clean(install),
			}, true, nil
		}
	}
	return domain.InterpreterRecord{}, false, errList.err()
}
