// Package scanner enumerates candidate interpreters, one scanner per
// provenance. Scanners read nothing but their domain.ScanInput and the
// filesystem, so they can run in any order or concurrently.
package scanner

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/zerr"
)

// errs collects the filesystem failures of one scan. Missing paths are
// ignored.
type errs []error

func (e *errs) add(err error, path string) {
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return
	}
	*e = append(*e, zerr.With(zerr.Wrap(err, "failed to read source"), "path", path))
}

func (e errs) err() error {
	return errors.Join(e...)
}

// regularFile reports whether path is an existing regular file.
func regularFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// isDir reports whether path is an existing directory.
func isDir(path string) bool {
	ok, _ := dirExists(path)
	return ok
}

// dirExists is isDir for callers that report stat failures other than a
// missing path.
func dirExists(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// subdirs lists the immediate subdirectories of dir in lexical order,
// following symlinks. Cancellation is checked between entries.
func subdirs(ctx context.Context, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p := filepath.Join(dir, e.Name())
		if e.IsDir() || (e.Type()&fs.ModeSymlink != 0 && isDir(p)) {
			out = append(out, p)
		}
	}
	return out, nil
}

// findInterpreter returns the first interpreter present in an environment root.
func findInterpreter(root, goos string) (string, error) {
	var errList errs
	for _, candidate := range domain.InterpreterPaths(root, goos) {
		ok, err := regularFile(candidate)
		if err != nil {
			errList.add(err, candidate)
			continue
		}
		if ok {
			return candidate, nil
		}
	}
	return "", errList.err()
}

// scanRoots tests each root for an interpreter and records hits with the
// given provenance.
func scanRoots(ctx context.Context, roots []string, goos string, p domain.Provenance) ([]domain.InterpreterRecord, error) {
	var (
		out     []domain.InterpreterRecord
		errList errs
	)
	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path, err := findInterpreter(root, goos)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		if path != "" {
			out = append(out, domain.InterpreterRecord{Path: path, Provenance: p, EnvRoot: root})
		}
	}
	return out, errList.err()
}

// scanContainers tests every subdirectory of each container directory.
func scanContainers(ctx context.Context, containers []string, goos string, p domain.Provenance) ([]domain.InterpreterRecord, error) {
	var (
		out     []domain.InterpreterRecord
		errList errs
	)
	for _, c := range containers {
		roots, err := subdirs(ctx, c)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			errList.add(err, c)
			continue
		}
		recs, err := scanRoots(ctx, roots, goos, p)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			errList = append(errList, err)
		}
		out = append(out, recs...)
	}
	return out, errList.err()
}

// uniq drops empty and repeated paths, keeping the first occurrence.
func uniq(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		p = filepath.Clean(p)
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
