package domain

import (
	"cmp"
	"maps"
	"path/filepath"
	"slices"
	"time"
)

// Provenance identifies the discovery source that produced an InterpreterRecord.
type Provenance string

const (
	// ProvenancePathEnv marks interpreters found on the PATH variable.
	ProvenancePathEnv Provenance = "path-env"
	// ProvenanceInstallDir marks interpreters found under well-known install roots.
	ProvenanceInstallDir Provenance = "install-dir"
	// ProvenanceRegistry marks interpreters registered in the host package registry.
	ProvenanceRegistry Provenance = "registry"
	// ProvenanceManagerBase marks the base interpreter of an environment manager.
	ProvenanceManagerBase Provenance = "env-manager-base"
	// ProvenanceManagerEnv marks interpreters inside an environment manager's envs folder.
	ProvenanceManagerEnv Provenance = "env-manager-env"
	// ProvenanceVirtualenv marks interpreters inside standalone virtual environments.
	ProvenanceVirtualenv Provenance = "virtualenv"
)

// Rank orders provenances by specificity. The higher rank wins when two
// scanners report the same path.
func (p Provenance) Rank() int {
	switch p {
	case ProvenanceManagerEnv:
		return 6
	case ProvenanceManagerBase:
		return 5
	case ProvenanceVirtualenv:
		return 4
	case ProvenanceRegistry:
		return 3
	case ProvenanceInstallDir:
		return 2
	case ProvenancePathEnv:
		return 1
	default:
		return 0
	}
}

// InterpreterRecord is a single interpreter found during a scan.
type InterpreterRecord struct {
	Path       string     `json:"path"`
	Provenance Provenance `json:"provenance"`
	EnvRoot    string     `json:"env_root,omitzero"`
}

// Root returns the owning environment root, inferring it from the path when
// the scanner did not record one.
func (r InterpreterRecord) Root() string {
	if r.EnvRoot != "" {
		return r.EnvRoot
	}
	return InferEnvRoot(r.Path)
}

// DiscoveryResult is the immutable outcome of one discovery.
type DiscoveryResult struct {
	Interpreters []InterpreterRecord `json:"interpreters"`
	CompletedAt  time.Time           `json:"completed_at"`
	FromCache    bool                `json:"from_cache"`
	Mode         Mode                `json:"mode"`
	// SessionVars records which manager session variables were set at scan time.
	SessionVars map[string]bool `json:"-"`
	// EnvDirs lists the manager envs directories that existed at scan time.
	EnvDirs []string `json:"-"`
}

// Clone returns a deep copy of the result.
func (r DiscoveryResult) Clone() DiscoveryResult {
	out := r
	out.Interpreters = slices.Clone(r.Interpreters)
	out.SessionVars = maps.Clone(r.SessionVars)
	out.EnvDirs = slices.Clone(r.EnvDirs)
	return out
}

// Paths returns the interpreter paths in result order.
func (r DiscoveryResult) Paths() []string {
	paths := make([]string, 0, len(r.Interpreters))
	for _, rec := range r.Interpreters {
		paths = append(paths, rec.Path)
	}
	return paths
}

// NormalizeRecords deduplicates records by cleaned path, keeping the
// highest-ranked provenance, and orders them by path length then lexically.
func NormalizeRecords(records []InterpreterRecord) []InterpreterRecord {
	byPath := make(map[string]InterpreterRecord, len(records))
	for _, rec := range records {
		rec.Path = filepath.Clean(rec.Path)
		if rec.EnvRoot != "" {
			rec.EnvRoot = filepath.Clean(rec.EnvRoot)
		}
		existing, ok := byPath[rec.Path]
		if !ok || rec.Provenance.Rank() > existing.Provenance.Rank() {
			byPath[rec.Path] = rec
		}
	}

	out := slices.Collect(maps.Values(byPath))
	slices.SortFunc(out, func(a, b InterpreterRecord) int {
		if c := cmp.Compare(len(a.Path), len(b.Path)); c != 0 {
			return c
		}
		return cmp.Compare(a.Path, b.Path)
	})
	return out
}

// Mode selects which scanners a discovery runs.
type Mode string

const (
	// ModeFull runs every scanner.
	ModeFull Mode = "full"
	// ModeQuick runs only the PATH and environment-manager scanners.
	ModeQuick Mode = "quick"
)

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeFull, "":
		return ModeFull, nil
	case ModeQuick:
		return ModeQuick, nil
	default:
		return "", ErrInvalidMode
	}
}

// ScanInput is everything a scanner may look at.
type ScanInput struct {
	Host HostSnapshot
	// Found holds the records produced by earlier scanners, if any.
	Found []InterpreterRecord
}
