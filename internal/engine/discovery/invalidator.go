package discovery

import (
	"errors"
	"io/fs"
	"os"
	"slices"
	"time"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
	"go.trai.ch/zerr"
)

// Invalidation reasons reported on a Verdict.
const (
	ReasonFresh              = "fresh"
	ReasonNoStamp            = "no-scan-stamp"
	ReasonInterpreterInvalid = "interpreter-invalid"
	ReasonEnvModified        = "env-modified"
	ReasonEnvsChanged        = "envs-changed"
	ReasonEnvsAdded          = "envs-added"
	ReasonSessionChanged     = "session-changed"
	ReasonFSError            = "fs-error"
)

// Verdict is the outcome of a cache validity check.
type Verdict struct {
	Valid  bool
	Reason string
	// Path is the location that caused the invalidation, if any.
	Path string
}

func stale(reason, path string) Verdict {
	return Verdict{Reason: reason, Path: path}
}

// Invalidator decides whether a cached discovery result still describes the host.
type Invalidator struct {
	cache     ports.Cache
	validator ports.Validator
	locator   ports.ManagerLocator
	tolerance time.Duration
}

// NewInvalidator creates an Invalidator. Modification times within tolerance
// of the last scan count as changes.
func NewInvalidator(
	cache ports.Cache,
	validator ports.Validator,
	locator ports.ManagerLocator,
	tolerance time.Duration,
) *Invalidator {
	return &Invalidator{
		cache:     cache,
		validator: validator,
		locator:   locator,
		tolerance: tolerance,
	}
}

// Check applies the invalidation rules in order and stops at the first that
// fails. A filesystem error yields an invalid verdict together with the error.
func (iv *Invalidator) Check(cached domain.DiscoveryResult, host domain.HostSnapshot) (Verdict, error) {
	last, ok := iv.cache.LastScan()
	if !ok {
		return stale(ReasonNoStamp, ""), nil
	}

	// A stamp written by a later scan must not vouch for an older result.
	ref := last
	if !cached.CompletedAt.IsZero() && cached.CompletedAt.Before(ref) {
		ref = cached.CompletedAt
	}
	cutoff := ref.Add(-iv.tolerance)

	for _, rec := range cached.Interpreters {
		if !iv.validator.IsValid(rec.Path) {
			return stale(ReasonInterpreterInvalid, rec.Path), nil
		}
		if v, err := checkMtime(rec.Root(), cutoff, ReasonEnvModified); !v.Valid {
			return v, err
		}
	}

	for _, dir := range cached.EnvDirs {
		if v, err := checkMtime(dir, cutoff, ReasonEnvsChanged); !v.Valid {
			return v, err
		}
	}
	for _, dir := range iv.EnvDirs(host) {
		if !slices.Contains(cached.EnvDirs, dir) {
			return stale(ReasonEnvsAdded, dir), nil
		}
	}

	now := domain.SessionPresence(host)
	for _, k := range domain.SessionVars {
		if now[k] != cached.SessionVars[k] {
			return stale(ReasonSessionChanged, k), nil
		}
	}

	return Verdict{Valid: true, Reason: ReasonFresh}, nil
}

// EnvDirs returns the envs folders of the manager roots resolved on host that
// currently exist.
func (iv *Invalidator) EnvDirs(host domain.HostSnapshot) []string {
	var out []string
	for _, root := range iv.locator.Roots(host) {
		dir := root.EnvsDir()
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			out = append(out, dir)
		}
	}
	return out
}

// checkMtime fails when path is gone or was modified after cutoff.
func checkMtime(path string, cutoff time.Time, reason string) (Verdict, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return stale(reason, path), nil
		}
		return stale(ReasonFSError, path), zerr.With(zerr.Wrap(err, "failed to stat cached location"), "path", path)
	}
	if info.ModTime().After(cutoff) {
		return stale(reason, path), nil
	}
	return Verdict{Valid: true}, nil
}
