// Package cache implements the persistent discovery and version cache.
package cache

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store is the on-disk cache. It has no locking of its own; share it only
// through a Guard.
type Store struct {
	dir          string
	discoveryTTL time.Duration
	versionTTL   time.Duration
	now          func() time.Time
	stats        domain.CacheStats
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for timestamps and expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithTTL overrides the lookup expiry for discovery and version entries.
func WithTTL(discovery, versions time.Duration) Option {
	return func(s *Store) {
		if discovery > 0 {
			s.discoveryTTL = discovery
		}
		if versions > 0 {
			s.versionTTL = versions
		}
	}
}

// NewStore creates a Store rooted at dir. The directory is created lazily on
// the first write.
func NewStore(dir string, opts ...Option) *Store {
	s := &Store{
		dir:          filepath.Clean(dir),
		discoveryTTL: domain.DefaultDiscoveryTTL,
		versionTTL:   domain.DefaultVersionTTL,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the backing directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) versionsPath() string  { return filepath.Join(s.dir, domain.VersionsFileName) }
func (s *Store) discoveryPath() string { return filepath.Join(s.dir, domain.DiscoveryFileName) }
func (s *Store) stampPath() string     { return filepath.Join(s.dir, domain.StampFileName) }

// expired is the single expiry predicate shared by lookups and ExpireOlderThan.
func expired(ts time.Time, ttl time.Duration, now time.Time) bool {
	return now.Sub(ts) > ttl
}

// GetDiscovery returns the discovery result stored under key.
func (s *Store) GetDiscovery(key string) (domain.DiscoveryResult, bool) {
	set, err := readSet[discoveryRecord](s.discoveryPath(), gobCodec{})
	if err != nil {
		s.stats.Errors++
		return domain.DiscoveryResult{}, false
	}
	rec, ok := set[key]
	if !ok || expired(rec.Timestamp, s.discoveryTTL, s.now()) {
		s.stats.Misses++
		return domain.DiscoveryResult{}, false
	}
	s.stats.Hits++
	return rec.Result.Clone(), true
}

// PutDiscovery merges a discovery result into the record set under key.
func (s *Store) PutDiscovery(key, input string, result domain.DiscoveryResult) error {
	rec := discoveryRecord{Timestamp: s.now(), Input: input, Result: result.Clone()}
	rec.Result.FromCache = false
	return s.put(func() error {
		return mergeSet(s.dir, s.discoveryPath(), gobCodec{}, key, rec)
	})
}

// GetVersions returns the version pair stored under key.
func (s *Store) GetVersions(key string) (domain.Versions, bool) {
	set, err := readSet[versionRecord](s.versionsPath(), jsonCodec{})
	if err != nil {
		s.stats.Errors++
		return domain.Versions{}, false
	}
	rec, ok := set[key]
	if !ok || expired(rec.Timestamp, s.versionTTL, s.now()) {
		s.stats.Misses++
		return domain.Versions{}, false
	}
	s.stats.Hits++
	return domain.Versions{Interpreter: rec.InterpreterVersion, Tool: rec.ToolVersion}, true
}

// PutVersions merges a version pair into the record set under key.
func (s *Store) PutVersions(key, input string, v domain.Versions) error {
	rec := versionRecord{
		InterpreterVersion: v.Interpreter,
		ToolVersion:        v.Tool,
		Timestamp:          s.now(),
		Input:              input,
	}
	return s.put(func() error {
		return mergeSet(s.dir, s.versionsPath(), jsonCodec{}, key, rec)
	})
}

func (s *Store) put(write func() error) error {
	if err := write(); err != nil {
		s.stats.Errors++
		return err
	}
	s.stats.Writes++
	return nil
}

// ExpireOlderThan removes entries strictly older than d from both record sets
// and returns how many were removed.
func (s *Store) ExpireOlderThan(d time.Duration) (int, error) {
	now := s.now()

	removedV, err := expireSet[versionRecord](s.dir, s.versionsPath(), jsonCodec{}, d, now)
	if err != nil {
		s.stats.Errors++
		return 0, err
	}
	removedD, err := expireSet[discoveryRecord](s.dir, s.discoveryPath(), gobCodec{}, d, now)
	if err != nil {
		s.stats.Errors++
		return removedV, err
	}
	return removedV + removedD, nil
}

// Clear deletes all backing files and resets the counters.
func (s *Store) Clear() error {
	var errs []error
	for _, p := range []string{s.versionsPath(), s.discoveryPath(), s.stampPath()} {
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	s.stats = domain.CacheStats{}
	if len(errs) > 0 {
		return zerr.With(zerr.Wrap(errors.Join(errs...), domain.ErrCacheClearFailed.Error()), "dir", s.dir)
	}
	return nil
}

// Stats returns a copy of the counters.
func (s *Store) Stats() domain.CacheStats {
	return s.stats
}

// LastScan returns the recorded last full scan time.
// A missing or unreadable stamp reports false.
func (s *Store) LastScan() (time.Time, bool) {
	//nolint:gosec // Path is constructed from the configured cache directory
	data, err := os.ReadFile(s.stampPath())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.stats.Errors++
		}
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(string(data)))
	if err != nil {
		s.stats.Errors++
		return time.Time{}, false
	}
	return t, true
}

// MarkScanned records t as the last full scan time.
func (s *Store) MarkScanned(t time.Time) error {
	data := []byte(t.Format(time.RFC3339Nano) + "\n")
	if err := atomicWriteFile(s.dir, s.stampPath(), data); err != nil {
		s.stats.Errors++
		return err
	}
	return nil
}
