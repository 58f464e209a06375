package ports

import (
	"time"

	"go.trai.ch/seek/internal/core/domain"
)

// Cache is the guarded persistent store shared by discovery and version probes.
// Implementations never return decode errors from lookups; they report a miss.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type Cache interface {
	// GetDiscovery returns the unexpired discovery result stored under key.
	GetDiscovery(key string) (domain.DiscoveryResult, bool)
	// PutDiscovery stores a discovery result under key, replacing any prior entry.
	PutDiscovery(key, input string, result domain.DiscoveryResult) error
	// GetVersions returns the unexpired version pair stored under key.
	GetVersions(key string) (domain.Versions, bool)
	// PutVersions stores a version pair under key, replacing any prior entry.
	PutVersions(key, input string, versions domain.Versions) error
	// LastScan returns the time of the last full scan, if one was recorded.
	LastScan() (time.Time, bool)
	// MarkScanned records t as the time of the last full scan.
	MarkScanned(t time.Time) error
	// ExpireOlderThan removes entries strictly older than d and returns how many were removed.
	ExpireOlderThan(d time.Duration) (int, error)
	// Clear removes all persisted state and resets the counters.
	Clear() error
	// Stats returns a snapshot of the counters.
	Stats() domain.CacheStats
}
