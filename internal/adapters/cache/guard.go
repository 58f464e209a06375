package cache

import (
	"sync"
	"time"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
)

var _ ports.Cache = (*Guard)(nil)

// Guard serializes every Store operation behind one mutex. The lock covers
// the whole read-modify-write of a put, not individual file calls.
type Guard struct {
	mu    sync.Mutex
	store *Store
}

// NewGuard wraps store.
func NewGuard(store *Store) *Guard {
	return &Guard{store: store}
}

// GetDiscovery implements ports.Cache.
func (g *Guard) GetDiscovery(key string) (domain.DiscoveryResult, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.store.GetDiscovery(key)
}

// PutDiscovery implements ports.Cache.
func (g *Guard) PutDiscovery(key, input string, result domain.DiscoveryResult) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.store.PutDiscovery(key, input, result)
}

// GetVersions implements ports.Cache.
func (g *Guard) GetVersions(key string) (domain.Versions, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.store.GetVersions(key)
}

// PutVersions implements ports.Cache.
func (g *Guard) PutVersions(key, input string, versions domain.Versions) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.store.PutVersions(key, input, versions)
}

// LastScan implements ports.Cache.
func (g *Guard) LastScan() (time.Time, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.store.LastScan()
}

// MarkScanned implements ports.Cache.
func (g *Guard) MarkScanned(t time.Time) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.store.MarkScanned(t)
}

// ExpireOlderThan implements ports.Cache.
func (g *Guard) ExpireOlderThan(d time.Duration) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.store.ExpireOlderThan(d)
}

// Clear implements ports.Cache.
func (g *Guard) Clear() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.store.Clear()
}

// Stats implements ports.Cache.
func (g *Guard) Stats() domain.CacheStats {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.store.Stats()
}
