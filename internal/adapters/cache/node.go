package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/seek/internal/adapters/config"
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
)

// NodeID is the unique identifier for the cache Graft node.
const NodeID graft.ID = "adapter.cache"

func init() {
	graft.Register(graft.Node[ports.Cache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Cache, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			store := NewStore(cfg.CacheDir, WithTTL(cfg.DiscoveryTTL, cfg.VersionTTL))
			return NewGuard(store), nil
		},
	})
}
