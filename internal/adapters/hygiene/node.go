package hygiene

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/seek/internal/adapters/cache"
	"go.trai.ch/seek/internal/adapters/config"
	"go.trai.ch/seek/internal/adapters/logger"
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
)

// NodeID is the unique identifier for the cache hygiene Graft node.
const NodeID graft.ID = "adapter.hygiene"

func init() {
	graft.Register(graft.Node[*Hygiene]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cache.NodeID, logger.NodeID, config.NodeID},
		Run: func(ctx context.Context) (*Hygiene, error) {
			store, err := graft.Dep[ports.Cache](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			return New(store, log, cfg.HygieneInterval, max(cfg.DiscoveryTTL, cfg.VersionTTL)), nil
		},
	})
}
