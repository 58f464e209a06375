package probe

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/seek/internal/adapters/cache"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/seek/internal/adapters/config"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/seek/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/seek/internal/adapters/metrics" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/seek/internal/adapters/scanner" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/seek/internal/adapters/shell"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
)

// NodeID is the unique identifier for the version probe Graft node.
const NodeID graft.ID = "engine.probe"

func init() {
	graft.Register(graft.Node[*Probe]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			cache.NodeID,
			scanner.LocatorNodeID,
			metrics.NodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Probe, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.Cache](ctx)
			if err != nil {
				return nil, err
			}

			locator, err := graft.Dep[ports.ManagerLocator](ctx)
			if err != nil {
				return nil, err
			}

			m, err := graft.Dep[ports.Metrics](ctx)
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

			return New(runner, store, locator, m, log, WithTool(cfg.ToolModule, cfg.ProbeTimeout)), nil
		},
	})
}
