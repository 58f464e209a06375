package supervisor

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/seek/internal/adapters/config"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/seek/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/seek/internal/adapters/metrics" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
)

// NodeID is the unique identifier for the supervisor Graft node.
const NodeID graft.ID = "engine.supervisor"

func init() {
	graft.Register(graft.Node[*Supervisor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			metrics.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Supervisor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			m, err := graft.Dep[ports.Metrics](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			return New(log, m, WithCeiling(cfg.WorkerCeiling), WithGrace(cfg.CancelGrace)), nil
		},
	})
}
