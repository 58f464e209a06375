package discovery

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/seek/internal/adapters/cache"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/seek/internal/adapters/config"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/seek/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/seek/internal/adapters/metrics"            //nolint:depguard // Wired in engine wiring
	"go.trai.ch/seek/internal/adapters/scanner"            //nolint:depguard // Wired in engine wiring
	"go.trai.ch/seek/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/seek/internal/adapters/validator"          //nolint:depguard // Wired in engine wiring
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the discovery worker Graft node.
	NodeID graft.ID = "engine.discovery"
	// InvalidatorNodeID is the unique identifier for the invalidator Graft node.
	InvalidatorNodeID graft.ID = "engine.invalidator"
)

func init() {
	graft.Register(graft.Node[*Invalidator]{
		ID:        InvalidatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cache.NodeID,
			validator.NodeID,
			scanner.LocatorNodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Invalidator, error) {
			store, err := graft.Dep[ports.Cache](ctx)
			if err != nil {
				return nil, err
			}

			v, err := graft.Dep[ports.Validator](ctx)
			if err != nil {
				return nil, err
			}

			locator, err := graft.Dep[ports.ManagerLocator](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			return NewInvalidator(store, v, locator, cfg.Tolerance), nil
		},
	})

	graft.Register(graft.Node[*Worker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cache.NodeID,
			scanner.NodeID,
			validator.NodeID,
			InvalidatorNodeID,
			progrock.NodeID,
			metrics.NodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Worker, error) {
			store, err := graft.Dep[ports.Cache](ctx)
			if err != nil {
				return nil, err
			}

			scanners, err := graft.Dep[ports.ScannerSet](ctx)
			if err != nil {
				return nil, err
			}

			v, err := graft.Dep[ports.Validator](ctx)
			if err != nil {
				return nil, err
			}

			invalidator, err := graft.Dep[*Invalidator](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
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

			return NewWorker(store, scanners, v, invalidator, tel, m, log, WithTimeout(cfg.Timeout)), nil
		},
	})
}
