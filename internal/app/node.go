package app

import (
	"context"

	"github.com/grindlemire/graft"
	prom "github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/seek/internal/adapters/cache"              //nolint:depguard // Wired in app layer
	"go.trai.ch/seek/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/seek/internal/adapters/hygiene"            //nolint:depguard // Wired in app layer
	"go.trai.ch/seek/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/seek/internal/adapters/metrics"            //nolint:depguard // Wired in app layer
	"go.trai.ch/seek/internal/adapters/scanner"            //nolint:depguard // Wired in app layer
	"go.trai.ch/seek/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/seek/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
	"go.trai.ch/seek/internal/engine/discovery"
	"go.trai.ch/seek/internal/engine/probe"
	"go.trai.ch/seek/internal/engine/supervisor"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			discovery.NodeID,
			probe.NodeID,
			supervisor.NodeID,
			cache.NodeID,
			scanner.LocatorNodeID,
			watcher.NodeID,
			hygiene.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
			cache.NodeID,
			progrock.NodeID,
			metrics.RegistryNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	worker, err := graft.Dep[*discovery.Worker](ctx)
	if err != nil {
		return nil, err
	}

	prober, err := graft.Dep[*probe.Probe](ctx)
	if err != nil {
		return nil, err
	}

	sup, err := graft.Dep[*supervisor.Supervisor](ctx)
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

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	sweeper, err := graft.Dep[*hygiene.Hygiene](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(cfg, worker, prober, sup, store, locator, w, sweeper, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
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

	store, err := graft.Dep[ports.Cache](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	reg, err := graft.Dep[*prom.Registry](ctx)
	if err != nil {
		return nil, err
	}
	metrics.RegisterCacheStats(reg, store.Stats)

	return &Components{
		App:       a,
		Logger:    log,
		Config:    cfg,
		Telemetry: tel,
		Registry:  reg,
	}, nil
}
