package metrics

import (
	"context"

	"github.com/grindlemire/graft"
	prom "github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/seek/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the metrics recorder Graft node.
	NodeID graft.ID = "adapter.metrics"
	// RegistryNodeID is the unique identifier for the Prometheus registry Graft node.
	RegistryNodeID graft.ID = "adapter.metrics_registry"
)

func init() {
	graft.Register(graft.Node[*prom.Registry]{
		ID:        RegistryNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*prom.Registry, error) {
			return prom.NewRegistry(), nil
		},
	})

	graft.Register(graft.Node[ports.Metrics]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{RegistryNodeID},
		Run: func(ctx context.Context) (ports.Metrics, error) {
			reg, err := graft.Dep[*prom.Registry](ctx)
			if err != nil {
				return nil, err
			}
			return NewRecorder(reg), nil
		},
	})
}
