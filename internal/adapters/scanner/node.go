package scanner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/seek/internal/adapters/registry"
	"go.trai.ch/seek/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the scanner set Graft node.
	NodeID graft.ID = "adapter.scanners"
	// LocatorNodeID is the unique identifier for the manager locator Graft node.
	LocatorNodeID graft.ID = "adapter.manager_locator"
)

// NewSet returns the full scanner line-up.
func NewSet(reader ports.RegistryReader) ports.ScannerSet {
	return ports.ScannerSet{
		PathEnv:    PathEnv{},
		InstallDir: InstallDir{},
		Registry:   NewRegistry(reader),
		Manager:    Manager{},
		Virtualenv: Virtualenv{},
	}
}

func init() {
	graft.Register(graft.Node[ports.ScannerSet]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{registry.NodeID},
		Run: func(ctx context.Context) (ports.ScannerSet, error) {
			reader, err := graft.Dep[ports.RegistryReader](ctx)
			if err != nil {
				return ports.ScannerSet{}, err
			}
			return NewSet(reader), nil
		},
	})

	graft.Register(graft.Node[ports.ManagerLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManagerLocator, error) {
			return Manager{}, nil
		},
	})
}
