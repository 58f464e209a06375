// Package registry reads interpreter registrations from the host package registry.
package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/seek/internal/core/ports"
)

// NodeID is the unique identifier for the registry reader Graft node.
const NodeID graft.ID = "adapter.registry"

// Reader implements ports.RegistryReader. On hosts without a registry every
// read fails with domain.ErrRegistryUnavailable.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

var _ ports.RegistryReader = (*Reader)(nil)

func init() {
	graft.Register(graft.Node[ports.RegistryReader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RegistryReader, error) {
			return NewReader(), nil
		},
	})
}
