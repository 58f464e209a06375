// Package telemetry provides telemetry adapters that do not record anything.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
)

// NoOp is a ports.Telemetry that discards every vertex.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

var _ ports.Telemetry = (*NoOp)(nil)

// Record returns ctx carrying a no-op vertex.
func (*NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	v := &NoOpVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (*NoOp) Close() error {
	return nil
}

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Stdout returns io.Discard.
func (*NoOpVertex) Stdout() io.Writer {
	return io.Discard
}

// Log does nothing.
func (*NoOpVertex) Log(_ domain.LogLevel, _ string) {}

// Complete does nothing.
func (*NoOpVertex) Complete(_ error) {}

// Cached does nothing.
func (*NoOpVertex) Cached() {}
