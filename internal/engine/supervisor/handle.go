package supervisor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/zerr"
)

// Kind names the work a handle runs.
type Kind string

const (
	// KindDiscovery is a discovery run.
	KindDiscovery Kind = "discovery"
	// KindProbe is a version probe.
	KindProbe Kind = "probe"
)

// Task is the body of a supervised worker.
type Task func(ctx context.Context) (any, error)

// Handle tracks one supervised worker. Its outcome is delivered exactly once
// and can be read by any number of waiters.
type Handle struct {
	ID      string
	Kind    Kind
	RunID   uuid.UUID
	Started time.Time

	cancel context.CancelFunc
	done   chan struct{}
	result any
	err    error
}

func newHandle(kind Kind, id string, cancel context.CancelFunc) *Handle {
	return &Handle{
		ID:      id,
		Kind:    kind,
		RunID:   uuid.New(),
		Started: time.Now(),
		cancel:  cancel,
		done:    make(chan struct{}),
	}
}

// Done is closed when the worker has finished.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Finished reports whether the worker has finished.
func (h *Handle) Finished() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Cancel asks the worker to stop. It does not wait.
func (h *Handle) Cancel() {
	h.cancel()
}

// Wait blocks until the worker finishes or ctx is done.
func (h *Handle) Wait(ctx context.Context) (any, error) {
	select {
	case <-h.done:
		return h.result, h.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Await waits for h and asserts its result to T.
func Await[T any](ctx context.Context, h *Handle) (T, error) {
	var zero T
	v, err := h.Wait(ctx)
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrUnexpectedResult, h.ID), "type", fmt.Sprintf("%T", v))
		return zero, err
	}
	return out, nil
}
