// Package supervisor owns the lifecycle of background workers: it coalesces
// duplicate requests, reaps finished workers and cancels everything on demand.
package supervisor

import (
	"context"
	"strconv"
	"sync"
	"time"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
)

// Supervisor tracks live worker handles by id.
type Supervisor struct {
	logger  ports.Logger
	metrics ports.Metrics
	ceiling int
	grace   time.Duration

	mu      sync.Mutex
	handles map[string]*Handle
}

// Option configures a Supervisor.
type Option func(*Supervisor)

// WithCeiling sets the live worker count above which spawns log a warning.
func WithCeiling(n int) Option {
	return func(s *Supervisor) {
		if n > 0 {
			s.ceiling = n
		}
	}
}

// WithGrace sets how long CancelAll waits for each worker to stop.
func WithGrace(d time.Duration) Option {
	return func(s *Supervisor) {
		if d > 0 {
			s.grace = d
		}
	}
}

// New creates a new Supervisor.
func New(logger ports.Logger, metrics ports.Metrics, opts ...Option) *Supervisor {
	s := &Supervisor{
		logger:  logger,
		metrics: metrics,
		ceiling: domain.DefaultWorkerCeiling,
		grace:   domain.DefaultCancelGrace,
		handles: make(map[string]*Handle),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Spawn starts task under id unless a live worker with that id exists, in
// which case the existing handle is returned. The worker context derives from
// ctx. Exceeding the ceiling is logged but never blocks.
func (s *Supervisor) Spawn(ctx context.Context, kind Kind, id string, task Task) *Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reapLocked()
	if h, ok := s.handles[id]; ok {
		return h
	}

	wctx, cancel := context.WithCancel(ctx)
	h := newHandle(kind, id, cancel)
	if n := len(s.handles); n >= s.ceiling {
		s.logger.Warn("worker ceiling exceeded: " + strconv.Itoa(n+1) + " active, ceiling " + strconv.Itoa(s.ceiling) +
			" (" + string(kind) + " worker " + id + ", run " + h.RunID.String() + ")")
	}
	s.handles[id] = h
	s.metrics.SetActiveWorkers(len(s.handles))

	go s.run(wctx, h, task)
	return h
}

func (s *Supervisor) run(ctx context.Context, h *Handle, task Task) {
	defer h.cancel()

	h.result, h.err = task(ctx)
	close(h.done)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.handles[h.ID] == h {
		delete(s.handles, h.ID)
		s.metrics.SetActiveWorkers(len(s.handles))
	}
}

// reapLocked drops finished handles. The caller holds mu.
func (s *Supervisor) reapLocked() {
	for id, h := range s.handles {
		if h.Finished() {
			delete(s.handles, id)
		}
	}
}

// Get returns the live handle registered under id.
func (s *Supervisor) Get(id string) (*Handle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reapLocked()
	h, ok := s.handles[id]
	return h, ok
}

// ActiveCount returns the number of live workers.
func (s *Supervisor) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reapLocked()
	return len(s.handles)
}

// CancelAll cancels every live worker and waits up to the grace period for
// each one. Workers still running afterwards are abandoned.
func (s *Supervisor) CancelAll() {
	s.mu.Lock()
	live := make([]*Handle, 0, len(s.handles))
	for _, h := range s.handles {
		live = append(live, h)
	}
	clear(s.handles)
	s.metrics.SetActiveWorkers(0)
	s.mu.Unlock()

	for _, h := range live {
		h.Cancel()
	}
	for _, h := range live {
		timer := time.NewTimer(s.grace)
		select {
		case <-h.done:
		case <-timer.C:
			s.logger.Warn("abandoned " + string(h.Kind) + " worker " + h.ID + " (run " + h.RunID.String() + ") after " + s.grace.String())
		}
		timer.Stop()
	}
}
