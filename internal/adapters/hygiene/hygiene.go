// Package hygiene periodically drops expired entries from the persistent cache.
package hygiene

import (
	"strconv"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
	"go.trai.ch/zerr"
)

const jobName = "cache-hygiene"

// Hygiene wraps a gocron scheduler running the cache sweep.
type Hygiene struct {
	cache     ports.Cache
	logger    ports.Logger
	interval  time.Duration
	olderThan time.Duration

	mu        sync.Mutex
	scheduler gocron.Scheduler
}

// New creates a Hygiene that every interval removes entries older than olderThan.
// No scheduler runs until Start.
func New(cache ports.Cache, logger ports.Logger, interval, olderThan time.Duration) *Hygiene {
	return &Hygiene{
		cache:     cache,
		logger:    logger,
		interval:  interval,
		olderThan: olderThan,
	}
}

// Start schedules the sweep. The first sweep runs immediately.
func (h *Hygiene) Start() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.scheduler != nil {
		return nil
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return zerr.Wrap(err, domain.ErrHygieneStartFailed.Error())
	}

	_, err = s.NewJob(
		gocron.DurationJob(h.interval),
		gocron.NewTask(h.sweep),
		gocron.WithName(jobName),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = s.Shutdown()
		return zerr.With(zerr.Wrap(err, domain.ErrHygieneStartFailed.Error()), "interval", h.interval.String())
	}

	s.Start()
	h.scheduler = s
	return nil
}

// Stop shuts the scheduler down, waiting for a running sweep.
func (h *Hygiene) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.scheduler == nil {
		return nil
	}
	err := h.scheduler.Shutdown()
	h.scheduler = nil
	return err
}

// Sweep removes expired entries once and returns how many were removed.
func (h *Hygiene) Sweep() (int, error) {
	return h.cache.ExpireOlderThan(h.olderThan)
}

func (h *Hygiene) sweep() {
	removed, err := h.Sweep()
	if err != nil {
		h.logger.Error(err)
		return
	}
	if removed > 0 {
		h.logger.Info("cache hygiene removed " + strconv.Itoa(removed) + " expired entries")
	}
}
