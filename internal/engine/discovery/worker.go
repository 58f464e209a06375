// Package discovery implements the discovery worker and the cache invalidator.
package discovery

import (
	"context"
	"errors"
	"runtime"
	"strconv"
	"time"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Request describes one discovery.
type Request struct {
	Host  domain.HostSnapshot
	Mode  domain.Mode
	Force bool
	// OnTransition, when set, is called on every state change.
	OnTransition func(domain.WorkerState)
}

// Outcome is the single terminal message of a discovery.
type Outcome struct {
	State  domain.WorkerState
	Result domain.DiscoveryResult
	Err    error
	// Trail lists every state the worker passed through, in order.
	Trail []domain.WorkerState
}

// Worker runs discoveries. It holds no per-run state and may serve
// concurrent runs.
type Worker struct {
	cache       ports.Cache
	scanners    ports.ScannerSet
	validator   ports.Validator
	invalidator *Invalidator
	telemetry   ports.Telemetry
	metrics     ports.Metrics
	logger      ports.Logger
	timeout     time.Duration
	now         func() time.Time
}

// Option configures a Worker.
type Option func(*Worker)

// WithClock overrides the time source used for timestamps and the timeout check.
func WithClock(now func() time.Time) Option {
	return func(w *Worker) {
		w.now = now
	}
}

// WithTimeout overrides the wall-clock budget of a run. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(w *Worker) {
		w.timeout = d
	}
}

// NewWorker creates a new Worker.
func NewWorker(
	cache ports.Cache,
	scanners ports.ScannerSet,
	validator ports.Validator,
	invalidator *Invalidator,
	telemetry ports.Telemetry,
	metrics ports.Metrics,
	logger ports.Logger,
	opts ...Option,
) *Worker {
	w := &Worker{
		cache:       cache,
		scanners:    scanners,
		validator:   validator,
		invalidator: invalidator,
		telemetry:   telemetry,
		metrics:     metrics,
		logger:      logger,
		timeout:     domain.DefaultTimeout,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// run carries the state of one discovery.
type run struct {
	*Worker
	req      Request
	key      string
	start    time.Time
	deadline time.Time
	out      Outcome
}

func (r *run) enter(s domain.WorkerState) {
	r.out.State = s
	r.out.Trail = append(r.out.Trail, s)
	if r.req.OnTransition != nil {
		r.req.OnTransition(s)
	}
}

// checkpoint reports why the run must stop, if it must.
func (r *run) checkpoint(ctx context.Context) error {
	err := ctx.Err()
	if err == nil && r.timeout > 0 && r.now().After(r.deadline) {
		err = context.DeadlineExceeded
	}
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return zerr.With(zerr.Wrap(domain.ErrDiscoveryTimeout, "discovery stopped"), "timeout", r.timeout.String())
	default:
		return zerr.Wrap(domain.ErrDiscoveryCancelled, "discovery stopped")
	}
}

func (r *run) finish(s domain.WorkerState, err error) Outcome {
	r.out.Err = err
	if err != nil {
		r.out.Result = domain.DiscoveryResult{}
	}
	r.enter(s)
	r.metrics.ObserveDiscovery(s, r.out.Result.FromCache, r.now().Sub(r.start))
	return r.out
}

func (r *run) stop(err error) Outcome {
	r.logger.Warn(err.Error())
	return r.finish(domain.StateCancelled, err)
}

// Run performs one discovery and returns its terminal outcome. Nothing is
// written to the cache unless the run reaches the persisting state.
func (w *Worker) Run(ctx context.Context, req Request) Outcome {
	if req.Mode == "" {
		req.Mode = domain.ModeFull
	}
	r := &run{
		Worker: w,
		req:    req,
		key:    domain.DiscoveryKey(req.Host, req.Mode),
		start:  w.now(),
	}
	r.deadline = r.start.Add(w.timeout)
	r.out.State = domain.StateIdle
	r.out.Trail = []domain.WorkerState{domain.StateIdle}

	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	r.enter(domain.StateStarted)
	if err := r.checkpoint(ctx); err != nil {
		return r.stop(err)
	}

	if !req.Force {
		if out, ok := r.consultCache(ctx); ok {
			return out
		}
	}

	records, err := r.scan(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoFilesystemAccess) {
			r.logger.Error(err)
			return r.finish(domain.StateFailed, err)
		}
		return r.stop(err)
	}

	valid, err := r.validate(ctx, records)
	if err != nil {
		return r.stop(err)
	}

	if err := r.checkpoint(ctx); err != nil {
		return r.stop(err)
	}
	r.enter(domain.StateDeduplicating)
	interpreters := domain.NormalizeRecords(valid)

	if err := r.checkpoint(ctx); err != nil {
		return r.stop(err)
	}
	r.out.Result = r.persist(ctx, interpreters)
	return r.finish(domain.StateCompleted, nil)
}

func (r *run) consultCache(ctx context.Context) (Outcome, bool) {
	r.enter(domain.StateConsultingCache)
	_, vertex := r.telemetry.Record(ctx, "discover:cache")

	cached, ok := r.cache.GetDiscovery(r.key)
	if !ok {
		vertex.Complete(nil)
		return Outcome{}, false
	}

	verdict, err := r.invalidator.Check(cached, r.req.Host)
	if err != nil {
		r.logger.Warn(err.Error())
	}
	if !verdict.Valid {
		r.logger.Info("cached discovery is stale: " + verdict.Reason)
		r.metrics.IncInvalidation(verdict.Reason)
		vertex.Complete(nil)
		return Outcome{}, false
	}

	if err := r.checkpoint(ctx); err != nil {
		vertex.Complete(err)
		return r.stop(err), true
	}

	r.enter(domain.StateCacheHit)
	vertex.Cached()
	vertex.Complete(nil)

	result := cached.Clone()
	result.FromCache = true
	r.out.Result = result
	return r.finish(domain.StateCompleted, nil), true
}

// stageOne returns the scanners that run before the virtualenv scanner.
func (r *run) stageOne() []ports.Scanner {
	s := r.scanners
	if r.req.Mode == domain.ModeQuick {
		return []ports.Scanner{s.PathEnv, s.Manager}
	}
	return []ports.Scanner{s.PathEnv, s.InstallDir, s.Registry, s.Manager}
}

func (r *run) scan(ctx context.Context) ([]domain.InterpreterRecord, error) {
	if err := r.checkpoint(ctx); err != nil {
		return nil, err
	}
	r.enter(domain.StateScanning)
	ctx, vertex := r.telemetry.Record(ctx, "discover:scan")

	scanners := r.stageOne()
	found, failures, unavailable := r.runScanners(ctx, scanners, domain.ScanInput{Host: r.req.Host})
	if err := r.checkpoint(ctx); err != nil {
		vertex.Complete(err)
		return nil, err
	}
	if available := len(scanners) - unavailable; available > 0 && failures == available && len(found) == 0 {
		err := zerr.With(zerr.Wrap(domain.ErrNoFilesystemAccess, "every source failed"), "mode", string(r.req.Mode))
		vertex.Complete(err)
		return nil, err
	}

	if r.req.Mode == domain.ModeFull {
		second, _, _ := r.runScanners(ctx, []ports.Scanner{r.scanners.Virtualenv}, domain.ScanInput{Host: r.req.Host, Found: found})
		if err := r.checkpoint(ctx); err != nil {
			vertex.Complete(err)
			return nil, err
		}
		found = append(found, second...)
	}

	vertex.Log(domain.LogLevelInfo, "candidates: "+strconv.Itoa(len(found)))
	vertex.Complete(nil)
	return found, nil
}

// runScanners runs scanners concurrently and merges their records in scanner
// order. It returns how many scanners failed and how many have no source on
// this host.
func (r *run) runScanners(ctx context.Context, scanners []ports.Scanner, in domain.ScanInput) ([]domain.InterpreterRecord, int, int) {
	results := make([][]domain.InterpreterRecord, len(scanners))
	errs := make([]error, len(scanners))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, s := range scanners {
		g.Go(func() error {
			results[i], errs[i] = s.Scan(ctx, in)
			return nil
		})
	}
	_ = g.Wait()

	var (
		merged      []domain.InterpreterRecord
		failures    int
		unavailable int
	)
	for i, s := range scanners {
		err := errs[i]
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrSourceUnavailable):
			unavailable++
		default:
			if ctx.Err() == nil {
				r.logger.Warn(s.Name() + " scanner: " + err.Error())
			}
			failures++
		}
		merged = append(merged, results[i]...)
	}
	return merged, failures, unavailable
}

func (r *run) validate(ctx context.Context, records []domain.InterpreterRecord) ([]domain.InterpreterRecord, error) {
	if err := r.checkpoint(ctx); err != nil {
		return nil, err
	}
	r.enter(domain.StateValidating)
	_, vertex := r.telemetry.Record(ctx, "discover:validate")

	valid := make([]domain.InterpreterRecord, 0, len(records))
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			err = r.checkpoint(ctx)
			vertex.Complete(err)
			return nil, err
		}
		if r.validator.IsValid(rec.Path) {
			valid = append(valid, rec)
		}
	}
	vertex.Complete(nil)
	return valid, nil
}

// persist stores the result. Write failures are logged, never returned.
func (r *run) persist(ctx context.Context, interpreters []domain.InterpreterRecord) domain.DiscoveryResult {
	r.enter(domain.StatePersisting)
	_, vertex := r.telemetry.Record(ctx, "discover:persist")

	now := r.now()
	result := domain.DiscoveryResult{
		Interpreters: interpreters,
		CompletedAt:  now,
		Mode:         r.req.Mode,
		SessionVars:  domain.SessionPresence(r.req.Host),
		EnvDirs:      r.invalidator.EnvDirs(r.req.Host),
	}

	err := r.cache.PutDiscovery(r.key, domain.DiscoveryInput(r.req.Host, r.req.Mode), result)
	if err == nil {
		err = r.cache.MarkScanned(now)
	}
	if err != nil {
		r.logger.Error(err)
	}
	vertex.Complete(err)
	return result
}
