// Package app implements the engine facade used by the CLI.
package app

import (
	"context"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"go.trai.ch/seek/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
	"go.trai.ch/seek/internal/engine/discovery"
	"go.trai.ch/seek/internal/engine/probe"
	"go.trai.ch/seek/internal/engine/supervisor"
)

// Sweeper runs periodic cache maintenance in the background.
type Sweeper interface {
	Start() error
	Stop() error
}

// App is the public surface of the engine. Every background operation runs
// under the supervisor and is observed through its handle.
type App struct {
	cfg        domain.Config
	worker     *discovery.Worker
	probe      *probe.Probe
	supervisor *supervisor.Supervisor
	cache      ports.Cache
	locator    ports.ManagerLocator
	watcher    ports.Watcher
	hygiene    Sweeper
	logger     ports.Logger
	host       func() domain.HostSnapshot
}

// Option configures an App.
type Option func(*App)

// WithHost overrides how the host snapshot is taken for each request.
func WithHost(host func() domain.HostSnapshot) Option {
	return func(a *App) {
		a.host = host
	}
}

// New creates a new App instance.
func New(
	cfg domain.Config,
	worker *discovery.Worker,
	prober *probe.Probe,
	sup *supervisor.Supervisor,
	cache ports.Cache,
	locator ports.ManagerLocator,
	w ports.Watcher,
	hygiene Sweeper,
	logger ports.Logger,
	opts ...Option,
) *App {
	a := &App{
		cfg:        cfg,
		worker:     worker,
		probe:      prober,
		supervisor: sup,
		cache:      cache,
		locator:    locator,
		watcher:    w,
		hygiene:    hygiene,
		logger:     logger,
		host:       domain.CaptureHost,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// DiscoverOptions tune a single discovery request.
type DiscoverOptions struct {
	Force bool
	// Mode overrides the configured mode when set.
	Mode domain.Mode
	// OnTransition, when set, observes every worker state change.
	OnTransition func(domain.WorkerState)
}

// DiscoveryID returns the handle id of a discovery over host in mode.
// Requests with equal ids share one in-flight worker.
func DiscoveryID(host domain.HostSnapshot, mode domain.Mode) string {
	return "discover:" + domain.DiscoveryKey(host, mode)
}

// ProbeID returns the handle id of a version probe of path.
func ProbeID(path string) string {
	return "probe:" + filepath.Clean(path)
}

// Discover starts a discovery in the configured mode. The handle yields a
// domain.DiscoveryResult.
func (a *App) Discover(ctx context.Context, force bool) *supervisor.Handle {
	return a.DiscoverWith(ctx, DiscoverOptions{Force: force})
}

// DiscoverWith starts a discovery with explicit options.
func (a *App) DiscoverWith(ctx context.Context, opts DiscoverOptions) *supervisor.Handle {
	host := a.host()
	mode := opts.Mode
	if mode == "" {
		mode = a.cfg.Mode
	}

	req := discovery.Request{
		Host:         host,
		Mode:         mode,
		Force:        opts.Force,
		OnTransition: opts.OnTransition,
	}
	return a.supervisor.Spawn(ctx, supervisor.KindDiscovery, DiscoveryID(host, mode), func(ctx context.Context) (any, error) {
		out := a.worker.Run(ctx, req)
		return out.Result, out.Err
	})
}

// ProbeVersions starts a version probe of path. The handle yields a
// domain.Versions and never fails on its own.
func (a *App) ProbeVersions(ctx context.Context, path string) *supervisor.Handle {
	return a.supervisor.Spawn(ctx, supervisor.KindProbe, ProbeID(path), func(ctx context.Context) (any, error) {
		return a.probe.Versions(ctx, path), nil
	})
}

// CancelAll stops every running worker.
func (a *App) CancelAll() {
	a.supervisor.CancelAll()
}

// ActiveWorkers returns the number of running workers.
func (a *App) ActiveWorkers() int {
	return a.supervisor.ActiveCount()
}

// ClearCache removes every persisted entry and forgets memoized versions.
func (a *App) ClearCache() error {
	a.probe.Reset()
	return a.cache.Clear()
}

// CacheStats returns the cache counters.
func (a *App) CacheStats() domain.CacheStats {
	return a.cache.Stats()
}

// ExpireCache removes entries strictly older than d.
func (a *App) ExpireCache(d time.Duration) (int, error) {
	return a.cache.ExpireOlderThan(d)
}

// CacheDir returns the configured cache directory.
func (a *App) CacheDir() string {
	return a.cfg.CacheDir
}

// Watch runs a discovery, then rediscovers whenever a watched source
// directory changes, until ctx is done. Each outcome is passed to onResult,
// possibly from another goroutine. Cache hygiene runs while watching.
func (a *App) Watch(ctx context.Context, onResult func(domain.DiscoveryResult, error)) error {
	dirs := a.WatchDirs(a.host())
	if err := a.watcher.Start(ctx, dirs); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	if err := a.hygiene.Start(); err != nil {
		return err
	}
	defer func() {
		_ = a.hygiene.Stop()
	}()

	a.logger.Info("watching " + strconv.Itoa(len(dirs)) + " locations")

	rediscover := func(force bool) {
		res, err := supervisor.Await[domain.DiscoveryResult](ctx, a.Discover(ctx, force))
		if ctx.Err() != nil {
			return
		}
		onResult(res, err)
	}
	rediscover(false)

	debouncer := watcher.NewDebouncer(a.cfg.WatchDebounce, func(paths []string) {
		a.logger.Info("change detected in " + strconv.Itoa(len(paths)) + " locations, rediscovering")
		rediscover(true)
	})
	defer debouncer.Stop()
	for ev := range a.watcher.Events() {
		debouncer.Add(ev.Path)
	}
	return nil
}

// WatchDirs lists the directories whose changes can alter a discovery on
// host: every PATH entry, the working directory and each manager root with
// its envs folder.
func (a *App) WatchDirs(host domain.HostSnapshot) []string {
	dirs := host.PathDirs()
	if host.WorkDir != "" {
		dirs = append(dirs, host.WorkDir)
	}
	for _, r := range a.locator.Roots(host) {
		dirs = append(dirs, r.Root, r.EnvsDir())
	}
	for i, d := range dirs {
		dirs[i] = filepath.Clean(d)
	}
	slices.Sort(dirs)
	return slices.Compact(dirs)
}
