// Package probe reads interpreter and build tool versions by running the
// interpreter out of process.
package probe

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

// Probe answers version queries. Results are memoized per path for the life
// of the Probe and persisted per path and calendar day.
type Probe struct {
	runner  ports.CommandRunner
	cache   ports.Cache
	locator ports.ManagerLocator
	metrics ports.Metrics
	logger  ports.Logger
	tool    string
	timeout time.Duration
	now     func() time.Time
	host    func() domain.HostSnapshot

	mu    sync.Mutex
	memo  map[string]domain.Versions
	group singleflight.Group
}

// Option configures a Probe.
type Option func(*Probe)

// WithClock overrides the time source used for version keys.
func WithClock(now func() time.Time) Option {
	return func(p *Probe) {
		p.now = now
	}
}

// WithHost overrides how the host snapshot for manager lookups is taken.
func WithHost(host func() domain.HostSnapshot) Option {
	return func(p *Probe) {
		p.host = host
	}
}

// WithTool sets the module name of the companion build tool and the timeout
// of each invocation.
func WithTool(module string, timeout time.Duration) Option {
	return func(p *Probe) {
		if module != "" {
			p.tool = module
		}
		if timeout > 0 {
			p.timeout = timeout
		}
	}
}

// New creates a new Probe.
func New(
	runner ports.CommandRunner,
	cache ports.Cache,
	locator ports.ManagerLocator,
	metrics ports.Metrics,
	logger ports.Logger,
	opts ...Option,
) *Probe {
	p := &Probe{
		runner:  runner,
		cache:   cache,
		locator: locator,
		metrics: metrics,
		logger:  logger,
		tool:    domain.DefaultToolModule,
		timeout: domain.DefaultProbeTimeout,
		now:     time.Now,
		host:    domain.CaptureHost,
		memo:    make(map[string]domain.Versions),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Versions returns the interpreter and tool versions of the interpreter at
// path. It never fails: anything that cannot be read is domain.Unknown.
func (p *Probe) Versions(ctx context.Context, path string) domain.Versions {
	path = filepath.Clean(path)

	p.mu.Lock()
	v, ok := p.memo[path]
	p.mu.Unlock()
	if ok {
		return v
	}

	// The shared probe outlives any one caller; the command timeouts bound it.
	shared := context.WithoutCancel(ctx)
	ch := p.group.DoChan(path, func() (any, error) {
		return p.probe(shared, path), nil
	})
	select {
	case res := <-ch:
		//nolint:forcetypeassert // the group only ever stores domain.Versions
		return res.Val.(domain.Versions)
	case <-ctx.Done():
		return domain.UnknownVersions()
	}
}

// Reset drops the memoized results.
func (p *Probe) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	clear(p.memo)
}

func (p *Probe) remember(path string, v domain.Versions) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.memo[path] = v
}

func (p *Probe) probe(ctx context.Context, path string) domain.Versions {
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			p.logger.Warn("probe: " + err.Error())
		}
		return domain.UnknownVersions()
	}

	now := p.now()
	key := domain.VersionKey(path, now)
	if v, ok := p.cache.GetVersions(key); ok {
		p.remember(path, v)
		return v
	}

	start := time.Now()
	v := domain.Versions{
		Interpreter: p.interpreterVersion(ctx, path),
		Tool:        p.toolVersion(ctx, path),
	}
	p.metrics.ObserveProbe(v.Known(), time.Since(start))

	if !v.Known() {
		return v
	}
	if err := p.cache.PutVersions(key, path, v); err != nil {
		p.logger.Error(err)
	}
	p.remember(path, v)
	return v
}

func (p *Probe) interpreterVersion(ctx context.Context, path string) string {
	out, ok := p.run(ctx, path, "--version")
	if !ok {
		return domain.Unknown
	}
	return Normalize(out, p.tool)
}

func (p *Probe) toolVersion(ctx context.Context, path string) string {
	if out, ok := p.run(ctx, path, "-m", p.tool, "--version"); ok {
		return Normalize(out, p.tool)
	}

	host := p.host()
	envRoot := domain.InferEnvRoot(path)
	root, ok := p.managerRoot(host, envRoot)
	if !ok {
		return domain.Unknown
	}

	for _, mgr := range managerExecutables(root, host) {
		if info, err := os.Stat(mgr); err != nil || !info.Mode().IsRegular() {
			continue
		}
		if out, ok := p.run(ctx, mgr, "run", "-p", envRoot, "python", "-m", p.tool, "--version"); ok {
			return Normalize(out, p.tool)
		}
	}
	return domain.Unknown
}

// run executes one command and returns its output, preferring stdout.
func (p *Probe) run(ctx context.Context, path string, args ...string) (string, bool) {
	out, err := p.runner.Run(ctx, domain.Command{Path: path, Args: args, Timeout: p.timeout})
	if err != nil {
		return "", false
	}
	text := strings.TrimSpace(out.Stdout)
	if text == "" {
		text = strings.TrimSpace(out.Stderr)
	}
	return text, text != ""
}

// managerRoot returns the manager installation owning envRoot, either as its
// base or as one of its environments.
func (p *Probe) managerRoot(host domain.HostSnapshot, envRoot string) (string, bool) {
	for _, r := range p.locator.Roots(host) {
		if envRoot == r.Root || filepath.Dir(envRoot) == r.EnvsDir() {
			return r.Root, true
		}
	}

	// An environment of a manager the locator does not know about.
	parent := filepath.Dir(envRoot)
	if filepath.Base(parent) == domain.EnvsDirName {
		if _, err := os.Stat(filepath.Join(envRoot, "conda-meta")); err == nil {
			return filepath.Dir(parent), true
		}
	}
	return "", false
}

// managerExecutables lists the manager front-ends to try, in order.
func managerExecutables(root string, host domain.HostSnapshot) []string {
	out := []string{
		filepath.Join(root, "condabin", "conda"),
		filepath.Join(root, "condabin", "conda.bat"),
		filepath.Join(root, "bin", "conda"),
		filepath.Join(root, "Scripts", "conda.exe"),
		filepath.Join(root, "bin", "mamba"),
		filepath.Join(root, "bin", "micromamba"),
	}
	if exe := host.Getenv("CONDA_EXE"); exe != "" {
		out = append(out, exe)
	}
	return out
}
