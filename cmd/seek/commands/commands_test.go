package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/seek/cmd/seek/commands"
	"go.trai.ch/seek/internal/adapters/telemetry/progrock"
	"go.trai.ch/seek/internal/app"
	"go.trai.ch/seek/internal/build"
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports/mocks"
	"go.trai.ch/seek/internal/engine/supervisor"
	"go.uber.org/mock/gomock"
)

type fakeEngine struct {
	sup *supervisor.Supervisor

	result   domain.DiscoveryResult
	err      error
	block    bool
	versions map[string]domain.Versions
	stats    domain.CacheStats
	removed  int

	gotOpts   app.DiscoverOptions
	olderThan time.Duration
	cleared   bool
	cancelled int
}

func newFakeEngine(t *testing.T) *fakeEngine {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	m := mocks.NewMockMetrics(ctrl)
	m.EXPECT().SetActiveWorkers(gomock.Any()).AnyTimes()
	return &fakeEngine{sup: supervisor.New(log, m), versions: map[string]domain.Versions{}}
}

func (e *fakeEngine) DiscoverWith(ctx context.Context, opts app.DiscoverOptions) *supervisor.Handle {
	e.gotOpts = opts
	return e.sup.Spawn(ctx, supervisor.KindDiscovery, "discover", func(ctx context.Context) (any, error) {
		if e.block {
			<-ctx.Done()
			return nil, domain.ErrDiscoveryCancelled
		}
		return e.result, e.err
	})
}

func (e *fakeEngine) ProbeVersions(ctx context.Context, path string) *supervisor.Handle {
	return e.sup.Spawn(ctx, supervisor.KindProbe, path, func(context.Context) (any, error) {
		if v, ok := e.versions[path]; ok {
			return v, nil
		}
		return domain.UnknownVersions(), nil
	})
}

func (e *fakeEngine) CancelAll() {
	e.cancelled++
	e.sup.CancelAll()
}

func (e *fakeEngine) ClearCache() error {
	e.cleared = true
	return nil
}

func (e *fakeEngine) CacheStats() domain.CacheStats { return e.stats }

func (e *fakeEngine) ExpireCache(d time.Duration) (int, error) {
	e.olderThan = d
	return e.removed, nil
}

func (e *fakeEngine) CacheDir() string { return "/tmp/seek-cache" }

func (e *fakeEngine) Watch(ctx context.Context, onResult func(domain.DiscoveryResult, error)) error {
	onResult(e.result, nil)
	onResult(domain.DiscoveryResult{}, errors.New("scan exploded"))
	<-ctx.Done()
	return nil
}

// syncBuffer is a bytes.Buffer safe for concurrent writes and reads.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func execute(t *testing.T, e *fakeEngine, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	var stdout, stderr bytes.Buffer
	cli := commands.New(e)
	cli.SetArgs(args)
	cli.SetOutput(&stdout, &stderr)
	err := cli.Execute(context.Background())
	return stdout.String(), stderr.String(), err
}

var sample = domain.DiscoveryResult{
	Interpreters: []domain.InterpreterRecord{
		{Path: "/usr/bin/python3", Provenance: domain.ProvenancePathEnv},
		{Path: "/opt/conda/bin/python", Provenance: domain.ProvenanceManagerBase, EnvRoot: "/opt/conda"},
	},
	CompletedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	Mode:        domain.ModeFull,
}

func TestDiscover(t *testing.T) {
	t.Run("prints records", func(t *testing.T) {
		e := newFakeEngine(t)
		e.result = sample

		out, _, err := execute(t, e, "discover")
		require.NoError(t, err)
		assert.Contains(t, out, "/usr/bin/python3")
		assert.Contains(t, out, "env-manager-base")
		assert.Contains(t, out, "2 interpreters (scanned, 2025-06-01T12:00:00Z)")
		assert.False(t, e.gotOpts.Force)
		assert.Empty(t, e.gotOpts.Mode)
	})

	t.Run("wires flags", func(t *testing.T) {
		e := newFakeEngine(t)
		e.result = sample
		e.result.FromCache = true

		out, _, err := execute(t, e, "discover", "--force", "-q")
		require.NoError(t, err)
		assert.True(t, e.gotOpts.Force)
		assert.Equal(t, domain.ModeQuick, e.gotOpts.Mode)
		assert.Contains(t, out, "from cache")
	})

	t.Run("json output", func(t *testing.T) {
		e := newFakeEngine(t)
		e.result = sample

		out, _, err := execute(t, e, "discover", "--json")
		require.NoError(t, err)

		var got domain.DiscoveryResult
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, sample.Interpreters, got.Interpreters)
		assert.Equal(t, domain.ModeFull, got.Mode)
	})

	t.Run("timeout cancels workers", func(t *testing.T) {
		e := newFakeEngine(t)
		e.block = true

		_, _, err := execute(t, e, "discover", "--timeout", "10ms")
		require.ErrorIs(t, err, domain.ErrDiscoveryTimeout)
		assert.Equal(t, 1, e.cancelled)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		e := newFakeEngine(t)
		e.err = domain.ErrNoFilesystemAccess

		_, _, err := execute(t, e, "discover")
		require.ErrorIs(t, err, domain.ErrNoFilesystemAccess)
	})
}

func TestDiscover_Progress(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	recorder := progrock.New()
	_, scan := recorder.Record(context.Background(), "discover:scan")
	scan.Log(domain.LogLevelInfo, "candidates: 2")
	scan.Complete(nil)

	run := func(args ...string) string {
		e := newFakeEngine(t)
		e.result = sample
		var stdout, stderr bytes.Buffer
		cli := commands.New(e, commands.WithProgress(recorder.Render))
		cli.SetArgs(args)
		cli.SetOutput(&stdout, &stderr)
		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, stdout.String(), "2 interpreters")
		return stderr.String()
	}

	assert.Equal(t, "✓ discover:scan\n  INFO: candidates: 2\n", run("discover", "--progress"))
	assert.Empty(t, run("discover"))
}

func TestProbe(t *testing.T) {
	e := newFakeEngine(t)
	e.versions["/usr/bin/python3"] = domain.Versions{Interpreter: "3.12.1", Tool: "6.3.0"}

	out, _, err := execute(t, e, "probe", "/usr/bin/python3", "/missing/python")
	require.NoError(t, err)
	assert.Contains(t, out, "python 3.12.1, tool 6.3.0")
	assert.Contains(t, out, "/missing/python")
	assert.Contains(t, out, "python unknown, tool unknown")

	_, _, err = execute(t, e, "probe")
	require.Error(t, err, "probe needs at least one path")
}

func TestCache(t *testing.T) {
	t.Run("stats", func(t *testing.T) {
		e := newFakeEngine(t)
		e.stats = domain.CacheStats{Hits: 3, Misses: 1, Writes: 2}

		out, _, err := execute(t, e, "cache", "stats")
		require.NoError(t, err)
		assert.Contains(t, out, "/tmp/seek-cache")
		assert.Contains(t, out, "hits    3")
		assert.Contains(t, out, "writes  2")
	})

	t.Run("stats json", func(t *testing.T) {
		e := newFakeEngine(t)
		e.stats = domain.CacheStats{Hits: 3}

		out, _, err := execute(t, e, "cache", "stats", "--json")
		require.NoError(t, err)
		assert.JSONEq(t, `{"dir":"/tmp/seek-cache","hits":3,"misses":0,"writes":0,"errors":0}`, out)
	})

	t.Run("clear", func(t *testing.T) {
		e := newFakeEngine(t)

		out, _, err := execute(t, e, "cache", "clear")
		require.NoError(t, err)
		assert.True(t, e.cleared)
		assert.Contains(t, out, "cache cleared")
	})

	t.Run("expire", func(t *testing.T) {
		e := newFakeEngine(t)
		e.removed = 4

		out, _, err := execute(t, e, "cache", "expire", "--older-than", "2h")
		require.NoError(t, err)
		assert.Equal(t, 2*time.Hour, e.olderThan)
		assert.Contains(t, out, "removed 4 entries older than 2h0m0s")
	})
}

func TestWatch(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	e := newFakeEngine(t)
	e.result = sample

	ctx, cancel := context.WithCancel(context.Background())
	var stdout, stderr syncBuffer
	cli := commands.New(e)
	cli.SetArgs([]string{"watch"})
	cli.SetOutput(&stdout, &stderr)

	done := make(chan error, 1)
	go func() { done <- cli.Execute(ctx) }()

	require.Eventually(t, func() bool {
		return strings.Contains(stderr.String(), "scan exploded")
	}, time.Second, 5*time.Millisecond)
	cancel()

	require.NoError(t, <-done)
	assert.Contains(t, stdout.String(), "2 interpreters")
	assert.Contains(t, stderr.String(), "discovery failed: scan exploded")
	assert.Equal(t, 1, e.cancelled)
}

func TestWatch_MetricsServer(t *testing.T) {
	e := newFakeEngine(t)
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cli := commands.New(e, commands.WithMetricsHandler(handler))
	cli.SetArgs([]string{"watch", "--metrics-addr", "127.0.0.1:0"})
	cli.SetOutput(&bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(t, cli.Execute(ctx))
}

func TestWatch_MetricsUnavailable(t *testing.T) {
	e := newFakeEngine(t)

	_, _, err := execute(t, e, "watch", "--metrics-addr", "127.0.0.1:0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metrics are not available")
}

func TestJSONFlagReachesLogHook(t *testing.T) {
	e := newFakeEngine(t)
	var got []bool

	cli := commands.New(e, commands.WithLogFormat(func(json bool) { got = append(got, json) }))
	cli.SetArgs([]string{"version", "--json"})
	var stdout bytes.Buffer
	cli.SetOutput(&stdout, &bytes.Buffer{})
	require.NoError(t, cli.Execute(context.Background()))

	assert.Equal(t, []bool{true}, got)
	assert.Contains(t, stdout.String(), `"version": "`+build.Version+`"`)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, newFakeEngine(t), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "seek version "+build.Version)
}
