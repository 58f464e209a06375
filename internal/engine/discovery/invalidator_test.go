package discovery_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports/mocks"
	"go.trai.ch/seek/internal/engine/discovery"
	"go.uber.org/mock/gomock"
)

const tolerance = 2 * time.Second

type invalidatorFixture struct {
	cache     *mocks.MockCache
	validator *mocks.MockValidator
	locator   *mocks.MockManagerLocator
	iv        *discovery.Invalidator
}

func newInvalidator(t *testing.T) *invalidatorFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &invalidatorFixture{
		cache:     mocks.NewMockCache(ctrl),
		validator: mocks.NewMockValidator(ctrl),
		locator:   mocks.NewMockManagerLocator(ctrl),
	}
	f.iv = discovery.NewInvalidator(f.cache, f.validator, f.locator, tolerance)
	return f
}

func TestInvalidator_Check(t *testing.T) {
	host := domain.HostSnapshot{OS: "linux", Env: map[string]string{"CONDA_PREFIX": "/opt/conda"}}
	scanTime := time.Now()

	type env struct {
		root, py, envs string
	}
	build := func(t *testing.T) env {
		t.Helper()
		root := t.TempDir()
		e := env{
			root: filepath.Join(root, "conda"),
			py:   touch(t, filepath.Join(root, "conda", "bin", "python3")),
			envs: mkdir(t, filepath.Join(root, "conda", "envs")),
		}
		backdate(t, root)
		return e
	}
	result := func(e env) domain.DiscoveryResult {
		return domain.DiscoveryResult{
			Interpreters: []domain.InterpreterRecord{{Path: e.py, Provenance: domain.ProvenanceManagerBase, EnvRoot: e.root}},
			CompletedAt:  scanTime,
			SessionVars:  domain.SessionPresence(host),
			EnvDirs:      []string{e.envs},
		}
	}

	tests := []struct {
		name   string
		setup  func(t *testing.T, f *invalidatorFixture, e env) domain.DiscoveryResult
		reason string
		valid  bool
	}{
		{
			name: "fresh",
			setup: func(_ *testing.T, f *invalidatorFixture, e env) domain.DiscoveryResult {
				f.cache.EXPECT().LastScan().Return(scanTime, true)
				f.validator.EXPECT().IsValid(e.py).Return(true)
				f.locator.EXPECT().Roots(host).Return([]domain.ManagerRoot{{Family: "anaconda", Root: e.root}})
				return result(e)
			},
			reason: discovery.ReasonFresh,
			valid:  true,
		},
		{
			name: "no stamp",
			setup: func(_ *testing.T, f *invalidatorFixture, e env) domain.DiscoveryResult {
				f.cache.EXPECT().LastScan().Return(time.Time{}, false)
				return result(e)
			},
			reason: discovery.ReasonNoStamp,
		},
		{
			name: "interpreter no longer valid",
			setup: func(_ *testing.T, f *invalidatorFixture, e env) domain.DiscoveryResult {
				f.cache.EXPECT().LastScan().Return(scanTime, true)
				f.validator.EXPECT().IsValid(e.py).Return(false)
				return result(e)
			},
			reason: discovery.ReasonInterpreterInvalid,
		},
		{
			name: "environment modified",
			setup: func(t *testing.T, f *invalidatorFixture, e env) domain.DiscoveryResult {
				bump(t, e.root)
				f.cache.EXPECT().LastScan().Return(scanTime, true)
				f.validator.EXPECT().IsValid(e.py).Return(true)
				return result(e)
			},
			reason: discovery.ReasonEnvModified,
		},
		{
			name: "envs folder modified",
			setup: func(t *testing.T, f *invalidatorFixture, e env) domain.DiscoveryResult {
				bump(t, e.envs)
				f.cache.EXPECT().LastScan().Return(scanTime, true)
				f.validator.EXPECT().IsValid(e.py).Return(true)
				return result(e)
			},
			reason: discovery.ReasonEnvsChanged,
		},
		{
			name: "new envs folder",
			setup: func(t *testing.T, f *invalidatorFixture, e env) domain.DiscoveryResult {
				other := filepath.Join(t.TempDir(), "mamba")
				mkdir(t, filepath.Join(other, "envs"))
				f.cache.EXPECT().LastScan().Return(scanTime, true)
				f.validator.EXPECT().IsValid(e.py).Return(true)
				f.locator.EXPECT().Roots(host).Return([]domain.ManagerRoot{
					{Family: "anaconda", Root: e.root},
					{Family: "micromamba", Root: other},
				})
				return result(e)
			},
			reason: discovery.ReasonEnvsAdded,
		},
		{
			name: "session variables changed",
			setup: func(_ *testing.T, f *invalidatorFixture, e env) domain.DiscoveryResult {
				f.cache.EXPECT().LastScan().Return(scanTime, true)
				f.validator.EXPECT().IsValid(e.py).Return(true)
				f.locator.EXPECT().Roots(host).Return([]domain.ManagerRoot{{Family: "anaconda", Root: e.root}})
				r := result(e)
				r.SessionVars = map[string]bool{}
				return r
			},
			reason: discovery.ReasonSessionChanged,
		},
		{
			name: "a later stamp does not vouch for an older result",
			setup: func(t *testing.T, f *invalidatorFixture, e env) domain.DiscoveryResult {
				touched := time.Now().Add(-10 * time.Minute)
				require.NoError(t, chtimes(e.root, touched))
				f.cache.EXPECT().LastScan().Return(scanTime, true)
				f.validator.EXPECT().IsValid(e.py).Return(true)
				r := result(e)
				r.CompletedAt = scanTime.Add(-20 * time.Minute)
				return r
			},
			reason: discovery.ReasonEnvModified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInvalidator(t)
			e := build(t)
			cached := tt.setup(t, f, e)

			verdict, err := f.iv.Check(cached, host)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, verdict.Valid)
			assert.Equal(t, tt.reason, verdict.Reason)
		})
	}
}

func TestInvalidator_MissingEnvironment(t *testing.T) {
	f := newInvalidator(t)
	gone := filepath.Join(t.TempDir(), "gone")

	f.cache.EXPECT().LastScan().Return(time.Now(), true)
	f.validator.EXPECT().IsValid(gomock.Any()).Return(true)

	verdict, err := f.iv.Check(domain.DiscoveryResult{
		Interpreters: []domain.InterpreterRecord{{Path: filepath.Join(gone, "bin", "python3"), Provenance: domain.ProvenanceVirtualenv}},
		CompletedAt:  time.Now(),
	}, domain.HostSnapshot{})
	require.NoError(t, err)
	assert.False(t, verdict.Valid)
	assert.Equal(t, discovery.ReasonEnvModified, verdict.Reason)
	assert.Equal(t, gone, verdict.Path)
}

func TestInvalidator_EnvDirs(t *testing.T) {
	f := newInvalidator(t)
	withEnvs := t.TempDir()
	envs := mkdir(t, filepath.Join(withEnvs, "envs"))
	withoutEnvs := t.TempDir()

	host := domain.HostSnapshot{OS: "linux"}
	f.locator.EXPECT().Roots(host).Return([]domain.ManagerRoot{
		{Family: "anaconda", Root: withEnvs},
		{Family: "miniforge", Root: withoutEnvs},
	})

	assert.Equal(t, []string{envs}, f.iv.EnvDirs(host))
}
