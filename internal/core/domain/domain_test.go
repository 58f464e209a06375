package domain_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/seek/internal/core/domain"
)

func TestNormalizeRecords_DedupAndOrder(t *testing.T) {
	records := []domain.InterpreterRecord{
		{Path: "/opt/conda/bin/python3", Provenance: domain.ProvenancePathEnv},
		{Path: "/b/python", Provenance: domain.ProvenancePathEnv},
		{Path: "/a/python", Provenance: domain.ProvenancePathEnv},
		{Path: "/opt/conda/bin/python3", Provenance: domain.ProvenanceManagerBase, EnvRoot: "/opt/conda"},
		{Path: "/a/python", Provenance: domain.ProvenanceInstallDir},
		{Path: "/usr/local/bin/../bin/python3", Provenance: domain.ProvenancePathEnv},
	}

	got := domain.NormalizeRecords(records)

	require.Len(t, got, 4)
	assert.Equal(t, []string{
		"/a/python",
		"/b/python",
		"/opt/conda/bin/python3",
		"/usr/local/bin/python3",
	}, domain.DiscoveryResult{Interpreters: got}.Paths())

	assert.Equal(t, domain.ProvenanceInstallDir, got[0].Provenance)
	assert.Equal(t, domain.ProvenanceManagerBase, got[2].Provenance)
	assert.Equal(t, "/opt/conda", got[2].EnvRoot)

	seen := make(map[string]bool)
	for _, rec := range got {
		assert.False(t, seen[rec.Path], "duplicate path %s", rec.Path)
		seen[rec.Path] = true
	}
}

func TestNormalizeRecords_Empty(t *testing.T) {
	assert.Empty(t, domain.NormalizeRecords(nil))
}

func TestProvenance_Rank(t *testing.T) {
	order := []domain.Provenance{
		domain.ProvenancePathEnv,
		domain.ProvenanceInstallDir,
		domain.ProvenanceRegistry,
		domain.ProvenanceVirtualenv,
		domain.ProvenanceManagerBase,
		domain.ProvenanceManagerEnv,
	}
	for i := 1; i < len(order); i++ {
		assert.Greater(t, order[i].Rank(), order[i-1].Rank(), "%s should outrank %s", order[i], order[i-1])
	}
	assert.Zero(t, domain.Provenance("bogus").Rank())
}

func TestInferEnvRoot(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{filepath.Join("/envs", "a", "bin", "python3"), filepath.Join("/envs", "a")},
		{filepath.Join("/py", "Scripts", "python.exe"), "/py"},
		{filepath.Join("/py", "python.exe"), "/py"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.InferEnvRoot(tt.path))
		})
	}
}

func TestInterpreterNames(t *testing.T) {
	unix := domain.InterpreterNames("linux")
	assert.Contains(t, unix, "python3")
	assert.Contains(t, unix, "python3.12")

	win := domain.InterpreterNames("windows")
	assert.Contains(t, win, "python.exe")
	for _, n := range win {
		assert.True(t, filepath.Ext(n) == ".exe", n)
	}
}

func TestInterpreterPaths(t *testing.T) {
	assert.Equal(t, []string{
		filepath.Join("env", "python.exe"),
		filepath.Join("env", "Scripts", "python.exe"),
	}, domain.InterpreterPaths("env", "windows"))
	assert.Equal(t, []string{
		filepath.Join("env", "bin", "python3"),
		filepath.Join("env", "bin", "python"),
	}, domain.InterpreterPaths("env", "linux"))
}

func TestHostSnapshot_PathDirs(t *testing.T) {
	unix := domain.HostSnapshot{OS: "linux", Env: map[string]string{"PATH": "/usr/bin::/bin"}}
	assert.Equal(t, []string{"/usr/bin", "/bin"}, unix.PathDirs())

	win := domain.HostSnapshot{OS: "windows", Env: map[string]string{"Path": `C:\Python;"C:\Tools";`}}
	assert.Equal(t, []string{`C:\Python`, `C:\Tools`}, win.PathDirs())
}

func TestDiscoveryKey(t *testing.T) {
	base := domain.HostSnapshot{OS: "linux", Arch: "amd64", Env: map[string]string{"PATH": "/usr/bin"}}

	k1 := domain.DiscoveryKey(base, domain.ModeFull)
	k2 := domain.DiscoveryKey(base, domain.ModeFull)
	assert.Equal(t, k1, k2)

	assert.NotEqual(t, k1, domain.DiscoveryKey(base, domain.ModeQuick))

	changed := base
	changed.Env = map[string]string{"PATH": "/usr/local/bin"}
	assert.NotEqual(t, k1, domain.DiscoveryKey(changed, domain.ModeFull))

	other := base
	other.Arch = "arm64"
	assert.NotEqual(t, k1, domain.DiscoveryKey(other, domain.ModeFull))
}

func TestVersionKey_RollsDaily(t *testing.T) {
	day := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	later := day.Add(10 * time.Hour)
	tomorrow := day.Add(24 * time.Hour)

	assert.Equal(t, domain.VersionKey("/usr/bin/python3", day), domain.VersionKey("/usr/bin/python3", later))
	assert.NotEqual(t, domain.VersionKey("/usr/bin/python3", day), domain.VersionKey("/usr/bin/python3", tomorrow))
	assert.NotEqual(t, domain.VersionKey("/usr/bin/python3", day), domain.VersionKey("/usr/bin/python", day))
}

func TestSessionPresence(t *testing.T) {
	h := domain.HostSnapshot{OS: "linux", Env: map[string]string{"CONDA_PREFIX": "/opt/conda"}}
	got := domain.SessionPresence(h)
	assert.True(t, got["CONDA_PREFIX"])
	assert.False(t, got["VIRTUAL_ENV"])
	assert.Len(t, got, len(domain.SessionVars))
}

func TestParseMode(t *testing.T) {
	m, err := domain.ParseMode("quick")
	require.NoError(t, err)
	assert.Equal(t, domain.ModeQuick, m)

	m, err = domain.ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, domain.ModeFull, m)

	_, err = domain.ParseMode("slow")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidMode))
}

func TestDiscoveryResult_Clone(t *testing.T) {
	orig := domain.DiscoveryResult{
		Interpreters: []domain.InterpreterRecord{{Path: "/a/python"}},
		SessionVars:  map[string]bool{"VIRTUAL_ENV": true},
		EnvDirs:      []string{"/opt/conda/envs"},
	}
	cp := orig.Clone()
	cp.Interpreters[0].Path = "/b/python"
	cp.SessionVars["VIRTUAL_ENV"] = false
	cp.EnvDirs[0] = "/x"

	assert.Equal(t, "/a/python", orig.Interpreters[0].Path)
	assert.True(t, orig.SessionVars["VIRTUAL_ENV"])
	assert.Equal(t, "/opt/conda/envs", orig.EnvDirs[0])
}

func TestVersions_Known(t *testing.T) {
	assert.False(t, domain.UnknownVersions().Known())
	assert.True(t, domain.Versions{Interpreter: "3.12.1", Tool: domain.Unknown}.Known())
}
