package scanner_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/seek/internal/adapters/scanner"
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func touch(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	return path
}

func mkdir(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0o750))
	return path
}

func linuxHost(home string, env map[string]string) domain.HostSnapshot {
	if env == nil {
		env = map[string]string{}
	}
	return domain.HostSnapshot{OS: "linux", Arch: "amd64", Env: env, Home: home}
}

func TestPathEnv_Scan(t *testing.T) {
	tmp := t.TempDir()
	binA := mkdir(t, filepath.Join(tmp, "a"))
	binB := mkdir(t, filepath.Join(tmp, "b"))
	py3 := touch(t, filepath.Join(binA, "python3"))
	py312 := touch(t, filepath.Join(binB, "python3.12"))
	mkdir(t, filepath.Join(binB, "python")) // directories never count
	touch(t, filepath.Join(binB, "python2"))

	h := linuxHost(tmp, map[string]string{
		"PATH": binA + "::" + binB + ":" + filepath.Join(tmp, "missing"),
	})

	got, err := scanner.PathEnv{}.Scan(context.Background(), domain.ScanInput{Host: h})
	require.NoError(t, err)
	assert.Equal(t, []domain.InterpreterRecord{
		{Path: py3, Provenance: domain.ProvenancePathEnv},
		{Path: py312, Provenance: domain.ProvenancePathEnv},
	}, got)
}

func TestPathEnv_WindowsSkipsStoreAliases(t *testing.T) {
	tmp := t.TempDir()
	real := mkdir(t, filepath.Join(tmp, "Python312"))
	alias := mkdir(t, filepath.Join(tmp, "Microsoft", "WindowsApps"))
	exe := touch(t, filepath.Join(real, "python.exe"))
	touch(t, filepath.Join(alias, "python.exe"))
	touch(t, filepath.Join(real, "python3.12.exe"))

	h := domain.HostSnapshot{OS: "windows", Env: map[string]string{"Path": alias + ";" + real}}

	got, err := scanner.PathEnv{}.Scan(context.Background(), domain.ScanInput{Host: h})
	require.NoError(t, err)
	assert.Equal(t, []domain.InterpreterRecord{{Path: exe, Provenance: domain.ProvenancePathEnv}}, got)
}

func TestPathEnv_Cancelled(t *testing.T) {
	tmp := t.TempDir()
	touch(t, filepath.Join(tmp, "python3"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := scanner.PathEnv{}.Scan(ctx, domain.ScanInput{Host: linuxHost(tmp, map[string]string{"PATH": tmp})})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestInstallDir_Scan(t *testing.T) {
	home := t.TempDir()
	prefix := t.TempDir()

	pyenv := touch(t, filepath.Join(home, ".pyenv", "versions", "3.11.4", "bin", "python3"))
	mkdir(t, filepath.Join(home, ".pyenv", "versions", "broken", "bin"))
	uv := touch(t, filepath.Join(home, ".local", "share", "uv", "python", "cpython-3.12.1-linux-x86_64-gnu", "bin", "python"))
	opt := touch(t, filepath.Join(prefix, "python", "3.10", "bin", "python3"))

	h := linuxHost(home, nil)
	h.Prefixes = []string{prefix}

	got, err := scanner.InstallDir{}.Scan(context.Background(), domain.ScanInput{Host: h})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, pyenv, got[0].Path)
	assert.Equal(t, filepath.Join(home, ".pyenv", "versions", "3.11.4"), got[0].EnvRoot)
	assert.Equal(t, uv, got[1].Path)
	assert.Equal(t, opt, got[2].Path)
	for _, rec := range got {
		assert.Equal(t, domain.ProvenanceInstallDir, rec.Provenance)
	}
}

func TestInstallRoots_Windows(t *testing.T) {
	h := domain.HostSnapshot{
		OS:       "windows",
		Env:      map[string]string{"LOCALAPPDATA": `C:\Users\dev\AppData\Local`},
		Prefixes: []string{`C:\Program Files`, `C:\`},
	}
	roots := scanner.InstallRoots(h)
	require.Len(t, roots, 3)
	assert.Equal(t, filepath.Join(`C:\Users\dev\AppData\Local`, "Programs", "Python"), roots[0])
}

func TestInstallRoots_Darwin(t *testing.T) {
	h := domain.HostSnapshot{OS: "darwin", Home: "/Users/dev"}
	assert.Contains(t, scanner.InstallRoots(h), "/Library/Frameworks/Python.framework/Versions")
}

func TestRegistry_Scan(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockRegistryReader(ctrl)

	tmp := t.TempDir()
	py312 := mkdir(t, filepath.Join(tmp, "Python312"))
	exe312 := touch(t, filepath.Join(py312, "python.exe"))
	py311 := mkdir(t, filepath.Join(tmp, "Python311"))
	exe311 := touch(t, filepath.Join(py311, "bin", "python.exe"))

	notFound := zerr.Wrap(domain.ErrRegistryKeyNotFound, "HKLM")
	core := `SOFTWARE\Python\PythonCore`
	wow := `SOFTWARE\WOW6432Node\Python\PythonCore`

	reader.EXPECT().SubKeys(domain.ScopeMachine, core).Return([]string{"3.12", "3.11", "3.10"}, nil)
	reader.EXPECT().StringValue(domain.ScopeMachine, core+`\3.12\InstallPath`, "").Return(py312, nil)
	reader.EXPECT().StringValue(domain.ScopeMachine, core+`\3.11\InstallPath`, "").Return(py311, nil)
	reader.EXPECT().StringValue(domain.ScopeMachine, core+`\3.10\InstallPath`, "").Return("", notFound)
	reader.EXPECT().SubKeys(domain.ScopeMachine, wow).Return(nil, notFound)
	reader.EXPECT().SubKeys(domain.ScopeUser, core).Return(nil, notFound)
	reader.EXPECT().SubKeys(domain.ScopeUser, wow).Return(nil, notFound)

	got, err := scanner.NewRegistry(reader).Scan(context.Background(), domain.ScanInput{})
	require.NoError(t, err)
	assert.Equal(t, []domain.InterpreterRecord{
		{Path: exe312, Provenance: domain.ProvenanceRegistry, EnvRoot: py312},
		{Path: exe311, Provenance: domain.ProvenanceRegistry, EnvRoot: py311},
	}, got)
}

func TestRegistry_UnavailableIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockRegistryReader(ctrl)
	reader.EXPECT().SubKeys(gomock.Any(), gomock.Any()).Return(nil, domain.ErrRegistryUnavailable).Times(1)

	got, err := scanner.NewRegistry(reader).Scan(context.Background(), domain.ScanInput{})
	require.ErrorIs(t, err, domain.ErrSourceUnavailable)
	assert.Empty(t, got)
}

func TestRegistry_ReadErrorIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockRegistryReader(ctrl)
	reader.EXPECT().SubKeys(gomock.Any(), gomock.Any()).Return(nil, errors.New("access denied")).Times(4)

	_, err := scanner.NewRegistry(reader).Scan(context.Background(), domain.ScanInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestManager_ScanRootAndEnvs(t *testing.T) {
	home := t.TempDir()
	root := filepath.Join(home, "miniconda3")
	base := touch(t, filepath.Join(root, "bin", "python3"))
	envA := touch(t, filepath.Join(root, "envs", "envA", "bin", "python3"))
	envB := touch(t, filepath.Join(root, "envs", "envB", "bin", "python"))
	mkdir(t, filepath.Join(root, "envs", "empty"))

	got, err := scanner.Manager{}.Scan(context.Background(), domain.ScanInput{Host: linuxHost(home, nil)})
	require.NoError(t, err)
	assert.Equal(t, []domain.InterpreterRecord{
		{Path: base, Provenance: domain.ProvenanceManagerBase, EnvRoot: root},
		{Path: envA, Provenance: domain.ProvenanceManagerEnv, EnvRoot: filepath.Join(root, "envs", "envA")},
		{Path: envB, Provenance: domain.ProvenanceManagerEnv, EnvRoot: filepath.Join(root, "envs", "envB")},
	}, got)
}

func TestManager_Roots(t *testing.T) {
	home := t.TempDir()
	prefix := t.TempDir()
	custom := mkdir(t, filepath.Join(t.TempDir(), "conda"))
	mkdir(t, filepath.Join(home, "miniforge3"))
	mkdir(t, filepath.Join(prefix, "micromamba"))

	tests := []struct {
		name string
		env  map[string]string
		want []domain.ManagerRoot
	}{
		{
			name: "conventional locations",
			want: []domain.ManagerRoot{
				{Family: "miniforge", Root: filepath.Join(home, "miniforge3")},
				{Family: "micromamba", Root: filepath.Join(prefix, "micromamba")},
			},
		},
		{
			name: "executable variable resolves to the grandparent",
			env:  map[string]string{"CONDA_EXE": filepath.Join(custom, "bin", "conda")},
			want: []domain.ManagerRoot{
				{Family: "anaconda", Root: custom},
				{Family: "miniforge", Root: filepath.Join(home, "miniforge3")},
				{Family: "micromamba", Root: filepath.Join(prefix, "micromamba")},
			},
		},
		{
			name: "shared root is reported once",
			env:  map[string]string{"MINIFORGE_HOME": custom, "CONDA_ROOT": custom},
			want: []domain.ManagerRoot{
				{Family: "anaconda", Root: custom},
				{Family: "micromamba", Root: filepath.Join(prefix, "micromamba")},
			},
		},
		{
			name: "missing variable target falls back",
			env:  map[string]string{"MINIFORGE_HOME": filepath.Join(home, "nope")},
			want: []domain.ManagerRoot{
				{Family: "miniforge", Root: filepath.Join(home, "miniforge3")},
				{Family: "micromamba", Root: filepath.Join(prefix, "micromamba")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := linuxHost(home, tt.env)
			h.Prefixes = []string{prefix}
			assert.Equal(t, tt.want, scanner.Manager{}.Roots(h))
		})
	}
}

func TestVirtualenv_Scan(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	other := t.TempDir()

	found := touch(t, filepath.Join(other, "envs", "a", "bin", "python3"))
	sibling := touch(t, filepath.Join(other, "envs", "b", "bin", "python3"))
	workon := touch(t, filepath.Join(home, ".virtualenvs", "proj", "bin", "python"))
	pipenv := touch(t, filepath.Join(home, ".local", "share", "virtualenvs", "app-x1y2", "bin", "python3"))
	local := touch(t, filepath.Join(work, ".venv", "bin", "python3"))
	active := touch(t, filepath.Join(other, "active", "bin", "python3"))

	h := linuxHost(home, map[string]string{"VIRTUAL_ENV": filepath.Join(other, "active")})
	h.WorkDir = work

	in := domain.ScanInput{
		Host:  h,
		Found: []domain.InterpreterRecord{{Path: found, Provenance: domain.ProvenancePathEnv}},
	}
	got, err := scanner.Virtualenv{}.Scan(context.Background(), in)
	require.NoError(t, err)

	paths := domain.DiscoveryResult{Interpreters: got}.Paths()
	assert.ElementsMatch(t, []string{found, sibling, workon, pipenv, active, local}, paths)
	for _, rec := range got {
		assert.Equal(t, domain.ProvenanceVirtualenv, rec.Provenance)
	}
}

func TestVirtualenv_WindowsScriptsLayout(t *testing.T) {
	tmp := t.TempDir()
	workon := filepath.Join(tmp, "Envs")
	proj := touch(t, filepath.Join(workon, "proj", "Scripts", "python.exe"))
	touch(t, filepath.Join(workon, "proj", "pyvenv.cfg"))
	active := touch(t, filepath.Join(tmp, "active", "Scripts", "python.exe"))

	h := domain.HostSnapshot{
		OS:   "windows",
		Arch: "amd64",
		Home: filepath.Join(tmp, "home"),
		Env: map[string]string{
			"WORKON_HOME": workon,
			"VIRTUAL_ENV": filepath.Join(tmp, "active"),
		},
	}

	got, err := scanner.Virtualenv{}.Scan(context.Background(), domain.ScanInput{Host: h})
	require.NoError(t, err)
	assert.Equal(t, []domain.InterpreterRecord{
		{Path: proj, Provenance: domain.ProvenanceVirtualenv, EnvRoot: filepath.Join(workon, "proj")},
		{Path: active, Provenance: domain.ProvenanceVirtualenv, EnvRoot: filepath.Join(tmp, "active")},
	}, got)
}

func TestManager_UnreadableRootsAreReported(t *testing.T) {
	file := touch(t, filepath.Join(t.TempDir(), "file"))
	h := linuxHost(file, map[string]string{"CONDA_ROOT": file})
	h.Prefixes = []string{file}

	got, err := scanner.Manager{}.Scan(context.Background(), domain.ScanInput{Host: h})
	require.Error(t, err)
	assert.Empty(t, got)
	assert.Empty(t, scanner.Manager{}.Roots(h))
}

func TestContainerDirs_WorkonHome(t *testing.T) {
	h := linuxHost("/home/dev", map[string]string{"WORKON_HOME": "/srv/envs"})
	dirs := scanner.ContainerDirs(h)
	assert.Equal(t, "/srv/envs", dirs[0])
	assert.NotContains(t, dirs, filepath.Join("/home/dev", ".virtualenvs"))
}

func TestNewSet_Order(t *testing.T) {
	ctrl := gomock.NewController(t)
	set := scanner.NewSet(mocks.NewMockRegistryReader(ctrl))

	assert.Equal(t, "path", set.PathEnv.Name())
	assert.Equal(t, "install-dir", set.InstallDir.Name())
	assert.Equal(t, "registry", set.Registry.Name())
	assert.Equal(t, "env-manager", set.Manager.Name())
	assert.Equal(t, "virtualenv", set.Virtualenv.Name())
}
