package domain

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// SeekDirName is the name of the per-user cache and config directory.
	SeekDirName = "seek"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "config.yaml"

	// VersionsFileName holds the per-interpreter version records.
	VersionsFileName = "versions.json"

	// DiscoveryFileName holds the serialized discovery results.
	DiscoveryFileName = "discovery.bin"

	// StampFileName records the time of the last full scan.
	StampFileName = "last-scan.txt"

	// EnvsDirName is the name of an environment manager's environments folder.
	EnvsDirName = "envs"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the per-user cache directory for seek.
// It falls back to a relative .seek directory when the user cache dir is unknown.
func DefaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "." + SeekDirName
	}
	return filepath.Join(dir, SeekDirName)
}

// DefaultConfigPath returns the per-user config file path for seek.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join("."+SeekDirName, ConfigFileName)
	}
	return filepath.Join(dir, SeekDirName, ConfigFileName)
}

// versionedNames are the version-qualified interpreter names probed on PATH.
var versionedNames = []string{
	"python3.8", "python3.9", "python3.10", "python3.11", "python3.12", "python3.13",
}

// InterpreterNames returns the executable names tested in each PATH directory.
// Windows installs ship no version-qualified executables.
func InterpreterNames(goos string) []string {
	if goos == "windows" {
		return []string{"python.exe", "python3.exe"}
	}
	return append([]string{"python", "python3"}, versionedNames...)
}

// InterpreterPaths returns the candidate interpreter locations inside an
// environment root, in the order they should be tested.
func InterpreterPaths(root, goos string) []string {
	if goos == "windows" {
		return []string{
			filepath.Join(root, "python.exe"),
			filepath.Join(root, "Scripts", "python.exe"),
		}
	}
	return []string{
		filepath.Join(root, "bin", "python3"),
		filepath.Join(root, "bin", "python"),
	}
}

// InferEnvRoot derives an environment root from an interpreter path by
// dropping a trailing bin or Scripts directory.
func InferEnvRoot(path string) string {
	dir := filepath.Dir(path)
	switch strings.ToLower(filepath.Base(dir)) {
	case "bin", "scripts":
		return filepath.Dir(dir)
	default:
		return dir
	}
}
