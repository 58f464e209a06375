package domain

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// HostSnapshot is an immutable view of the host environment taken at the
// start of a discovery. Scanners read nothing else.
type HostSnapshot struct {
	OS      string
	Arch    string
	Env     map[string]string
	Home    string
	WorkDir string
	// Prefixes are machine-wide install prefixes searched after per-user locations.
	Prefixes []string
}

// CaptureHost reads the current process environment into a HostSnapshot.
func CaptureHost() HostSnapshot {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = v
	}

	home, _ := os.UserHomeDir()
	wd, _ := os.Getwd()

	h := HostSnapshot{
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
		Env:     env,
		Home:    home,
		WorkDir: wd,
	}
	h.Prefixes = defaultPrefixes(h)
	return h
}

func defaultPrefixes(h HostSnapshot) []string {
	switch h.OS {
	case "windows":
		var out []string
		for _, name := range []string{"ProgramData", "ProgramFiles", "ProgramFiles(x86)"} {
			if v := h.Getenv(name); v != "" {
				out = append(out, v)
			}
		}
		if drive := h.Getenv("SystemDrive"); drive != "" {
			out = append(out, drive+`\`)
		}
		return out
	case "darwin":
		return []string{"/opt", "/usr/local", "/opt/homebrew"}
	default:
		return []string{"/opt", "/usr/local"}
	}
}

// Getenv returns the value of an environment variable in the snapshot.
// Lookups are case-insensitive on windows.
func (h HostSnapshot) Getenv(key string) string {
	if v, ok := h.Env[key]; ok {
		return v
	}
	if h.IsWindows() {
		for k, v := range h.Env {
			if strings.EqualFold(k, key) {
				return v
			}
		}
	}
	return ""
}

// Has reports whether an environment variable is set to a non-empty value.
func (h HostSnapshot) Has(key string) bool {
	return h.Getenv(key) != ""
}

// IsWindows reports whether the snapshot was taken on windows.
func (h HostSnapshot) IsWindows() bool {
	return h.OS == "windows"
}

// PathDirs splits PATH using the host's list separator, dropping empty entries.
func (h HostSnapshot) PathDirs() []string {
	sep := ":"
	if h.IsWindows() {
		sep = ";"
	}
	var dirs []string
	for _, d := range strings.Split(h.Getenv("PATH"), sep) {
		d = strings.Trim(strings.TrimSpace(d), `"`)
		if d == "" {
			continue
		}
		dirs = append(dirs, d)
	}
	return dirs
}

// HomePath joins elements onto the snapshot's home directory.
// It returns an empty string when the home directory is unknown.
func (h HostSnapshot) HomePath(elem ...string) string {
	if h.Home == "" {
		return ""
	}
	return filepath.Join(append([]string{h.Home}, elem...)...)
}
