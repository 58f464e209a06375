package domain

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// RootVars are the environment variables that locate interpreter sources.
// Their values are part of the discovery cache key.
var RootVars = []string{
	"PATH",
	"CONDA_ROOT",
	"CONDA_EXE",
	"MINICONDA_HOME",
	"MINIFORGE_HOME",
	"MAMBA_ROOT_PREFIX",
	"WORKON_HOME",
	"LOCALAPPDATA",
}

// SessionVars are the manager-scoped variables whose presence is compared by
// cache invalidation.
var SessionVars = []string{
	"CONDA_PREFIX",
	"CONDA_DEFAULT_ENV",
	"CONDA_EXE",
	"CONDA_SHLVL",
	"MAMBA_ROOT_PREFIX",
	"MAMBA_EXE",
	"VIRTUAL_ENV",
}

// DiscoveryInput builds the canonical string a discovery cache key is derived from.
func DiscoveryInput(h HostSnapshot, mode Mode) string {
	vars := slices.Clone(RootVars)
	slices.Sort(vars)

	var b strings.Builder
	b.WriteString("os=" + h.OS + ";")
	b.WriteString("arch=" + h.Arch + ";")
	b.WriteString("mode=" + string(mode) + ";")
	b.WriteString("home=" + h.Home + ";")
	b.WriteString("wd=" + h.WorkDir + ";")
	for _, k := range vars {
		b.WriteString(k + "=" + h.Getenv(k) + ";")
	}
	return b.String()
}

// DiscoveryKey returns the cache key for a discovery over the given host.
func DiscoveryKey(h HostSnapshot, mode Mode) string {
	return hashKey(DiscoveryInput(h, mode))
}

// VersionKey returns the cache key for the versions of an interpreter on the
// calendar day of now, so persisted entries self-expire daily.
func VersionKey(path string, now time.Time) string {
	return hashKey(path + "|" + now.Format(time.DateOnly))
}

// SessionPresence records which session variables are set in the snapshot.
func SessionPresence(h HostSnapshot) map[string]bool {
	out := make(map[string]bool, len(SessionVars))
	for _, k := range SessionVars {
		out[k] = h.Has(k)
	}
	return out
}

func hashKey(s string) string {
	return strconv.FormatUint(xxhash.Sum64String(s), 16)
}
