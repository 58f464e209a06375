package domain

import "go.trai.ch/zerr"

var (
	// ErrDiscoveryCancelled is returned when a discovery is cancelled before it completes.
	ErrDiscoveryCancelled = zerr.New("discovery cancelled")

	// ErrDiscoveryTimeout is returned when a discovery exceeds its wall-clock budget.
	ErrDiscoveryTimeout = zerr.New("discovery timed out")

	// ErrNoFilesystemAccess is returned when no scanner could read any filesystem source.
	ErrNoFilesystemAccess = zerr.New("no readable filesystem source")

	// ErrRegistryUnavailable is returned by registry readers on hosts without a package registry.
	ErrRegistryUnavailable = zerr.New("package registry unavailable on this host")

	// ErrSourceUnavailable is returned by scanners whose source does not exist on this host.
	// It never counts as a scanner failure.
	ErrSourceUnavailable = zerr.New("discovery source unavailable on this host")

	// ErrRegistryKeyNotFound is returned when a registry key or value does not exist.
	ErrRegistryKeyNotFound = zerr.New("registry key not found")

	// ErrCacheCreateFailed is returned when the cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheReadFailed is returned when a cache file cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cache file")

	// ErrCacheDecodeFailed is returned when a cache file cannot be decoded.
	ErrCacheDecodeFailed = zerr.New("failed to decode cache file")

	// ErrCacheEncodeFailed is returned when a cache record set cannot be encoded.
	ErrCacheEncodeFailed = zerr.New("failed to encode cache file")

	// ErrCacheWriteFailed is returned when a cache file cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cache file")

	// ErrCacheClearFailed is returned when the cache files cannot be removed.
	ErrCacheClearFailed = zerr.New("failed to clear cache")

	// ErrStampInvalid is returned when the last-scan stamp cannot be parsed.
	ErrStampInvalid = zerr.New("invalid last-scan stamp")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when a config value is out of range.
	ErrConfigInvalid = zerr.New("invalid configuration value")

	// ErrInvalidMode is returned when a discovery mode is not recognized.
	ErrInvalidMode = zerr.New("invalid discovery mode, expected 'full' or 'quick'")

	// ErrCommandFailed is returned when an external process exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrCommandTimeout is returned when an external process exceeds its timeout.
	ErrCommandTimeout = zerr.New("command timed out")

	// ErrUnexpectedResult is returned when a worker handle yields a value of the wrong type.
	ErrUnexpectedResult = zerr.New("unexpected worker result type")

	// ErrWatcherStartFailed is returned when the filesystem watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start filesystem watcher")

	// ErrHygieneStartFailed is returned when the cache hygiene scheduler cannot be started.
	ErrHygieneStartFailed = zerr.New("failed to start cache hygiene scheduler")
)
