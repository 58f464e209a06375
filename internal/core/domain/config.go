package domain

import "time"

// Config holds the tunables of the discovery engine.
type Config struct {
	CacheDir        string
	DiscoveryTTL    time.Duration
	VersionTTL      time.Duration
	Timeout         time.Duration
	Tolerance       time.Duration
	WorkerCeiling   int
	CancelGrace     time.Duration
	ProbeTimeout    time.Duration
	ToolModule      string
	Mode            Mode
	HygieneInterval time.Duration
	WatchDebounce   time.Duration
}

// Default values for Config.
const (
	DefaultDiscoveryTTL    = 7 * 24 * time.Hour
	DefaultVersionTTL      = 24 * time.Hour
	DefaultTimeout         = 60 * time.Second
	DefaultTolerance       = 5 * time.Minute
	DefaultWorkerCeiling   = 3
	DefaultCancelGrace     = 2 * time.Second
	DefaultProbeTimeout    = 10 * time.Second
	DefaultToolModule      = "PyInstaller"
	DefaultHygieneInterval = time.Hour
	DefaultWatchDebounce   = 500 * time.Millisecond
)

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() Config {
	return Config{
		CacheDir:        DefaultCachePath(),
		DiscoveryTTL:    DefaultDiscoveryTTL,
		VersionTTL:      DefaultVersionTTL,
		Timeout:         DefaultTimeout,
		Tolerance:       DefaultTolerance,
		WorkerCeiling:   DefaultWorkerCeiling,
		CancelGrace:     DefaultCancelGrace,
		ProbeTimeout:    DefaultProbeTimeout,
		ToolModule:      DefaultToolModule,
		Mode:            ModeFull,
		HygieneInterval: DefaultHygieneInterval,
		WatchDebounce:   DefaultWatchDebounce,
	}
}
