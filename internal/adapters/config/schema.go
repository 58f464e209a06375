package config

// Seekfile represents the structure of the seek config.yaml file.
// Durations use Go syntax, for example "168h" or "5m".
type Seekfile struct {
	CacheDir        string `yaml:"cache_dir"`
	DiscoveryTTL    string `yaml:"discovery_ttl"`
	VersionTTL      string `yaml:"version_ttl"`
	Timeout         string `yaml:"timeout"`
	Tolerance       string `yaml:"tolerance"`
	WorkerCeiling   *int   `yaml:"worker_ceiling"`
	CancelGrace     string `yaml:"cancel_grace"`
	ProbeTimeout    string `yaml:"probe_timeout"`
	ToolModule      string `yaml:"tool_module"`
	Mode            string `yaml:"mode"`
	HygieneInterval string `yaml:"hygiene_interval"`
	WatchDebounce   string `yaml:"watch_debounce"`
}
