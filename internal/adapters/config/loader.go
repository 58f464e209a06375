// Package config provides the configuration loader for seek.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that overrides the config location.
const EnvConfigPath = "SEEK_CONFIG"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{logger: log}
}

// Load reads the configuration from path. A missing file yields the defaults.
func (l *Loader) Load(path string) (domain.Config, error) {
	if path == "" {
		path = domain.DefaultConfigPath()
	}

	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Seekfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if err := apply(file, &cfg); err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}

	if cfg.Timeout == 0 && l.logger != nil {
		l.logger.Warn("discovery timeout disabled by " + path)
	}
	return cfg, nil
}

func apply(file Seekfile, cfg *domain.Config) error {
	if file.CacheDir != "" {
		cfg.CacheDir = expandHome(file.CacheDir)
	}
	if file.ToolModule != "" {
		cfg.ToolModule = file.ToolModule
	}
	if file.Mode != "" {
		mode, err := domain.ParseMode(file.Mode)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "invalid mode"), "mode", file.Mode)
		}
		cfg.Mode = mode
	}
	if file.WorkerCeiling != nil {
		if *file.WorkerCeiling < 1 {
			return invalid("worker_ceiling", *file.WorkerCeiling)
		}
		cfg.WorkerCeiling = *file.WorkerCeiling
	}

	durations := []struct {
		field    string
		raw      string
		dst      *time.Duration
		positive bool
	}{
		{"discovery_ttl", file.DiscoveryTTL, &cfg.DiscoveryTTL, true},
		{"version_ttl", file.VersionTTL, &cfg.VersionTTL, true},
		{"timeout", file.Timeout, &cfg.Timeout, false},
		{"tolerance", file.Tolerance, &cfg.Tolerance, false},
		{"cancel_grace", file.CancelGrace, &cfg.CancelGrace, false},
		{"probe_timeout", file.ProbeTimeout, &cfg.ProbeTimeout, true},
		{"hygiene_interval", file.HygieneInterval, &cfg.HygieneInterval, true},
		{"watch_debounce", file.WatchDebounce, &cfg.WatchDebounce, false},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		v, err := time.ParseDuration(d.raw)
		if err != nil {
			return zerr.With(zerr.Wrap(domain.ErrConfigInvalid, err.Error()), "field", d.field)
		}
		if v < 0 || (d.positive && v == 0) {
			return invalid(d.field, d.raw)
		}
		*d.dst = v
	}
	return nil
}

func invalid(field string, value any) error {
	return zerr.With(zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "value out of range"), "field", field), "value", value)
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
