package ports

import "go.trai.ch/seek/internal/core/domain"

// ConfigLoader defines the interface for loading engine configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration at path, falling back to defaults when the file is absent.
	// An empty path selects the default location.
	Load(path string) (domain.Config, error)
}
