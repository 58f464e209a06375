package app

import (
	prom "github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Config    domain.Config
	Telemetry ports.Telemetry
	Registry  *prom.Registry
}
