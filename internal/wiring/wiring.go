// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/seek/internal/adapters/cache"
	_ "go.trai.ch/seek/internal/adapters/config"
	_ "go.trai.ch/seek/internal/adapters/hygiene"
	_ "go.trai.ch/seek/internal/adapters/logger"
	_ "go.trai.ch/seek/internal/adapters/metrics"
	_ "go.trai.ch/seek/internal/adapters/registry"
	_ "go.trai.ch/seek/internal/adapters/scanner"
	_ "go.trai.ch/seek/internal/adapters/shell"
	_ "go.trai.ch/seek/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/seek/internal/adapters/validator"
	_ "go.trai.ch/seek/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/seek/internal/app"
	_ "go.trai.ch/seek/internal/engine/discovery"
	_ "go.trai.ch/seek/internal/engine/probe"
	_ "go.trai.ch/seek/internal/engine/supervisor"
)
