package ports

import (
	"time"

	"go.trai.ch/seek/internal/core/domain"
)

// Metrics records engine measurements.
//
//go:generate go run go.uber.org/mock/mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// ObserveDiscovery records the terminal state and duration of one discovery.
	ObserveDiscovery(state domain.WorkerState, fromCache bool, d time.Duration)
	// IncInvalidation counts a cache invalidation by reason.
	IncInvalidation(reason string)
	// SetActiveWorkers records the number of live worker handles.
	SetActiveWorkers(n int)
	// ObserveProbe records the duration of one version probe.
	ObserveProbe(known bool, d time.Duration)
}
