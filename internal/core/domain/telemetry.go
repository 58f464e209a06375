package domain

import "strings"

// WorkerState represents the lifecycle state of a discovery worker.
type WorkerState string

const (
	// StateIdle indicates the worker has been created but not started.
	StateIdle WorkerState = "idle"
	// StateStarted indicates the worker has begun.
	StateStarted WorkerState = "started"
	// StateConsultingCache indicates the worker is checking the persisted result.
	StateConsultingCache WorkerState = "consulting-cache"
	// StateCacheHit indicates a cached result was reused.
	StateCacheHit WorkerState = "cache-hit"
	// StateScanning indicates source scanners are running.
	StateScanning WorkerState = "scanning"
	// StateValidating indicates candidates are being validated.
	StateValidating WorkerState = "validating"
	// StateDeduplicating indicates results are being deduplicated and sorted.
	StateDeduplicating WorkerState = "deduplicating"
	// StatePersisting indicates the result is being written to the cache.
	StatePersisting WorkerState = "persisting"
	// StateCompleted indicates the worker produced a result.
	StateCompleted WorkerState = "completed"
	// StateCancelled indicates the worker stopped on cancellation or timeout.
	StateCancelled WorkerState = "cancelled"
	// StateFailed indicates the worker hit an unrecoverable error.
	StateFailed WorkerState = "failed"
)

// IsTerminal checks if a state is terminal (Completed, Cancelled, Failed).
func (s WorkerState) IsTerminal() bool {
	switch s {
	case StateCompleted, StateCancelled, StateFailed:
		return true
	default:
		return false
	}
}

// NormalizeWorkerState converts a string to a WorkerState, defaulting to idle if unknown.
func NormalizeWorkerState(s string) WorkerState {
	switch st := WorkerState(strings.ToLower(s)); st {
	case StateIdle, StateStarted, StateConsultingCache, StateCacheHit, StateScanning,
		StateValidating, StateDeduplicating, StatePersisting, StateCompleted,
		StateCancelled, StateFailed:
		return st
	default:
		return StateIdle
	}
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
