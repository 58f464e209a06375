package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/seek/internal/core/domain"
)

func TestWorkerState_IsTerminal(t *testing.T) {
	tests := []struct {
		name       string
		state      domain.WorkerState
		isTerminal bool
	}{
		{"Idle", domain.StateIdle, false},
		{"Started", domain.StateStarted, false},
		{"ConsultingCache", domain.StateConsultingCache, false},
		{"CacheHit", domain.StateCacheHit, false},
		{"Scanning", domain.StateScanning, false},
		{"Persisting", domain.StatePersisting, false},
		{"Completed", domain.StateCompleted, true},
		{"Cancelled", domain.StateCancelled, true},
		{"Failed", domain.StateFailed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isTerminal, tt.state.IsTerminal())
		})
	}
}

func TestNormalizeWorkerState(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.WorkerState
	}{
		{"scanning", domain.StateScanning},
		{"SCANNING", domain.StateScanning},
		{"consulting-cache", domain.StateConsultingCache},
		{"completed", domain.StateCompleted},
		{"cancelled", domain.StateCancelled},
		{"unknown", domain.StateIdle},
		{"", domain.StateIdle},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.NormalizeWorkerState(tt.input))
		})
	}
}

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    domain.LogLevel
		expected string
	}{
		{domain.LogLevelDebug, "DEBUG"},
		{domain.LogLevelInfo, "INFO"},
		{domain.LogLevelWarn, "WARN"},
		{domain.LogLevelError, "ERROR"},
		{domain.LogLevel(999), "INFO"}, // Default case
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}
