package ports

import (
	"context"

	"go.trai.ch/seek/internal/core/domain"
)

// CommandRunner runs external processes with captured output.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes cmd and waits for it to finish or for its timeout to expire.
	// A non-zero exit is reported as an error alongside the captured output.
	Run(ctx context.Context, cmd domain.Command) (domain.CommandOutput, error)
}
