package ports

import (
	"context"

	"go.trai.ch/seek/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks

// Scanner enumerates candidate interpreters from a single provenance.
// Scan must depend only on its input so scanners can run concurrently.
type Scanner interface {
	// Name identifies the scanner in logs and telemetry.
	Name() string
	// Scan returns the candidates found. A missing source is not an error.
	Scan(ctx context.Context, in domain.ScanInput) ([]domain.InterpreterRecord, error)
}

// ManagerLocator resolves environment-manager installations on a host.
type ManagerLocator interface {
	// Roots returns the resolved manager roots, one per distinct directory.
	Roots(host domain.HostSnapshot) []domain.ManagerRoot
}

// ScannerSet is the fixed scanner line-up of a discovery. Results are merged
// in field order.
type ScannerSet struct {
	PathEnv    Scanner
	InstallDir Scanner
	Registry   Scanner
	Manager    Scanner
	// Virtualenv runs after the others with their union as input.
	Virtualenv Scanner
}
