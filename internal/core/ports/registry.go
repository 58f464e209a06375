package ports

import "go.trai.ch/seek/internal/core/domain"

// RegistryReader provides read-only access to the host package registry.
//
//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type RegistryReader interface {
	// SubKeys lists the names of the immediate subkeys of path.
	SubKeys(scope domain.RegistryScope, path string) ([]string, error)
	// StringValue reads a string value. An empty name reads the default value.
	StringValue(scope domain.RegistryScope, path, name string) (string, error)
}
