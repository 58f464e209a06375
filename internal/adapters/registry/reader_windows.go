//go:build windows

package registry

import (
	"errors"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sys/windows/registry"
)

func hive(scope domain.RegistryScope) registry.Key {
	if scope == domain.ScopeUser {
		return registry.CURRENT_USER
	}
	return registry.LOCAL_MACHINE
}

// SubKeys lists the names of the subkeys of path.
func (r *Reader) SubKeys(scope domain.RegistryScope, path string) ([]string, error) {
	k, err := registry.OpenKey(hive(scope), path, registry.ENUMERATE_SUB_KEYS|registry.QUERY_VALUE)
	if err != nil {
		return nil, wrap(err, scope, path)
	}
	defer func() { _ = k.Close() }()

	names, err := k.ReadSubKeyNames(-1)
	if err != nil {
		return nil, wrap(err, scope, path)
	}
	return names, nil
}

// StringValue reads a string value of path. An empty name reads the default value.
func (r *Reader) StringValue(scope domain.RegistryScope, path, name string) (string, error) {
	k, err := registry.OpenKey(hive(scope), path, registry.QUERY_VALUE)
	if err != nil {
		return "", wrap(err, scope, path)
	}
	defer func() { _ = k.Close() }()

	v, _, err := k.GetStringValue(name)
	if err != nil {
		return "", wrap(err, scope, path)
	}
	return v, nil
}

func wrap(err error, scope domain.RegistryScope, path string) error {
	if errors.Is(err, registry.ErrNotExist) {
		return zerr.With(zerr.Wrap(domain.ErrRegistryKeyNotFound, scope.String()), "key", path)
	}
	return zerr.With(zerr.Wrap(err, "failed to read registry"), "key", scope.String()+`\`+path)
}
