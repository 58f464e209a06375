//go:build !windows

package registry

import "go.trai.ch/seek/internal/core/domain"

// SubKeys always fails on hosts without a registry.
func (r *Reader) SubKeys(_ domain.RegistryScope, _ string) ([]string, error) {
	return nil, domain.ErrRegistryUnavailable
}

// StringValue always fails on hosts without a registry.
func (r *Reader) StringValue(_ domain.RegistryScope, _, _ string) (string, error) {
	return "", domain.ErrRegistryUnavailable
}
