package domain

import (
	"path/filepath"
	"time"
)

// ManagerRoot is a resolved environment-manager installation.
type ManagerRoot struct {
	Family string
	Root   string
}

// EnvsDir returns the manager's environments folder.
func (m ManagerRoot) EnvsDir() string {
	return filepath.Join(m.Root, EnvsDirName)
}

// RegistryScope selects the registry hive a read targets.
type RegistryScope uint8

const (
	// ScopeMachine is the machine-wide registry hive.
	ScopeMachine RegistryScope = iota
	// ScopeUser is the per-user registry hive.
	ScopeUser
)

// String returns the hive name.
func (s RegistryScope) String() string {
	if s == ScopeUser {
		return "HKCU"
	}
	return "HKLM"
}

// Command describes an external process invocation.
type Command struct {
	Path    string
	Args    []string
	Timeout time.Duration
}

// CommandOutput is the captured output of a finished process.
type CommandOutput struct {
	Stdout   string
	Stderr   string
	ExitCode int
}
