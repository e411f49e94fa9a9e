// Package forge provides repository metadata lookups against git hosting
// services, used when cloning a project from a remote URL.
package forge

import (
	"fmt"

	"github.com/lerenn/workdeck/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=forge.go -destination=mocks/forge.gen.go -package=mocks

// RepositoryInfo describes a remote repository.
type RepositoryInfo struct {
	Owner         string
	Name          string
	DefaultBranch string
	Private       bool
}

// Forge interface defines the methods that all forge implementations must provide.
type Forge interface {
	// Name returns the name of the forge
	Name() string

	// SupportsURL reports whether the forge can serve the repository URL
	SupportsURL(repoURL string) bool

	// GetRepositoryInfo fetches repository metadata from the forge
	GetRepositoryInfo(repoURL string) (*RepositoryInfo, error)
}

// ManagerInterface defines the interface for forge management.
type ManagerInterface interface {
	// GetForge returns the forge implementation for the given name
	GetForge(name string) (Forge, error)
	// GetForgeForURL returns the appropriate forge for the given repository URL
	GetForgeForURL(repoURL string) (Forge, error)
}

// Manager manages forge implementations and provides a unified interface.
type Manager struct {
	forges map[string]Forge
	logger logger.Logger
}

// NewManager creates a new forge manager with registered forge implementations.
func NewManager(logger logger.Logger) *Manager {
	m := &Manager{
		forges: make(map[string]Forge),
		logger: logger,
	}

	// Register forge implementations
	github := NewGitHub()
	m.forges[github.Name()] = github

	return m
}

// GetForge returns the forge implementation for the given name.
func (m *Manager) GetForge(name string) (Forge, error) {
	forge, exists := m.forges[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedForge, name)
	}
	return forge, nil
}

// GetForgeForURL returns the appropriate forge for the given repository URL.
func (m *Manager) GetForgeForURL(repoURL string) (Forge, error) {
	for _, forge := range m.forges {
		if forge.SupportsURL(repoURL) {
			return forge, nil
		}
	}
	return nil, fmt.Errorf("%w: no supported forge found for %s", ErrUnsupportedForge, repoURL)
}
