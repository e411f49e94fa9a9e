package state

import "errors"

// Error definitions for state package.
var (
	// State file errors.
	ErrStateFileNotConfigured = errors.New("state file path is not configured")

	// Project errors.
	ErrProjectNotFound      = errors.New("project not found in state file")
	ErrProjectAlreadyExists = errors.New("project already exists in state file")

	// Workspace errors.
	ErrWorkspaceNotFound      = errors.New("workspace not found in state file")
	ErrWorkspaceAlreadyExists = errors.New("workspace already exists in state file")
)
