package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")

	// Configuration value errors.
	ErrDurationInvalid = errors.New("invalid duration value")

	// Configuration validation errors.
	ErrProjectsDirEmpty  = errors.New("projects_dir cannot be empty")
	ErrWorktreesDirEmpty = errors.New("worktrees_dir cannot be empty")
	ErrStateFileEmpty    = errors.New("state_file cannot be empty")
	ErrEditorPortInvalid = errors.New("editor_port must be a valid port number")

	// Configuration initialization errors.
	ErrConfigNotInitialized = errors.New("workdeck configuration not found. Run 'workdeck init' to initialize")
)
