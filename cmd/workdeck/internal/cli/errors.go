// Package cli provides common configuration and wiring helpers for the
// workdeck CLI.
package cli

import "errors"

// Error definitions for cli package.
var (
	// Configuration loading errors.
	ErrFailedToLoadConfig = errors.New("failed to load configuration")
)
