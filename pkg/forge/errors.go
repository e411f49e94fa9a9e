package forge

import "errors"

// Forge-specific errors
var (
	ErrUnsupportedForge     = errors.New("unsupported forge")
	ErrRepositoryNotFound   = errors.New("repository not found")
	ErrInvalidRepositoryURL = errors.New("invalid repository URL format")
	ErrRateLimited          = errors.New("rate limited by forge API")
	ErrUnauthorized         = errors.New("unauthorized access to forge API")
)
