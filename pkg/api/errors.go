package api

import "errors"

// Construction errors.
var (
	ErrAppMissing = errors.New("app facade is required but not set")
)
