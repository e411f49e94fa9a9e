package proc

import "errors"

// Error definitions for proc package.
var (
	ErrProcessAlreadyRunning = errors.New("process with this name is already running")
)
