package main

import "errors"

// Error definitions for the workdeck CLI.
var (
	ErrConfigExists = errors.New("configuration file already exists")
)
