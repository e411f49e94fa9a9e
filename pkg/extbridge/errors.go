package extbridge

import "errors"

// Error definitions for extbridge package.
var (
	ErrExtensionUnreachable = errors.New("workspace extension socket unreachable")
	ErrExtensionNotReady    = errors.New("workspace extension did not become ready")
	ErrAckMismatch          = errors.New("acknowledgement does not match request")
	ErrCommandRejected      = errors.New("extension rejected command")
)
