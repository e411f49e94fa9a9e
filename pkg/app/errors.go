package app

import "errors"

var (
	// ErrUnexpectedPayload is returned when an intent carries a payload of
	// the wrong type for its registered operation.
	ErrUnexpectedPayload = errors.New("unexpected intent payload type")
	// ErrFieldMissing is returned when assembly requires a hook context
	// field that no handler contributed.
	ErrFieldMissing = errors.New("required hook context field missing")
	// ErrUnexpectedResult is returned when an operation's assembled result
	// has a type the facade does not recognize.
	ErrUnexpectedResult = errors.New("unexpected operation result type")
)
