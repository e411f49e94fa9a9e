package agentmod

import "errors"

var (
	// ErrUnexpectedPayload is returned when an intent carries a payload of
	// the wrong type for its registered operation.
	ErrUnexpectedPayload = errors.New("unexpected intent payload type")
	// ErrFieldMissing is returned when a required hook context field was not
	// contributed by an earlier handler.
	ErrFieldMissing = errors.New("required hook context field missing")
)
