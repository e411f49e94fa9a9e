package persistmod

import "errors"

var (
	// ErrUnexpectedPayload is returned when an intent carries a payload of
	// the wrong type for its registered operation.
	ErrUnexpectedPayload = errors.New("unexpected intent payload type")
	// ErrFieldMissing is returned when a required hook context field was not
	// contributed by an earlier handler.
	ErrFieldMissing = errors.New("required hook context field missing")
	// ErrWorkspaceExists is returned when creating a workspace whose name is
	// already taken within the project.
	ErrWorkspaceExists = errors.New("workspace already exists")
)
