package forgemod

import "errors"

var (
	// ErrUnexpectedPayload is returned when an intent carries a payload of
	// the wrong type for its registered operation.
	ErrUnexpectedPayload = errors.New("unexpected intent payload type")
	// ErrRepositoryURLEmpty is returned when a clone intent carries no URL.
	ErrRepositoryURLEmpty = errors.New("repository URL is empty")
	// ErrRepositoryURLInvalid is returned when the URL cannot be reduced to
	// a host/owner/name identity.
	ErrRepositoryURLInvalid = errors.New("repository URL is not recognized")
)
