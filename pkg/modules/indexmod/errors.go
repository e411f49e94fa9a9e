package indexmod

import "errors"

// ErrUnexpectedEventPayload is returned when an event carries a payload of
// the wrong type for its event type.
var ErrUnexpectedEventPayload = errors.New("unexpected event payload type")
