package bridgemod

import "errors"

// ErrUnexpectedPayload is returned when an intent carries a payload of the
// wrong type for its registered operation.
var ErrUnexpectedPayload = errors.New("unexpected intent payload type")
