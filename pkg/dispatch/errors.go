package dispatch

import "errors"

// Error definitions for the dispatch package.
var (
	// Dispatch errors.
	ErrUnknownIntent = errors.New("no operation registered for intent type")
	ErrVetoed        = errors.New("intent vetoed by interceptor")

	// Hook context errors.
	ErrFieldCollision = errors.New("hook context field already set")

	// Wiring errors.
	ErrModuleNameEmpty     = errors.New("module name cannot be empty")
	ErrModuleNameDuplicate = errors.New("module name already wired")
	ErrNilInterceptor      = errors.New("interceptor cannot be nil")
	ErrNilHandler          = errors.New("handler cannot be nil")
	ErrNilSubscriber       = errors.New("subscriber cannot be nil")
	ErrHookKeyEmpty        = errors.New("hook registration needs an intent type and a hook point")
	ErrEventTypeEmpty      = errors.New("event registration needs an event type")

	// Operation registration errors.
	ErrOperationDuplicate = errors.New("operation already registered for intent type")
	ErrOperationTypeEmpty = errors.New("operation intent type cannot be empty")
)
