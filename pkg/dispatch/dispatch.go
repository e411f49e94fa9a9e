// Package dispatch provides the intent dispatch engine: a registry of hook
// points, interceptors and event subscribers contributed by feature modules,
// and a dispatcher that executes multi-step domain operations as ordered
// pipelines over those contributions.
package dispatch

import "context"

// IntentType identifies a registered operation.
type IntentType string

// EventType identifies a domain event category.
type EventType string

// HookPoint names an extension slot within an operation's pipeline.
type HookPoint string

// Intent is an immutable request to perform one domain operation.
// Type selects the registered Operation; Payload is operation-specific.
type Intent struct {
	Type    IntentType
	Payload any
}

// Event is a fact broadcast after a dispatch completes, for cross-module
// observation.
type Event struct {
	Type    EventType
	Payload any
}

// Forceable is implemented by payloads carrying a best-effort flag. When the
// flag is set, handlers tolerate and report step failures instead of
// aborting, and keyed guards admit duplicate in-flight keys.
type Forceable interface {
	ForceRequested() bool
}

// Retryable is implemented by payloads that mark a dispatch as a retry of a
// previously failed attempt.
type Retryable interface {
	IsRetry() bool
}

// Subscriber consumes published domain events.
type Subscriber interface {
	// Name returns the subscriber name, used in logs.
	Name() string
	// Notify is called once per matching event, in registration order.
	Notify(ctx context.Context, evt Event) error
}

// SubscriberFunc adapts a function to the Subscriber interface.
type SubscriberFunc struct {
	SubscriberName string
	Fn             func(ctx context.Context, evt Event) error
}

// Name returns the subscriber name.
func (s SubscriberFunc) Name() string {
	return s.SubscriberName
}

// Notify invokes the wrapped function.
func (s SubscriberFunc) Notify(ctx context.Context, evt Event) error {
	return s.Fn(ctx, evt)
}

// EventDispatchFailed is published by the dispatcher when a pipeline aborts
// on a hard failure. Guards subscribe to it to release in-flight entries for
// pipelines that never reached their own completion event.
const EventDispatchFailed EventType = "dispatch:failed"

// DispatchFailure is the payload of EventDispatchFailed.
type DispatchFailure struct {
	Intent Intent
	Err    error
}
