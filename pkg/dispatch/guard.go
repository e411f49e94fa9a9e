package dispatch

import (
	"context"
	"sync"
)

// KeyFunc extracts the idempotency key of an intent. Returning false means
// the intent carries no key and the guard lets it through untracked.
type KeyFunc func(intent Intent) (string, bool)

// EventKeyFunc extracts the idempotency key of a completion or error event.
// Returning false means the event does not release any key.
type EventKeyFunc func(evt Event) (string, bool)

// KeyedGuard is an interceptor allowing one in-flight dispatch per business
// key (a workspace path, a repository URL). A key is registered on
// acceptance and released only when a matching completion or error event is
// observed through one of the guard's Releaser subscribers. A payload
// requesting force mode bypasses the duplicate rejection but still registers
// the key, so a forced retry runs in parallel instead of being dropped.
type KeyedGuard struct {
	name       string
	order      int
	intentType IntentType
	key        KeyFunc

	mu       sync.Mutex
	inflight map[string]int
}

// NewKeyedGuard creates a keyed guard for one intent type.
func NewKeyedGuard(name string, order int, intentType IntentType, key KeyFunc) *KeyedGuard {
	return &KeyedGuard{
		name:       name,
		order:      order,
		intentType: intentType,
		key:        key,
		inflight:   make(map[string]int),
	}
}

// Name returns the guard name.
func (g *KeyedGuard) Name() string {
	return g.name
}

// Order returns the interceptor execution rank. Guards should carry the
// highest order of the chain so that no later interceptor can veto a
// dispatch whose key is already registered.
func (g *KeyedGuard) Order() int {
	return g.order
}

// Before registers the intent's key, vetoing duplicates unless the payload
// requests force mode.
func (g *KeyedGuard) Before(_ context.Context, intent Intent) (Intent, bool, error) {
	if intent.Type != g.intentType {
		return intent, true, nil
	}
	key, ok := g.key(intent)
	if !ok {
		return intent, true, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.inflight[key] > 0 && !forceRequested(intent) {
		return intent, false, nil
	}
	g.inflight[key]++
	return intent, true, nil
}

// Release removes one in-flight registration for the key.
func (g *KeyedGuard) Release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.inflight[key] <= 1 {
		delete(g.inflight, key)
		return
	}
	g.inflight[key]--
}

// InFlight reports whether the key is currently registered.
func (g *KeyedGuard) InFlight(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.inflight[key] > 0
}

// Releaser returns a subscriber that releases the key extracted from a
// completion or error event. Wire one releaser per event type that marks the
// end of a guarded pipeline; a guarded operation that can fail hard must
// also wire a releaser on EventDispatchFailed or the key stays blocked.
func (g *KeyedGuard) Releaser(key EventKeyFunc) Subscriber {
	return SubscriberFunc{
		SubscriberName: g.name + "-releaser",
		Fn: func(_ context.Context, evt Event) error {
			k, ok := key(evt)
			if !ok {
				return nil
			}
			g.Release(k)
			return nil
		},
	}
}

// FailureReleaser returns a subscriber for EventDispatchFailed that releases
// the key of an aborted pipeline of this guard's intent type.
func (g *KeyedGuard) FailureReleaser() Subscriber {
	return SubscriberFunc{
		SubscriberName: g.name + "-failure-releaser",
		Fn: func(_ context.Context, evt Event) error {
			failure, ok := evt.Payload.(DispatchFailure)
			if !ok || failure.Intent.Type != g.intentType {
				return nil
			}
			if k, ok := g.key(failure.Intent); ok {
				g.Release(k)
			}
			return nil
		},
	}
}

// SingletonGuard is an interceptor allowing one in-flight dispatch of an
// intent type application-wide. The flag is set on acceptance and cleared
// only by an explicit Reset, typically wired to an error event so a failed
// run can be retried; a successful run keeps the flag because that sequence
// executes at most once per process.
type SingletonGuard struct {
	name       string
	order      int
	intentType IntentType

	mu      sync.Mutex
	engaged bool
}

// NewSingletonGuard creates a singleton guard for one intent type.
func NewSingletonGuard(name string, order int, intentType IntentType) *SingletonGuard {
	return &SingletonGuard{
		name:       name,
		order:      order,
		intentType: intentType,
	}
}

// Name returns the guard name.
func (g *SingletonGuard) Name() string {
	return g.name
}

// Order returns the interceptor execution rank.
func (g *SingletonGuard) Order() int {
	return g.order
}

// Before vetoes the dispatch if one is already engaged for the intent type.
// A payload marked as a retry is admitted even when engaged, covering a
// failed run whose failure event never reached the guard.
func (g *SingletonGuard) Before(_ context.Context, intent Intent) (Intent, bool, error) {
	if intent.Type != g.intentType {
		return intent, true, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.engaged && !retryRequested(intent) {
		return intent, false, nil
	}
	g.engaged = true
	return intent, true, nil
}

// Reset clears the flag so the guarded intent can be dispatched again.
func (g *SingletonGuard) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.engaged = false
}

// Engaged reports whether a dispatch is currently registered.
func (g *SingletonGuard) Engaged() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.engaged
}

// Resetter returns a subscriber that clears the flag whenever the given
// event type fires, letting a failed run be retried.
func (g *SingletonGuard) Resetter() Subscriber {
	return SubscriberFunc{
		SubscriberName: g.name + "-resetter",
		Fn: func(_ context.Context, _ Event) error {
			g.Reset()
			return nil
		},
	}
}

// FailureResetter returns a subscriber for EventDispatchFailed that clears
// the flag when a pipeline of this guard's intent type aborts.
func (g *SingletonGuard) FailureResetter() Subscriber {
	return SubscriberFunc{
		SubscriberName: g.name + "-failure-resetter",
		Fn: func(_ context.Context, evt Event) error {
			failure, ok := evt.Payload.(DispatchFailure)
			if !ok || failure.Intent.Type != g.intentType {
				return nil
			}
			g.Reset()
			return nil
		},
	}
}

func forceRequested(intent Intent) bool {
	forceable, ok := intent.Payload.(Forceable)
	return ok && forceable.ForceRequested()
}

func retryRequested(intent Intent) bool {
	retryable, ok := intent.Payload.(Retryable)
	return ok && retryable.IsRetry()
}
