//go:build unit

package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type removePayload struct {
	path  string
	force bool
}

func (p removePayload) ForceRequested() bool { return p.force }

func removeKey(intent Intent) (string, bool) {
	payload, ok := intent.Payload.(removePayload)
	if !ok {
		return "", false
	}
	return payload.path, true
}

func TestKeyedGuard_AdmitsAndVetoesDuplicates(t *testing.T) {
	guard := NewKeyedGuard("remove-guard", 100, "workspace:remove", removeKey)
	intent := Intent{Type: "workspace:remove", Payload: removePayload{path: "/ws/a"}}

	_, ok, err := guard.Before(context.Background(), intent)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, guard.InFlight("/ws/a"))

	// Same key while in flight is vetoed.
	_, ok, err = guard.Before(context.Background(), intent)
	require.NoError(t, err)
	assert.False(t, ok)

	// A different key is unaffected.
	other := Intent{Type: "workspace:remove", Payload: removePayload{path: "/ws/b"}}
	_, ok, err = guard.Before(context.Background(), other)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestKeyedGuard_IgnoresOtherIntentTypes(t *testing.T) {
	guard := NewKeyedGuard("remove-guard", 100, "workspace:remove", removeKey)

	_, ok, err := guard.Before(context.Background(),
		Intent{Type: "workspace:create", Payload: removePayload{path: "/ws/a"}})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, guard.InFlight("/ws/a"))
}

func TestKeyedGuard_KeylessIntentPassesUntracked(t *testing.T) {
	guard := NewKeyedGuard("remove-guard", 100, "workspace:remove", removeKey)

	_, ok, err := guard.Before(context.Background(),
		Intent{Type: "workspace:remove", Payload: "not a remove payload"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestKeyedGuard_ForceAdmitsDuplicateAndTracksBoth(t *testing.T) {
	guard := NewKeyedGuard("remove-guard", 100, "workspace:remove", removeKey)

	_, ok, _ := guard.Before(context.Background(),
		Intent{Type: "workspace:remove", Payload: removePayload{path: "/ws/a"}})
	require.True(t, ok)

	_, ok, _ = guard.Before(context.Background(),
		Intent{Type: "workspace:remove", Payload: removePayload{path: "/ws/a", force: true}})
	require.True(t, ok)

	// Both registrations are tracked: one release leaves the key held.
	guard.Release("/ws/a")
	assert.True(t, guard.InFlight("/ws/a"))
	guard.Release("/ws/a")
	assert.False(t, guard.InFlight("/ws/a"))
}

func TestKeyedGuard_ReleaserFreesKeyOnCompletionEvent(t *testing.T) {
	guard := NewKeyedGuard("remove-guard", 100, "workspace:remove", removeKey)

	_, ok, _ := guard.Before(context.Background(),
		Intent{Type: "workspace:remove", Payload: removePayload{path: "/ws/a"}})
	require.True(t, ok)

	releaser := guard.Releaser(func(evt Event) (string, bool) {
		path, ok := evt.Payload.(string)
		return path, ok
	})

	require.NoError(t, releaser.Notify(context.Background(),
		Event{Type: "workspace:removed", Payload: "/ws/a"}))
	assert.False(t, guard.InFlight("/ws/a"))

	// An event without an extractable key releases nothing.
	require.NoError(t, releaser.Notify(context.Background(),
		Event{Type: "workspace:removed", Payload: 42}))
}

func TestKeyedGuard_FailureReleaserFreesKeyOnAbortedDispatch(t *testing.T) {
	guard := NewKeyedGuard("remove-guard", 100, "workspace:remove", removeKey)
	intent := Intent{Type: "workspace:remove", Payload: removePayload{path: "/ws/a"}}

	_, ok, _ := guard.Before(context.Background(), intent)
	require.True(t, ok)

	releaser := guard.FailureReleaser()

	// A failure of another intent type is ignored.
	require.NoError(t, releaser.Notify(context.Background(), Event{
		Type:    EventDispatchFailed,
		Payload: DispatchFailure{Intent: Intent{Type: "workspace:create"}},
	}))
	assert.True(t, guard.InFlight("/ws/a"))

	require.NoError(t, releaser.Notify(context.Background(), Event{
		Type:    EventDispatchFailed,
		Payload: DispatchFailure{Intent: intent, Err: errors.New("boom")},
	}))
	assert.False(t, guard.InFlight("/ws/a"))

	// The key is free again for a fresh dispatch.
	_, ok, _ = guard.Before(context.Background(), intent)
	assert.True(t, ok)
}

func TestSingletonGuard_AllowsOneDispatch(t *testing.T) {
	guard := NewSingletonGuard("start-guard", 100, "app:start")
	intent := Intent{Type: "app:start"}

	_, ok, err := guard.Before(context.Background(), intent)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, guard.Engaged())

	_, ok, err = guard.Before(context.Background(), intent)
	require.NoError(t, err)
	assert.False(t, ok)

	// Success keeps the flag engaged: the sequence runs once per process.
	_, ok, _ = guard.Before(context.Background(), intent)
	assert.False(t, ok)
}

type retryPayload struct {
	retry bool
}

func (p retryPayload) IsRetry() bool { return p.retry }

func TestSingletonGuard_RetryAdmittedWhileEngaged(t *testing.T) {
	guard := NewSingletonGuard("start-guard", 100, "app:start")

	_, ok, err := guard.Before(context.Background(), Intent{Type: "app:start"})
	require.NoError(t, err)
	require.True(t, ok)

	// A plain duplicate is vetoed, a retry goes through and stays engaged.
	_, ok, _ = guard.Before(context.Background(), Intent{Type: "app:start", Payload: retryPayload{}})
	assert.False(t, ok)

	_, ok, err = guard.Before(context.Background(), Intent{Type: "app:start", Payload: retryPayload{retry: true}})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, guard.Engaged())
}

func TestSingletonGuard_IgnoresOtherIntentTypes(t *testing.T) {
	guard := NewSingletonGuard("start-guard", 100, "app:start")

	_, ok, err := guard.Before(context.Background(), Intent{Type: "app:stop"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, guard.Engaged())
}

func TestSingletonGuard_FailureResetterAllowsRetry(t *testing.T) {
	guard := NewSingletonGuard("start-guard", 100, "app:start")
	intent := Intent{Type: "app:start"}

	_, ok, _ := guard.Before(context.Background(), intent)
	require.True(t, ok)

	resetter := guard.FailureResetter()

	// A failure of another intent type keeps the flag engaged.
	require.NoError(t, resetter.Notify(context.Background(), Event{
		Type:    EventDispatchFailed,
		Payload: DispatchFailure{Intent: Intent{Type: "workspace:remove"}},
	}))
	assert.True(t, guard.Engaged())

	require.NoError(t, resetter.Notify(context.Background(), Event{
		Type:    EventDispatchFailed,
		Payload: DispatchFailure{Intent: intent, Err: errors.New("bind failed")},
	}))
	assert.False(t, guard.Engaged())

	_, ok, _ = guard.Before(context.Background(), intent)
	assert.True(t, ok)
}

func TestSingletonGuard_ResetterClearsOnAnyMatchingEvent(t *testing.T) {
	guard := NewSingletonGuard("start-guard", 100, "app:start")

	_, ok, _ := guard.Before(context.Background(), Intent{Type: "app:start"})
	require.True(t, ok)

	require.NoError(t, guard.Resetter().Notify(context.Background(),
		Event{Type: "app:stopped"}))
	assert.False(t, guard.Engaged())
}

func TestKeyedGuard_EndToEndWithDispatcher(t *testing.T) {
	guard := NewKeyedGuard("remove-guard", 100, "workspace:remove", removeKey)
	block := make(chan struct{})

	registry, err := Wire(Module{
		Name:         "guards",
		Interceptors: []Interceptor{guard},
		Events: []EventRegistration{
			{Event: "workspace:removed", Subscriber: guard.Releaser(func(evt Event) (string, bool) {
				path, ok := evt.Payload.(string)
				return path, ok
			})},
			{Event: EventDispatchFailed, Subscriber: guard.FailureReleaser()},
		},
	}, Module{
		Name: "teardown",
		Hooks: []HookRegistration{{
			Intent: "workspace:remove",
			Point:  "teardown",
			Handler: HandlerFunc{HandlerName: "slow", Fn: func(ctx context.Context, _ *HookContext) (HandlerResult, error) {
				select {
				case <-block:
					return HandlerResult{}, nil
				case <-ctx.Done():
					return HandlerResult{}, ctx.Err()
				}
			}},
		}},
	})
	require.NoError(t, err)

	d := NewDispatcher(DispatcherParams{Registry: registry})
	require.NoError(t, d.Register(NewOperation("workspace:remove", []HookPoint{"teardown"},
		func(hc *HookContext) (any, Event, error) {
			payload := hc.Payload().(removePayload)
			return nil, Event{Type: "workspace:removed", Payload: payload.path}, nil
		})))

	intent := Intent{Type: "workspace:remove", Payload: removePayload{path: "/ws/a"}}

	first := d.Dispatch(context.Background(), intent)
	accepted, err := first.Accepted(context.Background())
	require.NoError(t, err)
	require.True(t, accepted)

	// A duplicate while the first is parked in teardown is rejected.
	second := d.Dispatch(context.Background(), intent)
	accepted, err = second.Accepted(context.Background())
	require.NoError(t, err)
	assert.False(t, accepted)

	close(block)
	_, err = first.Result(context.Background())
	require.NoError(t, err)

	// The completion event released the key: a fresh removal is admitted.
	assert.False(t, guard.InFlight("/ws/a"))
	third := d.Dispatch(context.Background(), intent)
	accepted, err = third.Accepted(context.Background())
	require.NoError(t, err)
	assert.True(t, accepted)
	_, err = third.Result(context.Background())
	require.NoError(t, err)
}
