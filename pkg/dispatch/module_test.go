//go:build unit

package dispatch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopHandler(name string) Handler {
	return HandlerFunc{
		HandlerName: name,
		Fn: func(_ context.Context, _ *HookContext) (HandlerResult, error) {
			return HandlerResult{}, nil
		},
	}
}

func passInterceptor(name string, order int) Interceptor {
	return InterceptorFunc{
		InterceptorName:  name,
		InterceptorOrder: order,
		Fn: func(_ context.Context, intent Intent) (Intent, bool, error) {
			return intent, true, nil
		},
	}
}

func TestWire_RejectsEmptyModuleName(t *testing.T) {
	_, err := Wire(Module{})
	assert.ErrorIs(t, err, ErrModuleNameEmpty)
}

func TestWire_RejectsDuplicateModuleName(t *testing.T) {
	_, err := Wire(Module{Name: "persist"}, Module{Name: "persist"})
	assert.ErrorIs(t, err, ErrModuleNameDuplicate)
}

func TestWire_RejectsNilContributions(t *testing.T) {
	_, err := Wire(Module{Name: "m", Interceptors: []Interceptor{nil}})
	assert.ErrorIs(t, err, ErrNilInterceptor)

	_, err = Wire(Module{Name: "m", Hooks: []HookRegistration{{Intent: "a", Point: "b"}}})
	assert.ErrorIs(t, err, ErrNilHandler)

	_, err = Wire(Module{Name: "m", Events: []EventRegistration{{Event: "a"}}})
	assert.ErrorIs(t, err, ErrNilSubscriber)
}

func TestWire_RejectsIncompleteHookKey(t *testing.T) {
	_, err := Wire(Module{Name: "m", Hooks: []HookRegistration{
		{Intent: "", Point: "validate", Handler: noopHandler("h")},
	}})
	assert.ErrorIs(t, err, ErrHookKeyEmpty)

	_, err = Wire(Module{Name: "m", Events: []EventRegistration{
		{Event: "", Subscriber: SubscriberFunc{SubscriberName: "s", Fn: func(context.Context, Event) error { return nil }}},
	}})
	assert.ErrorIs(t, err, ErrEventTypeEmpty)
}

func TestWire_SortsInterceptorsByOrder(t *testing.T) {
	registry, err := Wire(
		Module{Name: "late", Interceptors: []Interceptor{passInterceptor("guard", 100)}},
		Module{Name: "early", Interceptors: []Interceptor{passInterceptor("normalize", 10)}},
		Module{Name: "middle", Interceptors: []Interceptor{passInterceptor("audit", 50)}},
	)
	require.NoError(t, err)

	var names []string
	for _, interceptor := range registry.Interceptors() {
		names = append(names, interceptor.Name())
	}
	assert.Equal(t, []string{"normalize", "audit", "guard"}, names)
}

func TestWire_OrderTiesKeepWiringOrder(t *testing.T) {
	registry, err := Wire(
		Module{Name: "first", Interceptors: []Interceptor{passInterceptor("a", 10)}},
		Module{Name: "second", Interceptors: []Interceptor{passInterceptor("b", 10)}},
	)
	require.NoError(t, err)

	interceptors := registry.Interceptors()
	require.Len(t, interceptors, 2)
	assert.Equal(t, "a", interceptors[0].Name())
	assert.Equal(t, "b", interceptors[1].Name())
}

func TestWire_HandlersKeepWiringOrderPerHookPoint(t *testing.T) {
	registry, err := Wire(
		Module{Name: "persist", Hooks: []HookRegistration{
			{Intent: "workspace:create", Point: "validate", Handler: noopHandler("load-project")},
		}},
		Module{Name: "worktree", Hooks: []HookRegistration{
			{Intent: "workspace:create", Point: "validate", Handler: noopHandler("plan-worktree")},
			{Intent: "workspace:create", Point: "provision", Handler: noopHandler("create-worktree")},
		}},
	)
	require.NoError(t, err)

	validate := registry.Handlers("workspace:create", "validate")
	require.Len(t, validate, 2)
	assert.Equal(t, "load-project", validate[0].Name())
	assert.Equal(t, "plan-worktree", validate[1].Name())

	assert.Len(t, registry.Handlers("workspace:create", "provision"), 1)
	assert.Empty(t, registry.Handlers("workspace:create", "services"))
	assert.Empty(t, registry.Handlers("workspace:remove", "validate"))
}

func TestWire_SubscribersKeepWiringOrder(t *testing.T) {
	subscriber := func(name string) Subscriber {
		return SubscriberFunc{SubscriberName: name, Fn: func(context.Context, Event) error { return nil }}
	}

	registry, err := Wire(
		Module{Name: "index", Events: []EventRegistration{
			{Event: "workspace:created", Subscriber: subscriber("index-track")},
		}},
		Module{Name: "views", Events: []EventRegistration{
			{Event: "workspace:created", Subscriber: subscriber("title-update")},
		}},
	)
	require.NoError(t, err)

	subscribers := registry.Subscribers("workspace:created")
	require.Len(t, subscribers, 2)
	assert.Equal(t, "index-track", subscribers[0].Name())
	assert.Equal(t, "title-update", subscribers[1].Name())
}
