package dispatch

import (
	"fmt"
	"sort"
)

// HookRegistration binds a handler to one (intent type, hook point) pair.
type HookRegistration struct {
	Intent  IntentType
	Point   HookPoint
	Handler Handler
}

// EventRegistration binds a subscriber to one event type.
type EventRegistration struct {
	Event      EventType
	Subscriber Subscriber
}

// Module is the contribution bundle of one feature area: interceptors, hook
// handlers and event subscribers. Modules are composed into a registry by a
// single Wire call at startup.
type Module struct {
	Name         string
	Interceptors []Interceptor
	Hooks        []HookRegistration
	Events       []EventRegistration
}

type hookKey struct {
	intent IntentType
	point  HookPoint
}

// Registry aggregates the contributions of all wired modules into one
// addressable structure. It is populated once by Wire and treated as
// read-only by the dispatcher afterwards.
type Registry struct {
	interceptors []Interceptor
	handlers     map[hookKey][]Handler
	subscribers  map[EventType][]Subscriber
}

// Wire composes modules in the given order. Composition order is a contract
// the call site must respect: it breaks interceptor Order ties, and it fixes
// the execution order of handlers sharing a hook point and of subscribers
// sharing an event type. A module whose subscribers feed state read by a
// later module's subscribers must be wired first.
func Wire(modules ...Module) (*Registry, error) {
	r := &Registry{
		handlers:    make(map[hookKey][]Handler),
		subscribers: make(map[EventType][]Subscriber),
	}

	seen := make(map[string]bool)
	for _, module := range modules {
		if module.Name == "" {
			return nil, ErrModuleNameEmpty
		}
		if seen[module.Name] {
			return nil, fmt.Errorf("%w: %s", ErrModuleNameDuplicate, module.Name)
		}
		seen[module.Name] = true

		if err := r.addModule(module); err != nil {
			return nil, fmt.Errorf("wiring module %s: %w", module.Name, err)
		}
	}

	// Stable sort keeps wiring order for interceptors sharing an Order.
	sort.SliceStable(r.interceptors, func(i, j int) bool {
		return r.interceptors[i].Order() < r.interceptors[j].Order()
	})

	return r, nil
}

func (r *Registry) addModule(module Module) error {
	for _, interceptor := range module.Interceptors {
		if interceptor == nil {
			return ErrNilInterceptor
		}
		r.interceptors = append(r.interceptors, interceptor)
	}

	for _, reg := range module.Hooks {
		if reg.Handler == nil {
			return ErrNilHandler
		}
		if reg.Intent == "" || reg.Point == "" {
			return fmt.Errorf("%w: handler %s", ErrHookKeyEmpty, reg.Handler.Name())
		}
		key := hookKey{intent: reg.Intent, point: reg.Point}
		r.handlers[key] = append(r.handlers[key], reg.Handler)
	}

	for _, reg := range module.Events {
		if reg.Subscriber == nil {
			return ErrNilSubscriber
		}
		if reg.Event == "" {
			return fmt.Errorf("%w: subscriber %s", ErrEventTypeEmpty, reg.Subscriber.Name())
		}
		r.subscribers[reg.Event] = append(r.subscribers[reg.Event], reg.Subscriber)
	}

	return nil
}

// Handlers returns the handlers registered for one (intent type, hook point)
// pair, in wiring order.
func (r *Registry) Handlers(intent IntentType, point HookPoint) []Handler {
	return r.handlers[hookKey{intent: intent, point: point}]
}

// Subscribers returns the subscribers registered for one event type, in
// wiring order.
func (r *Registry) Subscribers(event EventType) []Subscriber {
	return r.subscribers[event]
}

// Interceptors returns all wired interceptors in execution order.
func (r *Registry) Interceptors() []Interceptor {
	return r.interceptors
}
