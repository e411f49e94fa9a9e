package dispatch

import (
	"context"
	"fmt"

	"github.com/lerenn/workdeck/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=dispatcher.go -destination=mocks/dispatcher.gen.go -package=mocks

// Dispatcher owns the map of intent type to operation and drives execution:
// interceptors, then the operation's hook points in order, then the domain
// event fan-out.
type Dispatcher interface {
	// Dispatch starts executing the intent on its own goroutine and returns
	// the handle immediately.
	Dispatch(ctx context.Context, intent Intent) *Handle
	// Register adds the operation for its intent type.
	Register(op Operation) error
	// Publish delivers an event to its subscribers in wiring order,
	// isolating each subscriber's failure from the others.
	Publish(ctx context.Context, evt Event)
}

// DispatcherParams contains parameters for creating a Dispatcher.
type DispatcherParams struct {
	Registry *Registry
	Logger   logger.Logger
}

type realDispatcher struct {
	registry   *Registry
	operations map[IntentType]Operation
	logger     logger.Logger
}

// NewDispatcher creates a Dispatcher over a wired registry.
func NewDispatcher(params DispatcherParams) Dispatcher {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &realDispatcher{
		registry:   params.Registry,
		operations: make(map[IntentType]Operation),
		logger:     log,
	}
}

// Register adds the operation for its intent type.
func (d *realDispatcher) Register(op Operation) error {
	if op.Type() == "" {
		return ErrOperationTypeEmpty
	}
	if _, exists := d.operations[op.Type()]; exists {
		return fmt.Errorf("%w: %s", ErrOperationDuplicate, op.Type())
	}
	d.operations[op.Type()] = op
	return nil
}

// Dispatch starts executing the intent on its own goroutine and returns the
// handle immediately. Within one dispatch everything runs sequentially;
// independent dispatches interleave freely.
func (d *realDispatcher) Dispatch(ctx context.Context, intent Intent) *Handle {
	handle := newHandle()
	go d.run(ctx, intent, handle)
	return handle
}

func (d *realDispatcher) run(ctx context.Context, intent Intent, handle *Handle) {
	op, ok := d.operations[intent.Type]
	if !ok {
		handle.resolveAccepted(false)
		handle.resolveResult(nil, fmt.Errorf("%w: %s", ErrUnknownIntent, intent.Type))
		return
	}

	current, ok, err := d.runInterceptors(ctx, intent)
	if err != nil {
		handle.resolveAccepted(false)
		handle.resolveResult(nil, err)
		return
	}
	if !ok {
		handle.resolveAccepted(false)
		handle.resolveResult(nil, fmt.Errorf("%w: %s", ErrVetoed, intent.Type))
		return
	}
	handle.resolveAccepted(true)

	hc := NewHookContext(current)
	if err := d.runHookPoints(ctx, op, hc); err != nil {
		d.publishFailure(ctx, op, current, err)
		handle.resolveResult(nil, err)
		return
	}

	result, evt, err := op.Assemble(hc)
	if err != nil {
		d.publishFailure(ctx, op, current, err)
		handle.resolveResult(nil, fmt.Errorf("assembling %s result: %w", current.Type, err))
		return
	}
	if evt.Type != "" {
		d.Publish(ctx, evt)
	}
	handle.resolveResult(result, nil)
}

// runInterceptors applies every interceptor in order. The first veto or
// error stops the chain; later interceptors never run.
func (d *realDispatcher) runInterceptors(ctx context.Context, intent Intent) (Intent, bool, error) {
	current := intent
	for _, interceptor := range d.registry.Interceptors() {
		next, ok, err := interceptor.Before(ctx, current)
		if err != nil {
			return current, false, fmt.Errorf("interceptor %s: %w", interceptor.Name(), err)
		}
		if !ok {
			d.logger.Logf("dispatch %s vetoed by %s", current.Type, interceptor.Name())
			return current, false, nil
		}
		current = next
	}
	return current, true, nil
}

// runHookPoints executes every hook point of the operation in declared
// order, and within each point every handler in wiring order. Handlers run
// strictly sequentially; a returned Wait continuation is awaited before the
// pipeline moves on.
func (d *realDispatcher) runHookPoints(ctx context.Context, op Operation, hc *HookContext) error {
	intentType := hc.Intent().Type
	for _, point := range op.HookPoints() {
		for _, handler := range d.registry.Handlers(intentType, point) {
			result, err := d.executeHandler(ctx, handler, hc)
			if err != nil {
				return fmt.Errorf("hook %s at %s/%s: %w", handler.Name(), intentType, point, err)
			}
			if err := hc.merge(point, handler.Name(), result.Fields); err != nil {
				return err
			}
			if result.Wait != nil {
				if err := result.Wait(ctx); err != nil {
					return fmt.Errorf("hook %s at %s/%s: awaiting continuation: %w",
						handler.Name(), intentType, point, err)
				}
			}
		}
	}
	return nil
}

// executeHandler runs one handler, converting a panic into an error so a
// misbehaving module cannot take down the process.
func (d *realDispatcher) executeHandler(
	ctx context.Context, handler Handler, hc *HookContext) (result HandlerResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in handler %s: %v", handler.Name(), r)
		}
	}()
	return handler.Execute(ctx, hc)
}

// Publish delivers the event to its subscribers in wiring order. A
// subscriber's error or panic is logged and must not prevent the remaining
// subscribers from running.
func (d *realDispatcher) Publish(ctx context.Context, evt Event) {
	for _, subscriber := range d.registry.Subscribers(evt.Type) {
		d.notify(ctx, subscriber, evt)
	}
}

func (d *realDispatcher) notify(ctx context.Context, subscriber Subscriber, evt Event) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Logf("subscriber %s panicked on %s: %v", subscriber.Name(), evt.Type, r)
		}
	}()
	if err := subscriber.Notify(ctx, evt); err != nil {
		d.logger.Logf("subscriber %s failed on %s: %v", subscriber.Name(), evt.Type, err)
	}
}

// publishFailure lets guard subscribers release in-flight entries for a
// pipeline that aborted before emitting its own completion event, then
// publishes the operation's domain failure event when it declares one.
func (d *realDispatcher) publishFailure(ctx context.Context, op Operation, intent Intent, err error) {
	d.logger.Logf("dispatch %s failed: %v", intent.Type, err)
	d.Publish(ctx, Event{
		Type:    EventDispatchFailed,
		Payload: DispatchFailure{Intent: intent, Err: err},
	})
	if fe, ok := op.(failureEventer); ok {
		if evt := fe.FailureEvent(intent, err); evt.Type != "" {
			d.Publish(ctx, evt)
		}
	}
}
