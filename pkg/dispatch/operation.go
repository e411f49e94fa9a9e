package dispatch

// AssembleFunc reduces the accumulated hook context into the dispatch result
// and the domain event to publish. Returning a zero-valued event suppresses
// publication.
type AssembleFunc func(hc *HookContext) (any, Event, error)

// FailureEventFunc translates an aborted pipeline into the domain event
// announcing the failure. Returning a zero-valued event suppresses
// publication.
type FailureEventFunc func(intent Intent, err error) Event

// Operation declares, for one intent type, the ordered hook points the
// dispatcher will execute and how to assemble the final result and event
// payload from the accumulated hook outputs. One operation is registered
// per intent type; operations never call each other directly.
type Operation interface {
	// Type returns the intent type this operation executes.
	Type() IntentType
	// HookPoints returns the ordered extension slots of the pipeline.
	HookPoints() []HookPoint
	// Assemble builds the final result and domain event from the context.
	Assemble(hc *HookContext) (any, Event, error)
}

// failureEventer is implemented by operations that announce an aborted
// pipeline through a domain event, published after EventDispatchFailed.
type failureEventer interface {
	FailureEvent(intent Intent, err error) Event
}

type operation struct {
	intentType   IntentType
	hookPoints   []HookPoint
	assemble     AssembleFunc
	failureEvent FailureEventFunc
}

// NewOperation creates an operation from its intent type, ordered hook
// points and assembly function.
func NewOperation(intentType IntentType, hookPoints []HookPoint, assemble AssembleFunc) Operation {
	return &operation{
		intentType: intentType,
		hookPoints: hookPoints,
		assemble:   assemble,
	}
}

// NewOperationWithFailureEvent creates an operation that additionally
// publishes a domain event when its pipeline aborts, so observers of the
// domain stream see the failure without subscribing to the engine-internal
// failure channel.
func NewOperationWithFailureEvent(
	intentType IntentType, hookPoints []HookPoint,
	assemble AssembleFunc, failureEvent FailureEventFunc,
) Operation {
	return &operation{
		intentType:   intentType,
		hookPoints:   hookPoints,
		assemble:     assemble,
		failureEvent: failureEvent,
	}
}

// Type returns the intent type this operation executes.
func (o *operation) Type() IntentType {
	return o.intentType
}

// HookPoints returns the ordered extension slots of the pipeline.
func (o *operation) HookPoints() []HookPoint {
	return o.hookPoints
}

// Assemble builds the final result and domain event from the context.
func (o *operation) Assemble(hc *HookContext) (any, Event, error) {
	if o.assemble == nil {
		return nil, Event{}, nil
	}
	return o.assemble(hc)
}

// FailureEvent builds the domain event announcing an aborted pipeline.
func (o *operation) FailureEvent(intent Intent, err error) Event {
	if o.failureEvent == nil {
		return Event{}
	}
	return o.failureEvent(intent, err)
}
