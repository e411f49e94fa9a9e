package dispatch

import "context"

// HandlerResult is what a hook handler returns on success. Fields are merged
// into the hook context before the next handler runs. Wait, when non-nil, is
// an awaitable continuation: the engine blocks on it after merging and
// before moving on, honoring context cancellation. It is used to park a
// pipeline step on an external acknowledgement, such as a companion
// subsystem signalling readiness.
type HandlerResult struct {
	Fields map[string]any
	Wait   func(ctx context.Context) error
}

// Handler is a function registered against one (operation, hook point) pair.
// Returning an error aborts the pipeline; the remaining handlers at the same
// hook point and all later hook points do not run.
type Handler interface {
	// Name returns the handler name, used in logs and error attribution.
	Name() string
	// Execute runs the handler against the accumulated hook context.
	Execute(ctx context.Context, hc *HookContext) (HandlerResult, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc struct {
	HandlerName string
	Fn          func(ctx context.Context, hc *HookContext) (HandlerResult, error)
}

// Name returns the handler name.
func (h HandlerFunc) Name() string {
	return h.HandlerName
}

// Execute invokes the wrapped function.
func (h HandlerFunc) Execute(ctx context.Context, hc *HookContext) (HandlerResult, error) {
	return h.Fn(ctx, hc)
}

// Tolerated downgrades a handler error to a recorded step error when the
// intent requests force mode. Handlers for destructive operations wrap their
// fallible steps with it so that a failing step is logged and skipped instead
// of aborting the remaining teardown work. Without force the error is
// returned unchanged.
func Tolerated(hc *HookContext, point HookPoint, handler string, err error) error {
	if err == nil {
		return nil
	}
	if forceRequested(hc.Intent()) {
		hc.AddStepError(point, handler, err)
		return nil
	}
	return err
}

// Interceptor gates dispatch before any side effect occurs. Interceptors run
// in ascending Order, ties broken by wiring order. Before may veto the
// intent (second return false), substitute a modified intent for the
// remainder of the pipeline, or pass it through unchanged.
type Interceptor interface {
	// Name returns the interceptor name, used in logs.
	Name() string
	// Order returns the execution rank; lower runs first.
	Order() int
	// Before inspects the intent. Returning false vetoes the dispatch: no
	// hook runs and no event fires.
	Before(ctx context.Context, intent Intent) (Intent, bool, error)
}

// InterceptorFunc adapts a function to the Interceptor interface.
type InterceptorFunc struct {
	InterceptorName  string
	InterceptorOrder int
	Fn               func(ctx context.Context, intent Intent) (Intent, bool, error)
}

// Name returns the interceptor name.
func (i InterceptorFunc) Name() string {
	return i.InterceptorName
}

// Order returns the execution rank.
func (i InterceptorFunc) Order() int {
	return i.InterceptorOrder
}

// Before invokes the wrapped function.
func (i InterceptorFunc) Before(ctx context.Context, intent Intent) (Intent, bool, error) {
	return i.Fn(ctx, intent)
}
