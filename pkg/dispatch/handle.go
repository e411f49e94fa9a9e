package dispatch

import "context"

// Handle is returned synchronously by Dispatch. It decouples "was this
// request admitted" from "did this request finish": Accepted resolves once
// the interceptor phase completes, Result resolves once all hook points and
// the event emission complete. Fire-and-forget callers await Accepted only
// and observe the outcome through the domain event.
type Handle struct {
	acceptedCh chan struct{}
	accepted   bool

	doneCh chan struct{}
	result any
	err    error
}

func newHandle() *Handle {
	return &Handle{
		acceptedCh: make(chan struct{}),
		doneCh:     make(chan struct{}),
	}
}

// Accepted blocks until the interceptor phase completes and reports whether
// the pipeline is proceeding. It returns the context error if ctx expires
// first.
func (h *Handle) Accepted(ctx context.Context) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case <-h.acceptedCh:
		return h.accepted, nil
	}
}

// Result blocks until the pipeline and its event emission complete and
// returns the assembled result. It returns the context error if ctx expires
// first.
func (h *Handle) Result(ctx context.Context) (any, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-h.doneCh:
		return h.result, h.err
	}
}

func (h *Handle) resolveAccepted(accepted bool) {
	h.accepted = accepted
	close(h.acceptedCh)
}

func (h *Handle) resolveResult(result any, err error) {
	h.result = result
	h.err = err
	close(h.doneCh)
}
