package dispatch

import "fmt"

// StepError records a tolerated step failure reported by a handler running
// in force mode. The pipeline continues and the final event carries the
// accumulated step errors for observers to surface.
type StepError struct {
	HookPoint HookPoint
	Handler   string
	Err       error
}

// HookContext accumulates the outputs of executed hooks within one dispatch.
// It is created fresh per dispatch and touched only by the dispatch
// goroutine; later hooks see all earlier hooks' fields. Setting the same
// field twice is an error so that independently-written modules cannot
// silently overwrite each other.
type HookContext struct {
	intent     Intent
	fields     map[string]any
	stepErrors []StepError
}

// NewHookContext creates a hook context seeded with the given intent.
func NewHookContext(intent Intent) *HookContext {
	return &HookContext{
		intent: intent,
		fields: make(map[string]any),
	}
}

// Intent returns the intent this dispatch is executing. Interceptors may
// have substituted the originally dispatched intent.
func (hc *HookContext) Intent() Intent {
	return hc.intent
}

// Payload returns the intent payload.
func (hc *HookContext) Payload() any {
	return hc.intent.Payload
}

// Set stores a named field. It fails with ErrFieldCollision if the field
// was already contributed by an earlier hook.
func (hc *HookContext) Set(name string, value any) error {
	if _, exists := hc.fields[name]; exists {
		return fmt.Errorf("%w: %s", ErrFieldCollision, name)
	}
	hc.fields[name] = value
	return nil
}

// Get returns a named field and whether it was set.
func (hc *HookContext) Get(name string) (any, bool) {
	value, ok := hc.fields[name]
	return value, ok
}

// GetString returns a named field as a string. It returns false if the
// field is absent or not a string.
func (hc *HookContext) GetString(name string) (string, bool) {
	value, ok := hc.fields[name]
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

// GetStringMap returns a named field as a map of strings. It returns false
// if the field is absent or has a different shape.
func (hc *HookContext) GetStringMap(name string) (map[string]string, bool) {
	value, ok := hc.fields[name]
	if !ok {
		return nil, false
	}
	m, ok := value.(map[string]string)
	return m, ok
}

// AddStepError records a tolerated step failure.
func (hc *HookContext) AddStepError(point HookPoint, handler string, err error) {
	hc.stepErrors = append(hc.stepErrors, StepError{
		HookPoint: point,
		Handler:   handler,
		Err:       err,
	})
}

// StepErrors returns the tolerated step failures recorded so far, in the
// order they occurred.
func (hc *HookContext) StepErrors() []StepError {
	return hc.stepErrors
}

// merge stores every field of a handler result, attributing collisions to
// the contributing handler.
func (hc *HookContext) merge(point HookPoint, handler string, fields map[string]any) error {
	for name, value := range fields {
		if err := hc.Set(name, value); err != nil {
			return fmt.Errorf("hook %s at %s: %w", handler, point, err)
		}
	}
	return nil
}
