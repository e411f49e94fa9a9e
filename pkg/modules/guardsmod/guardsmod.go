// Package guardsmod contributes the idempotency guards of the application:
// one in-flight removal per workspace, one in-flight clone per repository,
// and a once-per-process application start. Guards carry the highest
// interceptor order so no later interceptor can veto a dispatch whose key
// is already registered.
package guardsmod

import (
	"github.com/lerenn/workdeck/pkg/dispatch"
	"github.com/lerenn/workdeck/pkg/intents"
)

const moduleName = "guards"

// GuardOrder ranks the guards behind every other interceptor.
const GuardOrder = 1000

// Module bundles the guard interceptors and the event subscribers that
// release them.
type Module struct {
	removeGuard *dispatch.KeyedGuard
	cloneGuard  *dispatch.KeyedGuard
	startGuard  *dispatch.SingletonGuard
}

// New creates the guards module.
func New() *Module {
	return &Module{
		removeGuard: dispatch.NewKeyedGuard(
			"workspace-remove-guard", GuardOrder, intents.WorkspaceRemove, removeKey),
		cloneGuard: dispatch.NewKeyedGuard(
			"project-clone-guard", GuardOrder, intents.ProjectClone, cloneKey),
		startGuard: dispatch.NewSingletonGuard(
			"app-start-guard", GuardOrder, intents.AppStart),
	}
}

// Module returns the dispatch contributions. Each guarded pipeline releases
// its key on its completion event, and every guard also watches the
// dispatcher's failure event so an aborted pipeline never blocks its key
// permanently. The start guard stays engaged after a successful start; only
// a failed start re-arms it.
func (m *Module) Module() dispatch.Module {
	return dispatch.Module{
		Name: moduleName,
		Interceptors: []dispatch.Interceptor{
			m.removeGuard,
			m.cloneGuard,
			m.startGuard,
		},
		Events: []dispatch.EventRegistration{
			{Event: intents.EventWorkspaceRemoved, Subscriber: m.removeGuard.Releaser(removedEventKey)},
			{Event: intents.EventProjectCloned, Subscriber: m.cloneGuard.Releaser(clonedEventKey)},
			{Event: dispatch.EventDispatchFailed, Subscriber: m.removeGuard.FailureReleaser()},
			{Event: dispatch.EventDispatchFailed, Subscriber: m.cloneGuard.FailureReleaser()},
			{Event: dispatch.EventDispatchFailed, Subscriber: m.startGuard.FailureResetter()},
		},
	}
}

// removeKey keys concurrent removals by workspace identity.
func removeKey(intent dispatch.Intent) (string, bool) {
	payload, ok := intent.Payload.(intents.WorkspaceRemovePayload)
	if !ok {
		return "", false
	}
	return intents.WorkspaceID(payload.ProjectID, payload.WorkspaceName), true
}

// cloneKey keys concurrent clones by the requested repository URL.
func cloneKey(intent dispatch.Intent) (string, bool) {
	payload, ok := intent.Payload.(intents.ProjectClonePayload)
	if !ok || payload.RepositoryURL == "" {
		return "", false
	}
	return payload.RepositoryURL, true
}

func removedEventKey(evt dispatch.Event) (string, bool) {
	payload, ok := evt.Payload.(intents.WorkspaceRemovedEvent)
	if !ok {
		return "", false
	}
	return intents.WorkspaceID(payload.ProjectID, payload.WorkspaceName), true
}

func clonedEventKey(evt dispatch.Event) (string, bool) {
	payload, ok := evt.Payload.(intents.ProjectClonedEvent)
	if !ok || payload.RepositoryURL == "" {
		return "", false
	}
	return payload.RepositoryURL, true
}
