package app

import (
	"context"

	"github.com/lerenn/workdeck/pkg/dispatch"
	"github.com/lerenn/workdeck/pkg/intents"
)

// lifecycleModule chains the session-restore dispatches: a completed start
// reopens the last active project, and a reopened project reopens its
// focused workspace. The chained dispatches are fire-and-forget; their
// failures surface through logs and the dispatcher's failure event, not
// through the triggering operation.
func (a *realApp) lifecycleModule() dispatch.Module {
	return dispatch.Module{
		Name: "lifecycle",
		Events: []dispatch.EventRegistration{
			{
				Event: intents.EventAppStarted,
				Subscriber: dispatch.SubscriberFunc{
					SubscriberName: "restore-project",
					Fn:             a.restoreProject,
				},
			},
			{
				Event: intents.EventProjectOpened,
				Subscriber: dispatch.SubscriberFunc{
					SubscriberName: "restore-workspace",
					Fn:             a.restoreWorkspace,
				},
			},
		},
	}
}

func (a *realApp) restoreProject(ctx context.Context, evt dispatch.Event) error {
	payload, ok := evt.Payload.(intents.AppStartedEvent)
	if !ok || payload.ProjectID == "" {
		return nil
	}

	a.logger.Logf("restoring project %s", payload.ProjectID)
	a.dispatchDetached(ctx, dispatch.Intent{
		Type:    intents.ProjectOpen,
		Payload: intents.ProjectOpenPayload{ProjectID: payload.ProjectID},
	})
	return nil
}

func (a *realApp) restoreWorkspace(ctx context.Context, evt dispatch.Event) error {
	payload, ok := evt.Payload.(intents.ProjectOpenedEvent)
	if !ok || payload.ActiveWorkspace == "" {
		return nil
	}

	a.logger.Logf("restoring workspace %s", intents.WorkspaceID(payload.ProjectID, payload.ActiveWorkspace))
	a.dispatchDetached(ctx, dispatch.Intent{
		Type: intents.WorkspaceOpen,
		Payload: intents.WorkspaceOpenPayload{
			ProjectID:     payload.ProjectID,
			WorkspaceName: payload.ActiveWorkspace,
		},
	})
	return nil
}

// dispatchDetached starts a dispatch whose outcome is only logged. The
// handle is drained on a background context so the chained pipeline is not
// cancelled with the request that triggered it.
func (a *realApp) dispatchDetached(_ context.Context, intent dispatch.Intent) {
	handle := a.dispatcher.Dispatch(context.Background(), intent)
	go func() {
		if _, err := handle.Result(context.Background()); err != nil {
			a.logger.Logf("detached dispatch %s failed: %v", intent.Type, err)
		}
	}()
}
