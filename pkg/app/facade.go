package app

import (
	"context"
	"fmt"

	"github.com/lerenn/workdeck/pkg/dispatch"
	"github.com/lerenn/workdeck/pkg/intents"
)

// Start runs the application start sequence and blocks until it completes.
func (a *realApp) Start(ctx context.Context, retry bool) (intents.AppStartedEvent, error) {
	result, err := a.await(ctx, dispatch.Intent{
		Type:    intents.AppStart,
		Payload: intents.AppStartPayload{Retry: retry},
	})
	if err != nil {
		return intents.AppStartedEvent{}, err
	}
	return assertResult[intents.AppStartedEvent](result)
}

// Stop tears the application down. It returns once the dispatch is
// admitted; callers that need the clean-exit point await the handle.
func (a *realApp) Stop(ctx context.Context, force bool) (*dispatch.Handle, error) {
	return a.fireAndForget(ctx, dispatch.Intent{
		Type:    intents.AppStop,
		Payload: intents.AppStopPayload{Force: force},
	})
}

// OpenProject opens a tracked project and makes it active.
func (a *realApp) OpenProject(ctx context.Context, projectID string) (intents.ProjectOpenedEvent, error) {
	result, err := a.await(ctx, dispatch.Intent{
		Type:    intents.ProjectOpen,
		Payload: intents.ProjectOpenPayload{ProjectID: projectID},
	})
	if err != nil {
		return intents.ProjectOpenedEvent{}, err
	}
	return assertResult[intents.ProjectOpenedEvent](result)
}

// CloseProject closes the active views and agents of a project.
func (a *realApp) CloseProject(ctx context.Context, projectID string) error {
	_, err := a.await(ctx, dispatch.Intent{
		Type:    intents.ProjectClose,
		Payload: intents.ProjectClosePayload{ProjectID: projectID},
	})
	return err
}

// CloneProject clones a repository and registers it as a project.
func (a *realApp) CloneProject(
	ctx context.Context, repositoryURL string, force bool) (intents.ProjectClonedEvent, error) {
	result, err := a.await(ctx, dispatch.Intent{
		Type:    intents.ProjectClone,
		Payload: intents.ProjectClonePayload{RepositoryURL: repositoryURL, Force: force},
	})
	if err != nil {
		return intents.ProjectClonedEvent{}, err
	}
	return assertResult[intents.ProjectClonedEvent](result)
}

// CreateWorkspace provisions a new workspace on its own branch and
// worktree.
func (a *realApp) CreateWorkspace(
	ctx context.Context, params CreateWorkspaceParams) (intents.WorkspaceCreatedEvent, error) {
	result, err := a.await(ctx, dispatch.Intent{
		Type: intents.WorkspaceCreate,
		Payload: intents.WorkspaceCreatePayload{
			ProjectID:     params.ProjectID,
			WorkspaceName: params.WorkspaceName,
			BaseBranch:    params.BaseBranch,
		},
	})
	if err != nil {
		return intents.WorkspaceCreatedEvent{}, err
	}
	return assertResult[intents.WorkspaceCreatedEvent](result)
}

// OpenWorkspace opens a view on a workspace, starting its agent if needed.
func (a *realApp) OpenWorkspace(
	ctx context.Context, projectID, workspaceName string) (intents.WorkspaceOpenedEvent, error) {
	result, err := a.await(ctx, dispatch.Intent{
		Type: intents.WorkspaceOpen,
		Payload: intents.WorkspaceOpenPayload{
			ProjectID:     projectID,
			WorkspaceName: workspaceName,
		},
	})
	if err != nil {
		return intents.WorkspaceOpenedEvent{}, err
	}
	return assertResult[intents.WorkspaceOpenedEvent](result)
}

// SwitchWorkspace moves focus to another workspace of the project.
func (a *realApp) SwitchWorkspace(ctx context.Context, projectID, workspaceName string) error {
	_, err := a.await(ctx, dispatch.Intent{
		Type: intents.WorkspaceSwitch,
		Payload: intents.WorkspaceSwitchPayload{
			ProjectID:     projectID,
			WorkspaceName: workspaceName,
		},
	})
	return err
}

// RemoveWorkspace removes a workspace, its worktree and its agent. It
// returns once the dispatch is admitted; the outcome surfaces through the
// handle and the workspace:removed event.
func (a *realApp) RemoveWorkspace(
	ctx context.Context, projectID, workspaceName string, force bool) (*dispatch.Handle, error) {
	return a.fireAndForget(ctx, dispatch.Intent{
		Type: intents.WorkspaceRemove,
		Payload: intents.WorkspaceRemovePayload{
			ProjectID:     projectID,
			WorkspaceName: workspaceName,
			Force:         force,
		},
	})
}

// await dispatches an intent and blocks until its pipeline completes.
func (a *realApp) await(ctx context.Context, intent dispatch.Intent) (any, error) {
	handle := a.dispatcher.Dispatch(ctx, intent)
	return handle.Result(ctx)
}

// fireAndForget dispatches an intent and blocks only until the interceptor
// phase admits or rejects it. A rejection resolves the handle immediately,
// so its error can be read without waiting for the pipeline.
func (a *realApp) fireAndForget(ctx context.Context, intent dispatch.Intent) (*dispatch.Handle, error) {
	handle := a.dispatcher.Dispatch(ctx, intent)
	accepted, err := handle.Accepted(ctx)
	if err != nil {
		return nil, err
	}
	if !accepted {
		_, resultErr := handle.Result(ctx)
		return nil, resultErr
	}
	return handle, nil
}

func assertResult[T any](result any) (T, error) {
	typed, ok := result.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %T", ErrUnexpectedResult, result)
	}
	return typed, nil
}
