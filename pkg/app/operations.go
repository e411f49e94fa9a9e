package app

import (
	"fmt"

	"github.com/lerenn/workdeck/pkg/dispatch"
	"github.com/lerenn/workdeck/pkg/intents"
	"github.com/lerenn/workdeck/pkg/state"
)

// operations declares the nine registered operations: their ordered hook
// points and how the final result and domain event are assembled from the
// accumulated hook outputs.
func operations() []dispatch.Operation {
	return []dispatch.Operation{
		dispatch.NewOperation(intents.AppStart,
			[]dispatch.HookPoint{intents.PointPrepare, intents.PointServices},
			assembleAppStart),
		dispatch.NewOperation(intents.AppStop,
			[]dispatch.HookPoint{intents.PointTeardown, intents.PointCleanup},
			assembleAppStop),
		dispatch.NewOperation(intents.ProjectOpen,
			[]dispatch.HookPoint{intents.PointValidate, intents.PointPrepare},
			assembleProjectOpen),
		dispatch.NewOperation(intents.ProjectClose,
			[]dispatch.HookPoint{intents.PointTeardown},
			assembleProjectClose),
		dispatch.NewOperation(intents.ProjectClone,
			[]dispatch.HookPoint{intents.PointValidate, intents.PointProvision, intents.PointPersist},
			assembleProjectClone),
		dispatch.NewOperation(intents.WorkspaceCreate,
			[]dispatch.HookPoint{
				intents.PointValidate, intents.PointPrepare, intents.PointProvision,
				intents.PointServices, intents.PointPersist,
			},
			assembleWorkspaceCreate),
		dispatch.NewOperation(intents.WorkspaceOpen,
			[]dispatch.HookPoint{intents.PointSetup, intents.PointFinalize},
			assembleWorkspaceOpen),
		dispatch.NewOperation(intents.WorkspaceSwitch,
			[]dispatch.HookPoint{intents.PointValidate, intents.PointFinalize},
			assembleWorkspaceSwitch),
		dispatch.NewOperationWithFailureEvent(intents.WorkspaceRemove,
			[]dispatch.HookPoint{intents.PointTeardown, intents.PointCleanup, intents.PointPersist},
			assembleWorkspaceRemove, failWorkspaceRemove),
	}
}

func assembleAppStart(hc *dispatch.HookContext) (any, dispatch.Event, error) {
	projectID, _ := hc.GetString(intents.FieldActiveProject)
	payload := intents.AppStartedEvent{ProjectID: projectID}
	return payload, dispatch.Event{Type: intents.EventAppStarted, Payload: payload}, nil
}

func assembleAppStop(hc *dispatch.HookContext) (any, dispatch.Event, error) {
	payload := intents.AppStoppedEvent{StepErrors: stepErrorStrings(hc)}
	return payload, dispatch.Event{Type: intents.EventAppStopped, Payload: payload}, nil
}

func assembleProjectOpen(hc *dispatch.HookContext) (any, dispatch.Event, error) {
	intentPayload, ok := hc.Payload().(intents.ProjectOpenPayload)
	if !ok {
		return nil, dispatch.Event{}, fmt.Errorf("%w: project:open", ErrUnexpectedPayload)
	}

	project, ok := projectField(hc)
	if !ok {
		return nil, dispatch.Event{}, fmt.Errorf("%w: %s", ErrFieldMissing, intents.FieldProject)
	}

	payload := intents.ProjectOpenedEvent{
		ProjectID:       intentPayload.ProjectID,
		Path:            project.Path,
		ActiveWorkspace: project.ActiveWorkspace,
	}
	return payload, dispatch.Event{Type: intents.EventProjectOpened, Payload: payload}, nil
}

func assembleProjectClose(hc *dispatch.HookContext) (any, dispatch.Event, error) {
	intentPayload, ok := hc.Payload().(intents.ProjectClosePayload)
	if !ok {
		return nil, dispatch.Event{}, fmt.Errorf("%w: project:close", ErrUnexpectedPayload)
	}

	payload := intents.ProjectClosedEvent{ProjectID: intentPayload.ProjectID}
	return payload, dispatch.Event{Type: intents.EventProjectClosed, Payload: payload}, nil
}

func assembleProjectClone(hc *dispatch.HookContext) (any, dispatch.Event, error) {
	intentPayload, ok := hc.Payload().(intents.ProjectClonePayload)
	if !ok {
		return nil, dispatch.Event{}, fmt.Errorf("%w: project:clone", ErrUnexpectedPayload)
	}

	projectID, ok := hc.GetString(intents.FieldProjectID)
	if !ok {
		return nil, dispatch.Event{}, fmt.Errorf("%w: %s", ErrFieldMissing, intents.FieldProjectID)
	}
	projectPath, ok := hc.GetString(intents.FieldProjectPath)
	if !ok {
		return nil, dispatch.Event{}, fmt.Errorf("%w: %s", ErrFieldMissing, intents.FieldProjectPath)
	}
	defaultBranch, _ := hc.GetString(intents.FieldDefaultBranch)

	payload := intents.ProjectClonedEvent{
		ProjectID:     projectID,
		Path:          projectPath,
		DefaultBranch: defaultBranch,
		RepositoryURL: intentPayload.RepositoryURL,
	}
	return payload, dispatch.Event{Type: intents.EventProjectCloned, Payload: payload}, nil
}

func assembleWorkspaceCreate(hc *dispatch.HookContext) (any, dispatch.Event, error) {
	intentPayload, ok := hc.Payload().(intents.WorkspaceCreatePayload)
	if !ok {
		return nil, dispatch.Event{}, fmt.Errorf("%w: workspace:create", ErrUnexpectedPayload)
	}

	workspacePath, ok := hc.GetString(intents.FieldWorkspacePath)
	if !ok {
		return nil, dispatch.Event{}, fmt.Errorf("%w: %s", ErrFieldMissing, intents.FieldWorkspacePath)
	}
	branch, ok := hc.GetString(intents.FieldBranch)
	if !ok {
		return nil, dispatch.Event{}, fmt.Errorf("%w: %s", ErrFieldMissing, intents.FieldBranch)
	}

	payload := intents.WorkspaceCreatedEvent{
		ProjectID:     intentPayload.ProjectID,
		WorkspaceName: intentPayload.WorkspaceName,
		WorkspacePath: workspacePath,
		Branch:        branch,
	}
	return payload, dispatch.Event{Type: intents.EventWorkspaceCreated, Payload: payload}, nil
}

func assembleWorkspaceOpen(hc *dispatch.HookContext) (any, dispatch.Event, error) {
	intentPayload, ok := hc.Payload().(intents.WorkspaceOpenPayload)
	if !ok {
		return nil, dispatch.Event{}, fmt.Errorf("%w: workspace:open", ErrUnexpectedPayload)
	}

	workspaceURL, ok := hc.GetString(intents.FieldWorkspaceURL)
	if !ok {
		return nil, dispatch.Event{}, fmt.Errorf("%w: %s", ErrFieldMissing, intents.FieldWorkspaceURL)
	}

	payload := intents.WorkspaceOpenedEvent{
		ProjectID:     intentPayload.ProjectID,
		WorkspaceName: intentPayload.WorkspaceName,
		URL:           workspaceURL,
	}
	return payload, dispatch.Event{Type: intents.EventWorkspaceOpened, Payload: payload}, nil
}

func assembleWorkspaceSwitch(hc *dispatch.HookContext) (any, dispatch.Event, error) {
	intentPayload, ok := hc.Payload().(intents.WorkspaceSwitchPayload)
	if !ok {
		return nil, dispatch.Event{}, fmt.Errorf("%w: workspace:switch", ErrUnexpectedPayload)
	}

	payload := intents.WorkspaceSwitchedEvent{
		ProjectID:     intentPayload.ProjectID,
		WorkspaceName: intentPayload.WorkspaceName,
	}
	return payload, dispatch.Event{Type: intents.EventWorkspaceSwitched, Payload: payload}, nil
}

func assembleWorkspaceRemove(hc *dispatch.HookContext) (any, dispatch.Event, error) {
	intentPayload, ok := hc.Payload().(intents.WorkspaceRemovePayload)
	if !ok {
		return nil, dispatch.Event{}, fmt.Errorf("%w: workspace:remove", ErrUnexpectedPayload)
	}

	payload := intents.WorkspaceRemovedEvent{
		ProjectID:     intentPayload.ProjectID,
		WorkspaceName: intentPayload.WorkspaceName,
		StepErrors:    stepErrorStrings(hc),
	}
	return payload, dispatch.Event{Type: intents.EventWorkspaceRemoved, Payload: payload}, nil
}

// failWorkspaceRemove announces an aborted removal. The pipeline is
// fire-and-forget, so this event is what callers observe instead of an
// error return.
func failWorkspaceRemove(intent dispatch.Intent, err error) dispatch.Event {
	intentPayload, ok := intent.Payload.(intents.WorkspaceRemovePayload)
	if !ok {
		return dispatch.Event{}
	}
	return dispatch.Event{
		Type: intents.EventWorkspaceRemoveFailed,
		Payload: intents.WorkspaceRemoveFailedEvent{
			ProjectID:     intentPayload.ProjectID,
			WorkspaceName: intentPayload.WorkspaceName,
			Err:           err.Error(),
		},
	}
}

// stepErrorStrings renders the tolerated step failures of a forced pipeline
// for the completion event.
func stepErrorStrings(hc *dispatch.HookContext) []string {
	steps := hc.StepErrors()
	if len(steps) == 0 {
		return nil
	}
	rendered := make([]string, 0, len(steps))
	for _, step := range steps {
		rendered = append(rendered, fmt.Sprintf("%s/%s: %v", step.HookPoint, step.Handler, step.Err))
	}
	return rendered
}

func projectField(hc *dispatch.HookContext) (*state.Project, bool) {
	value, ok := hc.Get(intents.FieldProject)
	if !ok {
		return nil, false
	}
	project, ok := value.(*state.Project)
	return project, ok
}
