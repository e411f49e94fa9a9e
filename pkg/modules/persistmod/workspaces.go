package persistmod

import (
	"context"
	"errors"
	"fmt"

	"github.com/lerenn/workdeck/pkg/dispatch"
	"github.com/lerenn/workdeck/pkg/intents"
	"github.com/lerenn/workdeck/pkg/state"
)

// workspaceUniqueness resolves the project record of a workspace:create
// intent and rejects names already taken within the project.
func (m *Module) workspaceUniqueness() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "workspace-uniqueness",
		Fn: func(_ context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
			payload, ok := hc.Payload().(intents.WorkspaceCreatePayload)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: workspace:create", ErrUnexpectedPayload)
			}

			project, err := m.state.GetProject(payload.ProjectID)
			if err != nil {
				return dispatch.HandlerResult{}, err
			}

			_, err = m.state.GetWorkspace(payload.ProjectID, payload.WorkspaceName)
			switch {
			case err == nil:
				return dispatch.HandlerResult{}, fmt.Errorf("%w: %s/%s",
					ErrWorkspaceExists, payload.ProjectID, payload.WorkspaceName)
			case !errors.Is(err, state.ErrWorkspaceNotFound):
				return dispatch.HandlerResult{}, err
			}

			return dispatch.HandlerResult{Fields: map[string]any{
				intents.FieldProject:     project,
				intents.FieldProjectPath: project.Path,
			}}, nil
		},
	}
}

// workspaceRecord adds the created workspace to the state file and focuses
// it. Provisioning and service startup already succeeded at this point.
func (m *Module) workspaceRecord() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "workspace-record",
		Fn: func(_ context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
			payload, ok := hc.Payload().(intents.WorkspaceCreatePayload)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: workspace:create", ErrUnexpectedPayload)
			}

			workspacePath, ok := hc.GetString(intents.FieldWorkspacePath)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: %s", ErrFieldMissing, intents.FieldWorkspacePath)
			}
			branch, ok := hc.GetString(intents.FieldBranch)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: %s", ErrFieldMissing, intents.FieldBranch)
			}

			err := m.state.AddWorkspace(payload.ProjectID, payload.WorkspaceName, state.AddWorkspaceParams{
				Path:   workspacePath,
				Branch: branch,
			})
			if err != nil {
				return dispatch.HandlerResult{}, fmt.Errorf("failed to record workspace: %w", err)
			}

			if port, ok := agentPort(hc); ok {
				if err := m.state.SetWorkspaceAgentPort(payload.ProjectID, payload.WorkspaceName, port); err != nil {
					return dispatch.HandlerResult{}, fmt.Errorf("failed to record agent port: %w", err)
				}
			}

			if err := m.state.SetActiveWorkspace(payload.ProjectID, payload.WorkspaceName); err != nil {
				return dispatch.HandlerResult{}, fmt.Errorf("failed to focus workspace: %w", err)
			}

			m.logger.Logf("recorded workspace %s", intents.WorkspaceID(payload.ProjectID, payload.WorkspaceName))
			return dispatch.HandlerResult{}, nil
		},
	}
}

// openLookup resolves the project and workspace records of a workspace:open
// intent.
func (m *Module) openLookup() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "open-lookup",
		Fn: func(_ context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
			payload, ok := hc.Payload().(intents.WorkspaceOpenPayload)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: workspace:open", ErrUnexpectedPayload)
			}

			project, err := m.state.GetProject(payload.ProjectID)
			if err != nil {
				return dispatch.HandlerResult{}, err
			}
			workspace, err := m.state.GetWorkspace(payload.ProjectID, payload.WorkspaceName)
			if err != nil {
				return dispatch.HandlerResult{}, err
			}

			return dispatch.HandlerResult{Fields: map[string]any{
				intents.FieldProject:       project,
				intents.FieldProjectPath:   project.Path,
				intents.FieldWorkspace:     workspace,
				intents.FieldWorkspacePath: workspace.Path,
			}}, nil
		},
	}
}

// openRecord focuses the opened workspace and records its agent port once
// the view is up and the extension has acknowledged readiness.
func (m *Module) openRecord() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "open-record",
		Fn: func(_ context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
			payload, ok := hc.Payload().(intents.WorkspaceOpenPayload)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: workspace:open", ErrUnexpectedPayload)
			}

			if port, ok := agentPort(hc); ok {
				if err := m.state.SetWorkspaceAgentPort(payload.ProjectID, payload.WorkspaceName, port); err != nil {
					return dispatch.HandlerResult{}, fmt.Errorf("failed to record agent port: %w", err)
				}
			}

			if err := m.state.SetActiveWorkspace(payload.ProjectID, payload.WorkspaceName); err != nil {
				return dispatch.HandlerResult{}, fmt.Errorf("failed to focus workspace: %w", err)
			}
			return dispatch.HandlerResult{}, nil
		},
	}
}

// switchLookup verifies the switch target exists.
func (m *Module) switchLookup() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "switch-lookup",
		Fn: func(_ context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
			payload, ok := hc.Payload().(intents.WorkspaceSwitchPayload)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: workspace:switch", ErrUnexpectedPayload)
			}

			workspace, err := m.state.GetWorkspace(payload.ProjectID, payload.WorkspaceName)
			if err != nil {
				return dispatch.HandlerResult{}, err
			}

			return dispatch.HandlerResult{Fields: map[string]any{
				intents.FieldWorkspace:     workspace,
				intents.FieldWorkspacePath: workspace.Path,
			}}, nil
		},
	}
}

// switchRecord focuses the switch target.
func (m *Module) switchRecord() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "switch-record",
		Fn: func(_ context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
			payload, ok := hc.Payload().(intents.WorkspaceSwitchPayload)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: workspace:switch", ErrUnexpectedPayload)
			}
			if err := m.state.SetActiveWorkspace(payload.ProjectID, payload.WorkspaceName); err != nil {
				return dispatch.HandlerResult{}, fmt.Errorf("failed to focus workspace: %w", err)
			}
			return dispatch.HandlerResult{}, nil
		},
	}
}

// removalLookup resolves the records of a workspace:remove intent so the
// later teardown and cleanup handlers know the paths involved. Under force,
// missing records are reported as step errors and the dependent handlers
// skip their work instead of the whole removal aborting.
func (m *Module) removalLookup() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "removal-lookup",
		Fn: func(_ context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
			payload, ok := hc.Payload().(intents.WorkspaceRemovePayload)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: workspace:remove", ErrUnexpectedPayload)
			}

			fields := make(map[string]any)

			project, err := m.state.GetProject(payload.ProjectID)
			if err != nil {
				return dispatch.HandlerResult{},
					dispatch.Tolerated(hc, intents.PointTeardown, "removal-lookup", err)
			}
			fields[intents.FieldProject] = project
			fields[intents.FieldProjectPath] = project.Path

			workspace, err := m.state.GetWorkspace(payload.ProjectID, payload.WorkspaceName)
			if err != nil {
				if tolerated := dispatch.Tolerated(hc, intents.PointTeardown, "removal-lookup", err); tolerated != nil {
					return dispatch.HandlerResult{}, tolerated
				}
				return dispatch.HandlerResult{Fields: fields}, nil
			}
			fields[intents.FieldWorkspace] = workspace
			fields[intents.FieldWorkspacePath] = workspace.Path

			return dispatch.HandlerResult{Fields: fields}, nil
		},
	}
}

// workspaceForget drops the workspace record. It runs last so a removal
// that aborted earlier keeps its record for a retry.
func (m *Module) workspaceForget() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "workspace-forget",
		Fn: func(_ context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
			payload, ok := hc.Payload().(intents.WorkspaceRemovePayload)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: workspace:remove", ErrUnexpectedPayload)
			}

			err := m.state.RemoveWorkspace(payload.ProjectID, payload.WorkspaceName)
			if err != nil && !errors.Is(err, state.ErrWorkspaceNotFound) {
				return dispatch.HandlerResult{},
					dispatch.Tolerated(hc, intents.PointPersist, "workspace-forget", err)
			}
			return dispatch.HandlerResult{}, nil
		},
	}
}

// agentPort reads the agent port contributed by the services hooks, absent
// when no agent was started.
func agentPort(hc *dispatch.HookContext) (int, bool) {
	value, ok := hc.Get(intents.FieldAgentPort)
	if !ok {
		return 0, false
	}
	port, ok := value.(int)
	return port, ok && port > 0
}
