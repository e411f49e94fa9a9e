package persistmod

import (
	"context"
	"fmt"

	"github.com/lerenn/workdeck/pkg/dispatch"
	"github.com/lerenn/workdeck/pkg/intents"
	"github.com/lerenn/workdeck/pkg/state"
)

// activeProjectLookup loads the project to restore on application start.
// An empty identifier means no project was active when the app last ran.
func (m *Module) activeProjectLookup() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "active-project-lookup",
		Fn: func(_ context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
			projectID, err := m.state.GetActiveProject()
			if err != nil {
				return dispatch.HandlerResult{}, fmt.Errorf("failed to load active project: %w", err)
			}
			return dispatch.HandlerResult{Fields: map[string]any{
				intents.FieldActiveProject: projectID,
			}}, nil
		},
	}
}

// projectLookup resolves the project record of a project:open intent.
func (m *Module) projectLookup() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "project-lookup",
		Fn: func(_ context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
			payload, ok := hc.Payload().(intents.ProjectOpenPayload)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: project:open", ErrUnexpectedPayload)
			}

			project, err := m.state.GetProject(payload.ProjectID)
			if err != nil {
				return dispatch.HandlerResult{}, err
			}

			return dispatch.HandlerResult{Fields: map[string]any{
				intents.FieldProject:     project,
				intents.FieldProjectPath: project.Path,
			}}, nil
		},
	}
}

// activeProjectRecord marks the opened project as the one to restore on the
// next application start.
func (m *Module) activeProjectRecord() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "active-project-record",
		Fn: func(_ context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
			payload, ok := hc.Payload().(intents.ProjectOpenPayload)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: project:open", ErrUnexpectedPayload)
			}
			if err := m.state.SetActiveProject(payload.ProjectID); err != nil {
				return dispatch.HandlerResult{}, fmt.Errorf("failed to record active project: %w", err)
			}
			return dispatch.HandlerResult{}, nil
		},
	}
}

// projectRecord adds the cloned project to the state file, using the
// identity and metadata resolved by the earlier validation hooks.
func (m *Module) projectRecord() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "project-record",
		Fn: func(_ context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
			payload, ok := hc.Payload().(intents.ProjectClonePayload)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: project:clone", ErrUnexpectedPayload)
			}

			projectID, ok := hc.GetString(intents.FieldProjectID)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: %s", ErrFieldMissing, intents.FieldProjectID)
			}
			projectPath, ok := hc.GetString(intents.FieldProjectPath)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: %s", ErrFieldMissing, intents.FieldProjectPath)
			}
			defaultBranch, ok := hc.GetString(intents.FieldDefaultBranch)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: %s", ErrFieldMissing, intents.FieldDefaultBranch)
			}

			err := m.state.AddProject(projectID, state.AddProjectParams{
				Path:          projectPath,
				RepositoryURL: payload.RepositoryURL,
				DefaultBranch: defaultBranch,
			})
			if err != nil {
				return dispatch.HandlerResult{}, fmt.Errorf("failed to record project: %w", err)
			}

			m.logger.Logf("recorded project %s at %s", projectID, projectPath)
			return dispatch.HandlerResult{}, nil
		},
	}
}
