// Package viewmod contributes the view side of the pipelines: building the
// workspace URL, opening and closing views, and keeping the window title in
// sync with the focused workspace. Titles are rendered from the index
// module, so this module must be wired after it.
package viewmod

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/lerenn/workdeck/pkg/dispatch"
	"github.com/lerenn/workdeck/pkg/intents"
	"github.com/lerenn/workdeck/pkg/logger"
	"github.com/lerenn/workdeck/pkg/modules/indexmod"
	"github.com/lerenn/workdeck/pkg/views"
)

const moduleName = "view"

// defaultTitle is shown when no project is open.
const defaultTitle = "workdeck"

// Params contains parameters for creating the view module.
type Params struct {
	Views views.Service
	Index *indexmod.Module
	// EditorPort is the port of the embedded editor server the workspace
	// URLs point at.
	EditorPort int
	Logger     logger.Logger
}

// Module contributes view handlers and title subscribers to the pipelines.
type Module struct {
	views      views.Service
	index      *indexmod.Module
	editorPort int
	logger     logger.Logger
}

// New creates the view module.
func New(params Params) *Module {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &Module{
		views:      params.Views,
		index:      params.Index,
		editorPort: params.EditorPort,
		logger:     log,
	}
}

// Module returns the dispatch contributions.
func (m *Module) Module() dispatch.Module {
	titleEvents := []dispatch.EventType{
		intents.EventProjectOpened,
		intents.EventProjectClosed,
		intents.EventWorkspaceOpened,
		intents.EventWorkspaceSwitched,
		intents.EventWorkspaceRemoved,
	}

	events := make([]dispatch.EventRegistration, 0, len(titleEvents))
	for _, eventType := range titleEvents {
		events = append(events, dispatch.EventRegistration{
			Event:      eventType,
			Subscriber: m.titleSubscriber(),
		})
	}

	return dispatch.Module{
		Name: moduleName,
		Hooks: []dispatch.HookRegistration{
			{Intent: intents.ProjectClose, Point: intents.PointTeardown, Handler: m.projectViewsClose()},
			{Intent: intents.WorkspaceOpen, Point: intents.PointFinalize, Handler: m.viewOpen()},
			{Intent: intents.WorkspaceSwitch, Point: intents.PointFinalize, Handler: m.viewFocus()},
			{Intent: intents.WorkspaceRemove, Point: intents.PointCleanup, Handler: m.viewClose()},
		},
		Events: events,
	}
}

// viewOpen builds the workspace URL from the environment assembled during
// setup and opens the view on it.
func (m *Module) viewOpen() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "view-open",
		Fn: func(_ context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
			payload, ok := hc.Payload().(intents.WorkspaceOpenPayload)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: workspace:open", ErrUnexpectedPayload)
			}
			workspacePath, ok := hc.GetString(intents.FieldWorkspacePath)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: %s", ErrFieldMissing, intents.FieldWorkspacePath)
			}

			workspaceID := intents.WorkspaceID(payload.ProjectID, payload.WorkspaceName)
			envVars, _ := hc.GetStringMap(intents.FieldEnvVars)
			workspaceURL := m.workspaceURL(workspacePath, envVars)

			err := m.views.CreateView(views.CreateViewParams{
				WorkspaceID: workspaceID,
				URL:         workspaceURL,
			})
			if err != nil {
				return dispatch.HandlerResult{}, fmt.Errorf("failed to create view: %w", err)
			}
			if err := m.views.FocusView(workspaceID); err != nil {
				return dispatch.HandlerResult{}, fmt.Errorf("failed to focus view: %w", err)
			}

			return dispatch.HandlerResult{Fields: map[string]any{
				intents.FieldWorkspaceURL: workspaceURL,
			}}, nil
		},
	}
}

// viewFocus brings the switch target's view to the front.
func (m *Module) viewFocus() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "view-focus",
		Fn: func(_ context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
			payload, ok := hc.Payload().(intents.WorkspaceSwitchPayload)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: workspace:switch", ErrUnexpectedPayload)
			}
			workspaceID := intents.WorkspaceID(payload.ProjectID, payload.WorkspaceName)
			if err := m.views.FocusView(workspaceID); err != nil {
				return dispatch.HandlerResult{}, fmt.Errorf("failed to focus view: %w", err)
			}
			return dispatch.HandlerResult{}, nil
		},
	}
}

// viewClose closes the view of a workspace being removed, tolerated under
// force.
func (m *Module) viewClose() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "view-close",
		Fn: func(_ context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
			payload, ok := hc.Payload().(intents.WorkspaceRemovePayload)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: workspace:remove", ErrUnexpectedPayload)
			}
			workspaceID := intents.WorkspaceID(payload.ProjectID, payload.WorkspaceName)
			if err := m.views.CloseView(workspaceID); err != nil {
				return dispatch.HandlerResult{},
					dispatch.Tolerated(hc, intents.PointCleanup, "view-close", err)
			}
			return dispatch.HandlerResult{}, nil
		},
	}
}

// projectViewsClose closes every open view of the project being closed.
func (m *Module) projectViewsClose() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "project-views-close",
		Fn: func(_ context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
			payload, ok := hc.Payload().(intents.ProjectClosePayload)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: project:close", ErrUnexpectedPayload)
			}

			for _, workspaceID := range m.index.WorkspacesOf(payload.ProjectID) {
				if err := m.views.CloseView(workspaceID); err != nil {
					return dispatch.HandlerResult{}, fmt.Errorf("failed to close view %s: %w", workspaceID, err)
				}
			}
			return dispatch.HandlerResult{}, nil
		},
	}
}

// titleSubscriber re-renders the window title from the index after any
// focus-changing event.
func (m *Module) titleSubscriber() dispatch.Subscriber {
	return dispatch.SubscriberFunc{
		SubscriberName: "window-title",
		Fn: func(_ context.Context, _ dispatch.Event) error {
			projectID, workspaceName := m.index.Active()

			title := defaultTitle
			switch {
			case projectID != "" && workspaceName != "":
				title = fmt.Sprintf("%s / %s", projectID, workspaceName)
			case projectID != "":
				title = projectID
			}
			return m.views.SetWindowTitle(title)
		},
	}
}

// workspaceURL points the view at the embedded editor server, carrying the
// worktree path and the per-workspace environment as query parameters.
func (m *Module) workspaceURL(workspacePath string, envVars map[string]string) string {
	query := url.Values{}
	query.Set("folder", workspacePath)
	for name, value := range envVars {
		query.Set(name, value)
	}
	return "http://127.0.0.1:" + strconv.Itoa(m.editorPort) + "/?" + query.Encode()
}
