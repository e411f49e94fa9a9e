// Package bridgemod contributes the editor extension handshakes to the
// pipelines: awaiting extension readiness when a workspace view comes up,
// and the graceful shutdown exchange before a workspace or the application
// goes away.
package bridgemod

import (
	"context"
	"fmt"
	"time"

	"github.com/lerenn/workdeck/pkg/dispatch"
	"github.com/lerenn/workdeck/pkg/extbridge"
	"github.com/lerenn/workdeck/pkg/intents"
	"github.com/lerenn/workdeck/pkg/logger"
	"github.com/lerenn/workdeck/pkg/state"
)

const moduleName = "bridge"

// Params contains parameters for creating the bridge module.
type Params struct {
	Bridge extbridge.Bridge
	State  state.Manager
	// Timeout bounds the readiness wait after a workspace view opens.
	Timeout time.Duration
	Logger  logger.Logger
}

// Module contributes extension readiness and shutdown handlers to the
// pipelines.
type Module struct {
	bridge  extbridge.Bridge
	state   state.Manager
	timeout time.Duration
	logger  logger.Logger
}

// New creates the bridge module.
func New(params Params) *Module {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Module{
		bridge:  params.Bridge,
		state:   params.State,
		timeout: timeout,
		logger:  log,
	}
}

// Module returns the dispatch contributions.
func (m *Module) Module() dispatch.Module {
	return dispatch.Module{
		Name: moduleName,
		Hooks: []dispatch.HookRegistration{
			{Intent: intents.AppStop, Point: intents.PointTeardown, Handler: m.shutdownAll()},
			{Intent: intents.ProjectClose, Point: intents.PointTeardown, Handler: m.projectShutdown()},
			{Intent: intents.WorkspaceOpen, Point: intents.PointFinalize, Handler: m.extensionAwait()},
			{Intent: intents.WorkspaceRemove, Point: intents.PointTeardown, Handler: m.extensionShutdown()},
		},
	}
}

// extensionAwait parks the open pipeline until the workspace extension
// accepts connections. The wait is returned as a continuation so it starts
// only after the view creation hook has run and its fields are merged.
func (m *Module) extensionAwait() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "extension-await",
		Fn: func(_ context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
			payload, ok := hc.Payload().(intents.WorkspaceOpenPayload)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: workspace:open", ErrUnexpectedPayload)
			}
			workspaceID := intents.WorkspaceID(payload.ProjectID, payload.WorkspaceName)

			return dispatch.HandlerResult{
				Wait: func(ctx context.Context) error {
					ctx, cancel := context.WithTimeout(ctx, m.timeout)
					defer cancel()
					if err := m.bridge.WaitReady(ctx, workspaceID); err != nil {
						return fmt.Errorf("extension for %s not ready: %w", workspaceID, err)
					}
					return nil
				},
			}, nil
		},
	}
}

// extensionShutdown performs the shutdown handshake with the extension of a
// workspace being removed, tolerated under force.
func (m *Module) extensionShutdown() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "extension-shutdown",
		Fn: func(ctx context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
			payload, ok := hc.Payload().(intents.WorkspaceRemovePayload)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: workspace:remove", ErrUnexpectedPayload)
			}

			workspaceID := intents.WorkspaceID(payload.ProjectID, payload.WorkspaceName)
			if err := m.bridge.Shutdown(ctx, workspaceID); err != nil {
				return dispatch.HandlerResult{},
					dispatch.Tolerated(hc, intents.PointTeardown, "extension-shutdown", err)
			}
			return dispatch.HandlerResult{}, nil
		},
	}
}

// projectShutdown performs the shutdown handshake with every extension of
// the project being closed.
func (m *Module) projectShutdown() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "project-extensions-shutdown",
		Fn: func(ctx context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
			payload, ok := hc.Payload().(intents.ProjectClosePayload)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: project:close", ErrUnexpectedPayload)
			}

			workspaces, err := m.state.ListWorkspaces(payload.ProjectID)
			if err != nil {
				return dispatch.HandlerResult{}, fmt.Errorf("failed to list workspaces: %w", err)
			}

			for name := range workspaces {
				workspaceID := intents.WorkspaceID(payload.ProjectID, name)
				if err := m.bridge.Shutdown(ctx, workspaceID); err != nil {
					return dispatch.HandlerResult{}, fmt.Errorf("shutdown of %s failed: %w", workspaceID, err)
				}
			}
			return dispatch.HandlerResult{}, nil
		},
	}
}

// shutdownAll performs the shutdown handshake with every tracked workspace
// extension on application stop. Each failure is tolerated under force so
// one unresponsive extension cannot keep the others from a clean exit.
func (m *Module) shutdownAll() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "extensions-shutdown-all",
		Fn: func(ctx context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
			projects, err := m.state.ListProjects()
			if err != nil {
				return dispatch.HandlerResult{},
					dispatch.Tolerated(hc, intents.PointTeardown, "extensions-shutdown-all", err)
			}

			for projectID, project := range projects {
				for name := range project.Workspaces {
					workspaceID := intents.WorkspaceID(projectID, name)
					if err := m.bridge.Shutdown(ctx, workspaceID); err != nil {
						tolerated := dispatch.Tolerated(hc, intents.PointTeardown, "extensions-shutdown-all", err)
						if tolerated != nil {
							return dispatch.HandlerResult{}, tolerated
						}
					}
				}
			}
			return dispatch.HandlerResult{}, nil
		},
	}
}
