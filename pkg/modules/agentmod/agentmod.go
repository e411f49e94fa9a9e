// Package agentmod contributes the helper process side of the pipelines:
// one coding-agent server per workspace and the embedded editor server the
// workspace views connect to.
package agentmod

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/lerenn/workdeck/pkg/config"
	"github.com/lerenn/workdeck/pkg/dispatch"
	"github.com/lerenn/workdeck/pkg/intents"
	"github.com/lerenn/workdeck/pkg/logger"
	"github.com/lerenn/workdeck/pkg/proc"
	"github.com/lerenn/workdeck/pkg/state"
)

const moduleName = "agent"

// editorProcess is the supervisor name of the embedded editor server.
const editorProcess = "editor"

// stopTimeout bounds graceful process termination before escalating.
const stopTimeout = 5 * time.Second

// Params contains parameters for creating the agent module.
type Params struct {
	Supervisor proc.Supervisor
	State      state.Manager
	Config     config.Config
	Logger     logger.Logger
}

// Module contributes process startup and teardown handlers to the
// pipelines.
type Module struct {
	supervisor proc.Supervisor
	state      state.Manager
	config     config.Config
	logger     logger.Logger

	// freePort is swappable for tests.
	freePort func() (int, error)
}

// New creates the agent module.
func New(params Params) *Module {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &Module{
		supervisor: params.Supervisor,
		state:      params.State,
		config:     params.Config,
		logger:     log,
		freePort:   proc.FreePort,
	}
}

// Module returns the dispatch contributions.
func (m *Module) Module() dispatch.Module {
	return dispatch.Module{
		Name: moduleName,
		Hooks: []dispatch.HookRegistration{
			{Intent: intents.AppStart, Point: intents.PointServices, Handler: m.editorStart()},
			{Intent: intents.AppStop, Point: intents.PointTeardown, Handler: m.stopAll()},
			{Intent: intents.ProjectClose, Point: intents.PointTeardown, Handler: m.projectAgentsStop()},
			{Intent: intents.WorkspaceCreate, Point: intents.PointServices, Handler: m.agentStart()},
			{Intent: intents.WorkspaceOpen, Point: intents.PointSetup, Handler: m.agentEnsure()},
			{Intent: intents.WorkspaceRemove, Point: intents.PointTeardown, Handler: m.agentStop()},
		},
	}
}

// editorStart launches the embedded editor server. A missing editor command
// means the deployment serves workspaces some other way; the hook is a
// no-op then.
func (m *Module) editorStart() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "editor-start",
		Fn: func(_ context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
			if m.config.EditorCommand == "" {
				m.logger.Logf("no editor command configured, skipping editor startup")
				return dispatch.HandlerResult{}, nil
			}
			if m.supervisor.Running(editorProcess) {
				return dispatch.HandlerResult{}, nil
			}

			err := m.supervisor.Start(proc.StartParams{
				Name:    editorProcess,
				Command: m.config.EditorCommand,
				Args:    []string{"--port", strconv.Itoa(m.config.EditorPort)},
			})
			if err != nil {
				return dispatch.HandlerResult{}, fmt.Errorf("failed to start editor server: %w", err)
			}
			return dispatch.HandlerResult{}, nil
		},
	}
}

// stopAll terminates every supervised process on application stop.
func (m *Module) stopAll() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "processes-stop-all",
		Fn: func(_ context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
			if err := m.supervisor.StopAll(stopTimeout); err != nil {
				return dispatch.HandlerResult{},
					dispatch.Tolerated(hc, intents.PointTeardown, "processes-stop-all", err)
			}
			return dispatch.HandlerResult{}, nil
		},
	}
}

// projectAgentsStop terminates the agent of every workspace of the project
// being closed.
func (m *Module) projectAgentsStop() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "project-agents-stop",
		Fn: func(_ context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
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
				if !m.supervisor.Running(workspaceID) {
					continue
				}
				if err := m.supervisor.Stop(workspaceID, stopTimeout); err != nil {
					return dispatch.HandlerResult{}, fmt.Errorf("failed to stop agent %s: %w", workspaceID, err)
				}
			}
			return dispatch.HandlerResult{}, nil
		},
	}
}

// agentStart launches the agent server of a workspace being created and
// contributes its port.
func (m *Module) agentStart() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "agent-start",
		Fn: func(_ context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
			payload, ok := hc.Payload().(intents.WorkspaceCreatePayload)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: workspace:create", ErrUnexpectedPayload)
			}

			workspacePath, ok := hc.GetString(intents.FieldWorkspacePath)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: %s", ErrFieldMissing, intents.FieldWorkspacePath)
			}

			workspaceID := intents.WorkspaceID(payload.ProjectID, payload.WorkspaceName)
			port, err := m.startAgent(workspaceID, workspacePath)
			if err != nil {
				return dispatch.HandlerResult{}, err
			}
			if port == 0 {
				return dispatch.HandlerResult{}, nil
			}
			return dispatch.HandlerResult{Fields: map[string]any{
				intents.FieldAgentPort: port,
			}}, nil
		},
	}
}

// agentEnsure makes sure the agent server of a workspace being opened is
// running, reusing the recorded port when it already is, and contributes
// the environment the workspace view is built from.
func (m *Module) agentEnsure() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "agent-ensure",
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

			var port int
			if m.supervisor.Running(workspaceID) {
				workspace, ok := workspaceField(hc)
				if !ok {
					return dispatch.HandlerResult{}, fmt.Errorf("%w: %s", ErrFieldMissing, intents.FieldWorkspace)
				}
				port = workspace.AgentPort
			} else {
				started, err := m.startAgent(workspaceID, workspacePath)
				if err != nil {
					return dispatch.HandlerResult{}, err
				}
				port = started
			}

			envVars := map[string]string{
				"WORKDECK_WORKSPACE": workspaceID,
			}
			fields := map[string]any{intents.FieldEnvVars: envVars}
			if port > 0 {
				envVars["WORKDECK_AGENT_PORT"] = strconv.Itoa(port)
				fields[intents.FieldAgentPort] = port
			}
			return dispatch.HandlerResult{Fields: fields}, nil
		},
	}
}

// agentStop terminates the agent of a workspace being removed, tolerated
// under force.
func (m *Module) agentStop() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "agent-stop",
		Fn: func(_ context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
			payload, ok := hc.Payload().(intents.WorkspaceRemovePayload)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: workspace:remove", ErrUnexpectedPayload)
			}

			workspaceID := intents.WorkspaceID(payload.ProjectID, payload.WorkspaceName)
			if err := m.supervisor.Stop(workspaceID, stopTimeout); err != nil {
				return dispatch.HandlerResult{},
					dispatch.Tolerated(hc, intents.PointTeardown, "agent-stop", err)
			}
			return dispatch.HandlerResult{}, nil
		},
	}
}

// startAgent launches one agent server on a fresh port. Zero port with nil
// error means no agent command is configured.
func (m *Module) startAgent(workspaceID, workspacePath string) (int, error) {
	if m.config.AgentCommand == "" {
		m.logger.Logf("no agent command configured, skipping agent for %s", workspaceID)
		return 0, nil
	}

	port, err := m.freePort()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate agent port: %w", err)
	}

	err = m.supervisor.Start(proc.StartParams{
		Name:    workspaceID,
		Command: m.config.AgentCommand,
		Args:    []string{"--port", strconv.Itoa(port)},
		Dir:     workspacePath,
		Env:     []string{"WORKDECK_WORKSPACE=" + workspaceID},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to start agent for %s: %w", workspaceID, err)
	}
	return port, nil
}

func workspaceField(hc *dispatch.HookContext) (*state.Workspace, bool) {
	value, ok := hc.Get(intents.FieldWorkspace)
	if !ok {
		return nil, false
	}
	workspace, ok := value.(*state.Workspace)
	return workspace, ok
}
