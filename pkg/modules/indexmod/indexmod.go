// Package indexmod maintains an in-memory index of projects, workspaces and
// the current focus, built purely from domain events. Other modules read it
// instead of hitting the state file on every title render or lookup. It is
// wired before any module whose subscribers read the index, so its updates
// are visible by the time they run.
package indexmod

import (
	"context"
	"fmt"
	"sync"

	"github.com/lerenn/workdeck/pkg/dispatch"
	"github.com/lerenn/workdeck/pkg/intents"
	"github.com/lerenn/workdeck/pkg/state"
)

const moduleName = "index"

// Module is the live index of open projects and workspaces.
type Module struct {
	state state.Manager

	mu              sync.RWMutex
	workspaces      map[string]string // workspace ID -> project ID
	activeProject   string
	activeWorkspace string // workspace name within the active project
}

// New creates the index module. The state manager is used once, to seed the
// index when the application starts; afterwards events keep it current.
func New(stateManager state.Manager) *Module {
	return &Module{
		state:      stateManager,
		workspaces: make(map[string]string),
	}
}

// Module returns the dispatch contributions.
func (m *Module) Module() dispatch.Module {
	return dispatch.Module{
		Name: moduleName,
		Events: []dispatch.EventRegistration{
			{Event: intents.EventAppStarted, Subscriber: m.subscriber("index-seed", m.onAppStarted)},
			{Event: intents.EventProjectOpened, Subscriber: m.subscriber("index-project-opened", m.onProjectOpened)},
			{Event: intents.EventProjectClosed, Subscriber: m.subscriber("index-project-closed", m.onProjectClosed)},
			{Event: intents.EventWorkspaceCreated, Subscriber: m.subscriber("index-workspace-created", m.onWorkspaceCreated)},
			{Event: intents.EventWorkspaceOpened, Subscriber: m.subscriber("index-workspace-opened", m.onWorkspaceOpened)},
			{Event: intents.EventWorkspaceSwitched, Subscriber: m.subscriber("index-workspace-switched", m.onWorkspaceSwitched)},
			{Event: intents.EventWorkspaceRemoved, Subscriber: m.subscriber("index-workspace-removed", m.onWorkspaceRemoved)},
		},
	}
}

// ProjectOf returns the project a workspace belongs to.
func (m *Module) ProjectOf(workspaceID string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	projectID, ok := m.workspaces[workspaceID]
	return projectID, ok
}

// Active returns the focused project and workspace name, either of which
// may be empty.
func (m *Module) Active() (projectID, workspaceName string) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.activeProject, m.activeWorkspace
}

// WorkspacesOf returns the workspace identifiers tracked for a project.
func (m *Module) WorkspacesOf(projectID string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var ids []string
	for workspaceID, owner := range m.workspaces {
		if owner == projectID {
			ids = append(ids, workspaceID)
		}
	}
	return ids
}

func (m *Module) subscriber(name string, fn func(evt dispatch.Event) error) dispatch.Subscriber {
	return dispatch.SubscriberFunc{
		SubscriberName: name,
		Fn: func(_ context.Context, evt dispatch.Event) error {
			return fn(evt)
		},
	}
}

// onAppStarted seeds the index from the persisted state.
func (m *Module) onAppStarted(dispatch.Event) error {
	projects, err := m.state.ListProjects()
	if err != nil {
		return fmt.Errorf("failed to seed index: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for projectID, project := range projects {
		for name := range project.Workspaces {
			m.workspaces[intents.WorkspaceID(projectID, name)] = projectID
		}
	}
	return nil
}

func (m *Module) onProjectOpened(evt dispatch.Event) error {
	payload, ok := evt.Payload.(intents.ProjectOpenedEvent)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnexpectedEventPayload, evt.Type)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.activeProject = payload.ProjectID
	m.activeWorkspace = payload.ActiveWorkspace
	return nil
}

func (m *Module) onProjectClosed(evt dispatch.Event) error {
	payload, ok := evt.Payload.(intents.ProjectClosedEvent)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnexpectedEventPayload, evt.Type)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.activeProject == payload.ProjectID {
		m.activeProject = ""
		m.activeWorkspace = ""
	}
	return nil
}

func (m *Module) onWorkspaceCreated(evt dispatch.Event) error {
	payload, ok := evt.Payload.(intents.WorkspaceCreatedEvent)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnexpectedEventPayload, evt.Type)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.workspaces[intents.WorkspaceID(payload.ProjectID, payload.WorkspaceName)] = payload.ProjectID
	m.activeProject = payload.ProjectID
	m.activeWorkspace = payload.WorkspaceName
	return nil
}

func (m *Module) onWorkspaceOpened(evt dispatch.Event) error {
	payload, ok := evt.Payload.(intents.WorkspaceOpenedEvent)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnexpectedEventPayload, evt.Type)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.workspaces[intents.WorkspaceID(payload.ProjectID, payload.WorkspaceName)] = payload.ProjectID
	m.activeProject = payload.ProjectID
	m.activeWorkspace = payload.WorkspaceName
	return nil
}

func (m *Module) onWorkspaceSwitched(evt dispatch.Event) error {
	payload, ok := evt.Payload.(intents.WorkspaceSwitchedEvent)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnexpectedEventPayload, evt.Type)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.activeProject = payload.ProjectID
	m.activeWorkspace = payload.WorkspaceName
	return nil
}

func (m *Module) onWorkspaceRemoved(evt dispatch.Event) error {
	payload, ok := evt.Payload.(intents.WorkspaceRemovedEvent)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnexpectedEventPayload, evt.Type)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.workspaces, intents.WorkspaceID(payload.ProjectID, payload.WorkspaceName))
	if m.activeProject == payload.ProjectID && m.activeWorkspace == payload.WorkspaceName {
		m.activeWorkspace = ""
	}
	return nil
}
