package state

import "fmt"

// AddWorkspace adds a workspace entry to a project.
func (s *realManager) AddWorkspace(projectID, name string, params AddWorkspaceParams) error {
	state, err := s.loadState()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	project, exists := state.Projects[projectID]
	if !exists {
		return fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
	}

	if project.Workspaces == nil {
		project.Workspaces = make(map[string]Workspace)
	}
	if _, exists := project.Workspaces[name]; exists {
		return fmt.Errorf("%w: %s/%s", ErrWorkspaceAlreadyExists, projectID, name)
	}

	project.Workspaces[name] = Workspace{
		Path:   params.Path,
		Branch: params.Branch,
	}
	state.Projects[projectID] = project

	if err := s.saveState(state); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	return nil
}

// GetWorkspace retrieves a workspace entry.
func (s *realManager) GetWorkspace(projectID, name string) (*Workspace, error) {
	state, err := s.loadState()
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	project, exists := state.Projects[projectID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
	}

	workspace, exists := project.Workspaces[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s/%s", ErrWorkspaceNotFound, projectID, name)
	}

	return &workspace, nil
}

// RemoveWorkspace removes a workspace entry.
func (s *realManager) RemoveWorkspace(projectID, name string) error {
	state, err := s.loadState()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	project, exists := state.Projects[projectID]
	if !exists {
		return fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
	}

	if _, exists := project.Workspaces[name]; !exists {
		return fmt.Errorf("%w: %s/%s", ErrWorkspaceNotFound, projectID, name)
	}

	delete(project.Workspaces, name)
	if project.ActiveWorkspace == name {
		project.ActiveWorkspace = ""
	}
	state.Projects[projectID] = project

	if err := s.saveState(state); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	return nil
}

// ListWorkspaces lists the workspaces of a project keyed by name.
func (s *realManager) ListWorkspaces(projectID string) (map[string]Workspace, error) {
	state, err := s.loadState()
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	project, exists := state.Projects[projectID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
	}

	return project.Workspaces, nil
}

// SetActiveWorkspace records the focused workspace of a project.
func (s *realManager) SetActiveWorkspace(projectID, name string) error {
	state, err := s.loadState()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	project, exists := state.Projects[projectID]
	if !exists {
		return fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
	}

	if name != "" {
		if _, exists := project.Workspaces[name]; !exists {
			return fmt.Errorf("%w: %s/%s", ErrWorkspaceNotFound, projectID, name)
		}
	}

	project.ActiveWorkspace = name
	state.Projects[projectID] = project

	if err := s.saveState(state); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	return nil
}

// SetWorkspaceAgentPort records the agent server port of a workspace, zero
// when stopped.
func (s *realManager) SetWorkspaceAgentPort(projectID, name string, port int) error {
	state, err := s.loadState()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	project, exists := state.Projects[projectID]
	if !exists {
		return fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
	}

	workspace, exists := project.Workspaces[name]
	if !exists {
		return fmt.Errorf("%w: %s/%s", ErrWorkspaceNotFound, projectID, name)
	}

	workspace.AgentPort = port
	project.Workspaces[name] = workspace
	state.Projects[projectID] = project

	if err := s.saveState(state); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	return nil
}
