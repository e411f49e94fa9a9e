package state

import "fmt"

// AddProject adds a project entry to the state file.
func (s *realManager) AddProject(projectID string, params AddProjectParams) error {
	state, err := s.loadState()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	if _, exists := state.Projects[projectID]; exists {
		return fmt.Errorf("%w: %s", ErrProjectAlreadyExists, projectID)
	}

	state.Projects[projectID] = Project{
		Path:          params.Path,
		RepositoryURL: params.RepositoryURL,
		DefaultBranch: params.DefaultBranch,
		Workspaces:    make(map[string]Workspace),
	}

	if err := s.saveState(state); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	return nil
}

// GetProject retrieves a project entry.
func (s *realManager) GetProject(projectID string) (*Project, error) {
	state, err := s.loadState()
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	project, exists := state.Projects[projectID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
	}

	return &project, nil
}

// RemoveProject removes a project entry and all its workspaces.
func (s *realManager) RemoveProject(projectID string) error {
	state, err := s.loadState()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	if _, exists := state.Projects[projectID]; !exists {
		return fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
	}

	delete(state.Projects, projectID)
	if state.ActiveProject == projectID {
		state.ActiveProject = ""
	}

	if err := s.saveState(state); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	return nil
}

// ListProjects lists all tracked projects keyed by identifier.
func (s *realManager) ListProjects() (map[string]Project, error) {
	state, err := s.loadState()
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	return state.Projects, nil
}

// SetActiveProject records the project to reopen on start.
func (s *realManager) SetActiveProject(projectID string) error {
	state, err := s.loadState()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	if projectID != "" {
		if _, exists := state.Projects[projectID]; !exists {
			return fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
		}
	}

	state.ActiveProject = projectID

	if err := s.saveState(state); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	return nil
}

// GetActiveProject returns the identifier of the last opened project, empty
// if none.
func (s *realManager) GetActiveProject() (string, error) {
	state, err := s.loadState()
	if err != nil {
		return "", fmt.Errorf("failed to load state: %w", err)
	}

	return state.ActiveProject, nil
}
