// Package state provides persistence for the project and workspace records
// tracked by the workdeck application, stored as a YAML state file.
package state

import (
	"fmt"

	"github.com/lerenn/workdeck/pkg/config"
	"github.com/lerenn/workdeck/pkg/fs"
	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=state.go -destination=mocks/state.gen.go -package=mocks

// State represents the state.yaml file structure.
type State struct {
	// ActiveProject is the identifier of the last opened project, reopened
	// on application start.
	ActiveProject string `yaml:"active_project,omitempty"`
	// Projects maps project identifiers to their records.
	Projects map[string]Project `yaml:"projects"`
}

// Project represents a project entry in the state file.
type Project struct {
	// Path is the local checkout of the project repository.
	Path string `yaml:"path"`
	// RepositoryURL is the normalized remote URL, empty for local-only
	// projects.
	RepositoryURL string `yaml:"repository_url,omitempty"`
	// DefaultBranch is the branch workspaces branch off.
	DefaultBranch string `yaml:"default_branch"`
	// ActiveWorkspace is the name of the currently focused workspace.
	ActiveWorkspace string `yaml:"active_workspace,omitempty"`
	// Workspaces maps workspace names to their records.
	Workspaces map[string]Workspace `yaml:"workspaces,omitempty"`
}

// Workspace represents a workspace entry within a project.
type Workspace struct {
	// Path is the worktree directory of the workspace.
	Path string `yaml:"path"`
	// Branch is the git branch the worktree has checked out.
	Branch string `yaml:"branch"`
	// AgentPort is the port of the workspace's agent server, zero when the
	// server is not running.
	AgentPort int `yaml:"agent_port,omitempty"`
}

// AddProjectParams contains parameters for AddProject.
type AddProjectParams struct {
	Path          string
	RepositoryURL string
	DefaultBranch string
}

// AddWorkspaceParams contains parameters for AddWorkspace.
type AddWorkspaceParams struct {
	Path   string
	Branch string
}

// Manager interface provides state file management functionality.
type Manager interface {
	// AddProject adds a project entry to the state file.
	AddProject(projectID string, params AddProjectParams) error
	// GetProject retrieves a project entry.
	GetProject(projectID string) (*Project, error)
	// RemoveProject removes a project entry and all its workspaces.
	RemoveProject(projectID string) error
	// ListProjects lists all tracked projects keyed by identifier.
	ListProjects() (map[string]Project, error)
	// SetActiveProject records the project to reopen on start.
	SetActiveProject(projectID string) error
	// GetActiveProject returns the identifier of the last opened project,
	// empty if none.
	GetActiveProject() (string, error)
	// AddWorkspace adds a workspace entry to a project.
	AddWorkspace(projectID, name string, params AddWorkspaceParams) error
	// GetWorkspace retrieves a workspace entry.
	GetWorkspace(projectID, name string) (*Workspace, error)
	// RemoveWorkspace removes a workspace entry.
	RemoveWorkspace(projectID, name string) error
	// ListWorkspaces lists the workspaces of a project keyed by name.
	ListWorkspaces(projectID string) (map[string]Workspace, error)
	// SetActiveWorkspace records the focused workspace of a project.
	SetActiveWorkspace(projectID, name string) error
	// SetWorkspaceAgentPort records the agent server port of a workspace,
	// zero when stopped.
	SetWorkspaceAgentPort(projectID, name string, port int) error
}

type realManager struct {
	fs     fs.FS
	config config.Config
}

// NewManager creates a new state Manager instance.
func NewManager(fs fs.FS, config config.Config) Manager {
	return &realManager{
		fs:     fs,
		config: config,
	}
}

// loadState loads the state from the state file, creating an initial one if
// missing.
func (s *realManager) loadState() (*State, error) {
	statePath := s.config.StateFile
	if statePath == "" {
		return nil, ErrStateFileNotConfigured
	}

	exists, err := s.fs.Exists(statePath)
	if err != nil {
		return nil, fmt.Errorf("failed to check state file existence: %w", err)
	}

	if !exists {
		initial := &State{
			Projects: make(map[string]Project),
		}
		if err := s.saveState(initial); err != nil {
			return nil, fmt.Errorf("failed to create initial state file: %w", err)
		}
		return initial, nil
	}

	data, err := s.fs.ReadFile(statePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var state State
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}
	if state.Projects == nil {
		state.Projects = make(map[string]Project)
	}

	return &state, nil
}

// saveState saves the state to the state file atomically.
func (s *realManager) saveState(state *State) error {
	statePath := s.config.StateFile
	if statePath == "" {
		return ErrStateFileNotConfigured
	}

	unlock, err := s.fs.FileLock(statePath)
	if err != nil {
		return fmt.Errorf("failed to acquire file lock: %w", err)
	}
	defer unlock()

	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := s.fs.WriteFileAtomic(statePath, data, 0600); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}
