//go:build unit

package state

import (
	"path/filepath"
	"testing"

	"github.com/lerenn/workdeck/pkg/config"
	"github.com/lerenn/workdeck/pkg/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) Manager {
	t.Helper()
	cfg := config.Config{
		StateFile: filepath.Join(t.TempDir(), "state.yaml"),
	}
	return NewManager(fs.NewFS(), cfg)
}

func TestAddProject_Success(t *testing.T) {
	manager := newTestManager(t)

	err := manager.AddProject("github.com/user/app", AddProjectParams{
		Path:          "/data/projects/app",
		RepositoryURL: "github.com/user/app",
		DefaultBranch: "main",
	})
	require.NoError(t, err)

	project, err := manager.GetProject("github.com/user/app")
	require.NoError(t, err)
	assert.Equal(t, "/data/projects/app", project.Path)
	assert.Equal(t, "main", project.DefaultBranch)
}

func TestAddProject_Duplicate(t *testing.T) {
	manager := newTestManager(t)

	params := AddProjectParams{Path: "/data/projects/app", DefaultBranch: "main"}
	require.NoError(t, manager.AddProject("p1", params))

	err := manager.AddProject("p1", params)
	assert.ErrorIs(t, err, ErrProjectAlreadyExists)
}

func TestGetProject_NotFound(t *testing.T) {
	manager := newTestManager(t)

	_, err := manager.GetProject("missing")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestRemoveProject_ClearsActive(t *testing.T) {
	manager := newTestManager(t)

	require.NoError(t, manager.AddProject("p1", AddProjectParams{Path: "/p1", DefaultBranch: "main"}))
	require.NoError(t, manager.SetActiveProject("p1"))

	require.NoError(t, manager.RemoveProject("p1"))

	active, err := manager.GetActiveProject()
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestWorkspaceLifecycle(t *testing.T) {
	manager := newTestManager(t)

	require.NoError(t, manager.AddProject("p1", AddProjectParams{Path: "/p1", DefaultBranch: "main"}))

	err := manager.AddWorkspace("p1", "w1", AddWorkspaceParams{
		Path:   "/worktrees/p1/w1",
		Branch: "feature/w1",
	})
	require.NoError(t, err)

	// Duplicate workspace rejected
	err = manager.AddWorkspace("p1", "w1", AddWorkspaceParams{Path: "/x", Branch: "y"})
	assert.ErrorIs(t, err, ErrWorkspaceAlreadyExists)

	// Agent port update round-trips
	require.NoError(t, manager.SetWorkspaceAgentPort("p1", "w1", 4242))
	workspace, err := manager.GetWorkspace("p1", "w1")
	require.NoError(t, err)
	assert.Equal(t, 4242, workspace.AgentPort)

	// Active workspace tracking
	require.NoError(t, manager.SetActiveWorkspace("p1", "w1"))
	project, err := manager.GetProject("p1")
	require.NoError(t, err)
	assert.Equal(t, "w1", project.ActiveWorkspace)

	// Removal clears the active marker
	require.NoError(t, manager.RemoveWorkspace("p1", "w1"))
	project, err = manager.GetProject("p1")
	require.NoError(t, err)
	assert.Empty(t, project.ActiveWorkspace)

	_, err = manager.GetWorkspace("p1", "w1")
	assert.ErrorIs(t, err, ErrWorkspaceNotFound)
}

func TestSetActiveWorkspace_NotFound(t *testing.T) {
	manager := newTestManager(t)

	require.NoError(t, manager.AddProject("p1", AddProjectParams{Path: "/p1", DefaultBranch: "main"}))

	err := manager.SetActiveWorkspace("p1", "missing")
	assert.ErrorIs(t, err, ErrWorkspaceNotFound)
}

func TestState_PersistsAcrossManagers(t *testing.T) {
	cfg := config.Config{
		StateFile: filepath.Join(t.TempDir(), "state.yaml"),
	}

	first := NewManager(fs.NewFS(), cfg)
	require.NoError(t, first.AddProject("p1", AddProjectParams{Path: "/p1", DefaultBranch: "main"}))
	require.NoError(t, first.AddWorkspace("p1", "w1", AddWorkspaceParams{Path: "/w1", Branch: "b1"}))

	second := NewManager(fs.NewFS(), cfg)
	workspace, err := second.GetWorkspace("p1", "w1")
	require.NoError(t, err)
	assert.Equal(t, "/w1", workspace.Path)
}
