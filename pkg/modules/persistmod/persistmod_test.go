//go:build unit

package persistmod

import (
	"context"
	"testing"

	"github.com/lerenn/workdeck/pkg/dispatch"
	"github.com/lerenn/workdeck/pkg/intents"
	"github.com/lerenn/workdeck/pkg/state"
	statemocks "github.com/lerenn/workdeck/pkg/state/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestModule(t *testing.T) (*Module, *statemocks.MockManager) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockState := statemocks.NewMockManager(ctrl)
	return New(Params{State: mockState}), mockState
}

func testProject() *state.Project {
	return &state.Project{
		Path:          "/projects/github.com/acme/app",
		DefaultBranch: "main",
	}
}

func TestWorkspaceUniqueness(t *testing.T) {
	module, mockState := newTestModule(t)

	mockState.EXPECT().GetProject("github.com/acme/app").Return(testProject(), nil)
	mockState.EXPECT().GetWorkspace("github.com/acme/app", "fix-login").
		Return(nil, state.ErrWorkspaceNotFound)

	hc := dispatch.NewHookContext(dispatch.Intent{
		Type: intents.WorkspaceCreate,
		Payload: intents.WorkspaceCreatePayload{
			ProjectID:     "github.com/acme/app",
			WorkspaceName: "fix-login",
		},
	})

	result, err := module.workspaceUniqueness().Execute(context.Background(), hc)
	require.NoError(t, err)
	assert.Equal(t, "/projects/github.com/acme/app", result.Fields[intents.FieldProjectPath])

	project, ok := result.Fields[intents.FieldProject].(*state.Project)
	require.True(t, ok)
	assert.Equal(t, "main", project.DefaultBranch)
}

func TestWorkspaceUniqueness_RejectsTakenName(t *testing.T) {
	module, mockState := newTestModule(t)

	mockState.EXPECT().GetProject("github.com/acme/app").Return(testProject(), nil)
	mockState.EXPECT().GetWorkspace("github.com/acme/app", "fix-login").
		Return(&state.Workspace{Path: "/worktrees/github.com/acme/app/fix-login"}, nil)

	hc := dispatch.NewHookContext(dispatch.Intent{
		Type: intents.WorkspaceCreate,
		Payload: intents.WorkspaceCreatePayload{
			ProjectID:     "github.com/acme/app",
			WorkspaceName: "fix-login",
		},
	})

	_, err := module.workspaceUniqueness().Execute(context.Background(), hc)
	assert.ErrorIs(t, err, ErrWorkspaceExists)
}

func TestWorkspaceUniqueness_UnknownProject(t *testing.T) {
	module, mockState := newTestModule(t)

	mockState.EXPECT().GetProject("github.com/acme/missing").Return(nil, state.ErrProjectNotFound)

	hc := dispatch.NewHookContext(dispatch.Intent{
		Type: intents.WorkspaceCreate,
		Payload: intents.WorkspaceCreatePayload{
			ProjectID:     "github.com/acme/missing",
			WorkspaceName: "ws",
		},
	})

	_, err := module.workspaceUniqueness().Execute(context.Background(), hc)
	assert.ErrorIs(t, err, state.ErrProjectNotFound)
}

func TestWorkspaceRecord(t *testing.T) {
	module, mockState := newTestModule(t)

	mockState.EXPECT().AddWorkspace("github.com/acme/app", "fix-login", state.AddWorkspaceParams{
		Path:   "/worktrees/github.com/acme/app/fix-login",
		Branch: "fix-login",
	}).Return(nil)
	mockState.EXPECT().SetWorkspaceAgentPort("github.com/acme/app", "fix-login", 45001).Return(nil)
	mockState.EXPECT().SetActiveWorkspace("github.com/acme/app", "fix-login").Return(nil)

	hc := dispatch.NewHookContext(dispatch.Intent{
		Type: intents.WorkspaceCreate,
		Payload: intents.WorkspaceCreatePayload{
			ProjectID:     "github.com/acme/app",
			WorkspaceName: "fix-login",
		},
	})
	require.NoError(t, hc.Set(intents.FieldWorkspacePath, "/worktrees/github.com/acme/app/fix-login"))
	require.NoError(t, hc.Set(intents.FieldBranch, "fix-login"))
	require.NoError(t, hc.Set(intents.FieldAgentPort, 45001))

	_, err := module.workspaceRecord().Execute(context.Background(), hc)
	require.NoError(t, err)
}

func TestWorkspaceRecord_MissingFieldFails(t *testing.T) {
	module, _ := newTestModule(t)

	hc := dispatch.NewHookContext(dispatch.Intent{
		Type: intents.WorkspaceCreate,
		Payload: intents.WorkspaceCreatePayload{
			ProjectID:     "github.com/acme/app",
			WorkspaceName: "fix-login",
		},
	})

	_, err := module.workspaceRecord().Execute(context.Background(), hc)
	assert.ErrorIs(t, err, ErrFieldMissing)
}

func TestProjectRecord(t *testing.T) {
	module, mockState := newTestModule(t)

	mockState.EXPECT().AddProject("github.com/acme/app", state.AddProjectParams{
		Path:          "/projects/github.com/acme/app",
		RepositoryURL: "https://github.com/acme/app",
		DefaultBranch: "main",
	}).Return(nil)

	hc := dispatch.NewHookContext(dispatch.Intent{
		Type:    intents.ProjectClone,
		Payload: intents.ProjectClonePayload{RepositoryURL: "https://github.com/acme/app"},
	})
	require.NoError(t, hc.Set(intents.FieldProjectID, "github.com/acme/app"))
	require.NoError(t, hc.Set(intents.FieldProjectPath, "/projects/github.com/acme/app"))
	require.NoError(t, hc.Set(intents.FieldDefaultBranch, "main"))

	_, err := module.projectRecord().Execute(context.Background(), hc)
	require.NoError(t, err)
}

func TestRemovalLookup(t *testing.T) {
	module, mockState := newTestModule(t)

	mockState.EXPECT().GetProject("github.com/acme/app").Return(testProject(), nil)
	mockState.EXPECT().GetWorkspace("github.com/acme/app", "fix-login").
		Return(&state.Workspace{Path: "/worktrees/github.com/acme/app/fix-login"}, nil)

	hc := dispatch.NewHookContext(dispatch.Intent{
		Type: intents.WorkspaceRemove,
		Payload: intents.WorkspaceRemovePayload{
			ProjectID:     "github.com/acme/app",
			WorkspaceName: "fix-login",
		},
	})

	result, err := module.removalLookup().Execute(context.Background(), hc)
	require.NoError(t, err)
	assert.Equal(t, "/worktrees/github.com/acme/app/fix-login", result.Fields[intents.FieldWorkspacePath])
}

func TestRemovalLookup_MissingWorkspaceAbortsWithoutForce(t *testing.T) {
	module, mockState := newTestModule(t)

	mockState.EXPECT().GetProject("github.com/acme/app").Return(testProject(), nil)
	mockState.EXPECT().GetWorkspace("github.com/acme/app", "ghost").
		Return(nil, state.ErrWorkspaceNotFound)

	hc := dispatch.NewHookContext(dispatch.Intent{
		Type: intents.WorkspaceRemove,
		Payload: intents.WorkspaceRemovePayload{
			ProjectID:     "github.com/acme/app",
			WorkspaceName: "ghost",
		},
	})

	_, err := module.removalLookup().Execute(context.Background(), hc)
	assert.ErrorIs(t, err, state.ErrWorkspaceNotFound)
	assert.Empty(t, hc.StepErrors())
}

func TestRemovalLookup_MissingWorkspaceToleratedWithForce(t *testing.T) {
	module, mockState := newTestModule(t)

	mockState.EXPECT().GetProject("github.com/acme/app").Return(testProject(), nil)
	mockState.EXPECT().GetWorkspace("github.com/acme/app", "ghost").
		Return(nil, state.ErrWorkspaceNotFound)

	hc := dispatch.NewHookContext(dispatch.Intent{
		Type: intents.WorkspaceRemove,
		Payload: intents.WorkspaceRemovePayload{
			ProjectID:     "github.com/acme/app",
			WorkspaceName: "ghost",
			Force:         true,
		},
	})

	result, err := module.removalLookup().Execute(context.Background(), hc)
	require.NoError(t, err)

	// The project fields are still contributed; only the workspace lookup
	// was tolerated.
	assert.Contains(t, result.Fields, intents.FieldProjectPath)
	assert.NotContains(t, result.Fields, intents.FieldWorkspacePath)
	require.Len(t, hc.StepErrors(), 1)
	assert.ErrorIs(t, hc.StepErrors()[0].Err, state.ErrWorkspaceNotFound)
}

func TestWorkspaceForget_MissingRecordIsNoop(t *testing.T) {
	module, mockState := newTestModule(t)

	mockState.EXPECT().RemoveWorkspace("github.com/acme/app", "ghost").
		Return(state.ErrWorkspaceNotFound)

	hc := dispatch.NewHookContext(dispatch.Intent{
		Type: intents.WorkspaceRemove,
		Payload: intents.WorkspaceRemovePayload{
			ProjectID:     "github.com/acme/app",
			WorkspaceName: "ghost",
		},
	})

	_, err := module.workspaceForget().Execute(context.Background(), hc)
	assert.NoError(t, err)
}

func TestActiveProjectLookupAndRecord(t *testing.T) {
	module, mockState := newTestModule(t)

	gomock.InOrder(
		mockState.EXPECT().GetActiveProject().Return("", nil),
		mockState.EXPECT().SetActiveProject("github.com/acme/app").Return(nil),
		mockState.EXPECT().GetActiveProject().Return("github.com/acme/app", nil),
	)

	hc := dispatch.NewHookContext(dispatch.Intent{
		Type:    intents.AppStart,
		Payload: intents.AppStartPayload{},
	})
	result, err := module.activeProjectLookup().Execute(context.Background(), hc)
	require.NoError(t, err)
	assert.Equal(t, "", result.Fields[intents.FieldActiveProject])

	openHC := dispatch.NewHookContext(dispatch.Intent{
		Type:    intents.ProjectOpen,
		Payload: intents.ProjectOpenPayload{ProjectID: "github.com/acme/app"},
	})
	_, err = module.activeProjectRecord().Execute(context.Background(), openHC)
	require.NoError(t, err)

	result, err = module.activeProjectLookup().Execute(context.Background(), hc)
	require.NoError(t, err)
	assert.Equal(t, "github.com/acme/app", result.Fields[intents.FieldActiveProject])
}
