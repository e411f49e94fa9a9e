//go:build unit

package worktreemod

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/lerenn/workdeck/pkg/config"
	"github.com/lerenn/workdeck/pkg/dispatch"
	fsmocks "github.com/lerenn/workdeck/pkg/fs/mocks"
	"github.com/lerenn/workdeck/pkg/git"
	gitmocks "github.com/lerenn/workdeck/pkg/git/mocks"
	"github.com/lerenn/workdeck/pkg/intents"
	"github.com/lerenn/workdeck/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestModule(t *testing.T) (*Module, *gitmocks.MockGit, *fsmocks.MockFS) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockGit := gitmocks.NewMockGit(ctrl)
	mockFS := fsmocks.NewMockFS(ctrl)
	module := New(Params{
		Git:    mockGit,
		FS:     mockFS,
		Config: config.Config{WorktreesDir: "/worktrees"},
	})
	return module, mockGit, mockFS
}

func TestWorktreePlan(t *testing.T) {
	module, _, _ := newTestModule(t)

	hc := dispatch.NewHookContext(dispatch.Intent{
		Type: intents.WorkspaceCreate,
		Payload: intents.WorkspaceCreatePayload{
			ProjectID:     "github.com/acme/app",
			WorkspaceName: "fix-login",
		},
	})
	require.NoError(t, hc.Set(intents.FieldProject, &state.Project{DefaultBranch: "main"}))

	result, err := module.worktreePlan().Execute(context.Background(), hc)
	require.NoError(t, err)
	assert.Equal(t, "fix-login", result.Fields[intents.FieldBranch])
	assert.Equal(t, "main", result.Fields[intents.FieldBaseBranch])
	assert.Equal(t, "/worktrees/github.com/acme/app/fix-login", result.Fields[intents.FieldWorkspacePath])
}

func TestWorktreePlan_BaseBranchOverride(t *testing.T) {
	module, _, _ := newTestModule(t)

	hc := dispatch.NewHookContext(dispatch.Intent{
		Type: intents.WorkspaceCreate,
		Payload: intents.WorkspaceCreatePayload{
			ProjectID:     "github.com/acme/app",
			WorkspaceName: "hotfix",
			BaseBranch:    "release-1.2",
		},
	})
	require.NoError(t, hc.Set(intents.FieldProject, &state.Project{DefaultBranch: "main"}))

	result, err := module.worktreePlan().Execute(context.Background(), hc)
	require.NoError(t, err)
	assert.Equal(t, "release-1.2", result.Fields[intents.FieldBaseBranch])
}

func TestWorktreeProvision_CreatesBranchWhenMissing(t *testing.T) {
	module, mockGit, mockFS := newTestModule(t)

	mockGit.EXPECT().BranchExists("/projects/app", "fix-login").Return(false, nil)
	mockGit.EXPECT().CreateBranchFrom(git.CreateBranchFromParams{
		RepoPath:   "/projects/app",
		NewBranch:  "fix-login",
		FromBranch: "main",
	}).Return(nil)
	mockFS.EXPECT().MkdirAll("/worktrees/app", os.FileMode(0755)).Return(nil)
	mockGit.EXPECT().CreateWorktree("/projects/app", "/worktrees/app/fix-login", "fix-login").Return(nil)

	hc := dispatch.NewHookContext(dispatch.Intent{Type: intents.WorkspaceCreate})
	require.NoError(t, hc.Set(intents.FieldProjectPath, "/projects/app"))
	require.NoError(t, hc.Set(intents.FieldWorkspacePath, "/worktrees/app/fix-login"))
	require.NoError(t, hc.Set(intents.FieldBranch, "fix-login"))
	require.NoError(t, hc.Set(intents.FieldBaseBranch, "main"))

	_, err := module.worktreeProvision().Execute(context.Background(), hc)
	require.NoError(t, err)
}

func TestWorktreeProvision_ReusesExistingBranch(t *testing.T) {
	module, mockGit, mockFS := newTestModule(t)

	// No CreateBranchFrom expectation: an existing branch must be reused.
	mockGit.EXPECT().BranchExists("/projects/app", "fix-login").Return(true, nil)
	mockFS.EXPECT().MkdirAll("/worktrees/app", os.FileMode(0755)).Return(nil)
	mockGit.EXPECT().CreateWorktree("/projects/app", "/worktrees/app/fix-login", "fix-login").Return(nil)

	hc := dispatch.NewHookContext(dispatch.Intent{Type: intents.WorkspaceCreate})
	require.NoError(t, hc.Set(intents.FieldProjectPath, "/projects/app"))
	require.NoError(t, hc.Set(intents.FieldWorkspacePath, "/worktrees/app/fix-login"))
	require.NoError(t, hc.Set(intents.FieldBranch, "fix-login"))
	require.NoError(t, hc.Set(intents.FieldBaseBranch, "main"))

	_, err := module.worktreeProvision().Execute(context.Background(), hc)
	require.NoError(t, err)
}

func TestRepositoryClone(t *testing.T) {
	module, mockGit, mockFS := newTestModule(t)

	mockFS.EXPECT().Exists("/projects/github.com/acme/app").Return(false, nil)
	mockFS.EXPECT().MkdirAll("/projects/github.com/acme", os.FileMode(0755)).Return(nil)
	mockGit.EXPECT().Clone(git.CloneParams{
		RepoURL:    "https://github.com/acme/app",
		TargetPath: "/projects/github.com/acme/app",
	}).Return(nil)

	hc := dispatch.NewHookContext(dispatch.Intent{
		Type:    intents.ProjectClone,
		Payload: intents.ProjectClonePayload{RepositoryURL: "https://github.com/acme/app"},
	})
	require.NoError(t, hc.Set(intents.FieldProjectPath, "/projects/github.com/acme/app"))

	_, err := module.repositoryClone().Execute(context.Background(), hc)
	require.NoError(t, err)
}

func TestRepositoryClone_RejectsExistingPath(t *testing.T) {
	module, _, mockFS := newTestModule(t)

	mockFS.EXPECT().Exists("/projects/github.com/acme/app").Return(true, nil)

	hc := dispatch.NewHookContext(dispatch.Intent{
		Type:    intents.ProjectClone,
		Payload: intents.ProjectClonePayload{RepositoryURL: "https://github.com/acme/app"},
	})
	require.NoError(t, hc.Set(intents.FieldProjectPath, "/projects/github.com/acme/app"))

	_, err := module.repositoryClone().Execute(context.Background(), hc)
	assert.ErrorIs(t, err, ErrProjectPathTaken)
}

func TestWorktreeRemove(t *testing.T) {
	module, mockGit, mockFS := newTestModule(t)

	mockGit.EXPECT().RemoveWorktree("/projects/app", "/worktrees/app/fix-login", false).Return(nil)
	mockFS.EXPECT().RemoveAll("/worktrees/app/fix-login").Return(nil)

	hc := dispatch.NewHookContext(dispatch.Intent{
		Type:    intents.WorkspaceRemove,
		Payload: intents.WorkspaceRemovePayload{ProjectID: "app", WorkspaceName: "fix-login"},
	})
	require.NoError(t, hc.Set(intents.FieldProjectPath, "/projects/app"))
	require.NoError(t, hc.Set(intents.FieldWorkspacePath, "/worktrees/app/fix-login"))

	_, err := module.worktreeRemove().Execute(context.Background(), hc)
	require.NoError(t, err)
}

func TestWorktreeRemove_SkipsWhenLookupFailed(t *testing.T) {
	module, _, _ := newTestModule(t)

	// No expectations: a missing record means nothing to detach.
	hc := dispatch.NewHookContext(dispatch.Intent{
		Type:    intents.WorkspaceRemove,
		Payload: intents.WorkspaceRemovePayload{ProjectID: "app", WorkspaceName: "ghost", Force: true},
	})

	_, err := module.worktreeRemove().Execute(context.Background(), hc)
	require.NoError(t, err)
}

func TestWorktreeRemove_ErrorToleratedWithForce(t *testing.T) {
	module, mockGit, mockFS := newTestModule(t)

	removeErr := errors.New("worktree locked")
	mockGit.EXPECT().RemoveWorktree("/projects/app", "/worktrees/app/fix-login", true).Return(removeErr)
	mockFS.EXPECT().RemoveAll("/worktrees/app/fix-login").Return(nil)

	hc := dispatch.NewHookContext(dispatch.Intent{
		Type:    intents.WorkspaceRemove,
		Payload: intents.WorkspaceRemovePayload{ProjectID: "app", WorkspaceName: "fix-login", Force: true},
	})
	require.NoError(t, hc.Set(intents.FieldProjectPath, "/projects/app"))
	require.NoError(t, hc.Set(intents.FieldWorkspacePath, "/worktrees/app/fix-login"))

	_, err := module.worktreeRemove().Execute(context.Background(), hc)
	require.NoError(t, err)

	// The detach failure is recorded; directory deletion still ran.
	require.Len(t, hc.StepErrors(), 1)
	assert.ErrorIs(t, hc.StepErrors()[0].Err, removeErr)
}

func TestWorktreeRemove_ErrorAbortsWithoutForce(t *testing.T) {
	module, mockGit, _ := newTestModule(t)

	removeErr := errors.New("worktree locked")
	mockGit.EXPECT().RemoveWorktree("/projects/app", "/worktrees/app/fix-login", false).Return(removeErr)

	hc := dispatch.NewHookContext(dispatch.Intent{
		Type:    intents.WorkspaceRemove,
		Payload: intents.WorkspaceRemovePayload{ProjectID: "app", WorkspaceName: "fix-login"},
	})
	require.NoError(t, hc.Set(intents.FieldProjectPath, "/projects/app"))
	require.NoError(t, hc.Set(intents.FieldWorkspacePath, "/worktrees/app/fix-login"))

	_, err := module.worktreeRemove().Execute(context.Background(), hc)
	assert.ErrorIs(t, err, removeErr)
}
