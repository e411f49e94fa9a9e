// Package worktreemod contributes the Git side of the pipelines: cloning
// project repositories, planning and provisioning workspace worktrees, and
// tearing worktrees down on removal.
package worktreemod

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/lerenn/workdeck/pkg/config"
	"github.com/lerenn/workdeck/pkg/dispatch"
	"github.com/lerenn/workdeck/pkg/fs"
	"github.com/lerenn/workdeck/pkg/git"
	"github.com/lerenn/workdeck/pkg/intents"
	"github.com/lerenn/workdeck/pkg/logger"
	"github.com/lerenn/workdeck/pkg/state"
)

const moduleName = "worktree"

// Params contains parameters for creating the worktree module.
type Params struct {
	Git    git.Git
	FS     fs.FS
	Config config.Config
	Logger logger.Logger
}

// Module contributes clone, worktree provisioning and worktree removal
// handlers to the pipelines.
type Module struct {
	git    git.Git
	fs     fs.FS
	config config.Config
	logger logger.Logger
}

// New creates the worktree module.
func New(params Params) *Module {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &Module{
		git:    params.Git,
		fs:     params.FS,
		config: params.Config,
		logger: log,
	}
}

// Module returns the dispatch contributions.
func (m *Module) Module() dispatch.Module {
	return dispatch.Module{
		Name: moduleName,
		Hooks: []dispatch.HookRegistration{
			{Intent: intents.ProjectClone, Point: intents.PointProvision, Handler: m.repositoryClone()},
			{Intent: intents.WorkspaceCreate, Point: intents.PointPrepare, Handler: m.worktreePlan()},
			{Intent: intents.WorkspaceCreate, Point: intents.PointProvision, Handler: m.worktreeProvision()},
			{Intent: intents.WorkspaceRemove, Point: intents.PointCleanup, Handler: m.worktreeRemove()},
		},
	}
}

// repositoryClone clones the validated repository into the project path.
func (m *Module) repositoryClone() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "repository-clone",
		Fn: func(_ context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
			payload, ok := hc.Payload().(intents.ProjectClonePayload)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: project:clone", ErrUnexpectedPayload)
			}
			projectPath, ok := hc.GetString(intents.FieldProjectPath)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: %s", ErrFieldMissing, intents.FieldProjectPath)
			}

			exists, err := m.fs.Exists(projectPath)
			if err != nil {
				return dispatch.HandlerResult{}, fmt.Errorf("failed to check project path: %w", err)
			}
			if exists {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: %s", ErrProjectPathTaken, projectPath)
			}

			if err := m.fs.MkdirAll(filepath.Dir(projectPath), 0755); err != nil {
				return dispatch.HandlerResult{}, fmt.Errorf("failed to create projects directory: %w", err)
			}

			m.logger.Logf("cloning %s into %s", payload.RepositoryURL, projectPath)
			err = m.git.Clone(git.CloneParams{
				RepoURL:    payload.RepositoryURL,
				TargetPath: projectPath,
			})
			if err != nil {
				return dispatch.HandlerResult{}, fmt.Errorf("failed to clone repository: %w", err)
			}
			return dispatch.HandlerResult{}, nil
		},
	}
}

// worktreePlan derives the branch names and the worktree path of the
// workspace being created. The branch carries the workspace name; the base
// defaults to the project's default branch.
func (m *Module) worktreePlan() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "worktree-plan",
		Fn: func(_ context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
			payload, ok := hc.Payload().(intents.WorkspaceCreatePayload)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: workspace:create", ErrUnexpectedPayload)
			}

			project, ok := projectField(hc)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: %s", ErrFieldMissing, intents.FieldProject)
			}

			baseBranch := payload.BaseBranch
			if baseBranch == "" {
				baseBranch = project.DefaultBranch
			}

			workspacePath := filepath.Join(m.config.WorktreesDir, payload.ProjectID, payload.WorkspaceName)

			return dispatch.HandlerResult{Fields: map[string]any{
				intents.FieldBranch:        payload.WorkspaceName,
				intents.FieldBaseBranch:    baseBranch,
				intents.FieldWorkspacePath: workspacePath,
			}}, nil
		},
	}
}

// worktreeProvision creates the workspace branch, if missing, and adds the
// worktree. An existing branch is reused so a workspace can be recreated on
// a branch that survived an earlier removal.
func (m *Module) worktreeProvision() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "worktree-provision",
		Fn: func(_ context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
			projectPath, ok := hc.GetString(intents.FieldProjectPath)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: %s", ErrFieldMissing, intents.FieldProjectPath)
			}
			workspacePath, ok := hc.GetString(intents.FieldWorkspacePath)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: %s", ErrFieldMissing, intents.FieldWorkspacePath)
			}
			branch, ok := hc.GetString(intents.FieldBranch)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: %s", ErrFieldMissing, intents.FieldBranch)
			}
			baseBranch, ok := hc.GetString(intents.FieldBaseBranch)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: %s", ErrFieldMissing, intents.FieldBaseBranch)
			}

			branchExists, err := m.git.BranchExists(projectPath, branch)
			if err != nil {
				return dispatch.HandlerResult{}, fmt.Errorf("failed to check branch existence: %w", err)
			}
			if !branchExists {
				err := m.git.CreateBranchFrom(git.CreateBranchFromParams{
					RepoPath:   projectPath,
					NewBranch:  branch,
					FromBranch: baseBranch,
				})
				if err != nil {
					return dispatch.HandlerResult{}, fmt.Errorf("failed to create branch: %w", err)
				}
			}

			if err := m.fs.MkdirAll(filepath.Dir(workspacePath), 0755); err != nil {
				return dispatch.HandlerResult{}, fmt.Errorf("failed to create worktrees directory: %w", err)
			}

			m.logger.Logf("provisioning worktree %s on branch %s", workspacePath, branch)
			if err := m.git.CreateWorktree(projectPath, workspacePath, branch); err != nil {
				return dispatch.HandlerResult{}, fmt.Errorf("failed to create worktree: %w", err)
			}
			return dispatch.HandlerResult{}, nil
		},
	}
}

// worktreeRemove detaches the worktree from Git and deletes its directory.
// Both steps are tolerated under force; the branch itself is kept so the
// work survives the workspace.
func (m *Module) worktreeRemove() dispatch.Handler {
	return dispatch.HandlerFunc{
		HandlerName: "worktree-remove",
		Fn: func(_ context.Context, hc *dispatch.HookContext) (dispatch.HandlerResult, error) {
			payload, ok := hc.Payload().(intents.WorkspaceRemovePayload)
			if !ok {
				return dispatch.HandlerResult{}, fmt.Errorf("%w: workspace:remove", ErrUnexpectedPayload)
			}

			workspacePath, ok := hc.GetString(intents.FieldWorkspacePath)
			if !ok {
				// The removal lookup could not resolve the record; nothing to
				// detach.
				return dispatch.HandlerResult{}, nil
			}
			projectPath, ok := hc.GetString(intents.FieldProjectPath)
			if !ok {
				return dispatch.HandlerResult{}, nil
			}

			if err := m.git.RemoveWorktree(projectPath, workspacePath, payload.Force); err != nil {
				if tolerated := dispatch.Tolerated(hc, intents.PointCleanup, "worktree-remove", err); tolerated != nil {
					return dispatch.HandlerResult{}, fmt.Errorf("failed to remove worktree: %w", tolerated)
				}
			}

			if err := m.fs.RemoveAll(workspacePath); err != nil {
				if tolerated := dispatch.Tolerated(hc, intents.PointCleanup, "worktree-remove", err); tolerated != nil {
					return dispatch.HandlerResult{}, fmt.Errorf("failed to delete worktree directory: %w", tolerated)
				}
			}

			return dispatch.HandlerResult{}, nil
		},
	}
}

func projectField(hc *dispatch.HookContext) (*state.Project, bool) {
	value, ok := hc.Get(intents.FieldProject)
	if !ok {
		return nil, false
	}
	project, ok := value.(*state.Project)
	return project, ok
}
