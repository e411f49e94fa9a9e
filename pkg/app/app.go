// Package app assembles the workdeck application: it wires the feature
// modules into the dispatch registry, registers the operations, and exposes
// a facade that turns method calls into dispatched intents.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/lerenn/workdeck/pkg/config"
	"github.com/lerenn/workdeck/pkg/dependencies"
	"github.com/lerenn/workdeck/pkg/dispatch"
	"github.com/lerenn/workdeck/pkg/intents"
	"github.com/lerenn/workdeck/pkg/logger"
	"github.com/lerenn/workdeck/pkg/modules/agentmod"
	"github.com/lerenn/workdeck/pkg/modules/bridgemod"
	"github.com/lerenn/workdeck/pkg/modules/forgemod"
	"github.com/lerenn/workdeck/pkg/modules/guardsmod"
	"github.com/lerenn/workdeck/pkg/modules/indexmod"
	"github.com/lerenn/workdeck/pkg/modules/persistmod"
	"github.com/lerenn/workdeck/pkg/modules/viewmod"
	"github.com/lerenn/workdeck/pkg/modules/worktreemod"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=app.go -destination=mocks/app.gen.go -package=mocks

// CreateWorkspaceParams contains parameters for CreateWorkspace.
type CreateWorkspaceParams struct {
	ProjectID     string
	WorkspaceName string
	// BaseBranch overrides the project default branch as the fork point,
	// empty for the default.
	BaseBranch string
}

// App is the facade over the dispatch engine. Synchronous methods block
// until the operation's pipeline completes; Stop and RemoveWorkspace are
// fire-and-forget and return once the dispatch is admitted, leaving the
// outcome to the returned handle and the domain events.
type App interface {
	// Start runs the application start sequence and restores the last
	// session.
	Start(ctx context.Context, retry bool) (intents.AppStartedEvent, error)
	// Stop tears the application down. With force, failing steps are
	// reported instead of aborting the remaining teardown.
	Stop(ctx context.Context, force bool) (*dispatch.Handle, error)
	// OpenProject opens a tracked project and makes it active.
	OpenProject(ctx context.Context, projectID string) (intents.ProjectOpenedEvent, error)
	// CloseProject closes the active views and agents of a project.
	CloseProject(ctx context.Context, projectID string) error
	// CloneProject clones a repository and registers it as a project.
	CloneProject(ctx context.Context, repositoryURL string, force bool) (intents.ProjectClonedEvent, error)
	// CreateWorkspace provisions a new workspace on its own branch and
	// worktree.
	CreateWorkspace(ctx context.Context, params CreateWorkspaceParams) (intents.WorkspaceCreatedEvent, error)
	// OpenWorkspace opens a view on a workspace, starting its agent if
	// needed.
	OpenWorkspace(ctx context.Context, projectID, workspaceName string) (intents.WorkspaceOpenedEvent, error)
	// SwitchWorkspace moves focus to another workspace of the project.
	SwitchWorkspace(ctx context.Context, projectID, workspaceName string) error
	// RemoveWorkspace removes a workspace, its worktree and its agent. With
	// force, failing teardown steps are reported instead of aborting.
	RemoveWorkspace(ctx context.Context, projectID, workspaceName string, force bool) (*dispatch.Handle, error)
	// Dispatcher exposes the underlying dispatcher for transports that
	// build intents directly.
	Dispatcher() dispatch.Dispatcher
}

// Params contains parameters for creating the App.
type Params struct {
	Dependencies *dependencies.Dependencies
	Config       config.Config
}

type realApp struct {
	deps       *dependencies.Dependencies
	config     config.Config
	logger     logger.Logger
	index      *indexmod.Module
	dispatcher dispatch.Dispatcher
}

// New creates the App: it validates the dependencies, wires the feature
// modules and registers the operations. Wiring order is a contract: the
// index module precedes the view module so titles render from fresh index
// state, the view module precedes the bridge module so the readiness wait
// starts after the view exists, and the persistence module precedes the
// agent module so setup lookups happen before agents are touched.
func New(params Params) (App, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dependencies: %w", err)
	}

	a := &realApp{
		deps:   deps,
		config: params.Config,
		logger: deps.Logger,
		index:  indexmod.New(deps.StateManager),
	}

	registry, err := dispatch.Wire(
		guardsmod.New().Module(),
		forgemod.New(forgemod.Params{
			Forge:  deps.Forge,
			Git:    deps.Git,
			Config: params.Config,
			Logger: deps.Logger,
		}).Module(),
		worktreemod.New(worktreemod.Params{
			Git:    deps.Git,
			FS:     deps.FS,
			Config: params.Config,
			Logger: deps.Logger,
		}).Module(),
		a.index.Module(),
		viewmod.New(viewmod.Params{
			Views:      deps.Views,
			Index:      a.index,
			EditorPort: params.Config.EditorPort,
			Logger:     deps.Logger,
		}).Module(),
		bridgemod.New(bridgemod.Params{
			Bridge:  deps.Bridge,
			State:   deps.StateManager,
			Timeout: time.Duration(params.Config.BridgeTimeout),
			Logger:  deps.Logger,
		}).Module(),
		persistmod.New(persistmod.Params{
			State:  deps.StateManager,
			Logger: deps.Logger,
		}).Module(),
		agentmod.New(agentmod.Params{
			Supervisor: deps.Supervisor,
			State:      deps.StateManager,
			Config:     params.Config,
			Logger:     deps.Logger,
		}).Module(),
		a.lifecycleModule(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to wire modules: %w", err)
	}

	a.dispatcher = dispatch.NewDispatcher(dispatch.DispatcherParams{
		Registry: registry,
		Logger:   deps.Logger,
	})

	for _, op := range operations() {
		if err := a.dispatcher.Register(op); err != nil {
			return nil, fmt.Errorf("failed to register operation: %w", err)
		}
	}

	return a, nil
}

// Dispatcher exposes the underlying dispatcher.
func (a *realApp) Dispatcher() dispatch.Dispatcher {
	return a.dispatcher
}
