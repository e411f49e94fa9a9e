// Package dependencies provides a centralized dependency container for the
// workdeck application. This package follows Go idioms for dependency
// injection by grouping related dependencies together and providing a
// fluent API for configuration.
package dependencies

import (
	"errors"

	"github.com/lerenn/workdeck/pkg/config"
	"github.com/lerenn/workdeck/pkg/extbridge"
	"github.com/lerenn/workdeck/pkg/forge"
	"github.com/lerenn/workdeck/pkg/fs"
	"github.com/lerenn/workdeck/pkg/git"
	"github.com/lerenn/workdeck/pkg/logger"
	"github.com/lerenn/workdeck/pkg/proc"
	"github.com/lerenn/workdeck/pkg/state"
	"github.com/lerenn/workdeck/pkg/views"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing           = errors.New("fs dependency is required but not set")
	ErrGitMissing          = errors.New("git dependency is required but not set")
	ErrConfigMissing       = errors.New("config dependency is required but not set")
	ErrStateManagerMissing = errors.New("state manager dependency is required but not set")
	ErrLoggerMissing       = errors.New("logger dependency is required but not set")
	ErrForgeMissing        = errors.New("forge manager dependency is required but not set")
	ErrSupervisorMissing   = errors.New("process supervisor dependency is required but not set")
	ErrViewsMissing        = errors.New("view service dependency is required but not set")
	ErrBridgeMissing       = errors.New("extension bridge dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
// This follows the Go idiom of grouping related data together.
type Dependencies struct {
	FS           fs.FS
	Git          git.Git
	Config       config.Manager
	StateManager state.Manager
	Logger       logger.Logger
	Forge        forge.ManagerInterface
	Supervisor   proc.Supervisor
	Views        views.Service
	Bridge       extbridge.Bridge
}

// New creates a new Dependencies instance with sensible defaults.
// This follows Go's convention of New* functions for constructors.
func New() *Dependencies {
	log := logger.NewNoopLogger()
	return &Dependencies{
		FS:         fs.NewFS(),
		Git:        git.NewGit(),
		Logger:     log,
		Forge:      forge.NewManager(log),
		Supervisor: proc.NewSupervisor(log),
		Views:      views.NewHeadlessService(log),
		// Note: Config, StateManager and Bridge are intentionally left nil
		// as they require the loaded configuration and are set via With*
		// methods once it is available.
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithStateManager sets the state manager and returns the instance for chaining.
func (d *Dependencies) WithStateManager(sm state.Manager) *Dependencies {
	d.StateManager = sm
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithForge sets the forge manager and returns the instance for chaining.
func (d *Dependencies) WithForge(forge forge.ManagerInterface) *Dependencies {
	d.Forge = forge
	return d
}

// WithSupervisor sets the process supervisor and returns the instance for chaining.
func (d *Dependencies) WithSupervisor(supervisor proc.Supervisor) *Dependencies {
	d.Supervisor = supervisor
	return d
}

// WithViews sets the view service and returns the instance for chaining.
func (d *Dependencies) WithViews(views views.Service) *Dependencies {
	d.Views = views
	return d
}

// WithBridge sets the extension bridge and returns the instance for chaining.
func (d *Dependencies) WithBridge(bridge extbridge.Bridge) *Dependencies {
	d.Bridge = bridge
	return d
}

// Validate checks that every required dependency is set.
func (d *Dependencies) Validate() error {
	if d.FS == nil {
		return ErrFSMissing
	}
	if d.Git == nil {
		return ErrGitMissing
	}
	if d.Config == nil {
		return ErrConfigMissing
	}
	if d.StateManager == nil {
		return ErrStateManagerMissing
	}
	if d.Logger == nil {
		return ErrLoggerMissing
	}
	if d.Forge == nil {
		return ErrForgeMissing
	}
	if d.Supervisor == nil {
		return ErrSupervisorMissing
	}
	if d.Views == nil {
		return ErrViewsMissing
	}
	if d.Bridge == nil {
		return ErrBridgeMissing
	}
	return nil
}
