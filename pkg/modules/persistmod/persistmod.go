// Package persistmod contributes the state-file side of every operation:
// record lookups during validation and setup, and record writes once the
// fallible steps of a pipeline have succeeded. It is the only module that
// writes the state file.
package persistmod

import (
	"github.com/lerenn/workdeck/pkg/dispatch"
	"github.com/lerenn/workdeck/pkg/intents"
	"github.com/lerenn/workdeck/pkg/logger"
	"github.com/lerenn/workdeck/pkg/state"
)

const moduleName = "persist"

// Params contains parameters for creating the persistence module.
type Params struct {
	State  state.Manager
	Logger logger.Logger
}

// Module contributes state lookups and record writes to the pipelines.
type Module struct {
	state  state.Manager
	logger logger.Logger
}

// New creates the persistence module.
func New(params Params) *Module {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &Module{
		state:  params.State,
		logger: log,
	}
}

// Module returns the dispatch contributions.
func (m *Module) Module() dispatch.Module {
	return dispatch.Module{
		Name: moduleName,
		Hooks: []dispatch.HookRegistration{
			{Intent: intents.AppStart, Point: intents.PointPrepare, Handler: m.activeProjectLookup()},

			{Intent: intents.ProjectOpen, Point: intents.PointValidate, Handler: m.projectLookup()},
			{Intent: intents.ProjectOpen, Point: intents.PointPrepare, Handler: m.activeProjectRecord()},
			{Intent: intents.ProjectClone, Point: intents.PointPersist, Handler: m.projectRecord()},

			{Intent: intents.WorkspaceCreate, Point: intents.PointValidate, Handler: m.workspaceUniqueness()},
			{Intent: intents.WorkspaceCreate, Point: intents.PointPersist, Handler: m.workspaceRecord()},
			{Intent: intents.WorkspaceOpen, Point: intents.PointSetup, Handler: m.openLookup()},
			{Intent: intents.WorkspaceOpen, Point: intents.PointFinalize, Handler: m.openRecord()},
			{Intent: intents.WorkspaceSwitch, Point: intents.PointValidate, Handler: m.switchLookup()},
			{Intent: intents.WorkspaceSwitch, Point: intents.PointFinalize, Handler: m.switchRecord()},
			{Intent: intents.WorkspaceRemove, Point: intents.PointTeardown, Handler: m.removalLookup()},
			{Intent: intents.WorkspaceRemove, Point: intents.PointPersist, Handler: m.workspaceForget()},
		},
	}
}
