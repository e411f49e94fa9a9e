// Package intents declares the intent types, hook points, event types and
// payloads shared by the operations and the feature modules that extend
// them.
package intents

import "github.com/lerenn/workdeck/pkg/dispatch"

// Intent types for the registered operations.
const (
	// Application lifecycle.
	AppStart dispatch.IntentType = "app:start"
	AppStop  dispatch.IntentType = "app:stop"

	// Project operations.
	ProjectOpen  dispatch.IntentType = "project:open"
	ProjectClose dispatch.IntentType = "project:close"
	ProjectClone dispatch.IntentType = "project:clone"

	// Workspace operations.
	WorkspaceCreate dispatch.IntentType = "workspace:create"
	WorkspaceOpen   dispatch.IntentType = "workspace:open"
	WorkspaceSwitch dispatch.IntentType = "workspace:switch"
	WorkspaceRemove dispatch.IntentType = "workspace:remove"
)

// Hook points used across operations. Each operation declares its own
// ordered subset.
const (
	PointValidate  dispatch.HookPoint = "validate"
	PointPrepare   dispatch.HookPoint = "prepare"
	PointProvision dispatch.HookPoint = "provision"
	PointServices  dispatch.HookPoint = "services"
	PointPersist   dispatch.HookPoint = "persist"
	PointSetup     dispatch.HookPoint = "setup"
	PointFinalize  dispatch.HookPoint = "finalize"
	PointTeardown  dispatch.HookPoint = "teardown"
	PointCleanup   dispatch.HookPoint = "cleanup"
)

// Domain event types published after completed dispatches.
const (
	EventAppStarted dispatch.EventType = "app:started"
	EventAppStopped dispatch.EventType = "app:stopped"

	EventProjectOpened dispatch.EventType = "project:opened"
	EventProjectClosed dispatch.EventType = "project:closed"
	EventProjectCloned dispatch.EventType = "project:cloned"

	EventWorkspaceCreated  dispatch.EventType = "workspace:created"
	EventWorkspaceOpened   dispatch.EventType = "workspace:opened"
	EventWorkspaceSwitched dispatch.EventType = "workspace:switched"
	EventWorkspaceRemoved  dispatch.EventType = "workspace:removed"

	// EventWorkspaceRemoveFailed announces a removal pipeline that aborted.
	// Removal is fire-and-forget, so this event is the only failure signal
	// callers of workspace:remove observe.
	EventWorkspaceRemoveFailed dispatch.EventType = "workspace:remove-failed"
)

// WorkspaceID builds the globally unique workspace identifier used for
// guard keys, socket names and view identity.
func WorkspaceID(projectID, workspaceName string) string {
	return projectID + "/" + workspaceName
}
