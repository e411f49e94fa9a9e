package intents

// AppStartedEvent is the payload of EventAppStarted.
type AppStartedEvent struct {
	// ProjectID is the reopened project, empty when none was persisted.
	ProjectID string
}

// AppStoppedEvent is the payload of EventAppStopped.
type AppStoppedEvent struct {
	// StepErrors carries the failures tolerated during a forced stop.
	StepErrors []string
}

// ProjectOpenedEvent is the payload of EventProjectOpened.
type ProjectOpenedEvent struct {
	ProjectID string
	Path      string
	// ActiveWorkspace is the workspace restored as focused, empty if none.
	ActiveWorkspace string
}

// ProjectClosedEvent is the payload of EventProjectClosed.
type ProjectClosedEvent struct {
	ProjectID string
}

// ProjectClonedEvent is the payload of EventProjectCloned.
type ProjectClonedEvent struct {
	ProjectID     string
	Path          string
	DefaultBranch string
	// RepositoryURL is the URL the clone was requested with, before
	// normalization.
	RepositoryURL string
}

// WorkspaceCreatedEvent is the payload of EventWorkspaceCreated.
type WorkspaceCreatedEvent struct {
	ProjectID     string
	WorkspaceName string
	WorkspacePath string
	Branch        string
}

// WorkspaceOpenedEvent is the payload of EventWorkspaceOpened.
type WorkspaceOpenedEvent struct {
	ProjectID     string
	WorkspaceName string
	URL           string
}

// WorkspaceSwitchedEvent is the payload of EventWorkspaceSwitched.
type WorkspaceSwitchedEvent struct {
	ProjectID     string
	WorkspaceName string
}

// WorkspaceRemovedEvent is the payload of EventWorkspaceRemoved.
type WorkspaceRemovedEvent struct {
	ProjectID     string
	WorkspaceName string
	// StepErrors carries the failures tolerated during a forced removal;
	// empty means every teardown step succeeded.
	StepErrors []string
}

// WorkspaceRemoveFailedEvent is the payload of EventWorkspaceRemoveFailed.
type WorkspaceRemoveFailedEvent struct {
	ProjectID     string
	WorkspaceName string
	// Err renders the failure that aborted the removal pipeline.
	Err string
}
