package intents

// AppStartPayload is the payload of AppStart.
type AppStartPayload struct {
	// Retry marks a restart attempt after a failed start.
	Retry bool
}

// IsRetry reports whether this dispatch retries a failed start.
func (p AppStartPayload) IsRetry() bool {
	return p.Retry
}

// AppStopPayload is the payload of AppStop.
type AppStopPayload struct {
	// Force makes teardown steps report failures instead of aborting.
	Force bool
}

// ForceRequested reports whether best-effort semantics were requested.
func (p AppStopPayload) ForceRequested() bool {
	return p.Force
}

// ProjectOpenPayload is the payload of ProjectOpen.
type ProjectOpenPayload struct {
	ProjectID string
}

// ProjectClosePayload is the payload of ProjectClose.
type ProjectClosePayload struct {
	ProjectID string
}

// ProjectClonePayload is the payload of ProjectClone.
type ProjectClonePayload struct {
	// RepositoryURL is the remote to clone, normalized by the clone
	// operation's validate hook before it becomes the project identifier.
	RepositoryURL string
	// Force admits a duplicate in-flight clone of the same repository.
	Force bool
}

// ForceRequested reports whether best-effort semantics were requested.
func (p ProjectClonePayload) ForceRequested() bool {
	return p.Force
}

// WorkspaceCreatePayload is the payload of WorkspaceCreate.
type WorkspaceCreatePayload struct {
	ProjectID     string
	WorkspaceName string
	// BaseBranch overrides the project default branch as the branch to
	// fork from, empty for the default.
	BaseBranch string
}

// WorkspaceOpenPayload is the payload of WorkspaceOpen.
type WorkspaceOpenPayload struct {
	ProjectID     string
	WorkspaceName string
}

// WorkspaceSwitchPayload is the payload of WorkspaceSwitch.
type WorkspaceSwitchPayload struct {
	ProjectID     string
	WorkspaceName string
}

// WorkspaceRemovePayload is the payload of WorkspaceRemove.
type WorkspaceRemovePayload struct {
	ProjectID     string
	WorkspaceName string
	// Force makes teardown steps report failures instead of aborting, and
	// admits a duplicate in-flight removal of the same workspace.
	Force bool
}

// ForceRequested reports whether best-effort semantics were requested.
func (p WorkspaceRemovePayload) ForceRequested() bool {
	return p.Force
}
