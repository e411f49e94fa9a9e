package api

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthzResponse is the body of GET /healthz.
type HealthzResponse struct {
	Status string `json:"status"`
}

// AppStartRequest is the body of POST /app/start.
type AppStartRequest struct {
	Retry bool `json:"retry,omitempty"`
}

// AppStopRequest is the body of POST /app/stop.
type AppStopRequest struct {
	Force bool `json:"force,omitempty"`
}

// ProjectRequest identifies a project for open and close.
type ProjectRequest struct {
	ProjectID string `json:"project_id"`
}

// ProjectCloneRequest is the body of POST /projects/clone.
type ProjectCloneRequest struct {
	RepositoryURL string `json:"repository_url"`
	Force         bool   `json:"force,omitempty"`
}

// WorkspaceRequest identifies a workspace for open and switch.
type WorkspaceRequest struct {
	ProjectID     string `json:"project_id"`
	WorkspaceName string `json:"workspace_name"`
}

// WorkspaceCreateRequest is the body of POST /workspaces/create.
type WorkspaceCreateRequest struct {
	ProjectID     string `json:"project_id"`
	WorkspaceName string `json:"workspace_name"`
	BaseBranch    string `json:"base_branch,omitempty"`
}

// WorkspaceRemoveRequest is the body of POST /workspaces/remove.
type WorkspaceRemoveRequest struct {
	ProjectID     string `json:"project_id"`
	WorkspaceName string `json:"workspace_name"`
	Force         bool   `json:"force,omitempty"`
}

// AcceptedResponse is the body of 202 responses for fire-and-forget
// operations; the outcome surfaces through the domain events.
type AcceptedResponse struct {
	Accepted bool `json:"accepted"`
}

// AppStartedResponse is the body of POST /app/start.
type AppStartedResponse struct {
	ProjectID string `json:"project_id,omitempty"`
}

// ProjectOpenedResponse is the body of POST /projects/open.
type ProjectOpenedResponse struct {
	ProjectID       string `json:"project_id"`
	Path            string `json:"path"`
	ActiveWorkspace string `json:"active_workspace,omitempty"`
}

// ProjectClonedResponse is the body of POST /projects/clone.
type ProjectClonedResponse struct {
	ProjectID     string `json:"project_id"`
	Path          string `json:"path"`
	DefaultBranch string `json:"default_branch"`
}

// WorkspaceCreatedResponse is the body of POST /workspaces/create.
type WorkspaceCreatedResponse struct {
	ProjectID     string `json:"project_id"`
	WorkspaceName string `json:"workspace_name"`
	WorkspacePath string `json:"workspace_path"`
	Branch        string `json:"branch"`
}

// WorkspaceOpenedResponse is the body of POST /workspaces/open.
type WorkspaceOpenedResponse struct {
	ProjectID     string `json:"project_id"`
	WorkspaceName string `json:"workspace_name"`
	URL           string `json:"url"`
}
