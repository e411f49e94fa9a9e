package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lerenn/workdeck/pkg/app"
	"github.com/lerenn/workdeck/pkg/dispatch"
	"github.com/lerenn/workdeck/pkg/state"
)

// handleHealthz handles GET /healthz.
func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, HealthzResponse{Status: "ok"})
}

// handleAppStart handles POST /app/start.
func (s *Server) handleAppStart(w http.ResponseWriter, r *http.Request) {
	var req AppStartRequest
	if !s.decode(w, r, &req) {
		return
	}

	started, err := s.app.Start(r.Context(), req.Retry)
	if err != nil {
		s.writeOperationError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, AppStartedResponse{ProjectID: started.ProjectID})
}

// handleAppStop handles POST /app/stop. The response is sent once the
// dispatch is admitted; teardown continues in the background, so it must
// not inherit the request cancellation.
func (s *Server) handleAppStop(w http.ResponseWriter, r *http.Request) {
	var req AppStopRequest
	if !s.decode(w, r, &req) {
		return
	}

	if _, err := s.app.Stop(context.WithoutCancel(r.Context()), req.Force); err != nil {
		s.writeOperationError(w, err)
		return
	}
	s.respondJSON(w, http.StatusAccepted, AcceptedResponse{Accepted: true})
}

// handleProjectOpen handles POST /projects/open.
func (s *Server) handleProjectOpen(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.ProjectID == "" {
		s.writeError(w, http.StatusBadRequest, "project_id is required")
		return
	}

	opened, err := s.app.OpenProject(r.Context(), req.ProjectID)
	if err != nil {
		s.writeOperationError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, ProjectOpenedResponse{
		ProjectID:       opened.ProjectID,
		Path:            opened.Path,
		ActiveWorkspace: opened.ActiveWorkspace,
	})
}

// handleProjectClose handles POST /projects/close.
func (s *Server) handleProjectClose(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.ProjectID == "" {
		s.writeError(w, http.StatusBadRequest, "project_id is required")
		return
	}

	if err := s.app.CloseProject(r.Context(), req.ProjectID); err != nil {
		s.writeOperationError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleProjectClone handles POST /projects/clone.
func (s *Server) handleProjectClone(w http.ResponseWriter, r *http.Request) {
	var req ProjectCloneRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.RepositoryURL == "" {
		s.writeError(w, http.StatusBadRequest, "repository_url is required")
		return
	}

	cloned, err := s.app.CloneProject(r.Context(), req.RepositoryURL, req.Force)
	if err != nil {
		s.writeOperationError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, ProjectClonedResponse{
		ProjectID:     cloned.ProjectID,
		Path:          cloned.Path,
		DefaultBranch: cloned.DefaultBranch,
	})
}

// handleWorkspaceCreate handles POST /workspaces/create.
func (s *Server) handleWorkspaceCreate(w http.ResponseWriter, r *http.Request) {
	var req WorkspaceCreateRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.ProjectID == "" || req.WorkspaceName == "" {
		s.writeError(w, http.StatusBadRequest, "project_id and workspace_name are required")
		return
	}

	created, err := s.app.CreateWorkspace(r.Context(), app.CreateWorkspaceParams{
		ProjectID:     req.ProjectID,
		WorkspaceName: req.WorkspaceName,
		BaseBranch:    req.BaseBranch,
	})
	if err != nil {
		s.writeOperationError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, WorkspaceCreatedResponse{
		ProjectID:     created.ProjectID,
		WorkspaceName: created.WorkspaceName,
		WorkspacePath: created.WorkspacePath,
		Branch:        created.Branch,
	})
}

// handleWorkspaceOpen handles POST /workspaces/open.
func (s *Server) handleWorkspaceOpen(w http.ResponseWriter, r *http.Request) {
	var req WorkspaceRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.ProjectID == "" || req.WorkspaceName == "" {
		s.writeError(w, http.StatusBadRequest, "project_id and workspace_name are required")
		return
	}

	opened, err := s.app.OpenWorkspace(r.Context(), req.ProjectID, req.WorkspaceName)
	if err != nil {
		s.writeOperationError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, WorkspaceOpenedResponse{
		ProjectID:     opened.ProjectID,
		WorkspaceName: opened.WorkspaceName,
		URL:           opened.URL,
	})
}

// handleWorkspaceSwitch handles POST /workspaces/switch.
func (s *Server) handleWorkspaceSwitch(w http.ResponseWriter, r *http.Request) {
	var req WorkspaceRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.ProjectID == "" || req.WorkspaceName == "" {
		s.writeError(w, http.StatusBadRequest, "project_id and workspace_name are required")
		return
	}

	if err := s.app.SwitchWorkspace(r.Context(), req.ProjectID, req.WorkspaceName); err != nil {
		s.writeOperationError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleWorkspaceRemove handles POST /workspaces/remove. The response is
// sent once the dispatch is admitted; removal continues in the background
// on a context detached from the request and its outcome surfaces through
// the workspace:removed and workspace:remove-failed events.
func (s *Server) handleWorkspaceRemove(w http.ResponseWriter, r *http.Request) {
	var req WorkspaceRemoveRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.ProjectID == "" || req.WorkspaceName == "" {
		s.writeError(w, http.StatusBadRequest, "project_id and workspace_name are required")
		return
	}

	removeCtx := context.WithoutCancel(r.Context())
	if _, err := s.app.RemoveWorkspace(removeCtx, req.ProjectID, req.WorkspaceName, req.Force); err != nil {
		s.writeOperationError(w, err)
		return
	}
	s.respondJSON(w, http.StatusAccepted, AcceptedResponse{Accepted: true})
}

// decode parses the JSON request body into dst; an empty body leaves dst
// at its zero value. It writes the error response itself and reports
// whether decoding succeeded.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.ContentLength == 0 {
		return true
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// writeOperationError maps an operation error to an HTTP status.
func (s *Server) writeOperationError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, state.ErrProjectNotFound),
		errors.Is(err, state.ErrWorkspaceNotFound):
		status = http.StatusNotFound
	case errors.Is(err, dispatch.ErrVetoed),
		errors.Is(err, state.ErrProjectAlreadyExists),
		errors.Is(err, state.ErrWorkspaceAlreadyExists):
		status = http.StatusConflict
	}
	s.writeError(w, status, err.Error())
}

func (s *Server) writeError(w http.ResponseWriter, statusCode int, message string) {
	s.respondJSON(w, statusCode, ErrorResponse{Error: message})
}

func (s *Server) respondJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Logf("failed to encode response: %v", err)
	}
}
