//go:build unit

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lerenn/workdeck/pkg/app"
	"github.com/lerenn/workdeck/pkg/dispatch"
	"github.com/lerenn/workdeck/pkg/intents"
	"github.com/lerenn/workdeck/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApp struct {
	err error

	startCalls int
	stopForce  bool
	stopCtx    context.Context
	removed    []intents.WorkspaceRemovePayload
	removeCtx  context.Context
	openedWS   []string
	switchedWS []string
	cloned     []string
	openedProj []string
	closedProj []string
	createdWS  []app.CreateWorkspaceParams
}

func (f *fakeApp) Start(context.Context, bool) (intents.AppStartedEvent, error) {
	f.startCalls++
	return intents.AppStartedEvent{ProjectID: "github.com/acme/app"}, f.err
}

func (f *fakeApp) Stop(ctx context.Context, force bool) (*dispatch.Handle, error) {
	f.stopForce = force
	f.stopCtx = ctx
	return nil, f.err
}

func (f *fakeApp) OpenProject(_ context.Context, projectID string) (intents.ProjectOpenedEvent, error) {
	f.openedProj = append(f.openedProj, projectID)
	return intents.ProjectOpenedEvent{ProjectID: projectID, Path: "/projects/" + projectID}, f.err
}

func (f *fakeApp) CloseProject(_ context.Context, projectID string) error {
	f.closedProj = append(f.closedProj, projectID)
	return f.err
}

func (f *fakeApp) CloneProject(
	_ context.Context, repositoryURL string, _ bool) (intents.ProjectClonedEvent, error) {
	f.cloned = append(f.cloned, repositoryURL)
	return intents.ProjectClonedEvent{
		ProjectID:     "github.com/acme/app",
		Path:          "/projects/github.com/acme/app",
		DefaultBranch: "main",
	}, f.err
}

func (f *fakeApp) CreateWorkspace(
	_ context.Context, params app.CreateWorkspaceParams) (intents.WorkspaceCreatedEvent, error) {
	f.createdWS = append(f.createdWS, params)
	return intents.WorkspaceCreatedEvent{
		ProjectID:     params.ProjectID,
		WorkspaceName: params.WorkspaceName,
		WorkspacePath: "/worktrees/" + params.ProjectID + "/" + params.WorkspaceName,
		Branch:        params.WorkspaceName,
	}, f.err
}

func (f *fakeApp) OpenWorkspace(
	_ context.Context, projectID, workspaceName string) (intents.WorkspaceOpenedEvent, error) {
	f.openedWS = append(f.openedWS, intents.WorkspaceID(projectID, workspaceName))
	return intents.WorkspaceOpenedEvent{
		ProjectID:     projectID,
		WorkspaceName: workspaceName,
		URL:           "http://127.0.0.1:7434/?folder=x",
	}, f.err
}

func (f *fakeApp) SwitchWorkspace(_ context.Context, projectID, workspaceName string) error {
	f.switchedWS = append(f.switchedWS, intents.WorkspaceID(projectID, workspaceName))
	return f.err
}

func (f *fakeApp) RemoveWorkspace(
	ctx context.Context, projectID, workspaceName string, force bool) (*dispatch.Handle, error) {
	f.removeCtx = ctx
	f.removed = append(f.removed, intents.WorkspaceRemovePayload{
		ProjectID:     projectID,
		WorkspaceName: workspaceName,
		Force:         force,
	})
	return nil, f.err
}

func (f *fakeApp) Dispatcher() dispatch.Dispatcher { return nil }

func newTestServer(t *testing.T, application app.App) *httptest.Server {
	t.Helper()
	server, err := NewServer(Params{App: application})
	require.NoError(t, err)
	ts := httptest.NewServer(server.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, ts *httptest.Server, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(ts.URL+path, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var decoded T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return decoded
}

func TestServer_Healthz(t *testing.T) {
	ts := newTestServer(t, &fakeApp{})

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decodeBody[HealthzResponse](t, resp).Status)
}

func TestServer_AppStart(t *testing.T) {
	application := &fakeApp{}
	ts := newTestServer(t, application)

	resp := postJSON(t, ts, "/app/start", AppStartRequest{})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "github.com/acme/app", decodeBody[AppStartedResponse](t, resp).ProjectID)
	assert.Equal(t, 1, application.startCalls)
}

func TestServer_AppStop_Accepted(t *testing.T) {
	application := &fakeApp{}
	ts := newTestServer(t, application)

	resp := postJSON(t, ts, "/app/stop", AppStopRequest{Force: true})
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.True(t, decodeBody[AcceptedResponse](t, resp).Accepted)
	assert.True(t, application.stopForce)
}

func TestServer_ProjectOpen(t *testing.T) {
	application := &fakeApp{}
	ts := newTestServer(t, application)

	resp := postJSON(t, ts, "/projects/open", ProjectRequest{ProjectID: "github.com/acme/app"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/projects/github.com/acme/app", decodeBody[ProjectOpenedResponse](t, resp).Path)
}

func TestServer_ProjectOpen_MissingID(t *testing.T) {
	ts := newTestServer(t, &fakeApp{})

	resp := postJSON(t, ts, "/projects/open", ProjectRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_ProjectOpen_NotFound(t *testing.T) {
	ts := newTestServer(t, &fakeApp{err: state.ErrProjectNotFound})

	resp := postJSON(t, ts, "/projects/open", ProjectRequest{ProjectID: "github.com/acme/missing"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, decodeBody[ErrorResponse](t, resp).Error, "project not found")
}

func TestServer_ProjectClone(t *testing.T) {
	application := &fakeApp{}
	ts := newTestServer(t, application)

	resp := postJSON(t, ts, "/projects/clone", ProjectCloneRequest{
		RepositoryURL: "https://github.com/acme/app",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cloned := decodeBody[ProjectClonedResponse](t, resp)
	assert.Equal(t, "github.com/acme/app", cloned.ProjectID)
	assert.Equal(t, "main", cloned.DefaultBranch)
	assert.Equal(t, []string{"https://github.com/acme/app"}, application.cloned)
}

func TestServer_WorkspaceCreate(t *testing.T) {
	application := &fakeApp{}
	ts := newTestServer(t, application)

	resp := postJSON(t, ts, "/workspaces/create", WorkspaceCreateRequest{
		ProjectID:     "github.com/acme/app",
		WorkspaceName: "fix-login",
		BaseBranch:    "develop",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "fix-login", decodeBody[WorkspaceCreatedResponse](t, resp).Branch)

	require.Len(t, application.createdWS, 1)
	assert.Equal(t, "develop", application.createdWS[0].BaseBranch)
}

func TestServer_WorkspaceOpen(t *testing.T) {
	application := &fakeApp{}
	ts := newTestServer(t, application)

	resp := postJSON(t, ts, "/workspaces/open", WorkspaceRequest{
		ProjectID:     "github.com/acme/app",
		WorkspaceName: "fix-login",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, decodeBody[WorkspaceOpenedResponse](t, resp).URL)
}

func TestServer_WorkspaceSwitch_NoContent(t *testing.T) {
	application := &fakeApp{}
	ts := newTestServer(t, application)

	resp := postJSON(t, ts, "/workspaces/switch", WorkspaceRequest{
		ProjectID:     "github.com/acme/app",
		WorkspaceName: "refactor",
	})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, []string{"github.com/acme/app/refactor"}, application.switchedWS)
}

func TestServer_WorkspaceRemove_Accepted(t *testing.T) {
	application := &fakeApp{}
	ts := newTestServer(t, application)

	resp := postJSON(t, ts, "/workspaces/remove", WorkspaceRemoveRequest{
		ProjectID:     "github.com/acme/app",
		WorkspaceName: "fix-login",
		Force:         true,
	})
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	require.Len(t, application.removed, 1)
	assert.True(t, application.removed[0].Force)
}

// Fire-and-forget operations keep running after the accepted response, so
// the context they receive must survive the end of the request.
func TestServer_WorkspaceRemove_ContextOutlivesRequest(t *testing.T) {
	application := &fakeApp{}
	ts := newTestServer(t, application)

	resp := postJSON(t, ts, "/workspaces/remove", WorkspaceRemoveRequest{
		ProjectID:     "github.com/acme/app",
		WorkspaceName: "fix-login",
	})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	// Give net/http time to cancel the request context before checking
	// that the detached one is unaffected.
	time.Sleep(50 * time.Millisecond)

	require.NotNil(t, application.removeCtx)
	assert.NoError(t, application.removeCtx.Err())
}

func TestServer_AppStop_ContextOutlivesRequest(t *testing.T) {
	application := &fakeApp{}
	ts := newTestServer(t, application)

	resp := postJSON(t, ts, "/app/stop", AppStopRequest{Force: true})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	time.Sleep(50 * time.Millisecond)

	require.NotNil(t, application.stopCtx)
	assert.NoError(t, application.stopCtx.Err())
}

func TestServer_WorkspaceRemove_Vetoed(t *testing.T) {
	ts := newTestServer(t, &fakeApp{err: dispatch.ErrVetoed})

	resp := postJSON(t, ts, "/workspaces/remove", WorkspaceRemoveRequest{
		ProjectID:     "github.com/acme/app",
		WorkspaceName: "fix-login",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestServer_InvalidJSON(t *testing.T) {
	ts := newTestServer(t, &fakeApp{})

	resp, err := http.Post(ts.URL+"/projects/open", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
