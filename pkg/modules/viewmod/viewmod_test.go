//go:build unit

package viewmod

import (
	"context"
	"errors"
	"testing"

	"github.com/lerenn/workdeck/pkg/dispatch"
	"github.com/lerenn/workdeck/pkg/intents"
	"github.com/lerenn/workdeck/pkg/modules/indexmod"
	"github.com/lerenn/workdeck/pkg/state"
	"github.com/lerenn/workdeck/pkg/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeViews records view service calls.
type fakeViews struct {
	created  []views.CreateViewParams
	closed   []string
	focused  []string
	titles   []string
	closeErr error
}

func (v *fakeViews) CreateView(params views.CreateViewParams) error {
	v.created = append(v.created, params)
	return nil
}

func (v *fakeViews) CloseView(workspaceID string) error {
	if v.closeErr != nil {
		return v.closeErr
	}
	v.closed = append(v.closed, workspaceID)
	return nil
}

func (v *fakeViews) FocusView(workspaceID string) error {
	v.focused = append(v.focused, workspaceID)
	return nil
}

func (v *fakeViews) SetWindowTitle(title string) error {
	v.titles = append(v.titles, title)
	return nil
}

// seedState lets the index seed itself with no projects.
type seedState struct {
	state.Manager
}

func (seedState) ListProjects() (map[string]state.Project, error) {
	return nil, nil
}

func newTestModule(fake *fakeViews) (*Module, *indexmod.Module) {
	index := indexmod.New(seedState{})
	module := New(Params{
		Views:      fake,
		Index:      index,
		EditorPort: 7434,
	})
	return module, index
}

func TestViewOpen(t *testing.T) {
	fake := &fakeViews{}
	module, _ := newTestModule(fake)

	hc := dispatch.NewHookContext(dispatch.Intent{
		Type: intents.WorkspaceOpen,
		Payload: intents.WorkspaceOpenPayload{
			ProjectID:     "github.com/acme/app",
			WorkspaceName: "fix-login",
		},
	})
	require.NoError(t, hc.Set(intents.FieldWorkspacePath, "/worktrees/app/fix-login"))
	require.NoError(t, hc.Set(intents.FieldEnvVars, map[string]string{"WORKDECK_AGENT_PORT": "45001"}))

	result, err := module.viewOpen().Execute(context.Background(), hc)
	require.NoError(t, err)

	workspaceURL, ok := result.Fields[intents.FieldWorkspaceURL].(string)
	require.True(t, ok)
	assert.Contains(t, workspaceURL, "http://127.0.0.1:7434/?")
	assert.Contains(t, workspaceURL, "folder=%2Fworktrees%2Fapp%2Ffix-login")
	assert.Contains(t, workspaceURL, "WORKDECK_AGENT_PORT=45001")

	require.Len(t, fake.created, 1)
	assert.Equal(t, "github.com/acme/app/fix-login", fake.created[0].WorkspaceID)
	assert.Equal(t, workspaceURL, fake.created[0].URL)
	assert.Equal(t, []string{"github.com/acme/app/fix-login"}, fake.focused)
}

func TestViewFocus(t *testing.T) {
	fake := &fakeViews{}
	module, _ := newTestModule(fake)

	hc := dispatch.NewHookContext(dispatch.Intent{
		Type: intents.WorkspaceSwitch,
		Payload: intents.WorkspaceSwitchPayload{
			ProjectID:     "github.com/acme/app",
			WorkspaceName: "refactor",
		},
	})

	_, err := module.viewFocus().Execute(context.Background(), hc)
	require.NoError(t, err)
	assert.Equal(t, []string{"github.com/acme/app/refactor"}, fake.focused)
}

func TestViewClose_ToleratedWithForce(t *testing.T) {
	fake := &fakeViews{closeErr: errors.New("view gone")}
	module, _ := newTestModule(fake)

	hc := dispatch.NewHookContext(dispatch.Intent{
		Type: intents.WorkspaceRemove,
		Payload: intents.WorkspaceRemovePayload{
			ProjectID:     "github.com/acme/app",
			WorkspaceName: "fix-login",
			Force:         true,
		},
	})

	_, err := module.viewClose().Execute(context.Background(), hc)
	require.NoError(t, err)
	require.Len(t, hc.StepErrors(), 1)
	assert.ErrorIs(t, hc.StepErrors()[0].Err, fake.closeErr)
}

func TestProjectViewsClose(t *testing.T) {
	fake := &fakeViews{}
	module, index := newTestModule(fake)

	// Track two workspaces through the index the way events would.
	for _, reg := range index.Module().Events {
		if reg.Event == intents.EventWorkspaceCreated {
			require.NoError(t, reg.Subscriber.Notify(context.Background(), dispatch.Event{
				Type: intents.EventWorkspaceCreated,
				Payload: intents.WorkspaceCreatedEvent{
					ProjectID:     "github.com/acme/app",
					WorkspaceName: "fix-login",
				},
			}))
		}
	}

	hc := dispatch.NewHookContext(dispatch.Intent{
		Type:    intents.ProjectClose,
		Payload: intents.ProjectClosePayload{ProjectID: "github.com/acme/app"},
	})

	_, err := module.projectViewsClose().Execute(context.Background(), hc)
	require.NoError(t, err)
	assert.Equal(t, []string{"github.com/acme/app/fix-login"}, fake.closed)
}

func TestTitleSubscriber(t *testing.T) {
	fake := &fakeViews{}
	module, index := newTestModule(fake)
	subscriber := module.titleSubscriber()

	// No project open: the default title.
	require.NoError(t, subscriber.Notify(context.Background(), dispatch.Event{}))
	assert.Equal(t, []string{"workdeck"}, fake.titles)

	// Focus moves to a workspace.
	for _, reg := range index.Module().Events {
		if reg.Event == intents.EventWorkspaceSwitched {
			require.NoError(t, reg.Subscriber.Notify(context.Background(), dispatch.Event{
				Type: intents.EventWorkspaceSwitched,
				Payload: intents.WorkspaceSwitchedEvent{
					ProjectID:     "github.com/acme/app",
					WorkspaceName: "fix-login",
				},
			}))
		}
	}
	require.NoError(t, subscriber.Notify(context.Background(), dispatch.Event{}))
	assert.Equal(t, "github.com/acme/app / fix-login", fake.titles[len(fake.titles)-1])
}
