//go:build unit

package guardsmod

import (
	"context"
	"errors"
	"testing"

	"github.com/lerenn/workdeck/pkg/dispatch"
	"github.com/lerenn/workdeck/pkg/intents"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notify(t *testing.T, m dispatch.Module, evt dispatch.Event) {
	t.Helper()
	for _, reg := range m.Events {
		if reg.Event == evt.Type {
			require.NoError(t, reg.Subscriber.Notify(context.Background(), evt))
		}
	}
}

func TestModule_WorkspaceRemoveGuardLifecycle(t *testing.T) {
	guards := New()
	module := guards.Module()

	intent := dispatch.Intent{
		Type: intents.WorkspaceRemove,
		Payload: intents.WorkspaceRemovePayload{
			ProjectID:     "github.com/acme/app",
			WorkspaceName: "fix-login",
		},
	}

	_, ok, err := guards.removeGuard.Before(context.Background(), intent)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = guards.removeGuard.Before(context.Background(), intent)
	require.NoError(t, err)
	assert.False(t, ok)

	notify(t, module, dispatch.Event{
		Type: intents.EventWorkspaceRemoved,
		Payload: intents.WorkspaceRemovedEvent{
			ProjectID:     "github.com/acme/app",
			WorkspaceName: "fix-login",
		},
	})

	_, ok, err = guards.removeGuard.Before(context.Background(), intent)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestModule_FailureEventReleasesRemoveKey(t *testing.T) {
	guards := New()
	module := guards.Module()

	intent := dispatch.Intent{
		Type: intents.WorkspaceRemove,
		Payload: intents.WorkspaceRemovePayload{
			ProjectID:     "github.com/acme/app",
			WorkspaceName: "fix-login",
		},
	}

	_, ok, _ := guards.removeGuard.Before(context.Background(), intent)
	require.True(t, ok)

	notify(t, module, dispatch.Event{
		Type:    dispatch.EventDispatchFailed,
		Payload: dispatch.DispatchFailure{Intent: intent, Err: errors.New("worktree locked")},
	})

	_, ok, _ = guards.removeGuard.Before(context.Background(), intent)
	assert.True(t, ok)
}

func TestModule_CloneGuardKeyedByRepositoryURL(t *testing.T) {
	guards := New()
	module := guards.Module()

	intent := dispatch.Intent{
		Type:    intents.ProjectClone,
		Payload: intents.ProjectClonePayload{RepositoryURL: "https://github.com/acme/app"},
	}

	_, ok, _ := guards.cloneGuard.Before(context.Background(), intent)
	require.True(t, ok)

	_, ok, _ = guards.cloneGuard.Before(context.Background(), intent)
	assert.False(t, ok)

	notify(t, module, dispatch.Event{
		Type: intents.EventProjectCloned,
		Payload: intents.ProjectClonedEvent{
			ProjectID:     "github.com/acme/app",
			RepositoryURL: "https://github.com/acme/app",
		},
	})

	_, ok, _ = guards.cloneGuard.Before(context.Background(), intent)
	assert.True(t, ok)
}

func TestModule_StartGuardReArmsOnFailureOnly(t *testing.T) {
	guards := New()
	module := guards.Module()

	intent := dispatch.Intent{Type: intents.AppStart, Payload: intents.AppStartPayload{}}

	_, ok, _ := guards.startGuard.Before(context.Background(), intent)
	require.True(t, ok)

	// A successful start keeps the guard engaged for the process lifetime.
	notify(t, module, dispatch.Event{
		Type:    intents.EventAppStarted,
		Payload: intents.AppStartedEvent{},
	})
	_, ok, _ = guards.startGuard.Before(context.Background(), intent)
	assert.False(t, ok)

	// A hard failure re-arms it so a retry can be dispatched.
	notify(t, module, dispatch.Event{
		Type:    dispatch.EventDispatchFailed,
		Payload: dispatch.DispatchFailure{Intent: intent, Err: errors.New("bind failed")},
	})
	_, ok, _ = guards.startGuard.Before(context.Background(), intent)
	assert.True(t, ok)
}

func TestModule_GuardsCarryHighestOrder(t *testing.T) {
	module := New().Module()
	for _, interceptor := range module.Interceptors {
		assert.Equal(t, GuardOrder, interceptor.Order(), interceptor.Name())
	}
}
