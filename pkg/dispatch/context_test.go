//go:build unit

package dispatch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHookContext_SetAndGet(t *testing.T) {
	hc := NewHookContext(Intent{Type: "workspace:create"})

	require.NoError(t, hc.Set("branch", "feature-x"))

	value, ok := hc.Get("branch")
	assert.True(t, ok)
	assert.Equal(t, "feature-x", value)

	_, ok = hc.Get("missing")
	assert.False(t, ok)
}

func TestHookContext_SetRejectsCollision(t *testing.T) {
	hc := NewHookContext(Intent{Type: "workspace:create"})

	require.NoError(t, hc.Set("branch", "feature-x"))

	err := hc.Set("branch", "feature-y")
	assert.ErrorIs(t, err, ErrFieldCollision)

	// The original value survives the rejected write.
	value, _ := hc.Get("branch")
	assert.Equal(t, "feature-x", value)
}

func TestHookContext_GetString(t *testing.T) {
	hc := NewHookContext(Intent{})
	require.NoError(t, hc.Set("path", "/tmp/ws"))
	require.NoError(t, hc.Set("port", 8080))

	s, ok := hc.GetString("path")
	assert.True(t, ok)
	assert.Equal(t, "/tmp/ws", s)

	_, ok = hc.GetString("port")
	assert.False(t, ok)

	_, ok = hc.GetString("missing")
	assert.False(t, ok)
}

func TestHookContext_GetStringMap(t *testing.T) {
	hc := NewHookContext(Intent{})
	require.NoError(t, hc.Set("envVars", map[string]string{"A": "1"}))

	m, ok := hc.GetStringMap("envVars")
	assert.True(t, ok)
	assert.Equal(t, map[string]string{"A": "1"}, m)

	_, ok = hc.GetStringMap("missing")
	assert.False(t, ok)
}

func TestHookContext_StepErrors(t *testing.T) {
	hc := NewHookContext(Intent{})
	assert.Empty(t, hc.StepErrors())

	first := errors.New("socket gone")
	second := errors.New("worktree locked")
	hc.AddStepError("teardown", "bridge-shutdown", first)
	hc.AddStepError("cleanup", "worktree-remove", second)

	steps := hc.StepErrors()
	require.Len(t, steps, 2)
	assert.Equal(t, HookPoint("teardown"), steps[0].HookPoint)
	assert.Equal(t, "bridge-shutdown", steps[0].Handler)
	assert.Equal(t, first, steps[0].Err)
	assert.Equal(t, second, steps[1].Err)
}

func TestHookContext_MergeAttributesCollision(t *testing.T) {
	hc := NewHookContext(Intent{})
	require.NoError(t, hc.Set("branch", "main"))

	err := hc.merge("provision", "worktree-provision", map[string]any{"branch": "dev"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFieldCollision)
	assert.Contains(t, err.Error(), "worktree-provision")
	assert.Contains(t, err.Error(), "provision")
}
