//go:build unit

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigPath_Override(t *testing.T) {
	originalConfigPath := ConfigPath
	ConfigPath = "/tmp/custom/config.yaml"
	defer func() { ConfigPath = originalConfigPath }()

	assert.Equal(t, "/tmp/custom/config.yaml", ResolveConfigPath())
}

func TestResolveConfigPath_Default(t *testing.T) {
	originalConfigPath := ConfigPath
	ConfigPath = ""
	defer func() { ConfigPath = originalConfigPath }()

	assert.Contains(t, ResolveConfigPath(), ".workdeck")
}

func TestLoadConfig_FallsBackToDefaults(t *testing.T) {
	originalConfigPath := ConfigPath
	ConfigPath = "/tmp/nonexistent/config.yaml"
	defer func() { ConfigPath = originalConfigPath }()

	_, cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.ProjectsDir)
	assert.NotEmpty(t, cfg.StateFile)
}
