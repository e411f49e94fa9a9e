// Package config provides configuration management functionality for the
// workdeck application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so values like "10s" decode from both the
// YAML config file and environment variables.
type Duration time.Duration

// UnmarshalYAML decodes a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrDurationInvalid, raw)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML encodes the duration as a string.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalText decodes a duration from an environment variable.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrDurationInvalid, string(text))
	}
	*d = Duration(parsed)
	return nil
}

// Config represents the application configuration. Values come from the
// YAML config file; WORKDECK_* environment variables override file values.
type Config struct {
	// ProjectsDir is where cloned project repositories live.
	ProjectsDir string `yaml:"projects_dir" env:"WORKDECK_PROJECTS_DIR"`
	// WorktreesDir is where workspace worktrees are provisioned.
	WorktreesDir string `yaml:"worktrees_dir" env:"WORKDECK_WORKTREES_DIR"`
	// StateFile is the path of the persisted project/workspace state.
	StateFile string `yaml:"state_file" env:"WORKDECK_STATE_FILE"`
	// APIAddr is the listen address of the local HTTP API.
	APIAddr string `yaml:"api_addr" env:"WORKDECK_API_ADDR"`
	// SocketDir holds the per-workspace editor extension sockets.
	SocketDir string `yaml:"socket_dir" env:"WORKDECK_SOCKET_DIR"`
	// AgentCommand is the executable started per workspace as the coding
	// agent server.
	AgentCommand string `yaml:"agent_command" env:"WORKDECK_AGENT_COMMAND"`
	// EditorCommand is the executable of the embedded editor server.
	EditorCommand string `yaml:"editor_command" env:"WORKDECK_EDITOR_COMMAND"`
	// EditorPort is the port the embedded editor server listens on.
	EditorPort int `yaml:"editor_port" env:"WORKDECK_EDITOR_PORT"`
	// BridgeTimeout bounds request/acknowledgement round-trips to editor
	// extensions, including the shutdown handshake.
	BridgeTimeout Duration `yaml:"bridge_timeout" env:"WORKDECK_BRIDGE_TIMEOUT"`
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.ProjectsDir == "" {
		return ErrProjectsDirEmpty
	}
	if c.WorktreesDir == "" {
		return ErrWorktreesDirEmpty
	}
	if c.StateFile == "" {
		return ErrStateFileEmpty
	}
	if c.EditorPort < 0 || c.EditorPort > 65535 {
		return ErrEditorPortInvalid
	}
	return nil
}

// expandTildes expands ~ prefixes in every configured path.
func (c *Config) expandTildes() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	expand := func(path string) string {
		if len(path) > 0 && path[0] == '~' {
			return filepath.Join(homeDir, path[1:])
		}
		return path
	}

	c.ProjectsDir = expand(c.ProjectsDir)
	c.WorktreesDir = expand(c.WorktreesDir)
	c.StateFile = expand(c.StateFile)
	c.SocketDir = expand(c.SocketDir)
	return nil
}
