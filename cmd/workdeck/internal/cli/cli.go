// Package cli provides common configuration and wiring helpers for the
// workdeck CLI.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lerenn/workdeck/pkg/app"
	"github.com/lerenn/workdeck/pkg/config"
	"github.com/lerenn/workdeck/pkg/dependencies"
	"github.com/lerenn/workdeck/pkg/extbridge"
	"github.com/lerenn/workdeck/pkg/fs"
	"github.com/lerenn/workdeck/pkg/logger"
	"github.com/lerenn/workdeck/pkg/state"
)

var (
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
)

// ResolveConfigPath returns the config file path, defaulting to
// ~/.workdeck/config.yaml.
func ResolveConfigPath() string {
	if ConfigPath != "" {
		return ConfigPath
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".workdeck", "config.yaml")
}

// NewLogger returns the logger matching the verbosity flags.
func NewLogger() logger.Logger {
	if Verbose {
		return logger.NewDefaultLogger()
	}
	return logger.NewNoopLogger()
}

// LoadConfig loads the configuration, falling back to defaults when the
// config file is missing.
func LoadConfig() (config.Manager, config.Config, error) {
	manager := config.NewManager(ResolveConfigPath())
	cfg, err := manager.GetConfigWithFallback()
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	return manager, cfg, nil
}

// BuildApp wires the application from the loaded configuration.
func BuildApp() (app.App, config.Config, error) {
	manager, cfg, err := LoadConfig()
	if err != nil {
		return nil, config.Config{}, err
	}

	log := NewLogger()
	filesystem := fs.NewFS()

	deps := dependencies.New().
		WithFS(filesystem).
		WithLogger(log).
		WithConfig(manager).
		WithStateManager(state.NewManager(filesystem, cfg)).
		WithBridge(extbridge.NewBridge(cfg.SocketDir, time.Duration(cfg.BridgeTimeout), log))

	application, err := app.New(app.Params{Dependencies: deps, Config: cfg})
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("failed to build application: %w", err)
	}
	return application, cfg, nil
}

// Successf prints a success message unless quiet mode is on.
func Successf(format string, args ...any) {
	if Quiet {
		return
	}
	fmt.Printf(format+"\n", args...)
}
