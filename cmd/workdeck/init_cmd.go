package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lerenn/workdeck/cmd/workdeck/internal/cli"
	"github.com/lerenn/workdeck/configs"
	"github.com/spf13/cobra"
)

var initForce bool

func createInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init [--force]",
		Short: "Initialize workdeck configuration",
		Long: `Write the default configuration file with commented defaults.

Flags:
  --force   Overwrite an existing configuration file`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path := cli.ResolveConfigPath()

			if _, err := os.Stat(path); err == nil && !initForce {
				return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, path)
			}

			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return fmt.Errorf("failed to create config directory: %w", err)
			}
			if err := os.WriteFile(path, configs.DefaultConfigYAML, 0644); err != nil {
				return fmt.Errorf("failed to write configuration file: %w", err)
			}

			cli.Successf("Configuration written to %s", path)
			return nil
		},
	}

	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing configuration file")

	return initCmd
}
