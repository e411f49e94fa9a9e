// Package main provides the command-line interface for the workdeck
// application.
package main

import (
	"log"

	"github.com/lerenn/workdeck/cmd/workdeck/internal/cli"
	"github.com/lerenn/workdeck/cmd/workdeck/project"
	"github.com/lerenn/workdeck/cmd/workdeck/workspace"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "workdeck",
		Short: "Workdeck - workspace manager for coding agents",
		Long: `Workdeck manages projects and their workspaces: per-workspace git ` +
			`worktrees, coding-agent servers and embedded editor views.`,
	}

	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")

	rootCmd.AddCommand(
		createInitCmd(),
		createServeCmd(),
		project.CreateProjectCmd(),
		workspace.CreateWorkspaceCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
