// Package project provides project management commands for the workdeck CLI.
package project

import (
	"github.com/spf13/cobra"
)

// CreateProjectCmd creates the project command with all its subcommands.
func CreateProjectCmd() *cobra.Command {
	projectCmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"p"},
		Short:   "Project management commands",
		Long:    `Commands for managing projects in workdeck.`,
	}

	projectCmd.AddCommand(
		createCloneCmd(),
		createOpenCmd(),
		createCloseCmd(),
	)

	return projectCmd
}
