// Package workspace provides workspace management commands for the workdeck
// CLI.
package workspace

import (
	"github.com/spf13/cobra"
)

// CreateWorkspaceCmd creates the workspace command with all its subcommands.
func CreateWorkspaceCmd() *cobra.Command {
	workspaceCmd := &cobra.Command{
		Use:     "workspace",
		Aliases: []string{"ws"},
		Short:   "Workspace management commands",
		Long:    `Commands for managing workspaces in workdeck.`,
	}

	workspaceCmd.AddCommand(
		createCreateCmd(),
		createOpenCmd(),
		createSwitchCmd(),
		createRemoveCmd(),
	)

	return workspaceCmd
}
