package workspace

import (
	"github.com/lerenn/workdeck/cmd/workdeck/internal/cli"
	"github.com/lerenn/workdeck/pkg/app"
	"github.com/spf13/cobra"
)

var baseBranch string

func createCreateCmd() *cobra.Command {
	createCmd := &cobra.Command{
		Use:   "create <project-id> <workspace-name>",
		Short: "Create a new workspace on its own branch and worktree",
		Long: `Create a new workspace for a project.

The workspace gets a git worktree on a branch named after it, forked from
the project default branch unless --base-branch says otherwise, and a
coding-agent server when one is configured.

Examples:
  # Create a workspace forked from the default branch
  workdeck workspace create github.com/acme/app fix-login

  # Create a workspace forked from a specific branch
  workdeck workspace create github.com/acme/app hotfix --base-branch release/1.2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, _, err := cli.BuildApp()
			if err != nil {
				return err
			}

			created, err := application.CreateWorkspace(cmd.Context(), app.CreateWorkspaceParams{
				ProjectID:     args[0],
				WorkspaceName: args[1],
				BaseBranch:    baseBranch,
			})
			if err != nil {
				return err
			}

			cli.Successf("Workspace '%s' created at %s", created.WorkspaceName, created.WorkspacePath)
			return nil
		},
	}

	createCmd.Flags().StringVar(&baseBranch, "base-branch", "", "Fork point branch, defaults to the project default branch")

	return createCmd
}
