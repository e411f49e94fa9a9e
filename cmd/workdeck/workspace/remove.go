package workspace

import (
	"github.com/lerenn/workdeck/cmd/workdeck/internal/cli"
	"github.com/lerenn/workdeck/pkg/intents"
	"github.com/spf13/cobra"
)

var removeForce bool

func createRemoveCmd() *cobra.Command {
	removeCmd := &cobra.Command{
		Use:   "remove <project-id> <workspace-name> [--force]",
		Short: "Remove a workspace, its worktree and its agent",
		Long: `Remove a workspace: stop its agent, close its view and delete its
worktree and state record.

With --force, failing teardown steps are reported instead of aborting the
removal.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, _, err := cli.BuildApp()
			if err != nil {
				return err
			}

			handle, err := application.RemoveWorkspace(cmd.Context(), args[0], args[1], removeForce)
			if err != nil {
				return err
			}

			// The CLI has no event stream to observe the outcome on, so it
			// awaits the pipeline here.
			result, err := handle.Result(cmd.Context())
			if err != nil {
				return err
			}

			if removed, ok := result.(intents.WorkspaceRemovedEvent); ok {
				for _, stepError := range removed.StepErrors {
					cli.Successf("warning: %s", stepError)
				}
			}

			cli.Successf("Workspace '%s' removed", args[1])
			return nil
		},
	}

	removeCmd.Flags().BoolVar(&removeForce, "force", false, "Report failing teardown steps instead of aborting")

	return removeCmd
}
