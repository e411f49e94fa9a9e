package workspace

import (
	"github.com/lerenn/workdeck/cmd/workdeck/internal/cli"
	"github.com/spf13/cobra"
)

func createOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <project-id> <workspace-name>",
		Short: "Open a view on a workspace, starting its agent if needed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, _, err := cli.BuildApp()
			if err != nil {
				return err
			}

			opened, err := application.OpenWorkspace(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			cli.Successf("Workspace '%s' opened at %s", opened.WorkspaceName, opened.URL)
			return nil
		},
	}
}
