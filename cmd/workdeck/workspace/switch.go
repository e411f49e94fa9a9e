package workspace

import (
	"github.com/lerenn/workdeck/cmd/workdeck/internal/cli"
	"github.com/spf13/cobra"
)

func createSwitchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "switch <project-id> <workspace-name>",
		Short: "Move focus to another workspace of a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, _, err := cli.BuildApp()
			if err != nil {
				return err
			}

			if err := application.SwitchWorkspace(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}

			cli.Successf("Switched to workspace '%s'", args[1])
			return nil
		},
	}
}
