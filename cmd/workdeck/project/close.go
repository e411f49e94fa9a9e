package project

import (
	"github.com/lerenn/workdeck/cmd/workdeck/internal/cli"
	"github.com/spf13/cobra"
)

func createCloseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close <project-id>",
		Short: "Close the views and agents of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, _, err := cli.BuildApp()
			if err != nil {
				return err
			}

			if err := application.CloseProject(cmd.Context(), args[0]); err != nil {
				return err
			}

			cli.Successf("Project '%s' closed", args[0])
			return nil
		},
	}
}
