package project

import (
	"github.com/lerenn/workdeck/cmd/workdeck/internal/cli"
	"github.com/spf13/cobra"
)

func createOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <project-id>",
		Short: "Open a tracked project and make it active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, _, err := cli.BuildApp()
			if err != nil {
				return err
			}

			opened, err := application.OpenProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			cli.Successf("Project '%s' opened", opened.ProjectID)
			return nil
		},
	}
}
