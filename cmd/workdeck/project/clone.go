package project

import (
	"github.com/lerenn/workdeck/cmd/workdeck/internal/cli"
	"github.com/spf13/cobra"
)

var cloneForce bool

func createCloneCmd() *cobra.Command {
	cloneCmd := &cobra.Command{
		Use:   "clone <repository-url>",
		Short: "Clone a repository and register it as a project",
		Long: `Clone a repository and register it as a project.

The project identifier is derived from the repository URL, for example
https://github.com/acme/app becomes github.com/acme/app.

Examples:
  # Clone over HTTPS
  workdeck project clone https://github.com/acme/app

  # Clone over SSH
  workdeck project clone git@github.com:acme/app.git`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, _, err := cli.BuildApp()
			if err != nil {
				return err
			}

			cloned, err := application.CloneProject(cmd.Context(), args[0], cloneForce)
			if err != nil {
				return err
			}

			cli.Successf("Project '%s' cloned to %s", cloned.ProjectID, cloned.Path)
			return nil
		},
	}

	cloneCmd.Flags().BoolVar(&cloneForce, "force", false, "Report failing steps instead of aborting")

	return cloneCmd
}
