package cli

import (
	"github.com/spf13/cobra"

	"github.com/predeploy-org/predeploy-cli/internal/cli/render"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List registered pre-deployment artifacts",
		Long: `List every chain with a registered artifact under the artifacts directory.

Examples:
  predeploy list`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListArtifacts.Run(cmd.Context())
			if err != nil {
				return err
			}

			renderer := render.NewListRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	return cmd
}
