package cli

import (
	"github.com/spf13/cobra"

	"github.com/predeploy-org/predeploy-cli/internal/cli/render"
	"github.com/predeploy-org/predeploy-cli/internal/usecase"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <chain-id>",
		Short: "Show one registered artifact",
		Long: `Print the registered artifact for a chain together with its path.

Examples:
  predeploy show 10`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowArtifact.Run(cmd.Context(), usecase.ShowArtifactParams{RawChainID: args[0]})
			if err != nil {
				return err
			}

			renderer := render.NewShowRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	return cmd
}
