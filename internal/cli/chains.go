package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/predeploy-org/predeploy-cli/internal/cli/render"
	"github.com/predeploy-org/predeploy-cli/internal/usecase"
)

// NewChainsCmd creates the chains command
func NewChainsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chains <chain-id|name>",
		Short: "Look up a chain in the public registry",
		Long: `Search the public chain registry by chain id or name. When a name query
matches several chains, one can be picked interactively.

Examples:
  predeploy chains 10
  predeploy chains "op mainnet"`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.LookupChain.Run(cmd.Context(), usecase.LookupChainParams{Query: args[0]})
			if err != nil {
				return err
			}

			if len(result.Matches) == 0 {
				return fmt.Errorf("no chain matches %q", result.Query)
			}

			entry := &result.Matches[0]
			if len(result.Matches) > 1 {
				entry, err = app.Selector.SelectChain(cmd.Context(), result.Matches, "Select a chain")
				if err != nil {
					return err
				}
			}

			renderer := render.NewChainsRenderer(cmd.OutOrStdout())
			return renderer.Render(entry)
		},
	}

	return cmd
}
