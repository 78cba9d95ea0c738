package cli

import (
	"github.com/spf13/cobra"

	"github.com/predeploy-org/predeploy-cli/internal/cli/render"
	"github.com/predeploy-org/predeploy-cli/internal/usecase"
)

// NewVerifyCmd creates the verify command
func NewVerifyCmd() *cobra.Command {
	var rpcURL string

	cmd := &cobra.Command{
		Use:   "verify <chain-id>",
		Short: "Verify the pre-installed factory on a chain",
		Long: `Verify that the RPC endpoint reports the expected chain id and that the
factory bytecode at the well-known address matches the expected hash.
Without --rpc-url the endpoint is taken from predeploy.toml [rpc] or derived
from the chainlist entry.

Examples:
  predeploy verify 10
  predeploy verify 31337 --rpc-url http://localhost:8545`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.VerifyChainParams{
				RawChainID: args[0],
				RPCURL:     rpcURL,
			}
			if params.RPCURL == "" {
				params.RPCURL = app.Config.RPCURL
			}

			result, err := app.VerifyChain.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewVerifyRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVar(&rpcURL, "rpc-url", "", "RPC endpoint to verify against")

	return cmd
}
