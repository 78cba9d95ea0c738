package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/predeploy-org/predeploy-cli/internal/cli/render"
	"github.com/predeploy-org/predeploy-cli/internal/domain"
	"github.com/predeploy-org/predeploy-cli/internal/usecase"
)

// registerFlags holds command-specific flags
type registerFlags struct {
	rpcURL        string
	skipChainlist bool
	summaryOut    string
}

// NewRegisterCmd creates the register command
func NewRegisterCmd() *cobra.Command {
	flags := &registerFlags{}

	cmd := &cobra.Command{
		Use:   "register [chain-id]",
		Short: "Register a pre-deployment artifact for a chain",
		Long: `Run the full registration pipeline for a chain: validate the identifier,
refuse duplicates, require the chain to be listed on chainlist, verify the
factory on-chain when an RPC endpoint is available, then write
artifacts/<chain-id>/deployment.json.

The chain id may also come from PREDEPLOY_CHAIN_ID.

Examples:
  predeploy register 10
  predeploy register 10 --rpc-url https://mainnet.optimism.io
  predeploy register 424242 --skip-chainlist --rpc-url http://localhost:8545
  predeploy register 10 --summary-out summary.json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rawChainID := ""
			if len(args) > 0 {
				rawChainID = args[0]
			}
			return runRegister(cmd, rawChainID, flags)
		},
	}

	cmd.Flags().StringVar(&flags.rpcURL, "rpc-url", "", "RPC endpoint for on-chain verification")
	cmd.Flags().BoolVar(&flags.skipChainlist, "skip-chainlist", false, "Bypass the chainlist presence requirement")
	cmd.Flags().StringVar(&flags.summaryOut, "summary-out", "", "File to receive the JSON run summary")

	return cmd
}

// runRegister executes the pipeline and is its sole error boundary: every
// failure becomes a run summary and a non-zero exit status.
func runRegister(cmd *cobra.Command, rawChainID string, flags *registerFlags) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	cfg := app.Config
	if rawChainID == "" {
		rawChainID = cfg.ChainID
	}

	params := usecase.RegisterPredeployParams{
		RawChainID:    rawChainID,
		RPCURL:        flags.rpcURL,
		SkipChainlist: flags.skipChainlist || cfg.SkipChainlist,
	}
	if params.RPCURL == "" {
		params.RPCURL = cfg.RPCURL
	}

	summaryPath := flags.summaryOut
	if summaryPath == "" {
		summaryPath = cfg.SummaryPath
	}

	result, runErr := app.RegisterPredeploy.Run(cmd.Context(), params)

	var summary domain.RunSummary
	if runErr != nil {
		summary = domain.FailureSummary(runErr)
	} else {
		summary = domain.SuccessSummary(fmt.Sprintf(
			"registered pre-deployment for chain %d at %s", result.ChainID, result.ArtifactPath))
	}

	renderer := render.NewRegisterRenderer(cmd.OutOrStdout())
	if err := renderer.Render(result, summary); err != nil {
		return err
	}

	if summaryPath != "" {
		if err := render.WriteSummaryFile(summaryPath, summary); err != nil {
			return err
		}
	}

	return runErr
}
