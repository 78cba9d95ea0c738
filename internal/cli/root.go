package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/predeploy-org/predeploy-cli/internal/adapters/progress"
	"github.com/predeploy-org/predeploy-cli/internal/app"
	"github.com/predeploy-org/predeploy-cli/internal/config"
	"github.com/predeploy-org/predeploy-cli/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "predeploy",
		Short: "Pre-deployment registrar for networks with a pre-installed factory",
		Long: `Predeploy registers a pre-deployment artifact for networks on which the
deterministic deployment factory is already present as a system-level
preinstall, so no deployment transaction is ever needed there.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			// Load .env if present; absence is fine
			_ = godotenv.Load(filepath.Join(projectRoot, ".env"))

			v := config.SetupViper(projectRoot)
			if err := config.BindFlags(v, cmd); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			var sink usecase.ProgressSink = progress.NewSpinnerSink()
			if v.GetBool("non_interactive") {
				sink = progress.NewNopSink()
			}

			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts and spinners")
	rootCmd.PersistentFlags().String("artifacts-dir", "", "Artifacts directory (defaults to artifacts/)")
	rootCmd.PersistentFlags().String("chainlist-url", "", "Chain registry URL override")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	registerCmd := NewRegisterCmd()
	registerCmd.GroupID = "main"
	rootCmd.AddCommand(registerCmd)

	verifyCmd := NewVerifyCmd()
	verifyCmd.GroupID = "main"
	rootCmd.AddCommand(verifyCmd)

	chainsCmd := NewChainsCmd()
	chainsCmd.GroupID = "management"
	rootCmd.AddCommand(chainsCmd)

	listCmd := NewListCmd()
	listCmd.GroupID = "management"
	rootCmd.AddCommand(listCmd)

	showCmd := NewShowCmd()
	showCmd.GroupID = "management"
	rootCmd.AddCommand(showCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
