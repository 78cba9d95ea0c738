package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/predeploy-org/predeploy-cli/internal/config"
)

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of predeploy",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("predeploy version %s (commit %s, built %s)\n", config.Version, config.Commit, config.Date)
		},
	}
}
