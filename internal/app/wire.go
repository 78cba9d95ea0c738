//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/predeploy-org/predeploy-cli/internal/adapters"
	"github.com/predeploy-org/predeploy-cli/internal/config"
	"github.com/predeploy-org/predeploy-cli/internal/logging"
	"github.com/predeploy-org/predeploy-cli/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,

		// Logging
		logging.NewLogger,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewRegisterPredeploy,
		usecase.NewVerifyChain,
		usecase.NewLookupChain,
		usecase.NewListArtifacts,
		usecase.NewShowArtifact,

		// App
		NewApp,
	)
	return nil, nil
}
