package app

import (
	"log/slog"

	"github.com/predeploy-org/predeploy-cli/internal/config"
	"github.com/predeploy-org/predeploy-cli/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Shared dependencies
	Selector usecase.ChainSelector

	// Use cases
	RegisterPredeploy *usecase.RegisterPredeploy
	VerifyChain       *usecase.VerifyChain
	LookupChain       *usecase.LookupChain
	ListArtifacts     *usecase.ListArtifacts
	ShowArtifact      *usecase.ShowArtifact
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	selector usecase.ChainSelector,
	registerPredeploy *usecase.RegisterPredeploy,
	verifyChain *usecase.VerifyChain,
	lookupChain *usecase.LookupChain,
	listArtifacts *usecase.ListArtifacts,
	showArtifact *usecase.ShowArtifact,
) (*App, error) {
	return &App{
		Config:            cfg,
		Log:               log,
		Selector:          selector,
		RegisterPredeploy: registerPredeploy,
		VerifyChain:       verifyChain,
		LookupChain:       lookupChain,
		ListArtifacts:     listArtifacts,
		ShowArtifact:      showArtifact,
	}, nil
}
