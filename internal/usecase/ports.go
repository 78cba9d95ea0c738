package usecase

import (
	"context"

	"github.com/predeploy-org/predeploy-cli/internal/domain"
)

// ArtifactStore handles persistence of pre-deployment artifacts.
type ArtifactStore interface {
	// Path returns the deterministic artifact path for a chain
	Path(chainID uint64) string
	// Exists reports whether an artifact file is already present
	Exists(ctx context.Context, chainID uint64) (bool, error)
	// Save writes the artifact, failing if the file already exists
	Save(ctx context.Context, chainID uint64, artifact *domain.PredeployArtifact) (string, error)
	// Get loads one artifact; domain.ErrNotFound when absent
	Get(ctx context.Context, chainID uint64) (*domain.RegisteredArtifact, error)
	// List returns every artifact on disk, ordered by chain ID
	List(ctx context.Context) ([]domain.RegisteredArtifact, error)
}

// ChainlistClient fetches the public chain registry.
type ChainlistClient interface {
	Fetch(ctx context.Context) ([]domain.ChainEntry, error)
}

// ChainVerifier confirms on-chain state via an RPC endpoint.
type ChainVerifier interface {
	Verify(ctx context.Context, rpcURL string, chainID uint64) (*domain.VerificationOutcome, error)
}

// ChainSelector resolves an ambiguous chain query interactively.
type ChainSelector interface {
	SelectChain(ctx context.Context, entries []domain.ChainEntry, prompt string) (*domain.ChainEntry, error)
}

// ProgressSink receives progress updates during long-running steps.
type ProgressSink interface {
	Start(message string)
	Stop()
	Info(message string)
	Warn(message string)
}

// NopSink is a no-op ProgressSink for tests and non-interactive runs.
type NopSink struct{}

func (NopSink) Start(string) {}
func (NopSink) Stop()        {}
func (NopSink) Info(string)  {}
func (NopSink) Warn(string)  {}
