package usecase

import (
	"context"
	"fmt"

	"github.com/predeploy-org/predeploy-cli/internal/config"
	"github.com/predeploy-org/predeploy-cli/internal/domain"
)

// RegisterPredeployParams contains parameters for registering a chain.
type RegisterPredeployParams struct {
	// RawChainID is the unvalidated chain identifier
	RawChainID string
	// RPCURL is an explicit endpoint override (optional)
	RPCURL string
	// SkipChainlist bypasses the registry presence requirement
	SkipChainlist bool
}

// RegisterPredeployResult contains the outcome of a successful registration.
type RegisterPredeployResult struct {
	ChainID          uint64
	ChainName        string
	ArtifactPath     string
	RPCURL           string
	Verified         bool
	VerifySkipped    bool
	ChainlistSkipped bool
	Outcome          *domain.VerificationOutcome
}

// RegisterPredeploy runs the full validation pipeline and writes the
// artifact as its last step. Any returned error carries a domain.Cause; the
// CLI layer turns it into the run summary.
type RegisterPredeploy struct {
	config    *config.RuntimeConfig
	store     ArtifactStore
	chainlist ChainlistClient
	verifier  ChainVerifier
	progress  ProgressSink
}

// NewRegisterPredeploy creates the register use case.
func NewRegisterPredeploy(
	cfg *config.RuntimeConfig,
	store ArtifactStore,
	chainlist ChainlistClient,
	verifier ChainVerifier,
	progress ProgressSink,
) *RegisterPredeploy {
	return &RegisterPredeploy{
		config:    cfg,
		store:     store,
		chainlist: chainlist,
		verifier:  verifier,
		progress:  progress,
	}
}

// Run executes the pipeline: validate the chain id, guard against a
// duplicate artifact, consult the chain registry, verify on-chain state when
// an endpoint is available, then write the artifact.
func (uc *RegisterPredeploy) Run(ctx context.Context, params RegisterPredeployParams) (*RegisterPredeployResult, error) {
	chainID, err := domain.ParseChainID(params.RawChainID)
	if err != nil {
		return nil, err
	}

	exists, err := uc.store.Exists(ctx, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing artifact: %w", err)
	}
	if exists {
		return nil, &domain.ArtifactExistsError{ChainID: chainID, Path: uc.store.Path(chainID)}
	}

	result := &RegisterPredeployResult{ChainID: chainID}

	rpcURL := params.RPCURL
	if rpcURL == "" {
		rpcURL = uc.config.RPCOverrides[chainID]
	}

	if params.SkipChainlist {
		uc.progress.Info("chainlist check skipped")
		result.ChainlistSkipped = true
	} else {
		uc.progress.Start("Fetching chainlist")
		entries, err := uc.chainlist.Fetch(ctx)
		uc.progress.Stop()
		if err != nil {
			return nil, err
		}

		entry, listed := domain.FindChainByID(entries, chainID)
		if !listed {
			return nil, &domain.ChainNotListedError{ChainID: chainID}
		}
		result.ChainName = entry.Name

		if rpcURL == "" {
			if url, ok := entry.FirstHTTPRPC(); ok {
				rpcURL = url
			}
		}
	}

	// Verification is advisory: registry listing is the primary trust
	// signal, so a missing endpoint downgrades to a warning.
	if rpcURL == "" {
		uc.progress.Warn("no rpc endpoint available, skipping on-chain verification")
		result.VerifySkipped = true
	} else {
		uc.progress.Start(fmt.Sprintf("Verifying factory via %s", rpcURL))
		outcome, err := uc.verifier.Verify(ctx, rpcURL, chainID)
		uc.progress.Stop()
		if err != nil {
			return nil, err
		}
		result.RPCURL = rpcURL
		result.Verified = true
		result.Outcome = outcome
	}

	path, err := uc.store.Save(ctx, chainID, domain.NewPredeployArtifact())
	if err != nil {
		return nil, fmt.Errorf("failed to write artifact: %w", err)
	}
	result.ArtifactPath = path

	return result, nil
}
