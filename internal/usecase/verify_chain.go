package usecase

import (
	"context"
	"fmt"

	"github.com/predeploy-org/predeploy-cli/internal/config"
	"github.com/predeploy-org/predeploy-cli/internal/domain"
)

// VerifyChainParams contains parameters for a standalone verification.
type VerifyChainParams struct {
	RawChainID string
	RPCURL     string
}

// VerifyChainResult contains the verification outcome.
type VerifyChainResult struct {
	ChainID   uint64
	ChainName string
	RPCURL    string
	Outcome   *domain.VerificationOutcome
}

// VerifyChain checks on-chain state for a chain without touching the
// artifact store. Unlike registration, an unresolvable endpoint is an error
// here since verification is the whole point of the command.
type VerifyChain struct {
	config    *config.RuntimeConfig
	chainlist ChainlistClient
	verifier  ChainVerifier
	progress  ProgressSink
}

// NewVerifyChain creates the verify use case.
func NewVerifyChain(
	cfg *config.RuntimeConfig,
	chainlist ChainlistClient,
	verifier ChainVerifier,
	progress ProgressSink,
) *VerifyChain {
	return &VerifyChain{
		config:    cfg,
		chainlist: chainlist,
		verifier:  verifier,
		progress:  progress,
	}
}

// Run resolves an RPC endpoint and verifies the factory.
func (uc *VerifyChain) Run(ctx context.Context, params VerifyChainParams) (*VerifyChainResult, error) {
	chainID, err := domain.ParseChainID(params.RawChainID)
	if err != nil {
		return nil, err
	}

	result := &VerifyChainResult{ChainID: chainID}

	rpcURL := params.RPCURL
	if rpcURL == "" {
		rpcURL = uc.config.RPCOverrides[chainID]
	}
	if rpcURL == "" {
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
		if url, ok := entry.FirstHTTPRPC(); ok {
			rpcURL = url
		}
	}
	if rpcURL == "" {
		return nil, &domain.NoRPCEndpointError{ChainID: chainID}
	}

	uc.progress.Start(fmt.Sprintf("Verifying factory via %s", rpcURL))
	outcome, err := uc.verifier.Verify(ctx, rpcURL, chainID)
	uc.progress.Stop()
	if err != nil {
		return nil, err
	}

	result.RPCURL = rpcURL
	result.Outcome = outcome
	return result, nil
}
