package blockchain

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/predeploy-org/predeploy-cli/internal/domain"
	"github.com/predeploy-org/predeploy-cli/internal/usecase"
)

const rpcCallTimeout = 15 * time.Second

// VerifierAdapter implements the ChainVerifier interface using ethclient.
type VerifierAdapter struct{}

// NewVerifierAdapter creates a new on-chain verifier adapter.
func NewVerifierAdapter() *VerifierAdapter {
	return &VerifierAdapter{}
}

// Verify connects to the endpoint and confirms three things: the node
// reports the expected chain id, bytecode exists at the factory address, and
// its Keccak-256 hash matches the known factory hash.
func (v *VerifierAdapter) Verify(ctx context.Context, rpcURL string, chainID uint64) (*domain.VerificationOutcome, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	defer client.Close()

	callCtx, cancel := context.WithTimeout(ctx, rpcCallTimeout)
	defer cancel()

	reported, err := client.ChainID(callCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if reported.Uint64() != chainID {
		return nil, &domain.ChainIDMismatchError{Expected: chainID, Reported: reported.Uint64()}
	}

	code, err := client.CodeAt(callCtx, domain.FactoryAddress, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get code at %s: %w", domain.FactoryAddress.Hex(), err)
	}
	if len(code) == 0 {
		return nil, &domain.NoFactoryCodeError{Address: domain.FactoryAddress}
	}

	codeHash := crypto.Keccak256Hash(code)
	if codeHash != domain.FactoryCodeHash {
		return nil, &domain.CodeHashMismatchError{Expected: domain.FactoryCodeHash, Actual: codeHash}
	}

	return &domain.VerificationOutcome{
		ReportedChainID: reported.Uint64(),
		CodeSize:        len(code),
		CodeHash:        codeHash,
	}, nil
}

var _ usecase.ChainVerifier = (*VerifierAdapter)(nil)
