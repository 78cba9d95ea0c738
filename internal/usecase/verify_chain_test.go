package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/predeploy-org/predeploy-cli/internal/config"
	"github.com/predeploy-org/predeploy-cli/internal/domain"
	"github.com/predeploy-org/predeploy-cli/internal/usecase"
)

func TestVerifyChain(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit rpc skips chainlist", func(t *testing.T) {
		chainlist := new(MockChainlistClient)
		verifier := new(MockChainVerifier)
		uc := usecase.NewVerifyChain(&config.RuntimeConfig{}, chainlist, verifier, usecase.NopSink{})

		verifier.On("Verify", ctx, "http://localhost:8545", uint64(31337)).Return(&domain.VerificationOutcome{
			ReportedChainID: 31337,
			CodeSize:        len(domain.FactoryRuntimeCode),
			CodeHash:        domain.FactoryCodeHash,
		}, nil)

		result, err := uc.Run(ctx, usecase.VerifyChainParams{RawChainID: "31337", RPCURL: "http://localhost:8545"})
		require.NoError(t, err)
		assert.Equal(t, uint64(31337), result.ChainID)
		assert.Equal(t, domain.FactoryCodeHash, result.Outcome.CodeHash)
		chainlist.AssertNotCalled(t, "Fetch", mock.Anything)
	})

	t.Run("rpc derived from chainlist", func(t *testing.T) {
		chainlist := new(MockChainlistClient)
		verifier := new(MockChainVerifier)
		uc := usecase.NewVerifyChain(&config.RuntimeConfig{}, chainlist, verifier, usecase.NopSink{})

		chainlist.On("Fetch", ctx).Return(testEntries(), nil)
		verifier.On("Verify", ctx, "https://op.example.com", uint64(10)).Return(&domain.VerificationOutcome{ReportedChainID: 10}, nil)

		result, err := uc.Run(ctx, usecase.VerifyChainParams{RawChainID: "10"})
		require.NoError(t, err)
		assert.Equal(t, "OP Mainnet", result.ChainName)
		assert.Equal(t, "https://op.example.com", result.RPCURL)
	})

	t.Run("no endpoint is an error", func(t *testing.T) {
		chainlist := new(MockChainlistClient)
		verifier := new(MockChainVerifier)
		uc := usecase.NewVerifyChain(&config.RuntimeConfig{}, chainlist, verifier, usecase.NopSink{})

		chainlist.On("Fetch", ctx).Return(testEntries(), nil)

		_, err := uc.Run(ctx, usecase.VerifyChainParams{RawChainID: "777"})
		require.Error(t, err)
		assert.Equal(t, domain.CauseNoRPCEndpoint, domain.CauseOf(err))
		verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unlisted chain", func(t *testing.T) {
		chainlist := new(MockChainlistClient)
		verifier := new(MockChainVerifier)
		uc := usecase.NewVerifyChain(&config.RuntimeConfig{}, chainlist, verifier, usecase.NopSink{})

		chainlist.On("Fetch", ctx).Return(testEntries(), nil)

		_, err := uc.Run(ctx, usecase.VerifyChainParams{RawChainID: "424242"})
		require.Error(t, err)
		assert.Equal(t, domain.CauseChainNotListed, domain.CauseOf(err))
	})
}

func TestLookupChain(t *testing.T) {
	ctx := context.Background()

	t.Run("numeric query matches chain id", func(t *testing.T) {
		chainlist := new(MockChainlistClient)
		chainlist.On("Fetch", ctx).Return(testEntries(), nil)
		uc := usecase.NewLookupChain(chainlist, usecase.NopSink{})

		result, err := uc.Run(ctx, usecase.LookupChainParams{Query: "10"})
		require.NoError(t, err)
		require.Len(t, result.Matches, 1)
		assert.Equal(t, "OP Mainnet", result.Matches[0].Name)
	})

	t.Run("name query matches substrings", func(t *testing.T) {
		chainlist := new(MockChainlistClient)
		chainlist.On("Fetch", ctx).Return(testEntries(), nil)
		uc := usecase.NewLookupChain(chainlist, usecase.NopSink{})

		result, err := uc.Run(ctx, usecase.LookupChainParams{Query: "mainnet"})
		require.NoError(t, err)
		assert.Len(t, result.Matches, 2)
	})

	t.Run("no matches", func(t *testing.T) {
		chainlist := new(MockChainlistClient)
		chainlist.On("Fetch", ctx).Return(testEntries(), nil)
		uc := usecase.NewLookupChain(chainlist, usecase.NopSink{})

		result, err := uc.Run(ctx, usecase.LookupChainParams{Query: "no-such-chain"})
		require.NoError(t, err)
		assert.Empty(t, result.Matches)
	})
}
