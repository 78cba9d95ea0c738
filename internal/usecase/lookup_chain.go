package usecase

import (
	"context"
	"strconv"

	"github.com/samber/lo"

	"github.com/predeploy-org/predeploy-cli/internal/domain"
)

// LookupChainParams contains the chain query.
type LookupChainParams struct {
	// Query is a decimal chain id or a (partial) chain name
	Query string
}

// LookupChainResult contains matched registry entries.
type LookupChainResult struct {
	Query   string
	Matches []domain.ChainEntry
}

// LookupChain searches the public registry by chain id or name.
type LookupChain struct {
	chainlist ChainlistClient
	progress  ProgressSink
}

// NewLookupChain creates the lookup use case.
func NewLookupChain(chainlist ChainlistClient, progress ProgressSink) *LookupChain {
	return &LookupChain{chainlist: chainlist, progress: progress}
}

// Run fetches the registry and filters it. A numeric query matches the chain
// id exactly; anything else is a case-insensitive name search.
func (uc *LookupChain) Run(ctx context.Context, params LookupChainParams) (*LookupChainResult, error) {
	uc.progress.Start("Fetching chainlist")
	entries, err := uc.chainlist.Fetch(ctx)
	uc.progress.Stop()
	if err != nil {
		return nil, err
	}

	result := &LookupChainResult{Query: params.Query}

	if id, err := strconv.ParseUint(params.Query, 10, 64); err == nil && id > 0 {
		if entry, ok := domain.FindChainByID(entries, id); ok {
			result.Matches = []domain.ChainEntry{*entry}
		}
		return result, nil
	}

	result.Matches = lo.Filter(entries, func(e domain.ChainEntry, _ int) bool {
		return e.Matches(params.Query)
	})
	return result, nil
}
