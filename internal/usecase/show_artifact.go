package usecase

import (
	"context"

	"github.com/predeploy-org/predeploy-cli/internal/domain"
)

// ShowArtifactParams identifies the artifact to display.
type ShowArtifactParams struct {
	RawChainID string
}

// ShowArtifactResult contains the artifact and its location.
type ShowArtifactResult struct {
	Artifact *domain.RegisteredArtifact
}

// ShowArtifact loads a single registered artifact.
type ShowArtifact struct {
	store ArtifactStore
}

// NewShowArtifact creates the show use case.
func NewShowArtifact(store ArtifactStore) *ShowArtifact {
	return &ShowArtifact{store: store}
}

// Run validates the identifier and loads the artifact.
func (uc *ShowArtifact) Run(ctx context.Context, params ShowArtifactParams) (*ShowArtifactResult, error) {
	chainID, err := domain.ParseChainID(params.RawChainID)
	if err != nil {
		return nil, err
	}

	artifact, err := uc.store.Get(ctx, chainID)
	if err != nil {
		return nil, err
	}
	return &ShowArtifactResult{Artifact: artifact}, nil
}
