package usecase

import (
	"context"

	"github.com/predeploy-org/predeploy-cli/internal/domain"
)

// ListArtifactsResult contains every registered artifact.
type ListArtifactsResult struct {
	Artifacts []domain.RegisteredArtifact
	Total     int
}

// ListArtifacts lists registered pre-deployment artifacts.
type ListArtifacts struct {
	store ArtifactStore
}

// NewListArtifacts creates the list use case.
func NewListArtifacts(store ArtifactStore) *ListArtifacts {
	return &ListArtifacts{store: store}
}

// Run returns all artifacts on disk.
func (uc *ListArtifacts) Run(ctx context.Context) (*ListArtifactsResult, error) {
	artifacts, err := uc.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListArtifactsResult{Artifacts: artifacts, Total: len(artifacts)}, nil
}
