package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/predeploy-org/predeploy-cli/internal/config"
	"github.com/predeploy-org/predeploy-cli/internal/domain"
	"github.com/predeploy-org/predeploy-cli/internal/usecase"
)

// ArtifactStoreAdapter persists pre-deployment artifacts under
// <artifactsDir>/<chainID>/deployment.json.
type ArtifactStoreAdapter struct {
	root string
}

// NewArtifactStoreAdapter creates a store rooted at the configured
// artifacts directory.
func NewArtifactStoreAdapter(cfg *config.RuntimeConfig) *ArtifactStoreAdapter {
	return &ArtifactStoreAdapter{root: cfg.ArtifactsDir}
}

// Path returns the deterministic artifact path for a chain.
func (s *ArtifactStoreAdapter) Path(chainID uint64) string {
	return filepath.Join(s.root, strconv.FormatUint(chainID, 10), domain.ArtifactFileName)
}

// Exists reports whether an artifact file is already present. Only the file
// counts; a leftover empty directory from an interrupted run is ignored so a
// retry stays safe.
func (s *ArtifactStoreAdapter) Exists(ctx context.Context, chainID uint64) (bool, error) {
	_, err := os.Stat(s.Path(chainID))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat artifact: %w", err)
}

// Save serializes the artifact as tab-indented JSON with a trailing newline.
// The file is created exclusively; an existing artifact is never overwritten.
func (s *ArtifactStoreAdapter) Save(ctx context.Context, chainID uint64, artifact *domain.PredeployArtifact) (string, error) {
	path := s.Path(chainID)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create artifact directory: %w", err)
	}

	data, err := json.MarshalIndent(artifact, "", "\t")
	if err != nil {
		return "", fmt.Errorf("failed to marshal artifact: %w", err)
	}
	data = append(data, '\n')

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return "", &domain.ArtifactExistsError{ChainID: chainID, Path: path}
		}
		return "", fmt.Errorf("failed to create artifact file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(data); err != nil {
		return "", fmt.Errorf("failed to write artifact file: %w", err)
	}

	return path, nil
}

// Get loads one artifact by chain ID.
func (s *ArtifactStoreAdapter) Get(ctx context.Context, chainID uint64) (*domain.RegisteredArtifact, error) {
	path := s.Path(chainID)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}

	var artifact domain.PredeployArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}

	return &domain.RegisteredArtifact{ChainID: chainID, Path: path, Artifact: &artifact}, nil
}

// List returns every artifact on disk, ordered by chain ID. Directories that
// aren't decimal chain IDs or hold no artifact file are skipped.
func (s *ArtifactStoreAdapter) List(ctx context.Context) ([]domain.RegisteredArtifact, error) {
	dirEntries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read artifacts directory: %w", err)
	}

	var artifacts []domain.RegisteredArtifact
	for _, entry := range dirEntries {
		if !entry.IsDir() {
			continue
		}
		chainID, err := strconv.ParseUint(entry.Name(), 10, 64)
		if err != nil || chainID == 0 {
			continue
		}
		artifact, err := s.Get(ctx, chainID)
		if err != nil {
			if err == domain.ErrNotFound {
				continue
			}
			return nil, err
		}
		artifacts = append(artifacts, *artifact)
	}

	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].ChainID < artifacts[j].ChainID
	})

	return artifacts, nil
}

var _ usecase.ArtifactStore = (*ArtifactStoreAdapter)(nil)
