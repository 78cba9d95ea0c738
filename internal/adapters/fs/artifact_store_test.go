package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predeploy-org/predeploy-cli/internal/config"
	"github.com/predeploy-org/predeploy-cli/internal/domain"
)

func newStore(t *testing.T) *ArtifactStoreAdapter {
	t.Helper()
	return NewArtifactStoreAdapter(&config.RuntimeConfig{
		ArtifactsDir: filepath.Join(t.TempDir(), "artifacts"),
	})
}

func TestArtifactStoreSave(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	path, err := store.Save(ctx, 10, domain.NewPredeployArtifact())
	require.NoError(t, err)
	assert.Equal(t, store.Path(10), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := "{\n" +
		"\t\"gasPrice\": 0,\n" +
		"\t\"gasLimit\": 0,\n" +
		"\t\"signerAddress\": \"0x0000000000000000000000000000000000000000\",\n" +
		"\t\"transaction\": \"0x\",\n" +
		"\t\"address\": \"0x914d7Fec6aaC8cd542e72Bca78B30650d45643d7\"\n" +
		"}\n"
	assert.Equal(t, want, string(data), "artifact must be tab-indented with a trailing newline")
}

func TestArtifactStoreNeverOverwrites(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	path, err := store.Save(ctx, 10, domain.NewPredeployArtifact())
	require.NoError(t, err)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = store.Save(ctx, 10, domain.NewPredeployArtifact())
	require.Error(t, err)
	assert.Equal(t, domain.CauseArtifactExists, domain.CauseOf(err))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "existing artifact must not be modified")
}

func TestArtifactStoreExists(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	exists, err := store.Exists(ctx, 10)
	require.NoError(t, err)
	assert.False(t, exists)

	// A leftover directory without the file does not count.
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path(10)), 0o755))
	exists, err = store.Exists(ctx, 10)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = store.Save(ctx, 10, domain.NewPredeployArtifact())
	require.NoError(t, err)
	exists, err = store.Exists(ctx, 10)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestArtifactStoreGet(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	_, err := store.Get(ctx, 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = store.Save(ctx, 10, domain.NewPredeployArtifact())
	require.NoError(t, err)

	got, err := store.Get(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), got.ChainID)
	assert.Equal(t, domain.NewPredeployArtifact(), got.Artifact)
}

func TestArtifactStoreList(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	artifacts, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, artifacts)

	for _, id := range []uint64{84532, 1, 10} {
		_, err := store.Save(ctx, id, domain.NewPredeployArtifact())
		require.NoError(t, err)
	}

	// Junk alongside artifact directories is ignored.
	require.NoError(t, os.MkdirAll(filepath.Join(filepath.Dir(filepath.Dir(store.Path(1))), "not-a-chain"), 0o755))

	artifacts, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, artifacts, 3)
	assert.Equal(t, uint64(1), artifacts[0].ChainID)
	assert.Equal(t, uint64(10), artifacts[1].ChainID)
	assert.Equal(t, uint64(84532), artifacts[2].ChainID)
}
