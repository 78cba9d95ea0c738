package render

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predeploy-org/predeploy-cli/internal/domain"
)

func TestWriteSummaryFileSuccess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "summary.json")

	summary := domain.SuccessSummary("registered pre-deployment for chain 10 at artifacts/10/deployment.json")
	require.NoError(t, WriteSummaryFile(path, summary))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	expected := `{
  "message": "registered pre-deployment for chain 10 at artifacts/10/deployment.json",
  "success": true
}
`
	assert.Equal(t, expected, string(data))
}

func TestWriteSummaryFileFailureCarriesCause(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "summary.json")

	summary := domain.FailureSummary(&domain.ChainNotListedError{ChainID: 424242})
	require.NoError(t, WriteSummaryFile(path, summary))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"cause": "chain-not-listed"`)
	assert.Contains(t, string(data), `"success": false`)
}

func TestWriteSummaryFileUnexpectedCause(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "summary.json")

	summary := domain.FailureSummary(errors.New("disk on fire"))
	require.NoError(t, WriteSummaryFile(path, summary))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"cause": "unexpected"`)
}
