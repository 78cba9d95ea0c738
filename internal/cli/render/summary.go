package render

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/predeploy-org/predeploy-cli/internal/domain"
)

// WriteSummaryFile serializes the run summary as two-space-indented JSON to
// the given path, creating missing parent directories.
func WriteSummaryFile(path string, summary domain.RunSummary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create summary directory: %w", err)
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write summary file: %w", err)
	}

	return nil
}
