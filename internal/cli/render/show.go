package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/predeploy-org/predeploy-cli/internal/usecase"
)

// ShowRenderer renders a single registered artifact.
type ShowRenderer struct {
	out io.Writer
}

// NewShowRenderer creates a new show renderer.
func NewShowRenderer(out io.Writer) *ShowRenderer {
	return &ShowRenderer{out: out}
}

// Render prints the artifact body followed by its location on disk.
func (r *ShowRenderer) Render(result *usecase.ShowArtifactResult) error {
	data, err := json.MarshalIndent(result.Artifact.Artifact, "", "\t")
	if err != nil {
		return fmt.Errorf("failed to marshal artifact: %w", err)
	}

	fmt.Fprintf(r.out, "%s\n", data)
	color.New(color.Faint).Fprintf(r.out, "%s\n", result.Artifact.Path)
	return nil
}

var _ Renderer[*usecase.ShowArtifactResult] = (*ShowRenderer)(nil)
