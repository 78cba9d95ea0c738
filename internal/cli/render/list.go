package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/predeploy-org/predeploy-cli/internal/usecase"
)

// ListRenderer renders registered artifacts as a table.
type ListRenderer struct {
	out io.Writer
}

// NewListRenderer creates a new list renderer.
func NewListRenderer(out io.Writer) *ListRenderer {
	return &ListRenderer{out: out}
}

// Render displays all registered artifacts.
func (r *ListRenderer) Render(result *usecase.ListArtifactsResult) error {
	if result.Total == 0 {
		fmt.Fprintln(r.out, "No registered pre-deployments found")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})

	t.AppendHeader(table.Row{"CHAIN", "ADDRESS", "ARTIFACT"})
	for _, a := range result.Artifacts {
		t.AppendRow(table.Row{a.ChainID, a.Artifact.Address, a.Path})
	}
	t.Render()

	fmt.Fprintf(r.out, "\n%d chain(s) registered\n", result.Total)
	return nil
}

var _ Renderer[*usecase.ListArtifactsResult] = (*ListRenderer)(nil)
