package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/predeploy-org/predeploy-cli/internal/domain"
	"github.com/predeploy-org/predeploy-cli/internal/usecase"
)

// RegisterRenderer renders registration results and the run summary line.
type RegisterRenderer struct {
	out io.Writer
}

// NewRegisterRenderer creates a new register renderer.
func NewRegisterRenderer(out io.Writer) *RegisterRenderer {
	return &RegisterRenderer{out: out}
}

// Render displays the pipeline result (when there is one) and mirrors the
// run summary to stdout.
func (r *RegisterRenderer) Render(result *usecase.RegisterPredeployResult, summary domain.RunSummary) error {
	if !summary.Success {
		color.New(color.FgRed).Fprintf(r.out, "✗ %s\n", summary.Message)
		return nil
	}

	if result.ChainName != "" {
		fmt.Fprintf(r.out, "Chain:    %s (%d)\n", result.ChainName, result.ChainID)
	} else {
		fmt.Fprintf(r.out, "Chain:    %d\n", result.ChainID)
	}
	if result.ChainlistSkipped {
		color.New(color.Faint).Fprintln(r.out, "Registry: skipped")
	} else {
		fmt.Fprintln(r.out, "Registry: listed")
	}
	switch {
	case result.Verified:
		fmt.Fprintf(r.out, "Factory:  verified via %s (code hash %s)\n", result.RPCURL, result.Outcome.CodeHash.Hex())
	case result.VerifySkipped:
		color.New(color.FgYellow).Fprintln(r.out, "Factory:  not verified (no rpc endpoint)")
	}
	fmt.Fprintf(r.out, "Artifact: %s\n", result.ArtifactPath)

	color.New(color.FgGreen).Fprintf(r.out, "✓ %s\n", summary.Message)
	return nil
}
