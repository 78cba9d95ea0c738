package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/predeploy-org/predeploy-cli/internal/domain"
	"github.com/predeploy-org/predeploy-cli/internal/usecase"
)

// VerifyRenderer renders standalone verification results.
type VerifyRenderer struct {
	out io.Writer
}

// NewVerifyRenderer creates a new verify renderer.
func NewVerifyRenderer(out io.Writer) *VerifyRenderer {
	return &VerifyRenderer{out: out}
}

// Render displays the verification outcome.
func (r *VerifyRenderer) Render(result *usecase.VerifyChainResult) error {
	if result.ChainName != "" {
		fmt.Fprintf(r.out, "Chain:     %s (%d)\n", result.ChainName, result.ChainID)
	} else {
		fmt.Fprintf(r.out, "Chain:     %d\n", result.ChainID)
	}
	fmt.Fprintf(r.out, "Endpoint:  %s\n", result.RPCURL)
	fmt.Fprintf(r.out, "Factory:   %s\n", domain.FactoryAddress.Hex())
	fmt.Fprintf(r.out, "Code size: %d bytes\n", result.Outcome.CodeSize)
	fmt.Fprintf(r.out, "Code hash: %s\n", result.Outcome.CodeHash.Hex())

	color.New(color.FgGreen).Fprintf(r.out, "✓ factory verified on chain %d\n", result.ChainID)
	return nil
}

var _ Renderer[*usecase.VerifyChainResult] = (*VerifyRenderer)(nil)
