package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/predeploy-org/predeploy-cli/internal/domain"
)

// ChainsRenderer renders a chain registry entry.
type ChainsRenderer struct {
	out io.Writer
}

// NewChainsRenderer creates a new chains renderer.
func NewChainsRenderer(out io.Writer) *ChainsRenderer {
	return &ChainsRenderer{out: out}
}

// Render displays one registry entry.
func (r *ChainsRenderer) Render(entry *domain.ChainEntry) error {
	titleStyle := color.New(color.FgCyan, color.Bold)
	labelStyle := color.New(color.FgWhite, color.Bold)

	fmt.Fprintln(r.out)
	titleStyle.Fprintf(r.out, "%s\n", entry.Name)
	labelStyle.Fprint(r.out, "Chain ID:   ")
	fmt.Fprintf(r.out, "%d\n", entry.ChainID)
	labelStyle.Fprint(r.out, "Short name: ")
	fmt.Fprintf(r.out, "%s\n", entry.ShortName)
	if entry.InfoURL != "" {
		labelStyle.Fprint(r.out, "Info:       ")
		fmt.Fprintf(r.out, "%s\n", entry.InfoURL)
	}

	labelStyle.Fprintln(r.out, "RPC endpoints:")
	if len(entry.RPC) == 0 {
		color.New(color.Faint).Fprintln(r.out, "  none listed")
	}
	for _, u := range entry.RPC {
		fmt.Fprintf(r.out, "  - %s\n", u)
	}

	if url, ok := entry.FirstHTTPRPC(); ok {
		labelStyle.Fprint(r.out, "Verification endpoint: ")
		color.New(color.FgGreen).Fprintf(r.out, "%s\n", url)
	} else {
		color.New(color.FgYellow).Fprintln(r.out, "No http(s) endpoint usable for verification")
	}
	fmt.Fprintln(r.out)

	return nil
}

var _ Renderer[*domain.ChainEntry] = (*ChainsRenderer)(nil)
