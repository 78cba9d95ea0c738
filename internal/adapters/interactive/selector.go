package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"

	"github.com/predeploy-org/predeploy-cli/internal/config"
	"github.com/predeploy-org/predeploy-cli/internal/domain"
	"github.com/predeploy-org/predeploy-cli/internal/usecase"
)

// SelectorAdapter handles interactive chain selection.
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter.
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectChain selects one chain entry from a list.
func (s *SelectorAdapter) SelectChain(ctx context.Context, entries []domain.ChainEntry, prompt string) (*domain.ChainEntry, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("no chains provided for selection")
	}
	if len(entries) == 1 {
		return &entries[0], nil
	}

	if s.config.NonInteractive {
		return nil, fmt.Errorf("%d chains match; narrow the query or drop --non-interactive", len(entries))
	}

	options := make([]string, len(entries))
	for i, entry := range entries {
		options[i] = fmt.Sprintf("%s (chain %d, %s)", entry.Name, entry.ChainID, entry.ShortName)
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, type to filter, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          fuzzySearcher(options),
	}

	idx, _, err := promptSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}

	return &entries[idx], nil
}

func fuzzySearcher(options []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if strings.TrimSpace(input) == "" {
			return true
		}
		matches := fuzzy.Find(input, options)
		for _, match := range matches {
			if match.Index == index {
				return true
			}
		}
		return false
	}
}

var _ usecase.ChainSelector = (*SelectorAdapter)(nil)
