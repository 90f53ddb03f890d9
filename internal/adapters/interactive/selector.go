package interactive

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dappctl/dappctl/internal/domain"
	"github.com/dappctl/dappctl/internal/domain/config"
	"github.com/dappctl/dappctl/internal/usecase"
	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
)

// SelectorAdapter handles interactive selection and confirmation
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectContract selects a contract from a list
func (s *SelectorAdapter) SelectContract(ctx context.Context, contracts []*domain.ContractRef, prompt string) (*domain.ContractRef, error) {
	// In non-interactive mode, we can't select
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(contracts) == 0 {
		return nil, fmt.Errorf("no contracts provided for selection")
	}

	// If only one match, return it directly
	if len(contracts) == 1 {
		return contracts[0], nil
	}

	options := formatContractOptions(contracts)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(options),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}

	return contracts[index], nil
}

// Confirm asks a yes/no question, defaulting to no
func (s *SelectorAdapter) Confirm(ctx context.Context, prompt string) (bool, error) {
	if s.config.NonInteractive {
		return true, nil
	}

	confirm := promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
	}
	if _, err := confirm.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// formatContractOptions creates display strings for contract selection
func formatContractOptions(contracts []*domain.ContractRef) []string {
	options := make([]string, len(contracts))
	for i, contract := range contracts {
		// Format as "Name (path/to/File.sol)"
		contractName := color.New(color.FgWhite, color.Bold).Sprint(contract.Name)
		pathStr := color.New(color.FgBlue).Sprint(contract.SourceName)
		options[i] = fmt.Sprintf("%s (%s)", contractName, pathStr)
	}
	return options
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		// Empty search shows all items
		if input == "" {
			return true
		}

		// Convert to lowercase for case-insensitive search
		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		// First try simple substring match
		if strings.Contains(item, input) {
			return true
		}

		// Then try fuzzy match
		pattern := fuzzy.Find(input, []string{item})
		return len(pattern) > 0
	}
}

// Ensure the adapter implements the interfaces
var (
	_ usecase.ContractSelector = (*SelectorAdapter)(nil)
	_ usecase.Confirmer        = (*SelectorAdapter)(nil)
)
