package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dappctl/dappctl/internal/usecase"
	"github.com/fatih/color"
)

// multiSelectModel is the bubbletea model for multi-select
type multiSelectModel struct {
	items    []usecase.Scenario
	cursor   int
	selected map[int]bool
	title    string
	done     bool
	quit     bool
}

// initialMultiSelectModel creates the initial model with every scenario selected
func initialMultiSelectModel(scenarios []usecase.Scenario, title string) multiSelectModel {
	selected := make(map[int]bool, len(scenarios))
	for i := range scenarios {
		selected[i] = true
	}
	return multiSelectModel{
		items:    scenarios,
		selected: selected,
		title:    title,
	}
}

// Init is the initial command for bubbletea
func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quit = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case " ":
			m.selected[m.cursor] = !m.selected[m.cursor]
		case "a":
			all := len(m.selectedIndices()) < len(m.items)
			for i := range m.items {
				m.selected[i] = all
			}
		case "enter":
			if len(m.selectedIndices()) > 0 {
				m.done = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// View renders the UI
func (m multiSelectModel) View() string {
	if m.done || m.quit {
		return ""
	}

	var b strings.Builder
	b.WriteString(color.New(color.FgCyan, color.Bold).Sprintf("%s\n\n", m.title))

	for i, item := range m.items {
		cursor := " "
		if m.cursor == i {
			cursor = color.New(color.FgCyan).Sprint("▸")
		}

		checkbox := color.New(color.FgWhite).Sprint("○")
		if m.selected[i] {
			checkbox = color.New(color.FgGreen).Sprint("✓")
		}

		name := color.New(color.FgWhite).Sprint(item.Name)
		desc := color.New(color.Faint).Sprintf("(%s)", item.Description)

		b.WriteString(fmt.Sprintf("%s %s %s %s\n", cursor, checkbox, name, desc))
	}

	b.WriteString("\n")
	b.WriteString(color.New(color.FgYellow).Sprint("↑/↓: move  Space: toggle  a: all/none  Enter: confirm  q: quit\n"))

	return b.String()
}

// selectedIndices returns the selected positions in display order
func (m multiSelectModel) selectedIndices() []int {
	var indices []int
	for i := range m.items {
		if m.selected[i] {
			indices = append(indices, i)
		}
	}
	return indices
}

// SelectScenarios shows a multi-select interface and returns the chosen scenario names
func SelectScenarios(scenarios []usecase.Scenario, title string) ([]string, error) {
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios to select")
	}

	p := tea.NewProgram(initialMultiSelectModel(scenarios, title))
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("multi-select failed: %w", err)
	}

	m := finalModel.(multiSelectModel)
	if !m.done {
		return nil, fmt.Errorf("selection cancelled")
	}

	var names []string
	for _, i := range m.selectedIndices() {
		names = append(names, m.items[i].Name)
	}
	return names, nil
}
