package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// MultiSelectModel is a multi-selection list with checkboxes. Choices carry
// an identifier separate from their display label so the caller gets back
// catalog IDs, not rendered text.
type MultiSelectModel struct {
	prompt    string
	ids       []string
	labels    []string
	cursor    int
	selected  map[int]bool
	order     []int
	done      bool
	cancelled bool
}

// NewMultiSelect creates a new multi-selection prompt.
func NewMultiSelect(prompt string, ids, labels []string) MultiSelectModel {
	return MultiSelectModel{
		prompt:   prompt,
		ids:      ids,
		labels:   labels,
		selected: make(map[int]bool),
	}
}

func (m MultiSelectModel) Init() tea.Cmd {
	return nil
}

func (m MultiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.ids)-1 {
				m.cursor++
			}
		case " ", "x":
			if m.selected[m.cursor] {
				delete(m.selected, m.cursor)
				for i, idx := range m.order {
					if idx == m.cursor {
						m.order = append(m.order[:i], m.order[i+1:]...)
						break
					}
				}
			} else {
				m.selected[m.cursor] = true
				m.order = append(m.order, m.cursor)
			}
		case "enter":
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m MultiSelectModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	s := fmt.Sprintf("%s\n\n", PromptStyle.Render(m.prompt))

	for i, label := range m.labels {
		cursor := " "
		checkbox := "[ ]"
		style := UnselectedStyle

		if i == m.cursor {
			cursor = ">"
			style = SelectedStyle
		}

		if m.selected[i] {
			checkbox = "[x]"
		}

		s += fmt.Sprintf("  %s %s %s\n", cursor, checkbox, style.Render(label))
	}

	s += fmt.Sprintf("\n%s", HelpStyle.Render("↑/↓: navigate • space: toggle • enter: confirm • esc: cancel"))

	return s
}

// SelectedIDs returns the selected identifiers in toggle order, which
// becomes the generation order downstream.
func (m MultiSelectModel) SelectedIDs() []string {
	var out []string
	for _, idx := range m.order {
		out = append(out, m.ids[idx])
	}
	return out
}

// IsDone returns whether selection is complete.
func (m MultiSelectModel) IsDone() bool {
	return m.done
}

// IsCancelled returns whether the user cancelled.
func (m MultiSelectModel) IsCancelled() bool {
	return m.cancelled
}
