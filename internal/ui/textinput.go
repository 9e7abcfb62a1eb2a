package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TextInputModel is a single-line text prompt. An empty submission is a
// valid answer; most plugin fields are optional and fall back to their
// defaults downstream.
type TextInputModel struct {
	textInput textinput.Model
	prompt    string
	value     string
	done      bool
	cancelled bool
}

// NewTextInput creates a new text input prompt.
func NewTextInput(prompt, placeholder string) TextInputModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60

	return TextInputModel{
		textInput: ti,
		prompt:    prompt,
	}
}

func (m TextInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m TextInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			m.value = m.textInput.Value()
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m TextInputModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	return fmt.Sprintf(
		"%s\n\n%s\n\n%s",
		PromptStyle.Render(m.prompt),
		m.textInput.View(),
		HelpStyle.Render("enter: submit • esc: cancel"),
	)
}

// Value returns the entered value.
func (m TextInputModel) Value() string {
	return m.value
}

// IsDone returns whether a value was submitted.
func (m TextInputModel) IsDone() bool {
	return m.done
}

// IsCancelled returns whether the user cancelled.
func (m TextInputModel) IsCancelled() bool {
	return m.cancelled
}
