package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
)

// DirPickerModel is a terminal directory chooser, the stand-in for the
// desktop app's native directory dialog.
type DirPickerModel struct {
	picker    filepicker.Model
	prompt    string
	path      string
	done      bool
	cancelled bool
}

// NewDirPicker creates a directory picker rooted at start.
func NewDirPicker(prompt, start string) DirPickerModel {
	fp := filepicker.New()
	fp.CurrentDirectory = start
	fp.DirAllowed = true
	fp.FileAllowed = false
	fp.ShowHidden = false

	return DirPickerModel{
		picker: fp,
		prompt: prompt,
	}
}

func (m DirPickerModel) Init() tea.Cmd {
	return m.picker.Init()
}

func (m DirPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.path = path
		m.done = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m DirPickerModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	return fmt.Sprintf(
		"%s\n\n%s\n\n%s",
		PromptStyle.Render(m.prompt),
		m.picker.View(),
		HelpStyle.Render("↑/↓: navigate • enter: choose • esc: cancel"),
	)
}

// Path returns the chosen directory.
func (m DirPickerModel) Path() string {
	return m.path
}

// IsDone returns whether a directory was chosen.
func (m DirPickerModel) IsDone() bool {
	return m.done
}

// IsCancelled returns whether the user cancelled.
func (m DirPickerModel) IsCancelled() bool {
	return m.cancelled
}
