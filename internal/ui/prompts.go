package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled is returned when the user backs out of a prompt.
var ErrCancelled = fmt.Errorf("cancelled")

// Prompter runs the interactive prompts making up the plugin form.
type Prompter struct{}

// NewPrompter creates a new prompter.
func NewPrompter() *Prompter {
	return &Prompter{}
}

// AskText prompts for text input. An empty answer is valid; optional
// fields resolve their defaults downstream.
func (p *Prompter) AskText(prompt, placeholder string) (string, error) {
	m, err := tea.NewProgram(NewTextInput(prompt, placeholder)).Run()
	if err != nil {
		return "", err
	}

	result := m.(TextInputModel)
	if result.IsCancelled() || !result.IsDone() {
		return "", ErrCancelled
	}

	return result.Value(), nil
}

// AskConfirm prompts for yes/no confirmation.
func (p *Prompter) AskConfirm(prompt string, defaultYes bool) (bool, error) {
	m, err := tea.NewProgram(NewConfirm(prompt, defaultYes)).Run()
	if err != nil {
		return false, err
	}

	result := m.(ConfirmModel)
	if result.IsCancelled() {
		return false, ErrCancelled
	}

	return result.IsConfirmed(), nil
}

// AskSelect prompts for a single selection.
func (p *Prompter) AskSelect(prompt string, choices []string) (string, error) {
	m, err := tea.NewProgram(NewSelect(prompt, choices)).Run()
	if err != nil {
		return "", err
	}

	result := m.(SelectModel)
	if result.IsCancelled() || !result.IsDone() {
		return "", ErrCancelled
	}

	return result.SelectedValue(), nil
}

// AskMultiSelect prompts for zero or more selections and returns the chosen
// identifiers in toggle order.
func (p *Prompter) AskMultiSelect(prompt string, ids, labels []string) ([]string, error) {
	m, err := tea.NewProgram(NewMultiSelect(prompt, ids, labels)).Run()
	if err != nil {
		return nil, err
	}

	result := m.(MultiSelectModel)
	if result.IsCancelled() {
		return nil, ErrCancelled
	}

	return result.SelectedIDs(), nil
}

// AskDirectory opens the directory picker. The second return value is
// false when the user cancelled; cancellation is not an error.
func (p *Prompter) AskDirectory(prompt, start string) (string, bool, error) {
	m, err := tea.NewProgram(NewDirPicker(prompt, start)).Run()
	if err != nil {
		return "", false, err
	}

	result := m.(DirPickerModel)
	if result.IsCancelled() || !result.IsDone() {
		return "", false, nil
	}

	return result.Path(), true, nil
}
