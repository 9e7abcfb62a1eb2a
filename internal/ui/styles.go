// Package ui implements the interactive terminal form used to collect
// plugin options.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Plugsmith colors and styles
var (
	ColorBlue  = lipgloss.Color("39")
	ColorGreen = lipgloss.Color("42")
	ColorRed   = lipgloss.Color("196")
	ColorGray  = lipgloss.Color("240")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBlue).
			MarginBottom(1)

	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorBlue)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true).
			PaddingLeft(2)

	UnselectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			PaddingLeft(2)
)
