package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the recipe screen until the user quits.
func Run(opts Options) error {
	applyThemePreference()
	applyColorProfilePreference()

	m := newAppModel(opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
