package ui

import tea "github.com/charmbracelet/bubbletea/v2"

// Component is one dashboard tab.
type Component interface {
	Init() tea.Cmd
	Update(tea.Msg) (Component, tea.Cmd)
	View() string
	SetSize(width, height int)
	// Capturing reports whether the tab is reading text, in which case the
	// root model must not interpret keys itself.
	Capturing() bool
}
