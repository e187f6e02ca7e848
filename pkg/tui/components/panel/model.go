// Package panel is a framed title-and-lines box.
package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/missioncontrol/pkg/tui/theme"
)

type Model struct {
	title      string
	lines      []string
	width      int
	frameStyle lipgloss.Style
	titleStyle lipgloss.Style
	bodyStyle  lipgloss.Style
}

func New(th theme.PanelTheme) Model {
	return Model{
		frameStyle: th.Frame,
		titleStyle: th.Title,
		bodyStyle:  th.Body,
	}
}

// SetContent updates the panel title and body lines.
func (m *Model) SetContent(title string, lines []string) {
	m.title = title
	m.lines = lines
}

// SetWidth fixes the frame width; zero sizes to content.
func (m *Model) SetWidth(width int) { m.width = width }

// View returns the rendered panel string and its total height in lines.
func (m Model) View() (string, int) {
	var content []string
	if m.title != "" {
		content = append(content, m.titleStyle.Render(m.title))
	}
	for _, line := range m.lines {
		content = append(content, m.bodyStyle.Render(line))
	}
	frame := m.frameStyle
	if m.width > 0 {
		frame = frame.Width(m.width)
	}
	view := frame.Render(strings.Join(content, "\n"))
	height := strings.Count(view, "\n") + 1
	return view, height
}
