package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/missioncontrol/pkg/agent"
	"tableflip.dev/missioncontrol/pkg/calendar"
)

// Theme centralizes Lip Gloss styles for the dashboard.
type Theme struct {
	Tabs     TabTheme
	Footer   FooterTheme
	Panel    PanelTheme
	Board    BoardTheme
	Calendar calendar.Options
	Tag      TagTheme
	Progress ProgressTheme
}

// TabTheme styles the tab bar.
type TabTheme struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
	Title    lipgloss.Style
}

// FooterTheme groups styles used by the bottom status/command bar.
type FooterTheme struct {
	Help    lipgloss.Style
	Status  lipgloss.Style
	Error   lipgloss.Style
	Command lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame   lipgloss.Style
	Focused lipgloss.Style
	Title   lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
}

// BoardTheme styles kanban cards.
type BoardTheme struct {
	Card     lipgloss.Style
	Selected lipgloss.Style
	High     lipgloss.Style
	Medium   lipgloss.Style
	Low      lipgloss.Style
}

// TagTheme styles the memory tag buttons.
type TagTheme struct {
	On     lipgloss.Style
	Off    lipgloss.Style
	Cursor lipgloss.Style
}

// ProgressTheme tints progress bars, blending From at 0% into To at 100%.
type ProgressTheme struct {
	From colorful.Color
	To   colorful.Color
}

// Render draws agent.Bar in the blended color for percent.
func (p ProgressTheme) Render(percent, width int) string {
	t := float64(agent.ClampPercent(percent)) / 100
	return lipgloss.NewStyle().Foreground(p.From.BlendLuv(p.To, t).Clamped()).Render(agent.Bar(percent, width))
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := lipgloss.Color("212")
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	return Theme{
		Tabs: TabTheme{
			Active:   lipgloss.NewStyle().Foreground(accent).Bold(true).Underline(true).Padding(0, 1),
			Inactive: muted.Padding(0, 1),
			Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		},
		Footer: FooterTheme{
			Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status:  muted,
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
			Command: lipgloss.NewStyle().Foreground(accent).Bold(true),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1),
			Focused: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
			Muted: muted,
		},
		Board: BoardTheme{
			Card:     lipgloss.NewStyle(),
			Selected: lipgloss.NewStyle().Reverse(true),
			High:     lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
			Medium:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Low:      lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		},
		Calendar: calendar.DefaultOptions(),
		Tag: TagTheme{
			On:     lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("39")).Padding(0, 1),
			Off:    muted.Padding(0, 1),
			Cursor: lipgloss.NewStyle().Underline(true),
		},
		Progress: ProgressTheme{
			From: colorful.Color{R: 0.95, G: 0.36, B: 0.58},
			To:   colorful.Color{R: 0.26, G: 0.75, B: 0.43},
		},
	}
}
