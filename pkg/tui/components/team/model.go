// Package team renders the founders and agents tab.
package team

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/missioncontrol/pkg/glyph"
	roster "tableflip.dev/missioncontrol/pkg/team"
	"tableflip.dev/missioncontrol/pkg/tui/theme"
	"tableflip.dev/missioncontrol/pkg/tui/ui"
)

type Model struct {
	th       theme.Theme
	founders []roster.Member
	agents   []roster.Member
	width    int
}

func NewModel(founders, agents []roster.Member, th theme.Theme) *Model {
	return &Model{th: th, founders: founders, agents: agents, width: 96}
}

func (m *Model) Init() tea.Cmd { return nil }
func (m *Model) Update(tea.Msg) (ui.Component, tea.Cmd) { return m, nil }
func (m *Model) Capturing() bool { return false }
func (m *Model) SetSize(width, _ int) { m.width = width }

func (m *Model) View() string {
	return strings.Join([]string{
		m.section("Founders", m.founders),
		m.section("Agents", m.agents),
	}, "\n\n")
}

func (m *Model) section(title string, members []roster.Member) string {
	head := m.th.Tabs.Title.Render(fmt.Sprintf("%s (%d)", title, len(members)))
	if len(members) == 0 {
		return head + "\n" + m.th.Panel.Muted.Render("none")
	}
	cardWidth := max(m.width/3-2, 24)
	cards := make([]string, 0, len(members))
	for _, mb := range members {
		body := []string{
			m.th.Panel.Title.Render(mb.Avatar + " " + mb.Name),
			m.th.Panel.Muted.Render(mb.Role),
			glyph.Member(mb.Status).String(),
		}
		for _, r := range mb.Responsibilities {
			body = append(body, "• "+r)
		}
		cards = append(cards, m.th.Panel.Frame.Width(cardWidth).Render(strings.Join(body, "\n")))
	}

	perRow := max(m.width/cardWidth, 1)
	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := min(i+perRow, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return head + "\n" + strings.Join(rows, "\n")
}
