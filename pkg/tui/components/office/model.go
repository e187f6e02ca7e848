// Package office renders the desk board with its detail pane and feed.
package office

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/missioncontrol/pkg/agent"
	"tableflip.dev/missioncontrol/pkg/dashboard"
	"tableflip.dev/missioncontrol/pkg/glyph"
	"tableflip.dev/missioncontrol/pkg/tui/components/panel"
	"tableflip.dev/missioncontrol/pkg/tui/theme"
	"tableflip.dev/missioncontrol/pkg/tui/ui"
)

const helpLine = "j/k desk · enter select"

type Model struct {
	svc    *dashboard.Service
	th     theme.Theme
	office agent.Office
	cursor int
	detail panel.Model
	width  int
}

func NewModel(svc *dashboard.Service, office agent.Office, th theme.Theme) *Model {
	return &Model{svc: svc, th: th, office: office, detail: panel.New(th.Panel), width: 96}
}

func (m *Model) Init() tea.Cmd { return nil }

// Office returns the current selection state.
func (m *Model) Office() agent.Office { return m.office }

// Cursor is the highlighted desk index.
func (m *Model) Cursor() int { return m.cursor }

func (m *Model) Capturing() bool { return false }

func (m *Model) SetSize(width, _ int) { m.width = width }

func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	agents := m.office.Agents()
	switch key.String() {
	case "j", "down":
		if m.cursor < len(agents)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		if m.cursor < len(agents) {
			m.office = m.svc.ToggleAgent(m.office, agents[m.cursor].ID)
		}
	}
	return m, nil
}

func (m *Model) View() string {
	desks := []string{m.th.Panel.Title.Render("Desks")}
	for i, a := range m.office.Agents() {
		marker := "  "
		if m.office.IsSelected(a.ID) {
			marker = "▸ "
		}
		line := fmt.Sprintf("%s%d %s %-18s %s %s", marker, a.Desk, a.Avatar, a.Name, m.th.Progress.Render(a.Progress, 10), agent.Percent(a.Progress))
		if i == m.cursor {
			line = m.th.Board.Selected.Render(line)
		}
		desks = append(desks, line)
	}
	left := m.th.Panel.Frame.Render(strings.Join(desks, "\n"))

	if sel, ok := m.office.Selected(); ok {
		m.detail.SetContent(sel.Avatar+" "+sel.Name, []string{
			glyph.Desk(sel).String(),
			sel.Activity,
			m.th.Progress.Render(sel.Progress, 20) + " " + agent.Percent(sel.Progress),
		})
	} else {
		m.detail.SetContent("Agent detail", []string{m.th.Panel.Muted.Render("press enter on a desk")})
	}
	right, _ := m.detail.View()

	feed := []string{m.th.Panel.Title.Render("Activity Feed")}
	items := m.office.Feed()
	if len(items) == 0 {
		feed = append(feed, m.th.Panel.Muted.Render("everyone is idle"))
	}
	for _, a := range items {
		feed = append(feed, fmt.Sprintf("%s %s: %s", a.Avatar, a.Name, a.Activity))
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	return strings.Join([]string{top, m.th.Panel.Frame.Render(strings.Join(feed, "\n")), m.th.Footer.Help.Render(helpLine)}, "\n")
}
