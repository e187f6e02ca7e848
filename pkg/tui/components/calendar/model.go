// Package calendar renders the month grid tab.
package calendar

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	cal "tableflip.dev/missioncontrol/pkg/calendar"
	"tableflip.dev/missioncontrol/pkg/dashboard"
	"tableflip.dev/missioncontrol/pkg/tui/theme"
	"tableflip.dev/missioncontrol/pkg/tui/ui"
)

const helpLine = "h/l month · t today"

type Model struct {
	svc    *dashboard.Service
	th     theme.Theme
	state  cal.State
	events []cal.Event

	width  int
	height int
}

func NewModel(svc *dashboard.Service, state cal.State, events []cal.Event, th theme.Theme) *Model {
	return &Model{svc: svc, th: th, state: state, events: events}
}

func (m *Model) Init() tea.Cmd { return nil }

// State returns the displayed month.
func (m *Model) State() cal.State { return m.state }

func (m *Model) Capturing() bool { return false }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "h", "left":
		m.state = m.svc.ShiftCalendar(m.state, -1)
	case "l", "right":
		m.state = m.svc.ShiftCalendar(m.state, 1)
	case "t":
		m.state = m.state.Reset()
	}
	return m, nil
}

func (m *Model) View() string {
	grid := cal.Render(m.state, m.events, m.th.Calendar)
	month := m.th.Panel.Frame.Render(m.th.Tabs.Title.Render(m.state.Title()) + "\n\n" + grid)

	side := []string{m.th.Panel.Title.Render("Upcoming")}
	upcoming := cal.Upcoming(m.events, m.state.Today, cal.DefaultUpcomingDays)
	if len(upcoming) == 0 {
		side = append(side, m.th.Panel.Muted.Render("nothing in the next week"))
	}
	for _, e := range upcoming {
		style, ok := m.th.Calendar.Categories[e.Category]
		if !ok {
			style = m.th.Panel.Body
		}
		side = append(side, fmt.Sprintf("%s %s %2d  %s", style.Render("■"), m.state.Today.Format("Jan"), e.Day, e.Title))
	}
	agenda := cal.Agenda(m.state, m.events)
	side = append(side, "", m.th.Panel.Title.Render("This month"))
	if len(agenda) == 0 {
		side = append(side, m.th.Panel.Muted.Render("no events"))
	}
	side = append(side, agenda...)
	panel := m.th.Panel.Frame.Render(strings.Join(side, "\n"))

	body := lipgloss.JoinHorizontal(lipgloss.Top, month, " ", panel)
	return body + "\n" + m.th.Footer.Help.Render(helpLine)
}
