// Package app is the root Bubble Tea model: a tab bar over the dashboard
// pages with a one-line footer.
package app

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"go.uber.org/zap"

	"tableflip.dev/missioncontrol/pkg/dashboard"
	"tableflip.dev/missioncontrol/pkg/tui/components/agents"
	"tableflip.dev/missioncontrol/pkg/tui/components/calendar"
	"tableflip.dev/missioncontrol/pkg/tui/components/memory"
	"tableflip.dev/missioncontrol/pkg/tui/components/office"
	"tableflip.dev/missioncontrol/pkg/tui/components/tasks"
	"tableflip.dev/missioncontrol/pkg/tui/components/team"
	"tableflip.dev/missioncontrol/pkg/tui/theme"
	"tableflip.dev/missioncontrol/pkg/tui/ui"
)

const globalHelp = "tab/1-6 switch · :q quit"

// Model holds one component per tab.
type Model struct {
	svc   *dashboard.Service
	th    theme.Theme
	tabs  []dashboard.Tab
	views []ui.Component

	active int

	command bool
	buffer  string
	status  string

	width  int
	height int
}

// New loads every tab's initial state from svc.
func New(ctx context.Context, svc *dashboard.Service) (*Model, error) {
	th := theme.Default()

	board, err := svc.TaskBoard(ctx)
	if err != nil {
		return nil, err
	}
	events, err := svc.Events(ctx)
	if err != nil {
		return nil, err
	}
	browser, err := svc.MemoryBrowser(ctx)
	if err != nil {
		return nil, err
	}
	subs, err := svc.SubAgents(ctx)
	if err != nil {
		return nil, err
	}
	founders, members, err := svc.Team(ctx)
	if err != nil {
		return nil, err
	}
	desks, err := svc.Office(ctx)
	if err != nil {
		return nil, err
	}

	byID := map[string]ui.Component{
		"tasks":    tasks.NewModel(svc, board, th),
		"calendar": calendar.NewModel(svc, svc.Calendar(), events, th),
		"memory":   memory.NewModel(svc, browser, th),
		"agents":   agents.NewModel(subs, th),
		"team":     team.NewModel(founders, members, th),
		"office":   office.NewModel(svc, desks, th),
	}
	tabs := dashboard.Tabs()
	views := make([]ui.Component, 0, len(tabs))
	for _, t := range tabs {
		v, ok := byID[t.ID]
		if !ok {
			return nil, fmt.Errorf("app: no view for tab %q", t.ID)
		}
		views = append(views, v)
	}
	return &Model{svc: svc, th: th, tabs: tabs, views: views}, nil
}

// Run launches the interactive TUI program.
func Run(ctx context.Context, svc *dashboard.Service) error {
	m, err := New(ctx, svc)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.views))
	for _, v := range m.views {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

// Active returns the id of the visible tab.
func (m *Model) Active() string { return m.tabs[m.active].ID }

// Tab returns the component for tab id.
func (m *Model) Tab(id string) ui.Component {
	for i, t := range m.tabs {
		if t.ID == id {
			return m.views[i]
		}
	}
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, v := range m.views {
			v.SetSize(msg.Width, max(msg.Height-4, 1))
		}
		return m, nil
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.command {
			return m, m.handleCommandKey(msg)
		}
		if !m.views[m.active].Capturing() && m.handleGlobalKey(msg) {
			return m, nil
		}
	}
	return m, m.forward(msg)
}

func (m *Model) forward(msg tea.Msg) tea.Cmd {
	next, cmd := m.views[m.active].Update(msg)
	m.views[m.active] = next
	return cmd
}

func (m *Model) handleGlobalKey(msg tea.KeyPressMsg) bool {
	k := msg.String()
	switch k {
	case "tab":
		m.selectTab(m.active + 1)
		return true
	case "shift+tab":
		m.selectTab(m.active - 1)
		return true
	case ":":
		m.command = true
		m.buffer = ""
		return true
	}
	if len(k) == 1 && k[0] >= '1' && int(k[0]-'1') < len(m.tabs) {
		m.selectTab(int(k[0] - '1'))
		return true
	}
	return false
}

func (m *Model) selectTab(i int) {
	n := len(m.tabs)
	m.active = (i%n + n) % n
	m.status = ""
	m.svc.Log().Debug("tab selected", zap.String("tab", m.tabs[m.active].ID))
}

func (m *Model) handleCommandKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.command = false
		m.buffer = ""
		return nil
	case "enter":
		cmd := strings.TrimSpace(m.buffer)
		m.command = false
		m.buffer = ""
		switch cmd {
		case "q", "quit":
			return tea.Quit
		case "":
			return nil
		}
		m.status = fmt.Sprintf("unknown command %q", cmd)
		return nil
	case "backspace":
		if r := []rune(m.buffer); len(r) > 0 {
			m.buffer = string(r[:len(r)-1])
		}
		return nil
	}
	m.buffer += msg.Text
	return nil
}

// View implements tea.Model.
func (m *Model) View() string {
	labels := make([]string, 0, len(m.tabs))
	for i, t := range m.tabs {
		label := fmt.Sprintf("%d %s", i+1, t.Label)
		if i == m.active {
			labels = append(labels, m.th.Tabs.Active.Render(label))
		} else {
			labels = append(labels, m.th.Tabs.Inactive.Render(label))
		}
	}
	header := m.th.Tabs.Title.Render("Mission Control") + "  " + strings.Join(labels, "")

	var footer string
	switch {
	case m.command:
		footer = m.th.Footer.Command.Render(":" + m.buffer)
	case m.status != "":
		footer = m.th.Footer.Error.Render(m.status)
	default:
		footer = m.th.Footer.Help.Render(globalHelp)
	}
	return strings.Join([]string{header, "", m.views[m.active].View(), footer}, "\n")
}
