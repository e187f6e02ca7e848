// Package agents renders the sub-agent roster tab.
package agents

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/missioncontrol/pkg/agent"
	"tableflip.dev/missioncontrol/pkg/glyph"
	"tableflip.dev/missioncontrol/pkg/tui/theme"
	"tableflip.dev/missioncontrol/pkg/tui/ui"
)

type Model struct {
	th    theme.Theme
	subs  []agent.SubAgent
	width int
}

func NewModel(subs []agent.SubAgent, th theme.Theme) *Model {
	return &Model{th: th, subs: subs, width: 80}
}

func (m *Model) Init() tea.Cmd { return nil }
func (m *Model) Update(tea.Msg) (ui.Component, tea.Cmd) { return m, nil }
func (m *Model) Capturing() bool { return false }
func (m *Model) SetSize(width, _ int) { m.width = width }

func (m *Model) View() string {
	lines := []string{m.th.Tabs.Title.Render(fmt.Sprintf("%d Active", agent.ActiveCount(m.subs))), ""}
	if len(m.subs) == 0 {
		lines = append(lines, m.th.Panel.Muted.Render("no sub-agents"))
	}
	wrap := max(m.width-6, 20)
	for _, s := range m.subs {
		card := []string{
			m.th.Panel.Title.Render(s.Name) + "  " + glyph.SubAgent(s.Status).String(),
			wordwrap.String(s.Description, wrap),
			"",
			m.th.Panel.Muted.Render("Skills"),
		}
		for _, skill := range s.Skills {
			card = append(card, "  • "+skill)
		}
		card = append(card, "", m.th.Panel.Muted.Render("Last active "+s.LastActive.Format("Jan 2, 2006 15:04")))
		lines = append(lines, m.th.Panel.Frame.Render(strings.Join(card, "\n")))
	}
	return strings.Join(lines, "\n")
}
