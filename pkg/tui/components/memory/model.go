// Package memory renders the searchable memory tab.
package memory

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/missioncontrol/pkg/dashboard"
	mem "tableflip.dev/missioncontrol/pkg/memory"
	"tableflip.dev/missioncontrol/pkg/tui/theme"
	"tableflip.dev/missioncontrol/pkg/tui/ui"
)

const helpLine = "/ search · h/l tag · space toggle · x clear"

type Model struct {
	svc     *dashboard.Service
	th      theme.Theme
	browser mem.Browser

	search    textinput.Model
	searching bool
	tagCursor int

	width  int
	height int
}

func NewModel(svc *dashboard.Service, browser mem.Browser, th theme.Theme) *Model {
	in := textinput.New()
	in.Placeholder = "Search memories…"
	in.Prompt = "/ "
	return &Model{svc: svc, th: th, browser: browser, search: in, width: 80}
}

func (m *Model) Init() tea.Cmd { return nil }

// Browser returns the current filter state.
func (m *Model) Browser() mem.Browser { return m.browser }

// Capturing is true while the search box has focus.
func (m *Model) Capturing() bool { return m.searching }

// TagCursor is the index of the highlighted tag button.
func (m *Model) TagCursor() int { return m.tagCursor }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.search.SetWidth(max(width/2, 20))
}

func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if m.searching {
		if ok {
			switch key.String() {
			case "esc", "enter":
				m.searching = false
				m.search.Blur()
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.browser = m.browser.Search(m.search.Value())
		return m, cmd
	}
	if !ok {
		return m, nil
	}

	tags := m.browser.TagUniverse()
	switch key.String() {
	case "/":
		m.searching = true
		return m, m.search.Focus()
	case "h", "left":
		if m.tagCursor > 0 {
			m.tagCursor--
		}
	case "l", "right":
		if m.tagCursor < len(tags)-1 {
			m.tagCursor++
		}
	case "space":
		if m.tagCursor < len(tags) {
			m.browser = m.svc.ToggleMemoryTag(m.browser, tags[m.tagCursor])
		}
	case "x":
		m.browser = m.browser.ClearTags()
	}
	return m, nil
}

func (m *Model) View() string {
	lines := []string{m.search.View(), m.renderTags(), ""}

	visible := m.browser.Visible()
	if len(visible) == 0 {
		lines = append(lines, m.th.Panel.Muted.Render(mem.EmptyMessage))
	}
	wrap := max(m.width-6, 20)
	for _, r := range visible {
		body := []string{
			m.th.Panel.Title.Render(r.Title),
			m.th.Panel.Muted.Render(r.Date + " · " + r.Source),
			wordwrap.String(r.Body, wrap),
		}
		if len(r.Tags) > 0 {
			body = append(body, m.th.Panel.Muted.Render("#"+strings.Join(r.Tags, " #")))
		}
		lines = append(lines, m.th.Panel.Frame.Render(strings.Join(body, "\n")))
	}
	lines = append(lines, m.th.Footer.Help.Render(helpLine))
	return strings.Join(lines, "\n")
}

func (m *Model) renderTags() string {
	tags := m.browser.TagUniverse()
	parts := make([]string, 0, len(tags))
	for i, t := range tags {
		style := m.th.Tag.Off
		if m.browser.Selected(t) {
			style = m.th.Tag.On
		}
		if i == m.tagCursor && !m.searching {
			style = style.Inherit(m.th.Tag.Cursor).Underline(true)
		}
		parts = append(parts, style.Render(t))
	}
	return strings.Join(parts, " ")
}
