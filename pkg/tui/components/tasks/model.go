// Package tasks renders the kanban board tab.
package tasks

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/missioncontrol/pkg/dashboard"
	"tableflip.dev/missioncontrol/pkg/glyph"
	"tableflip.dev/missioncontrol/pkg/task"
	"tableflip.dev/missioncontrol/pkg/tui/theme"
	"tableflip.dev/missioncontrol/pkg/tui/ui"
)

const helpLine = "a add · h/l column · j/k task · s start · c complete · d delete"

// Model is the board tab. Column and row form the cursor.
type Model struct {
	svc   *dashboard.Service
	th    theme.Theme
	board task.Board

	col int
	row int

	adding bool
	input  textinput.Model

	status string
	err    error

	width  int
	height int
}

// NewModel builds the board tab over board.
func NewModel(svc *dashboard.Service, board task.Board, th theme.Theme) *Model {
	in := textinput.New()
	in.Placeholder = "New task title…"
	in.Prompt = "+ "
	in.CharLimit = 120
	return &Model{svc: svc, th: th, board: board, input: in, width: 96}
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Board returns the current board.
func (m *Model) Board() task.Board { return m.board }

// Capturing is true while the new-task input is open.
func (m *Model) Capturing() bool { return m.adding }

// Status returns the last action message and error.
func (m *Model) Status() (string, error) { return m.status, m.err }

// Cursor reports the selected column and row.
func (m *Model) Cursor() (task.Status, int) { return task.Statuses()[m.col], m.row }

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.SetWidth(max(width/2, 20))
}

// Selected returns the task under the cursor.
func (m *Model) Selected() (task.Task, bool) {
	col := m.board.Column(task.Statuses()[m.col])
	if m.row < 0 || m.row >= len(col) {
		return task.Task{}, false
	}
	return col[m.row], true
}

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if m.adding {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	if m.adding {
		return m, m.handleInputKey(key)
	}
	return m, m.handleKey(key)
}

func (m *Model) handleInputKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.closeInput()
		m.setStatus("Add cancelled", nil)
		return nil
	case "enter":
		next, created, err := m.svc.AddTask(m.board, m.input.Value())
		if err != nil {
			m.setStatus("", err)
			return nil
		}
		m.board = next
		m.closeInput()
		m.col = int(task.Backlog)
		m.row = len(m.board.Column(task.Backlog)) - 1
		m.setStatus(fmt.Sprintf("Added %q to backlog", created.Title), nil)
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) closeInput() {
	m.adding = false
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "a":
		m.adding = true
		m.input.Reset()
		m.setStatus("", nil)
		return m.input.Focus()
	case "h", "left":
		m.moveCol(-1)
	case "l", "right":
		m.moveCol(1)
	case "j", "down":
		m.row++
		m.clampRow()
	case "k", "up":
		m.row--
		m.clampRow()
	case "s":
		m.transition("Started", m.svc.StartTask)
	case "c":
		m.transition("Completed", m.svc.CompleteTask)
	case "d":
		m.transition("Deleted", m.svc.DeleteTask)
	}
	return nil
}

func (m *Model) moveCol(delta int) {
	n := len(task.Statuses())
	m.col = (m.col + delta + n) % n
	m.clampRow()
}

func (m *Model) clampRow() {
	n := len(m.board.Column(task.Statuses()[m.col]))
	if m.row >= n {
		m.row = n - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

func (m *Model) transition(verb string, op func(task.Board, string) (task.Board, error)) {
	sel, ok := m.Selected()
	if !ok {
		m.setStatus("No task selected", nil)
		return
	}
	next, err := op(m.board, sel.ID)
	if err != nil {
		m.setStatus("", err)
		return
	}
	m.board = next
	m.clampRow()
	m.setStatus(fmt.Sprintf("%s %q", verb, sel.Title), nil)
}

func (m *Model) setStatus(status string, err error) {
	m.status = status
	m.err = err
}

// View implements ui.Component.
func (m *Model) View() string {
	statuses := task.Statuses()
	colWidth := max((m.width-2*len(statuses))/len(statuses), 18)

	cols := make([]string, 0, len(statuses))
	for i, s := range statuses {
		cols = append(cols, m.renderColumn(i, s, colWidth))
	}
	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, cols...)}

	if m.adding {
		lines = append(lines, m.input.View())
	}
	switch {
	case m.err != nil:
		lines = append(lines, m.th.Footer.Error.Render(m.err.Error()))
	case m.status != "":
		lines = append(lines, m.th.Footer.Status.Render(m.status))
	}
	lines = append(lines, m.th.Footer.Help.Render(helpLine))
	return strings.Join(lines, "\n")
}

func (m *Model) renderColumn(idx int, s task.Status, width int) string {
	tasks := m.board.Column(s)
	frame := m.th.Panel.Frame
	if idx == m.col {
		frame = m.th.Panel.Focused
	}

	body := []string{m.th.Panel.Title.Render(fmt.Sprintf("%s (%d)", s.Title(), len(tasks)))}
	if len(tasks) == 0 {
		body = append(body, m.th.Panel.Muted.Render("empty"))
	}
	inner := max(width-4, 10)
	for r, t := range tasks {
		card := m.renderCard(t, inner)
		if idx == m.col && r == m.row {
			card = m.th.Board.Selected.Render(card)
		}
		body = append(body, card)
	}
	return frame.Width(width).Render(strings.Join(body, "\n"))
}

func (m *Model) renderCard(t task.Task, width int) string {
	prio := m.th.Board.Low
	switch t.Priority {
	case task.High:
		prio = m.th.Board.High
	case task.Medium:
		prio = m.th.Board.Medium
	}
	title := fmt.Sprintf("%s %s", glyph.Task(t.Status), t.Title)
	meta := fmt.Sprintf("%s · %s", t.Assignee, prio.Render(t.Priority.String()))
	if due := t.DueLabel(); due != "" {
		meta += " · " + due
	}
	if _, label, ok := t.Status.Next(); ok {
		meta += " · [" + label + "]"
	}
	return m.th.Board.Card.Width(width).Render(title + "\n" + meta)
}
