package app

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/missioncontrol/pkg/dashboard"
	"tableflip.dev/missioncontrol/pkg/store"
	"tableflip.dev/missioncontrol/pkg/task"
	"tableflip.dev/missioncontrol/pkg/tui/components/tasks"
)

func newModel(t *testing.T) *Model {
	t.Helper()
	svc := &dashboard.Service{
		Catalog: store.Fixed(nil),
		Now:     func() time.Time { return store.DemoDate },
	}
	m, err := New(context.Background(), svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}

func text(s string) tea.KeyPressMsg {
	r := []rune(s)[0]
	return tea.KeyPressMsg{Text: s, Code: r}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestTabSwitching(t *testing.T) {
	m := newModel(t)
	if m.Active() != "tasks" {
		t.Fatalf("expected tasks first, got %s", m.Active())
	}
	steps := []struct {
		msg  tea.KeyPressMsg
		want string
	}{
		{tea.KeyPressMsg{Code: tea.KeyTab}, "calendar"},
		{text("6"), "office"},
		{tea.KeyPressMsg{Code: tea.KeyTab}, "tasks"},
		{tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}, "office"},
		{text("3"), "memory"},
	}
	for _, s := range steps {
		_, _ = m.Update(s.msg)
		if m.Active() != s.want {
			t.Fatalf("after %s expected %s, got %s", s.msg.String(), s.want, m.Active())
		}
	}
}

func TestQuit(t *testing.T) {
	m := newModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if !isQuit(cmd) {
		t.Fatalf("ctrl+c should quit")
	}

	m = newModel(t)
	_, _ = m.Update(text(":"))
	_, _ = m.Update(text("q"))
	if !strings.Contains(m.View(), ":q") {
		t.Fatalf("command line should echo the buffer")
	}
	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !isQuit(cmd) {
		t.Fatalf(":q should quit")
	}
}

func TestUnknownCommand(t *testing.T) {
	m := newModel(t)
	for _, k := range []string{":", "x", "y"} {
		_, _ = m.Update(text(k))
	}
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if isQuit(cmd) {
		t.Fatalf("unknown command must not quit")
	}
	if !strings.Contains(m.View(), `unknown command "xy"`) {
		t.Fatalf("expected an error in the footer:\n%s", m.View())
	}
}

func TestInputCapturesDigits(t *testing.T) {
	m := newModel(t)
	_, _ = m.Update(text("a"))
	_, _ = m.Update(text("2"))
	if m.Active() != "tasks" {
		t.Fatalf("digits typed into the task input must not switch tabs")
	}
	_, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	board := m.Tab("tasks").(*tasks.Model).Board()
	if col := board.Column(task.Backlog); col[len(col)-1].Title != "2" {
		t.Fatalf("expected a task titled 2, got %+v", col[len(col)-1])
	}
}

func TestStartFromRoot(t *testing.T) {
	m := newModel(t)
	_, _ = m.Update(text("s"))
	board := m.Tab("tasks").(*tasks.Model).Board()
	if len(board.Column(task.Progress)) != 3 {
		t.Fatalf("s should start the selected backlog task")
	}
	view := m.View()
	if !strings.Contains(view, "Mission Control") || !strings.Contains(view, "In Progress (3)") {
		t.Fatalf("unexpected view:\n%s", view)
	}
}
