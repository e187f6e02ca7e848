package memory

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/google/go-cmp/cmp"

	"tableflip.dev/missioncontrol/pkg/dashboard"
	mem "tableflip.dev/missioncontrol/pkg/memory"
	"tableflip.dev/missioncontrol/pkg/store"
	"tableflip.dev/missioncontrol/pkg/tui/theme"
)

func newModel(t *testing.T) *Model {
	t.Helper()
	svc := &dashboard.Service{Catalog: store.Fixed(nil)}
	b, err := svc.MemoryBrowser(context.Background())
	if err != nil {
		t.Fatalf("browser: %v", err)
	}
	return NewModel(svc, b, theme.Default())
}

func send(m *Model, msgs ...tea.KeyPressMsg) {
	for _, msg := range msgs {
		_, _ = m.Update(msg)
	}
}

func runes(text string) []tea.KeyPressMsg {
	var out []tea.KeyPressMsg
	for _, r := range text {
		out = append(out, tea.KeyPressMsg{Text: string(r), Code: r})
	}
	return out
}

func ids(records []mem.Record) []string {
	out := []string{}
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestSearchFiltersLive(t *testing.T) {
	m := newModel(t)
	send(m, runes("/")...)
	if !m.Capturing() {
		t.Fatalf("expected search focus")
	}
	send(m, runes("crypto")...)
	if diff := cmp.Diff([]string{"2"}, ids(m.Browser().Visible())); diff != "" {
		t.Fatalf("unexpected results (-want +got):\n%s", diff)
	}
	send(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.Capturing() {
		t.Fatalf("enter should leave the search box")
	}
	if m.Browser().Query().Text != "crypto" {
		t.Fatalf("query should survive leaving the box, got %q", m.Browser().Query().Text)
	}
}

func TestTagToggle(t *testing.T) {
	m := newModel(t)
	universe := m.Browser().TagUniverse()
	if diff := cmp.Diff([]string{"Alert", "Decision", "Performance", "Strategy"}, universe); diff != "" {
		t.Fatalf("unexpected tags (-want +got):\n%s", diff)
	}
	// Alert is first; toggle it, then Decision.
	send(m, tea.KeyPressMsg{Text: " ", Code: tea.KeySpace})
	send(m, runes("l")...)
	send(m, tea.KeyPressMsg{Text: " ", Code: tea.KeySpace})
	if diff := cmp.Diff([]string{"2", "4"}, ids(m.Browser().Visible())); diff != "" {
		t.Fatalf("tags should OR together (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(universe, m.Browser().TagUniverse()); diff != "" {
		t.Fatalf("toggling changed the tag universe:\n%s", diff)
	}
	send(m, runes("x")...)
	if len(m.Browser().Visible()) != 4 {
		t.Fatalf("x should clear tags")
	}
}

func TestTagCursorBounds(t *testing.T) {
	m := newModel(t)
	send(m, runes("hhh")...)
	if m.TagCursor() != 0 {
		t.Fatalf("cursor went below zero: %d", m.TagCursor())
	}
	send(m, runes("llllllll")...)
	if m.TagCursor() != 3 {
		t.Fatalf("cursor should stop on the last tag, got %d", m.TagCursor())
	}
}

func TestEmptyView(t *testing.T) {
	m := newModel(t)
	send(m, runes("/zzz")...)
	if view := m.View(); !strings.Contains(view, mem.EmptyMessage) {
		t.Fatalf("expected empty message, got:\n%s", view)
	}
}
