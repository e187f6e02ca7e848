package agents

import (
	"context"
	"strings"
	"testing"

	"tableflip.dev/missioncontrol/pkg/store"
	"tableflip.dev/missioncontrol/pkg/tui/theme"
)

func TestViewHeader(t *testing.T) {
	m := NewModel(store.Fixed(nil).SubAgents(context.Background()), theme.Default())
	view := m.View()
	for _, want := range []string{"1 Active", "TRADING ADVISOR", "Risk Management"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}
