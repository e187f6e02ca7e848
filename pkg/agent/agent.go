// Package agent describes the office desks and the sub-agent roster. The
// records are display data only; nothing here runs an agent.
package agent

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Status of an office agent.
type Status string

const (
	Working Status = "working"
	Idle    Status = "idle"
)

// Agent sits at an office desk.
type Agent struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Activity string `json:"currentActivity"`
	Status   Status `json:"status"`
	Progress int    `json:"progressPercent"`
	Desk     int    `json:"desk"`
}

// Working reports whether the agent is busy.
func (a Agent) Working() bool { return a.Status == Working }

// Feed returns the working agents ordered by desk number. It is a snapshot
// of the roster; it does not update on its own.
func Feed(agents []Agent) []Agent {
	var out []Agent
	for _, a := range agents {
		if a.Working() {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Desk < out[j].Desk })
	return out
}

// SubAgentStatus of a specialised sub-agent.
type SubAgentStatus string

const (
	Active   SubAgentStatus = "active"
	Inactive SubAgentStatus = "idle"
	Errored  SubAgentStatus = "error"
)

// SubAgent is a specialised helper with a skill list.
type SubAgent struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Status      SubAgentStatus `json:"status"`
	Skills      []string       `json:"skills"`
	LastActive  time.Time      `json:"lastActive"`
	Description string         `json:"description"`
}

// ActiveCount is the number of sub-agents whose status is active.
func ActiveCount(subagents []SubAgent) int {
	n := 0
	for _, s := range subagents {
		if s.Status == Active {
			n++
		}
	}
	return n
}

// ClampPercent bounds p to 0..100.
func ClampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Bar renders a progress bar width cells wide.
func Bar(percent, width int) string {
	if width <= 0 {
		return ""
	}
	filled := ClampPercent(percent) * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Percent renders "65%".
func Percent(p int) string {
	return fmt.Sprintf("%d%%", ClampPercent(p))
}
