// Package glyph maps dashboard statuses to the symbols shown next to them.
package glyph

import (
	"fmt"

	"tableflip.dev/missioncontrol/pkg/agent"
	"tableflip.dev/missioncontrol/pkg/task"
	"tableflip.dev/missioncontrol/pkg/team"
)

type Glyph struct {
	Symbol  string
	Meaning string
}

func (g Glyph) String() string {
	if g.Symbol == "" {
		return g.Meaning
	}
	return g.Symbol + " " + g.Meaning
}

const (
	escape     = "\x1b"
	resetCode  = 0
	boldCode   = 1
	faintCode  = 2
	strikeCode = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Faint(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, faintCode, in, escape, resetCode)
}

var (
	Active  = Glyph{Symbol: "🟢", Meaning: "Active"}
	Idle    = Glyph{Symbol: "⚪", Meaning: "Idle"}
	Working = Glyph{Symbol: "🔴", Meaning: "Working"}
	Errored = Glyph{Symbol: "🟠", Meaning: "Error"}
	Unknown = Glyph{Meaning: "Unknown"}
)

// Member is the badge for a team member status.
func Member(s team.Status) Glyph {
	switch s {
	case team.Active:
		return Active
	case team.Idle:
		return Idle
	}
	return Unknown
}

// SubAgent is the badge for a sub-agent status.
func SubAgent(s agent.SubAgentStatus) Glyph {
	switch s {
	case agent.Active:
		return Active
	case agent.Inactive:
		return Idle
	case agent.Errored:
		return Errored
	}
	return Unknown
}

// Desk is the badge for an office agent.
func Desk(a agent.Agent) Glyph {
	if a.Working() {
		return Working
	}
	return Idle
}

// Priority marks a task priority with a short symbol.
func Priority(p task.Priority) string {
	switch p {
	case task.High:
		return "‼"
	case task.Medium:
		return "!"
	}
	return "·"
}

// Task is the bullet shown before a task in its column.
func Task(s task.Status) string {
	switch s {
	case task.Progress:
		return "◐"
	case task.Done:
		return "✔"
	}
	return "○"
}
