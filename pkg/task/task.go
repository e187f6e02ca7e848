// Package task models the kanban task board and its one-way status
// transitions.
package task

import (
	"fmt"
	"strings"
	"time"
)

// Status is a task's kanban column.
type Status int

const (
	Backlog Status = iota
	Progress
	Done
)

var statusNames = []string{"backlog", "progress", "done"}
var statusTitles = []string{"Backlog", "In Progress", "Done"}

// Statuses returns the columns in board order.
func Statuses() []Status { return []Status{Backlog, Progress, Done} }

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// Title is the column heading.
func (s Status) Title() string {
	if s < 0 || int(s) >= len(statusTitles) {
		return "Unknown"
	}
	return statusTitles[s]
}

// Next returns the single forward transition out of s together with the
// action label that triggers it. Done has no transition.
func (s Status) Next() (Status, string, bool) {
	switch s {
	case Backlog:
		return Progress, "Start", true
	case Progress:
		return Done, "Complete", true
	}
	return s, "", false
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(statusNames) {
		return nil, fmt.Errorf("task: unknown status %d", int(s))
	}
	return []byte(s.String()), nil
}

// ParseStatus resolves a status name. "in progress" and "in-progress" are
// accepted for the progress column.
func ParseStatus(name string) (Status, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	switch lower {
	case "in progress", "in-progress", "inprogress":
		return Progress, nil
	}
	for i, n := range statusNames {
		if n == lower {
			return Status(i), nil
		}
	}
	return 0, fmt.Errorf("task: unknown status %q", name)
}

// Priority is a task's urgency.
type Priority int

const (
	Low Priority = iota
	Medium
	High
)

var priorityNames = []string{"low", "medium", "high"}

func (p Priority) String() string {
	if p < 0 || int(p) >= len(priorityNames) {
		return "unknown"
	}
	return priorityNames[p]
}

// MarshalText encodes the priority by name.
func (p Priority) MarshalText() ([]byte, error) {
	if p < 0 || int(p) >= len(priorityNames) {
		return nil, fmt.Errorf("task: unknown priority %d", int(p))
	}
	return []byte(p.String()), nil
}

// Assignee is one of the fixed people tasks can be assigned to.
type Assignee string

const (
	Tony     Assignee = "Tony"
	Shimonez Assignee = "Shimonez"
)

// Task is a single card on the board.
type Task struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Assignee Assignee   `json:"assignedTo"`
	Status   Status     `json:"status"`
	Priority Priority   `json:"priority"`
	Due      *time.Time `json:"dueDate,omitempty"`
}

// DueLabel renders the due date, or "" when there is none.
func (t Task) DueLabel() string {
	if t.Due == nil {
		return ""
	}
	return t.Due.Format("Jan 2, 2006")
}
