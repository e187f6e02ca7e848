package task

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound          = errors.New("task: not found")
	ErrInvalidTransition = errors.New("task: invalid status transition")
	ErrEmptyTitle        = errors.New("task: title is required")
	ErrDuplicateID       = errors.New("task: id already on the board")
)

// Board is an ordered list of tasks. Every mutation returns a new Board and
// leaves the receiver as it was.
type Board struct {
	tasks []Task
}

// NewBoard copies tasks into a board.
func NewBoard(tasks []Task) Board {
	return Board{tasks: cloneTasks(tasks)}
}

// Tasks returns a copy of every task in board order.
func (b Board) Tasks() []Task { return cloneTasks(b.tasks) }

// Len is the number of tasks on the board.
func (b Board) Len() int { return len(b.tasks) }

// Get looks up a task by id.
func (b Board) Get(id string) (Task, bool) {
	if i := b.index(id); i >= 0 {
		return b.tasks[i], true
	}
	return Task{}, false
}

// Column returns the tasks in status, in board order.
func (b Board) Column(status Status) []Task {
	var out []Task
	for _, t := range b.tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// Add appends a new backlog task assigned to Tony with medium priority.
// The id must not already be on the board.
func (b Board) Add(id, title string) (Board, Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return b, Task{}, ErrEmptyTitle
	}
	if b.index(id) >= 0 {
		return b, Task{}, fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	t := Task{
		ID:       id,
		Title:    title,
		Assignee: Tony,
		Status:   Backlog,
		Priority: Medium,
	}
	next := Board{tasks: append(cloneTasks(b.tasks), t)}
	return next, t, nil
}

// Start moves a backlog task into progress.
func (b Board) Start(id string) (Board, error) {
	return b.advance(id, Backlog)
}

// Complete moves an in-progress task to done.
func (b Board) Complete(id string) (Board, error) {
	return b.advance(id, Progress)
}

// Advance applies whichever forward transition the task's status allows.
func (b Board) Advance(id string) (Board, error) {
	i := b.index(id)
	if i < 0 {
		return b, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return b.advance(id, b.tasks[i].Status)
}

func (b Board) advance(id string, from Status) (Board, error) {
	i := b.index(id)
	if i < 0 {
		return b, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	current := b.tasks[i].Status
	if current != from {
		return b, fmt.Errorf("%w: %s is %s", ErrInvalidTransition, id, current)
	}
	to, _, ok := current.Next()
	if !ok {
		return b, fmt.Errorf("%w: %s is %s", ErrInvalidTransition, id, current)
	}
	tasks := cloneTasks(b.tasks)
	tasks[i].Status = to
	return Board{tasks: tasks}, nil
}

// Delete removes the task with id from any column.
func (b Board) Delete(id string) (Board, error) {
	i := b.index(id)
	if i < 0 {
		return b, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	tasks := make([]Task, 0, len(b.tasks)-1)
	tasks = append(tasks, b.tasks[:i]...)
	tasks = append(tasks, b.tasks[i+1:]...)
	return Board{tasks: cloneTasks(tasks)}, nil
}

func (b Board) index(id string) int {
	for i, t := range b.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func cloneTasks(in []Task) []Task {
	if in == nil {
		return nil
	}
	out := make([]Task, len(in))
	for i, t := range in {
		if t.Due != nil {
			due := *t.Due
			t.Due = &due
		}
		out[i] = t
	}
	return out
}
