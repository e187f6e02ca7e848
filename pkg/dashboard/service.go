// Package dashboard is the application layer shared by the CLI and the TUI.
// It hands out explicit view state built from the catalog and applies the
// task operations, logging each one.
package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tableflip.dev/missioncontrol/pkg/agent"
	"tableflip.dev/missioncontrol/pkg/calendar"
	"tableflip.dev/missioncontrol/pkg/memory"
	"tableflip.dev/missioncontrol/pkg/store"
	"tableflip.dev/missioncontrol/pkg/task"
	"tableflip.dev/missioncontrol/pkg/team"
)

var ErrNoCatalog = errors.New("dashboard: no catalog configured")

// Tab identifies one dashboard page.
type Tab struct {
	ID    string
	Label string
}

var tabs = []Tab{
	{ID: "tasks", Label: "Tasks"},
	{ID: "calendar", Label: "Calendar"},
	{ID: "memory", Label: "Memory"},
	{ID: "agents", Label: "Sub-Agents"},
	{ID: "team", Label: "Team"},
	{ID: "office", Label: "Office"},
}

// Tabs lists the pages in display order.
func Tabs() []Tab { return append([]Tab(nil), tabs...) }

// Service builds view state from a catalog.
type Service struct {
	Catalog store.Catalog
	Now     func() time.Time
	Logger  *zap.Logger
	// NewID mints task ids; nil uses random UUIDs.
	NewID func() string
}

// New wires a service over catalog using the configured clock mode.
func New(catalog store.Catalog, clock store.ClockMode, logger *zap.Logger) *Service {
	return &Service{Catalog: catalog, Now: store.Now(clock), Logger: logger}
}

// Log returns the service logger, or a no-op logger.
func (s *Service) Log() *zap.Logger {
	if s == nil || s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// Today is the service's notion of the current date.
func (s *Service) Today() time.Time {
	if s == nil || s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Service) catalog() (store.Catalog, error) {
	if s == nil || s.Catalog == nil {
		return nil, ErrNoCatalog
	}
	return s.Catalog, nil
}

// TaskBoard returns the initial board.
func (s *Service) TaskBoard(ctx context.Context) (task.Board, error) {
	c, err := s.catalog()
	if err != nil {
		return task.Board{}, err
	}
	return task.NewBoard(c.Tasks(ctx)), nil
}

// AddTask adds title to the backlog of b under a fresh id.
func (s *Service) AddTask(b task.Board, title string) (task.Board, task.Task, error) {
	id := uuid.NewString()
	if s != nil && s.NewID != nil {
		id = s.NewID()
	}
	next, created, err := b.Add(id, title)
	if err != nil {
		s.Log().Debug("task add rejected", zap.Error(err))
		return b, task.Task{}, err
	}
	s.Log().Debug("task added", zap.String("id", created.ID), zap.String("title", created.Title))
	return next, created, nil
}

// StartTask moves a backlog task into progress.
func (s *Service) StartTask(b task.Board, id string) (task.Board, error) {
	return s.apply("task started", id, b.Start)
}

// CompleteTask moves an in-progress task to done.
func (s *Service) CompleteTask(b task.Board, id string) (task.Board, error) {
	return s.apply("task completed", id, b.Complete)
}

// DeleteTask removes a task from the board.
func (s *Service) DeleteTask(b task.Board, id string) (task.Board, error) {
	return s.apply("task deleted", id, b.Delete)
}

func (s *Service) apply(msg, id string, op func(string) (task.Board, error)) (task.Board, error) {
	next, err := op(id)
	if err != nil {
		s.Log().Debug(msg+" failed", zap.String("id", id), zap.Error(err))
		return next, err
	}
	s.Log().Debug(msg, zap.String("id", id))
	return next, nil
}

// Calendar returns the calendar state opened on today's month.
func (s *Service) Calendar() calendar.State {
	return calendar.NewState(s.Today())
}

// ShiftCalendar moves st by delta months.
func (s *Service) ShiftCalendar(st calendar.State, delta int) calendar.State {
	next := st.Shift(delta)
	s.Log().Debug("calendar shifted", zap.Int("delta", delta), zap.String("month", next.Title()))
	return next
}

// Events returns the calendar milestones.
func (s *Service) Events(ctx context.Context) ([]calendar.Event, error) {
	c, err := s.catalog()
	if err != nil {
		return nil, err
	}
	return c.Events(ctx), nil
}

// MemoryBrowser returns an unfiltered memory browser.
func (s *Service) MemoryBrowser(ctx context.Context) (memory.Browser, error) {
	c, err := s.catalog()
	if err != nil {
		return memory.Browser{}, err
	}
	return memory.NewBrowser(c.Memories(ctx)), nil
}

// ToggleMemoryTag flips a tag on b.
func (s *Service) ToggleMemoryTag(b memory.Browser, tag string) memory.Browser {
	next := b.ToggleTag(tag)
	s.Log().Debug("memory tag toggled", zap.String("tag", tag), zap.Bool("selected", next.Selected(tag)))
	return next
}

// Office returns the desk board with nothing selected.
func (s *Service) Office(ctx context.Context) (agent.Office, error) {
	c, err := s.catalog()
	if err != nil {
		return agent.Office{}, err
	}
	return agent.NewOffice(c.OfficeAgents(ctx)), nil
}

// ToggleAgent selects or deselects an office agent.
func (s *Service) ToggleAgent(o agent.Office, id string) agent.Office {
	next := o.Toggle(id)
	_, selected := next.Selected()
	s.Log().Debug("office agent toggled", zap.String("id", id), zap.Bool("selected", selected))
	return next
}

// SubAgents returns the sub-agent roster.
func (s *Service) SubAgents(ctx context.Context) ([]agent.SubAgent, error) {
	c, err := s.catalog()
	if err != nil {
		return nil, err
	}
	return c.SubAgents(ctx), nil
}

// Team returns the founders and the agents.
func (s *Service) Team(ctx context.Context) (founders, agents []team.Member, err error) {
	c, err := s.catalog()
	if err != nil {
		return nil, nil, err
	}
	founders, agents = team.Partition(c.Team(ctx))
	return founders, agents, nil
}
