// Package calendar prints a month of milestones and the upcoming agenda.
package calendar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	cal "tableflip.dev/missioncontrol/pkg/calendar"
	"tableflip.dev/missioncontrol/pkg/commands/options"
	"tableflip.dev/missioncontrol/pkg/dashboard"
	"tableflip.dev/missioncontrol/pkg/printers"
	"tableflip.dev/missioncontrol/pkg/timeutil"
)

type Calendar struct {
	Service *dashboard.Service
	// Month is "2006-01" or "January 2006"; empty is today's month.
	Month  string
	Shift  int
	Window string
	JSON   bool
	Out    io.Writer
}

type report struct {
	Month    string      `json:"month"`
	Today    string      `json:"today"`
	Weeks    [][]int     `json:"weeks"`
	Events   []cal.Event `json:"events"`
	Window   string      `json:"window"`
	Upcoming []cal.Event `json:"upcoming"`
}

// State resolves the month to display.
func (n *Calendar) State() (cal.State, error) {
	st := n.Service.Calendar()
	if n.Month != "" {
		month, ok := cal.ParseMonth(n.Month)
		if !ok {
			return cal.State{}, fmt.Errorf("invalid month %q, want 2006-01 or January 2006", n.Month)
		}
		st.Reference = time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, st.Today.Location())
	}
	if n.Shift != 0 {
		st = n.Service.ShiftCalendar(st, n.Shift)
	}
	return st, nil
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show calendar, no service")
	}
	st, err := n.State()
	if err != nil {
		return err
	}
	days, label, err := timeutil.ParseWindow(n.Window)
	if err != nil {
		return err
	}
	events, err := n.Service.Events(ctx)
	if err != nil {
		return err
	}
	upcoming := cal.Upcoming(events, st.Today, days)

	if n.JSON {
		r := report{
			Month:    st.Title(),
			Today:    st.Today.Format("2006-01-02"),
			Events:   onMonth(st, events),
			Window:   label,
			Upcoming: nonNil(upcoming),
		}
		for _, week := range cal.Weeks(st.Grid()) {
			row := make([]int, 0, len(week))
			for _, c := range week {
				row = append(row, c.Day)
			}
			r.Weeks = append(r.Weeks, row)
		}
		return options.PrintJSON(n.Out, r)
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Calendar(st, events, upcoming, label)
	return nil
}

// onMonth drops events whose day does not exist in the displayed month.
func onMonth(st cal.State, events []cal.Event) []cal.Event {
	days := cal.DaysIn(st.Reference)
	out := []cal.Event{}
	for _, e := range events {
		if e.Day >= 1 && e.Day <= days {
			out = append(out, e)
		}
	}
	return out
}

func nonNil(events []cal.Event) []cal.Event {
	if events == nil {
		return []cal.Event{}
	}
	return events
}
