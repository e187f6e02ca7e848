package calendar

import "time"

// State is the calendar view's navigation state. Methods return new values
// and leave the receiver untouched.
type State struct {
	Reference time.Time
	Today     time.Time
}

// NewState starts the view on the month containing today.
func NewState(today time.Time) State {
	return State{Reference: today, Today: today}
}

// Prev moves the view back one month.
func (s State) Prev() State {
	s.Reference = ShiftMonth(s.Reference, -1)
	return s
}

// Next moves the view forward one month.
func (s State) Next() State {
	s.Reference = ShiftMonth(s.Reference, 1)
	return s
}

// Shift moves the view by delta months.
func (s State) Shift(delta int) State {
	s.Reference = ShiftMonth(s.Reference, delta)
	return s
}

// Reset returns the view to today's month.
func (s State) Reset() State {
	s.Reference = s.Today
	return s
}

// Grid builds the cells for the displayed month.
func (s State) Grid() []Cell {
	return BuildMonthGrid(s.Reference)
}

// IsToday reports whether day in the displayed month is today.
func (s State) IsToday(day int) bool {
	if day <= 0 {
		return false
	}
	return s.Reference.Year() == s.Today.Year() &&
		s.Reference.Month() == s.Today.Month() &&
		day == s.Today.Day()
}

// Title renders the displayed month, e.g. "February 2026".
func (s State) Title() string {
	return s.Reference.Format("January 2006")
}
