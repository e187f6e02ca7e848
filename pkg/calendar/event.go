package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Category classifies a calendar milestone.
type Category int

const (
	Backtest Category = iota
	Paper
	Live
	Review
)

var categoryNames = []string{"backtest", "paper", "live", "review"}

// Categories returns every category in legend order.
func Categories() []Category {
	return []Category{Backtest, Paper, Live, Review}
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// MarshalText encodes the category by name.
func (c Category) MarshalText() ([]byte, error) {
	if c < 0 || int(c) >= len(categoryNames) {
		return nil, fmt.Errorf("calendar: unknown category %d", int(c))
	}
	return []byte(c.String()), nil
}

// ParseCategory resolves a category name, case-insensitively.
func ParseCategory(name string) (Category, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for i, n := range categoryNames {
		if n == lower {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("calendar: unknown category %q", name)
}

// Event is a milestone bound to a day of month only. The same events show up
// in whichever month is displayed.
type Event struct {
	Day      int      `json:"day"`
	Title    string   `json:"title"`
	Category Category `json:"category"`
}

// EventsOn returns the events falling on day, in their input order.
func EventsOn(events []Event, day int) []Event {
	var out []Event
	for _, e := range events {
		if e.Day == day {
			out = append(out, e)
		}
	}
	return out
}

// DefaultUpcomingDays is the look-ahead used by the upcoming list.
const DefaultUpcomingDays = 7

// Upcoming returns the events falling on the calendar dates from today through
// days after it, inclusive, in date order. The window runs across month ends
// using real dates; events on the same date keep their input order.
func Upcoming(events []Event, today time.Time, days int) []Event {
	if days < 0 {
		days = 0
	}
	var out []Event
	for i := 0; i <= days; i++ {
		out = append(out, EventsOn(events, today.AddDate(0, 0, i).Day())...)
	}
	return out
}
