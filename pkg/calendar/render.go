package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
)

// Options controls calendar styling.
type Options struct {
	HeaderStyle lipgloss.Style
	EmptyStyle  lipgloss.Style
	DayStyle    lipgloss.Style
	TodayStyle  lipgloss.Style
	Categories  map[Category]lipgloss.Style
	ShowHeader  bool
	ShowLegend  bool
}

// DefaultOptions returns the styling used for calendar rendering.
func DefaultOptions() Options {
	return Options{
		HeaderStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		EmptyStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		DayStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		TodayStyle:  lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("39")),
		Categories: map[Category]lipgloss.Style{
			Backtest: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
			Paper:    lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
			Live:     lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
			Review:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		},
		ShowHeader: true,
		ShowLegend: true,
	}
}

const weekdayHeader = "Su Mo Tu We Th Fr Sa"

// Render draws the displayed month as a 7-column grid. Days carrying events
// take the style of their first event's category; today is highlighted on
// top of that.
func Render(s State, events []Event, opts Options) string {
	if s.Reference.IsZero() {
		return ""
	}

	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render(weekdayHeader))
	}

	for _, week := range Weeks(s.Grid()) {
		cells := make([]string, 0, Columns)
		for _, c := range week {
			cells = append(cells, renderCell(c, s, events, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	if opts.ShowLegend {
		lines = append(lines, "", legend(opts))
	}
	return strings.Join(lines, "\n")
}

func renderCell(c Cell, s State, events []Event, opts Options) string {
	if c.Blank() {
		return opts.EmptyStyle.Render("  ")
	}
	style := opts.DayStyle
	if on := EventsOn(events, c.Day); len(on) > 0 {
		if cs, ok := opts.Categories[on[0].Category]; ok {
			style = cs
		}
	}
	if s.IsToday(c.Day) {
		style = style.Inherit(opts.TodayStyle).Bold(true).Underline(true)
	}
	return style.Render(fmt.Sprintf("%2d", c.Day))
}

func legend(opts Options) string {
	parts := make([]string, 0, len(categoryNames))
	for _, c := range Categories() {
		style, ok := opts.Categories[c]
		if !ok {
			style = opts.DayStyle
		}
		parts = append(parts, style.Render("■ "+c.String()))
	}
	return strings.Join(parts, "  ")
}

// Agenda lists the displayed month's events by day, one per line, skipping
// days past the end of the month.
func Agenda(s State, events []Event) []string {
	days := DaysIn(s.Reference)
	var out []string
	for d := 1; d <= days; d++ {
		for _, e := range EventsOn(events, d) {
			out = append(out, fmt.Sprintf("%s %2d  %s (%s)", s.Reference.Format("Jan"), d, e.Title, e.Category))
		}
	}
	return out
}

// ParseMonth accepts "2006-01" or "January 2006".
func ParseMonth(name string) (time.Time, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01", "January 2006", "Jan 2006"} {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
