package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/missioncontrol/pkg/calendar"
)

const width = len("11 12 13 14 15 16 17") // an example week

var categoryColors = map[calendar.Category]*color.Color{
	calendar.Backtest: color.New(color.FgBlue),
	calendar.Paper:    color.New(color.FgGreen),
	calendar.Live:     color.New(color.FgRed),
	calendar.Review:   color.New(color.FgYellow),
}

func categoryColor(c calendar.Category) *color.Color {
	if cc, ok := categoryColors[c]; ok {
		return cc
	}
	return color.New()
}

// Calendar prints the month grid for s, a legend, the month's agenda and the
// events coming up in the next days.
func (pp *PrettyPrint) Calendar(s calendar.State, events []calendar.Event, upcoming []calendar.Event, window string) {
	tf := color.New(color.Bold)
	m := s.Title()
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(pp.out(), "%s%s\n", strings.Repeat(" ", mid), m)

	faint := color.New(color.Faint)
	_, _ = faint.Fprintln(pp.out(), "Su Mo Tu We Th Fr Sa")

	plain := color.New()
	for _, week := range calendar.Weeks(s.Grid()) {
		cells := make([]string, 0, calendar.Columns)
		for _, c := range week {
			if c.Blank() {
				cells = append(cells, "  ")
				continue
			}
			printer := plain
			if on := calendar.EventsOn(events, c.Day); len(on) > 0 {
				printer = categoryColor(on[0].Category)
			}
			label := fmt.Sprintf("%2d", c.Day)
			if s.IsToday(c.Day) {
				label = color.New(color.Bold, color.Underline).Sprint(printer.Sprint(label))
			} else {
				label = printer.Sprint(label)
			}
			cells = append(cells, label)
		}
		_, _ = fmt.Fprintln(pp.out(), strings.Join(cells, " "))
	}
	pp.NewLine()

	legend := make([]string, 0, len(calendar.Categories()))
	for _, c := range calendar.Categories() {
		legend = append(legend, categoryColor(c).Sprint("■ "+c.String()))
	}
	_, _ = fmt.Fprintln(pp.out(), strings.Join(legend, "  "))
	pp.NewLine()

	agenda := calendar.Agenda(s, events)
	pp.TitleWithCount("Events", len(agenda), "event")
	if len(agenda) == 0 {
		pp.none()
	} else {
		for _, line := range agenda {
			_, _ = fmt.Fprintln(pp.out(), line)
		}
		pp.NewLine()
	}

	pp.TitleWithCount(fmt.Sprintf("Upcoming (%s)", window), len(upcoming), "event")
	if len(upcoming) == 0 {
		pp.none()
		return
	}
	for _, e := range upcoming {
		_, _ = categoryColor(e.Category).Fprint(pp.out(), "■ ")
		_, _ = fmt.Fprintf(pp.out(), "%2d  %s\n", e.Day, e.Title)
	}
	pp.NewLine()
}
