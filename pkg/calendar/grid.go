// Package calendar builds month grids and tracks the dashboard's calendar
// view state.
package calendar

import "time"

// Columns is the number of cells per rendered week row.
const Columns = 7

// Cell is a single slot in a month grid. A zero Day is a blank padding cell.
type Cell struct {
	Day int
}

// Blank reports whether the cell is leading or trailing padding.
func (c Cell) Blank() bool { return c.Day == 0 }

// BuildMonthGrid returns the cells for the month containing ref: one blank
// per weekday before the 1st (Sunday first), then days 1..N in order.
func BuildMonthGrid(ref time.Time) []Cell {
	offset := LeadingBlanks(ref)
	days := DaysIn(ref)
	cells := make([]Cell, 0, offset+days)
	for i := 0; i < offset; i++ {
		cells = append(cells, Cell{})
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, Cell{Day: d})
	}
	return cells
}

// DaysIn returns the number of days in the month containing t. Day zero of
// the following month normalizes to the last day of this one.
func DaysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// LeadingBlanks returns the weekday index (0=Sunday..6=Saturday) of the first
// day of the month containing t.
func LeadingBlanks(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return int(first.Weekday())
}

// Weeks splits cells into rows of Columns, padding the final row with blanks.
func Weeks(cells []Cell) [][]Cell {
	if len(cells) == 0 {
		return nil
	}
	rows := (len(cells) + Columns - 1) / Columns
	out := make([][]Cell, 0, rows)
	for r := 0; r < rows; r++ {
		row := make([]Cell, Columns)
		start := r * Columns
		end := start + Columns
		if end > len(cells) {
			end = len(cells)
		}
		copy(row, cells[start:end])
		out = append(out, row)
	}
	return out
}

// ShiftMonth moves t by delta months. The day of month is clamped to the
// length of the target month so Jan 31 minus one month is Dec 31 and Mar 31
// minus one month is the last day of February.
func ShiftMonth(t time.Time, delta int) time.Time {
	target := time.Date(t.Year(), t.Month()+time.Month(delta), 1, 0, 0, 0, 0, t.Location())
	day := t.Day()
	if last := DaysIn(target); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
