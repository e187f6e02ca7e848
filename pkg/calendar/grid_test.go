package calendar

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildMonthGridFebruary2026(t *testing.T) {
	cells := BuildMonthGrid(date(2026, time.February, 21))
	if len(cells) != 28 {
		t.Fatalf("expected 28 cells, got %d", len(cells))
	}
	if cells[0].Blank() || cells[0].Day != 1 {
		t.Fatalf("expected Feb 1 2026 (a Sunday) in the first cell, got %+v", cells[0])
	}
	if cells[27].Day != 28 {
		t.Fatalf("expected last cell to be 28, got %d", cells[27].Day)
	}
}

func TestBuildMonthGridCellCount(t *testing.T) {
	tests := []struct {
		name   string
		ref    time.Time
		blanks int
		days   int
	}{
		{name: "jan 2026", ref: date(2026, time.January, 15), blanks: 4, days: 31},
		{name: "mar 2026", ref: date(2026, time.March, 31), blanks: 0, days: 31},
		{name: "apr 2026", ref: date(2026, time.April, 1), blanks: 3, days: 30},
		{name: "feb 2024 leap", ref: date(2024, time.February, 10), blanks: 4, days: 29},
		{name: "feb 2100 not leap", ref: date(2100, time.February, 1), blanks: 1, days: 28},
		{name: "feb 2000 leap", ref: date(2000, time.February, 29), blanks: 2, days: 29},
		{name: "aug 2026 saturday start", ref: date(2026, time.August, 9), blanks: 6, days: 31},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := BuildMonthGrid(tt.ref)
			if got := len(cells); got != tt.blanks+tt.days {
				t.Fatalf("expected %d cells, got %d", tt.blanks+tt.days, got)
			}
			for i := 0; i < tt.blanks; i++ {
				if !cells[i].Blank() {
					t.Fatalf("cell %d should be blank, got %+v", i, cells[i])
				}
			}
			for i := 0; i < tt.days; i++ {
				if got := cells[tt.blanks+i].Day; got != i+1 {
					t.Fatalf("cell %d: expected day %d, got %d", tt.blanks+i, i+1, got)
				}
			}
			if got := DaysIn(tt.ref); got != tt.days {
				t.Fatalf("DaysIn: expected %d, got %d", tt.days, got)
			}
		})
	}
}

func TestWeeksPadsFinalRow(t *testing.T) {
	weeks := Weeks(BuildMonthGrid(date(2026, time.January, 1)))
	if len(weeks) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(weeks))
	}
	for i, w := range weeks {
		if len(w) != Columns {
			t.Fatalf("row %d has %d cells", i, len(w))
		}
	}
	last := weeks[4]
	want := []Cell{{Day: 25}, {Day: 26}, {Day: 27}, {Day: 28}, {Day: 29}, {Day: 30}, {Day: 31}}
	if diff := cmp.Diff(want, last); diff != "" {
		t.Fatalf("unexpected last row (-want +got):\n%s", diff)
	}

	weeks = Weeks(BuildMonthGrid(date(2026, time.April, 1)))
	tail := weeks[len(weeks)-1]
	if tail[4].Day != 30 || !tail[5].Blank() || !tail[6].Blank() {
		t.Fatalf("expected trailing blanks after Apr 30, got %+v", tail)
	}
	if Weeks(nil) != nil {
		t.Fatalf("expected nil rows for empty grid")
	}
}

func TestShiftMonth(t *testing.T) {
	tests := []struct {
		name  string
		in    time.Time
		delta int
		want  time.Time
	}{
		{name: "forward", in: date(2026, time.February, 21), delta: 1, want: date(2026, time.March, 21)},
		{name: "back", in: date(2026, time.February, 21), delta: -1, want: date(2026, time.January, 21)},
		{name: "jan 31 back to dec", in: date(2026, time.January, 31), delta: -1, want: date(2025, time.December, 31)},
		{name: "jan 31 forward clamps", in: date(2026, time.January, 31), delta: 1, want: date(2026, time.February, 28)},
		{name: "mar 31 back clamps", in: date(2026, time.March, 31), delta: -1, want: date(2026, time.February, 28)},
		{name: "mar 31 back leap", in: date(2024, time.March, 31), delta: -1, want: date(2024, time.February, 29)},
		{name: "dec rolls year", in: date(2026, time.December, 5), delta: 1, want: date(2027, time.January, 5)},
		{name: "many months", in: date(2026, time.May, 31), delta: -15, want: date(2025, time.February, 28)},
		{name: "zero", in: date(2026, time.May, 31), delta: 0, want: date(2026, time.May, 31)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShiftMonth(tt.in, tt.delta); !got.Equal(tt.want) {
				t.Fatalf("ShiftMonth(%s, %d) = %s, want %s", tt.in.Format("2006-01-02"), tt.delta, got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
		})
	}
}

func TestShiftMonthPreservesClock(t *testing.T) {
	loc := time.FixedZone("test", 3*3600)
	in := time.Date(2026, time.February, 21, 13, 45, 10, 5, loc)
	got := ShiftMonth(in, 1)
	if got.Hour() != 13 || got.Minute() != 45 || got.Second() != 10 || got.Nanosecond() != 5 {
		t.Fatalf("time of day not preserved: %s", got)
	}
	if got.Location() != loc {
		t.Fatalf("location not preserved: %s", got.Location())
	}
}

func TestShiftMonthRoundTrip(t *testing.T) {
	for m := time.January; m <= time.December; m++ {
		in := date(2026, m, 15)
		back := ShiftMonth(ShiftMonth(in, 1), -1)
		if back.Year() != in.Year() || back.Month() != in.Month() {
			t.Fatalf("round trip of %s landed on %s", in.Format("2006-01"), back.Format("2006-01"))
		}
	}
}
