package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var sampleEvents = []Event{
	{Day: 22, Title: "Gate 1B & 1C Due", Category: Backtest},
	{Day: 23, Title: "Gate 1D Due", Category: Backtest},
	{Day: 28, Title: "Phase 1 Closeout", Category: Review},
	{Day: 1, Title: "Phase 2 Forward Test Begins", Category: Paper},
}

func TestStateNavigation(t *testing.T) {
	today := date(2026, time.February, 21)
	s := NewState(today)

	next := s.Next()
	if next.Reference.Month() != time.March {
		t.Fatalf("expected March, got %s", next.Reference.Month())
	}
	if s.Reference.Month() != time.February {
		t.Fatalf("Next must not modify the receiver")
	}
	if got := next.Prev().Title(); got != "February 2026" {
		t.Fatalf("expected February 2026, got %s", got)
	}
	if got := s.Shift(-2).Title(); got != "December 2025" {
		t.Fatalf("expected December 2025, got %s", got)
	}
	if got := s.Shift(10).Reset(); !got.Reference.Equal(today) {
		t.Fatalf("Reset should return to today, got %s", got.Reference)
	}
}

func TestStateIsTodayBoundToMonth(t *testing.T) {
	s := NewState(date(2026, time.February, 21))
	if !s.IsToday(21) {
		t.Fatalf("expected the 21st to be today")
	}
	if s.IsToday(20) || s.IsToday(0) {
		t.Fatalf("only the 21st is today")
	}
	if s.Next().IsToday(21) {
		t.Fatalf("the 21st of March is not today")
	}
	if s.Shift(12).IsToday(21) {
		t.Fatalf("the 21st of February 2027 is not today")
	}
}

func TestEventsOn(t *testing.T) {
	if got := EventsOn(sampleEvents, 22); len(got) != 1 || got[0].Title != "Gate 1B & 1C Due" {
		t.Fatalf("unexpected events on 22: %+v", got)
	}
	if got := EventsOn(sampleEvents, 5); len(got) != 0 {
		t.Fatalf("expected no events on 5, got %+v", got)
	}
}

func TestUpcoming(t *testing.T) {
	got := Upcoming(sampleEvents, date(2026, time.February, 21), DefaultUpcomingDays)
	want := sampleEvents[:3]
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected upcoming events (-want +got):\n%s", diff)
	}
	if got := Upcoming(sampleEvents, date(2026, time.February, 21), 1); len(got) != 1 {
		t.Fatalf("expected one event within a day, got %+v", got)
	}
	if got := Upcoming(sampleEvents, date(2026, time.February, 1), 0); len(got) != 1 || got[0].Category != Paper {
		t.Fatalf("expected the day-1 event, got %+v", got)
	}
}

func TestUpcomingAcrossMonthEnd(t *testing.T) {
	events := []Event{
		{Day: 28, Title: "Phase 1 Closeout", Category: Review},
		{Day: 1, Title: "Phase 2 Forward Test Begins", Category: Paper},
		{Day: 30, Title: "Month End Review", Category: Review},
	}
	tests := map[string]struct {
		today time.Time
		days  int
		want  []int
	}{
		"february rolls into march": {
			today: date(2026, time.February, 26),
			days:  7,
			want:  []int{28, 1},
		},
		"leap february": {
			today: date(2028, time.February, 26),
			days:  4,
			want:  []int{28, 1},
		},
		"april reaches the 30th": {
			today: date(2026, time.April, 27),
			days:  4,
			want:  []int{28, 30, 1},
		},
		"december into january": {
			today: date(2026, time.December, 30),
			days:  2,
			want:  []int{30, 1},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var got []int
			for _, e := range Upcoming(events, tc.today, tc.days) {
				got = append(got, e.Day)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("unexpected upcoming days (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCategoryNames(t *testing.T) {
	for _, c := range Categories() {
		parsed, err := ParseCategory(strings.ToUpper(c.String()))
		if err != nil {
			t.Fatalf("parse %s: %v", c, err)
		}
		if parsed != c {
			t.Fatalf("expected %s, got %s", c, parsed)
		}
	}
	if _, err := ParseCategory("meeting"); err == nil {
		t.Fatalf("expected error for unknown category")
	}
	if Category(9).String() != "unknown" {
		t.Fatalf("out of range category should be unknown")
	}
}

func TestRenderIncludesHeaderAndDays(t *testing.T) {
	s := NewState(date(2026, time.February, 21))
	out := Render(s, sampleEvents, DefaultOptions())
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[0], weekdayHeader) {
		t.Fatalf("expected weekday header, got %q", lines[0])
	}
	for _, day := range []string{" 1", "21", "28"} {
		if !strings.Contains(out, day) {
			t.Fatalf("expected %q in render:\n%s", day, out)
		}
	}
	if strings.Contains(out, "29") {
		t.Fatalf("February 2026 has no 29th:\n%s", out)
	}
	if !strings.Contains(out, "review") {
		t.Fatalf("expected legend in render")
	}
	if Render(State{}, sampleEvents, DefaultOptions()) != "" {
		t.Fatalf("zero state should render nothing")
	}
}

func TestAgendaSkipsDaysPastMonthEnd(t *testing.T) {
	events := append([]Event{{Day: 30, Title: "Month End", Category: Live}}, sampleEvents...)
	feb := Agenda(NewState(date(2026, time.February, 21)), events)
	if len(feb) != 4 {
		t.Fatalf("expected 4 february agenda lines, got %v", feb)
	}
	if !strings.HasPrefix(feb[0], "Feb  1") {
		t.Fatalf("expected agenda ordered by day, got %q", feb[0])
	}
	mar := Agenda(NewState(date(2026, time.March, 1)), events)
	if len(mar) != 5 {
		t.Fatalf("expected 5 march agenda lines, got %v", mar)
	}
}

func TestParseMonth(t *testing.T) {
	for _, in := range []string{"2026-02", "February 2026", "Feb 2026"} {
		got, ok := ParseMonth(in)
		if !ok || got.Year() != 2026 || got.Month() != time.February {
			t.Fatalf("ParseMonth(%q) = %s, %v", in, got, ok)
		}
	}
	if _, ok := ParseMonth("soon"); ok {
		t.Fatalf("expected failure for invalid month")
	}
	if _, ok := ParseMonth(" "); ok {
		t.Fatalf("expected failure for blank month")
	}
}
