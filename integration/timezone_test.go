package integration

import (
	"testing"
	"time"

	"github.com/javiermolinar/weekly/internal/dateutil"
	"github.com/javiermolinar/weekly/internal/todo"
	"github.com/javiermolinar/weekly/internal/tui/view"
)

// The resolver works in the clock's own location, so a late evening in a
// western timezone stays on the local day even when UTC has moved on.
func TestResolverUsesClockLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	// Friday 23:30 local is already Saturday in UTC.
	now := time.Date(2025, 1, 17, 23, 30, 0, 0, loc)
	res := todo.NewResolver(dateutil.Fixed(now))

	if got := res.CurrentWeekday(); got != todo.Friday {
		t.Fatalf("CurrentWeekday = %s, want friday", got)
	}

	days := view.BuildWeek(todo.NewBoard(nil), res)
	for _, d := range days {
		if d.IsToday != (d.Day.Key == todo.Friday) {
			t.Errorf("%s IsToday = %v", d.Day.Key, d.IsToday)
		}
		if d.Date.Location() != loc {
			t.Errorf("%s date in %v, want %v", d.Day.Key, d.Date.Location(), loc)
		}
	}

	fri := days[todo.Friday.Position()].Date
	if fri.Year() != 2025 || fri.Month() != time.January || fri.Day() != 17 {
		t.Errorf("friday = %v", fri)
	}
}

func TestTodayMovesAtMidnight(t *testing.T) {
	var now time.Time
	clock := dateutil.Clock(func() time.Time { return now })
	res := todo.NewResolver(clock)

	now = time.Date(2025, 1, 14, 23, 59, 0, 0, time.UTC)
	if res.CurrentWeekday() != todo.Tuesday {
		t.Fatalf("before midnight: %s", res.CurrentWeekday())
	}
	now = now.Add(2 * time.Minute)
	if res.CurrentWeekday() != todo.Wednesday {
		t.Fatalf("after midnight: %s", res.CurrentWeekday())
	}

	start, end := res.Span()
	if start.Day() != 15 || end.Day() != 21 {
		t.Errorf("span = %v - %v", start, end)
	}
}
