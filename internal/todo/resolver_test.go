package todo

import (
	"testing"
	"time"

	"github.com/javiermolinar/weekly/internal/dateutil"
)

func TestResolverCurrentWeekday(t *testing.T) {
	// 2025-01-12 is a Sunday.
	for i := 0; i < 7; i++ {
		now := time.Date(2025, 1, 12+i, 23, 59, 0, 0, time.Local)
		r := NewResolver(dateutil.Fixed(now))
		want := byIndex[int(now.Weekday())]
		if got := r.CurrentWeekday(); got != want {
			t.Errorf("%v: got %s, want %s", now.Weekday(), got, want)
		}
	}
}

func TestResolverDateFor(t *testing.T) {
	wednesday := time.Date(2025, 1, 15, 9, 0, 0, 0, time.Local)
	r := NewResolver(dateutil.Fixed(wednesday))

	t.Run("monday is two days before, not next week", func(t *testing.T) {
		got := r.DateFor(Monday)
		want := time.Date(2025, 1, 13, 0, 0, 0, 0, time.Local)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("sunday starts the week", func(t *testing.T) {
		got := r.DateFor(Sunday)
		want := time.Date(2025, 1, 12, 0, 0, 0, 0, time.Local)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("offset equals index difference", func(t *testing.T) {
		today := r.Today()
		for _, d := range Days {
			got := r.DateFor(d.Key)
			days := int(got.Sub(today).Hours() / 24)
			if want := d.Key.Index() - Wednesday.Index(); days != want {
				t.Errorf("%s: offset %d, want %d", d.Key, days, want)
			}
		}
	})
}

func TestResolverSpan(t *testing.T) {
	r := NewResolver(dateutil.Fixed(time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)))
	start, end := r.Span()
	if start.Day() != 15 || end.Day() != 21 {
		t.Errorf("span = %v..%v", start, end)
	}
}

func TestNewResolverNilClock(t *testing.T) {
	r := NewResolver(nil)
	if !r.CurrentWeekday().Valid() {
		t.Errorf("expected a valid weekday, got %q", r.CurrentWeekday())
	}
}
