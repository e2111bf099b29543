package dateutil

import (
	"errors"
	"testing"
	"time"
)

// 2025-01-15 is a Wednesday.
var wednesday = time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)

func TestDateInWeek(t *testing.T) {
	tests := []struct {
		name   string
		target time.Weekday
		want   time.Time
	}{
		{"sunday is three days back", time.Sunday, time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)},
		{"monday is two days back", time.Monday, time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)},
		{"wednesday is today", time.Wednesday, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"friday is two days ahead", time.Friday, time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC)},
		{"saturday is three days ahead", time.Saturday, time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DateInWeek(wednesday, tt.target)
			if !got.Equal(tt.want) {
				t.Errorf("DateInWeek(%v) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}

func TestDateInWeek_OffsetMatchesIndexDifference(t *testing.T) {
	for d := 0; d < 7; d++ {
		now := time.Date(2025, 1, 12+d, 9, 0, 0, 0, time.UTC)
		today := TruncateToDay(now)
		for target := time.Sunday; target <= time.Saturday; target++ {
			got := DateInWeek(now, target)
			days := int(got.Sub(today).Hours() / 24)
			want := int(target) - int(now.Weekday())
			if days != want {
				t.Errorf("now=%v target=%v: offset %d, want %d", now.Weekday(), target, days, want)
			}
		}
	}
}

func TestSpan(t *testing.T) {
	start, end := Span(wednesday)
	if !start.Equal(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2025, 1, 21, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}
}

func TestParseDayName(t *testing.T) {
	tests := []struct {
		input string
		want  time.Weekday
	}{
		{"monday", time.Monday},
		{"  Friday ", time.Friday},
		{"SAT", time.Saturday},
		{"today", time.Wednesday},
		{"tomorrow", time.Thursday},
		{"yesterday", time.Tuesday},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDayName(tt.input, wednesday)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := ParseDayName("someday", wednesday)
		if !errors.Is(err, ErrUnknownDay) {
			t.Errorf("got error %v, want %v", err, ErrUnknownDay)
		}
	})
}

func TestClock(t *testing.T) {
	c := Fixed(wednesday)
	if !c.Now().Equal(wednesday) {
		t.Errorf("fixed clock returned %v", c.Now())
	}

	var nilClock Clock
	if nilClock.Now().IsZero() {
		t.Error("nil clock should fall back to time.Now")
	}
}
