// Package dateutil provides clock and weekday arithmetic utilities.
package dateutil

import (
	"errors"
	"strings"
	"time"
)

// ErrUnknownDay is returned when a day name cannot be resolved.
var ErrUnknownDay = errors.New("day must be a weekday name, today, tomorrow or yesterday")

// Clock supplies the current time. Production code uses time.Now.
type Clock func() time.Time

// SystemClock returns the wall clock.
func SystemClock() Clock {
	return time.Now
}

// Fixed returns a clock that always reports t.
func Fixed(t time.Time) Clock {
	return func() time.Time { return t }
}

// Now returns the clock's current time, falling back to time.Now for a nil clock.
func (c Clock) Now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

// weekdayMap maps weekday names, full and short, to time.Weekday values.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sun":       time.Sunday,
	"mon":       time.Monday,
	"tue":       time.Tuesday,
	"wed":       time.Wednesday,
	"thu":       time.Thursday,
	"fri":       time.Friday,
	"sat":       time.Saturday,
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateInWeek returns the date of target within the Sunday-to-Saturday week
// containing now. The result is before now when target comes earlier in
// that week, e.g. Monday resolved on a Wednesday is two days back.
func DateInWeek(now time.Time, target time.Weekday) time.Time {
	today := TruncateToDay(now)
	diff := int(target) - int(today.Weekday())
	return today.AddDate(0, 0, diff)
}

// Span returns today and the date six days later, both truncated to midnight.
func Span(now time.Time) (start, end time.Time) {
	start = TruncateToDay(now)
	return start, start.AddDate(0, 0, 6)
}

// ParseDayName resolves a day name relative to now. It accepts:
//   - Full and short weekday names: "monday", "mon"
//   - Keywords: "today", "tomorrow", "yesterday"
//
// All inputs are case-insensitive.
func ParseDayName(s string, now time.Time) (time.Weekday, error) {
	input := strings.ToLower(strings.TrimSpace(s))
	switch input {
	case "today":
		return now.Weekday(), nil
	case "tomorrow":
		return now.AddDate(0, 0, 1).Weekday(), nil
	case "yesterday":
		return now.AddDate(0, 0, -1).Weekday(), nil
	}
	if day, ok := weekdayMap[input]; ok {
		return day, nil
	}
	return time.Sunday, ErrUnknownDay
}
