package todo

import (
	"time"

	"github.com/javiermolinar/weekly/internal/dateutil"
)

// Resolver maps "today" and symbolic weekdays to calendar dates.
// It reads nothing but its clock.
type Resolver struct {
	clock dateutil.Clock
}

// NewResolver creates a Resolver. A nil clock means the system clock.
func NewResolver(clock dateutil.Clock) Resolver {
	if clock == nil {
		clock = dateutil.SystemClock()
	}
	return Resolver{clock: clock}
}

// Today returns the current date at midnight.
func (r Resolver) Today() time.Time {
	return dateutil.TruncateToDay(r.clock.Now())
}

// CurrentWeekday returns today's weekday.
func (r Resolver) CurrentWeekday() Weekday {
	return FromTime(r.clock.Now().Weekday())
}

// DateFor returns the date of day in the current Sunday-to-Saturday week.
// Days earlier in that week than today resolve to past dates.
func (r Resolver) DateFor(day Weekday) time.Time {
	return dateutil.DateInWeek(r.clock.Now(), day.Time())
}

// Span returns today and six days from today.
func (r Resolver) Span() (start, end time.Time) {
	return dateutil.Span(r.clock.Now())
}
