package view

import (
	"strconv"
	"time"

	"github.com/javiermolinar/weekly/internal/todo"
	"github.com/javiermolinar/weekly/internal/tui/theme"
)

// Aggregator supplies per-day todo counts and a loading flag.
type Aggregator interface {
	IsLoading() bool
	TotalTodosForDay(day todo.Weekday) int
	CompletedTodosForDay(day todo.Weekday) int
}

// ListRenderer renders the individual todos of one day.
type ListRenderer interface {
	RenderList(day todo.Weekday, accent theme.Accent) string
}

// DayResolver maps weekdays to dates in the current week.
type DayResolver interface {
	CurrentWeekday() todo.Weekday
	DateFor(day todo.Weekday) time.Time
	Span() (start, end time.Time)
}

// DisplayDay is the per-render view model of one weekday.
type DisplayDay struct {
	Day             todo.DayInfo
	Date            time.Time
	IsToday         bool
	Total           int
	Completed       int
	ProgressPercent float64
}

// Remaining returns the number of open todos.
func (d DisplayDay) Remaining() int {
	return d.Total - d.Completed
}

// Malformed reports counts no real day can have.
func (d DisplayDay) Malformed() bool {
	return d.Total < 0 || d.Completed < 0 || d.Completed > d.Total
}

// BuildWeek computes the display state of every weekday in todo.Days order.
func BuildWeek(agg Aggregator, res DayResolver) []DisplayDay {
	today := res.CurrentWeekday()
	days := make([]DisplayDay, 0, len(todo.Days))
	for _, d := range todo.Days {
		total := agg.TotalTodosForDay(d.Key)
		completed := agg.CompletedTodosForDay(d.Key)
		days = append(days, DisplayDay{
			Day:             d,
			Date:            res.DateFor(d.Key),
			IsToday:         d.Key == today,
			Total:           total,
			Completed:       completed,
			ProgressPercent: ProgressPercent(total, completed),
		})
	}
	return days
}

// ProgressPercent returns completed/total*100, or 0 when total is 0.
// Counts are not clamped.
func ProgressPercent(total, completed int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

// FooterText returns the footer message of a day section.
// ok is false when the day has no todos and the footer is omitted.
func FooterText(total, completed int) (text string, ok bool) {
	if total == 0 {
		return "", false
	}
	if completed == total {
		return "All tasks completed!", true
	}
	return strconv.Itoa(total-completed) + " remaining", true
}
