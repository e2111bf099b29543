package view

import (
	"fmt"
	"math"
	"time"
)

// LongDateLayout renders dates as "January 2, 2006".
const LongDateLayout = "January 2, 2006"

// FormatLongDate formats t as "January 2, 2006".
func FormatLongDate(t time.Time) string {
	return t.Format(LongDateLayout)
}

// FormatSpan formats a date range as "January 2, 2006 - January 8, 2006".
func FormatSpan(start, end time.Time) string {
	return FormatLongDate(start) + " - " + FormatLongDate(end)
}

// FormatPercent rounds a percentage to the nearest integer, "42%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(p)))
}

// FormatTaskCount formats completed/total as "3/5 tasks".
func FormatTaskCount(completed, total int) string {
	return fmt.Sprintf("%d/%d tasks", completed, total)
}
