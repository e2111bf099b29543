package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/javiermolinar/weekly/internal/dateutil"
	"github.com/javiermolinar/weekly/internal/todo"
	"github.com/javiermolinar/weekly/internal/tui/view"
)

// parseDay resolves a day argument such as "mon", "Friday" or "tomorrow".
func parseDay(s string, now time.Time) (todo.Weekday, error) {
	wd, err := dateutil.ParseDayName(s, now)
	if err != nil {
		return "", fmt.Errorf("%q: %w", s, err)
	}
	return todo.FromTime(wd), nil
}

// parseID parses a todo ID argument, with or without a leading '#'.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(s, "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid todo id %q", s)
	}
	return id, nil
}

// formatDayHeader renders "Wednesday, January 15, 2025  2/3".
func formatDayHeader(d todo.DayInfo, date time.Time, stats todo.DayStats, today bool) string {
	title := d.Label + ", " + view.FormatLongDate(date)
	if today {
		title = formatToday(title + " (today)")
	} else {
		title = formatHeader(title)
	}
	if stats.Total == 0 {
		return title
	}
	return title + "  " + formatMuted(fmt.Sprintf("%d/%d", stats.Completed, stats.Total))
}

// formatTodoRow renders one todo as a list row no wider than width.
func formatTodoRow(t *todo.Todo, now time.Time, width int) string {
	box := "[ ]"
	if t.Completed {
		box = formatDone("[x]")
	}
	id := formatMuted(fmt.Sprintf("#%-3d", t.ID))

	suffix := ""
	if t.Completed && t.CompletedAt != nil {
		suffix = "  " + formatMuted("done "+humanize.RelTime(*t.CompletedAt, now, "ago", "from now"))
	}

	prefix := "  " + box + " " + id + " "
	textWidth := width - ansi.StringWidth(prefix) - ansi.StringWidth(suffix)
	if textWidth < 10 {
		suffix = ""
		textWidth = width - ansi.StringWidth(prefix)
	}
	return prefix + ansi.Truncate(t.Text, max(1, textWidth), "…") + suffix
}

// pluralTodos renders "1 todo" or "3 todos".
func pluralTodos(n int) string {
	return english.Plural(n, "todo", "todos")
}
