package view

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/javiermolinar/weekly/internal/todo"
)

// StatsTableStyles holds the styles of the per-day stats table.
type StatsTableStyles struct {
	Header lipgloss.Style
	Cell   lipgloss.Style
	Done   lipgloss.Style
	Today  lipgloss.Style
	Border lipgloss.Style
}

// StatsTableHeaders are the columns of the per-day stats table.
var StatsTableHeaders = []string{"Day", "Done", "Open", "Progress"}

// StatsTableRows builds one row per weekday from stats.
func StatsTableRows(stats todo.WeekStats) [][]string {
	rows := make([][]string, 0, len(todo.Days))
	for i, d := range todo.Days {
		ds := stats.DayStats[i]
		progress := "-"
		if ds.Total > 0 {
			progress = FormatPercent(ProgressPercent(ds.Total, ds.Completed))
		}
		rows = append(rows, []string{
			d.Short,
			strconv.Itoa(ds.Completed),
			strconv.Itoa(ds.Remaining()),
			progress,
		})
	}
	return rows
}

// RenderStatsTable renders the per-day stats table with a lipgloss table.
// today highlights its row; cleared days use the Done style.
func RenderStatsTable(stats todo.WeekStats, today todo.Weekday, styles StatsTableStyles) string {
	todayRow := today.Position()
	t := table.New().
		Headers(StatsTableHeaders...).
		Border(lipgloss.RoundedBorder()).
		BorderHeader(true).
		BorderColumn(true).
		BorderRow(false).
		BorderStyle(styles.Border).
		Rows(StatsTableRows(stats)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = styles.Header
			case row == todayRow:
				style = styles.Today
			case row >= 0 && row < len(stats.DayStats) && stats.DayStats[row].Done():
				style = styles.Done
			default:
				style = styles.Cell
			}
			if col > 0 {
				style = style.Align(lipgloss.Right)
			}
			return style.Padding(0, 1)
		})
	return t.Render()
}
