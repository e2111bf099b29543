package view

import (
	"strings"
	"testing"

	"github.com/javiermolinar/weekly/internal/todo"
)

func TestStatsTableRows(t *testing.T) {
	var stats todo.WeekStats
	stats.DayStats[0] = todo.DayStats{Total: 4, Completed: 1}
	stats.DayStats[6] = todo.DayStats{Total: 2, Completed: 2}

	rows := StatsTableRows(stats)
	if len(rows) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(rows))
	}

	want := [][]string{
		{"Mon", "1", "3", "25%"},
		{"Tue", "0", "0", "-"},
		{"Sun", "2", "0", "100%"},
	}
	got := [][]string{rows[0], rows[1], rows[6]}
	for i := range want {
		if strings.Join(got[i], "|") != strings.Join(want[i], "|") {
			t.Errorf("row %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRenderStatsTableIncludesHeaderAndDays(t *testing.T) {
	out := RenderStatsTable(todo.WeekStats{}, todo.Wednesday, StatsTableStyles{})

	for _, want := range append([]string{"Day", "Progress"}, "Mon", "Sun") {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in table:\n%s", want, out)
		}
	}
}
