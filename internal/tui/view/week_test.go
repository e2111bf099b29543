package view

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/weekly/internal/dateutil"
	"github.com/javiermolinar/weekly/internal/todo"
	"github.com/javiermolinar/weekly/internal/tui/theme"
)

type fakeAggregator struct {
	loading   bool
	total     map[todo.Weekday]int
	completed map[todo.Weekday]int
}

func (f fakeAggregator) IsLoading() bool                         { return f.loading }
func (f fakeAggregator) TotalTodosForDay(d todo.Weekday) int     { return f.total[d] }
func (f fakeAggregator) CompletedTodosForDay(d todo.Weekday) int { return f.completed[d] }

func (f fakeAggregator) with(d todo.Weekday, total, completed int) fakeAggregator {
	f.total[d] = total
	f.completed[d] = completed
	return f
}

func newFakeAggregator() fakeAggregator {
	return fakeAggregator{total: map[todo.Weekday]int{}, completed: map[todo.Weekday]int{}}
}

type fakeLists struct {
	calls []todo.Weekday
}

func (f *fakeLists) RenderList(day todo.Weekday, _ theme.Accent) string {
	f.calls = append(f.calls, day)
	return "list:" + string(day)
}

// 2025-01-15 is a Wednesday.
var wednesday = time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)

func testResolver() todo.Resolver {
	return todo.NewResolver(dateutil.Fixed(wednesday))
}

func testState(agg Aggregator) WeekViewState {
	return WeekViewState{
		Aggregator:     agg,
		Resolver:       testResolver(),
		Palette:        theme.NewPalette(nil),
		Width:          80,
		Selected:       todo.Wednesday,
		ShowSeparators: true,
	}
}

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		name             string
		total, completed int
		want             float64
	}{
		{"empty day", 0, 0, 0},
		{"none done", 4, 0, 0},
		{"half", 4, 2, 50},
		{"all done", 5, 5, 100},
		{"three of five", 5, 3, 60},
		{"negative total", -1, 0, 0},
		{"more completed than total", 2, 3, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProgressPercent(tt.total, tt.completed); got != tt.want {
				t.Errorf("ProgressPercent(%d, %d) = %v, want %v", tt.total, tt.completed, got, tt.want)
			}
		})
	}
}

func TestFooterText(t *testing.T) {
	tests := []struct {
		total, completed int
		want             string
		wantOK           bool
	}{
		{5, 5, "All tasks completed!", true},
		{5, 3, "2 remaining", true},
		{0, 0, "", false},
		{1, 0, "1 remaining", true},
	}

	for _, tt := range tests {
		got, ok := FooterText(tt.total, tt.completed)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("FooterText(%d, %d) = (%q, %v), want (%q, %v)",
				tt.total, tt.completed, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestBuildWeek(t *testing.T) {
	agg := newFakeAggregator().
		with(todo.Monday, 5, 5).
		with(todo.Wednesday, 5, 3)

	days := BuildWeek(agg, testResolver())
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}

	for i, d := range days {
		if d.Day.Key != todo.Days[i].Key {
			t.Errorf("day %d = %s, want %s", i, d.Day.Key, todo.Days[i].Key)
		}
		if d.IsToday != (d.Day.Key == todo.Wednesday) {
			t.Errorf("%s IsToday = %v", d.Day.Key, d.IsToday)
		}
	}

	mon := days[0]
	if mon.Total != 5 || mon.Completed != 5 || mon.ProgressPercent != 100 {
		t.Errorf("monday = %+v", mon)
	}
	wantMon := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)
	if !mon.Date.Equal(wantMon) {
		t.Errorf("monday date = %v, want %v", mon.Date, wantMon)
	}

	wed := days[2]
	if wed.Remaining() != 2 || wed.ProgressPercent != 60 {
		t.Errorf("wednesday = %+v", wed)
	}

	// Sunday starts the week, so it resolves to the past.
	wantSun := time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)
	if !days[6].Date.Equal(wantSun) {
		t.Errorf("sunday date = %v, want %v", days[6].Date, wantSun)
	}
}

func TestDisplayDay_Malformed(t *testing.T) {
	if (DisplayDay{Total: 2, Completed: 3}).Malformed() != true {
		t.Error("completed > total should be malformed")
	}
	if (DisplayDay{Total: 3, Completed: 3}).Malformed() {
		t.Error("3/3 is well formed")
	}
}

func TestRenderWeek_Loading(t *testing.T) {
	lists := &fakeLists{}
	s := testState(fakeAggregator{loading: true})
	s.Lists = lists
	s.Spinner = "⣾"

	out := RenderWeek(s)
	if got := strings.Count(out, "Loading..."); got != 1 {
		t.Errorf("expected one loading indicator, got %d in %q", got, out)
	}
	for _, d := range todo.Days {
		if strings.Contains(out, d.Label) {
			t.Errorf("loading view should not render %s", d.Label)
		}
	}
	if len(lists.calls) != 0 {
		t.Errorf("list renderer called while loading: %v", lists.calls)
	}
}

func TestRenderWeek_NilAggregatorIsLoading(t *testing.T) {
	out := RenderWeek(WeekViewState{Resolver: testResolver()})
	if !strings.Contains(out, "Loading...") {
		t.Errorf("expected loading view, got %q", out)
	}
}

func TestRenderWeek_DayOrder(t *testing.T) {
	lists := &fakeLists{}
	s := testState(newFakeAggregator())
	s.Lists = lists

	out := RenderWeek(s)
	last := -1
	for _, d := range todo.Days {
		idx := strings.Index(out, "list:"+string(d.Key))
		if idx < 0 {
			t.Fatalf("missing list for %s", d.Key)
		}
		if idx < last {
			t.Errorf("%s rendered out of order", d.Label)
		}
		last = idx
	}

	if len(lists.calls) != 7 {
		t.Fatalf("expected 7 list renders, got %d", len(lists.calls))
	}
	for i, day := range lists.calls {
		if day != todo.Days[i].Key {
			t.Errorf("call %d = %s, want %s", i, day, todo.Days[i].Key)
		}
	}
}

func TestRenderWeek_TitleAndDates(t *testing.T) {
	out := RenderWeek(testState(newFakeAggregator().with(todo.Friday, 4, 1)))

	for _, want := range []string{
		"This Week",
		"January 15, 2025 - January 21, 2025",
		"1/4 tasks · 25% complete",
		"Today",
		"January 13, 2025", // Monday, two days back
		"January 17, 2025", // Friday
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output", want)
		}
	}
	if got := strings.Count(out, "Today"); got != 1 {
		t.Errorf("expected one Today badge, got %d", got)
	}
}

func TestRenderWeek_Footers(t *testing.T) {
	agg := newFakeAggregator().
		with(todo.Monday, 5, 5).
		with(todo.Tuesday, 5, 3)

	out := RenderWeek(testState(agg))

	if !strings.Contains(out, "✓ All tasks completed!") {
		t.Error("expected completed footer for Monday")
	}
	if !strings.Contains(out, "2 remaining") {
		t.Error("expected remaining footer for Tuesday")
	}
	if !strings.Contains(out, "100% complete") || !strings.Contains(out, "60% complete") {
		t.Error("expected percent labels in footers")
	}
	if got := strings.Count(out, "No tasks"); got != 5 {
		t.Errorf("expected 5 empty days, got %d", got)
	}
	if got := strings.Count(out, "remaining") + strings.Count(out, "All tasks completed!"); got != 2 {
		t.Errorf("expected 2 footers, got %d", got)
	}
}

func TestRenderWeek_Separators(t *testing.T) {
	s := testState(newFakeAggregator())
	out := RenderWeek(s)

	sepLines := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, separatorRune+separatorRune+" ") {
			sepLines++
		}
	}
	if sepLines != 6 {
		t.Errorf("expected 6 separators, got %d", sepLines)
	}

	for _, d := range todo.Days[1:] {
		if !strings.Contains(out, separatorRune+" "+d.Label+" ") {
			t.Errorf("missing separator for %s", d.Label)
		}
	}
	if strings.Contains(out, separatorRune+" Monday ") {
		t.Error("Monday is first and has no separator before it")
	}

	lines := strings.Split(out, "\n")
	if strings.Contains(lines[len(lines)-1], separatorRune) {
		t.Error("no separator should follow the last day")
	}

	s.ShowSeparators = false
	if strings.Contains(RenderWeek(s), separatorRune) {
		t.Error("separators rendered while disabled")
	}
}

func TestLayoutWeek_DayOffsets(t *testing.T) {
	layout := LayoutWeek(testState(newFakeAggregator()))
	lines := strings.Split(layout.Content, "\n")

	if layout.Lines != len(lines) {
		t.Errorf("Lines = %d, want %d", layout.Lines, len(lines))
	}
	for i := 1; i < len(layout.DayOffsets); i++ {
		if layout.DayOffsets[i] <= layout.DayOffsets[i-1] {
			t.Errorf("offsets not increasing: %v", layout.DayOffsets)
		}
	}
	for i, d := range todo.Days {
		off := layout.DayOffsets[i]
		// The day label sits on the header row, two lines below the section top.
		window := strings.Join(lines[off:min(off+5, len(lines))], "\n")
		if !strings.Contains(window, d.Label) {
			t.Errorf("%s not found near offset %d", d.Label, off)
		}
	}
}

func TestRenderWeek_MalformedCountsStillRender(t *testing.T) {
	out := RenderWeek(testState(newFakeAggregator().with(todo.Monday, 2, 3)))
	if !strings.Contains(out, "-1 remaining") {
		t.Errorf("expected literal remaining count, got:\n%s", out)
	}
	if !strings.Contains(out, "150% complete") {
		t.Error("expected unclamped percent label")
	}
}

func TestFormatTaskCount(t *testing.T) {
	tests := []struct {
		completed, total int
		want             string
	}{
		{0, 0, "0/0 tasks"},
		{1, 1, "1/1 tasks"},
		{0, 1, "0/1 tasks"},
		{3, 5, "3/5 tasks"},
	}
	for _, tt := range tests {
		if got := FormatTaskCount(tt.completed, tt.total); got != tt.want {
			t.Errorf("FormatTaskCount(%d, %d) = %q, want %q", tt.completed, tt.total, got, tt.want)
		}
	}

	out := RenderWeek(testState(newFakeAggregator().with(todo.Thursday, 1, 1)))
	if !strings.Contains(out, "1/1 tasks") {
		t.Error("single-todo day should still say tasks")
	}
}

func TestContentWidth(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, DefaultWidth},
		{-5, DefaultWidth},
		{10, MinWidth},
		{70, 70},
		{500, MaxWidth},
	}
	for _, tt := range tests {
		if got := ContentWidth(tt.in); got != tt.want {
			t.Errorf("ContentWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if InnerWidth(80) != 76 {
		t.Errorf("InnerWidth(80) = %d", InnerWidth(80))
	}
}

func TestRenderProgressBar_Width(t *testing.T) {
	accent := theme.AccentFor(todo.Monday)
	for _, pct := range []float64{-20, 0, 50, 100, 150} {
		bar := RenderProgressBar(pct, 20, accent)
		if w := lipgloss.Width(bar); w != 20 {
			t.Errorf("pct %v: width = %d, want 20", pct, w)
		}
	}
}
