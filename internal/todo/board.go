package todo

import (
	"slices"
)

// Board is a read-only snapshot of todos grouped by weekday.
// It answers the per-day aggregation queries the week view needs.
type Board struct {
	loading bool
	days    [7][]*Todo // indexed by DayInfo.Position
}

// NewLoadingBoard returns an empty board that reports IsLoading.
func NewLoadingBoard() *Board {
	return &Board{loading: true}
}

// NewBoard groups todos by weekday. Todos with an unknown weekday are ignored.
// Within a day, open todos come first, then by creation time and ID.
func NewBoard(todos []*Todo) *Board {
	b := &Board{}
	for _, t := range todos {
		if t == nil {
			continue
		}
		pos := t.Day.Position()
		if pos < 0 {
			continue
		}
		b.days[pos] = append(b.days[pos], t)
	}
	for i := range b.days {
		slices.SortStableFunc(b.days[i], compareTodos)
	}
	return b
}

func compareTodos(a, b *Todo) int {
	if a.Completed != b.Completed {
		if a.Completed {
			return 1
		}
		return -1
	}
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	default:
		return 0
	}
}

// IsLoading reports whether the board is still waiting for data.
func (b *Board) IsLoading() bool {
	return b == nil || b.loading
}

// TodosForDay returns a copy of the todos planned for day.
func (b *Board) TodosForDay(day Weekday) []*Todo {
	pos := day.Position()
	if b == nil || pos < 0 {
		return nil
	}
	result := make([]*Todo, len(b.days[pos]))
	copy(result, b.days[pos])
	return result
}

// TotalTodosForDay returns the number of todos planned for day.
func (b *Board) TotalTodosForDay(day Weekday) int {
	pos := day.Position()
	if b == nil || pos < 0 {
		return 0
	}
	return len(b.days[pos])
}

// CompletedTodosForDay returns the number of completed todos for day.
func (b *Board) CompletedTodosForDay(day Weekday) int {
	pos := day.Position()
	if b == nil || pos < 0 {
		return 0
	}
	n := 0
	for _, t := range b.days[pos] {
		if t.Completed {
			n++
		}
	}
	return n
}

// Find returns the todo with the given ID, or nil.
func (b *Board) Find(id int64) *Todo {
	if b == nil {
		return nil
	}
	for _, day := range b.days {
		for _, t := range day {
			if t.ID == id {
				return t
			}
		}
	}
	return nil
}

// Len returns the number of todos across the week.
func (b *Board) Len() int {
	if b == nil {
		return 0
	}
	n := 0
	for _, day := range b.days {
		n += len(day)
	}
	return n
}

// DayStats holds completion counts for a single day.
type DayStats struct {
	Total     int
	Completed int
}

// Remaining returns the number of open todos.
func (s DayStats) Remaining() int {
	return s.Total - s.Completed
}

// Done returns true if the day has todos and all are completed.
func (s DayStats) Done() bool {
	return s.Total > 0 && s.Completed == s.Total
}

// Stats returns the completion counts for day.
func (b *Board) Stats(day Weekday) DayStats {
	return DayStats{
		Total:     b.TotalTodosForDay(day),
		Completed: b.CompletedTodosForDay(day),
	}
}

// WeekStats holds aggregated completion counts for the week.
type WeekStats struct {
	Total     int
	Completed int
	DayStats  [7]DayStats // indexed by DayInfo.Position
}

// Percent returns the completed share of all todos, 0..100.
func (s WeekStats) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return (s.Completed * 100) / s.Total
}

// BestDay returns the weekday with the most completed todos.
// ok is false when nothing has been completed.
func (s WeekStats) BestDay() (day Weekday, completed int, ok bool) {
	for i, ds := range s.DayStats {
		if ds.Completed > completed {
			completed = ds.Completed
			day = Days[i].Key
			ok = true
		}
	}
	return day, completed, ok
}

// WeekStats calculates statistics for the whole week.
func (b *Board) WeekStats() WeekStats {
	var stats WeekStats
	for i, d := range Days {
		ds := b.Stats(d.Key)
		stats.DayStats[i] = ds
		stats.Total += ds.Total
		stats.Completed += ds.Completed
	}
	return stats
}
