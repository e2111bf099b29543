package todo

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidWeekday is returned when a string is not a known weekday key.
var ErrInvalidWeekday = errors.New("weekday must be one of monday..sunday")

// Weekday is the symbolic key of a day of the week.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// DayInfo describes a weekday for display.
type DayInfo struct {
	Key      Weekday
	Label    string // "Monday"
	Short    string // "Mon"
	Position int    // Sort position in Days
}

// Days is the canonical week, Monday through Sunday.
var Days = [7]DayInfo{
	{Key: Monday, Label: "Monday", Short: "Mon", Position: 0},
	{Key: Tuesday, Label: "Tuesday", Short: "Tue", Position: 1},
	{Key: Wednesday, Label: "Wednesday", Short: "Wed", Position: 2},
	{Key: Thursday, Label: "Thursday", Short: "Thu", Position: 3},
	{Key: Friday, Label: "Friday", Short: "Fri", Position: 4},
	{Key: Saturday, Label: "Saturday", Short: "Sat", Position: 5},
	{Key: Sunday, Label: "Sunday", Short: "Sun", Position: 6},
}

// byIndex maps the 0=Sunday..6=Saturday index to a weekday.
var byIndex = [7]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// FromTime maps a time.Weekday to its symbolic key.
func FromTime(d time.Weekday) Weekday {
	return byIndex[int(d)%7]
}

// ParseWeekday parses a weekday key, case-insensitively.
func ParseWeekday(s string) (Weekday, error) {
	w := Weekday(strings.ToLower(strings.TrimSpace(s)))
	if !w.Valid() {
		return "", ErrInvalidWeekday
	}
	return w, nil
}

// Valid returns true if w is one of the seven weekday keys.
func (w Weekday) Valid() bool {
	_, ok := w.info()
	return ok
}

// Index returns the 0=Sunday..6=Saturday index, or -1 for an unknown key.
func (w Weekday) Index() int {
	for i, d := range byIndex {
		if d == w {
			return i
		}
	}
	return -1
}

// Time returns the equivalent time.Weekday.
func (w Weekday) Time() time.Weekday {
	return time.Weekday(w.Index())
}

// Position returns the sort position in Days, or -1 for an unknown key.
func (w Weekday) Position() int {
	info, ok := w.info()
	if !ok {
		return -1
	}
	return info.Position
}

// Label returns the display label, e.g. "Monday".
func (w Weekday) Label() string {
	info, _ := w.info()
	return info.Label
}

// Short returns the short label, e.g. "Mon".
func (w Weekday) Short() string {
	info, _ := w.info()
	return info.Short
}

// Next returns the following weekday in Days order, wrapping Sunday to Monday.
func (w Weekday) Next() Weekday {
	pos := w.Position()
	if pos < 0 {
		return w
	}
	return Days[(pos+1)%len(Days)].Key
}

// Prev returns the preceding weekday in Days order, wrapping Monday to Sunday.
func (w Weekday) Prev() Weekday {
	pos := w.Position()
	if pos < 0 {
		return w
	}
	return Days[(pos+len(Days)-1)%len(Days)].Key
}

func (w Weekday) info() (DayInfo, bool) {
	for _, d := range Days {
		if d.Key == w {
			return d, true
		}
	}
	return DayInfo{}, false
}
