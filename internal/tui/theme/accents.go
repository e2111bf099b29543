package theme

import "github.com/javiermolinar/weekly/internal/todo"

// Accent is the set of style tokens for one weekday.
type Accent struct {
	Bg     string // Section and footer background
	Border string // Section border, initial box
	Strip  string // Top strip, progress fill, open dot
	Text   string // Initial letter, footer text
}

// DayAccents maps each weekday to its base color family.
// Values are the 50/100/500/700 steps of blue, emerald, purple, orange,
// pink, indigo and red.
var DayAccents = map[todo.Weekday]Accent{
	todo.Monday:    {Bg: "#eff6ff", Border: "#dbeafe", Strip: "#3b82f6", Text: "#1d4ed8"},
	todo.Tuesday:   {Bg: "#ecfdf5", Border: "#d1fae5", Strip: "#10b981", Text: "#047857"},
	todo.Wednesday: {Bg: "#faf5ff", Border: "#f3e8ff", Strip: "#a855f7", Text: "#7e22ce"},
	todo.Thursday:  {Bg: "#fff7ed", Border: "#ffedd5", Strip: "#f97316", Text: "#c2410c"},
	todo.Friday:    {Bg: "#fdf2f8", Border: "#fce7f3", Strip: "#ec4899", Text: "#be185d"},
	todo.Saturday:  {Bg: "#eef2ff", Border: "#e0e7ff", Strip: "#6366f1", Text: "#4338ca"},
	todo.Sunday:    {Bg: "#fef2f2", Border: "#fee2e2", Strip: "#ef4444", Text: "#b91c1c"},
}

// fallbackAccent is used for keys missing from DayAccents.
var fallbackAccent = Accent{Bg: "#f9fafb", Border: "#f3f4f6", Strip: "#6b7280", Text: "#374151"}

// AccentFor returns the base accent for day.
func AccentFor(day todo.Weekday) Accent {
	if a, ok := DayAccents[day]; ok {
		return a
	}
	return fallbackAccent
}
