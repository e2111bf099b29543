// Package list renders the todos of a single day inside a week section.
package list

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/weekly/internal/todo"
	"github.com/javiermolinar/weekly/internal/tui/theme"
)

// EmptyText is shown for a day without todos.
const EmptyText = "No tasks yet"

// Source provides the todos planned for a day.
type Source interface {
	TodosForDay(day todo.Weekday) []*todo.Todo
}

// Cursor identifies the highlighted todo.
type Cursor struct {
	Day    todo.Weekday
	TodoID int64
}

// Renderer draws checkbox rows for a day.
// The zero value renders nothing but the empty state.
type Renderer struct {
	Source        Source
	Palette       *theme.Palette
	Width         int
	ShowCompleted bool
	Cursor        Cursor
	// ShowCursor hides the highlight while a prompt has focus.
	ShowCursor bool
}

// Visible returns the todos of day that the renderer would draw.
func (r Renderer) Visible(day todo.Weekday) []*todo.Todo {
	if r.Source == nil {
		return nil
	}
	todos := r.Source.TodosForDay(day)
	if r.ShowCompleted {
		return todos
	}
	open := make([]*todo.Todo, 0, len(todos))
	for _, t := range todos {
		if !t.Completed {
			open = append(open, t)
		}
	}
	return open
}

// RenderList implements the week view's list renderer.
func (r Renderer) RenderList(day todo.Weekday, accent theme.Accent) string {
	p := r.Palette
	if p == nil {
		p = theme.NewPalette(nil)
	}
	muted := lipgloss.NewStyle().Foreground(p.FgMuted).Italic(true)

	var all []*todo.Todo
	if r.Source != nil {
		all = r.Source.TodosForDay(day)
	}
	if len(all) == 0 {
		return muted.Render(EmptyText)
	}

	visible := r.Visible(day)
	lines := make([]string, 0, len(visible)+1)
	for _, t := range visible {
		lines = append(lines, r.renderItem(t, accent, p))
	}
	if hidden := len(all) - len(visible); hidden > 0 {
		lines = append(lines, muted.Render(strconv.Itoa(hidden)+" completed hidden"))
	}
	return strings.Join(lines, "\n")
}

func (r Renderer) renderItem(t *todo.Todo, accent theme.Accent, p *theme.Palette) string {
	selected := r.ShowCursor && r.Cursor.Day == t.Day && r.Cursor.TodoID == t.ID

	marker := "  "
	if selected {
		marker = "› "
	}
	box := "[ ] "
	boxStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(accent.Strip))
	textStyle := lipgloss.NewStyle().Foreground(p.Fg)
	if t.Completed {
		box = "[x] "
		boxStyle = boxStyle.Foreground(p.Success)
		textStyle = textStyle.Foreground(p.FgMuted).Strikethrough(true)
	}

	width := r.Width
	if width <= 0 {
		width = lipgloss.Width(marker+box) + lipgloss.Width(t.Text)
	}
	textWidth := max(1, width-lipgloss.Width(marker+box))
	text := ansi.Truncate(t.Text, textWidth, "…")

	line := marker + boxStyle.Render(box) + textStyle.Render(text)
	if selected {
		return lipgloss.NewStyle().
			Background(p.Selection).
			Bold(true).
			Width(width).
			Render(line)
	}
	return line
}
