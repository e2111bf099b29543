// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekly/internal/todo"
)

// TodosLoadedMsg is sent when all todos have been read from storage.
type TodosLoadedMsg struct {
	Todos []*todo.Todo
}

// MutatedMsg is sent after a successful write. The model reloads todos,
// shows Status and, when FocusID is set, moves the cursor to that todo.
type MutatedMsg struct {
	Status  string
	FocusID int64
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// TickMsg is sent on every clock tick so the view picks up a new day.
type TickMsg struct {
	Time time.Time
}

// clipboardWrite is swapped in tests.
var clipboardWrite = clipboard.WriteAll

// LoadTodos loads every todo of the week.
func LoadTodos(repo todo.Repository) tea.Cmd {
	return func() tea.Msg {
		todos, err := repo.ListTodos(context.Background())
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading todos: %w", err)}
		}
		return TodosLoadedMsg{Todos: todos}
	}
}

// CreateTodo adds a todo to day.
func CreateTodo(repo todo.Repository, day todo.Weekday, text string) tea.Cmd {
	return func() tea.Msg {
		t, err := todo.New(day, text)
		if err != nil {
			return ErrMsg{Err: err}
		}
		if err := repo.CreateTodo(context.Background(), t); err != nil {
			return ErrMsg{Err: fmt.Errorf("creating todo: %w", err)}
		}
		return MutatedMsg{Status: "Added to " + day.Label(), FocusID: t.ID}
	}
}

// ToggleTodo flips the completion state of a todo.
func ToggleTodo(repo todo.Repository, id int64) tea.Cmd {
	return func() tea.Msg {
		t, err := repo.ToggleTodo(context.Background(), id)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("toggling todo: %w", err)}
		}
		status := "Reopened"
		if t.Completed {
			status = "Completed"
		}
		return MutatedMsg{Status: status, FocusID: t.ID}
	}
}

// UpdateTodoText replaces the text of a todo.
func UpdateTodoText(repo todo.Repository, id int64, text string) tea.Cmd {
	return func() tea.Msg {
		if err := repo.UpdateTodoText(context.Background(), id, text); err != nil {
			return ErrMsg{Err: fmt.Errorf("updating todo: %w", err)}
		}
		return MutatedMsg{Status: "Updated", FocusID: id}
	}
}

// MoveTodo reassigns a todo to day.
func MoveTodo(repo todo.Repository, id int64, day todo.Weekday) tea.Cmd {
	return func() tea.Msg {
		if err := repo.MoveTodo(context.Background(), id, day); err != nil {
			return ErrMsg{Err: fmt.Errorf("moving todo: %w", err)}
		}
		return MutatedMsg{Status: "Moved to " + day.Label(), FocusID: id}
	}
}

// DeleteTodo removes a todo.
func DeleteTodo(repo todo.Repository, id int64) tea.Cmd {
	return func() tea.Msg {
		if err := repo.DeleteTodo(context.Background(), id); err != nil {
			return ErrMsg{Err: fmt.Errorf("deleting todo: %w", err)}
		}
		return MutatedMsg{Status: "Deleted"}
	}
}

// ClearCompleted removes the completed todos of day.
func ClearCompleted(repo todo.Repository, day todo.Weekday) tea.Cmd {
	return func() tea.Msg {
		n, err := repo.ClearCompleted(context.Background(), day)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("clearing %s: %w", day, err)}
		}
		if n == 0 {
			return StatusMsgCmd{Msg: "Nothing to clear on " + day.Label()}
		}
		return MutatedMsg{Status: fmt.Sprintf("Cleared %d from %s", n, day.Label())}
	}
}

// CopyToClipboard writes text to the system clipboard.
func CopyToClipboard(text, status string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return StatusMsgCmd{Msg: status}
	}
}

// Tick schedules the next clock tick.
func Tick(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}
