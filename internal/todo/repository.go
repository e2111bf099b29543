package todo

import "context"

// Repository defines the storage interface for todos.
type Repository interface {
	// CreateTodo adds a new todo and sets its ID.
	CreateTodo(ctx context.Context, t *Todo) error

	// GetTodo retrieves a todo by ID. Returns ErrTodoNotFound if missing.
	GetTodo(ctx context.Context, id int64) (*Todo, error)

	// ListTodos returns every todo ordered by weekday position, then creation.
	ListTodos(ctx context.Context) ([]*Todo, error)

	// ListTodosByDay returns the todos planned for a single weekday.
	ListTodosByDay(ctx context.Context, day Weekday) ([]*Todo, error)

	// SetCompleted marks a todo done or open.
	SetCompleted(ctx context.Context, id int64, done bool) error

	// ToggleTodo flips the completion state and returns the updated todo.
	ToggleTodo(ctx context.Context, id int64) (*Todo, error)

	// UpdateTodoText replaces the text of a todo.
	// Returns ErrEmptyText if the text is empty.
	UpdateTodoText(ctx context.Context, id int64, text string) error

	// MoveTodo reassigns a todo to another weekday.
	MoveTodo(ctx context.Context, id int64, day Weekday) error

	// DeleteTodo removes a todo.
	DeleteTodo(ctx context.Context, id int64) error

	// ClearCompleted removes all completed todos for a weekday and
	// returns how many were removed.
	ClearCompleted(ctx context.Context, day Weekday) (int, error)

	// Close releases any resources held by the repository.
	Close() error
}
