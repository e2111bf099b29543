// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/weekly/internal/todo"
)

// SQLite implements todo.Repository using SQLite.
type SQLite struct {
	db  *sql.DB
	now func() time.Time
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

const selectColumns = `SELECT id, day, text, completed, created_at, completed_at FROM todos`

// dayOrder sorts rows Monday through Sunday.
const dayOrder = `
	CASE day
		WHEN 'monday' THEN 0
		WHEN 'tuesday' THEN 1
		WHEN 'wednesday' THEN 2
		WHEN 'thursday' THEN 3
		WHEN 'friday' THEN 4
		WHEN 'saturday' THEN 5
		ELSE 6
	END`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// CreateTodo adds a new todo to the repository.
func (s *SQLite) CreateTodo(ctx context.Context, t *todo.Todo) error {
	if !t.Day.Valid() {
		return todo.ErrInvalidWeekday
	}
	text, err := todo.NormalizeText(t.Text)
	if err != nil {
		return err
	}
	t.Text = text
	if t.CreatedAt.IsZero() {
		t.CreatedAt = s.now()
	}

	query := `
		INSERT INTO todos (day, text, completed, created_at, completed_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		string(t.Day),
		t.Text,
		t.Completed,
		formatTime(t.CreatedAt),
		formatTimePtr(t.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting todo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	t.ID = id

	return nil
}

// GetTodo retrieves a todo by ID.
func (s *SQLite) GetTodo(ctx context.Context, id int64) (*todo.Todo, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	t, err := scanTodo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("todo %d: %w", id, todo.ErrTodoNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying todo: %w", err)
	}
	return t, nil
}

// ListTodos returns every todo ordered Monday through Sunday, then by creation.
func (s *SQLite) ListTodos(ctx context.Context) ([]*todo.Todo, error) {
	query := selectColumns + ` ORDER BY ` + dayOrder + `, created_at, id`
	return s.queryTodos(ctx, query)
}

// ListTodosByDay returns the todos for a single weekday ordered by creation.
func (s *SQLite) ListTodosByDay(ctx context.Context, day todo.Weekday) ([]*todo.Todo, error) {
	if !day.Valid() {
		return nil, todo.ErrInvalidWeekday
	}
	query := selectColumns + ` WHERE day = ? ORDER BY created_at, id`
	return s.queryTodos(ctx, query, string(day))
}

func (s *SQLite) queryTodos(ctx context.Context, query string, args ...any) ([]*todo.Todo, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying todos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var todos []*todo.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning todo: %w", err)
		}
		todos = append(todos, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating todos: %w", err)
	}

	return todos, nil
}

// SetCompleted marks a todo done or open.
func (s *SQLite) SetCompleted(ctx context.Context, id int64, done bool) error {
	var completedAt any
	if done {
		completedAt = formatTime(s.now())
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE todos SET completed = ?, completed_at = ? WHERE id = ?`,
		done, completedAt, id,
	)
	if err != nil {
		return fmt.Errorf("updating todo completion: %w", err)
	}
	return requireRow(result, id)
}

// ToggleTodo flips the completion state of a todo atomically.
func (s *SQLite) ToggleTodo(ctx context.Context, id int64) (*todo.Todo, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	t, err := scanTodo(tx.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("todo %d: %w", id, todo.ErrTodoNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying todo: %w", err)
	}

	t.SetCompleted(!t.Completed, s.now())

	_, err = tx.ExecContext(ctx,
		`UPDATE todos SET completed = ?, completed_at = ? WHERE id = ?`,
		t.Completed, formatTimePtr(t.CompletedAt), id,
	)
	if err != nil {
		return nil, fmt.Errorf("toggling todo: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	return t, nil
}

// UpdateTodoText replaces the text of a todo.
func (s *SQLite) UpdateTodoText(ctx context.Context, id int64, text string) error {
	text, err := todo.NormalizeText(text)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `UPDATE todos SET text = ? WHERE id = ?`, text, id)
	if err != nil {
		return fmt.Errorf("updating todo text: %w", err)
	}
	return requireRow(result, id)
}

// MoveTodo reassigns a todo to another weekday.
func (s *SQLite) MoveTodo(ctx context.Context, id int64, day todo.Weekday) error {
	if !day.Valid() {
		return todo.ErrInvalidWeekday
	}

	result, err := s.db.ExecContext(ctx, `UPDATE todos SET day = ? WHERE id = ?`, string(day), id)
	if err != nil {
		return fmt.Errorf("moving todo: %w", err)
	}
	return requireRow(result, id)
}

// DeleteTodo removes a todo.
func (s *SQLite) DeleteTodo(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting todo: %w", err)
	}
	return requireRow(result, id)
}

// ClearCompleted removes the completed todos of a weekday.
func (s *SQLite) ClearCompleted(ctx context.Context, day todo.Weekday) (int, error) {
	if !day.Valid() {
		return 0, todo.ErrInvalidWeekday
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE day = ? AND completed = 1`, string(day))
	if err != nil {
		return 0, fmt.Errorf("clearing completed todos: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting cleared todos: %w", err)
	}
	return int(rows), nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func requireRow(result sql.Result, id int64) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("todo %d: %w", id, todo.ErrTodoNotFound)
	}
	return nil
}

func scanTodo(row rowScanner) (*todo.Todo, error) {
	var (
		t           todo.Todo
		day         string
		createdAt   string
		completedAt sql.NullString
	)

	if err := row.Scan(&t.ID, &day, &t.Text, &t.Completed, &createdAt, &completedAt); err != nil {
		return nil, err
	}

	t.Day = todo.Weekday(day)

	var err error
	t.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}

	if completedAt.Valid {
		at, err := parseTime(completedAt.String)
		if err != nil {
			return nil, fmt.Errorf("parsing completed at: %w", err)
		}
		t.CompletedAt = &at
	}

	return &t, nil
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
