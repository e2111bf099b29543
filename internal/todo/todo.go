// Package todo defines the core domain types for weekly.
package todo

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxTextLength is the maximum number of characters in a todo.
const MaxTextLength = 256

// Validation errors.
var (
	ErrEmptyText   = errors.New("todo text cannot be empty")
	ErrTextTooLong = errors.New("todo text cannot exceed 256 characters")
)

// Domain errors.
var (
	ErrTodoNotFound = errors.New("todo not found")
)

// Todo is a single item planned for a weekday.
type Todo struct {
	ID          int64
	Day         Weekday
	Text        string
	Completed   bool
	CreatedAt   time.Time
	CompletedAt *time.Time // nil while the todo is open
}

// New creates a new open Todo with validation.
func New(day Weekday, text string) (*Todo, error) {
	if !day.Valid() {
		return nil, ErrInvalidWeekday
	}
	text, err := NormalizeText(text)
	if err != nil {
		return nil, err
	}
	return &Todo{
		Day:       day,
		Text:      text,
		CreatedAt: time.Now(),
	}, nil
}

// NormalizeText trims text and checks it against the length limits.
func NormalizeText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return "", ErrTextTooLong
	}
	return text, nil
}

// SetCompleted marks the todo done or open, stamping CompletedAt.
func (t *Todo) SetCompleted(done bool, at time.Time) {
	t.Completed = done
	if done {
		t.CompletedAt = &at
		return
	}
	t.CompletedAt = nil
}
