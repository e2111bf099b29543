package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/javiermolinar/weekly/internal/todo"
)

type fakeRepo struct {
	todos     []*todo.Todo
	listErr   error
	created   *todo.Todo
	toggled   *todo.Todo
	moved     map[int64]todo.Weekday
	deleted   []int64
	cleared   int
	updateErr error
}

func (f *fakeRepo) CreateTodo(ctx context.Context, t *todo.Todo) error {
	t.ID = 42
	f.created = t
	return nil
}

func (f *fakeRepo) GetTodo(ctx context.Context, id int64) (*todo.Todo, error) {
	return nil, todo.ErrTodoNotFound
}

func (f *fakeRepo) ListTodos(ctx context.Context) ([]*todo.Todo, error) {
	return f.todos, f.listErr
}

func (f *fakeRepo) ListTodosByDay(ctx context.Context, day todo.Weekday) ([]*todo.Todo, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) SetCompleted(ctx context.Context, id int64, done bool) error {
	return errors.New("not implemented")
}

func (f *fakeRepo) ToggleTodo(ctx context.Context, id int64) (*todo.Todo, error) {
	if f.toggled == nil {
		return nil, todo.ErrTodoNotFound
	}
	return f.toggled, nil
}

func (f *fakeRepo) UpdateTodoText(ctx context.Context, id int64, text string) error {
	return f.updateErr
}

func (f *fakeRepo) MoveTodo(ctx context.Context, id int64, day todo.Weekday) error {
	if f.moved == nil {
		f.moved = map[int64]todo.Weekday{}
	}
	f.moved[id] = day
	return nil
}

func (f *fakeRepo) DeleteTodo(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeRepo) ClearCompleted(ctx context.Context, day todo.Weekday) (int, error) {
	return f.cleared, nil
}

func (f *fakeRepo) Close() error {
	return nil
}

func TestLoadTodos(t *testing.T) {
	repo := &fakeRepo{todos: []*todo.Todo{{ID: 1, Day: todo.Monday, Text: "a"}}}

	msg := LoadTodos(repo)()
	loaded, ok := msg.(TodosLoadedMsg)
	if !ok {
		t.Fatalf("expected TodosLoadedMsg, got %T", msg)
	}
	if len(loaded.Todos) != 1 {
		t.Errorf("expected 1 todo, got %d", len(loaded.Todos))
	}
}

func TestLoadTodosError(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("boom")}

	msg := LoadTodos(repo)()
	errMsg, ok := msg.(ErrMsg)
	if !ok {
		t.Fatalf("expected ErrMsg, got %T", msg)
	}
	if errMsg.Err == nil {
		t.Fatal("expected error in ErrMsg")
	}
}

func TestCreateTodo(t *testing.T) {
	repo := &fakeRepo{}

	msg := CreateTodo(repo, todo.Friday, "  ship it  ")()
	mutated, ok := msg.(MutatedMsg)
	if !ok {
		t.Fatalf("expected MutatedMsg, got %T", msg)
	}
	if mutated.FocusID != 42 {
		t.Errorf("FocusID = %d, want 42", mutated.FocusID)
	}
	if repo.created == nil || repo.created.Text != "ship it" || repo.created.Day != todo.Friday {
		t.Errorf("unexpected created todo %+v", repo.created)
	}
}

func TestCreateTodoRejectsEmptyText(t *testing.T) {
	repo := &fakeRepo{}

	msg := CreateTodo(repo, todo.Friday, "   ")()
	errMsg, ok := msg.(ErrMsg)
	if !ok {
		t.Fatalf("expected ErrMsg, got %T", msg)
	}
	if !errors.Is(errMsg.Err, todo.ErrEmptyText) {
		t.Errorf("expected ErrEmptyText, got %v", errMsg.Err)
	}
	if repo.created != nil {
		t.Error("repository should not be called")
	}
}

func TestToggleTodo(t *testing.T) {
	repo := &fakeRepo{toggled: &todo.Todo{ID: 7, Completed: true}}

	msg := ToggleTodo(repo, 7)()
	mutated, ok := msg.(MutatedMsg)
	if !ok {
		t.Fatalf("expected MutatedMsg, got %T", msg)
	}
	if mutated.Status != "Completed" || mutated.FocusID != 7 {
		t.Errorf("unexpected msg %+v", mutated)
	}
}

func TestToggleTodoNotFound(t *testing.T) {
	msg := ToggleTodo(&fakeRepo{}, 7)()
	errMsg, ok := msg.(ErrMsg)
	if !ok {
		t.Fatalf("expected ErrMsg, got %T", msg)
	}
	if !errors.Is(errMsg.Err, todo.ErrTodoNotFound) {
		t.Errorf("expected ErrTodoNotFound, got %v", errMsg.Err)
	}
}

func TestMoveTodo(t *testing.T) {
	repo := &fakeRepo{}

	msg := MoveTodo(repo, 3, todo.Sunday)()
	if _, ok := msg.(MutatedMsg); !ok {
		t.Fatalf("expected MutatedMsg, got %T", msg)
	}
	if repo.moved[3] != todo.Sunday {
		t.Errorf("todo 3 moved to %q", repo.moved[3])
	}
}

func TestUpdateTodoTextError(t *testing.T) {
	repo := &fakeRepo{updateErr: todo.ErrEmptyText}

	msg := UpdateTodoText(repo, 3, "")()
	errMsg, ok := msg.(ErrMsg)
	if !ok || !errors.Is(errMsg.Err, todo.ErrEmptyText) {
		t.Fatalf("expected wrapped ErrEmptyText, got %#v", msg)
	}
}

func TestClearCompleted(t *testing.T) {
	t.Run("nothing to clear", func(t *testing.T) {
		msg := ClearCompleted(&fakeRepo{}, todo.Monday)()
		if _, ok := msg.(StatusMsgCmd); !ok {
			t.Fatalf("expected StatusMsgCmd, got %T", msg)
		}
	})

	t.Run("cleared", func(t *testing.T) {
		msg := ClearCompleted(&fakeRepo{cleared: 2}, todo.Monday)()
		mutated, ok := msg.(MutatedMsg)
		if !ok {
			t.Fatalf("expected MutatedMsg, got %T", msg)
		}
		if mutated.Status != "Cleared 2 from Monday" {
			t.Errorf("status = %q", mutated.Status)
		}
	})
}

func TestCopyToClipboard(t *testing.T) {
	var got string
	orig := clipboardWrite
	t.Cleanup(func() { clipboardWrite = orig })

	clipboardWrite = func(s string) error {
		got = s
		return nil
	}
	msg := CopyToClipboard("week", "Copied")()
	if status, ok := msg.(StatusMsgCmd); !ok || status.Msg != "Copied" {
		t.Fatalf("unexpected msg %#v", msg)
	}
	if got != "week" {
		t.Errorf("clipboard = %q", got)
	}

	clipboardWrite = func(string) error { return errors.New("no clipboard") }
	if _, ok := CopyToClipboard("week", "Copied")().(ErrMsg); !ok {
		t.Error("expected ErrMsg when clipboard fails")
	}
}
