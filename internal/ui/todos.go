package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekly/internal/todo"
)

// todoCmd builds a command whose first argument is a todo ID.
func (a *App) todoCmd(use, short string, args cobra.PositionalArgs, run func(cmd *cobra.Command, id int64, rest []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}
			if err := run(cmd, id, args[1:]); err != nil {
				if errors.Is(err, todo.ErrTodoNotFound) {
					return fmt.Errorf("todo #%d not found", id)
				}
				return err
			}
			return nil
		},
	}
}

func (a *App) doneCmd() *cobra.Command {
	return a.todoCmd("done <id>", "Mark a todo as completed", cobra.ExactArgs(1),
		func(cmd *cobra.Command, id int64, _ []string) error {
			return a.setCompleted(cmd, id, true)
		})
}

func (a *App) undoCmd() *cobra.Command {
	return a.todoCmd("undo <id>", "Reopen a completed todo", cobra.ExactArgs(1),
		func(cmd *cobra.Command, id int64, _ []string) error {
			return a.setCompleted(cmd, id, false)
		})
}

func (a *App) setCompleted(cmd *cobra.Command, id int64, done bool) error {
	ctx := context.Background()
	if err := a.repo.SetCompleted(ctx, id, done); err != nil {
		return err
	}
	t, err := a.repo.GetTodo(ctx, id)
	if err != nil {
		return err
	}

	status := "Reopened"
	if done {
		status = "Completed"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s #%d: %s\n", status, t.ID, t.Text)
	a.printDayProgress(cmd, t.Day)
	return nil
}

func (a *App) editCmd() *cobra.Command {
	return a.todoCmd("edit <id> <text...>", "Replace the text of a todo", cobra.MinimumNArgs(2),
		func(cmd *cobra.Command, id int64, rest []string) error {
			text := strings.Join(rest, " ")
			if err := a.repo.UpdateTodoText(context.Background(), id, text); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated #%d: %s\n", id, strings.TrimSpace(text))
			return nil
		})
}

func (a *App) moveCmd() *cobra.Command {
	return a.todoCmd("move <id> <day>", "Move a todo to another day", cobra.ExactArgs(2),
		func(cmd *cobra.Command, id int64, rest []string) error {
			day, err := parseDay(rest[0], a.clock.Now())
			if err != nil {
				return err
			}
			if err := a.repo.MoveTodo(context.Background(), id, day); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved #%d to %s\n", id, day.Label())
			return nil
		})
}

func (a *App) rmCmd() *cobra.Command {
	cmd := a.todoCmd("rm <id>", "Delete a todo", cobra.ExactArgs(1),
		func(cmd *cobra.Command, id int64, _ []string) error {
			ctx := context.Background()
			t, err := a.repo.GetTodo(ctx, id)
			if err != nil {
				return err
			}
			if err := a.repo.DeleteTodo(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted #%d: %s\n", id, t.Text)
			return nil
		})
	cmd.Aliases = []string{"delete"}
	return cmd
}

func (a *App) clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <day>",
		Short: "Remove completed todos from a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(args[0], a.clock.Now())
			if err != nil {
				return err
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}
			n, err := a.repo.ClearCompleted(context.Background(), day)
			if err != nil {
				return fmt.Errorf("clearing %s: %w", day, err)
			}
			if n == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No completed todos on %s\n", day.Label())
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s from %s\n", pluralTodos(n), day.Label())
			return nil
		},
	}
}

// printDayProgress prints the completion line of a day after a change.
func (a *App) printDayProgress(cmd *cobra.Command, day todo.Weekday) {
	todos, err := a.repo.ListTodosByDay(context.Background(), day)
	if err != nil {
		return
	}
	stats := todo.NewBoard(todos).Stats(day)
	line := fmt.Sprintf("%s: %d/%d done", day.Label(), stats.Completed, stats.Total)
	if stats.Done() {
		line += ", all clear"
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatStats(line))
}
