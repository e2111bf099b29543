package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekly/internal/todo"
)

func (a *App) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <day> <text...>",
		Short: "Add a todo to a day",
		Long: `Add a new todo to a day of the current week.

The day can be a weekday name ("monday", "mon") or one of
"today", "tomorrow" and "yesterday".`,
		Example: `  weekly add mon Buy groceries
  weekly add tomorrow "Call the plumber"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(args[0], a.clock.Now())
			if err != nil {
				return err
			}
			t, err := todo.New(day, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}
			if err := a.repo.CreateTodo(context.Background(), t); err != nil {
				return fmt.Errorf("creating todo: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added #%d to %s: %s\n", t.ID, day.Label(), t.Text)
			return nil
		},
	}
}
