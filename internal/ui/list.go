package ui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekly/internal/todo"
)

func (a *App) listCmd() *cobra.Command {
	var hideCompleted bool

	cmd := &cobra.Command{
		Use:   "list [day]",
		Short: "List todos for the week or a single day",
		Long: `List todos grouped by day.

Without a day, every day of the week with at least one todo is listed.`,
		Example: `  weekly list
  weekly list fri
  weekly list today --hide-completed`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.clock.Now()
			days := todo.Days[:]
			if len(args) == 1 {
				day, err := parseDay(args[0], now)
				if err != nil {
					return err
				}
				days = []todo.DayInfo{todo.Days[day.Position()]}
			}

			if err := a.ensureRepo(); err != nil {
				return err
			}
			todos, err := a.repo.ListTodos(context.Background())
			if err != nil {
				return fmt.Errorf("listing todos: %w", err)
			}
			board := todo.NewBoard(todos)

			out := cmd.OutOrStdout()
			if len(days) == 1 {
				printDay(out, board, days[0], todo.NewResolver(a.clock), now, hideCompleted, true)
				return nil
			}
			if board.Len() == 0 {
				fmt.Fprintln(out, "No todos this week.")
				return nil
			}
			printed := 0
			for _, d := range days {
				if board.TotalTodosForDay(d.Key) == 0 {
					continue
				}
				if printed > 0 {
					fmt.Fprintln(out)
				}
				printDay(out, board, d, todo.NewResolver(a.clock), now, hideCompleted, false)
				printed++
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&hideCompleted, "hide-completed", false, "Only show open todos")
	return cmd
}

// printDay writes a day header followed by its todos.
// showEmpty prints a placeholder for a day with nothing planned.
func printDay(w io.Writer, board *todo.Board, d todo.DayInfo, res todo.Resolver, now time.Time, hideCompleted, showEmpty bool) {
	today := res.CurrentWeekday() == d.Key
	fmt.Fprintln(w, formatDayHeader(d, res.DateFor(d.Key), board.Stats(d.Key), today))

	todos := board.TodosForDay(d.Key)
	if len(todos) == 0 && showEmpty {
		fmt.Fprintln(w, formatMuted("  Nothing planned."))
		return
	}

	width := termWidth()
	hidden := 0
	for _, t := range todos {
		if hideCompleted && t.Completed {
			hidden++
			continue
		}
		fmt.Fprintln(w, formatTodoRow(t, now, width))
	}
	if hidden > 0 {
		fmt.Fprintln(w, formatMuted(fmt.Sprintf("  %d completed hidden", hidden)))
	}
}
