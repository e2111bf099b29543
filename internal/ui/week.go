package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekly/internal/todo"
	"github.com/javiermolinar/weekly/internal/tui"
	"github.com/javiermolinar/weekly/internal/tui/list"
	"github.com/javiermolinar/weekly/internal/tui/theme"
	"github.com/javiermolinar/weekly/internal/tui/view"
)

func (a *App) weekCmd() *cobra.Command {
	var (
		noColor       bool
		width         int
		hideCompleted bool
		showStats     bool
	)

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Print the week view",
		Long: `Print the same week view the interactive mode shows, once, to stdout.

Useful for status bars, scripts and a quick look without entering the TUI.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if width <= 0 {
				width = a.config.UI.ListWidth
			}
			if width <= 0 {
				width = termWidth()
			}

			if err := a.ensureRepo(); err != nil {
				return err
			}
			todos, err := a.repo.ListTodos(context.Background())
			if err != nil {
				return fmt.Errorf("listing todos: %w", err)
			}
			board := todo.NewBoard(todos)
			resolver := todo.NewResolver(a.clock)

			t, err := theme.Load(a.config.UI.Theme)
			if err != nil {
				t, _ = theme.Load("mocha")
			}
			palette := theme.NewPalette(t)
			contentWidth := view.ContentWidth(width)

			out := view.RenderWeek(view.WeekViewState{
				Aggregator: board,
				Resolver:   resolver,
				Lists: list.Renderer{
					Source:        board,
					Palette:       palette,
					Width:         view.InnerWidth(contentWidth),
					ShowCompleted: a.config.UI.ShowCompleted && !hideCompleted,
				},
				Palette:        palette,
				Width:          contentWidth,
				ShowSeparators: a.config.UI.ShowSeparators,
			})
			fmt.Fprintln(cmd.OutOrStdout(), out)

			if showStats {
				styles := tui.NewStyles(palette)
				table := view.RenderStatsTable(board.WeekStats(), resolver.CurrentWeekday(), styles.Table)
				fmt.Fprintln(cmd.OutOrStdout(), lipgloss.NewStyle().PaddingTop(1).Render(table))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.Flags().IntVar(&width, "width", 0, "Render width (default: list_width or the terminal width)")
	cmd.Flags().BoolVar(&hideCompleted, "hide-completed", false, "Hide completed todos")
	cmd.Flags().BoolVar(&showStats, "stats", false, "Append a per-day statistics table")
	return cmd
}
