package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekly/internal/config"
	"github.com/javiermolinar/weekly/internal/dateutil"
	"github.com/javiermolinar/weekly/internal/todo"
	"github.com/javiermolinar/weekly/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo     todo.Repository
	config   *config.Config
	clock    dateutil.Clock
	root     *cobra.Command
	debug    bool // Enable debug logging
	ownsRepo bool // Repo was opened by the app and must be closed
}

// Option configures an App.
type Option func(*App)

// WithClock replaces the system clock.
func WithClock(clock dateutil.Clock) Option {
	return func(a *App) {
		a.clock = clock
	}
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repository is opened from the configured path on first use.
func NewApp(repo todo.Repository, cfg *config.Config, opts ...Option) *App {
	a := &App{repo: repo, config: cfg, clock: dateutil.SystemClock()}
	for _, opt := range opts {
		opt(a)
	}

	a.root = &cobra.Command{
		Use:   "weekly",
		Short: "A week-at-a-glance todo planner",
		Long: `Weekly keeps a todo list for every day of the week.

Run it without arguments to open the interactive week view, or use the
subcommands to manage todos from scripts and the shell.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.RunWithDebug(a.repo, a.config, a.debug || a.config.Log.Debug)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging to the configured log file")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.doneCmd())
	a.root.AddCommand(a.undoCmd())
	a.root.AddCommand(a.editCmd())
	a.root.AddCommand(a.moveCmd())
	a.root.AddCommand(a.rmCmd())
	a.root.AddCommand(a.clearCmd())
	a.root.AddCommand(a.weekCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "weekly %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureRepo opens the configured database when no repository was injected.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	repo, err := tui.OpenRepo(a.config.Storage.DBPath)
	if err != nil {
		return err
	}
	a.repo = repo
	a.ownsRepo = true
	return nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the repository if the app opened it.
func (a *App) Close() error {
	if !a.ownsRepo || a.repo == nil {
		return nil
	}
	err := a.repo.Close()
	a.repo = nil
	a.ownsRepo = false
	return err
}
