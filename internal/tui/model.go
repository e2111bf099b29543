package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekly/internal/config"
	"github.com/javiermolinar/weekly/internal/dateutil"
	"github.com/javiermolinar/weekly/internal/todo"
	"github.com/javiermolinar/weekly/internal/tui/commands"
	"github.com/javiermolinar/weekly/internal/tui/list"
	"github.com/javiermolinar/weekly/internal/tui/theme"
	"github.com/javiermolinar/weekly/internal/tui/view"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeAdd
	ModeEdit
	ModeConfirmDelete
	ModeConfirmClear
	ModeSummary
	ModeInit
)

var modeNames = [...]string{"normal", "add", "edit", "confirm_delete", "confirm_clear", "summary", "init"}

func (m Mode) String() string {
	if int(m) < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// tickInterval re-renders the week so "today" follows the wall clock.
const tickInterval = time.Minute

// statusDuration is how long status messages stay visible.
const statusDuration = 3 * time.Second

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo     todo.Repository
	config   *config.Config
	clock    dateutil.Clock
	resolver todo.Resolver

	// Theme and styles
	palette *theme.Palette
	styles  *Styles
	keys    KeyMap

	// State
	board         *todo.Board
	mode          Mode
	cursorDay     todo.Weekday
	cursorItem    int  // Index into the visible todos of cursorDay
	showCompleted bool // Toggled at runtime, seeded from config
	focusID       int64
	setup         Setup

	// Components
	input    textinput.Model
	help     help.Model
	spinner  spinner.Model
	viewport viewport.Model
	overlay  OverlayModel
	layout   view.WeekLayout

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string
	statusErr  bool
	statusTime time.Time
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithClock replaces the system clock.
func WithClock(clock dateutil.Clock) ModelOption {
	return func(m *Model) {
		m.clock = clock
		m.resolver = todo.NewResolver(clock)
		m.cursorDay = m.resolver.CurrentWeekday()
	}
}

// WithSetup opens the first-run modal when files are missing.
func WithSetup(setup Setup) ModelOption {
	return func(m *Model) {
		m.setup = setup
		if setup.Needed() {
			m.mode = ModeInit
		}
	}
}

// New creates a new TUI model.
func New(repo todo.Repository, cfg *config.Config, opts ...ModelOption) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	palette := theme.NewPalette(t)
	styles := NewStyles(palette)

	input := textinput.New()
	input.CharLimit = todo.MaxTextLength
	input.Prompt = ""
	input.TextStyle = styles.InputTextStyle
	input.PlaceholderStyle = styles.InputPlaceholder

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = styles.StatusStyle

	clock := dateutil.SystemClock()
	resolver := todo.NewResolver(clock)

	m := Model{
		repo:          repo,
		config:        cfg,
		clock:         clock,
		resolver:      resolver,
		palette:       palette,
		styles:        styles,
		keys:          DefaultKeyMap(),
		board:         todo.NewLoadingBoard(),
		mode:          ModeNormal,
		cursorDay:     resolver.CurrentWeekday(),
		showCompleted: cfg.UI.ShowCompleted,
		input:         input,
		help:          help.New(),
		spinner:       sp,
		viewport:      viewport.New(0, 0),
		overlay:       NewOverlayModel(palette.Surface),
	}

	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.mode == ModeInit || m.repo == nil {
		return nil
	}
	return tea.Batch(
		commands.LoadTodos(m.repo),
		m.spinner.Tick,
		commands.Tick(tickInterval),
	)
}

// Run starts the TUI.
func Run(repo todo.Repository, cfg *config.Config) error {
	return RunWithDebug(repo, cfg, cfg.Log.Debug)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(repo todo.Repository, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(cfg.Log, debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	initialRepo := repo
	var setup Setup

	if repo == nil {
		var err error
		setup, err = DetectSetup(cfg, config.DefaultConfigPath())
		if err != nil {
			return err
		}
		if !setup.Needed() {
			repo, err = OpenRepo(cfg.Storage.DBPath)
			if err != nil {
				return err
			}
		}
	}

	model := New(repo, cfg, WithSetup(setup))
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if initialRepo == nil {
		if m, ok := finalModel.(Model); ok && m.repo != nil {
			_ = m.repo.Close()
		}
	}
	return err
}

// listRenderer returns the day list renderer for the current state.
func (m Model) listRenderer() list.Renderer {
	return list.Renderer{
		Source:        m.board,
		Palette:       m.palette,
		Width:         view.InnerWidth(m.contentWidth()),
		ShowCompleted: m.showCompleted,
		Cursor:        list.Cursor{Day: m.cursorDay, TodoID: m.selectedID()},
		ShowCursor:    m.mode == ModeNormal || m.mode == ModeConfirmDelete,
	}
}

// visibleTodos returns the todos of the cursor day as they are drawn.
func (m Model) visibleTodos() []*todo.Todo {
	r := list.Renderer{Source: m.board, ShowCompleted: m.showCompleted}
	return r.Visible(m.cursorDay)
}

// selectedTodo returns the todo under the cursor, or nil.
func (m Model) selectedTodo() *todo.Todo {
	todos := m.visibleTodos()
	if m.cursorItem < 0 || m.cursorItem >= len(todos) {
		return nil
	}
	return todos[m.cursorItem]
}

func (m Model) selectedID() int64 {
	if t := m.selectedTodo(); t != nil {
		return t.ID
	}
	return 0
}

func (m Model) contentWidth() int {
	if m.config.UI.ListWidth > 0 && m.config.UI.ListWidth < m.width {
		return view.ContentWidth(m.config.UI.ListWidth)
	}
	return view.ContentWidth(m.width - 2)
}
