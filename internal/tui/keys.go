package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekly/internal/todo"
	"github.com/javiermolinar/weekly/internal/tui/commands"
)

// KeyMap holds the key bindings of normal mode.
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	PrevDay       key.Binding
	NextDay       key.Binding
	Today         key.Binding
	Add           key.Binding
	Edit          key.Binding
	Toggle        key.Binding
	Delete        key.Binding
	MoveNext      key.Binding
	MovePrev      key.Binding
	Clear         key.Binding
	ShowCompleted key.Binding
	Summary       key.Binding
	Copy          key.Binding
	Top           key.Binding
	Bottom        key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:            key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:          key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		PrevDay:       key.NewBinding(key.WithKeys("h", "left", "shift+tab"), key.WithHelp("h/←", "prev day")),
		NextDay:       key.NewBinding(key.WithKeys("l", "right", "tab"), key.WithHelp("l/→", "next day")),
		Today:         key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Add:           key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:          key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Toggle:        key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Delete:        key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		MoveNext:      key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "move to next day")),
		MovePrev:      key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "move to prev day")),
		Clear:         key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear done")),
		ShowCompleted: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "show/hide done")),
		Summary:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "summary")),
		Copy:          key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy week")),
		Top:           key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:        key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		PageUp:        key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("ctrl+u", "page up")),
		PageDown:      key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("ctrl+d", "page down")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:          key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Edit, k.Delete, k.NextDay, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevDay, k.NextDay, k.Today},
		{k.Add, k.Edit, k.Toggle, k.Delete, k.MoveNext, k.MovePrev},
		{k.Clear, k.ShowCompleted, k.Summary, k.Copy},
		{k.Top, k.Bottom, k.PageUp, k.PageDown, k.Help, k.Quit},
	}
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg, m.mode)

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeAdd, ModeEdit:
		return m.handleInputKeys(msg)
	case ModeConfirmDelete, ModeConfirmClear:
		return m.handleConfirmKeys(msg)
	case ModeSummary:
		return m.handleSummaryKeys(msg)
	case ModeInit:
		return m.handleInitKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Only navigation and quitting make sense before todos arrive.
	loading := m.board.IsLoading()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Top):
		m.viewport.SetYOffset(0)
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.SetYOffset(m.layout.Lines)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.SetYOffset(m.viewport.YOffset - max(1, m.viewport.Height/2))
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.SetYOffset(m.viewport.YOffset + max(1, m.viewport.Height/2))
	case loading:
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursorItem > 0 {
			m.cursorItem--
			LogCursorMove(m.cursorDay, m.cursorItem, "up")
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursorItem < len(m.visibleTodos())-1 {
			m.cursorItem++
			LogCursorMove(m.cursorDay, m.cursorItem, "down")
		}
	case key.Matches(msg, m.keys.PrevDay):
		m.setCursorDay(m.cursorDay.Prev(), "prev day")
	case key.Matches(msg, m.keys.NextDay):
		m.setCursorDay(m.cursorDay.Next(), "next day")
	case key.Matches(msg, m.keys.Today):
		m.setCursorDay(m.resolver.CurrentWeekday(), "today")

	case key.Matches(msg, m.keys.Add):
		return m.startInput(ModeAdd, "", "New task for "+m.cursorDay.Label())
	case key.Matches(msg, m.keys.Edit):
		t := m.selectedTodo()
		if t == nil {
			return m, nil
		}
		return m.startInput(ModeEdit, t.Text, "")
	case key.Matches(msg, m.keys.Toggle):
		if t := m.selectedTodo(); t != nil {
			return m, commands.ToggleTodo(m.repo, t.ID)
		}
	case key.Matches(msg, m.keys.Delete):
		if m.selectedTodo() != nil {
			m.setMode(ModeConfirmDelete, "delete")
		}
	case key.Matches(msg, m.keys.MoveNext):
		return m.moveSelected(m.cursorDay.Next())
	case key.Matches(msg, m.keys.MovePrev):
		return m.moveSelected(m.cursorDay.Prev())
	case key.Matches(msg, m.keys.Clear):
		if m.board.CompletedTodosForDay(m.cursorDay) > 0 {
			m.setMode(ModeConfirmClear, "clear")
		}
	case key.Matches(msg, m.keys.ShowCompleted):
		return m.toggleShowCompleted()
	case key.Matches(msg, m.keys.Summary):
		m.setMode(ModeSummary, "summary")
	case key.Matches(msg, m.keys.Copy):
		return m, commands.CopyToClipboard(weekCopyText(m.board, m.resolver), "Copied week to clipboard")
	}
	return m, nil
}

func (m Model) startInput(mode Mode, value, placeholder string) (tea.Model, tea.Cmd) {
	m.setMode(mode, "input")
	m.input.SetValue(value)
	m.input.Placeholder = placeholder
	m.input.CursorEnd()
	m.input.Focus()
	return m, textinput.Blink
}

func (m Model) moveSelected(day todo.Weekday) (tea.Model, tea.Cmd) {
	t := m.selectedTodo()
	if t == nil || day == t.Day {
		return m, nil
	}
	return m, commands.MoveTodo(m.repo, t.ID, day)
}

func (m Model) toggleShowCompleted() (tea.Model, tea.Cmd) {
	selected := m.selectedTodo()
	m.showCompleted = !m.showCompleted
	m.cursorItem = 0
	if selected != nil {
		m.focusTodo(selected.ID)
	}
	m.clampCursor()

	status := "Hiding completed"
	if m.showCompleted {
		status = "Showing completed"
	}
	return m, func() tea.Msg { return commands.StatusMsgCmd{Msg: status} }
}

// handleInputKeys handles keys while adding or editing.
func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.setMode(ModeNormal, "input cancelled")
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.input.Value())
		mode := m.mode
		m.input.Blur()
		m.input.SetValue("")
		m.setMode(ModeNormal, "input submitted")
		if text == "" {
			return m, nil
		}
		if mode == ModeAdd {
			return m, commands.CreateTodo(m.repo, m.cursorDay, text)
		}
		if t := m.selectedTodo(); t != nil && t.Text != text {
			return m, commands.UpdateTodoText(m.repo, t.ID, text)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleConfirmKeys handles the y/n confirmation modals.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		mode := m.mode
		m.setMode(ModeNormal, "confirmed")
		if mode == ModeConfirmClear {
			return m, commands.ClearCompleted(m.repo, m.cursorDay)
		}
		if t := m.selectedTodo(); t != nil {
			return m, commands.DeleteTodo(m.repo, t.ID)
		}
	case "n", "N", "esc", "q":
		m.setMode(ModeNormal, "declined")
	}
	return m, nil
}

// handleSummaryKeys handles the week summary modal.
func (m Model) handleSummaryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		return m, commands.CopyToClipboard(weekCopyText(m.board, m.resolver), "Copied week to clipboard")
	case "esc", "q", "s", "enter":
		m.setMode(ModeNormal, "summary closed")
	}
	return m, nil
}

// handleInitKeys handles the first-run setup modal.
func (m Model) handleInitKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		updated, err := m.runSetup()
		if err != nil {
			LogError("init", err)
			return updated, func() tea.Msg { return commands.ErrMsg{Err: fmt.Errorf("setup: %w", err)} }
		}
		updated.setMode(ModeNormal, "initialized")
		return updated, updated.Init()
	case "n", "N", "esc", "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) setMode(mode Mode, reason string) {
	LogModeChange(m.mode, mode, reason)
	m.mode = mode
}

func (m *Model) setCursorDay(day todo.Weekday, reason string) {
	if !day.Valid() {
		return
	}
	m.cursorDay = day
	m.cursorItem = 0
	LogCursorMove(day, 0, reason)
	m.ensureDayVisible()
}

// focusTodo moves the cursor onto the todo with id when it is visible.
func (m *Model) focusTodo(id int64) bool {
	t := m.board.Find(id)
	if t == nil {
		return false
	}
	m.cursorDay = t.Day
	r := m.visibleTodos()
	for i, v := range r {
		if v.ID == id {
			m.cursorItem = i
			return true
		}
	}
	return false
}

func (m *Model) clampCursor() {
	n := len(m.visibleTodos())
	if m.cursorItem >= n {
		m.cursorItem = n - 1
	}
	if m.cursorItem < 0 {
		m.cursorItem = 0
	}
}
