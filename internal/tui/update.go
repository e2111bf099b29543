package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/weekly/internal/todo"
	"github.com/javiermolinar/weekly/internal/tui/commands"
	"github.com/javiermolinar/weekly/internal/tui/view"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		updated, cmd := m.handleKeyMsg(msg)
		if model, ok := updated.(Model); ok {
			model.refreshContent()
			return model, cmd
		}
		return updated, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refreshContent()
		return m, nil

	case commands.TodosLoadedMsg:
		m.board = todo.NewBoard(msg.Todos)
		LogLoaded(len(msg.Todos))
		if m.focusID != 0 {
			m.focusTodo(m.focusID)
			m.focusID = 0
		}
		m.clampCursor()
		m.refreshContent()
		m.ensureDayVisible()
		return m, nil

	case commands.MutatedMsg:
		m.focusID = msg.FocusID
		status := m.setStatus(msg.Status, false)
		return m, tea.Batch(commands.LoadTodos(m.repo), status)

	case commands.ErrMsg:
		LogError("command", msg.Err)
		cmd := m.setStatus(fmt.Sprintf("Error: %v", msg.Err), true)
		return m, cmd

	case commands.StatusMsgCmd:
		cmd := m.setStatus(msg.Msg, false)
		return m, cmd

	case commands.ClearStatusMsg:
		if !time.Now().Before(m.statusTime) {
			m.statusMsg = ""
			m.statusErr = false
			m.refreshContent()
		}
		return m, nil

	case commands.TickMsg:
		// The resolver reads the clock, so a re-render is enough to
		// move the Today marker past midnight.
		m.refreshContent()
		return m, commands.Tick(tickInterval)

	case spinner.TickMsg:
		if !m.board.IsLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refreshContent()
		return m, cmd
	}

	if m.mode == ModeAdd || m.mode == ModeEdit {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.statusMsg = msg
	m.statusErr = isErr
	wait := statusDuration
	if isErr {
		wait = 2 * statusDuration
	}
	m.statusTime = time.Now().Add(wait)
	m.refreshContent()
	return tea.Tick(wait, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}

// refreshContent re-renders the week into the viewport and resizes it to
// whatever the footer leaves free.
func (m *Model) refreshContent() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	state := m.weekViewState()
	m.layout = view.LayoutWeek(state)
	if !m.board.IsLoading() {
		LogMalformedCounts(view.BuildWeek(state.Aggregator, state.Resolver))
	}

	m.viewport.Width = m.width
	m.viewport.Height = max(1, m.height-lipgloss.Height(m.renderFooter()))
	offset := m.viewport.YOffset
	m.viewport.SetContent(m.styles.AppStyle.Render(m.layout.Content))
	m.viewport.SetYOffset(offset)
}

// ensureDayVisible scrolls so the top of the cursor day's section is on screen.
func (m *Model) ensureDayVisible() {
	pos := m.cursorDay.Position()
	if pos < 0 || m.viewport.Height <= 0 {
		return
	}
	top := m.layout.DayOffsets[pos]
	bottom := m.layout.Lines
	if pos+1 < len(m.layout.DayOffsets) {
		bottom = m.layout.DayOffsets[pos+1]
	}

	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom > m.viewport.YOffset+m.viewport.Height:
		// Show the whole section when it fits, otherwise its top.
		m.viewport.SetYOffset(min(top, bottom-m.viewport.Height))
	}
}

func (m Model) weekViewState() view.WeekViewState {
	return view.WeekViewState{
		Aggregator:     m.board,
		Resolver:       m.resolver,
		Lists:          m.listRenderer(),
		Palette:        m.palette,
		Width:          m.contentWidth(),
		Selected:       m.cursorDay,
		ShowSeparators: m.config.UI.ShowSeparators,
		Spinner:        m.spinner.View(),
	}
}
