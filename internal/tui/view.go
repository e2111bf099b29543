package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize/english"

	"github.com/javiermolinar/weekly/internal/tui/view"
)

// View renders the week in a scrolling viewport above the footer.
func (m Model) View() string {
	return view.Compose(m.screen())
}

func (m Model) screen() view.Screen {
	modal := m.renderModal()
	m.overlay.active = modal != ""

	base := ""
	if m.width > 0 && m.height > 0 {
		base = lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.renderFooter())
	}

	return view.Screen{
		Width:       m.width,
		Height:      m.height,
		Base:        base,
		Modal:       modal,
		Overlay:     m.overlay,
		Placeholder: "Loading...",
	}
}

func (m Model) renderFooter() string {
	lines := make([]string, 0, 3)

	if m.mode == ModeAdd || m.mode == ModeEdit {
		label := "Add to " + m.cursorDay.Label()
		if m.mode == ModeEdit {
			label = "Edit"
		}
		width := max(20, min(m.width, m.contentWidth())-4)
		m.input.Width = width - lipgloss.Width(label) - 2
		field := m.styles.InputLabelStyle.Render(label) + "  " + m.input.View()
		lines = append(lines, m.styles.InputStyle.Width(width).Render(field))
	}

	if m.statusMsg != "" {
		style := m.styles.StatusStyle
		if m.statusErr {
			style = m.styles.StatusErrorStyle
		}
		lines = append(lines, style.Render(m.statusMsg))
	}

	if m.mode == ModeNormal {
		m.help.Width = m.width
		lines = append(lines, m.styles.HelpStyle.Render(m.help.View(m.keys)))
	}

	return m.styles.AppStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderModal() string {
	styles := m.styles.modalStyles()
	switch m.mode {
	case ModeConfirmDelete:
		t := m.selectedTodo()
		if t == nil {
			return ""
		}
		body := m.styles.ModalBodyStyle.Render(strings.Join(view.WrapText("Delete \""+t.Text+"\"?", 40), "\n"))
		return view.RenderModalFrame("Delete task", body, view.RenderModalButtons(styles, "[y] Delete", "[n] Cancel"), styles)
	case ModeConfirmClear:
		n := m.board.CompletedTodosForDay(m.cursorDay)
		body := m.styles.ModalBodyStyle.Render(
			"Remove " + english.Plural(n, "completed task", "") + " from " + m.cursorDay.Label() + "?")
		return view.RenderModalFrame("Clear completed", body, view.RenderModalButtons(styles, "[y] Clear", "[n] Cancel"), styles)
	case ModeSummary:
		return m.renderWeekSummaryModal()
	case ModeInit:
		return m.renderInitModal()
	}
	return ""
}
