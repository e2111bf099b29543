package tui

import (
	"fmt"
	"strings"

	"github.com/javiermolinar/weekly/internal/todo"
	"github.com/javiermolinar/weekly/internal/tui/view"
)

const weekSummaryFallbackWidth = 44

func (m Model) renderWeekSummaryModal() string {
	if m.board.IsLoading() {
		return ""
	}
	stats := m.board.WeekStats()
	start, end := m.resolver.Span()

	bodyWidth := view.ModalContentWidth(m.styles.ModalStyle, weekSummaryFallbackWidth)
	lines := view.RenderWeekSummaryBody(view.BuildWeekSummaryLines(stats, start, end), view.WeekSummaryStyles{
		BodyStyle:         m.styles.ModalBodyStyle,
		MetaStyle:         m.styles.ModalMetaStyle,
		SectionTitleStyle: m.styles.ModalSectionTitleStyle,
	}, bodyWidth)
	table := view.RenderStatsTable(stats, m.resolver.CurrentWeekday(), m.styles.Table)

	styles := m.styles.modalStyles()
	footer := view.RenderModalButtons(styles, "[Esc] Close", "[y] Copy")
	return view.RenderModalFrame("Week Summary", lines+"\n\n"+table, footer, styles)
}

func (m Model) renderInitModal() string {
	var b strings.Builder
	b.WriteString("weekly needs to set up a few files:\n\n")
	for _, f := range m.setup.Files {
		fmt.Fprintf(&b, "%-9s%s\n", f.Kind, f.Path)
	}
	b.WriteString("\nCreate them now?")

	styles := m.styles.modalStyles()
	body := m.styles.ModalBodyStyle.Render(b.String())
	return view.RenderModalFrame("Welcome", body, view.RenderModalButtons(styles, "[y] Create", "[n] Quit"), styles)
}

// weekCopyText renders the week as plain text for the clipboard.
func weekCopyText(board *todo.Board, res todo.Resolver) string {
	var b strings.Builder
	start, end := res.Span()
	stats := board.WeekStats()
	fmt.Fprintf(&b, "This Week (%s)\n", view.FormatSpan(start, end))
	fmt.Fprintf(&b, "%s, %d%% complete\n", view.FormatTaskCount(stats.Completed, stats.Total), stats.Percent())

	for _, d := range todo.Days {
		todos := board.TodosForDay(d.Key)
		if len(todos) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s, %s\n", d.Label, view.FormatLongDate(res.DateFor(d.Key)))
		for _, t := range todos {
			box := "[ ]"
			if t.Completed {
				box = "[x]"
			}
			fmt.Fprintf(&b, "  %s %s\n", box, t.Text)
		}
	}
	return b.String()
}
