package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/weekly/internal/todo"
)

// WeekSummaryLineStyle indicates how a week summary line should be styled.
type WeekSummaryLineStyle int

const (
	WeekSummaryLineBody WeekSummaryLineStyle = iota
	WeekSummaryLineMeta
	WeekSummaryLineSection
)

// WeekSummaryLine is a display-ready line for the week summary modal.
type WeekSummaryLine struct {
	Text  string
	Style WeekSummaryLineStyle
}

type stringRenderer interface {
	Render(...string) string
}

// WeekSummaryStyles groups styles for week summary rendering.
type WeekSummaryStyles struct {
	BodyStyle         stringRenderer
	MetaStyle         stringRenderer
	SectionTitleStyle stringRenderer
}

// BuildWeekSummaryLines describes the week's completion in a few lines.
func BuildWeekSummaryLines(stats todo.WeekStats, start, end time.Time) []WeekSummaryLine {
	lines := make([]WeekSummaryLine, 0, 8)
	lines = append(lines,
		WeekSummaryLine{Text: FormatSpan(start, end), Style: WeekSummaryLineMeta},
		WeekSummaryLine{Text: ""},
	)

	if stats.Total == 0 {
		return append(lines, WeekSummaryLine{Text: "Nothing planned this week."})
	}

	lines = append(lines,
		WeekSummaryLine{Text: fmt.Sprintf("Completed: %s (%d%%)", FormatTaskCount(stats.Completed, stats.Total), stats.Percent())},
		WeekSummaryLine{Text: fmt.Sprintf("Open: %d", stats.Total-stats.Completed)},
	)
	if day, completed, ok := stats.BestDay(); ok {
		lines = append(lines, WeekSummaryLine{Text: fmt.Sprintf("Best day: %s (%d done)", day.Label(), completed)})
	}

	var cleared []string
	for i, ds := range stats.DayStats {
		if ds.Done() {
			cleared = append(cleared, todo.Days[i].Short)
		}
	}
	if len(cleared) > 0 {
		lines = append(lines,
			WeekSummaryLine{Text: ""},
			WeekSummaryLine{Text: "CLEARED", Style: WeekSummaryLineSection},
			WeekSummaryLine{Text: strings.Join(cleared, ", ")},
		)
	}
	return lines
}

// RenderWeekSummaryBody renders week summary lines into a wrapped modal body.
func RenderWeekSummaryBody(lines []WeekSummaryLine, styles WeekSummaryStyles, contentWidth int) string {
	if len(lines) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		style := styles.BodyStyle
		switch line.Style {
		case WeekSummaryLineSection:
			style = styles.SectionTitleStyle
		case WeekSummaryLineMeta:
			style = styles.MetaStyle
		}
		for _, wrapped := range WrapText(line.Text, contentWidth) {
			rendered = append(rendered, style.Render(wrapped))
		}
	}
	return strings.Join(rendered, "\n")
}

// ModalContentWidth returns the content width for a modal body.
func ModalContentWidth(style lipgloss.Style, fallback int) int {
	width := style.GetWidth()
	if width <= 0 {
		return fallback
	}
	return max(10, width-4)
}
