package view

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/weekly/internal/todo"
	"github.com/javiermolinar/weekly/internal/tui/theme"
)

const (
	// DefaultWidth is used when the terminal width is unknown.
	DefaultWidth = 80
	// MinWidth is the narrowest week the renderer lays out.
	MinWidth = 36
	// MaxWidth keeps day sections readable on wide terminals.
	MaxWidth = 100

	loadingLabel   = "Loading..."
	separatorRune  = "┈"
	sectionChrome  = 4 // border plus horizontal padding
	minProgressBar = 8
)

// WeekViewState holds everything needed to render the week.
type WeekViewState struct {
	Aggregator     Aggregator
	Resolver       DayResolver
	Lists          ListRenderer
	Palette        *theme.Palette
	Width          int
	Selected       todo.Weekday
	ShowSeparators bool
	Spinner        string
}

// WeekLayout is the rendered week plus the line each day section starts on.
type WeekLayout struct {
	Content    string
	Lines      int
	DayOffsets [7]int
}

// ContentWidth clamps a terminal width to the range the week renders in.
func ContentWidth(total int) int {
	if total <= 0 {
		return DefaultWidth
	}
	return max(MinWidth, min(MaxWidth, total))
}

// InnerWidth is the usable width inside a day section of the given width.
func InnerWidth(width int) int {
	return max(1, ContentWidth(width)-sectionChrome)
}

// RenderWeek renders the whole week view.
func RenderWeek(s WeekViewState) string {
	return LayoutWeek(s).Content
}

// LayoutWeek renders the week and records where each day section begins.
func LayoutWeek(s WeekViewState) WeekLayout {
	if s.Aggregator == nil || s.Aggregator.IsLoading() {
		content := RenderLoading(s)
		return WeekLayout{Content: content, Lines: lineCount(content)}
	}

	p := s.Palette
	if p == nil {
		p = theme.NewPalette(nil)
	}
	width := ContentWidth(s.Width)
	days := BuildWeek(s.Aggregator, s.Resolver)

	var (
		blocks []string
		layout WeekLayout
		lines  int
	)
	push := func(block string) {
		blocks = append(blocks, block)
		lines += lineCount(block)
	}

	push(renderTitle(s.Resolver, days, p, width))
	for i, d := range days {
		layout.DayOffsets[d.Day.Position] = lines
		push(renderDaySection(d, s, p, width))
		if s.ShowSeparators && i+1 < len(days) {
			push(RenderSeparator(days[i+1].Day.Label, width, p))
		}
	}

	layout.Content = strings.Join(blocks, "\n")
	layout.Lines = lines
	return layout
}

// RenderLoading renders the single loading indicator shown before todos arrive.
func RenderLoading(s WeekViewState) string {
	p := s.Palette
	if p == nil {
		p = theme.NewPalette(nil)
	}
	label := loadingLabel
	if s.Spinner != "" {
		label = s.Spinner + " " + label
	}
	style := lipgloss.NewStyle().Foreground(p.FgMuted).Padding(1, 2)
	return style.Render(label)
}

func renderTitle(res DayResolver, days []DisplayDay, p *theme.Palette, width int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render("This Week")
	start, end := res.Span()
	span := lipgloss.NewStyle().Foreground(p.FgMuted).Render(FormatSpan(start, end))

	total, completed := 0, 0
	for _, d := range days {
		total += d.Total
		completed += d.Completed
	}
	summary := "No tasks this week"
	if total > 0 {
		summary = FormatTaskCount(completed, total) + " · " + FormatPercent(ProgressPercent(total, completed)) + " complete"
	}
	summaryLine := lipgloss.NewStyle().Foreground(p.Fg).Render(summary)

	block := lipgloss.JoinVertical(lipgloss.Left, title, span, summaryLine)
	return lipgloss.NewStyle().Width(width).PaddingBottom(1).Render(block)
}

func renderDaySection(d DisplayDay, s WeekViewState, p *theme.Palette, width int) string {
	accent := p.Day(d.Day.Key)
	inner := width - sectionChrome

	parts := []string{
		renderStrip(accent, inner),
		renderDayHeader(d, accent, p, inner),
	}
	if s.Lists != nil {
		if list := s.Lists.RenderList(d.Day.Key, accent); list != "" {
			parts = append(parts, list)
		}
	}
	if footer := renderDayFooter(d, accent, inner); footer != "" {
		parts = append(parts, footer)
	}

	border, color := lipgloss.RoundedBorder(), lipgloss.Color(accent.Border)
	switch {
	case d.Day.Key == s.Selected:
		border, color = lipgloss.ThickBorder(), p.Accent
	case d.IsToday:
		border, color = lipgloss.DoubleBorder(), p.Success
	}

	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(color).
		Padding(0, 1).
		Width(width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func renderStrip(accent theme.Accent, width int) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(accent.Strip)).
		Render(strings.Repeat("▀", width))
}

func renderDayHeader(d DisplayDay, accent theme.Accent, p *theme.Palette, width int) string {
	initial := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(accent.Border)).
		Foreground(lipgloss.Color(accent.Text)).
		Bold(true).
		Padding(0, 1).
		Render(d.Day.Short[:1])

	label := lipgloss.NewStyle().Bold(true).Foreground(p.Fg).Render(d.Day.Label)
	if d.IsToday {
		badge := lipgloss.NewStyle().
			Background(p.Success).
			Foreground(p.TextOnSuccess).
			Bold(true).
			Padding(0, 1).
			Render("Today")
		label += " " + badge
	}
	date := lipgloss.NewStyle().Foreground(p.FgMuted).Render(FormatLongDate(d.Date))

	textWidth := width - lipgloss.Width(initial) - 1
	progressLine := renderProgressLine(d, accent, p, textWidth)

	text := lipgloss.JoinVertical(lipgloss.Left,
		ansi.Truncate(label, textWidth, "…"),
		ansi.Truncate(date, textWidth, "…"),
		progressLine,
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, initial, " ", text)
}

func renderProgressLine(d DisplayDay, accent theme.Accent, p *theme.Palette, width int) string {
	muted := lipgloss.NewStyle().Foreground(p.FgMuted)
	if d.Total == 0 {
		return muted.Render("No tasks")
	}

	count := FormatTaskCount(d.Completed, d.Total)
	dotColor := lipgloss.Color(accent.Strip)
	if d.Total > 0 && d.Completed == d.Total {
		dotColor = p.Success
	}
	prefix := muted.Render(count) + " " + lipgloss.NewStyle().Foreground(dotColor).Render("●") + " "

	barWidth := width - lipgloss.Width(prefix)
	if barWidth < minProgressBar {
		return ansi.Truncate(prefix, width, "")
	}
	return prefix + RenderProgressBar(d.ProgressPercent, barWidth, accent)
}

// RenderProgressBar draws a solid bar filled to pct percent.
// Values outside 0..100 are drawn clamped; the percentage itself is untouched.
func RenderProgressBar(pct float64, width int, accent theme.Accent) string {
	bar := progress.New(
		progress.WithSolidFill(accent.Strip),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
	bar.EmptyColor = accent.Border
	return bar.ViewAs(max(0, min(1, pct/100)))
}

func renderDayFooter(d DisplayDay, accent theme.Accent, width int) string {
	text, ok := FooterText(d.Total, d.Completed)
	if !ok {
		return ""
	}
	if d.Completed == d.Total {
		text = "✓ " + text
	}
	right := FormatPercent(d.ProgressPercent) + " complete"

	gap := width - lipgloss.Width(text) - lipgloss.Width(right)
	line := text + strings.Repeat(" ", max(1, gap)) + right
	return lipgloss.NewStyle().
		Background(lipgloss.Color(accent.Bg)).
		Foreground(lipgloss.Color(accent.Text)).
		Width(width).
		Render(ansi.Truncate(line, width, ""))
}

// RenderSeparator renders the divider announcing the day that follows.
func RenderSeparator(label string, width int, p *theme.Palette) string {
	if p == nil {
		p = theme.NewPalette(nil)
	}
	text := separatorRune + separatorRune + " " + label + " "
	fill := max(0, width-lipgloss.Width(text))
	return lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Render(text + strings.Repeat(separatorRune, fill))
}

func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
