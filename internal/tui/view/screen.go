// Package view renders the week and composes it with modals into a screen.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Overlay draws modal content over a finished base screen.
type Overlay interface {
	Render(base string, width, height int, content string) string
}

// Screen is one frame of terminal output.
type Screen struct {
	Width, Height int
	Base          string
	Modal         string // empty when no modal is open
	Overlay       Overlay
	// Placeholder is shown before the first window size arrives.
	Placeholder string
}

// Compose returns the frame to print.
func Compose(s Screen) string {
	if s.Width == 0 || s.Height == 0 {
		if s.Placeholder == "" {
			return loadingLabel
		}
		return s.Placeholder
	}
	if s.Modal == "" || s.Overlay == nil {
		return s.Base
	}
	return s.Overlay.Render(s.Base, s.Width, s.Height, s.Modal)
}

// FillScreen returns exactly height lines, each padded to width cells with bg.
// Lines wider than width are left alone.
func FillScreen(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	pad := lipgloss.NewStyle().Background(bg)
	src := strings.Split(content, "\n")
	out := make([]string, height)
	for i := range out {
		var line string
		if i < len(src) {
			line = src[i]
		}
		if gap := width - lipgloss.Width(line); gap > 0 {
			line += pad.Render(strings.Repeat(" ", gap))
		}
		out[i] = line
	}
	return strings.Join(out, "\n")
}

// CenterModal splices modal into the middle of base. Every modal row is
// widened to the widest row so the box keeps a solid bg.
func CenterModal(base, modal string, width, height int, bg lipgloss.Color) string {
	rows := strings.Split(modal, "\n")
	boxWidth := 0
	for _, r := range rows {
		boxWidth = max(boxWidth, lipgloss.Width(r))
	}
	if boxWidth == 0 {
		return base
	}
	boxWidth = min(boxWidth, width)

	pad := lipgloss.NewStyle().Background(bg)
	for i, r := range rows {
		switch w := lipgloss.Width(r); {
		case w > boxWidth:
			r = ansi.Cut(r, 0, boxWidth)
		case w < boxWidth:
			r += pad.Render(strings.Repeat(" ", boxWidth-w))
		}
		rows[i] = keepBackground(r, bg) + ansi.ResetStyle
	}

	top := max(0, (height-len(rows))/2)
	left := max(0, (width-boxWidth)/2)

	lines := strings.Split(FillScreen(base, width, height, lipgloss.Color("")), "\n")
	for i, r := range rows {
		row := top + i
		if row >= len(lines) {
			break
		}
		under := lines[row]
		lines[row] = ansi.Cut(under, 0, left) + r + ansi.Cut(under, left+boxWidth, width)
	}
	return strings.Join(lines, "\n")
}

// keepBackground re-applies bg after every reset inside line, so styled
// spans inside the modal do not punch holes in its background.
func keepBackground(line string, bg lipgloss.Color) string {
	if bg == "" {
		return line
	}
	seq := ansi.Style{}.BackgroundColor(ansi.HexColor(string(bg))).String()
	for _, reset := range []string{ansi.ResetStyle, "\x1b[0m", "\x1b[49m"} {
		line = strings.ReplaceAll(line, reset, reset+seq)
	}
	return line
}
