// Package tui provides the terminal user interface for weekly.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/weekly/internal/tui/theme"
	"github.com/javiermolinar/weekly/internal/tui/view"
)

// Styles holds the lipgloss styles of the TUI chrome, derived from a palette.
// Day sections style themselves from the palette directly.
type Styles struct {
	colorBg     lipgloss.Color
	colorModal  lipgloss.Color
	colorAccent lipgloss.Color

	AppStyle lipgloss.Style

	// Footer
	StatusStyle      lipgloss.Style
	StatusErrorStyle lipgloss.Style
	HelpStyle        lipgloss.Style

	// Add/edit input
	InputStyle       lipgloss.Style
	InputLabelStyle  lipgloss.Style
	InputTextStyle   lipgloss.Style
	InputPlaceholder lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalHeaderStyle       lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalMetaStyle         lipgloss.Style
	ModalSectionTitleStyle lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style

	Table view.StatsTableStyles
}

// NewStyles creates the TUI styles for a palette.
func NewStyles(p *theme.Palette) *Styles {
	if p == nil {
		p = theme.NewPalette(nil)
	}
	s := &Styles{
		colorBg:     p.Bg,
		colorModal:  p.Surface,
		colorAccent: p.Accent,
	}

	s.AppStyle = lipgloss.NewStyle().Padding(0, 1)

	s.StatusStyle = lipgloss.NewStyle().Foreground(p.Success)
	s.StatusErrorStyle = lipgloss.NewStyle().Foreground(p.Warning).Bold(true)
	s.HelpStyle = lipgloss.NewStyle().Foreground(p.FgMuted)

	s.InputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(0, 1)
	s.InputLabelStyle = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
	s.InputTextStyle = lipgloss.NewStyle().Foreground(p.Fg)
	s.InputPlaceholder = lipgloss.NewStyle().Foreground(p.FgMuted)

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Background(p.Surface).
		Padding(1, 2).
		Width(48)
	s.ModalHeaderStyle = lipgloss.NewStyle().Background(p.Surface)
	s.ModalFooterStyle = lipgloss.NewStyle().Background(p.Surface)
	s.ModalTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Background(p.Surface)
	s.ModalBodyStyle = lipgloss.NewStyle().Foreground(p.Fg).Background(p.Surface)
	s.ModalMetaStyle = lipgloss.NewStyle().Foreground(p.FgMuted).Background(p.Surface)
	s.ModalSectionTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Fg).Background(p.Surface)
	s.ModalButtonStyle = lipgloss.NewStyle().Foreground(p.Fg).Background(p.Selection)
	s.ModalButtonActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(p.TextOnAccent).Background(p.Accent)

	s.Table = view.StatsTableStyles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Cell:   lipgloss.NewStyle().Foreground(p.Fg),
		Done:   lipgloss.NewStyle().Foreground(p.Success),
		Today:  lipgloss.NewStyle().Bold(true).Foreground(p.Fg).Background(p.Selection),
		Border: lipgloss.NewStyle().Foreground(p.FgMuted),
	}

	return s
}

func (s *Styles) modalStyles() view.ModalStyles {
	return view.ModalStyles{
		ModalHeaderStyle:       s.ModalHeaderStyle,
		ModalTitleStyle:        s.ModalTitleStyle,
		ModalFooterStyle:       s.ModalFooterStyle,
		ModalStyle:             s.ModalStyle,
		ModalButtonStyle:       s.ModalButtonStyle,
		ModalButtonActiveStyle: s.ModalButtonActiveStyle,
		ModalBodyStyle:         s.ModalBodyStyle,
	}
}
