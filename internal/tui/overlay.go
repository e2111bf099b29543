package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/weekly/internal/tui/view"
)

// OverlayModel centers modal content over the week.
type OverlayModel struct {
	active  bool
	bgColor lipgloss.Color
}

// NewOverlayModel initializes an inactive overlay.
func NewOverlayModel(bg lipgloss.Color) OverlayModel {
	return OverlayModel{bgColor: bg}
}

// Active reports whether the overlay is visible.
func (o OverlayModel) Active() bool {
	return o.active
}

// Render draws content on top of base. Inactive overlays return base.
func (o OverlayModel) Render(base string, width, height int, content string) string {
	if !o.active || width <= 0 || height <= 0 || content == "" {
		return base
	}
	return view.CenterModal(base, content, width, height, o.bgColor)
}
