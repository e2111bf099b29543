// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds the base colors for a TUI theme.
type Theme struct {
	Name      string `toml:"name"`
	Bg        string `toml:"bg"`        // Base background
	Surface   string `toml:"surface"`   // Day section background
	Selection string `toml:"selection"` // Cursor row
	Fg        string `toml:"fg"`        // Primary foreground
	FgMuted   string `toml:"fg_muted"`  // Dates, counts, completed todos
	Accent    string `toml:"accent"`    // Title, focus border
	Success   string `toml:"success"`   // Today badge, all-done dot
	Warning   string `toml:"warning"`   // Status errors
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to mocha if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "mocha"
	}
	name = strings.ToLower(name)

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		if name != "mocha" {
			return Load("mocha")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

func (t *Theme) applyDefaults() {
	t.Surface = coalesce(t.Surface, t.Bg)
	t.Selection = coalesce(t.Selection, t.Surface)
	t.FgMuted = coalesce(t.FgMuted, t.Fg)
	t.Accent = coalesce(t.Accent, t.Fg)
	t.Success = coalesce(t.Success, t.Accent)
	t.Warning = coalesce(t.Warning, t.Accent)
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "macchiato", "frappe", "latte", "light"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
