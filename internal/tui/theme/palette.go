package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/javiermolinar/weekly/internal/todo"
)

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg        lipgloss.Color
	Surface   lipgloss.Color
	Selection lipgloss.Color
	Fg        lipgloss.Color
	FgMuted   lipgloss.Color
	Accent    lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	TextOnSuccess lipgloss.Color
	TextOnAccent  lipgloss.Color

	Light bool
	days  map[todo.Weekday]Accent
}

// NewPalette derives a Palette from the provided Theme.
// Day accents are kept as-is on light themes and pulled towards the
// background on dark ones so the pastel steps stay readable.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load("mocha")
	}

	light := isLightTheme(t.Bg)
	p := &Palette{
		Bg:            lipgloss.Color(t.Bg),
		Surface:       lipgloss.Color(t.Surface),
		Selection:     lipgloss.Color(t.Selection),
		Fg:            lipgloss.Color(t.Fg),
		FgMuted:       lipgloss.Color(t.FgMuted),
		Accent:        lipgloss.Color(t.Accent),
		Success:       lipgloss.Color(t.Success),
		Warning:       lipgloss.Color(t.Warning),
		TextOnSuccess: lipgloss.Color(chooseTextColor(t.Success, t.Bg, t.Fg)),
		TextOnAccent:  lipgloss.Color(chooseTextColor(t.Accent, t.Bg, t.Fg)),
		Light:         light,
		days:          make(map[todo.Weekday]Accent, len(todo.Days)),
	}

	for _, d := range todo.Days {
		base := AccentFor(d.Key)
		if light {
			p.days[d.Key] = base
			continue
		}
		p.days[d.Key] = Accent{
			Bg:     blendColors(base.Strip, t.Bg, 0.85),
			Border: blendColors(base.Strip, t.Bg, 0.55),
			Strip:  base.Strip,
			Text:   blendColors(base.Strip, "#ffffff", 0.35),
		}
	}

	return p
}

// Day returns the theme-adjusted accent for day.
func (p *Palette) Day(day todo.Weekday) Accent {
	if a, ok := p.days[day]; ok {
		return a
	}
	return AccentFor(day)
}

func isLightTheme(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

func chooseTextColor(bg, lightText, darkText string) string {
	if contrastRatio(bg, lightText) >= contrastRatio(bg, darkText) {
		return lightText
	}
	return darkText
}

func contrastRatio(a, b string) float64 {
	l1 := relativeLuminance(a)
	l2 := relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func relativeLuminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// blendColors mixes a towards b; ratio 0 keeps a, 1 yields b.
func blendColors(a, b string, ratio float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	ratio = max(0, min(1, ratio))
	return ca.BlendRgb(cb, ratio).Clamped().Hex()
}
