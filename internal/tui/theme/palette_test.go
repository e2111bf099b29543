package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/weekly/internal/todo"
)

func TestNewPalette_LightKeepsBaseAccents(t *testing.T) {
	light, err := Load("light")
	if err != nil {
		t.Fatalf("Load(light) unexpected error: %v", err)
	}

	palette := NewPalette(light)
	if !palette.Light {
		t.Fatal("expected light palette")
	}
	for _, d := range todo.Days {
		if palette.Day(d.Key) != DayAccents[d.Key] {
			t.Errorf("%s accent = %+v, want %+v", d.Key, palette.Day(d.Key), DayAccents[d.Key])
		}
	}
}

func TestNewPalette_DarkBlendsAccents(t *testing.T) {
	base := &Theme{
		Bg:      "#101010",
		Surface: "#202020",
		Fg:      "#ffffff",
		FgMuted: "#aaaaaa",
		Accent:  "#ff0000",
		Success: "#00ff00",
		Warning: "#888888",
	}

	palette := NewPalette(base)
	if palette.Light {
		t.Fatal("expected dark palette")
	}
	if palette.Bg != lipgloss.Color(base.Bg) {
		t.Fatalf("Bg = %q, want %q", palette.Bg, base.Bg)
	}

	monday := palette.Day(todo.Monday)
	if monday.Strip != DayAccents[todo.Monday].Strip {
		t.Errorf("strip should be unchanged, got %q", monday.Strip)
	}
	if want := blendColors(DayAccents[todo.Monday].Strip, base.Bg, 0.85); monday.Bg != want {
		t.Errorf("Bg = %q, want %q", monday.Bg, want)
	}
	if monday.Bg == DayAccents[todo.Monday].Bg {
		t.Error("dark palette should not use the pastel background")
	}
}

func TestNewPalette_Nil(t *testing.T) {
	palette := NewPalette(nil)
	if palette.Bg == "" {
		t.Error("nil theme should fall back to mocha")
	}
}

func TestPaletteDay_UnknownFallsBack(t *testing.T) {
	palette := NewPalette(nil)
	if palette.Day(todo.Weekday("x")) != fallbackAccent {
		t.Error("expected fallback accent for unknown weekday")
	}
}

func TestBlendColors(t *testing.T) {
	tests := []struct {
		a, b  string
		ratio float64
		want  string
	}{
		{"#000000", "#ffffff", 0, "#000000"},
		{"#000000", "#ffffff", 1, "#ffffff"},
		{"#000000", "#ffffff", 0.5, "#808080"},
		{"#000000", "#ffffff", 2, "#ffffff"},
		{"bogus", "#ffffff", 0.5, "bogus"},
	}
	for _, tt := range tests {
		if got := blendColors(tt.a, tt.b, tt.ratio); got != tt.want {
			t.Errorf("blendColors(%q, %q, %v) = %q, want %q", tt.a, tt.b, tt.ratio, got, tt.want)
		}
	}
}

func TestChooseTextColor(t *testing.T) {
	if got := chooseTextColor("#ffffff", "#ffffff", "#000000"); got != "#000000" {
		t.Errorf("white background should pick dark text, got %q", got)
	}
	if got := chooseTextColor("#000000", "#ffffff", "#000000"); got != "#ffffff" {
		t.Errorf("black background should pick light text, got %q", got)
	}
}
