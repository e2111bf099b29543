package view

import "github.com/mattn/go-runewidth"

// WrapText wraps s at spaces so no line is wider than width cells.
// Words longer than width are split.
func WrapText(s string, width int) []string {
	if width <= 0 {
		return []string{""}
	}

	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}

	lines := make([]string, 0, 4)
	lineStart := 0
	lastSpace := -1
	lineWidth := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == ' ' {
			lastSpace = i
		}

		rw := runewidth.RuneWidth(r)
		if lineWidth+rw > width {
			if lastSpace >= lineStart {
				lines = append(lines, string(runes[lineStart:lastSpace]))
				i = lastSpace
				lineStart = lastSpace + 1
			} else {
				lines = append(lines, string(runes[lineStart:i]))
				lineStart = i
				i--
			}
			lastSpace = -1
			lineWidth = 0
			continue
		}
		lineWidth += rw
	}

	return append(lines, string(runes[lineStart:]))
}
