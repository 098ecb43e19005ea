package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawText draws a string at (x, y) and returns the width consumed.
// Wide runes advance by their display width.
func DrawText(s tcell.Screen, x, y int, style tcell.Style, text string) int {
	col := x
	for _, r := range text {
		s.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
	return col - x
}

// DrawTextCentered draws a string centered within [x, x+width)
func DrawTextCentered(s tcell.Screen, x, y, width int, style tcell.Style, text string) {
	w := runewidth.StringWidth(text)
	start := x + (width-w)/2
	if start < x {
		start = x
	}
	DrawText(s, start, y, style, text)
}

// FillRow paints a horizontal band of background
func FillRow(s tcell.Screen, x, y, width int, style tcell.Style) {
	for col := x; col < x+width; col++ {
		s.SetContent(col, y, ' ', nil, style)
	}
}

// Truncate shortens a string to fit width, with an ellipsis when clipped
func Truncate(text string, width int) string {
	return runewidth.Truncate(text, width, "…")
}

// Wrap breaks text into lines no wider than width, splitting on spaces.
// Words wider than the line are hard-clipped rather than overflowing.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line string
	for _, word := range strings.Fields(text) {
		if runewidth.StringWidth(word) > width {
			word = runewidth.Truncate(word, width, "")
		}
		switch {
		case line == "":
			line = word
		case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
