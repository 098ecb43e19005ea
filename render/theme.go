package render

import "github.com/gdamore/tcell/v2"

// Palette for the page. Styling is data; sections never invent colors.
var (
	Background = tcell.NewRGBColor(10, 12, 24)
	Surface    = tcell.NewRGBColor(22, 26, 44)
	Text       = tcell.NewRGBColor(222, 226, 240)
	Muted      = tcell.NewRGBColor(130, 138, 160)
	Accent     = tcell.NewRGBColor(96, 210, 255)
	AccentWarm = tcell.NewRGBColor(255, 176, 96)
)

// BaseStyle is the page default
func BaseStyle() tcell.Style {
	return tcell.StyleDefault.Background(Background).Foreground(Text)
}

// FadedStyle returns the base style with the foreground faded to opacity
func FadedStyle(fg tcell.Color, opacity float64) tcell.Style {
	return tcell.StyleDefault.Background(Background).Foreground(Alpha(fg, Background, opacity))
}

// SurfaceStyle returns a style on the raised card background, with the
// surface itself faded by opacity so whole cards can reveal
func SurfaceStyle(fg tcell.Color, opacity float64) tcell.Style {
	bg := Alpha(Surface, Background, opacity)
	return tcell.StyleDefault.Background(bg).Foreground(Alpha(fg, Background, opacity))
}
