// Package render holds the tcell drawing helpers shared by all sections.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Alpha blends a foreground color toward the background by opacity.
// Terminals have no alpha channel, so pose opacity becomes a perceptual
// blend: 0 disappears into the background, 1 is the full foreground.
func Alpha(fg, bg tcell.Color, opacity float64) tcell.Color {
	if opacity <= 0 {
		return bg
	}
	if opacity >= 1 {
		return fg
	}
	blended := toColorful(bg).BlendLab(toColorful(fg), opacity).Clamped()
	r, g, b := blended.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.TrueColor().RGB()
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}
