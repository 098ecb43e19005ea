package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/synapta/lumen/render"
	"github.com/synapta/lumen/reveal"
	"github.com/synapta/lumen/viewport"
)

// Card is one service offering tile with a pointer-hover state.
// Hover is purely presentational: it brightens the overlay and nudges the
// trailing arrow; nothing persists across interactions.
type Card struct {
	Icon  string
	Title string
	desc  []string

	rect    viewport.Rect
	hovered bool
	seq     *reveal.Sequencer
}

// SetRect places the card in page coordinates and wraps its description
func (c *Card) SetRect(r viewport.Rect, description string) {
	c.rect = r
	c.desc = render.Wrap(description, r.W-4)
}

// CardHeight returns the rows a card needs for a given width and description
func CardHeight(description string, width int) int {
	// icon+title row, description, arrow row, padding
	return 1 + len(render.Wrap(description, width-4)) + 1 + 2
}

// HitTest reports whether a page coordinate falls inside the card
func (c *Card) HitTest(x, pageY int) bool {
	return x >= c.rect.X && x < c.rect.X+c.rect.W &&
		pageY >= c.rect.Y && pageY < c.rect.Y+c.rect.H
}

// SetHover updates the hover flag; returns true if the state changed
func (c *Card) SetHover(h bool) bool {
	changed := c.hovered != h
	c.hovered = h
	return changed
}

// Hovered reports the current hover state
func (c *Card) Hovered() bool {
	return c.hovered
}

// Draw renders the card at its reveal pose
func (c *Card) Draw(s tcell.Screen, vp *viewport.Viewport) {
	pose := c.seq.Pose()
	top := screenRow(c.rect.Y, vp, pose)

	surfaceOpacity := pose.Opacity
	titleColor := render.Text
	arrowOffset := 0
	if c.hovered {
		titleColor = render.Accent
		arrowOffset = 2
	}

	for row := 0; row < c.rect.H-1; row++ {
		render.FillRow(s, c.rect.X, top+row, c.rect.W,
			render.SurfaceStyle(render.Text, surfaceOpacity))
	}

	x := c.rect.X + 2
	y := top
	style := render.SurfaceStyle(render.AccentWarm, pose.Opacity)
	w := render.DrawText(s, x, y, style, c.Icon)
	render.DrawText(s, x+w+1, y, render.SurfaceStyle(titleColor, pose.Opacity).Bold(true), c.Title)

	for i, line := range c.desc {
		render.DrawText(s, x, y+1+i, render.SurfaceStyle(render.Muted, pose.Opacity), line)
	}

	arrowRow := y + 1 + len(c.desc)
	render.DrawText(s, x+arrowOffset, arrowRow,
		render.SurfaceStyle(render.Accent, pose.Opacity), "→")
}
