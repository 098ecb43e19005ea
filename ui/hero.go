package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/synapta/lumen/content"
	"github.com/synapta/lumen/render"
	"github.com/synapta/lumen/reveal"
	"github.com/synapta/lumen/viewport"
)

// Hero is the banner at the top of the page
type Hero struct {
	revealGroup
	copy content.Hero

	rect    viewport.Rect
	subline []string

	kickerSeq   *reveal.Sequencer
	headlineSeq *reveal.Sequencer
	sublineSeq  *reveal.Sequencer
	ctaSeq      *reveal.Sequencer
}

// NewHero creates the hero section
func NewHero(env Env, c content.Hero) *Hero {
	h := &Hero{
		revealGroup: newRevealGroup(env),
		copy:        c,
	}
	h.kickerSeq = h.sequencer(0)
	h.headlineSeq = h.sequencer(1)
	h.sublineSeq = h.sequencer(2)
	h.ctaSeq = h.sequencer(3)
	return h
}

func (h *Hero) Name() string { return "hero" }

func (h *Hero) Layout(width, top int) int {
	textWidth := width - 8
	if textWidth < 20 {
		textWidth = width
	}
	h.subline = render.Wrap(h.copy.Subline, textWidth)

	// top padding, kicker, gap, headline, gap, subline, gap, cta, bottom padding
	height := 3 + 1 + 1 + 1 + 1 + len(h.subline) + 1 + 1 + 3
	h.rect = viewport.Rect{X: 0, Y: top, W: width, H: height}
	h.place(h.rect)
	return height
}

func (h *Hero) Draw(s tcell.Screen, vp *viewport.Viewport) {
	h.sync()
	width := h.rect.W
	y := h.rect.Y + 3

	kicker := h.kickerSeq.Pose()
	render.DrawTextCentered(s, 0, screenRow(y, vp, kicker), width,
		render.FadedStyle(render.AccentWarm, kicker.Opacity), h.copy.Kicker)
	y += 2

	headline := h.headlineSeq.Pose()
	render.DrawTextCentered(s, 0, screenRow(y, vp, headline), width,
		render.FadedStyle(render.Text, headline.Opacity).Bold(true), h.copy.Headline)
	y += 2

	subline := h.sublineSeq.Pose()
	for i, line := range h.subline {
		render.DrawTextCentered(s, 0, screenRow(y+i, vp, subline), width,
			render.FadedStyle(render.Muted, subline.Opacity), line)
	}
	y += len(h.subline) + 1

	cta := h.ctaSeq.Pose()
	label := "[ " + h.copy.CTA + " ]"
	render.DrawTextCentered(s, 0, screenRow(y, vp, cta), width,
		render.FadedStyle(render.Accent, cta.Opacity).Bold(true), label)
}
