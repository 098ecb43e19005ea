package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/synapta/lumen/content"
	"github.com/synapta/lumen/render"
	"github.com/synapta/lumen/reveal"
	"github.com/synapta/lumen/viewport"
)

// Footer is the closing strip
type Footer struct {
	revealGroup
	copy content.Footer

	rect       viewport.Rect
	taglineSeq *reveal.Sequencer
	linksSeq   *reveal.Sequencer
	legalSeq   *reveal.Sequencer
}

// NewFooter creates the footer section
func NewFooter(env Env, c content.Footer) *Footer {
	sec := &Footer{
		revealGroup: newRevealGroup(env),
		copy:        c,
	}
	sec.taglineSeq = sec.sequencer(0)
	sec.linksSeq = sec.sequencer(1)
	sec.legalSeq = sec.sequencer(2)
	return sec
}

func (sec *Footer) Name() string { return "footer" }

func (sec *Footer) Layout(width, top int) int {
	height := 1 + 1 + 1 + 1 + 1 + 1 // rule, tagline, links, legal with gaps
	sec.rect = viewport.Rect{X: 0, Y: top, W: width, H: height}
	sec.place(sec.rect)
	return height
}

func (sec *Footer) Draw(s tcell.Screen, vp *viewport.Viewport) {
	sec.sync()
	width := sec.rect.W

	tagline := sec.taglineSeq.Pose()
	rule := strings.Repeat("─", width)
	render.DrawText(s, 0, screenRow(sec.rect.Y, vp, tagline),
		render.FadedStyle(render.Surface, tagline.Opacity), rule)
	render.DrawTextCentered(s, 0, screenRow(sec.rect.Y+1, vp, tagline), width,
		render.FadedStyle(render.Text, tagline.Opacity), sec.copy.Tagline)

	links := sec.linksSeq.Pose()
	render.DrawTextCentered(s, 0, screenRow(sec.rect.Y+3, vp, links), width,
		render.FadedStyle(render.Accent, links.Opacity), strings.Join(sec.copy.Links, "   "))

	legal := sec.legalSeq.Pose()
	render.DrawTextCentered(s, 0, screenRow(sec.rect.Y+5, vp, legal), width,
		render.FadedStyle(render.Muted, legal.Opacity), sec.copy.Legal)
}
