package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/synapta/lumen/content"
	"github.com/synapta/lumen/render"
	"github.com/synapta/lumen/reveal"
	"github.com/synapta/lumen/viewport"
)

// Portfolio lists project rows cascading top to bottom
type Portfolio struct {
	revealGroup
	items []content.Project

	rect       viewport.Rect
	headingSeq *reveal.Sequencer
	rowSeqs    []*reveal.Sequencer
	summaries  [][]string
}

// NewPortfolio creates the portfolio section
func NewPortfolio(env Env, items []content.Project) *Portfolio {
	sec := &Portfolio{
		revealGroup: newRevealGroup(env),
		items:       items,
	}
	sec.headingSeq = sec.sequencer(0)
	for i := range items {
		sec.rowSeqs = append(sec.rowSeqs, sec.sequencer(i+1))
	}
	return sec
}

func (sec *Portfolio) Name() string { return "portfolio" }

func (sec *Portfolio) Layout(width, top int) int {
	textWidth := width - 12
	if textWidth < 20 {
		textWidth = width - 4
	}
	sec.summaries = sec.summaries[:0]
	height := 2 // heading + gap
	for _, p := range sec.items {
		lines := render.Wrap(p.Summary, textWidth)
		sec.summaries = append(sec.summaries, lines)
		height += 1 + len(lines) + 1 // title row, summary, gap
	}
	height += 2
	sec.rect = viewport.Rect{X: 0, Y: top, W: width, H: height}
	sec.place(sec.rect)
	return height
}

func (sec *Portfolio) Draw(s tcell.Screen, vp *viewport.Viewport) {
	sec.sync()

	heading := sec.headingSeq.Pose()
	render.DrawTextCentered(s, 0, screenRow(sec.rect.Y, vp, heading), sec.rect.W,
		render.FadedStyle(render.Text, heading.Opacity).Bold(true), "Selected work")

	y := sec.rect.Y + 2
	for i, p := range sec.items {
		pose := sec.rowSeqs[i].Pose()
		title := p.Name + " — " + p.Client
		render.DrawText(s, 6, screenRow(y, vp, pose),
			render.FadedStyle(render.Text, pose.Opacity).Bold(true), title)
		for j, line := range sec.summaries[i] {
			render.DrawText(s, 6, screenRow(y+1+j, vp, pose),
				render.FadedStyle(render.Muted, pose.Opacity), line)
		}
		y += 1 + len(sec.summaries[i]) + 1
	}
}
