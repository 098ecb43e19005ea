package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/synapta/lumen/content"
	"github.com/synapta/lumen/render"
	"github.com/synapta/lumen/reveal"
	"github.com/synapta/lumen/viewport"
)

// About is the company blurb
type About struct {
	revealGroup
	copy content.About

	rect       viewport.Rect
	paragraphs [][]string
	headingSeq *reveal.Sequencer
	paraSeqs   []*reveal.Sequencer
}

// NewAbout creates the about section
func NewAbout(env Env, c content.About) *About {
	sec := &About{
		revealGroup: newRevealGroup(env),
		copy:        c,
	}
	sec.headingSeq = sec.sequencer(0)
	for i := range c.Paragraphs {
		sec.paraSeqs = append(sec.paraSeqs, sec.sequencer(i+1))
	}
	return sec
}

func (sec *About) Name() string { return "about" }

func (sec *About) Layout(width, top int) int {
	textWidth := width - 16
	if textWidth < 24 {
		textWidth = width - 4
	}
	sec.paragraphs = sec.paragraphs[:0]
	height := 2
	for _, p := range sec.copy.Paragraphs {
		lines := render.Wrap(p, textWidth)
		sec.paragraphs = append(sec.paragraphs, lines)
		height += len(lines) + 1
	}
	height += 2
	sec.rect = viewport.Rect{X: 0, Y: top, W: width, H: height}
	sec.place(sec.rect)
	return height
}

func (sec *About) Draw(s tcell.Screen, vp *viewport.Viewport) {
	sec.sync()

	heading := sec.headingSeq.Pose()
	render.DrawTextCentered(s, 0, screenRow(sec.rect.Y, vp, heading), sec.rect.W,
		render.FadedStyle(render.Text, heading.Opacity).Bold(true), sec.copy.Heading)

	y := sec.rect.Y + 2
	for i, lines := range sec.paragraphs {
		pose := sec.paraSeqs[i].Pose()
		for j, line := range lines {
			render.DrawText(s, 8, screenRow(y+j, vp, pose),
				render.FadedStyle(render.Muted, pose.Opacity), line)
		}
		y += len(lines) + 1
	}
}
