package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/synapta/lumen/content"
	"github.com/synapta/lumen/render"
	"github.com/synapta/lumen/reveal"
	"github.com/synapta/lumen/viewport"
)

// Stats is the statistics strip: value blocks cascading left to right
type Stats struct {
	revealGroup
	items []content.Stat

	rect viewport.Rect
	seqs []*reveal.Sequencer
}

// NewStats creates the statistics strip
func NewStats(env Env, items []content.Stat) *Stats {
	sec := &Stats{
		revealGroup: newRevealGroup(env),
		items:       items,
	}
	for i := range items {
		sec.seqs = append(sec.seqs, sec.sequencer(i))
	}
	return sec
}

func (sec *Stats) Name() string { return "stats" }

func (sec *Stats) Layout(width, top int) int {
	height := 2 + 2 + 2 // padding, value+label rows, padding
	sec.rect = viewport.Rect{X: 0, Y: top, W: width, H: height}
	sec.place(sec.rect)
	return height
}

func (sec *Stats) Draw(s tcell.Screen, vp *viewport.Viewport) {
	sec.sync()

	n := len(sec.items)
	if n == 0 {
		return
	}
	blockWidth := sec.rect.W / n
	valueRow := sec.rect.Y + 2
	for i, stat := range sec.items {
		pose := sec.seqs[i].Pose()
		x := i * blockWidth
		render.DrawTextCentered(s, x, screenRow(valueRow, vp, pose), blockWidth,
			render.FadedStyle(render.Accent, pose.Opacity).Bold(true), stat.Value)
		render.DrawTextCentered(s, x, screenRow(valueRow+1, vp, pose), blockWidth,
			render.FadedStyle(render.Muted, pose.Opacity), stat.Label)
	}
}
