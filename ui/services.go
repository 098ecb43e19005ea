package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/synapta/lumen/content"
	"github.com/synapta/lumen/render"
	"github.com/synapta/lumen/reveal"
	"github.com/synapta/lumen/viewport"
)

// twoColumnMin is the narrowest width that still fits two card columns
const twoColumnMin = 84

// Services lists the offering cards in a responsive grid
type Services struct {
	revealGroup
	items []content.Service

	rect       viewport.Rect
	cards      []*Card
	headingSeq *reveal.Sequencer
}

// NewServices creates the services section
func NewServices(env Env, items []content.Service) *Services {
	sec := &Services{
		revealGroup: newRevealGroup(env),
		items:       items,
	}
	sec.headingSeq = sec.sequencer(0)
	for i, it := range items {
		card := &Card{Icon: it.Icon, Title: it.Title}
		card.seq = sec.sequencer(i + 1)
		sec.cards = append(sec.cards, card)
	}
	return sec
}

func (sec *Services) Name() string { return "services" }

// Cards exposes the tiles for hover hit-testing
func (sec *Services) Cards() []*Card {
	return sec.cards
}

func (sec *Services) Layout(width, top int) int {
	columns := 1
	if width >= twoColumnMin {
		columns = 2
	}
	gutter := 2
	margin := 4
	cardWidth := (width - 2*margin - (columns-1)*gutter) / columns

	y := top + 2 // heading row + gap
	height := 2
	rowHeight := 0
	for i, card := range sec.cards {
		col := i % columns
		if col == 0 && i > 0 {
			y += rowHeight + 1
			height += rowHeight + 1
			rowHeight = 0
		}
		h := CardHeight(sec.items[i].Description, cardWidth)
		if h > rowHeight {
			rowHeight = h
		}
		x := margin + col*(cardWidth+gutter)
		card.SetRect(viewport.Rect{X: x, Y: y, W: cardWidth, H: h}, sec.items[i].Description)
	}
	height += rowHeight + 2

	sec.rect = viewport.Rect{X: 0, Y: top, W: width, H: height}
	sec.place(sec.rect)
	return height
}

func (sec *Services) Draw(s tcell.Screen, vp *viewport.Viewport) {
	sec.sync()

	heading := sec.headingSeq.Pose()
	render.DrawTextCentered(s, 0, screenRow(sec.rect.Y, vp, heading), sec.rect.W,
		render.FadedStyle(render.Text, heading.Opacity).Bold(true), "Services")

	for _, card := range sec.cards {
		card.Draw(s, vp)
	}
}
