// Package ui assembles the page: the navbar, the scrolling sections and
// the reveal wiring between them.
//
// Each section owns one visibility detector bound to its own tracked
// viewport element. Child elements (heading lines, cards, rows, stat
// blocks) own reveal sequencers sharing the section's flag, differing only
// by delay, which produces the staggered cascade.
package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/synapta/lumen/engine"
	"github.com/synapta/lumen/reveal"
	"github.com/synapta/lumen/viewport"
	"github.com/synapta/lumen/visibility"
)

// staggerStep is the delay between sibling reveals
const staggerStep = 150 * time.Millisecond

// Section is one vertical band of the page
type Section interface {
	Name() string
	// Layout computes the section's height for the given width, records
	// its own page rect starting at top, and returns the height
	Layout(width, top int) int
	// Draw renders the section relative to the current scroll offset
	Draw(s tcell.Screen, vp *viewport.Viewport)
	// Close releases the section's detector subscription
	Close()
}

// Env carries the shared dependencies every section needs
type Env struct {
	Clock         engine.TimeProvider
	VP            *viewport.Viewport
	Threshold     float64
	ReducedMotion bool
}

// revealGroup ties one detector to the sequencers it drives.
// Sections embed it; Layout calls place, Draw calls sync before sampling.
type revealGroup struct {
	env      Env
	detector *visibility.Detector
	element  *viewport.Element
	seqs     []*reveal.Sequencer
}

func newRevealGroup(env Env) revealGroup {
	return revealGroup{
		env:      env,
		detector: visibility.NewDetector(env.Threshold),
	}
}

// sequencer creates a staggered sibling sequencer registered with the group
func (g *revealGroup) sequencer(index int) *reveal.Sequencer {
	desc := reveal.Staggered(reveal.DefaultDescriptor(), index, staggerStep)
	seq := reveal.NewSequencer(desc, g.env.Clock)
	if g.env.ReducedMotion {
		seq.ForceVisible()
	}
	g.seqs = append(g.seqs, seq)
	return seq
}

// place records the section rect and (re)binds the detector.
// The first call starts observation; later calls only move the element so
// an already-triggered flag survives relayout.
func (g *revealGroup) place(rect viewport.Rect) {
	if g.element == nil {
		g.element = g.env.VP.Track(rect)
		g.detector.Bind(g.element)
		return
	}
	g.element.SetRect(rect)
}

// sync forwards the visibility flag to every sequencer.
// Trigger latches, so calling each frame is harmless.
func (g *revealGroup) sync() {
	if !g.detector.Visible() {
		return
	}
	for _, seq := range g.seqs {
		seq.Trigger()
	}
}

// Close releases the detector subscription
func (g *revealGroup) Close() {
	g.detector.Close()
}

// screenRow converts a page row plus pose offset to a screen row
func screenRow(pageY int, vp *viewport.Viewport, pose reveal.Pose) int {
	return pageY - vp.Offset() + int(pose.OffsetY+0.5)
}
