package viewport

import (
	"math"
	"time"
)

// Glide animates the scroll offset toward a target position.
// The easing func maps normalized progress [0,1] to [0,1]; a nil easing
// falls back to linear. Glide only computes offsets; the caller applies
// them to the viewport each frame.
type Glide struct {
	from     int
	to       int
	start    time.Time
	duration time.Duration
	easing   func(float64) float64
	active   bool
}

// Start begins a glide from one offset to another at the given time
func (g *Glide) Start(from, to int, now time.Time, d time.Duration, easing func(float64) float64) {
	g.from = from
	g.to = to
	g.start = now
	g.duration = d
	g.easing = easing
	g.active = true
}

// Active reports whether a glide is in progress
func (g *Glide) Active() bool {
	return g.active
}

// Stop cancels the glide without reaching the target
func (g *Glide) Stop() {
	g.active = false
}

// OffsetAt returns the glide offset at the given time.
// Once the target is reached the glide deactivates and done is true.
func (g *Glide) OffsetAt(now time.Time) (offset int, done bool) {
	if !g.active {
		return g.to, true
	}
	elapsed := now.Sub(g.start)
	if g.duration <= 0 || elapsed >= g.duration {
		g.active = false
		return g.to, true
	}
	if elapsed < 0 {
		return g.from, false
	}
	t := float64(elapsed) / float64(g.duration)
	if g.easing != nil {
		t = g.easing(t)
	}
	return g.from + int(math.Round(float64(g.to-g.from)*t)), false
}
