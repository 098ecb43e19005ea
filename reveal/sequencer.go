// Package reveal drives one-shot hidden-to-visible animations.
//
// A Sequencer owns no rendering: it samples a pose from a clock and the
// drawing layer applies it. Several sequencers sharing one visibility flag
// and differing only by delay produce the staggered cascades used for
// headings, cards, list rows and stat blocks.
package reveal

import (
	"time"

	"github.com/synapta/lumen/engine"
)

// Descriptor is the per-element reveal configuration
type Descriptor struct {
	Hidden   Pose
	Visible  Pose
	Delay    time.Duration
	Duration time.Duration
	Easing   Easing
}

// DefaultDescriptor returns the house reveal: rise two cells while fading
// in over 800ms with a cubic ease-out
func DefaultDescriptor() Descriptor {
	return Descriptor{
		Hidden:   HiddenBelow(2),
		Visible:  Resting(),
		Duration: 800 * time.Millisecond,
		Easing:   EaseOutCubic,
	}
}

// Staggered returns a copy of the descriptor with delay = index * step,
// used to cascade sibling elements under one visibility flag
func Staggered(d Descriptor, index int, step time.Duration) Descriptor {
	d.Delay = time.Duration(index) * step
	return d
}

// Sequencer animates an element from its hidden pose to its visible pose,
// once. Before Trigger the pose is unconditionally hidden; after Trigger
// the pose interpolates over [Delay, Delay+Duration] and then rests at the
// visible pose forever. There is no reverse transition.
type Sequencer struct {
	desc      Descriptor
	clock     engine.TimeProvider
	triggered bool
	start     time.Time
}

// NewSequencer creates a sequencer for the descriptor, sampling the given clock
func NewSequencer(desc Descriptor, clock engine.TimeProvider) *Sequencer {
	if desc.Easing == nil {
		desc.Easing = EaseOutCubic
	}
	return &Sequencer{desc: desc, clock: clock}
}

// Trigger starts the reveal at the clock's current time.
// Only the first call takes effect; the sequencer latches its start time.
func (s *Sequencer) Trigger() {
	if s.triggered {
		return
	}
	s.triggered = true
	s.start = s.clock.Now()
}

// Triggered reports whether the reveal has started
func (s *Sequencer) Triggered() bool {
	return s.triggered
}

// Done reports whether the element has reached its visible resting pose
func (s *Sequencer) Done() bool {
	if !s.triggered {
		return false
	}
	return s.clock.Now().Sub(s.start) >= s.desc.Delay+s.desc.Duration
}

// Pose samples the current pose at the clock's current time
func (s *Sequencer) Pose() Pose {
	if !s.triggered {
		return s.desc.Hidden
	}
	elapsed := s.clock.Now().Sub(s.start) - s.desc.Delay
	if elapsed <= 0 {
		return s.desc.Hidden
	}
	if elapsed >= s.desc.Duration || s.desc.Duration <= 0 {
		return s.desc.Visible
	}
	t := s.desc.Easing(float64(elapsed) / float64(s.desc.Duration))
	return s.desc.Hidden.Lerp(s.desc.Visible, t)
}

// ForceVisible jumps straight to the resting pose, used by reduced-motion
// mode to skip animation playback entirely
func (s *Sequencer) ForceVisible() {
	s.triggered = true
	s.start = s.clock.Now().Add(-(s.desc.Delay + s.desc.Duration))
}
