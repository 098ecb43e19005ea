package reveal

import (
	"testing"
	"time"

	"github.com/synapta/lumen/engine"
)

func testDescriptor(delay, duration time.Duration) Descriptor {
	return Descriptor{
		Hidden:   Pose{OffsetY: 4, Opacity: 0},
		Visible:  Pose{OffsetY: 0, Opacity: 1},
		Delay:    delay,
		Duration: duration,
		Easing:   EaseOutCubic,
	}
}

func TestSequencerHiddenBeforeTrigger(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	seq := NewSequencer(testDescriptor(0, 800*time.Millisecond), clock)

	if got := seq.Pose(); got != (Pose{OffsetY: 4, Opacity: 0}) {
		t.Errorf("Expected hidden pose before trigger, got %+v", got)
	}

	// No trigger: hidden indefinitely, regardless of elapsed time
	clock.Advance(time.Hour)
	if got := seq.Pose(); got != (Pose{OffsetY: 4, Opacity: 0}) {
		t.Errorf("Expected hidden pose to persist without trigger, got %+v", got)
	}
	if seq.Done() {
		t.Error("Untriggered sequencer must not report done")
	}
}

func TestSequencerCompletesAtDelayPlusDuration(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	seq := NewSequencer(testDescriptor(200*time.Millisecond, 800*time.Millisecond), clock)

	seq.Trigger()

	// During the delay the element is still at the hidden pose
	clock.Advance(200 * time.Millisecond)
	if got := seq.Pose(); got != (Pose{OffsetY: 4, Opacity: 0}) {
		t.Errorf("Expected hidden pose at end of delay, got %+v", got)
	}

	// Just before delay+duration: not yet fully visible
	clock.Advance(799 * time.Millisecond)
	if got := seq.Pose(); got.Opacity >= 1 {
		t.Errorf("Pose must not be fully visible before t=1.0s, got %+v", got)
	}
	if seq.Done() {
		t.Error("Sequencer must not be done before delay+duration")
	}

	// Exactly at t = delay + duration = 1.0s: fully visible
	clock.Advance(1 * time.Millisecond)
	if got := seq.Pose(); got != (Pose{OffsetY: 0, Opacity: 1}) {
		t.Errorf("Expected visible pose at t=1.0s, got %+v", got)
	}
	if !seq.Done() {
		t.Error("Sequencer must be done at delay+duration")
	}

	// And forever after
	clock.Advance(time.Hour)
	if got := seq.Pose(); got != (Pose{OffsetY: 0, Opacity: 1}) {
		t.Errorf("Expected visible pose to persist, got %+v", got)
	}
}

func TestSequencerTriggerLatches(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	seq := NewSequencer(testDescriptor(0, 800*time.Millisecond), clock)

	seq.Trigger()
	clock.Advance(800 * time.Millisecond)

	// Re-triggering after completion must not restart the animation
	seq.Trigger()
	if got := seq.Pose(); got != (Pose{OffsetY: 0, Opacity: 1}) {
		t.Errorf("Re-trigger must not replay the reveal, got %+v", got)
	}
}

func TestStaggeredSiblings(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := engine.NewMockTimeProvider(start)

	base := testDescriptor(0, 800*time.Millisecond)
	step := 150 * time.Millisecond
	var seqs []*Sequencer
	for i := 0; i < 3; i++ {
		seqs = append(seqs, NewSequencer(Staggered(base, i, step), clock))
	}

	// Shared flag flips at t=0
	for _, s := range seqs {
		s.Trigger()
	}

	completions := []time.Duration{
		800 * time.Millisecond,
		950 * time.Millisecond,
		1100 * time.Millisecond,
	}
	for i, want := range completions {
		clock.SetTime(start.Add(want - time.Millisecond))
		if seqs[i].Done() {
			t.Errorf("Sibling %d done before %v", i, want)
		}
		clock.SetTime(start.Add(want))
		if !seqs[i].Done() {
			t.Errorf("Sibling %d not done at %v", i, want)
		}
		if got := seqs[i].Pose(); got != (Pose{OffsetY: 0, Opacity: 1}) {
			t.Errorf("Sibling %d expected visible pose at %v, got %+v", i, want, got)
		}
	}
}

func TestSequencerZeroDuration(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	seq := NewSequencer(testDescriptor(0, 0), clock)

	seq.Trigger()
	clock.Advance(time.Nanosecond)
	if got := seq.Pose(); got != (Pose{OffsetY: 0, Opacity: 1}) {
		t.Errorf("Zero-duration reveal must jump to visible pose, got %+v", got)
	}
}

func TestForceVisible(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	seq := NewSequencer(testDescriptor(300*time.Millisecond, 800*time.Millisecond), clock)

	seq.ForceVisible()
	if got := seq.Pose(); got != (Pose{OffsetY: 0, Opacity: 1}) {
		t.Errorf("ForceVisible must rest at the visible pose, got %+v", got)
	}
	if !seq.Done() {
		t.Error("ForceVisible must report done")
	}
}

func TestPoseInterpolationMonotonic(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	seq := NewSequencer(testDescriptor(0, 800*time.Millisecond), clock)
	seq.Trigger()

	prev := seq.Pose()
	for i := 0; i < 16; i++ {
		clock.Advance(50 * time.Millisecond)
		cur := seq.Pose()
		if cur.Opacity < prev.Opacity {
			t.Fatalf("Opacity regressed from %v to %v at step %d", prev.Opacity, cur.Opacity, i)
		}
		if cur.OffsetY > prev.OffsetY {
			t.Fatalf("OffsetY regressed from %v to %v at step %d", prev.OffsetY, cur.OffsetY, i)
		}
		prev = cur
	}
	if prev != (Pose{OffsetY: 0, Opacity: 1}) {
		t.Errorf("Expected resting pose after full duration, got %+v", prev)
	}
}

func TestEasingBoundaries(t *testing.T) {
	curves := map[string]Easing{
		"Linear":          Linear,
		"EaseOutCubic":    EaseOutCubic,
		"EaseOutQuad":     EaseOutQuad,
		"EaseInOutSmooth": EaseInOutSmooth,
	}
	for name, fn := range curves {
		if got := fn(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := fn(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
		if got := fn(-0.5); got != 0 {
			t.Errorf("%s(-0.5) = %v, want clamp to 0", name, got)
		}
		if got := fn(1.5); got != 1 {
			t.Errorf("%s(1.5) = %v, want clamp to 1", name, got)
		}
	}
}
