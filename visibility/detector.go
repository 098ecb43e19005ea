// Package visibility provides one-shot viewport-entry detection.
//
// A Detector wraps a platform intersection facility into a monotonic
// boolean: false until its target first intersects the viewport above a
// threshold, true forever after. The detector is an explicit two-state
// machine rather than a self-mutating callback, so the single legal
// transition is enforced in one place.
package visibility

import "sync"

// State is the detector lifecycle state
type State uint8

const (
	// Unobserved means the target has not yet crossed the threshold
	Unobserved State = iota
	// Triggered means the target crossed the threshold; terminal state
	Triggered
)

// String returns the name of the state for debugging
func (s State) String() string {
	switch s {
	case Unobserved:
		return "Unobserved"
	case Triggered:
		return "Triggered"
	default:
		return "Unknown"
	}
}

// DefaultThreshold is the intersection ratio that counts as "entered
// the viewport" when none is configured
const DefaultThreshold = 0.1

// Target is an observable element. Observe registers an intersection-ratio
// callback and returns a cancel func; implementations must not deliver
// callbacks after cancel returns. viewport.Element satisfies this contract.
type Target interface {
	Observe(fn func(ratio float64)) (cancel func())
}

// Detector reports whether a bound target has ever intersected the
// viewport above its threshold. While no target is bound it performs no
// observation. On the first ratio at or above the threshold it latches
// Triggered and immediately stops observing; the subscription is not
// retained afterwards.
type Detector struct {
	mu        sync.Mutex
	threshold float64
	state     State
	cancel    func()
}

// NewDetector creates a detector with the given threshold.
// Thresholds outside (0,1] fall back to DefaultThreshold.
func NewDetector(threshold float64) *Detector {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Detector{threshold: threshold}
}

// Visible reports whether the target has entered the viewport.
// Once true it never reverts for the life of the detector, except through
// an explicit rebind.
func (d *Detector) Visible() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state == Triggered
}

// State returns the current lifecycle state
func (d *Detector) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Bind attaches an observation target, replacing any previous one.
// Rebinding resets the detector to Unobserved and restarts observation
// from scratch. Binding nil detaches and stops observing.
func (d *Detector) Bind(target Target) {
	d.mu.Lock()
	d.detachLocked()
	d.state = Unobserved
	d.mu.Unlock()

	if target == nil {
		return
	}

	// Observe may deliver the current ratio synchronously, before the
	// cancel func is available. The trigger path below re-checks state so
	// an immediate trigger still disconnects.
	cancel := target.Observe(d.onRatio)

	d.mu.Lock()
	if d.state == Triggered {
		d.mu.Unlock()
		cancel()
		return
	}
	d.cancel = cancel
	d.mu.Unlock()
}

// Close stops observing and releases the subscription.
// Safe to call at any time, including before any intersection occurred.
func (d *Detector) Close() {
	d.mu.Lock()
	d.detachLocked()
	d.mu.Unlock()
}

func (d *Detector) onRatio(ratio float64) {
	d.mu.Lock()
	if d.state == Triggered {
		d.mu.Unlock()
		return
	}
	if ratio < d.threshold {
		d.mu.Unlock()
		return
	}
	d.state = Triggered
	cancel := d.cancel
	d.cancel = nil
	d.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

func (d *Detector) detachLocked() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}
