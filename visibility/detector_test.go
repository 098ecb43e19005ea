package visibility

import (
	"testing"

	"github.com/synapta/lumen/viewport"
)

// fakeTarget is a controllable intersection facility double.
// It counts live subscriptions so tests can assert teardown behavior.
type fakeTarget struct {
	fn      func(float64)
	active  int
	cancels int
}

func (f *fakeTarget) Observe(fn func(ratio float64)) func() {
	f.fn = fn
	f.active++
	canceled := false
	return func() {
		if canceled {
			return
		}
		canceled = true
		f.cancels++
		f.active--
		f.fn = nil
	}
}

// report delivers a ratio if a subscription is live
func (f *fakeTarget) report(ratio float64) {
	if f.fn != nil {
		f.fn(ratio)
	}
}

func TestVisibilityStartsFalse(t *testing.T) {
	for _, threshold := range []float64{0.1, 0.5, 1.0, 0, -1, 2} {
		d := NewDetector(threshold)
		if d.Visible() {
			t.Errorf("New detector with threshold %v must start invisible", threshold)
		}
		if d.State() != Unobserved {
			t.Errorf("New detector with threshold %v must start Unobserved, got %v", threshold, d.State())
		}
	}
}

func TestNoObservationWithoutTarget(t *testing.T) {
	d := NewDetector(0.1)
	// Never bound: no-op lifecycle, no panic
	if d.Visible() {
		t.Error("Unbound detector must stay invisible")
	}
	d.Close()
	if d.Visible() {
		t.Error("Closing an unbound detector must be a no-op")
	}
}

func TestTriggerIsMonotonic(t *testing.T) {
	target := &fakeTarget{}
	d := NewDetector(0.1)
	d.Bind(target)

	target.report(0.05)
	if d.Visible() {
		t.Fatal("Ratio below threshold must not trigger")
	}

	target.report(0.1)
	if !d.Visible() {
		t.Fatal("Ratio at threshold must trigger")
	}
	if d.State() != Triggered {
		t.Fatalf("Expected Triggered, got %v", d.State())
	}

	// Ratio drops must not revert the flag
	target.report(0.0)
	if !d.Visible() {
		t.Error("Triggered flag must never revert on ratio drop")
	}
}

func TestAutoDisconnectOnTrigger(t *testing.T) {
	target := &fakeTarget{}
	d := NewDetector(0.5)
	d.Bind(target)

	if target.active != 1 {
		t.Fatalf("Expected 1 live subscription after Bind, got %d", target.active)
	}

	target.report(0.6)
	if target.active != 0 {
		t.Errorf("Expected 0 live subscriptions after trigger, got %d", target.active)
	}
	if target.cancels != 1 {
		t.Errorf("Expected exactly 1 cancel, got %d", target.cancels)
	}
}

func TestCloseReleasesSubscription(t *testing.T) {
	target := &fakeTarget{}
	d := NewDetector(0.1)
	d.Bind(target)

	d.Close()
	if target.active != 0 {
		t.Errorf("Expected 0 live subscriptions after Close, got %d", target.active)
	}
	if d.Visible() {
		t.Error("Close before intersection must leave the flag false")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	target := &fakeTarget{}
	d := NewDetector(0.1)
	d.Bind(target)

	d.Close()
	d.Close()
	if target.active != 0 {
		t.Errorf("Expected 0 live subscriptions, got %d", target.active)
	}
}

func TestRebindResetsFlag(t *testing.T) {
	first := &fakeTarget{}
	d := NewDetector(0.1)
	d.Bind(first)
	first.report(1.0)
	if !d.Visible() {
		t.Fatal("Expected trigger on first target")
	}

	second := &fakeTarget{}
	d.Bind(second)
	if d.Visible() {
		t.Error("Rebinding to a new target must reset the flag")
	}
	if first.active != 0 {
		t.Errorf("Old target must be released on rebind, %d live", first.active)
	}
	if second.active != 1 {
		t.Errorf("New target must be observed after rebind, %d live", second.active)
	}

	second.report(0.2)
	if !d.Visible() {
		t.Error("Detector must trigger on the rebound target")
	}
}

func TestBindNilDetaches(t *testing.T) {
	target := &fakeTarget{}
	d := NewDetector(0.1)
	d.Bind(target)

	d.Bind(nil)
	if target.active != 0 {
		t.Errorf("Bind(nil) must release the subscription, %d live", target.active)
	}
	if d.Visible() {
		t.Error("Bind(nil) must leave the flag false")
	}
}

// immediateTarget triggers synchronously inside Observe, before the cancel
// func is returned to the detector.
type immediateTarget struct {
	active  int
	cancels int
}

func (i *immediateTarget) Observe(fn func(ratio float64)) func() {
	i.active++
	fn(1.0)
	return func() {
		i.cancels++
		i.active--
	}
}

func TestImmediateTriggerStillDisconnects(t *testing.T) {
	target := &immediateTarget{}
	d := NewDetector(0.1)
	d.Bind(target)

	if !d.Visible() {
		t.Fatal("Synchronous delivery at bind time must trigger")
	}
	if target.active != 0 {
		t.Errorf("Expected subscription released after immediate trigger, %d live", target.active)
	}
}

// Detector must observe real viewport elements through the same contract
// the fake exercises.
func TestDetectorAgainstViewportElement(t *testing.T) {
	vp := viewport.New(80, 20)
	vp.SetPageHeight(200)
	el := vp.Track(viewport.Rect{X: 0, Y: 100, W: 80, H: 10})

	d := NewDetector(0.1)
	d.Bind(el)

	if d.Visible() {
		t.Fatal("Element below the fold must not trigger")
	}
	if vp.Events().Len() != 1 {
		t.Fatalf("Expected 1 viewport subscription, got %d", vp.Events().Len())
	}

	vp.ScrollTo(81)
	if !d.Visible() {
		t.Error("Scrolling the element into view must trigger")
	}
	if vp.Events().Len() != 0 {
		t.Errorf("Trigger must release the viewport subscription, %d live", vp.Events().Len())
	}
}
