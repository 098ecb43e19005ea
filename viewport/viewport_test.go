package viewport

import (
	"testing"
	"time"
)

func TestScrollClamping(t *testing.T) {
	vp := New(80, 24)
	vp.SetPageHeight(100)

	vp.ScrollBy(-10)
	if got := vp.Offset(); got != 0 {
		t.Errorf("Expected offset clamped to 0, got %d", got)
	}

	vp.ScrollBy(1000)
	if got := vp.Offset(); got != 76 {
		t.Errorf("Expected offset clamped to pageHeight-height=76, got %d", got)
	}

	vp.ScrollTo(40)
	if got := vp.Offset(); got != 40 {
		t.Errorf("Expected offset 40, got %d", got)
	}
}

func TestScrollClampingShortPage(t *testing.T) {
	vp := New(80, 24)
	vp.SetPageHeight(10)

	vp.ScrollBy(5)
	if got := vp.Offset(); got != 0 {
		t.Errorf("Page shorter than viewport must not scroll, got offset %d", got)
	}
}

func TestResizeReclampsOffset(t *testing.T) {
	vp := New(80, 24)
	vp.SetPageHeight(100)
	vp.ScrollTo(76)

	vp.SetSize(80, 50)
	if got := vp.Offset(); got != 50 {
		t.Errorf("Expected offset re-clamped to 50 after resize, got %d", got)
	}
}

func TestIntersectionRatio(t *testing.T) {
	vp := New(80, 20)
	vp.SetPageHeight(200)

	cases := []struct {
		name   string
		offset int
		rect   Rect
		want   float64
	}{
		{"fully visible", 0, Rect{X: 0, Y: 5, W: 80, H: 10}, 1.0},
		{"fully below", 0, Rect{X: 0, Y: 30, W: 80, H: 10}, 0.0},
		{"half clipped at bottom", 0, Rect{X: 0, Y: 15, W: 80, H: 10}, 0.5},
		{"half clipped at top", 20, Rect{X: 0, Y: 15, W: 80, H: 10}, 0.5},
		{"empty rect", 0, Rect{X: 0, Y: 5, W: 80, H: 0}, 0.0},
		{"one row of ten visible", 0, Rect{X: 0, Y: 19, W: 80, H: 10}, 0.1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vp.ScrollTo(tc.offset)
			got := vp.IntersectionRatio(tc.rect)
			if got != tc.want {
				t.Errorf("IntersectionRatio(%+v) at offset %d = %v, want %v", tc.rect, tc.offset, got, tc.want)
			}
		})
	}
}

func TestSourceSubscribeCancel(t *testing.T) {
	s := NewSource()

	var count int
	cancel := s.Subscribe(func(Event) { count++ })

	if s.Len() != 1 {
		t.Fatalf("Expected 1 subscriber, got %d", s.Len())
	}

	s.Publish(Event{Offset: 1})
	if count != 1 {
		t.Errorf("Expected 1 delivery, got %d", count)
	}

	cancel()
	if s.Len() != 0 {
		t.Errorf("Expected 0 subscribers after cancel, got %d", s.Len())
	}

	s.Publish(Event{Offset: 2})
	if count != 1 {
		t.Errorf("Canceled subscriber must not receive events, got %d deliveries", count)
	}

	// Cancel is idempotent
	cancel()
	if s.Len() != 0 {
		t.Errorf("Second cancel changed subscriber count to %d", s.Len())
	}
}

func TestSourceCancelDuringDelivery(t *testing.T) {
	s := NewSource()

	var secondFired bool
	var cancelSecond func()
	s.Subscribe(func(Event) { cancelSecond() })
	cancelSecond = s.Subscribe(func(Event) { secondFired = true })

	s.Publish(Event{})
	if secondFired {
		t.Error("Subscriber canceled mid-delivery must not fire")
	}
}

func TestSourceSelfCancelDuringDelivery(t *testing.T) {
	s := NewSource()

	var count int
	var cancel func()
	cancel = s.Subscribe(func(Event) {
		count++
		cancel()
	})

	s.Publish(Event{})
	s.Publish(Event{})
	if count != 1 {
		t.Errorf("Self-canceling subscriber fired %d times, want 1", count)
	}
	if s.Len() != 0 {
		t.Errorf("Expected 0 subscribers, got %d", s.Len())
	}
}

func TestElementObserveImmediateDelivery(t *testing.T) {
	vp := New(80, 20)
	vp.SetPageHeight(100)

	el := vp.Track(Rect{X: 0, Y: 0, W: 80, H: 10})

	var ratios []float64
	cancel := el.Observe(func(r float64) { ratios = append(ratios, r) })
	defer cancel()

	if len(ratios) != 1 || ratios[0] != 1.0 {
		t.Fatalf("Expected immediate delivery of ratio 1.0, got %v", ratios)
	}

	vp.ScrollTo(5)
	if len(ratios) != 2 || ratios[1] != 0.5 {
		t.Errorf("Expected ratio 0.5 after scroll, got %v", ratios)
	}
}

func TestElementSetRect(t *testing.T) {
	vp := New(80, 20)
	vp.SetPageHeight(100)

	el := vp.Track(Rect{X: 0, Y: 50, W: 80, H: 10})
	if got := el.Ratio(); got != 0 {
		t.Fatalf("Expected ratio 0 for off-screen element, got %v", got)
	}

	el.SetRect(Rect{X: 0, Y: 0, W: 80, H: 10})
	if got := el.Ratio(); got != 1.0 {
		t.Errorf("Expected ratio 1.0 after relayout, got %v", got)
	}
}

func TestGlide(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var g Glide
	g.Start(0, 100, start, time.Second, nil)

	if off, done := g.OffsetAt(start); off != 0 || done {
		t.Errorf("At t=0 expected offset 0, active; got %d done=%v", off, done)
	}
	if off, done := g.OffsetAt(start.Add(500 * time.Millisecond)); off != 50 || done {
		t.Errorf("At t=0.5s expected offset 50; got %d done=%v", off, done)
	}
	if off, done := g.OffsetAt(start.Add(time.Second)); off != 100 || !done {
		t.Errorf("At t=1s expected offset 100, done; got %d done=%v", off, done)
	}
	if g.Active() {
		t.Error("Glide must deactivate after reaching target")
	}
}

func TestGlideStop(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var g Glide
	g.Start(100, 0, start, time.Second, nil)
	g.Stop()
	if g.Active() {
		t.Error("Stopped glide must be inactive")
	}
}
