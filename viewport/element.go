package viewport

import "sync"

// Element is a tracked page region that can be observed for viewport
// intersection. Observe delivers the current ratio immediately and again on
// every scroll or resize, which matches platform intersection-observer
// behavior for elements already in view at observation time.
type Element struct {
	mu   sync.Mutex
	vp   *Viewport
	rect Rect
}

// Track registers a page region with the viewport
func (v *Viewport) Track(rect Rect) *Element {
	return &Element{vp: v, rect: rect}
}

// SetRect updates the region after relayout
func (e *Element) SetRect(r Rect) {
	e.mu.Lock()
	e.rect = r
	e.mu.Unlock()
}

// Rect returns the current region in page coordinates
func (e *Element) Rect() Rect {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rect
}

// Ratio returns the element's current intersection ratio
func (e *Element) Ratio() float64 {
	return e.vp.IntersectionRatio(e.Rect())
}

// Observe registers an intersection-ratio callback and returns its cancel
// func. The callback fires once immediately with the current ratio.
func (e *Element) Observe(fn func(ratio float64)) func() {
	cancel := e.vp.Events().Subscribe(func(Event) {
		fn(e.Ratio())
	})
	fn(e.Ratio())
	return cancel
}
