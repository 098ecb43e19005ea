// Package viewport models the visible window over a vertically scrolling
// page and publishes scroll/resize events to subscribed components.
package viewport

import "sync"

// Rect is a rectangle in page coordinates, measured in cells
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rect has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Event carries the viewport state at the moment of a scroll or resize
type Event struct {
	Offset int
	Width  int
	Height int
}

// Viewport tracks the scroll offset and dimensions of the visible window.
// All mutations clamp the offset to [0, pageHeight-height] and publish an
// Event so detectors and the navbar can react.
type Viewport struct {
	mu         sync.Mutex
	offset     int
	width      int
	height     int
	pageHeight int
	source     *Source
}

// New creates a viewport with the given visible dimensions
func New(width, height int) *Viewport {
	return &Viewport{
		width:  width,
		height: height,
		source: NewSource(),
	}
}

// Events returns the event source components subscribe to
func (v *Viewport) Events() *Source {
	return v.source
}

// Offset returns the current scroll offset in cells
func (v *Viewport) Offset() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.offset
}

// Size returns the visible width and height
func (v *Viewport) Size() (int, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.width, v.height
}

// PageHeight returns the total laid-out page height
func (v *Viewport) PageHeight() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pageHeight
}

// MaxOffset returns the largest reachable scroll offset
func (v *Viewport) MaxOffset() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.maxOffsetLocked()
}

func (v *Viewport) maxOffsetLocked() int {
	max := v.pageHeight - v.height
	if max < 0 {
		max = 0
	}
	return max
}

// SetSize updates the visible dimensions after a terminal resize.
// The offset is re-clamped so the window never scrolls past the page end.
func (v *Viewport) SetSize(width, height int) {
	v.mu.Lock()
	v.width = width
	v.height = height
	v.clampLocked()
	ev := v.eventLocked()
	v.mu.Unlock()
	v.source.Publish(ev)
}

// SetPageHeight updates the total page height after layout
func (v *Viewport) SetPageHeight(h int) {
	v.mu.Lock()
	if h < 0 {
		h = 0
	}
	v.pageHeight = h
	v.clampLocked()
	ev := v.eventLocked()
	v.mu.Unlock()
	v.source.Publish(ev)
}

// ScrollBy moves the offset by delta cells, clamped to the page bounds
func (v *Viewport) ScrollBy(delta int) {
	v.mu.Lock()
	v.offset += delta
	v.clampLocked()
	ev := v.eventLocked()
	v.mu.Unlock()
	v.source.Publish(ev)
}

// ScrollTo moves the offset to an absolute position, clamped to the page bounds
func (v *Viewport) ScrollTo(offset int) {
	v.mu.Lock()
	v.offset = offset
	v.clampLocked()
	ev := v.eventLocked()
	v.mu.Unlock()
	v.source.Publish(ev)
}

func (v *Viewport) clampLocked() {
	if v.offset < 0 {
		v.offset = 0
	}
	if max := v.maxOffsetLocked(); v.offset > max {
		v.offset = max
	}
}

func (v *Viewport) eventLocked() Event {
	return Event{Offset: v.offset, Width: v.width, Height: v.height}
}

// IntersectionRatio returns the fraction of the rect's area currently
// inside the visible window. The page never scrolls horizontally, so the
// ratio reduces to the visible-row fraction.
func (v *Viewport) IntersectionRatio(r Rect) float64 {
	if r.Empty() {
		return 0
	}
	v.mu.Lock()
	top := v.offset
	bottom := v.offset + v.height
	v.mu.Unlock()

	visTop := r.Y
	if visTop < top {
		visTop = top
	}
	visBottom := r.Y + r.H
	if visBottom > bottom {
		visBottom = bottom
	}
	if visBottom <= visTop {
		return 0
	}
	return float64(visBottom-visTop) / float64(r.H)
}
