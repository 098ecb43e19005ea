package engine

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Handler receives input events and frame ticks from the run loop.
// HandleEvent returns false to stop the loop.
type Handler interface {
	HandleEvent(ev tcell.Event) bool
	Frame(now time.Time)
}

// Loop drives a fixed-rate frame loop over a tcell screen.
// Input events are drained from a dedicated poll goroutine; frames fire
// from a ticker so animation keeps advancing without input.
type Loop struct {
	screen tcell.Screen
	clock  TimeProvider
	fps    int
}

// NewLoop creates a run loop for the given screen and clock
func NewLoop(screen tcell.Screen, clock TimeProvider, fps int) *Loop {
	if fps <= 0 {
		fps = 60
	}
	return &Loop{
		screen: screen,
		clock:  clock,
		fps:    fps,
	}
}

// Run blocks until the handler requests a stop.
// The poll goroutine exits when the screen is finalized by the caller.
func (l *Loop) Run(h Handler) {
	interval := time.Second / time.Duration(l.fps)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	for {
		select {
		case ev := <-events:
			if !h.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			h.Frame(l.clock.Now())
		}
	}
}
