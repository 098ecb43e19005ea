// Package audio plays short synthesized interaction cues.
// Initialization failure is non-fatal; the page runs silently.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Cue identifies one interaction sound
type Cue int

const (
	// CueTick plays on navigation between sections
	CueTick Cue = iota
	// CueToggle plays when the compact menu opens or closes
	CueToggle
	// CueChime plays on the contact form's confirmation state
	CueChime
)

// tone is the synthesis recipe for a cue
type tone struct {
	freq     float64
	duration time.Duration
}

var cueTones = map[Cue]tone{
	CueTick:   {freq: 660, duration: 35 * time.Millisecond},
	CueToggle: {freq: 440, duration: 60 * time.Millisecond},
	CueChime:  {freq: 880, duration: 120 * time.Millisecond},
}

const sampleRate = beep.SampleRate(44100)

// Player owns the speaker and the mute state
type Player struct {
	mu      sync.Mutex
	ready   bool
	enabled bool
}

// NewPlayer initializes the speaker. A nil error does not guarantee the
// host can actually produce sound, only that the device opened.
func NewPlayer(enabled bool) (*Player, error) {
	p := &Player{enabled: enabled}
	if !enabled {
		return p, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		p.enabled = false
		return p, fmt.Errorf("init speaker: %w", err)
	}
	p.ready = true
	return p, nil
}

// Play queues a cue if audio is ready and enabled
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	ok := p.ready && p.enabled
	p.mu.Unlock()
	if !ok {
		return
	}

	t, found := cueTones[c]
	if !found {
		return
	}
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(t.duration), sine))
}

// Toggle flips the mute state and reports whether audio is now enabled
func (p *Player) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = !p.enabled
	return p.enabled && p.ready
}

// Enabled reports whether cues will play
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled && p.ready
}

// Close releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		speaker.Close()
		p.ready = false
	}
}
