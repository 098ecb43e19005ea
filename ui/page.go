package ui

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/synapta/lumen/audio"
	"github.com/synapta/lumen/config"
	"github.com/synapta/lumen/content"
	"github.com/synapta/lumen/engine"
	"github.com/synapta/lumen/render"
	"github.com/synapta/lumen/reveal"
	"github.com/synapta/lumen/viewport"
)

// glideDuration is the smooth-scroll time for navbar link jumps
const glideDuration = 400 * time.Millisecond

// Page owns the viewport, the navbar and all sections, and implements
// engine.Handler
type Page struct {
	env    Env
	screen tcell.Screen
	player *audio.Player
	logger *log.Logger

	nav      *Navbar
	sections []Section
	services *Services
	contact  *Contact
	tops     map[string]int
	glide    viewport.Glide
}

// NewPage builds the full page from site content
func NewPage(screen tcell.Screen, site *content.Site, cfg config.Config,
	clock engine.TimeProvider, player *audio.Player, logger *log.Logger) *Page {

	w, h := screen.Size()
	vp := viewport.New(w, h)
	env := Env{
		Clock:         clock,
		VP:            vp,
		Threshold:     cfg.RevealThreshold,
		ReducedMotion: cfg.ReducedMotion,
	}

	p := &Page{
		env:    env,
		screen: screen,
		player: player,
		logger: logger,
		tops:   make(map[string]int),
	}

	p.services = NewServices(env, site.Services)
	p.contact = NewContact(env, site.Contact, func() {
		player.Play(audio.CueChime)
	})
	p.sections = []Section{
		NewHero(env, site.Hero),
		p.services,
		NewStats(env, site.Stats),
		NewPortfolio(env, site.Portfolio),
		NewAbout(env, site.About),
		p.contact,
		NewFooter(env, site.Footer),
	}
	p.nav = NewNavbar(env, site.Brand, site.Nav, cfg.NavScrollThreshold, p.scrollToSection)

	p.layout()
	return p
}

// Viewport exposes the scroll model, mainly for tests
func (p *Page) Viewport() *viewport.Viewport {
	return p.env.VP
}

// Navbar exposes the fixed bar, mainly for tests
func (p *Page) Navbar() *Navbar {
	return p.nav
}

// Contact exposes the form section, mainly for tests
func (p *Page) Contact() *Contact {
	return p.contact
}

// layout stacks sections under the navbar and updates the page height
func (p *Page) layout() {
	width, _ := p.env.VP.Size()
	top := NavbarHeight
	for _, sec := range p.sections {
		p.tops[sec.Name()] = top
		top += sec.Layout(width, top)
	}
	p.env.VP.SetPageHeight(top + 1)
}

// scrollToSection glides the viewport to a section top
func (p *Page) scrollToSection(name string) {
	target, ok := p.tops[name]
	if !ok {
		return
	}
	target -= NavbarHeight
	if max := p.env.VP.MaxOffset(); target > max {
		target = max
	}
	p.glide.Start(p.env.VP.Offset(), target, p.env.Clock.Now(), glideDuration, reveal.EaseInOutSmooth)
	p.player.Play(audio.CueTick)
}

// HandleEvent implements engine.Handler; returns false to quit
func (p *Page) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		p.env.VP.SetSize(w, h)
		p.layout()
		p.screen.Sync()
	case *tcell.EventKey:
		return p.handleKey(ev)
	case *tcell.EventMouse:
		p.handleMouse(ev)
	}
	return true
}

func (p *Page) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}

	if p.nav.MenuOpen() {
		switch {
		case ev.Key() == tcell.KeyEscape:
			p.nav.ToggleMenu()
			p.player.Play(audio.CueToggle)
		case ev.Key() == tcell.KeyRune && ev.Rune() >= '1' && ev.Rune() <= '9':
			p.nav.Navigate(int(ev.Rune() - '1'))
		}
		return true
	}

	if p.contact.Focused() {
		p.contact.HandleKey(ev)
		return true
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyDown:
		p.scrollBy(1)
	case tcell.KeyUp:
		p.scrollBy(-1)
	case tcell.KeyPgDn:
		_, h := p.env.VP.Size()
		p.scrollBy(h - NavbarHeight)
	case tcell.KeyPgUp:
		_, h := p.env.VP.Size()
		p.scrollBy(-(h - NavbarHeight))
	case tcell.KeyHome:
		p.scrollTo(0)
	case tcell.KeyEnd:
		p.scrollTo(p.env.VP.MaxOffset())
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == 'q':
			return false
		case r == 'j':
			p.scrollBy(1)
		case r == 'k':
			p.scrollBy(-1)
		case r == ' ':
			_, h := p.env.VP.Size()
			p.scrollBy(h - NavbarHeight)
		case r == 'g':
			p.scrollTo(0)
		case r == 'G':
			p.scrollTo(p.env.VP.MaxOffset())
		case r == 'm':
			enabled := p.player.Toggle()
			if p.logger != nil {
				p.logger.Printf("audio enabled: %v", enabled)
			}
		case r >= '1' && r <= '9':
			p.nav.Navigate(int(r - '1'))
		}
	}
	return true
}

func (p *Page) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		p.scrollBy(-3)
	case buttons&tcell.WheelDown != 0:
		p.scrollBy(3)
	case buttons&tcell.Button1 != 0:
		if p.nav.HandleClick(x, y) {
			p.player.Play(audio.CueToggle)
			return
		}
		if y >= NavbarHeight {
			p.contact.HandleClick(x, y+p.env.VP.Offset())
		}
	default:
		p.updateHover(x, y)
	}
}

// updateHover forwards the pointer position to the service cards
func (p *Page) updateHover(x, y int) {
	pageY := y + p.env.VP.Offset()
	inPage := y >= NavbarHeight
	for _, card := range p.services.Cards() {
		card.SetHover(inPage && card.HitTest(x, pageY))
	}
}

// scrollBy cancels any glide and moves the viewport directly
func (p *Page) scrollBy(delta int) {
	p.glide.Stop()
	p.env.VP.ScrollBy(delta)
}

func (p *Page) scrollTo(offset int) {
	p.glide.Stop()
	p.env.VP.ScrollTo(offset)
}

// Frame implements engine.Handler: advance the glide, then draw
func (p *Page) Frame(now time.Time) {
	if p.glide.Active() {
		offset, _ := p.glide.OffsetAt(now)
		p.env.VP.ScrollTo(offset)
	}
	p.draw()
}

func (p *Page) draw() {
	p.screen.Fill(' ', render.BaseStyle())
	for _, sec := range p.sections {
		sec.Draw(p.screen, p.env.VP)
	}
	p.nav.Draw(p.screen)
	p.screen.Show()
}

// Close releases every subscription the page holds
func (p *Page) Close() {
	p.nav.Close()
	for _, sec := range p.sections {
		sec.Close()
	}
}
