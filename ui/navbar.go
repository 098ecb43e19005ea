package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/synapta/lumen/content"
	"github.com/synapta/lumen/render"
	"github.com/synapta/lumen/viewport"
)

// compactBreakpoint is the width below which links collapse into a menu
const compactBreakpoint = 70

// menuCloseDuration is the exit animation window for the compact menu
const menuCloseDuration = 150 * time.Millisecond

// NavbarHeight is the rows the fixed bar occupies at the top of the screen
const NavbarHeight = 2

// linkHit records where an inline link was drawn for click hit-testing
type linkHit struct {
	x0, x1  int
	section string
}

// Navbar is the fixed bar over the page.
//
// Unlike reveal flags, the scrolled boolean is reversible: it tracks
// whether the scroll offset currently exceeds the threshold and flips back
// when the page returns to the top. The compact-menu open flag is an
// independent boolean with its own exit animation window.
type Navbar struct {
	env        Env
	brand      string
	items      []content.NavItem
	threshold  int
	onNavigate func(section string)

	scrolled   bool
	width      int
	open       bool
	closing    bool
	closeStart time.Time
	cancel     func()
	links      []linkHit
}

// NewNavbar creates the bar and subscribes it to the viewport event source
func NewNavbar(env Env, brand string, items []content.NavItem, threshold int, onNavigate func(string)) *Navbar {
	n := &Navbar{
		env:        env,
		brand:      brand,
		items:      items,
		threshold:  threshold,
		onNavigate: onNavigate,
	}
	n.width, _ = env.VP.Size()
	n.cancel = env.VP.Events().Subscribe(func(ev viewport.Event) {
		n.scrolled = ev.Offset > n.threshold
		n.width = ev.Width
	})
	return n
}

// Close unsubscribes from the viewport event source
func (n *Navbar) Close() {
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
}

// Scrolled reports whether the bar is in its scrolled style
func (n *Navbar) Scrolled() bool {
	return n.scrolled
}

// Compact reports whether links are collapsed into the menu
func (n *Navbar) Compact() bool {
	return n.width < compactBreakpoint
}

// MenuOpen reports whether the compact menu overlay is showing
func (n *Navbar) MenuOpen() bool {
	return n.open
}

// ToggleMenu opens or closes the compact menu.
// Closing starts the exit animation window instead of vanishing instantly.
func (n *Navbar) ToggleMenu() {
	if n.open {
		n.open = false
		n.closing = true
		n.closeStart = n.env.Clock.Now()
		return
	}
	n.open = true
	n.closing = false
}

// Navigate activates a link by index and closes the menu if open
func (n *Navbar) Navigate(index int) {
	if index < 0 || index >= len(n.items) {
		return
	}
	if n.open {
		n.ToggleMenu()
	}
	if n.onNavigate != nil {
		n.onNavigate(n.items[index].Section)
	}
}

// HandleClick processes a click in screen coordinates.
// Returns true if the navbar consumed it.
func (n *Navbar) HandleClick(x, y int) bool {
	if n.open {
		// Overlay rows: one item per row under the bar
		row := y - NavbarHeight
		if row >= 0 && row < len(n.items) {
			n.Navigate(row)
			return true
		}
		n.ToggleMenu()
		return true
	}
	if y >= NavbarHeight {
		return false
	}
	if n.Compact() {
		n.ToggleMenu()
		return true
	}
	for i, hit := range n.links {
		if x >= hit.x0 && x < hit.x1 {
			n.Navigate(i)
			return true
		}
	}
	return false
}

// Draw renders the bar and, in compact mode, the menu overlay
func (n *Navbar) Draw(s tcell.Screen) {
	barStyle := render.BaseStyle()
	if n.scrolled {
		barStyle = tcell.StyleDefault.Background(render.Surface).Foreground(render.Text)
	}
	for row := 0; row < NavbarHeight; row++ {
		render.FillRow(s, 0, row, n.width, barStyle)
	}
	render.DrawText(s, 2, 0, barStyle.Foreground(render.Accent).Bold(true), n.brand)

	if n.Compact() {
		label := "≡ menu"
		render.DrawText(s, n.width-len([]rune(label))-2, 0, barStyle, label)
		n.drawMenu(s)
		return
	}

	n.links = n.links[:0]
	x := n.width - 2
	for i := len(n.items) - 1; i >= 0; i-- {
		label := n.items[i].Label
		w := runewidth.StringWidth(label)
		x -= w
		n.links = append([]linkHit{{x0: x, x1: x + w, section: n.items[i].Section}}, n.links...)
		render.DrawText(s, x, 0, barStyle.Foreground(render.Muted), label)
		x -= 3
	}
}

// drawMenu renders the overlay while open, and fades it during the exit
// animation window after closing
func (n *Navbar) drawMenu(s tcell.Screen) {
	opacity := 0.0
	switch {
	case n.open:
		opacity = 1.0
	case n.closing:
		elapsed := n.env.Clock.Now().Sub(n.closeStart)
		if elapsed >= menuCloseDuration {
			n.closing = false
			return
		}
		opacity = 1.0 - float64(elapsed)/float64(menuCloseDuration)
	default:
		return
	}

	for i, item := range n.items {
		row := NavbarHeight + i
		render.FillRow(s, 0, row, n.width, render.SurfaceStyle(render.Text, opacity))
		label := fmt.Sprintf("%d  %s", i+1, item.Label)
		render.DrawText(s, 4, row, render.SurfaceStyle(render.Text, opacity), label)
	}
}
