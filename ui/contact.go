package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/synapta/lumen/content"
	"github.com/synapta/lumen/render"
	"github.com/synapta/lumen/reveal"
	"github.com/synapta/lumen/viewport"
)

// field indices; submitFocus sits after the last text field
const (
	fieldName = iota
	fieldEmail
	fieldMessage
	submitFocus
	focusNone = -1
)

// Contact renders the contact form. Submission is deliberately a no-op:
// it flips a confirmation state and nothing leaves the terminal.
type Contact struct {
	revealGroup
	copy     content.Contact
	onSubmit func()

	rect      viewport.Rect
	labels    [3]string
	values    [3][]rune
	focus     int
	submitted bool

	headingSeq *reveal.Sequencer
	fieldSeqs  []*reveal.Sequencer
}

// NewContact creates the contact section
func NewContact(env Env, c content.Contact, onSubmit func()) *Contact {
	sec := &Contact{
		revealGroup: newRevealGroup(env),
		copy:        c,
		onSubmit:    onSubmit,
		labels:      [3]string{"Name", "Email", "Message"},
		focus:       focusNone,
	}
	sec.headingSeq = sec.sequencer(0)
	for i := 0; i < 4; i++ { // three fields + submit row
		sec.fieldSeqs = append(sec.fieldSeqs, sec.sequencer(i+1))
	}
	return sec
}

func (sec *Contact) Name() string { return "contact" }

// Focused reports whether the form is capturing keyboard input
func (sec *Contact) Focused() bool {
	return sec.focus != focusNone
}

// Submitted reports whether the confirmation state is showing
func (sec *Contact) Submitted() bool {
	return sec.submitted
}

func (sec *Contact) Layout(width, top int) int {
	// heading, subline, gap, 3 field rows with gaps, submit, confirmation slot
	height := 2 + 1 + 1 + 3*2 + 2 + 2
	sec.rect = viewport.Rect{X: 0, Y: top, W: width, H: height}
	sec.place(sec.rect)
	return height
}

// fieldRow returns the page row of a field or the submit button
func (sec *Contact) fieldRow(i int) int {
	base := sec.rect.Y + 4
	if i == submitFocus {
		return base + 3*2
	}
	return base + i*2
}

// HandleClick focuses the element under a page coordinate.
// Returns true if the click landed in the form.
func (sec *Contact) HandleClick(x, pageY int) bool {
	for i := 0; i <= submitFocus; i++ {
		if pageY == sec.fieldRow(i) {
			if i == submitFocus {
				sec.submit()
			} else {
				sec.focus = i
			}
			return true
		}
	}
	sec.focus = focusNone
	return false
}

// HandleKey edits the focused field. Returns true when the event was
// consumed so page-level shortcuts don't fire mid-typing.
func (sec *Contact) HandleKey(ev *tcell.EventKey) bool {
	if sec.focus == focusNone {
		return false
	}
	switch ev.Key() {
	case tcell.KeyEscape:
		sec.focus = focusNone
	case tcell.KeyTab, tcell.KeyDown:
		sec.focus++
		if sec.focus > submitFocus {
			sec.focus = fieldName
		}
	case tcell.KeyBacktab, tcell.KeyUp:
		sec.focus--
		if sec.focus < fieldName {
			sec.focus = submitFocus
		}
	case tcell.KeyEnter:
		if sec.focus == submitFocus {
			sec.submit()
		} else {
			sec.focus++
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if sec.focus < submitFocus {
			v := sec.values[sec.focus]
			if len(v) > 0 {
				sec.values[sec.focus] = v[:len(v)-1]
			}
		}
	case tcell.KeyRune:
		if sec.focus < submitFocus {
			sec.values[sec.focus] = append(sec.values[sec.focus], ev.Rune())
		}
	}
	return true
}

// submit flips the confirmation state; the form data goes nowhere
func (sec *Contact) submit() {
	if sec.submitted {
		return
	}
	sec.submitted = true
	sec.focus = focusNone
	if sec.onSubmit != nil {
		sec.onSubmit()
	}
}

func (sec *Contact) Draw(s tcell.Screen, vp *viewport.Viewport) {
	sec.sync()
	width := sec.rect.W

	heading := sec.headingSeq.Pose()
	render.DrawTextCentered(s, 0, screenRow(sec.rect.Y, vp, heading), width,
		render.FadedStyle(render.Text, heading.Opacity).Bold(true), sec.copy.Heading)
	render.DrawTextCentered(s, 0, screenRow(sec.rect.Y+1, vp, heading), width,
		render.FadedStyle(render.Muted, heading.Opacity), sec.copy.Subline)

	fieldWidth := width - 24
	if fieldWidth < 16 {
		fieldWidth = width - 12
	}
	for i := 0; i < 3; i++ {
		pose := sec.fieldSeqs[i].Pose()
		row := screenRow(sec.fieldRow(i), vp, pose)
		labelColor := render.Muted
		if sec.focus == i {
			labelColor = render.Accent
		}
		render.DrawText(s, 8, row, render.FadedStyle(labelColor, pose.Opacity), sec.labels[i])

		value := string(sec.values[i])
		if sec.focus == i {
			value += "▏"
		}
		render.DrawText(s, 18, row, render.FadedStyle(render.Text, pose.Opacity),
			render.Truncate(value, fieldWidth))
	}

	submitPose := sec.fieldSeqs[3].Pose()
	submitRow := screenRow(sec.fieldRow(submitFocus), vp, submitPose)
	label := "[ " + sec.copy.SubmitLabel + " ]"
	style := render.FadedStyle(render.Accent, submitPose.Opacity).Bold(true)
	if sec.focus == submitFocus {
		style = style.Reverse(true)
	}
	render.DrawText(s, 8, submitRow, style, label)

	if sec.submitted {
		render.DrawText(s, 8, submitRow+1,
			render.FadedStyle(render.AccentWarm, submitPose.Opacity), sec.copy.Confirmation)
	}
}
