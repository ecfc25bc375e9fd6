package client

// EventTarget registers listeners the way a DOM node does. On returns a
// deregistration func for the installed listener.
type EventTarget interface {
	On(event string, fn func()) (off func())
}

// StyleAccessor reads and writes single style properties of the viewport
// element the guard manages.
type StyleAccessor interface {
	Get(prop string) string
	Set(prop string, value string)
}

const (
	focusEvent = "focusin"
	blurEvent  = "focusout"

	heightProp   = "height"
	overflowProp = "overflowY"
)

// KeyboardGuard neutralizes the mobile browser viewport resize on virtual
// keyboard open: on focus it pins the two layout styles, on blur it
// restores the snapshot taken at focus time.
type KeyboardGuard struct {
	Target EventTarget
	Style  StyleAccessor

	pinned           bool
	heightSnapshot   string
	overflowSnapshot string
}

// Attach installs the focus/blur listener pair and returns a detach func.
// Detach deregisters both listeners and, if the keyboard is still open,
// restores the snapshot so no pinned style leaks past the guard.
func (g *KeyboardGuard) Attach() (detach func()) {
	offFocus := g.Target.On(focusEvent, g.pin)
	offBlur := g.Target.On(blurEvent, g.restore)
	return func() {
		offFocus()
		offBlur()
		g.restore()
	}
}

func (g *KeyboardGuard) pin() {
	if g.pinned {
		return
	}
	g.heightSnapshot = g.Style.Get(heightProp)
	g.overflowSnapshot = g.Style.Get(overflowProp)
	g.Style.Set(heightProp, "100%")
	g.Style.Set(overflowProp, "hidden")
	g.pinned = true
}

func (g *KeyboardGuard) restore() {
	if !g.pinned {
		return
	}
	g.Style.Set(heightProp, g.heightSnapshot)
	g.Style.Set(overflowProp, g.overflowSnapshot)
	g.pinned = false
}
