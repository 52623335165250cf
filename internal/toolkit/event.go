package toolkit

import (
	"time"

	"github.com/dshills/keygate/internal/input/key"
)

// Phase identifies where a key event sits in the pressed/typed/released
// sequence of a single physical keystroke.
type Phase uint8

const (
	// PhasePressed is delivered when the key goes down.
	PhasePressed Phase = iota

	// PhaseTyped is delivered for the character generated by a press,
	// between the press and the release.
	PhaseTyped

	// PhaseReleased is delivered when the key comes back up.
	PhaseReleased
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePressed:
		return "pressed"
	case PhaseTyped:
		return "typed"
	case PhaseReleased:
		return "released"
	default:
		return "unknown"
	}
}

// Event is a key event traveling through the host toolkit.
type Event struct {
	// Key identifies the key.
	Key key.Key

	// Rune is the character for rune keys.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers key.Modifier

	// Phase is the event's position in the press/typed/release sequence.
	Phase Phase

	// Source is the widget the event originated on. It is nil for events
	// synthesized outside the widget hierarchy.
	Source Component

	// Time is when the event occurred.
	Time time.Time

	consumed bool
}

// NewEvent creates a key event with the current timestamp.
func NewEvent(k key.Key, r rune, mods key.Modifier, phase Phase, source Component) *Event {
	return &Event{
		Key:       k,
		Rune:      r,
		Modifiers: mods,
		Phase:     phase,
		Source:    source,
		Time:      time.Now(),
	}
}

// NewStrokeEvent creates a key event from a stroke.
func NewStrokeEvent(s key.Stroke, phase Phase, source Component) *Event {
	return NewEvent(s.Key, s.Rune, s.Modifiers, phase, source)
}

// Stroke returns the phase-independent identity of the event's keystroke.
func (e *Event) Stroke() key.Stroke {
	return key.Stroke{Key: e.Key, Rune: e.Rune, Modifiers: e.Modifiers}
}

// Consume marks the event as fully handled so the host toolkit does not
// process it through its ordinary chain.
func (e *Event) Consume() {
	e.consumed = true
}

// Consumed reports whether the event has been marked handled.
func (e *Event) Consumed() bool {
	return e.consumed
}

// String returns a representation like "pressed Ctrl+s".
func (e *Event) String() string {
	return e.Phase.String() + " " + e.Stroke().String()
}
