package dispatch

import (
	"github.com/dshills/keygate/internal/input/key"
	"github.com/dshills/keygate/internal/toolkit"
)

// routedToText reports whether the event must be forwarded unconditionally
// to a focused text-editing widget, bypassing arbitration. The destination
// is the event's source widget, or the focus owner for synthesized events.
//
// Escape is special: text widgets have no use for it, but cell editors
// cancel an active edit with it, so Escape routes to the widget only
// during a cell edit. That keeps Escape available for things like closing
// windows the rest of the time.
//
// Unmodified keys always route so ordinary typing and navigation reach
// the widget. Modified keys route only when the widget has its own
// binding for the exact stroke. Editability is deliberately not checked:
// read-only text widgets still need built-in copy and navigation keys.
func routedToText(event *toolkit.Event, focus toolkit.Component) bool {
	destination := event.Source
	if destination == nil {
		destination = focus
	}

	text, ok := destination.(toolkit.TextInput)
	if !ok {
		return false
	}

	stroke := event.Stroke()
	if stroke.Key == key.KeyEscape {
		return toolkit.AncestorEditing(text)
	}

	if !stroke.Modified() {
		return true
	}

	return toolkit.FindBinding(text, stroke) != nil
}
