package dispatch

import "github.com/dshills/keygate/internal/toolkit"

// blocked reports whether the event must be swallowed before any handler
// sees it.
//
// An event is blocked when its originating widget no longer resolves to a
// top-level container. That happens when an earlier key-pressed event
// already removed or hid the widget, such as a dialog closing itself on
// Escape; the dangling key-released must not reach anyone. An event is
// also blocked while the source window's glass pane reports busy.
//
// Events without an originating widget pass through: they were
// synthesized outside the widget hierarchy and arbitration still applies.
func blocked(event *toolkit.Event) bool {
	if event.Source == nil {
		return false
	}

	root := toolkit.RootOf(event.Source)
	if root == nil {
		return true
	}

	if glass := root.GlassPane(); glass != nil && glass.Busy() {
		return true
	}
	return false
}
