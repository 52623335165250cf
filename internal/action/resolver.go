package action

import (
	"github.com/dshills/keygate/internal/input/key"
	"github.com/dshills/keygate/internal/toolkit"
)

// Resolver maps a keystroke to the action registered for it in the
// context of the active window. The contract is at most one action per
// stroke per window context; the dispatch engine never tie-breaks between
// candidate actions.
type Resolver interface {
	// ActionFor returns the action bound to the stroke for the window, or
	// nil when none is registered.
	ActionFor(stroke key.Stroke, window toolkit.Window) Action
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(stroke key.Stroke, window toolkit.Window) Action

// ActionFor calls the function.
func (f ResolverFunc) ActionFor(stroke key.Stroke, window toolkit.Window) Action {
	return f(stroke, window)
}
