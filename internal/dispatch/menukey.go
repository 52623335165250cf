package dispatch

import "github.com/dshills/keygate/internal/toolkit"

// MenuKeyHandler processes key events while menu navigation is active.
// Tool commands are ignored while a menu is open, so the handler runs
// before action resolution. Hosts with menus supply their own
// implementation.
type MenuKeyHandler interface {
	// ProcessMenuKey returns true when the event drove menu navigation
	// and is fully handled.
	ProcessMenuKey(event *toolkit.Event) bool
}

// MenuKeyHandlerFunc adapts a function to the MenuKeyHandler interface.
type MenuKeyHandlerFunc func(event *toolkit.Event) bool

// ProcessMenuKey calls the function.
func (f MenuKeyHandlerFunc) ProcessMenuKey(event *toolkit.Event) bool {
	return f(event)
}

// NopMenuKeys is a MenuKeyHandler for hosts without menus.
type NopMenuKeys struct{}

// ProcessMenuKey always returns false.
func (NopMenuKeys) ProcessMenuKey(*toolkit.Event) bool { return false }
