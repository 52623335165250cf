package toolkit

// FocusProvider answers which widget currently has input focus and which
// top-level window is active. It exists as an interface so tests and
// embedding hosts can substitute their own focus source.
type FocusProvider interface {
	// FocusOwner returns the widget with input focus, or nil.
	FocusOwner() Component

	// ActiveWindow returns the active top-level window, or nil.
	ActiveWindow() Window
}

// StaticFocus is a FocusProvider with settable values, useful for hosts
// that track focus themselves and for tests.
type StaticFocus struct {
	Owner  Component
	Window Window
}

// FocusOwner returns the configured focus owner.
func (s *StaticFocus) FocusOwner() Component { return s.Owner }

// ActiveWindow returns the configured active window.
func (s *StaticFocus) ActiveWindow() Window { return s.Window }
