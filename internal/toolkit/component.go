package toolkit

// Component is a widget in the host toolkit's hierarchy.
type Component interface {
	// Parent returns the containing component, or nil at the top of the
	// hierarchy or after the component has been removed from it.
	Parent() Component

	// Enabled reports whether the component currently accepts input.
	Enabled() bool
}

// GlassPane is a window's modal-blocking overlay layer.
type GlassPane interface {
	// Busy reports whether the overlay is blocking all input to the window.
	Busy() bool
}

// Window is a top-level container.
type Window interface {
	Component

	// GlassPane returns the window's overlay layer, or nil if it has none.
	GlassPane() GlassPane
}

// RootOf walks the parent chain of a component and returns its top-level
// window. It returns nil when the component is no longer attached to a
// window, which happens when an earlier key event caused the component to
// be removed or hidden (a dialog closing itself on key-pressed, for
// example).
func RootOf(c Component) Window {
	for c != nil {
		if w, ok := c.(Window); ok {
			return w
		}
		c = c.Parent()
	}
	return nil
}
