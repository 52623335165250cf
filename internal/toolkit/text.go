package toolkit

// TextInput is implemented by text-editing widgets. The dispatcher routes
// most unmodified keys straight to these so ordinary typing and built-in
// navigation keep working. Editability is deliberately not part of the
// interface: read-only text widgets still need copy and navigation keys.
type TextInput interface {
	Component

	// TextInput is a marker distinguishing text-editing widgets.
	TextInput()
}

// KeystrokeCapture is implemented by the specialized field used to record
// a new key assignment. While such a field is the event destination,
// system commands are suppressed so any keystroke can be captured.
type KeystrokeCapture interface {
	Component

	// CapturingKeystrokes reports whether the field is recording.
	CapturingKeystrokes() bool
}

// CellEditor is implemented by collection widgets (tables, trees) that can
// host an in-place cell edit.
type CellEditor interface {
	Component

	// Editing reports whether a cell edit is currently active.
	Editing() bool
}

// AncestorEditing walks the parent chain of a component and reports
// whether the nearest cell-editing ancestor has an active edit. Used to
// decide whether Escape belongs to a text widget embedded in a cell
// editor.
func AncestorEditing(c Component) bool {
	if c == nil {
		return false
	}
	for parent := c.Parent(); parent != nil; parent = parent.Parent() {
		if editor, ok := parent.(CellEditor); ok {
			return editor.Editing()
		}
	}
	return false
}
