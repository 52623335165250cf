package toolkit

// KeyListener receives the key events delivered to a single widget. A
// listener marks an event consumed by calling Event.Consume.
type KeyListener interface {
	// KeyPressed is called for key-pressed events.
	KeyPressed(event *Event)

	// KeyTyped is called for key-typed events.
	KeyTyped(event *Event)

	// KeyReleased is called for key-released events.
	KeyReleased(event *Event)
}

// ListenerHost is implemented by components that carry their own key
// listeners, registered outside the dispatcher's command catalog.
type ListenerHost interface {
	Component

	// KeyListeners returns the listeners registered on the component.
	KeyListeners() []KeyListener
}

// KeyListenerFuncs adapts plain functions to the KeyListener interface.
// Nil fields are skipped.
type KeyListenerFuncs struct {
	Pressed  func(event *Event)
	Typed    func(event *Event)
	Released func(event *Event)
}

// KeyPressed calls the Pressed function if set.
func (f KeyListenerFuncs) KeyPressed(event *Event) {
	if f.Pressed != nil {
		f.Pressed(event)
	}
}

// KeyTyped calls the Typed function if set.
func (f KeyListenerFuncs) KeyTyped(event *Event) {
	if f.Typed != nil {
		f.Typed(event)
	}
}

// KeyReleased calls the Released function if set.
func (f KeyListenerFuncs) KeyReleased(event *Event) {
	if f.Released != nil {
		f.Released(event)
	}
}
