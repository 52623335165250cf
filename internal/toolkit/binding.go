package toolkit

import "github.com/dshills/keygate/internal/input/key"

// BindingScope selects which of a component's binding maps to consult.
type BindingScope uint8

const (
	// ScopeFocused looks up bindings active while the component itself is
	// focused.
	ScopeFocused BindingScope = iota

	// ScopeAncestor looks up bindings active while the component is an
	// ancestor of the focus owner.
	ScopeAncestor
)

// String returns the scope name.
func (s BindingScope) String() string {
	switch s {
	case ScopeFocused:
		return "focused"
	case ScopeAncestor:
		return "ancestor"
	default:
		return "unknown"
	}
}

// Binding is a key binding registered directly on a component by the host
// toolkit's own binding system.
type Binding interface {
	// Accept is a fine-grained applicability check against the component
	// the binding would fire on. It may be false when Enabled is true; a
	// tree's cancel-edit binding, for example, only applies while an edit
	// is active.
	Accept(c Component) bool

	// Enabled reports whether the binding may currently fire.
	Enabled() bool
}

// BindingHost is implemented by components that carry their own key
// bindings. The lookup algorithm inside the hierarchy is the host's
// business; the dispatcher only asks whether a binding exists.
type BindingHost interface {
	Component

	// BindingFor returns the component's binding for the stroke in the
	// given scope, or nil.
	BindingFor(stroke key.Stroke, scope BindingScope) Binding
}

// FindBinding returns the component's binding for a stroke, consulting the
// focused scope first and then the ancestor scope. Returns nil when the
// component hosts no bindings or none match.
func FindBinding(c Component, stroke key.Stroke) Binding {
	host, ok := c.(BindingHost)
	if !ok {
		return nil
	}
	if b := host.BindingFor(stroke, ScopeFocused); b != nil {
		return b
	}
	return host.BindingFor(stroke, ScopeAncestor)
}
