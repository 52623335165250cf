package action

import (
	"errors"
	"fmt"
	"strings"
)

// Precedence is the priority class determining which category of consumer
// wins contention for a keystroke. Lower values win. The tier is fixed
// when an action is created.
type Precedence uint8

const (
	// PrecedenceSystem actions are reserved commands that win over every
	// other consumer, independent of focus context. They are resolved on
	// a fast path that bypasses validity and enablement gating.
	PrecedenceSystem Precedence = iota

	// PrecedenceListener actions run at the same priority as key
	// listeners registered directly on the focused widget.
	PrecedenceListener

	// PrecedenceBinding actions run at the same priority as the focused
	// widget's own key bindings.
	PrecedenceBinding

	// PrecedenceDefault actions run after the focused widget has had its
	// chance, as ordinary tool-level commands.
	PrecedenceDefault
)

// ErrUnknownPrecedence indicates a precedence name that is not part of
// the closed tier set.
var ErrUnknownPrecedence = errors.New("action: unknown precedence")

// String returns the tier name.
func (p Precedence) String() string {
	switch p {
	case PrecedenceSystem:
		return "system"
	case PrecedenceListener:
		return "listener"
	case PrecedenceBinding:
		return "binding"
	case PrecedenceDefault:
		return "default"
	default:
		return fmt.Sprintf("Precedence(%d)", p)
	}
}

// Known reports whether p is one of the defined tiers.
func (p Precedence) Known() bool {
	return p <= PrecedenceDefault
}

// ParsePrecedence parses a tier name (case-insensitive).
func ParsePrecedence(name string) (Precedence, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "system":
		return PrecedenceSystem, nil
	case "listener":
		return PrecedenceListener, nil
	case "binding":
		return PrecedenceBinding, nil
	case "default", "":
		return PrecedenceDefault, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPrecedence, name)
	}
}
