package action

import "github.com/dshills/keygate/internal/toolkit"

// Context is the focus context present at the moment of dispatch: the
// widget owning input focus and the active top-level window.
type Context struct {
	// Focus is the widget with input focus, or nil.
	Focus toolkit.Component

	// Window is the active top-level window, or nil.
	Window toolkit.Window
}

// Action is a named, context-sensitive command. Actions are registered by
// the application and outlive individual dispatches; the dispatch engine
// only reads them.
type Action interface {
	// Name returns the action's identifier, like "file.save".
	Name() string

	// Precedence returns the action's tier, fixed at creation.
	Precedence() Precedence

	// Valid reports whether the action applies given the current focus
	// and selection.
	Valid(ctx *Context) bool

	// Enabled reports whether the action may currently execute.
	Enabled(ctx *Context) bool

	// Execute performs the action's side effect. It must not block.
	Execute(ctx *Context)
}

// EnablementReporter is an optional capability for actions that give user
// feedback when they are valid but cannot currently fire.
type EnablementReporter interface {
	// ReportNotEnabled tells the user why the action did not run.
	ReportNotEnabled(ctx *Context)
}

// Def is a configurable Action built from plain functions. Nil predicates
// default to true; a nil ExecuteFn makes Execute a no-op.
type Def struct {
	// ActionName is the action's identifier.
	ActionName string

	// Tier is the action's precedence.
	Tier Precedence

	// ValidFn implements Valid.
	ValidFn func(ctx *Context) bool

	// EnabledFn implements Enabled.
	EnabledFn func(ctx *Context) bool

	// ExecuteFn implements Execute.
	ExecuteFn func(ctx *Context)

	// NotEnabledFn implements ReportNotEnabled. Leave nil for no feedback.
	NotEnabledFn func(ctx *Context)
}

// Name returns the action's identifier.
func (d *Def) Name() string { return d.ActionName }

// Precedence returns the action's tier.
func (d *Def) Precedence() Precedence { return d.Tier }

// Valid reports whether the action applies in the given context.
func (d *Def) Valid(ctx *Context) bool {
	if d.ValidFn == nil {
		return true
	}
	return d.ValidFn(ctx)
}

// Enabled reports whether the action may currently execute.
func (d *Def) Enabled(ctx *Context) bool {
	if d.EnabledFn == nil {
		return true
	}
	return d.EnabledFn(ctx)
}

// Execute performs the action's side effect.
func (d *Def) Execute(ctx *Context) {
	if d.ExecuteFn != nil {
		d.ExecuteFn(ctx)
	}
}

// ReportNotEnabled gives user feedback for a valid-but-disabled action.
func (d *Def) ReportNotEnabled(ctx *Context) {
	if d.NotEnabledFn != nil {
		d.NotEnabledFn(ctx)
	}
}
