package action

// Executable is an Action bound to the focus context captured at dispatch
// time. Validity and enablement are evaluated exactly once, against that
// context; an Executable is created fresh per event and discarded after
// the event resolves, except while armed for execution on key release.
type Executable struct {
	action   Action
	ctx      *Context
	valid    bool
	enabled  bool
	executed bool
}

// Resolve binds an action to a focus context, evaluating its predicates.
func Resolve(a Action, ctx *Context) *Executable {
	return &Executable{
		action:  a,
		ctx:     ctx,
		valid:   a.Valid(ctx),
		enabled: a.Enabled(ctx),
	}
}

// Name returns the bound action's identifier.
func (e *Executable) Name() string { return e.action.Name() }

// Precedence returns the bound action's tier.
func (e *Executable) Precedence() Precedence { return e.action.Precedence() }

// Context returns the focus context the action was resolved against.
func (e *Executable) Context() *Context { return e.ctx }

// Valid reports the validity evaluated at resolution time.
func (e *Executable) Valid() bool { return e.valid }

// Enabled reports the enablement evaluated at resolution time.
func (e *Executable) Enabled() bool { return e.enabled }

// Execute runs the bound action. At most one execution results per
// Executable; further calls are ignored.
func (e *Executable) Execute() {
	if e.executed {
		return
	}
	e.executed = true
	e.action.Execute(e.ctx)
}

// Executed reports whether Execute has already run.
func (e *Executable) Executed() bool { return e.executed }

// ReportNotEnabled invokes the action's feedback hook, if it has one.
func (e *Executable) ReportNotEnabled() {
	if r, ok := e.action.(EnablementReporter); ok {
		r.ReportNotEnabled(e.ctx)
	}
}
