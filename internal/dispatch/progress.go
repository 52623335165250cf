package dispatch

import (
	"github.com/dshills/keygate/internal/action"
	"github.com/dshills/keygate/internal/toolkit"
)

// progress owns the two-phase press/release state of the command that won
// arbitration. At most one command is armed at any time; it is the
// dispatcher's only state that persists across events.
type progress struct {
	armed *action.Executable
}

// continuation reports whether the event belongs to an in-progress
// command sequence and is therefore already decided.
//
// While a command is armed, every event is absorbed until the matching
// release: some platforms deliver new presses before the release reaches
// the dispatcher. On the release the armed command executes, unless the
// focus owner has changed since arming, in which case the pending
// execution is forfeited silently rather than fired with stale context.
// It returns the command it executed, or nil when nothing fired.
func (p *progress) continuation(event *toolkit.Event, focus toolkit.Component) (bool, *action.Executable) {
	if p.armed == nil {
		return false, nil
	}
	if event.Phase == toolkit.PhaseReleased {
		armed := p.armed
		p.armed = nil
		if armed.Context().Focus == focus {
			armed.Execute()
			return true, armed
		}
	}
	return true, nil
}

// arm marks the command as pending execution on the matching release and
// consumes the event so the host toolkit never independently processes
// it. Arming while a command is already armed is ignored; the single
// armed slot is an invariant.
func (p *progress) arm(exec *action.Executable, event *toolkit.Event) {
	if p.armed != nil {
		return
	}
	p.armed = exec
	event.Consume()
}

// armedName returns the armed command's name, or "".
func (p *progress) armedName() string {
	if p.armed == nil {
		return ""
	}
	return p.armed.Name()
}
