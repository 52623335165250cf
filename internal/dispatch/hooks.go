package dispatch

import "github.com/dshills/keygate/internal/toolkit"

// PreDispatchHook runs before an event is arbitrated, after the event
// gate and continuation checks so hooks cannot break the armed-command
// invariant. Returning true consumes the event.
type PreDispatchHook func(event *toolkit.Event) bool

// PostDispatchHook observes an event after arbitration, with the decision
// the dispatcher returned to the host.
type PostDispatchHook func(event *toolkit.Event, handled bool)

// AddPreHook registers a pre-dispatch hook.
func (d *Dispatcher) AddPreHook(hook PreDispatchHook) {
	d.hookMu.Lock()
	defer d.hookMu.Unlock()
	d.preHooks = append(d.preHooks, hook)
}

// AddPostHook registers a post-dispatch hook.
func (d *Dispatcher) AddPostHook(hook PostDispatchHook) {
	d.hookMu.Lock()
	defer d.hookMu.Unlock()
	d.postHooks = append(d.postHooks, hook)
}

// runPreHooks returns true when a hook consumed the event.
func (d *Dispatcher) runPreHooks(event *toolkit.Event) bool {
	d.hookMu.RLock()
	hooks := d.preHooks
	d.hookMu.RUnlock()

	for _, hook := range hooks {
		if hook(event) {
			return true
		}
	}
	return false
}

func (d *Dispatcher) runPostHooks(event *toolkit.Event, handled bool) {
	d.hookMu.RLock()
	hooks := d.postHooks
	d.hookMu.RUnlock()

	for _, hook := range hooks {
		hook(event, handled)
	}
}
