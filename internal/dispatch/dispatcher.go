package dispatch

import (
	"fmt"
	"sync"
	"time"

	"github.com/dshills/keygate/internal/action"
	"github.com/dshills/keygate/internal/toolkit"
)

// Config configures a Dispatcher.
type Config struct {
	// Focus supplies the focus owner and active window. Required.
	Focus toolkit.FocusProvider

	// Resolver maps keystrokes to registered actions. Required.
	Resolver action.Resolver

	// MenuKeys handles events while menu navigation is active. Optional;
	// defaults to no menu handling.
	MenuKeys MenuKeyHandler

	// EnableMetrics turns on dispatch statistics collection.
	EnableMetrics bool
}

// Dispatcher arbitrates key events between system commands, the focused
// widget's listeners and bindings, tool-level commands, and the host
// toolkit's fallback chain.
//
// All methods except hook registration must be called from the host's
// single event-processing thread; dispatch is never reentrant.
type Dispatcher struct {
	focus    toolkit.FocusProvider
	resolver action.Resolver
	menuKeys MenuKeyHandler

	progress progress

	metrics *Metrics

	hookMu    sync.RWMutex
	preHooks  []PreDispatchHook
	postHooks []PostDispatchHook
}

// New creates a dispatcher.
func New(cfg Config) *Dispatcher {
	d := &Dispatcher{
		focus:    cfg.Focus,
		resolver: cfg.Resolver,
		menuKeys: cfg.MenuKeys,
	}
	if d.menuKeys == nil {
		d.menuKeys = NopMenuKeys{}
	}
	if cfg.EnableMetrics {
		d.metrics = NewMetrics()
	}
	return d
}

// SetFocusProvider substitutes the focus source. This is the dependency
// injection seam for tests and embedding hosts.
func (d *Dispatcher) SetFocusProvider(fp toolkit.FocusProvider) {
	d.focus = fp
}

// Metrics returns the dispatch statistics collector, or nil when metrics
// are disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Dispatch arbitrates one key event. It returns true when the event was
// fully handled and false when the host's normal processing should
// continue.
//
// The decision procedure short-circuits on the first consumer that
// claims the event:
//
//  1. The event gate swallows blocked input.
//  2. An armed command's press/release sequence absorbs everything until
//     the matching release.
//  3. Menu navigation, while active, takes the event.
//  4. Without a resolved action the event falls through to the host.
//  5. A system-tier action arms immediately, before any widget gets a
//     chance, unless a keystroke-capture field is recording.
//  6. Events belonging to a focused text widget fall through to it.
//  7. Key listeners on the focused widget may consume the event.
//  8. An applicable, enabled local binding takes the event through the
//     host's own binding infrastructure.
//  9. An invalid action means no usable context; fall through so keys
//     like Escape still reach host widgets.
//  10. A valid-but-disabled action reports feedback and absorbs the
//     event; further propagation would behave unpredictably.
//  11. Otherwise the action arms at its declared tier.
func (d *Dispatcher) Dispatch(event *toolkit.Event) bool {
	start := time.Now()

	handled, outcome, actionName := d.arbitrate(event)

	if d.metrics != nil {
		d.metrics.Record(outcome, actionName, time.Since(start))
	}
	d.runPostHooks(event, handled)
	return handled
}

func (d *Dispatcher) arbitrate(event *toolkit.Event) (bool, Outcome, string) {
	if blocked(event) {
		return true, OutcomeBlocked, ""
	}

	// Always finish processing the key sequence a command was armed on.
	focusOwner := d.focus.FocusOwner()
	armedName := d.progress.armedName()
	if handled, executed := d.progress.continuation(event, focusOwner); handled {
		if executed != nil && d.metrics != nil {
			d.metrics.RecordExecute(executed.Name())
		}
		return true, OutcomeContinuation, armedName
	}

	if d.runPreHooks(event) {
		return true, OutcomeHook, ""
	}

	// Tool commands are ignored while a menu is open.
	if d.menuKeys.ProcessMenuKey(event) {
		return true, OutcomeMenu, ""
	}

	act := d.actionForEvent(event)
	if act == nil {
		return false, OutcomeUnbound, ""
	}

	exec := action.Resolve(act, &action.Context{
		Focus:  focusOwner,
		Window: d.focus.ActiveWindow(),
	})

	// System actions are a higher priority and can always be processed.
	if d.processSystemPrecedence(exec, event) {
		return true, OutcomeSystemArmed, exec.Name()
	}

	if routedToText(event, focusOwner) {
		return false, OutcomeTextRouted, exec.Name()
	}

	// Client programming gets the first chance: listeners registered on
	// the focused widget process the event before the action system.
	if d.processKeyListeners(event, focusOwner) {
		return true, OutcomeListenerConsumed, exec.Name()
	}

	// An applicable, enabled binding on the focused widget runs through
	// the host's own binding infrastructure, not here.
	if d.hasLocalBinding(event, focusOwner) {
		return false, OutcomeLocalBinding, exec.Name()
	}

	if !exec.Valid() {
		// No usable context. Let all keystrokes go to the host so keys
		// like Escape still work on its widgets.
		return false, OutcomeInvalid, exec.Name()
	}

	if !exec.Enabled() {
		// The focused widget wants nothing to do with this event and the
		// user pressed a real binding that cannot currently fire. Stop
		// all further processing to keep behavior predictable.
		exec.ReportNotEnabled()
		return true, OutcomeNotEnabled, exec.Name()
	}

	// Arm the action at its declared tier. Reaching the panic means a
	// tier was added without updating this procedure.
	if d.processAtPrecedence(action.PrecedenceListener, exec, event) ||
		d.processAtPrecedence(action.PrecedenceBinding, exec, event) ||
		d.processAtPrecedence(action.PrecedenceDefault, exec, event) {
		return true, OutcomeArmed, exec.Name()
	}
	panic(fmt.Sprintf("dispatch: action %q declares unknown precedence %v",
		exec.Name(), exec.Precedence()))
}

// actionForEvent resolves the registered action for the event's stroke in
// the context of the active window. Actions trigger on key-pressed only;
// typed and released events never resolve, so a command is always armed on
// the press and a stray release falls through. Without an active window
// there is no context to resolve against.
func (d *Dispatcher) actionForEvent(event *toolkit.Event) action.Action {
	if event.Phase != toolkit.PhasePressed {
		return nil
	}
	window := d.focus.ActiveWindow()
	if window == nil {
		return nil
	}
	return d.resolver.ActionFor(event.Stroke(), window)
}

// processSystemPrecedence arms a system-tier action immediately,
// bypassing validity and enablement gating: system commands must be
// unconditionally available regardless of focus context.
//
// The one exception is the keystroke-capture field used to record a new
// key assignment. While it is the event's destination, system actions are
// suppressed so the user can assign any keystroke, including ones a
// system command would otherwise claim.
func (d *Dispatcher) processSystemPrecedence(exec *action.Executable, event *toolkit.Event) bool {
	if d.capturingKeystrokes(event) {
		return false
	}
	if exec.Precedence() != action.PrecedenceSystem {
		return false
	}
	d.progress.arm(exec, event)
	return true
}

func (d *Dispatcher) capturingKeystrokes(event *toolkit.Event) bool {
	destination := event.Source
	if destination == nil {
		destination = d.focus.FocusOwner()
	}
	capture, ok := destination.(toolkit.KeystrokeCapture)
	return ok && capture.CapturingKeystrokes()
}

// processKeyListeners invokes every key listener registered on the focus
// owner with the phase-specific callback. Consumption is the logical OR
// of the invoked listeners' consumed flag.
func (d *Dispatcher) processKeyListeners(event *toolkit.Event, focusOwner toolkit.Component) bool {
	host, ok := focusOwner.(toolkit.ListenerHost)
	if !ok {
		return false
	}

	for _, listener := range host.KeyListeners() {
		switch event.Phase {
		case toolkit.PhasePressed:
			listener.KeyPressed(event)
		case toolkit.PhaseTyped:
			listener.KeyTyped(event)
		case toolkit.PhaseReleased:
			listener.KeyReleased(event)
		}
	}
	return event.Consumed()
}

// hasLocalBinding reports whether the focus owner has a binding for the
// event's stroke that is both applicable and enabled. Accept is checked
// before Enabled since it can be the more specific of the two.
func (d *Dispatcher) hasLocalBinding(event *toolkit.Event, focusOwner toolkit.Component) bool {
	if focusOwner == nil || !focusOwner.Enabled() {
		return false
	}

	binding := toolkit.FindBinding(focusOwner, event.Stroke())
	if binding == nil {
		return false
	}
	if !binding.Accept(focusOwner) {
		return false
	}
	return binding.Enabled()
}

// processAtPrecedence arms the action when its declared tier matches.
func (d *Dispatcher) processAtPrecedence(tier action.Precedence, exec *action.Executable, event *toolkit.Event) bool {
	if exec.Precedence() != tier {
		return false
	}
	d.progress.arm(exec, event)
	return true
}
