package dispatch

import (
	"sync"
	"time"
)

// Outcome classifies how a dispatched event was resolved.
type Outcome uint8

const (
	// OutcomeBlocked means the event gate swallowed the event.
	OutcomeBlocked Outcome = iota

	// OutcomeContinuation means the event belonged to an armed command's
	// press/release sequence.
	OutcomeContinuation

	// OutcomeHook means a pre-dispatch hook consumed the event.
	OutcomeHook

	// OutcomeMenu means the menu-key handler consumed the event.
	OutcomeMenu

	// OutcomeUnbound means no action resolved; the host's normal
	// processing continues.
	OutcomeUnbound

	// OutcomeSystemArmed means a system-tier action was armed.
	OutcomeSystemArmed

	// OutcomeTextRouted means the event was routed to a text widget.
	OutcomeTextRouted

	// OutcomeListenerConsumed means a key listener on the focused widget
	// consumed the event.
	OutcomeListenerConsumed

	// OutcomeLocalBinding means the focused widget's own binding takes
	// the event through the host's normal processing.
	OutcomeLocalBinding

	// OutcomeInvalid means the resolved action had no usable context and
	// the event fell through.
	OutcomeInvalid

	// OutcomeNotEnabled means a valid-but-disabled action reported
	// feedback and the event was absorbed.
	OutcomeNotEnabled

	// OutcomeArmed means the resolved action was armed at its tier.
	OutcomeArmed
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeBlocked:
		return "blocked"
	case OutcomeContinuation:
		return "continuation"
	case OutcomeHook:
		return "hook"
	case OutcomeMenu:
		return "menu"
	case OutcomeUnbound:
		return "unbound"
	case OutcomeSystemArmed:
		return "system-armed"
	case OutcomeTextRouted:
		return "text-routed"
	case OutcomeListenerConsumed:
		return "listener-consumed"
	case OutcomeLocalBinding:
		return "local-binding"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeNotEnabled:
		return "not-enabled"
	case OutcomeArmed:
		return "armed"
	default:
		return "unknown"
	}
}

// Metrics collects dispatch statistics. Collection is opt-in via Config.
type Metrics struct {
	mu sync.RWMutex

	outcomes map[Outcome]uint64
	actions  map[string]*ActionMetrics

	totalDispatches uint64
	totalDuration   time.Duration
}

// ActionMetrics holds statistics for a single action.
type ActionMetrics struct {
	Name          string
	DispatchCount uint64
	ExecuteCount  uint64
	LastOutcome   Outcome
	LastDispatch  time.Time
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		outcomes: make(map[Outcome]uint64),
		actions:  make(map[string]*ActionMetrics),
	}
}

// Record records one dispatched event. actionName is "" when no action
// resolved.
func (m *Metrics) Record(outcome Outcome, actionName string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalDispatches++
	m.totalDuration += duration
	m.outcomes[outcome]++

	if actionName == "" {
		return
	}

	am := m.actions[actionName]
	if am == nil {
		am = &ActionMetrics{Name: actionName}
		m.actions[actionName] = am
	}
	am.DispatchCount++
	am.LastOutcome = outcome
	am.LastDispatch = time.Now()
}

// RecordExecute records an armed command's deferred execution.
func (m *Metrics) RecordExecute(actionName string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	am := m.actions[actionName]
	if am == nil {
		am = &ActionMetrics{Name: actionName}
		m.actions[actionName] = am
	}
	am.ExecuteCount++
}

// OutcomeCount returns the number of events resolved with the outcome.
func (m *Metrics) OutcomeCount(outcome Outcome) uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.outcomes[outcome]
}

// TotalDispatches returns the number of recorded dispatches.
func (m *Metrics) TotalDispatches() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalDispatches
}

// Action returns a copy of the statistics for an action, or nil.
func (m *Metrics) Action(name string) *ActionMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	am := m.actions[name]
	if am == nil {
		return nil
	}
	cp := *am
	return &cp
}

// Reset clears all collected statistics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.outcomes = make(map[Outcome]uint64)
	m.actions = make(map[string]*ActionMetrics)
	m.totalDispatches = 0
	m.totalDuration = 0
}
