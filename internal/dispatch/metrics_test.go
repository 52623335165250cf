package dispatch_test

import (
	"testing"

	"github.com/dshills/keygate/internal/action"
	"github.com/dshills/keygate/internal/dispatch"
	"github.com/dshills/keygate/internal/input/key"
	"github.com/dshills/keygate/internal/toolkit"
)

func newMetricsEnv(owner toolkit.Component) *env {
	e := &env{
		window:   &fakeWindow{},
		resolver: mapResolver{},
	}
	e.focus = &toolkit.StaticFocus{Owner: owner, Window: e.window}
	e.dispatcher = dispatch.New(dispatch.Config{
		Focus:         e.focus,
		Resolver:      e.resolver,
		EnableMetrics: true,
	})
	return e
}

func TestMetricsDisabledByDefault(t *testing.T) {
	e := newEnv(&widget{})
	if e.dispatcher.Metrics() != nil {
		t.Error("metrics should be nil unless enabled")
	}
}

func TestMetricsRecordsOutcomes(t *testing.T) {
	w := &widget{}
	e := newMetricsEnv(w)
	w.parent = e.window

	runs := 0
	e.resolver[key.MustParse("Ctrl+S")] = countingAction("file.save", action.PrecedenceDefault, &runs)

	e.press("Ctrl+G", w) // unbound
	e.press("Ctrl+S", w) // armed
	e.release("Ctrl+S", w)

	m := e.dispatcher.Metrics()
	if got := m.OutcomeCount(dispatch.OutcomeUnbound); got != 1 {
		t.Errorf("unbound = %d, want 1", got)
	}
	if got := m.OutcomeCount(dispatch.OutcomeArmed); got != 1 {
		t.Errorf("armed = %d, want 1", got)
	}
	if got := m.OutcomeCount(dispatch.OutcomeContinuation); got != 1 {
		t.Errorf("continuation = %d, want 1", got)
	}
	if got := m.TotalDispatches(); got != 3 {
		t.Errorf("total = %d, want 3", got)
	}
}

func TestMetricsRecordsActionExecution(t *testing.T) {
	w := &widget{}
	e := newMetricsEnv(w)
	w.parent = e.window

	runs := 0
	e.resolver[key.MustParse("Ctrl+S")] = countingAction("file.save", action.PrecedenceDefault, &runs)

	e.press("Ctrl+S", w)
	e.release("Ctrl+S", w)

	am := e.dispatcher.Metrics().Action("file.save")
	if am == nil {
		t.Fatal("expected metrics for file.save")
	}
	if am.ExecuteCount != 1 {
		t.Errorf("ExecuteCount = %d, want 1", am.ExecuteCount)
	}
	if am.DispatchCount == 0 {
		t.Error("DispatchCount should be recorded")
	}
}

func TestMetricsForfeitureNotCountedAsExecution(t *testing.T) {
	w1 := &widget{}
	w2 := &widget{}
	e := newMetricsEnv(w1)
	w1.parent = e.window
	w2.parent = e.window

	runs := 0
	e.resolver[key.MustParse("Ctrl+S")] = countingAction("file.save", action.PrecedenceDefault, &runs)

	e.press("Ctrl+S", w1)
	e.focus.Owner = w2
	e.release("Ctrl+S", w2)

	am := e.dispatcher.Metrics().Action("file.save")
	if am == nil {
		t.Fatal("expected metrics for file.save")
	}
	if am.ExecuteCount != 0 {
		t.Errorf("ExecuteCount = %d after forfeiture, want 0", am.ExecuteCount)
	}
}

func TestMetricsReset(t *testing.T) {
	w := &widget{}
	e := newMetricsEnv(w)
	w.parent = e.window

	e.press("Ctrl+G", w)

	m := e.dispatcher.Metrics()
	m.Reset()

	if m.TotalDispatches() != 0 {
		t.Error("Reset should clear totals")
	}
	if m.OutcomeCount(dispatch.OutcomeUnbound) != 0 {
		t.Error("Reset should clear outcome counts")
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome dispatch.Outcome
		want    string
	}{
		{dispatch.OutcomeBlocked, "blocked"},
		{dispatch.OutcomeContinuation, "continuation"},
		{dispatch.OutcomeArmed, "armed"},
		{dispatch.OutcomeNotEnabled, "not-enabled"},
		{dispatch.Outcome(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
