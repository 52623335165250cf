package toolkit_test

import (
	"testing"

	"github.com/dshills/keygate/internal/input/key"
	"github.com/dshills/keygate/internal/toolkit"
)

func TestEventConsume(t *testing.T) {
	ev := toolkit.NewStrokeEvent(key.MustParse("Ctrl+S"), toolkit.PhasePressed, nil)

	if ev.Consumed() {
		t.Error("new event should not be consumed")
	}
	ev.Consume()
	if !ev.Consumed() {
		t.Error("event should be consumed after Consume")
	}
}

func TestEventStroke(t *testing.T) {
	stroke := key.MustParse("Alt+F4")
	ev := toolkit.NewStrokeEvent(stroke, toolkit.PhaseReleased, nil)

	if got := ev.Stroke(); got != stroke {
		t.Errorf("Stroke() = %v, want %v", got, stroke)
	}
}

func TestEventStrokeIgnoresPhase(t *testing.T) {
	stroke := key.MustParse("Ctrl+S")
	pressed := toolkit.NewStrokeEvent(stroke, toolkit.PhasePressed, nil)
	released := toolkit.NewStrokeEvent(stroke, toolkit.PhaseReleased, nil)

	if pressed.Stroke() != released.Stroke() {
		t.Error("stroke identity must not depend on phase")
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase toolkit.Phase
		want  string
	}{
		{toolkit.PhasePressed, "pressed"},
		{toolkit.PhaseTyped, "typed"},
		{toolkit.PhaseReleased, "released"},
		{toolkit.Phase(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}

func TestEventString(t *testing.T) {
	ev := toolkit.NewStrokeEvent(key.MustParse("Escape"), toolkit.PhasePressed, nil)
	if got := ev.String(); got != "pressed Escape" {
		t.Errorf("String() = %q", got)
	}
}
