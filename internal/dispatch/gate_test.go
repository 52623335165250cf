package dispatch_test

import (
	"testing"

	"github.com/dshills/keygate/internal/action"
	"github.com/dshills/keygate/internal/input/key"
)

func TestGateAbsorbsDanglingSource(t *testing.T) {
	// The source widget's parent chain no longer reaches a window: an
	// earlier key-pressed event closed its dialog. The dangling release
	// must not reach anyone.
	w := &widget{}
	e := newEnv(w)
	w.parent = e.window

	runs := 0
	e.resolver[key.MustParse("Escape")] = countingAction("dialog.close", action.PrecedenceDefault, &runs)

	orphan := &widget{parent: &widget{}}
	if !e.release("Escape", orphan) {
		t.Error("dangling event should be absorbed")
	}
	if runs != 0 {
		t.Errorf("runs = %d, want 0", runs)
	}
}

func TestGateAbsorbsWhileGlassPaneBusy(t *testing.T) {
	w := &widget{}
	e := newEnv(w)
	glass := &fakeGlass{busy: true}
	e.window.glass = glass
	w.parent = e.window

	runs := 0
	e.resolver[key.MustParse("Ctrl+S")] = countingAction("file.save", action.PrecedenceDefault, &runs)

	if !e.press("Ctrl+S", w) {
		t.Error("busy glass pane should block all input")
	}
	if runs != 0 {
		t.Errorf("runs = %d, want 0", runs)
	}

	// Input flows again once the overlay clears.
	glass.busy = false
	if !e.press("Ctrl+S", w) {
		t.Error("press should arm after the overlay clears")
	}
	e.release("Ctrl+S", w)
	if runs != 1 {
		t.Errorf("runs = %d, want 1", runs)
	}
}

func TestGatePassesSourcelessEvents(t *testing.T) {
	// Events synthesized outside the widget hierarchy still get
	// arbitrated.
	w := &widget{}
	e := newEnv(w)
	w.parent = e.window

	runs := 0
	e.resolver[key.MustParse("Ctrl+S")] = countingAction("file.save", action.PrecedenceDefault, &runs)

	if !e.press("Ctrl+S", nil) {
		t.Error("sourceless press should be arbitrated and arm")
	}
	e.release("Ctrl+S", nil)
	if runs != 1 {
		t.Errorf("runs = %d, want 1", runs)
	}
}

func TestGateIgnoresIdleGlassPane(t *testing.T) {
	w := &widget{}
	e := newEnv(w)
	e.window.glass = &fakeGlass{busy: false}
	w.parent = e.window

	if e.press("Ctrl+G", w) {
		t.Error("idle glass pane must not block; unbound stroke falls through")
	}
}
