package dispatch_test

import (
	"testing"

	"github.com/dshills/keygate/internal/action"
	"github.com/dshills/keygate/internal/dispatch"
	"github.com/dshills/keygate/internal/input/key"
	"github.com/dshills/keygate/internal/toolkit"
)

// fakePipeline records registered dispatch functions.
type fakePipeline struct {
	fns []func(*toolkit.Event) bool
}

func (p *fakePipeline) AddKeyEventDispatcher(fn func(*toolkit.Event) bool) {
	p.fns = append(p.fns, fn)
}

// deliver runs an event through every registered function, counting how
// many handled it.
func (p *fakePipeline) deliver(ev *toolkit.Event) int {
	handled := 0
	for _, fn := range p.fns {
		if fn(ev) {
			handled++
		}
	}
	return handled
}

func TestInstallIdempotent(t *testing.T) {
	defer dispatch.Uninstall()

	w := &widget{}
	e := newEnv(w)
	w.parent = e.window

	pipeline := &fakePipeline{}
	first := dispatch.Install(e.dispatcher, pipeline)

	other := dispatch.New(dispatch.Config{Focus: e.focus, Resolver: e.resolver})
	second := dispatch.Install(other, pipeline)

	if first != e.dispatcher {
		t.Error("Install should return the installed dispatcher")
	}
	if second != first {
		t.Error("second Install must return the already-installed dispatcher")
	}
	if len(pipeline.fns) != 1 {
		t.Fatalf("pipeline registrations = %d, want 1", len(pipeline.fns))
	}
}

func TestInstalledEventHandledOnce(t *testing.T) {
	defer dispatch.Uninstall()

	w := &widget{}
	e := newEnv(w)
	w.parent = e.window

	runs := 0
	e.resolver[key.MustParse("Ctrl+S")] = countingAction("file.save", action.PrecedenceDefault, &runs)

	pipeline := &fakePipeline{}
	dispatch.Install(e.dispatcher, pipeline)
	dispatch.Install(e.dispatcher, pipeline)

	press := toolkit.NewStrokeEvent(key.MustParse("Ctrl+S"), toolkit.PhasePressed, w)
	if got := pipeline.deliver(press); got != 1 {
		t.Errorf("press handled by %d dispatchers, want 1", got)
	}

	release := toolkit.NewStrokeEvent(key.MustParse("Ctrl+S"), toolkit.PhaseReleased, w)
	pipeline.deliver(release)
	if runs != 1 {
		t.Errorf("runs = %d, want 1", runs)
	}
}

func TestInstalledAccessor(t *testing.T) {
	defer dispatch.Uninstall()

	if dispatch.Installed() != nil {
		t.Fatal("Installed should be nil before Install")
	}

	w := &widget{}
	e := newEnv(w)
	dispatch.Install(e.dispatcher, &fakePipeline{})

	if dispatch.Installed() != e.dispatcher {
		t.Error("Installed should return the installed dispatcher")
	}

	dispatch.Uninstall()
	if dispatch.Installed() != nil {
		t.Error("Installed should be nil after Uninstall")
	}
}
