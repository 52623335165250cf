package catalog_test

import (
	"errors"
	"testing"

	"github.com/dshills/keygate/internal/action"
	"github.com/dshills/keygate/internal/action/catalog"
	"github.com/dshills/keygate/internal/input/key"
	"github.com/dshills/keygate/internal/toolkit"
)

type testWindow struct{}

func (w *testWindow) Parent() toolkit.Component { return nil }
func (w *testWindow) Enabled() bool { return true }
func (w *testWindow) GlassPane() toolkit.GlassPane { return nil }

func def(name string) *action.Def {
	return &action.Def{ActionName: name, Tier: action.PrecedenceDefault}
}

func TestRegisterAndResolve(t *testing.T) {
	c := catalog.New()

	if _, err := c.Register(def("file.save"), "core"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := c.Bind(key.MustParse("Ctrl+S"), "file.save"); err != nil {
		t.Fatalf("Bind: %v", err)
	}

	act := c.ActionFor(key.MustParse("Ctrl+S"), &testWindow{})
	if act == nil || act.Name() != "file.save" {
		t.Fatalf("ActionFor = %v, want file.save", act)
	}
	if c.ActionFor(key.MustParse("Ctrl+Q"), &testWindow{}) != nil {
		t.Error("unbound stroke should resolve to nil")
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	c := catalog.New()

	if _, err := c.Register(def("file.save"), "core"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, err := c.Register(def("file.save"), "plugin")
	if !errors.Is(err, catalog.ErrDuplicateAction) {
		t.Errorf("err = %v, want ErrDuplicateAction", err)
	}
}

func TestBindUnknownAction(t *testing.T) {
	c := catalog.New()

	err := c.Bind(key.MustParse("Ctrl+S"), "no.such")
	if !errors.Is(err, catalog.ErrUnknownAction) {
		t.Errorf("err = %v, want ErrUnknownAction", err)
	}
}

func TestUnregisterRemovesBindings(t *testing.T) {
	c := catalog.New()

	token, err := c.Register(def("file.save"), "core")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := c.Bind(key.MustParse("Ctrl+S"), "file.save"); err != nil {
		t.Fatalf("Bind: %v", err)
	}

	if err := c.Unregister(token); err != nil {
		t.Fatalf("Unregister: %v", err)
	}

	if c.Action("file.save") != nil {
		t.Error("action should be gone after Unregister")
	}
	if c.ActionFor(key.MustParse("Ctrl+S"), &testWindow{}) != nil {
		t.Error("binding should be pruned with its action")
	}
}

func TestUnregisterUnknownToken(t *testing.T) {
	c := catalog.New()

	token, _ := c.Register(def("file.save"), "core")
	if err := c.Unregister(token); err != nil {
		t.Fatalf("Unregister: %v", err)
	}
	if err := c.Unregister(token); !errors.Is(err, catalog.ErrUnknownToken) {
		t.Errorf("second Unregister = %v, want ErrUnknownToken", err)
	}
}

func TestUnregisterBySource(t *testing.T) {
	c := catalog.New()

	mustRegister(t, c, def("file.save"), "core")
	mustRegister(t, c, def("plug.one"), "plugin:demo")
	mustRegister(t, c, def("plug.two"), "plugin:demo")

	if removed := c.UnregisterBySource("plugin:demo"); removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	if c.Action("file.save") == nil {
		t.Error("actions from other sources must survive")
	}
	if c.Action("plug.one") != nil || c.Action("plug.two") != nil {
		t.Error("plugin actions should be gone")
	}
}

func TestWindowOverrideShadowsGlobal(t *testing.T) {
	c := catalog.New()
	stroke := key.MustParse("Ctrl+W")
	w1 := &testWindow{}
	w2 := &testWindow{}

	mustRegister(t, c, def("tab.close"), "core")
	mustRegister(t, c, def("window.close"), "core")

	if err := c.Bind(stroke, "tab.close"); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if err := c.BindWindow(w1, stroke, "window.close"); err != nil {
		t.Fatalf("BindWindow: %v", err)
	}

	if got := c.ActionFor(stroke, w1); got == nil || got.Name() != "window.close" {
		t.Errorf("override window resolved %v, want window.close", got)
	}
	if got := c.ActionFor(stroke, w2); got == nil || got.Name() != "tab.close" {
		t.Errorf("other window resolved %v, want tab.close", got)
	}

	c.DropWindow(w1)
	if got := c.ActionFor(stroke, w1); got == nil || got.Name() != "tab.close" {
		t.Errorf("after DropWindow resolved %v, want tab.close", got)
	}
}

func TestReplaceBindings(t *testing.T) {
	c := catalog.New()

	mustRegister(t, c, def("file.save"), "core")
	mustRegister(t, c, def("file.open"), "core")
	if err := c.Bind(key.MustParse("Ctrl+S"), "file.save"); err != nil {
		t.Fatalf("Bind: %v", err)
	}

	err := c.ReplaceBindings(map[key.Stroke]string{
		key.MustParse("Ctrl+O"): "file.open",
	})
	if err != nil {
		t.Fatalf("ReplaceBindings: %v", err)
	}

	if c.ActionFor(key.MustParse("Ctrl+S"), &testWindow{}) != nil {
		t.Error("old global binding should be replaced")
	}
	if got := c.ActionFor(key.MustParse("Ctrl+O"), &testWindow{}); got == nil || got.Name() != "file.open" {
		t.Errorf("new binding resolved %v, want file.open", got)
	}
}

func TestReplaceBindingsSkipsUnknown(t *testing.T) {
	c := catalog.New()
	mustRegister(t, c, def("file.save"), "core")

	err := c.ReplaceBindings(map[key.Stroke]string{
		key.MustParse("Ctrl+S"): "file.save",
		key.MustParse("Ctrl+X"): "no.such",
	})
	if !errors.Is(err, catalog.ErrUnknownAction) {
		t.Fatalf("err = %v, want ErrUnknownAction", err)
	}

	// The known binding still applies despite the reported miss.
	if c.ActionFor(key.MustParse("Ctrl+S"), &testWindow{}) == nil {
		t.Error("known binding should survive a partial table")
	}
	if c.ActionFor(key.MustParse("Ctrl+X"), &testWindow{}) != nil {
		t.Error("unknown binding must not be installed")
	}
}

func TestNames(t *testing.T) {
	c := catalog.New()
	mustRegister(t, c, def("b.second"), "core")
	mustRegister(t, c, def("a.first"), "core")

	names := c.Names()
	if len(names) != 2 || names[0] != "a.first" || names[1] != "b.second" {
		t.Errorf("Names() = %v, want sorted [a.first b.second]", names)
	}
}

func mustRegister(t *testing.T, c *catalog.Catalog, act action.Action, source string) {
	t.Helper()
	if _, err := c.Register(act, source); err != nil {
		t.Fatalf("Register(%s): %v", act.Name(), err)
	}
}
