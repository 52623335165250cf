package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/keygate/internal/action/catalog"
	"github.com/dshills/keygate/internal/input/key"
)

const sampleBindings = `
[[binding]]
keys = "Ctrl+S"
action = "file.save"

[[binding]]
keys = "F1"
action = "help.show"
`

func TestLoadBindingsFromReader(t *testing.T) {
	bindings, err := catalog.LoadBindingsFromReader(strings.NewReader(sampleBindings))
	if err != nil {
		t.Fatalf("LoadBindingsFromReader: %v", err)
	}

	if len(bindings) != 2 {
		t.Fatalf("len = %d, want 2", len(bindings))
	}
	if bindings[key.MustParse("Ctrl+S")] != "file.save" {
		t.Errorf("Ctrl+S bound to %q, want file.save", bindings[key.MustParse("Ctrl+S")])
	}
	if bindings[key.MustParse("F1")] != "help.show" {
		t.Errorf("F1 bound to %q, want help.show", bindings[key.MustParse("F1")])
	}
}

func TestLoadBindingsMissingFile(t *testing.T) {
	bindings, err := catalog.LoadBindings(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if bindings != nil {
		t.Errorf("bindings = %v, want nil", bindings)
	}
}

func TestLoadBindingsBadKeys(t *testing.T) {
	input := `
[[binding]]
keys = "Ctrl+"
action = "file.save"
`
	_, err := catalog.LoadBindingsFromReader(strings.NewReader(input))
	var perr *catalog.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want ParseError", err)
	}
}

func TestLoadBindingsMissingAction(t *testing.T) {
	input := `
[[binding]]
keys = "Ctrl+S"
`
	_, err := catalog.LoadBindingsFromReader(strings.NewReader(input))
	var perr *catalog.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want ParseError", err)
	}
}

func TestLoadBindingsBadTOML(t *testing.T) {
	_, err := catalog.LoadBindingsFromReader(strings.NewReader("[[binding"))
	var perr *catalog.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want ParseError", err)
	}
	if perr.Unwrap() == nil {
		t.Error("ParseError should wrap the TOML error")
	}
}

func TestLoadFileInstallsBindings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.toml")
	if err := os.WriteFile(path, []byte(sampleBindings), 0o644); err != nil {
		t.Fatal(err)
	}

	c := catalog.New()
	mustRegister(t, c, def("file.save"), "core")
	mustRegister(t, c, def("help.show"), "core")

	if err := c.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := c.ActionFor(key.MustParse("Ctrl+S"), &testWindow{}); got == nil || got.Name() != "file.save" {
		t.Errorf("Ctrl+S resolved %v, want file.save", got)
	}
}

func TestLoadFileMissingLeavesTable(t *testing.T) {
	c := catalog.New()
	mustRegister(t, c, def("file.save"), "core")
	if err := c.Bind(key.MustParse("Ctrl+S"), "file.save"); err != nil {
		t.Fatal(err)
	}

	if err := c.LoadFile(filepath.Join(t.TempDir(), "absent.toml")); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.ActionFor(key.MustParse("Ctrl+S"), &testWindow{}) == nil {
		t.Error("existing table should survive a missing file")
	}
}
