package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/keygate/internal/input/key"
)

// bindingFile is the on-disk shape of a binding table.
//
//	[[binding]]
//	keys = "Ctrl+S"
//	action = "file.save"
type bindingFile struct {
	Binding []bindingEntry `toml:"binding"`
}

type bindingEntry struct {
	Keys   string `toml:"keys"`
	Action string `toml:"action"`
}

// LoadBindings reads a TOML binding table from path. A missing file is
// not an error; it yields a nil table.
func LoadBindings(path string) (map[key.Stroke]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading binding file %s: %w", path, err)
	}
	return parseBindings(path, data)
}

// LoadBindingsFromReader reads a TOML binding table from r.
func LoadBindingsFromReader(r io.Reader) (map[key.Stroke]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading bindings: %w", err)
	}
	return parseBindings("<reader>", data)
}

func parseBindings(source string, data []byte) (map[key.Stroke]string, error) {
	var file bindingFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
	}

	bindings := make(map[key.Stroke]string, len(file.Binding))
	for i, b := range file.Binding {
		if b.Action == "" {
			return nil, &ParseError{
				Path:    source,
				Message: fmt.Sprintf("binding %d has no action", i+1),
			}
		}
		stroke, err := key.Parse(b.Keys)
		if err != nil {
			return nil, &ParseError{
				Path:    source,
				Message: fmt.Sprintf("binding %d: %v", i+1, err),
				Err:     err,
			}
		}
		bindings[stroke] = b.Action
	}
	return bindings, nil
}

// LoadFile loads a binding table from path and installs it as the
// catalog's global table.
func (c *Catalog) LoadFile(path string) error {
	bindings, err := LoadBindings(path)
	if err != nil {
		return err
	}
	if bindings == nil {
		return nil
	}
	return c.ReplaceBindings(bindings)
}

// ParseError describes a malformed binding file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
