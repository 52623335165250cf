package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/keygate/internal/action"
	"github.com/dshills/keygate/internal/input/key"
	"github.com/dshills/keygate/internal/toolkit"
)

var (
	// ErrDuplicateAction is returned when registering a name already taken.
	ErrDuplicateAction = errors.New("catalog: action name already registered")

	// ErrUnknownAction is returned when binding a stroke to a name that
	// has no registered action.
	ErrUnknownAction = errors.New("catalog: unknown action")

	// ErrUnknownToken is returned when unregistering with a token the
	// catalog did not issue.
	ErrUnknownToken = errors.New("catalog: unknown registration token")
)

// entry pairs a registered action with its registration bookkeeping.
type entry struct {
	act    action.Action
	token  uuid.UUID
	source string
}

// Catalog is a registry of named actions and the stroke bindings that
// trigger them. Bindings come in two layers: a global table consulted for
// every window, and per-window overrides that shadow the global table.
//
// A Catalog is safe for concurrent use.
type Catalog struct {
	mu sync.RWMutex

	actions map[string]*entry
	tokens  map[uuid.UUID]string

	global  map[key.Stroke]string
	windows map[toolkit.Window]map[key.Stroke]string
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		actions: make(map[string]*entry),
		tokens:  make(map[uuid.UUID]string),
		global:  make(map[key.Stroke]string),
		windows: make(map[toolkit.Window]map[key.Stroke]string),
	}
}

// Register adds an action under its name and returns a registration token
// the caller can later pass to Unregister. The source tag groups
// registrations from one origin, such as a plugin or script file, so they
// can be removed together with UnregisterBySource.
func (c *Catalog) Register(act action.Action, source string) (uuid.UUID, error) {
	name := act.Name()
	if name == "" {
		return uuid.Nil, errors.New("catalog: action has empty name")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.actions[name]; exists {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrDuplicateAction, name)
	}

	token := uuid.New()
	c.actions[name] = &entry{act: act, token: token, source: source}
	c.tokens[token] = name
	return token, nil
}

// Unregister removes the action registered under the token, along with
// every binding pointing at it.
func (c *Catalog) Unregister(token uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	name, ok := c.tokens[token]
	if !ok {
		return ErrUnknownToken
	}
	c.remove(name, token)
	return nil
}

// UnregisterBySource removes every action registered with the source tag
// and returns how many were removed.
func (c *Catalog) UnregisterBySource(source string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for name, e := range c.actions {
		if e.source == source {
			c.remove(name, e.token)
			removed++
		}
	}
	return removed
}

// remove deletes one registration and prunes its bindings. Callers hold
// the write lock.
func (c *Catalog) remove(name string, token uuid.UUID) {
	delete(c.actions, name)
	delete(c.tokens, token)

	for stroke, bound := range c.global {
		if bound == name {
			delete(c.global, stroke)
		}
	}
	for window, overrides := range c.windows {
		for stroke, bound := range overrides {
			if bound == name {
				delete(overrides, stroke)
			}
		}
		if len(overrides) == 0 {
			delete(c.windows, window)
		}
	}
}

// Action returns the registered action by name, or nil.
func (c *Catalog) Action(name string) action.Action {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e := c.actions[name]
	if e == nil {
		return nil
	}
	return e.act
}

// Names returns the registered action names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.actions))
	for name := range c.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bind maps a stroke to an action name in the global table, replacing any
// previous binding for the stroke. The action must be registered.
func (c *Catalog) Bind(stroke key.Stroke, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.actions[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}
	c.global[stroke] = name
	return nil
}

// Unbind removes the global binding for a stroke, if any.
func (c *Catalog) Unbind(stroke key.Stroke) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.global, stroke)
}

// BindWindow maps a stroke to an action name for one window only. Window
// bindings shadow the global table while that window is active.
func (c *Catalog) BindWindow(window toolkit.Window, stroke key.Stroke, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.actions[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}

	overrides := c.windows[window]
	if overrides == nil {
		overrides = make(map[key.Stroke]string)
		c.windows[window] = overrides
	}
	overrides[stroke] = name
	return nil
}

// DropWindow removes all bindings scoped to a window. Call it when the
// window closes.
func (c *Catalog) DropWindow(window toolkit.Window) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.windows, window)
}

// ReplaceBindings swaps the entire global binding table. Bindings naming
// unregistered actions are skipped and reported; the rest are applied
// atomically. Window overrides are untouched.
func (c *Catalog) ReplaceBindings(bindings map[key.Stroke]string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make(map[key.Stroke]string, len(bindings))
	var missing []string
	for stroke, name := range bindings {
		if _, ok := c.actions[name]; !ok {
			missing = append(missing, name)
			continue
		}
		next[stroke] = name
	}
	c.global = next

	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: %v", ErrUnknownAction, missing)
	}
	return nil
}

// ActionFor resolves the action bound to a stroke: the window's overrides
// first, then the global table. It implements action.Resolver.
func (c *Catalog) ActionFor(stroke key.Stroke, window toolkit.Window) action.Action {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if overrides := c.windows[window]; overrides != nil {
		if name, ok := overrides[stroke]; ok {
			if e := c.actions[name]; e != nil {
				return e.act
			}
		}
	}
	if name, ok := c.global[stroke]; ok {
		if e := c.actions[name]; e != nil {
			return e.act
		}
	}
	return nil
}

var _ action.Resolver = (*Catalog)(nil)
