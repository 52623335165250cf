package luacmd

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keygate/internal/action"
	"github.com/dshills/keygate/internal/action/catalog"
	"github.com/dshills/keygate/internal/input/key"
)

// handlerTableKey is the Lua global holding handler references so the
// collector cannot reclaim them while an action is registered.
const handlerTableKey = "_keygate_handlers"

// Provider loads Lua scripts that register actions with a catalog.
type Provider struct {
	catalog *catalog.Catalog
	source  string

	L          *lua.LState
	handlerTbl *lua.LTable
	lastErr    error
}

// New creates a provider registering under the given source tag. Actions
// from all scripts the provider loads share the tag and are removed
// together on Close.
func New(c *catalog.Catalog, source string) *Provider {
	L := lua.NewState()

	p := &Provider{
		catalog: c,
		source:  "lua:" + source,
		L:       L,
	}

	p.handlerTbl = L.NewTable()
	L.SetGlobal(handlerTableKey, p.handlerTbl)

	mod := L.NewTable()
	L.SetField(mod, "register", L.NewFunction(p.register))
	L.SetGlobal("keygate", mod)

	return p
}

// Source returns the catalog source tag for this provider.
func (p *Provider) Source() string {
	return p.source
}

// LoadFile runs a script file in the provider's Lua state.
func (p *Provider) LoadFile(path string) error {
	p.lastErr = nil
	if err := p.L.DoFile(path); err != nil {
		return fmt.Errorf("luacmd: running %s: %w", path, err)
	}
	return p.lastErr
}

// LoadString runs script source in the provider's Lua state.
func (p *Provider) LoadString(source string) error {
	p.lastErr = nil
	if err := p.L.DoString(source); err != nil {
		return fmt.Errorf("luacmd: running script: %w", err)
	}
	return p.lastErr
}

// Close unregisters every action the provider's scripts registered and
// shuts down the Lua state. The provider cannot be reused.
func (p *Provider) Close() {
	p.catalog.UnregisterBySource(p.source)
	p.L.SetGlobal(handlerTableKey, lua.LNil)
	p.handlerTbl = nil
	p.L.Close()
}

// register(opts) implements keygate.register.
//
// opts must include name and execute. Optional fields: tier ("system",
// "listener", "binding", or "default"), valid and enabled predicate
// functions, and keys, a stroke spec to bind globally.
func (p *Provider) register(L *lua.LState) int {
	opts := L.CheckTable(1)

	name := tableString(L, opts, "name")
	if name == "" {
		L.ArgError(1, "name is required")
		return 0
	}

	execute := L.GetField(opts, "execute")
	if execute.Type() != lua.LTFunction {
		L.ArgError(1, "execute must be a function")
		return 0
	}

	tier, err := action.ParsePrecedence(tableString(L, opts, "tier"))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}

	valid := L.GetField(opts, "valid")
	enabled := L.GetField(opts, "enabled")

	// Pin the handlers before the catalog can call them.
	handlers := L.NewTable()
	L.SetField(handlers, "execute", execute)
	L.SetField(handlers, "valid", valid)
	L.SetField(handlers, "enabled", enabled)
	p.handlerTbl.RawSetString(name, handlers)

	def := &action.Def{
		ActionName: name,
		Tier:       tier,
		ExecuteFn: func(*action.Context) {
			p.call(name, "execute")
		},
	}
	if valid.Type() == lua.LTFunction {
		def.ValidFn = func(*action.Context) bool {
			return p.predicate(name, "valid")
		}
	}
	if enabled.Type() == lua.LTFunction {
		def.EnabledFn = func(*action.Context) bool {
			return p.predicate(name, "enabled")
		}
	}

	if _, err := p.catalog.Register(def, p.source); err != nil {
		p.handlerTbl.RawSetString(name, lua.LNil)
		L.RaiseError("register: %v", err)
		return 0
	}

	if spec := tableString(L, opts, "keys"); spec != "" {
		stroke, err := key.Parse(spec)
		if err != nil {
			L.RaiseError("register: keys: %v", err)
			return 0
		}
		if err := p.catalog.Bind(stroke, name); err != nil {
			L.RaiseError("register: %v", err)
			return 0
		}
	}

	return 0
}

// call invokes a scripted handler, discarding its results. Script errors
// surface on the next LoadFile or LoadString return.
func (p *Provider) call(name, field string) {
	fn := p.handler(name, field)
	if fn == lua.LNil {
		return
	}

	p.L.Push(fn)
	if err := p.L.PCall(0, 0, nil); err != nil {
		p.lastErr = fmt.Errorf("luacmd: action %s %s: %w", name, field, err)
	}
}

// predicate invokes a scripted predicate and truth-tests its result.
// A scripting error counts as false.
func (p *Provider) predicate(name, field string) bool {
	fn := p.handler(name, field)
	if fn == lua.LNil {
		return true
	}

	p.L.Push(fn)
	if err := p.L.PCall(0, 1, nil); err != nil {
		p.lastErr = fmt.Errorf("luacmd: action %s %s: %w", name, field, err)
		return false
	}
	ret := p.L.Get(-1)
	p.L.Pop(1)
	return lua.LVAsBool(ret)
}

func (p *Provider) handler(name, field string) lua.LValue {
	if p.handlerTbl == nil {
		return lua.LNil
	}
	handlers := p.handlerTbl.RawGetString(name)
	tbl, ok := handlers.(*lua.LTable)
	if !ok {
		return lua.LNil
	}
	fn := tbl.RawGetString(field)
	if fn.Type() != lua.LTFunction {
		return lua.LNil
	}
	return fn
}

func tableString(L *lua.LState, tbl *lua.LTable, field string) string {
	v := L.GetField(tbl, field)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// Err returns the most recent scripting error raised by a handler since
// the last script load, or nil.
func (p *Provider) Err() error {
	return p.lastErr
}
