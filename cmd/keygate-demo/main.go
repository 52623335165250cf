// Package main is an interactive terminal demo of the keygate dispatch
// engine. It builds a tiny widget tree, registers a handful of actions,
// and shows how each keystroke is arbitrated.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keygate/internal/action"
	"github.com/dshills/keygate/internal/action/catalog"
	"github.com/dshills/keygate/internal/action/luacmd"
	"github.com/dshills/keygate/internal/dispatch"
	"github.com/dshills/keygate/internal/input/key"
	"github.com/dshills/keygate/internal/toolkit"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

type options struct {
	bindingsPath string
	scriptPath   string
	watch        bool
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.bindingsPath, "bindings", "", "Path to a TOML binding file")
	flag.StringVar(&opts.scriptPath, "script", "", "Path to a Lua action script")
	flag.BoolVar(&opts.watch, "watch", false, "Reload the binding file when it changes")

	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "keygate-demo - interactive key dispatch demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: keygate-demo [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+Q   quit (system tier, always wins)\n")
		fmt.Fprintf(os.Stderr, "  Tab      cycle focus between the panel and the text field\n")
		fmt.Fprintf(os.Stderr, "  F1       show help (default tier)\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+L   clear the event log\n")
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("keygate-demo %s (%s)\n", version, commit)
		os.Exit(0)
	}

	return opts
}

func run() int {
	opts := parseFlags()

	d, err := newDemo(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer d.shutdown()

	if err := d.loop(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// demoWindow is the single top-level window of the demo.
type demoWindow struct {
	glass glassPane
}

func (w *demoWindow) Parent() toolkit.Component { return nil }
func (w *demoWindow) Enabled() bool { return true }
func (w *demoWindow) GlassPane() toolkit.GlassPane { return &w.glass }

type glassPane struct {
	busy bool
}

func (g *glassPane) Busy() bool { return g.busy }

// panel is the plain focusable widget. It carries a key listener that
// consumes the space bar, to show listener-tier arbitration.
type panel struct {
	window  *demoWindow
	spaces  int
	listens []toolkit.KeyListener
}

func newPanel(window *demoWindow) *panel {
	p := &panel{window: window}
	p.listens = []toolkit.KeyListener{toolkit.KeyListenerFuncs{
		Pressed: func(ev *toolkit.Event) {
			if ev.Key == key.KeyRune && ev.Rune == ' ' && ev.Modifiers == key.ModNone {
				p.spaces++
				ev.Consume()
			}
		},
	}}
	return p
}

func (p *panel) Parent() toolkit.Component { return p.window }
func (p *panel) Enabled() bool { return true }
func (p *panel) KeyListeners() []toolkit.KeyListener { return p.listens }

// textField is the focusable text widget. Unmodified keys route to it
// instead of triggering actions.
type textField struct {
	window  *demoWindow
	content []rune
}

func (t *textField) Parent() toolkit.Component { return t.window }
func (t *textField) Enabled() bool { return true }
func (t *textField) TextInput() {}

func (t *textField) typeRune(r rune) {
	t.content = append(t.content, r)
}

func (t *textField) backspace() {
	if len(t.content) > 0 {
		t.content = t.content[:len(t.content)-1]
	}
}

// appFocus is the demo's focus provider.
type appFocus struct {
	owner  toolkit.Component
	window toolkit.Window
}

func (f *appFocus) FocusOwner() toolkit.Component { return f.owner }
func (f *appFocus) ActiveWindow() toolkit.Window { return f.window }

// pipeline feeds synthesized events to whatever dispatch function is
// installed, standing in for a host toolkit's event queue.
type pipeline struct {
	dispatchFn func(*toolkit.Event) bool
}

func (p *pipeline) AddKeyEventDispatcher(fn func(*toolkit.Event) bool) {
	p.dispatchFn = fn
}

func (p *pipeline) deliver(ev *toolkit.Event) bool {
	if p.dispatchFn == nil {
		return false
	}
	return p.dispatchFn(ev)
}

type demo struct {
	screen tcell.Screen

	window *demoWindow
	panel  *panel
	field  *textField
	focus  *appFocus

	catalog  *catalog.Catalog
	watcher  *catalog.Watcher
	lua      *luacmd.Provider
	pipeline *pipeline

	log      []string
	helpOpen bool
	quit     bool
}

func newDemo(opts options) (*demo, error) {
	d := &demo{window: &demoWindow{}}
	d.panel = newPanel(d.window)
	d.field = &textField{window: d.window}
	d.focus = &appFocus{owner: d.panel, window: d.window}
	d.catalog = catalog.New()
	d.pipeline = &pipeline{}

	if err := d.registerActions(); err != nil {
		return nil, err
	}

	if opts.bindingsPath != "" {
		if err := d.catalog.LoadFile(opts.bindingsPath); err != nil {
			return nil, err
		}
		if opts.watch {
			w, err := catalog.NewWatcher(d.catalog, opts.bindingsPath, 200*time.Millisecond)
			if err != nil {
				return nil, err
			}
			w.OnReload = func(err error) {
				if err != nil {
					d.logf("reload failed: %v", err)
				} else {
					d.logf("bindings reloaded")
				}
			}
			d.watcher = w
		}
	}

	if opts.scriptPath != "" {
		d.lua = luacmd.New(d.catalog, "demo")
		if err := d.lua.LoadFile(opts.scriptPath); err != nil {
			return nil, err
		}
	}

	dispatcher := dispatch.New(dispatch.Config{
		Focus:         d.focus,
		Resolver:      d.catalog,
		EnableMetrics: true,
	})
	dispatch.Install(dispatcher, d.pipeline)

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	d.screen = screen

	return d, nil
}

func (d *demo) registerActions() error {
	defs := []struct {
		def  *action.Def
		keys string
	}{
		{
			def: &action.Def{
				ActionName: "app.quit",
				Tier:       action.PrecedenceSystem,
				ExecuteFn:  func(*action.Context) { d.quit = true },
			},
			keys: "Ctrl+Q",
		},
		{
			def: &action.Def{
				ActionName: "focus.next",
				Tier:       action.PrecedenceSystem,
				ExecuteFn:  func(*action.Context) { d.cycleFocus() },
			},
			keys: "Tab",
		},
		{
			def: &action.Def{
				ActionName: "help.show",
				Tier:       action.PrecedenceDefault,
				ExecuteFn:  func(*action.Context) { d.helpOpen = !d.helpOpen },
			},
			keys: "F1",
		},
		{
			def: &action.Def{
				ActionName: "log.clear",
				Tier:       action.PrecedenceDefault,
				ExecuteFn:  func(*action.Context) { d.log = nil },
			},
			keys: "Ctrl+L",
		},
		{
			def: &action.Def{
				ActionName: "text.discard",
				Tier:       action.PrecedenceBinding,
				ValidFn: func(ctx *action.Context) bool {
					_, ok := ctx.Focus.(*textField)
					return ok
				},
				EnabledFn: func(ctx *action.Context) bool {
					f, ok := ctx.Focus.(*textField)
					return ok && len(f.content) > 0
				},
				ExecuteFn: func(ctx *action.Context) {
					if f, ok := ctx.Focus.(*textField); ok {
						f.content = nil
					}
				},
				NotEnabledFn: func(*action.Context) {
					d.logf("text.discard: nothing to discard")
				},
			},
			keys: "Ctrl+D",
		},
	}

	for _, r := range defs {
		if _, err := d.catalog.Register(r.def, "demo"); err != nil {
			return err
		}
		if err := d.catalog.Bind(key.MustParse(r.keys), r.def.ActionName); err != nil {
			return err
		}
	}
	return nil
}

func (d *demo) cycleFocus() {
	if d.focus.owner == d.panel {
		d.focus.owner = d.field
	} else {
		d.focus.owner = d.panel
	}
}

func (d *demo) shutdown() {
	if d.screen != nil {
		d.screen.Fini()
	}
	if d.watcher != nil {
		d.watcher.Close()
	}
	if d.lua != nil {
		d.lua.Close()
	}
	dispatch.Uninstall()
}

func (d *demo) loop() error {
	for !d.quit {
		d.draw()

		switch ev := d.screen.PollEvent().(type) {
		case *tcell.EventResize:
			d.screen.Sync()
		case *tcell.EventKey:
			d.handleKey(ev)
		case nil:
			return nil
		}
	}
	return nil
}

// handleKey turns one terminal keystroke into the press/release pair a
// desktop toolkit would deliver and feeds both through the pipeline.
func (d *demo) handleKey(ev *tcell.EventKey) {
	stroke, ok := fromTcell(ev)
	if !ok {
		return
	}

	source := d.focus.owner
	press := toolkit.NewStrokeEvent(stroke, toolkit.PhasePressed, source)
	pressHandled := d.pipeline.deliver(press)

	release := toolkit.NewStrokeEvent(stroke, toolkit.PhaseReleased, source)
	releaseHandled := d.pipeline.deliver(release)

	if !pressHandled {
		d.hostFallback(stroke)
	}

	d.logf("%-12s press=%v release=%v", stroke, pressHandled, releaseHandled)
}

// hostFallback is what the host toolkit does with events the dispatcher
// lets through: text entry into the focused field.
func (d *demo) hostFallback(stroke key.Stroke) {
	f, ok := d.focus.owner.(*textField)
	if !ok {
		return
	}
	switch {
	case stroke.Key == key.KeyRune && !stroke.Modified():
		f.typeRune(stroke.Rune)
	case stroke.Key == key.KeyBackspace:
		f.backspace()
	}
}

func (d *demo) logf(format string, args ...any) {
	d.log = append(d.log, fmt.Sprintf(format, args...))
	if len(d.log) > 64 {
		d.log = d.log[len(d.log)-64:]
	}
}

func (d *demo) draw() {
	d.screen.Clear()
	_, height := d.screen.Size()

	style := tcell.StyleDefault
	bold := style.Bold(true)

	focusName := "panel"
	if d.focus.owner == d.field {
		focusName = "text field"
	}
	d.drawLine(0, bold, "keygate demo - Ctrl+Q quits, Tab cycles focus, F1 help")
	d.drawLine(1, style, fmt.Sprintf("focus: %s   spaces eaten by listener: %d", focusName, d.panel.spaces))
	d.drawLine(2, style, fmt.Sprintf("text: %s", string(d.field.content)))

	row := 4
	if d.helpOpen {
		for _, line := range []string{
			"actions:",
			"  Ctrl+Q  app.quit     (system)",
			"  Tab     focus.next   (system)",
			"  F1      help.show    (default)",
			"  Ctrl+L  log.clear    (default)",
			"  Ctrl+D  text.discard (binding, text field only)",
		} {
			d.drawLine(row, style, line)
			row++
		}
		row++
	}

	d.drawLine(row, bold, "event log:")
	row++
	first := 0
	if avail := height - row; len(d.log) > avail && avail > 0 {
		first = len(d.log) - avail
	}
	for _, line := range d.log[first:] {
		d.drawLine(row, style, line)
		row++
	}

	d.screen.Show()
}

func (d *demo) drawLine(y int, style tcell.Style, text string) {
	x := 0
	for _, r := range text {
		d.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// specialKeys maps named tcell keys to their dispatch counterparts.
var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyEsc:        key.KeyEscape,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
}

// fromTcell converts a terminal key event to a stroke. Function keys,
// named keys, control chords, and plain runes are supported; anything
// else is dropped.
func fromTcell(ev *tcell.EventKey) (key.Stroke, bool) {
	mods := fromTcellMods(ev.Modifiers())
	k := ev.Key()

	if named, ok := specialKeys[k]; ok {
		return key.NewStroke(named, mods), true
	}
	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return key.NewStroke(key.KeyF1+key.Key(k-tcell.KeyF1), mods), true
	}
	if k == tcell.KeyRune {
		if ev.Rune() == ' ' {
			// Keep space-bar strokes on the rune form for binding
			// identity.
			return key.NewRuneStroke(' ', mods), true
		}
		return key.NewRuneStroke(ev.Rune(), mods), true
	}
	// Terminals fold Ctrl chords into control characters.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := rune('a' + k - tcell.KeyCtrlA)
		return key.NewRuneStroke(r, mods|key.ModCtrl), true
	}
	if k == tcell.KeyCtrlSpace {
		return key.NewRuneStroke(' ', mods|key.ModCtrl), true
	}
	return key.Stroke{}, false
}

func fromTcellMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= key.ModMeta
	}
	return mods
}
