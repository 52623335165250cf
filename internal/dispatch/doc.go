// Package dispatch arbitrates key events between competing consumers and
// manages the two-phase lifecycle of the command that wins.
//
// A host toolkit's ordinary key event processing is:
//
//  1. Key listeners on the focused widget
//  2. The focused widget's own key bindings
//  3. Bindings of the widget's ancestors, up the hierarchy
//
// The dispatcher inserts tool-level commands into that flow:
//
//  1. Reserved system commands
//  2. Key listeners on the focused widget
//  3. The focused widget's own key bindings
//  4. Tool-level commands
//  5. Bindings of the widget's ancestors, up the hierarchy
//
// Individual widgets still get the first chance at an event, but global
// commands run before the event escapes up the hierarchy.
//
// A command that wins arbitration is armed on key-pressed and executed on
// the matching key-released. While a command is armed every event is
// absorbed, since some platforms do not guarantee the release arrives
// before new presses. If focus moves away between press and release the
// pending execution is forfeited silently.
//
// Dispatch is synchronous and single-threaded: the host delivers events
// one at a time on its event-processing thread and dispatch is never
// reentrant.
package dispatch
