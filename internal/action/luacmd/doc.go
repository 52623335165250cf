// Package luacmd registers actions scripted in Lua. Scripts call
// keygate.register with a name, an execute handler, and optionally a
// tier, predicates, and a key binding; the provider turns each
// registration into a catalog action whose callbacks run in the script's
// Lua state.
//
// A Provider owns one Lua state. The state is not safe for concurrent
// use, so scripted actions must execute on the same goroutine that loads
// the scripts, which in practice is the host's event thread.
package luacmd
