package dispatch

import (
	"sync"

	"github.com/dshills/keygate/internal/toolkit"
)

// Pipeline is the host's event pipeline registration point. The host
// calls the registered function for every key event before its own
// processing and drops events the function returns true for.
type Pipeline interface {
	// AddKeyEventDispatcher inserts a dispatch function into the host's
	// key event processing.
	AddKeyEventDispatcher(fn func(event *toolkit.Event) bool)
}

// The process-wide installed dispatcher. Kept to a single static slot at
// the host-integration boundary; everywhere else the dispatcher instance
// is passed explicitly.
var (
	installMu sync.Mutex
	installed *Dispatcher
)

// Install registers the dispatcher into the host's event pipeline.
// Calling it more than once after the first successful call has no
// additional effect; the already-installed dispatcher is returned.
func Install(d *Dispatcher, pipeline Pipeline) *Dispatcher {
	installMu.Lock()
	defer installMu.Unlock()

	if installed != nil {
		return installed
	}
	installed = d
	pipeline.AddKeyEventDispatcher(d.Dispatch)
	return installed
}

// Installed returns the process-wide dispatcher, or nil before Install.
func Installed() *Dispatcher {
	installMu.Lock()
	defer installMu.Unlock()
	return installed
}

// Uninstall clears the process-wide dispatcher so a later Install takes
// effect again. Teardown seam for tests; hosts that registered the
// dispatch function remain responsible for removing it from their
// pipeline.
func Uninstall() {
	installMu.Lock()
	defer installMu.Unlock()
	installed = nil
}
