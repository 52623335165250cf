// Package toolkit defines the host GUI toolkit surface consumed by the
// key dispatch engine.
//
// The engine never renders or manages windows; it only asks the toolkit
// questions: what widget has focus, what window is active, does a widget
// have its own key listeners or bindings, is a modal glass pane blocking
// input. Hosts supply implementations of these interfaces; the engine
// treats them as opaque.
package toolkit
