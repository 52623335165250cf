// Package action defines commands, their precedence tiers, and their
// resolution against a focus context.
//
// An Action is a named, context-sensitive command registered by the
// application. At dispatch time an action is resolved into an Executable:
// the action bound to the focus context of that exact event, with its
// validity and enablement evaluated once. Executables are discarded after
// the event resolves, except when armed for a deferred execution on key
// release.
package action
