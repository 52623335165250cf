// Package catalog holds the application's registered actions and the
// keystroke bindings that trigger them. It implements action.Resolver for
// the dispatch engine, loads binding tables from TOML files, and can
// watch a binding file for live edits.
package catalog
