// Package key defines keyboard keys, modifiers, and keystrokes.
//
// A Stroke is the phase-independent identity of a keystroke (key, rune,
// modifiers) used to look up bindings. Strokes can be parsed from
// human-readable specifications in several formats:
//
//   - Single character: "a", "A", "1", "@"
//   - Special keys: "Enter", "Escape", "Tab", "F1"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+P"
//   - Vim-style: "<C-s>", "<A-f>", "<CR>", "<Esc>"
package key
