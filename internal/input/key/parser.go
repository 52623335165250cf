package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into a Stroke.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Special keys: "Enter", "Escape", "Tab", "Space"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+P"
//   - Vim-style: "<C-s>", "<A-f>", "<C-S-p>", "<CR>", "<Esc>"
func Parse(spec string) (Stroke, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Stroke{}, ErrEmptySpec
	}

	// Check for Vim-style <...> notation
	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	// Check for modifier+key format (Ctrl+S, Alt+F4)
	if strings.Contains(spec, "+") {
		return parseModifierStyle(spec)
	}

	// Single character or key name
	return parseSingle(spec)
}

// parseVimStyle parses Vim-style notation like "C-s", "A-F4", "CR", "Esc"
func parseVimStyle(inner string) (Stroke, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Stroke{}, ErrInvalidSpec
	}

	// Split by hyphen to get modifiers and key
	parts := strings.Split(inner, "-")

	var mods Modifier
	var keyPart string

	if len(parts) == 1 {
		keyPart = parts[0]
	} else {
		// Last part is the key, rest are modifiers
		keyPart = parts[len(parts)-1]
		for _, p := range parts[:len(parts)-1] {
			p = strings.ToLower(strings.TrimSpace(p))
			switch p {
			case "c":
				mods = mods.With(ModCtrl)
			case "a":
				mods = mods.With(ModAlt)
			case "s":
				mods = mods.With(ModShift)
			case "m", "d":
				mods = mods.With(ModMeta)
			default:
				return Stroke{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
			}
		}
	}

	return parseKeyWithModifiers(keyPart, mods)
}

// parseModifierStyle parses "Ctrl+S" style notation
func parseModifierStyle(spec string) (Stroke, error) {
	parts := strings.Split(spec, "+")
	if len(parts) < 2 {
		return Stroke{}, ErrInvalidSpec
	}

	var mods Modifier

	// All but the last part are modifiers
	for _, p := range parts[:len(parts)-1] {
		p = strings.TrimSpace(p)
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Stroke{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	keyPart := strings.TrimSpace(parts[len(parts)-1])
	return parseKeyWithModifiers(keyPart, mods)
}

// parseSingle parses a single character or key name
func parseSingle(spec string) (Stroke, error) {
	// Space is normalized to a rune stroke so that parsed bindings match
	// strokes built from host events, which report space as a character.
	if strings.EqualFold(spec, "space") {
		return NewRuneStroke(' ', ModNone), nil
	}
	if key := KeyFromName(spec); key != KeyNone {
		return NewStroke(key, ModNone), nil
	}

	runes := []rune(spec)
	if len(runes) == 1 {
		r := runes[0]
		var mods Modifier
		// Uppercase letters have implicit Shift
		if unicode.IsUpper(r) {
			mods = ModShift
		}
		return NewRuneStroke(r, mods), nil
	}

	return Stroke{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
}

// parseKeyWithModifiers parses a key part with already-known modifiers
func parseKeyWithModifiers(keyPart string, mods Modifier) (Stroke, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Stroke{}, ErrInvalidSpec
	}

	lowerKey := strings.ToLower(keyPart)

	// Common Vim aliases that map to runes instead of named keys
	switch lowerKey {
	case "space":
		return NewRuneStroke(' ', mods), nil
	case "lt":
		return NewRuneStroke('<', mods), nil
	case "gt":
		return NewRuneStroke('>', mods), nil
	case "bar":
		return NewRuneStroke('|', mods), nil
	case "bslash":
		return NewRuneStroke('\\', mods), nil
	}

	if key := KeyFromName(lowerKey); key != KeyNone {
		return NewStroke(key, mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) == 1 {
		r := runes[0]
		// For Ctrl combinations, use lowercase
		if mods.HasCtrl() {
			r = unicode.ToLower(r)
		}
		return NewRuneStroke(r, mods), nil
	}

	return Stroke{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Stroke {
	stroke, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return stroke
}
