package key

// Stroke is the phase-independent identity of a keystroke: the key, the
// character for rune keys, and the modifiers held at the time. Strokes are
// comparable and used as binding lookup keys.
type Stroke struct {
	// Key identifies the key.
	Key Key

	// Rune is the character for KeyRune strokes.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewStroke creates a stroke for a special key.
func NewStroke(key Key, mods Modifier) Stroke {
	return Stroke{Key: key, Modifiers: mods}
}

// NewRuneStroke creates a stroke for a character key.
func NewRuneStroke(r rune, mods Modifier) Stroke {
	return Stroke{Key: KeyRune, Rune: r, Modifiers: mods}
}

// IsRune returns true if this is a character stroke.
func (s Stroke) IsRune() bool {
	return s.Key == KeyRune && s.Rune != 0
}

// IsZero returns true if the stroke carries no key at all.
func (s Stroke) IsZero() bool {
	return s.Key == KeyNone && s.Rune == 0
}

// Modified returns true if the stroke is modified in a way a text widget
// would not handle as ordinary typing. Shift alone does not count since it
// changes the character itself.
func (s Stroke) Modified() bool {
	return s.Modifiers&(ModCtrl|ModAlt|ModAltGr|ModMeta) != 0
}

// String returns a canonical representation like "Ctrl+S" or "Escape".
func (s Stroke) String() string {
	var keyName string
	switch s.Key {
	case KeyRune:
		if s.Rune == ' ' {
			keyName = "Space"
		} else {
			keyName = string(s.Rune)
		}
	default:
		keyName = s.Key.String()
	}

	if mods := s.Modifiers.String(); mods != "" {
		return mods + "+" + keyName
	}
	return keyName
}
