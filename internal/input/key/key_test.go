package key_test

import (
	"testing"

	"github.com/dshills/keygate/internal/input/key"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  key.Key
		want string
	}{
		{key.KeyNone, "None"},
		{key.KeyEscape, "Escape"},
		{key.KeyEnter, "Enter"},
		{key.KeyF1, "F1"},
		{key.KeyPageDown, "PageDown"},
		{key.KeyRune, "Rune"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeyClassification(t *testing.T) {
	if !key.KeyF5.IsFunctionKey() {
		t.Error("F5 should be a function key")
	}
	if key.KeyEnter.IsFunctionKey() {
		t.Error("Enter should not be a function key")
	}
	if !key.KeyLeft.IsArrowKey() {
		t.Error("Left should be an arrow key")
	}
	if !key.KeyHome.IsNavigationKey() {
		t.Error("Home should be a navigation key")
	}
	if !key.KeyEscape.IsSpecial() {
		t.Error("Escape should be special")
	}
	if key.KeyRune.IsSpecial() {
		t.Error("Rune should not be special")
	}
}

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want key.Key
	}{
		{"escape", key.KeyEscape},
		{"Esc", key.KeyEscape},
		{"ENTER", key.KeyEnter},
		{"return", key.KeyEnter},
		{"pgup", key.KeyPageUp},
		{"nonsense", key.KeyNone},
	}

	for _, tt := range tests {
		if got := key.KeyFromName(tt.name); got != tt.want {
			t.Errorf("KeyFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
