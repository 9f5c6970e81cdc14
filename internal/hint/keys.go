package hint

import (
	"fmt"
	"strings"
)

// Key identifies the kind of key press the overlay cares about.
// Everything else is dropped before it reaches the state machine.
type Key int

const (
	// KeyRune is a printable character key.
	KeyRune Key = iota
	// KeyEscape cancels the overlay.
	KeyEscape
	// KeyBackspace removes the last typed selector character.
	KeyBackspace
)

// Modifier is a bitmask of held modifier keys.
type Modifier uint8

const (
	ModNone Modifier = 0

	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has reports whether m contains mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// ParseModifier converts a config string such as "ctrl" or "ctrl+alt"
// into a modifier mask.
func ParseModifier(s string) (Modifier, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return ModNone, nil
	}
	var m Modifier
	for _, part := range strings.Split(s, "+") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "shift":
			m |= ModShift
		case "ctrl", "control":
			m |= ModCtrl
		case "alt", "option":
			m |= ModAlt
		case "meta", "cmd", "super", "win":
			m |= ModMeta
		default:
			return ModNone, fmt.Errorf("unknown modifier %q", part)
		}
	}
	return m, nil
}

// KeyEvent is a single key press delivered by the window system,
// already translated out of the windowing toolkit's event type.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mods Modifier
}
