// Package keyboard encodes key events and shortcut strings into comparable keys.
package keyboard

import "strings"

// Modifier represents keyboard modifier flags.
type Modifier int

const (
	// ModNone indicates no modifier is pressed.
	ModNone Modifier = 0
	// ModShift indicates the Shift key is pressed.
	ModShift Modifier = 1
	// ModCtrl indicates the Control key is pressed.
	ModCtrl Modifier = 2
	// ModAlt indicates the Alt (Option) key is pressed.
	ModAlt Modifier = 4
	// ModMeta indicates the Meta (Cmd, Win) key is pressed.
	ModMeta Modifier = 8
)

// modifierMask covers every modifier bit a Key can carry.
const modifierMask = ModShift | ModCtrl | ModAlt | ModMeta

// Has reports whether m contains every bit of mod.
func (m Modifier) Has(mod Modifier) bool {
	return mod != ModNone && m&mod == mod
}

// Any reports whether m shares at least one bit with mod.
func (m Modifier) Any(mod Modifier) bool {
	return m&mod != 0
}

// String returns "Ctrl+Alt+Shift+Meta" ordering of the set bits.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}
	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModMeta) {
		parts = append(parts, "Meta")
	}
	return strings.Join(parts, "+")
}

// ModifierCtrlOrMeta returns the platform accelerator: Meta on mac, Ctrl elsewhere.
func ModifierCtrlOrMeta(p Platform) Modifier {
	if p.IsMac() {
		return ModMeta
	}
	return ModCtrl
}

// ModifierShiftOrOption returns Alt (Option) on mac, Shift elsewhere.
func ModifierShiftOrOption(p Platform) Modifier {
	if p.IsMac() {
		return ModAlt
	}
	return ModShift
}

// modifierFromName resolves a shortcut-string modifier token (lowercase).
func modifierFromName(name string, p Platform) (Modifier, bool) {
	switch name {
	case "shift":
		return ModShift, true
	case "ctrl", "control":
		return ModCtrl, true
	case "alt", "option", "opt":
		return ModAlt, true
	case "meta", "cmd", "command", "win", "super":
		return ModMeta, true
	case "ctrlormeta":
		return ModifierCtrlOrMeta(p), true
	case "shiftoroption":
		return ModifierShiftOrOption(p), true
	default:
		return ModNone, false
	}
}
