package keyboard

import "regexp"

// nonPrintingKeyRE matches DOM key names that never produce text input.
var nonPrintingKeyRE = regexp.MustCompile(`^F\d+|Control|Shift|Alt|Meta|Escape|Win|U\+001B$`)

// Guard decides whether a key event that happens while a text field is
// focused is ordinary typing rather than a shortcut.
type Guard struct {
	platform Platform
}

// NewGuard creates a guard for the given platform.
func NewGuard(p Platform) Guard {
	return Guard{platform: p}
}

// ShouldSuppress reports whether the key must be left to the focused text
// field. It only ever returns true while editing.
func (g Guard) ShouldSuppress(key Key, domKey string, editing bool) bool {
	if !editing || nonPrintingKeyRE.MatchString(domKey) {
		return false
	}

	mods := key.Modifiers()
	if mods == ModNone {
		return true
	}

	// The tool's own undo/redo keeps working inside text fields.
	if g.isUndoRedo(key) {
		return false
	}

	// Ctrl+Alt composes characters (AltGr) on Windows layouts.
	if mods.Has(ModCtrl | ModAlt) {
		return g.platform.IsWindows()
	}

	return !mods.Any(ModCtrl | ModAlt | ModMeta)
}

func (g Guard) isUndoRedo(key Key) bool {
	if g.platform.IsMac() {
		return key == MakeKeyFromChar('z', ModMeta) ||
			key == MakeKeyFromChar('z', ModMeta|ModShift)
	}
	if key == MakeKeyFromChar('z', ModCtrl) || key == MakeKeyFromChar('y', ModCtrl) {
		return true
	}
	return !g.platform.IsWindows() && key == MakeKeyFromChar('z', ModCtrl|ModShift)
}
