package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuard_ShouldSuppress(t *testing.T) {
	ch := MakeKeyFromChar

	tests := []struct {
		name     string
		platform Platform
		key      Key
		domKey   string
		editing  bool
		want     bool
	}{
		{"not editing never suppresses", PlatformLinux, ch('a', ModNone), "a", false, false},
		{"plain letter while editing", PlatformLinux, ch('a', ModNone), "a", true, true},
		{"plain letter on mac", PlatformMac, ch('a', ModNone), "a", true, true},
		{"shift letter is typing", PlatformLinux, ch('a', ModShift), "A", true, true},
		{"function key passes", PlatformLinux, MakeKey(CodeF1+7, ModNone), "F8", true, false},
		{"escape passes", PlatformLinux, MakeKey(CodeEsc, ModNone), "Escape", true, false},
		{"bare modifier passes", PlatformLinux, MakeKey(CodeShift, ModShift), "Shift", true, false},
		{"enter is typing", PlatformLinux, MakeKey(CodeEnter, ModNone), "Enter", true, true},

		{"ctrl+z linux", PlatformLinux, ch('z', ModCtrl), "z", true, false},
		{"ctrl+y linux", PlatformLinux, ch('y', ModCtrl), "y", true, false},
		{"ctrl+shift+z linux", PlatformLinux, ch('z', ModCtrl|ModShift), "Z", true, false},
		{"ctrl+z windows", PlatformWindows, ch('z', ModCtrl), "z", true, false},
		{"meta+z mac", PlatformMac, ch('z', ModMeta), "z", true, false},
		{"meta+shift+z mac", PlatformMac, ch('z', ModMeta|ModShift), "z", true, false},

		{"ctrl+alt on windows is AltGr", PlatformWindows, ch('q', ModCtrl|ModAlt), "@", true, true},
		{"ctrl+alt on linux", PlatformLinux, ch('q', ModCtrl|ModAlt), "q", true, false},
		{"ctrl+alt on mac", PlatformMac, ch('q', ModCtrl|ModAlt), "q", true, false},

		{"ctrl chord", PlatformLinux, ch('s', ModCtrl), "s", true, false},
		{"alt chord", PlatformLinux, ch('s', ModAlt), "s", true, false},
		{"meta chord", PlatformMac, ch('s', ModMeta), "s", true, false},
		{"ctrl+shift chord on windows", PlatformWindows, ch('p', ModCtrl|ModShift), "P", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewGuard(tt.platform).ShouldSuppress(tt.key, tt.domKey, tt.editing)
			assert.Equal(t, tt.want, got)
		})
	}
}
