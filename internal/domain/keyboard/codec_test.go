package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeKey_Injective(t *testing.T) {
	seen := make(map[Key]struct{})
	for code := 0; code <= maxCode; code++ {
		for mods := ModNone; mods <= modifierMask; mods++ {
			k := MakeKey(code, mods)
			_, dup := seen[k]
			require.Falsef(t, dup, "collision for code=%d mods=%d", code, mods)
			seen[k] = struct{}{}

			assert.Equal(t, code, k.Code())
			assert.Equal(t, mods, k.Modifiers())
		}
	}
}

func TestMakeKeyFromChar_FoldsLowercase(t *testing.T) {
	assert.Equal(t, MakeKeyFromChar('Z', ModCtrl), MakeKeyFromChar('z', ModCtrl))
	assert.Equal(t, Key('Z'|int(ModCtrl)<<8), MakeKeyFromChar('z', ModCtrl))
	assert.NotEqual(t, MakeKeyFromChar('z', ModCtrl), MakeKeyFromChar('z', ModCtrl|ModShift))
}

func TestCodec_FromEvent_RoundTrip(t *testing.T) {
	codec := NewCodec(PlatformLinux)
	for _, mods := range []Modifier{ModNone, ModShift, ModCtrl, ModCtrl | ModShift, ModAlt | ModMeta, modifierMask} {
		for _, code := range []int{'A', 'Z', '0', CodeF1, CodeEsc, CodeSlash} {
			want := MakeKey(code, mods)
			got := codec.FromEvent(NewEventForKey(want))
			assert.Equal(t, want, got, "code=%d mods=%s", code, mods)
		}
	}
}

func TestCodec_FromEvent_Primary(t *testing.T) {
	ev := &Event{Code: 'K', Key: "k", Primary: true}

	assert.Equal(t, MakeKey('K', ModMeta), NewCodec(PlatformMac).FromEvent(ev))
	assert.Equal(t, MakeKey('K', ModCtrl), NewCodec(PlatformLinux).FromEvent(ev))
	assert.Equal(t, MakeKey('K', ModCtrl), NewCodec(PlatformWindows).FromEvent(ev))
}

func TestCodec_ParseShortcut(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		input    string
		wantKey  Key
		wantName string
		wantOk   bool
	}{
		{"single letter", PlatformLinux, "a", MakeKey('A', ModNone), "A", true},
		{"ctrl+z", PlatformLinux, "Ctrl+Z", MakeKey('Z', ModCtrl), "Ctrl+Z", true},
		{"lowercase names", PlatformLinux, "ctrl+shift+z", MakeKey('Z', ModCtrl|ModShift), "Ctrl+Shift+Z", true},
		{"modifier order irrelevant", PlatformLinux, "Shift+Ctrl+Z", MakeKey('Z', ModCtrl|ModShift), "Ctrl+Shift+Z", true},
		{"ctrl or meta on linux", PlatformLinux, "CtrlOrMeta+K", MakeKey('K', ModCtrl), "Ctrl+K", true},
		{"ctrl or meta on mac", PlatformMac, "CtrlOrMeta+K", MakeKey('K', ModMeta), "⌘K", true},
		{"shift or option on mac", PlatformMac, "ShiftOrOption+F1", MakeKey(CodeF1, ModAlt), "⌥F1", true},
		{"mac glyph order", PlatformMac, "Meta+Shift+Alt+Ctrl+P", MakeKey('P', modifierMask), "⌃⌥⇧⌘P", true},
		{"function key", PlatformLinux, "F5", MakeKey(CodeF1+4, ModNone), "F5", true},
		{"escape alias", PlatformLinux, "Escape", MakeKey(CodeEsc, ModNone), "Esc", true},
		{"question mark", PlatformLinux, "Shift+?", MakeKey(CodeSlash, ModShift), "Shift+/", true},
		{"bracket", PlatformLinux, "Alt+[", MakeKey(CodeBracketLeft, ModAlt), "Alt+[", true},
		{"plus symbol", PlatformLinux, "+", MakeKey(CodePlus, ModNone), "+", true},
		{"ctrl plus", PlatformLinux, "Ctrl++", MakeKey(CodePlus, ModCtrl), "Ctrl++", true},
		{"ctrl shift plus", PlatformLinux, "Ctrl+Shift++", MakeKey(CodePlus, ModCtrl|ModShift), "Ctrl+Shift++", true},
		{"bare double plus", PlatformLinux, "++", MakeKey(CodePlus, ModNone), "+", true},
		{"empty middle segment", PlatformLinux, "Ctrl++A", 0, "", false},
		{"leading plus", PlatformLinux, "+A", 0, "", false},
		{"trailing single plus", PlatformLinux, "Ctrl+", 0, "", false},
		{"key before plus", PlatformLinux, "A++", 0, "", false},
		{"digit", PlatformLinux, "Ctrl+1", MakeKey('1', ModCtrl), "Ctrl+1", true},
		{"empty", PlatformLinux, "", 0, "", false},
		{"whitespace", PlatformLinux, "   ", 0, "", false},
		{"only modifiers", PlatformLinux, "Ctrl+Shift", 0, "", false},
		{"two keys", PlatformLinux, "Ctrl+A+B", 0, "", false},
		{"unknown key", PlatformLinux, "Ctrl+Banana", 0, "", false},
		{"f13 unsupported", PlatformLinux, "F13", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NewCodec(tt.platform).ParseShortcut(tt.input)
			require.Equal(t, tt.wantOk, ok)
			if !tt.wantOk {
				return
			}
			assert.Equal(t, tt.wantKey, got.Key)
			assert.Equal(t, tt.wantName, got.Name)
		})
	}
}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "Ctrl+Shift+Z", MakeKey('Z', ModCtrl|ModShift).String())
	assert.Equal(t, "Esc", MakeKey(CodeEsc, ModNone).String())
	assert.Equal(t, "Meta", MakeKey(CodeMeta, ModNone).String())
	assert.Equal(t, "#200", MakeKey(200, ModNone).String())
}

func TestPlatform_Matches(t *testing.T) {
	assert.True(t, PlatformMac.Matches(""))
	assert.True(t, PlatformMac.Matches("mac"))
	assert.True(t, PlatformLinux.Matches("windows,linux"))
	assert.True(t, PlatformLinux.Matches("windows, linux"))
	assert.False(t, PlatformLinux.Matches("mac"))
	assert.False(t, PlatformWindows.Matches("mac,linux"))
}

func TestEvent_Consume(t *testing.T) {
	ev := &Event{Code: 'A', Key: "a"}
	assert.False(t, ev.Consumed())
	assert.False(t, ev.PropagationStopped())

	ev.Consume()

	assert.True(t, ev.Consumed())
	assert.True(t, ev.PropagationStopped())
}
