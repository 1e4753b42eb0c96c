package keyboard

import (
	"fmt"
	"strconv"
	"strings"
)

// Key is an encoded shortcut: the key code in the low byte and the
// modifier set in the bits above it. Two keys are equal iff both the code
// and the modifier set match.
type Key int

// maxCode is the largest key code that fits in the low byte.
const maxCode = 0xFF

// Key codes for non-character keys (DOM keyCode values).
const (
	CodeBackspace    = 8
	CodeTab          = 9
	CodeEnter        = 13
	CodeShift        = 16
	CodeCtrl         = 17
	CodeAlt          = 18
	CodeEsc          = 27
	CodeSpace        = 32
	CodePageUp       = 33
	CodePageDown     = 34
	CodeEnd          = 35
	CodeHome         = 36
	CodeLeft         = 37
	CodeUp           = 38
	CodeRight        = 39
	CodeDown         = 40
	CodeInsert       = 45
	CodeDelete       = 46
	CodeMeta         = 91
	CodeF1           = 112
	CodeF12          = 123
	CodeSemicolon    = 186
	CodePlus         = 187
	CodeComma        = 188
	CodeMinus        = 189
	CodePeriod       = 190
	CodeSlash        = 191
	CodeBacktick     = 192
	CodeBracketLeft  = 219
	CodeBackslash    = 220
	CodeBracketRight = 221
	CodeQuote        = 222
)

// namedKey pairs a key code with its display name and accepted spellings.
type namedKey struct {
	code    int
	name    string
	aliases []string
}

var namedKeys = []namedKey{
	{CodeBackspace, "Backspace", []string{"backspace"}},
	{CodeTab, "Tab", []string{"tab"}},
	{CodeEnter, "Enter", []string{"enter", "return"}},
	{CodeShift, "Shift", nil},
	{CodeCtrl, "Ctrl", nil},
	{CodeAlt, "Alt", nil},
	{CodeEsc, "Esc", []string{"esc", "escape"}},
	{CodeSpace, "Space", []string{"space"}},
	{CodePageUp, "PageUp", []string{"pageup"}},
	{CodePageDown, "PageDown", []string{"pagedown"}},
	{CodeEnd, "End", []string{"end"}},
	{CodeHome, "Home", []string{"home"}},
	{CodeLeft, "←", []string{"left", "arrowleft"}},
	{CodeUp, "↑", []string{"up", "arrowup"}},
	{CodeRight, "→", []string{"right", "arrowright"}},
	{CodeDown, "↓", []string{"down", "arrowdown"}},
	{CodeInsert, "Insert", []string{"insert"}},
	{CodeDelete, "Del", []string{"delete", "del"}},
	{CodeMeta, "Meta", nil},
	{CodeSemicolon, ";", []string{";", "semicolon"}},
	{CodePlus, "+", []string{"plus", "="}},
	{CodeComma, ",", []string{",", "comma"}},
	{CodeMinus, "-", []string{"minus", "-"}},
	{CodePeriod, ".", []string{".", "period"}},
	{CodeSlash, "/", []string{"/", "?", "slash"}},
	{CodeBacktick, "`", []string{"`", "backtick"}},
	{CodeBracketLeft, "[", []string{"[", "bracketleft"}},
	{CodeBackslash, "\\", []string{"\\", "backslash"}},
	{CodeBracketRight, "]", []string{"]", "bracketright"}},
	{CodeQuote, "'", []string{"'", "quote"}},
}

var (
	keysByName  = make(map[string]int)
	namesByCode = make(map[int]string)
)

func init() {
	for _, k := range namedKeys {
		namesByCode[k.code] = k.name
		for _, alias := range k.aliases {
			keysByName[alias] = k.code
		}
	}
	for i := 0; i < 12; i++ {
		namesByCode[CodeF1+i] = "F" + strconv.Itoa(i+1)
	}
}

// MakeKey packs a key code and modifier set into a Key.
func MakeKey(code int, mods Modifier) Key {
	return Key(code&maxCode | int(mods&modifierMask)<<8)
}

// MakeKeyFromChar packs a printable character. Lowercase ASCII letters fold
// to their uppercase key code, so 'z' and 'Z' address the same physical key.
func MakeKeyFromChar(r rune, mods Modifier) Key {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	return MakeKey(int(r), mods)
}

// Code returns the key code without modifiers.
func (k Key) Code() int {
	return int(k) & maxCode
}

// Modifiers returns the modifier set.
func (k Key) Modifiers() Modifier {
	return Modifier(int(k)>>8) & modifierMask
}

// String renders the key in platform-neutral "Ctrl+Shift+Z" form.
func (k Key) String() string {
	name := KeyName(k.Code())
	if mods := k.Modifiers().String(); mods != "" {
		return mods + "+" + name
	}
	return name
}

// KeyName returns the display name of a key code.
func KeyName(code int) string {
	if name, ok := namesByCode[code]; ok {
		return name
	}
	if (code >= 'A' && code <= 'Z') || (code >= '0' && code <= '9') {
		return string(rune(code))
	}
	return fmt.Sprintf("#%d", code)
}

// codeFromName resolves the key part of a shortcut string.
func codeFromName(part string) (int, bool) {
	lower := strings.ToLower(part)
	if code, ok := keysByName[lower]; ok {
		return code, true
	}
	if len(lower) >= 2 && lower[0] == 'f' {
		if n, err := strconv.Atoi(lower[1:]); err == nil && n >= 1 && n <= 12 {
			return CodeF1 + n - 1, true
		}
	}
	runes := []rune(part)
	if len(runes) != 1 {
		return 0, false
	}
	r := runes[0]
	switch {
	case r >= 'a' && r <= 'z':
		return int(r - ('a' - 'A')), true
	case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return int(r), true
	default:
		return 0, false
	}
}
