// Package terminal turns bubbletea key messages into host key events.
package terminal

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/keyroute/internal/domain/keyboard"
)

type special struct {
	code int
	key  string
	mods keyboard.Modifier
}

// Terminals fold Tab, Enter and Escape into Ctrl+I, Ctrl+M and Ctrl+[;
// those arrive under their named types and are listed here only once.
var specials = map[tea.KeyType]special{
	tea.KeyEnter:      {keyboard.CodeEnter, "Enter", keyboard.ModNone},
	tea.KeyTab:        {keyboard.CodeTab, "Tab", keyboard.ModNone},
	tea.KeyShiftTab:   {keyboard.CodeTab, "Tab", keyboard.ModShift},
	tea.KeyBackspace:  {keyboard.CodeBackspace, "Backspace", keyboard.ModNone},
	tea.KeyEsc:        {keyboard.CodeEsc, "Escape", keyboard.ModNone},
	tea.KeySpace:      {keyboard.CodeSpace, " ", keyboard.ModNone},
	tea.KeyCtrlAt:     {keyboard.CodeSpace, " ", keyboard.ModCtrl},
	tea.KeyDelete:     {keyboard.CodeDelete, "Delete", keyboard.ModNone},
	tea.KeyInsert:     {keyboard.CodeInsert, "Insert", keyboard.ModNone},
	tea.KeyHome:       {keyboard.CodeHome, "Home", keyboard.ModNone},
	tea.KeyEnd:        {keyboard.CodeEnd, "End", keyboard.ModNone},
	tea.KeyPgUp:       {keyboard.CodePageUp, "PageUp", keyboard.ModNone},
	tea.KeyPgDown:     {keyboard.CodePageDown, "PageDown", keyboard.ModNone},
	tea.KeyCtrlPgUp:   {keyboard.CodePageUp, "PageUp", keyboard.ModCtrl},
	tea.KeyCtrlPgDown: {keyboard.CodePageDown, "PageDown", keyboard.ModCtrl},

	tea.KeyUp:    {keyboard.CodeUp, "ArrowUp", keyboard.ModNone},
	tea.KeyDown:  {keyboard.CodeDown, "ArrowDown", keyboard.ModNone},
	tea.KeyLeft:  {keyboard.CodeLeft, "ArrowLeft", keyboard.ModNone},
	tea.KeyRight: {keyboard.CodeRight, "ArrowRight", keyboard.ModNone},

	tea.KeyShiftUp:    {keyboard.CodeUp, "ArrowUp", keyboard.ModShift},
	tea.KeyShiftDown:  {keyboard.CodeDown, "ArrowDown", keyboard.ModShift},
	tea.KeyShiftLeft:  {keyboard.CodeLeft, "ArrowLeft", keyboard.ModShift},
	tea.KeyShiftRight: {keyboard.CodeRight, "ArrowRight", keyboard.ModShift},

	tea.KeyCtrlUp:    {keyboard.CodeUp, "ArrowUp", keyboard.ModCtrl},
	tea.KeyCtrlDown:  {keyboard.CodeDown, "ArrowDown", keyboard.ModCtrl},
	tea.KeyCtrlLeft:  {keyboard.CodeLeft, "ArrowLeft", keyboard.ModCtrl},
	tea.KeyCtrlRight: {keyboard.CodeRight, "ArrowRight", keyboard.ModCtrl},

	tea.KeyCtrlShiftUp:    {keyboard.CodeUp, "ArrowUp", keyboard.ModCtrl | keyboard.ModShift},
	tea.KeyCtrlShiftDown:  {keyboard.CodeDown, "ArrowDown", keyboard.ModCtrl | keyboard.ModShift},
	tea.KeyCtrlShiftLeft:  {keyboard.CodeLeft, "ArrowLeft", keyboard.ModCtrl | keyboard.ModShift},
	tea.KeyCtrlShiftRight: {keyboard.CodeRight, "ArrowRight", keyboard.ModCtrl | keyboard.ModShift},

	tea.KeyCtrlBackslash:    {keyboard.CodeBackslash, "\\", keyboard.ModCtrl},
	tea.KeyCtrlCloseBracket: {keyboard.CodeBracketRight, "]", keyboard.ModCtrl},
}

var functionKeys = []tea.KeyType{
	tea.KeyF1, tea.KeyF2, tea.KeyF3, tea.KeyF4, tea.KeyF5, tea.KeyF6,
	tea.KeyF7, tea.KeyF8, tea.KeyF9, tea.KeyF10, tea.KeyF11, tea.KeyF12,
}

type symbol struct {
	code  int
	shift bool
}

// US layout positions of the punctuation keys.
var symbols = map[rune]symbol{
	';': {keyboard.CodeSemicolon, false}, ':': {keyboard.CodeSemicolon, true},
	'=': {keyboard.CodePlus, false}, '+': {keyboard.CodePlus, true},
	',': {keyboard.CodeComma, false}, '<': {keyboard.CodeComma, true},
	'-': {keyboard.CodeMinus, false}, '_': {keyboard.CodeMinus, true},
	'.': {keyboard.CodePeriod, false}, '>': {keyboard.CodePeriod, true},
	'/': {keyboard.CodeSlash, false}, '?': {keyboard.CodeSlash, true},
	'`': {keyboard.CodeBacktick, false}, '~': {keyboard.CodeBacktick, true},
	'[': {keyboard.CodeBracketLeft, false}, '{': {keyboard.CodeBracketLeft, true},
	'\\': {keyboard.CodeBackslash, false}, '|': {keyboard.CodeBackslash, true},
	']': {keyboard.CodeBracketRight, false}, '}': {keyboard.CodeBracketRight, true},
	'\'': {keyboard.CodeQuote, false}, '"': {keyboard.CodeQuote, true},
}

var shiftedDigits = map[rune]rune{
	'!': '1', '@': '2', '#': '3', '$': '4', '%': '5',
	'^': '6', '&': '7', '*': '8', '(': '9', ')': '0',
}

// ToEvent converts a key message. It returns nil for pastes and for
// messages that carry no single key.
func ToEvent(msg tea.KeyMsg) *keyboard.Event {
	if msg.Paste {
		return nil
	}

	ev := fromType(msg)
	if ev == nil {
		return nil
	}
	if msg.Alt {
		ev.Alt = true
	}
	return ev
}

func fromType(msg tea.KeyMsg) *keyboard.Event {
	if msg.Type == tea.KeyRunes {
		if len(msg.Runes) != 1 {
			return nil
		}
		return fromRune(msg.Runes[0])
	}

	if s, ok := specials[msg.Type]; ok {
		return withMods(&keyboard.Event{Code: s.code, Key: s.key}, s.mods)
	}

	for i, fk := range functionKeys {
		if msg.Type == fk {
			return &keyboard.Event{Code: keyboard.CodeF1 + i, Key: keyboard.KeyName(keyboard.CodeF1 + i)}
		}
	}

	// Ctrl+A .. Ctrl+Z arrive as the C0 control codes 1..26.
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		letter := rune('a' + int(msg.Type-tea.KeyCtrlA))
		return &keyboard.Event{Code: int(letter - 'a' + 'A'), Key: string(letter), Ctrl: true}
	}

	return nil
}

func fromRune(r rune) *keyboard.Event {
	switch {
	case r >= 'a' && r <= 'z':
		return &keyboard.Event{Code: int(r - 'a' + 'A'), Key: string(r)}
	case r >= 'A' && r <= 'Z':
		return &keyboard.Event{Code: int(r), Key: string(r), Shift: true}
	case r >= '0' && r <= '9':
		return &keyboard.Event{Code: int(r), Key: string(r)}
	case r == ' ':
		return &keyboard.Event{Code: keyboard.CodeSpace, Key: " "}
	}
	if s, ok := symbols[r]; ok {
		return &keyboard.Event{Code: s.code, Key: string(r), Shift: s.shift}
	}
	if d, ok := shiftedDigits[r]; ok {
		return &keyboard.Event{Code: int(d), Key: string(r), Shift: true}
	}
	// Non-ASCII text: no key code, still typing for the guard.
	return &keyboard.Event{Key: string(r)}
}

func withMods(ev *keyboard.Event, mods keyboard.Modifier) *keyboard.Event {
	ev.Shift = mods.Has(keyboard.ModShift)
	ev.Ctrl = mods.Has(keyboard.ModCtrl)
	ev.Alt = mods.Has(keyboard.ModAlt)
	ev.Meta = mods.Has(keyboard.ModMeta)
	return ev
}
