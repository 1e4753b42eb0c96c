package keyboard

// Event is a host key-down event.
//
// Code is the DOM-style key code of the physical key and Key the DOM key
// name ("a", "Enter", "Control", "F5"). Primary is set by hosts that only
// report "the platform accelerator" without saying which physical modifier
// produced it.
type Event struct {
	Code    int
	Key     string
	Shift   bool
	Ctrl    bool
	Alt     bool
	Meta    bool
	Primary bool

	consumed bool
	stopped  bool
}

// Modifiers returns the raw modifier set carried by the event, ignoring Primary.
func (e *Event) Modifiers() Modifier {
	var mods Modifier
	if e.Shift {
		mods |= ModShift
	}
	if e.Ctrl {
		mods |= ModCtrl
	}
	if e.Alt {
		mods |= ModAlt
	}
	if e.Meta {
		mods |= ModMeta
	}
	return mods
}

// Consume marks the event handled: default host handling is prevented and
// propagation to further listeners stops.
func (e *Event) Consume() {
	e.consumed = true
	e.stopped = true
}

// Consumed reports whether a handler consumed the event.
func (e *Event) Consumed() bool {
	return e.consumed
}

// PropagationStopped reports whether further listeners should be skipped.
func (e *Event) PropagationStopped() bool {
	return e.stopped
}

// NewEventForKey builds a synthetic event that encodes back to k.
// The DOM key name is derived from the key code.
func NewEventForKey(k Key) *Event {
	mods := k.Modifiers()
	return &Event{
		Code:  k.Code(),
		Key:   domKeyName(k.Code()),
		Shift: mods.Has(ModShift),
		Ctrl:  mods.Has(ModCtrl),
		Alt:   mods.Has(ModAlt),
		Meta:  mods.Has(ModMeta),
	}
}

// domKeyName approximates KeyboardEvent.key for a key code.
func domKeyName(code int) string {
	switch code {
	case CodeShift:
		return "Shift"
	case CodeCtrl:
		return "Control"
	case CodeAlt:
		return "Alt"
	case CodeMeta:
		return "Meta"
	case CodeEsc:
		return "Escape"
	case CodeEnter:
		return "Enter"
	case CodeTab:
		return "Tab"
	case CodeBackspace:
		return "Backspace"
	case CodeSpace:
		return " "
	}
	if code >= CodeF1 && code <= CodeF12 {
		return KeyName(code)
	}
	if code >= 'A' && code <= 'Z' {
		return string(rune(code - 'A' + 'a'))
	}
	return KeyName(code)
}
