package keyboard

import "strings"

// Descriptor pairs an encoded key with its human-readable shortcut name.
type Descriptor struct {
	Key  Key
	Name string
}

// Codec encodes events and shortcut strings for one platform.
type Codec struct {
	platform Platform
}

// NewCodec creates a codec for the given platform.
func NewCodec(p Platform) Codec {
	return Codec{platform: p}
}

// Platform returns the platform the codec was built for.
func (c Codec) Platform() Platform {
	return c.platform
}

// FromEvent encodes a host key event.
// Primary resolves to Meta on mac and to Ctrl elsewhere.
func (c Codec) FromEvent(ev *Event) Key {
	mods := ev.Modifiers()
	if ev.Primary {
		mods |= ModifierCtrlOrMeta(c.platform)
	}
	return MakeKey(ev.Code, mods)
}

// MakeDescriptor builds a descriptor with a platform-appropriate display name.
func (c Codec) MakeDescriptor(code int, mods Modifier) Descriptor {
	return Descriptor{
		Key:  MakeKey(code, mods),
		Name: c.modifiersPrefix(mods) + KeyName(code),
	}
}

// modifiersPrefix renders modifiers as glyphs on mac ("⌃⌥⇧⌘") and as
// "Ctrl+Alt+Shift+Meta+" elsewhere.
func (c Codec) modifiersPrefix(mods Modifier) string {
	if mods == ModNone {
		return ""
	}
	if c.platform.IsMac() {
		var b strings.Builder
		if mods.Has(ModCtrl) {
			b.WriteString("⌃")
		}
		if mods.Has(ModAlt) {
			b.WriteString("⌥")
		}
		if mods.Has(ModShift) {
			b.WriteString("⇧")
		}
		if mods.Has(ModMeta) {
			b.WriteString("⌘")
		}
		return b.String()
	}
	return mods.String() + "+"
}

// ParseShortcut parses a binding shortcut like "Ctrl+Shift+Z",
// "CtrlOrMeta+K" or "F5". Names are case-insensitive. It returns false when
// the string is empty, names an unknown modifier or key, or carries more
// than one key part.
func (c Codec) ParseShortcut(s string) (Descriptor, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Descriptor{}, false
	}
	if s == "+" {
		return c.MakeDescriptor(CodePlus, ModNone), true
	}

	// "Ctrl++" binds the plus key itself.
	plusKey := strings.HasSuffix(s, "++")
	if plusKey {
		s = strings.TrimSuffix(s, "++")
	}

	var mods Modifier
	var keyPart string

	if s != "" {
		for _, part := range strings.Split(s, "+") {
			part = strings.TrimSpace(part)
			if part == "" {
				return Descriptor{}, false
			}
			if mod, ok := modifierFromName(strings.ToLower(part), c.platform); ok {
				mods |= mod
				continue
			}
			if keyPart != "" {
				return Descriptor{}, false
			}
			keyPart = part
		}
	}

	if plusKey {
		if keyPart != "" {
			return Descriptor{}, false
		}
		keyPart = "plus"
	}
	if keyPart == "" {
		return Descriptor{}, false
	}

	code, ok := codeFromName(keyPart)
	if !ok {
		return Descriptor{}, false
	}
	return c.MakeDescriptor(code, mods), true
}
