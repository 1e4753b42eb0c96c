package input

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/keyroute/internal/domain/keyboard"
	"github.com/bnema/keyroute/internal/domain/shortcut"
)

func TestElement_CaptureRunsBeforeBubble(t *testing.T) {
	el := NewElement("editor")
	var order []string
	el.AddKeyDownListener(func(*keyboard.Event) { order = append(order, "bubble") }, false)
	el.AddKeyDownListener(func(*keyboard.Event) { order = append(order, "capture") }, true)

	consumed := el.DispatchKeyDown(keyEvent('x', "x", keyboard.ModNone))

	assert.False(t, consumed)
	assert.Equal(t, []string{"capture", "bubble"}, order)
}

func TestElement_StopPropagation(t *testing.T) {
	el := NewElement("editor")
	called := false
	el.AddKeyDownListener(func(ev *keyboard.Event) { ev.Consume() }, true)
	el.AddKeyDownListener(func(*keyboard.Event) { called = true }, false)

	assert.True(t, el.DispatchKeyDown(keyEvent('x', "x", keyboard.ModNone)))
	assert.False(t, called)
}

func TestAddShortcutListener(t *testing.T) {
	f := newFixture(t, keyboard.PlatformLinux, []shortcut.Binding{{ActionID: "save", Shortcut: "Ctrl+S"}})
	el := NewElement("editor")
	accept := true
	var seen int
	f.registry.AddShortcutListener(context.Background(), el, "save", func(*keyboard.Event) bool {
		seen++
		return accept
	}, false)

	t.Run("matching key and accepting handler consumes", func(t *testing.T) {
		assert.True(t, el.DispatchKeyDown(keyEvent('s', "s", keyboard.ModCtrl)))
		assert.Equal(t, 1, seen)
	})

	t.Run("other key never reaches handler", func(t *testing.T) {
		assert.False(t, el.DispatchKeyDown(keyEvent('d', "d", keyboard.ModCtrl)))
		assert.Equal(t, 1, seen)
	})

	t.Run("declining handler leaves event alone", func(t *testing.T) {
		accept = false
		assert.False(t, el.DispatchKeyDown(keyEvent('s', "s", keyboard.ModCtrl)))
		assert.Equal(t, 2, seen)
	})
}
