package input

import (
	"context"
	"sync"

	"github.com/bnema/keyroute/internal/domain/keyboard"
)

// KeyListener handles a key-down event delivered to an Element.
type KeyListener func(ev *keyboard.Event)

// Element is a key event target with capture and bubble listener phases.
// Capture listeners run first; a listener that stops propagation prevents
// every later listener from running.
type Element struct {
	name string

	mu      sync.RWMutex
	capture []KeyListener
	bubble  []KeyListener
}

// NewElement creates a named element.
func NewElement(name string) *Element {
	return &Element{name: name}
}

// Name returns the element name.
func (e *Element) Name() string {
	return e.name
}

// AddKeyDownListener appends l to the capture or bubble phase.
func (e *Element) AddKeyDownListener(l KeyListener, capture bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if capture {
		e.capture = append(e.capture, l)
	} else {
		e.bubble = append(e.bubble, l)
	}
}

// DispatchKeyDown delivers ev to the capture listeners, then the bubble
// listeners. It reports whether any listener consumed the event.
func (e *Element) DispatchKeyDown(ev *keyboard.Event) bool {
	e.mu.RLock()
	listeners := make([]KeyListener, 0, len(e.capture)+len(e.bubble))
	listeners = append(listeners, e.capture...)
	listeners = append(listeners, e.bubble...)
	e.mu.RUnlock()

	for _, l := range listeners {
		if ev.PropagationStopped() {
			break
		}
		l(ev)
	}
	return ev.Consumed()
}

// AddShortcutListener attaches a key-down listener to target that consumes
// the event when it matches one of actionID's shortcuts and handler reports
// true. actionID must have bindings.
func (r *ShortcutRegistry) AddShortcutListener(
	ctx context.Context,
	target *Element,
	actionID string,
	handler func(ev *keyboard.Event) bool,
	capture bool,
) {
	r.assertKnownAction(ctx, actionID)
	target.AddKeyDownListener(func(ev *keyboard.Event) {
		if r.EventMatchesAction(ctx, ev, actionID) && handler(ev) {
			ev.Consume()
		}
	}, capture)
}
