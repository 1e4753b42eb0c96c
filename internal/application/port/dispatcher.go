package port

import (
	"context"
	"time"

	"github.com/bnema/keyroute/internal/domain/keyboard"
)

// DispatchOutcome is the terminal result of dispatching one key event.
type DispatchOutcome interface {
	// Consumed reports whether the event was taken from the host.
	Consumed() bool
	String() string
}

// ShortcutDispatcher routes key events to actions.
type ShortcutDispatcher interface {
	Codec() keyboard.Codec
	// ActionIDsForKey returns the actions bound to key, in binding order.
	ActionIDsForKey(key keyboard.Key) []string
	Dispatch(ctx context.Context, ev *keyboard.Event) (DispatchOutcome, error)
}

// ShortcutIndex is the read side of the shortcut registry.
type ShortcutIndex interface {
	BoundActions() []string
	ShortcutDescriptorsForAction(actionID string) []keyboard.Descriptor
}

// ActionTitles resolves human readable action titles.
type ActionTitles interface {
	ActionTitle(actionID string) (string, bool)
}

// DialogController opens and closes modal dialogs by name.
type DialogController interface {
	DialogPresence
	// Open pushes a dialog; a positive timeout closes it automatically.
	Open(name string, timeout time.Duration)
	Close(name string)
}

// UIContextWriter updates UI context flags.
type UIContextWriter interface {
	UIContextProvider
	Apply(flags map[string]any)
}
