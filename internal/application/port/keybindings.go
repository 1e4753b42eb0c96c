package port

import (
	"context"

	"github.com/bnema/keyroute/internal/domain/keyboard"
	"github.com/bnema/keyroute/internal/domain/shortcut"
)

// BindingSource provides the declarative shortcut bindings.
type BindingSource interface {
	Bindings(ctx context.Context) ([]shortcut.Binding, error)
}

// PlatformProvider reports the platform shortcuts are resolved for.
type PlatformProvider interface {
	Platform() keyboard.Platform
}

// ShortcutMetrics receives a signal each time a shortcut fires an action.
type ShortcutMetrics interface {
	KeyboardShortcutFired(ctx context.Context, actionID string)
}

// BindingEntry is one action with its resolved shortcuts, for listings.
type BindingEntry struct {
	ActionID  string   `json:"action"`
	Title     string   `json:"title"`
	Shortcuts []string `json:"shortcuts"`
}
