// Package input routes key events to shortcut-bound actions.
package input

import (
	"context"
	"fmt"

	"github.com/bnema/keyroute/internal/application/port"
	"github.com/bnema/keyroute/internal/domain/entity"
	"github.com/bnema/keyroute/internal/domain/keyboard"
	"github.com/bnema/keyroute/internal/domain/shortcut"
	"github.com/bnema/keyroute/internal/logging"
)

// RegistryDeps are the collaborators of a ShortcutRegistry.
// Catalog, Platform and Bindings are required. A nil Dialogs or Focus means
// "never", a nil Contexts yields the empty context, and a nil Metrics drops
// telemetry.
type RegistryDeps struct {
	Catalog  port.ActionCatalog
	Platform port.PlatformProvider
	Bindings port.BindingSource
	Dialogs  port.DialogPresence
	Focus    port.EditingFocus
	Contexts port.UIContextProvider
	Metrics  port.ShortcutMetrics
}

var (
	_ port.ShortcutDispatcher = (*ShortcutRegistry)(nil)
	_ port.ShortcutIndex      = (*ShortcutRegistry)(nil)
)

// ShortcutRegistry owns the binding store and dispatches key events to the
// first applicable action bound to them.
type ShortcutRegistry struct {
	deps  RegistryDeps
	codec keyboard.Codec
	guard keyboard.Guard
	store *shortcut.Store
}

// NewShortcutRegistry builds a registry and loads every binding from
// deps.Bindings for the current platform.
func NewShortcutRegistry(ctx context.Context, deps RegistryDeps) (*ShortcutRegistry, error) {
	if deps.Catalog == nil {
		return nil, fmt.Errorf("action catalog is nil")
	}
	if deps.Platform == nil {
		return nil, fmt.Errorf("platform provider is nil")
	}
	if deps.Bindings == nil {
		return nil, fmt.Errorf("binding source is nil")
	}

	platform := deps.Platform.Platform()
	r := &ShortcutRegistry{
		deps:  deps,
		codec: keyboard.NewCodec(platform),
		guard: keyboard.NewGuard(platform),
		store: shortcut.NewStore(),
	}

	bindings, err := deps.Bindings.Bindings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bindings: %w", err)
	}
	report := r.LoadBindings(ctx, bindings)

	logging.FromContext(ctx).Info().
		Str("platform", string(platform)).
		Int("shortcuts", report.Registered).
		Int("actions", len(r.store.Actions())).
		Msg("shortcut registry ready")

	return r, nil
}

// LoadBindings appends bindings to the store. Entries for other platforms and
// unparseable shortcuts are skipped.
func (r *ShortcutRegistry) LoadBindings(ctx context.Context, bindings []shortcut.Binding) shortcut.LoadReport {
	return r.store.Load(ctx, bindings, r.codec)
}

// RegisterShortcut binds one more shortcut string to actionID.
func (r *ShortcutRegistry) RegisterShortcut(ctx context.Context, actionID, text string) error {
	desc, ok := r.codec.ParseShortcut(text)
	if !ok {
		return fmt.Errorf("%w: %q", shortcut.ErrUnparseable, text)
	}
	r.store.Register(actionID, desc)
	logging.FromContext(ctx).Debug().
		Str("action", actionID).
		Str("shortcut", desc.Name).
		Msg("shortcut registered")
	return nil
}

// Platform returns the platform bindings were resolved for.
func (r *ShortcutRegistry) Platform() keyboard.Platform {
	return r.codec.Platform()
}

// Codec returns the codec used to encode events.
func (r *ShortcutRegistry) Codec() keyboard.Codec {
	return r.codec
}

// ActionIDsForKey returns the actions bound to key, in binding order.
func (r *ShortcutRegistry) ActionIDsForKey(key keyboard.Key) []string {
	return r.store.ActionIDsFor(key)
}

// BoundActions returns every action id with at least one shortcut, in
// registration order.
func (r *ShortcutRegistry) BoundActions() []string {
	return r.store.Actions()
}

// ShortcutDescriptorsForAction returns the descriptors bound to actionID.
func (r *ShortcutRegistry) ShortcutDescriptorsForAction(actionID string) []keyboard.Descriptor {
	return r.store.DescriptorsFor(actionID)
}

// KeysForActions returns the bound keys of each action, concatenated in the
// order of actionIDs.
func (r *ShortcutRegistry) KeysForActions(actionIDs []string) []keyboard.Key {
	var keys []keyboard.Key
	for _, id := range actionIDs {
		for _, desc := range r.store.DescriptorsFor(id) {
			keys = append(keys, desc.Key)
		}
	}
	return keys
}

// ShortcutTitleForAction returns the display name of the first shortcut
// bound to actionID.
func (r *ShortcutRegistry) ShortcutTitleForAction(actionID string) (string, bool) {
	descs := r.store.DescriptorsFor(actionID)
	if len(descs) == 0 {
		return "", false
	}
	return descs[0].Name, true
}

// EventMatchesAction reports whether ev encodes to one of actionID's
// shortcuts. Asking about an action without bindings is a caller bug and is
// logged as an error.
func (r *ShortcutRegistry) EventMatchesAction(ctx context.Context, ev *keyboard.Event, actionID string) bool {
	if !r.assertKnownAction(ctx, actionID) {
		return false
	}
	key := r.codec.FromEvent(ev)
	for _, desc := range r.store.DescriptorsFor(actionID) {
		if desc.Key == key {
			return true
		}
	}
	return false
}

// GlobalShortcutKeys returns every bound key that resolves to at least one
// applicable action under the empty context.
func (r *ShortcutRegistry) GlobalShortcutKeys() []keyboard.Key {
	empty := entity.NewUIContext()
	var keys []keyboard.Key
	for _, key := range r.store.Keys() {
		if len(r.deps.Catalog.ApplicableActions(r.store.ActionIDsFor(key), empty)) > 0 {
			keys = append(keys, key)
		}
	}
	return keys
}

func (r *ShortcutRegistry) assertKnownAction(ctx context.Context, actionID string) bool {
	if r.store.HasAction(actionID) {
		return true
	}
	logging.FromContext(ctx).Error().
		Err(fmt.Errorf("%w: %s", ErrUnknownAction, actionID)).
		Msg("shortcut query for unregistered action")
	return false
}

func (r *ShortcutRegistry) currentContext() entity.UIContext {
	if r.deps.Contexts == nil {
		return entity.NewUIContext()
	}
	return r.deps.Contexts.CurrentContext()
}

func (r *ShortcutRegistry) isEditing() bool {
	return r.deps.Focus != nil && r.deps.Focus.IsEditing()
}

func (r *ShortcutRegistry) hasDialog() bool {
	return r.deps.Dialogs != nil && r.deps.Dialogs.HasDialog()
}
