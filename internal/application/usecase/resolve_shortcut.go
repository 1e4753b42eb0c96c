package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/keyroute/internal/application/port"
	"github.com/bnema/keyroute/internal/domain/keyboard"
	"github.com/bnema/keyroute/internal/domain/shortcut"
	"github.com/bnema/keyroute/internal/logging"
)

// scratchField is the text input focused while resolving with Editing set.
type scratchField struct{}

func (scratchField) InputID() string { return "resolve-scratch" }

// ResolveShortcutDeps are the collaborators of ResolveShortcutUseCase.
// Focus, Dialogs and Contexts are only needed when the matching input
// fields are used.
type ResolveShortcutDeps struct {
	Dispatcher port.ShortcutDispatcher
	Focus      port.FocusedInputProvider
	Dialogs    port.DialogController
	Contexts   port.UIContextWriter
}

// ResolveShortcutUseCase dispatches a synthetic key event built from a
// shortcut string and reports what happened.
type ResolveShortcutUseCase struct {
	deps ResolveShortcutDeps
}

// NewResolveShortcutUseCase creates a new ResolveShortcutUseCase.
func NewResolveShortcutUseCase(deps ResolveShortcutDeps) *ResolveShortcutUseCase {
	return &ResolveShortcutUseCase{deps: deps}
}

// ResolveShortcutInput describes the key and the UI state to press it in.
type ResolveShortcutInput struct {
	Shortcut string
	// Editing focuses a scratch text input for the duration of the dispatch.
	Editing bool
	// Dialog opens a modal dialog with this name for the duration of the dispatch.
	Dialog string
	// Flags are applied to the UI context before dispatching.
	Flags map[string]any
}

// ResolveShortcutOutput reports the dispatch.
type ResolveShortcutOutput struct {
	Descriptor keyboard.Descriptor
	// Bound lists every action bound to the key, applicable or not.
	Bound    []string
	Outcome  string
	Consumed bool
	// Err is the failure of the action that aborted the dispatch.
	Err error
}

// Execute parses in.Shortcut and dispatches it.
func (uc *ResolveShortcutUseCase) Execute(ctx context.Context, in ResolveShortcutInput) (*ResolveShortcutOutput, error) {
	if uc == nil || uc.deps.Dispatcher == nil {
		return nil, fmt.Errorf("shortcut dispatcher is nil")
	}
	if in.Editing && uc.deps.Focus == nil {
		return nil, fmt.Errorf("focus provider is nil")
	}
	if in.Dialog != "" && uc.deps.Dialogs == nil {
		return nil, fmt.Errorf("dialog controller is nil")
	}
	if len(in.Flags) > 0 && uc.deps.Contexts == nil {
		return nil, fmt.Errorf("ui context writer is nil")
	}

	desc, ok := uc.deps.Dispatcher.Codec().ParseShortcut(in.Shortcut)
	if !ok {
		return nil, fmt.Errorf("%w: %q", shortcut.ErrUnparseable, in.Shortcut)
	}

	ctx = logging.WithShortcut(ctx, desc.Name)
	log := logging.FromContext(ctx)

	if in.Editing {
		previous := uc.deps.Focus.GetFocusedInput()
		uc.deps.Focus.SetFocusedInput(scratchField{})
		defer uc.deps.Focus.SetFocusedInput(previous)
	}
	if in.Dialog != "" {
		uc.deps.Dialogs.Open(in.Dialog, 0)
		defer uc.deps.Dialogs.Close(in.Dialog)
	}
	if len(in.Flags) > 0 {
		uc.deps.Contexts.Apply(in.Flags)
	}

	out := &ResolveShortcutOutput{
		Descriptor: desc,
		Bound:      uc.deps.Dispatcher.ActionIDsForKey(desc.Key),
	}

	outcome, err := uc.deps.Dispatcher.Dispatch(ctx, keyboard.NewEventForKey(desc.Key))
	if err != nil {
		log.Debug().Err(err).Msg("resolved shortcut failed")
		out.Outcome = "failed"
		out.Consumed = true
		out.Err = err
		return out, nil
	}

	out.Outcome = outcome.String()
	out.Consumed = outcome.Consumed()
	log.Debug().Str("outcome", out.Outcome).Msg("shortcut resolved")
	return out, nil
}
