package input

import (
	"context"

	"github.com/bnema/keyroute/internal/application/port"
	"github.com/bnema/keyroute/internal/domain/keyboard"
	"github.com/bnema/keyroute/internal/logging"
)

// Pending holds the candidates of a consumed event whose actions have not
// run yet.
type Pending struct {
	registry   *ShortcutRegistry
	key        keyboard.Key
	candidates []port.Action
}

// Candidates returns the ids of the actions Run will try, in order.
func (p *Pending) Candidates() []string {
	ids := make([]string, len(p.candidates))
	for i, a := range p.candidates {
		ids[i] = a.ID()
	}
	return ids
}

// HandleShortcut encodes ev and dispatches it.
func (r *ShortcutRegistry) HandleShortcut(ctx context.Context, ev *keyboard.Event) (Outcome, error) {
	return r.HandleKey(ctx, r.codec.FromEvent(ev), ev.Key, ev)
}

// Dispatch is HandleShortcut behind the application port.
func (r *ShortcutRegistry) Dispatch(ctx context.Context, ev *keyboard.Event) (port.DispatchOutcome, error) {
	outcome, err := r.HandleShortcut(ctx, ev)
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// HandleKey dispatches key to the first applicable action that accepts it.
// ev may be nil for programmatic dispatch, in which case the text-field guard
// is not consulted. An error from an action is returned as *ActionError.
func (r *ShortcutRegistry) HandleKey(ctx context.Context, key keyboard.Key, domKey string, ev *keyboard.Event) (Outcome, error) {
	pending, outcome := r.Prepare(ctx, key, domKey, ev)
	if pending == nil {
		return outcome, nil
	}
	return pending.Run(ctx)
}

// Prepare resolves the candidates for key and settles everything that can be
// decided without running an action. When it returns a terminal Outcome the
// Pending is nil. Otherwise ev has already been consumed and the caller must
// call Pending.Run to try the candidates.
func (r *ShortcutRegistry) Prepare(ctx context.Context, key keyboard.Key, domKey string, ev *keyboard.Event) (*Pending, Outcome) {
	log := logging.FromContext(ctx)

	ids := r.store.ActionIDsFor(key)
	if len(ids) == 0 {
		return nil, ForwardedShortcut{}
	}
	if ev != nil && r.guard.ShouldSuppress(key, domKey, r.isEditing()) {
		log.Trace().Stringer("key", key).Msg("key left to focused text input")
		return nil, ForwardedShortcut{}
	}

	candidates := r.deps.Catalog.ApplicableActions(ids, r.currentContext())
	if len(candidates) == 0 {
		log.Trace().Stringer("key", key).Strs("bound", ids).Msg("no applicable action")
		return nil, ForwardedShortcut{}
	}

	if ev != nil {
		ev.Consume()
	}

	if r.hasDialog() {
		log.Debug().Stringer("key", key).Msg("shortcut blocked by dialog")
		return nil, Blocked{}
	}

	return &Pending{registry: r, key: key, candidates: candidates}, nil
}

// Run executes the candidates one after another until one reports success.
// The first successful action is reported to the metrics sink.
func (p *Pending) Run(ctx context.Context) (Outcome, error) {
	for _, action := range p.candidates {
		id := action.ID()
		actx := logging.WithActionID(ctx, id)
		log := logging.FromContext(actx)

		ok, err := action.Execute(actx)
		if err != nil {
			log.Error().Err(err).Stringer("key", p.key).Msg("shortcut action failed")
			return nil, &ActionError{ActionID: id, Err: err}
		}
		if !ok {
			log.Trace().Stringer("key", p.key).Msg("action declined")
			continue
		}

		if m := p.registry.deps.Metrics; m != nil {
			m.KeyboardShortcutFired(actx, id)
		}
		log.Debug().Stringer("key", p.key).Msg("shortcut fired")
		return Fired{ActionID: id}, nil
	}

	return Unhandled{}, nil
}
