package port

import (
	"context"

	"github.com/bnema/keyroute/internal/domain/entity"
)

// Action is something a shortcut can trigger.
type Action interface {
	// ID returns the stable action identifier used by bindings.
	ID() string

	// Execute attempts the action. It reports false when the action did not
	// apply, letting the dispatcher try the next candidate.
	Execute(ctx context.Context) (bool, error)
}

// ActionCatalog resolves action ids into applicable actions.
type ActionCatalog interface {
	// ApplicableActions returns the actions among ids that apply under uctx,
	// in the order the dispatcher must try them. Unknown ids are dropped.
	ApplicableActions(ids []string, uctx entity.UIContext) []Action
}

// UIContextProvider exposes the current UI context.
type UIContextProvider interface {
	CurrentContext() entity.UIContext
}
