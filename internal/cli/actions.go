package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/keyroute/internal/infrastructure/catalog"
	"github.com/bnema/keyroute/internal/infrastructure/config"
	"github.com/bnema/keyroute/internal/logging"
)

// buildCatalog registers the configured demo actions and compiles their
// when clauses up front so a typo shows in the log at startup.
func (a *App) buildCatalog(ctx context.Context, actions []config.ActionConfig) (*catalog.Catalog, error) {
	c := catalog.New(ctx)
	for _, ac := range actions {
		err := c.Register(catalog.Definition{
			ID:      ac.ID,
			Title:   ac.Title,
			When:    ac.When,
			Handler: a.actionHandler(ac),
		})
		if err != nil {
			return nil, fmt.Errorf("register action %s: %w", ac.ID, err)
		}
	}

	if err := c.Precompile(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("some when clauses do not compile")
	}
	return c, nil
}

// actionHandler turns a configured action into a catalog handler. Side
// effects run in declaration order: message, dialog, then context flags.
func (a *App) actionHandler(ac config.ActionConfig) catalog.Handler {
	return func(ctx context.Context) (bool, error) {
		if ac.Error != "" {
			return false, errors.New(ac.Error)
		}

		log := logging.FromContext(ctx)
		if ac.Message != "" {
			a.notifyAction(ac.ID, ac.Message)
		}
		if ac.Dialog != "" {
			a.Dialogs.Open(ac.Dialog, time.Duration(ac.DialogTimeoutMS)*time.Millisecond)
		}
		if len(ac.Set) > 0 {
			a.Contexts.Apply(ac.Set)
		}

		log.Debug().Str("action", ac.ID).Bool("handled", ac.Handled).Msg("demo action ran")
		return ac.Handled, nil
	}
}
