package config

import (
	"context"
	"sync"

	"github.com/bnema/keyroute/internal/application/port"
	"github.com/bnema/keyroute/internal/domain/shortcut"
	"github.com/bnema/keyroute/internal/logging"
)

// BindingLoader appends bindings to a live shortcut registry.
type BindingLoader interface {
	LoadBindings(ctx context.Context, bindings []shortcut.Binding) shortcut.LoadReport
}

// BindingsGateway implements port.BindingSource on top of the Manager.
type BindingsGateway struct {
	mgr *Manager

	mu   sync.Mutex
	seen map[shortcut.Binding]struct{}
}

var _ port.BindingSource = (*BindingsGateway)(nil)

// NewBindingsGateway creates a new BindingsGateway.
func NewBindingsGateway(mgr *Manager) *BindingsGateway {
	return &BindingsGateway{mgr: mgr, seen: make(map[shortcut.Binding]struct{})}
}

// Bindings returns the configured bindings and remembers them so a later
// reload only forwards what was added.
func (g *BindingsGateway) Bindings(ctx context.Context) ([]shortcut.Binding, error) {
	bindings := g.mgr.Get().Bindings
	logging.FromContext(ctx).Debug().Int("bindings", len(bindings)).Msg("bindings gateway: returning bindings")

	g.mu.Lock()
	defer g.mu.Unlock()
	for _, b := range bindings {
		g.seen[b] = struct{}{}
	}
	return bindings, nil
}

// FollowChanges feeds bindings added to the config file into loader.
// Removed or edited bindings stay registered until restart because the
// registry is append-only.
func (g *BindingsGateway) FollowChanges(ctx context.Context, loader BindingLoader) error {
	g.mgr.OnConfigChange(func(cfg *Config) {
		added := g.newBindings(cfg.Bindings)
		if len(added) == 0 {
			return
		}
		report := loader.LoadBindings(ctx, added)
		logging.FromContext(ctx).Info().
			Int("added", report.Registered).
			Int("unparseable", len(report.Unparseable)).
			Msg("bindings reloaded from config")
	})
	return g.mgr.Watch(ctx)
}

func (g *BindingsGateway) newBindings(bindings []shortcut.Binding) []shortcut.Binding {
	g.mu.Lock()
	defer g.mu.Unlock()

	var added []shortcut.Binding
	for _, b := range bindings {
		if _, ok := g.seen[b]; ok {
			continue
		}
		g.seen[b] = struct{}{}
		added = append(added, b)
	}
	return added
}
