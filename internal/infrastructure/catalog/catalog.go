// Package catalog keeps the actions a shortcut can trigger and decides which
// of them apply to the current UI context.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/keyroute/internal/application/port"
	"github.com/bnema/keyroute/internal/domain/entity"
	"github.com/bnema/keyroute/internal/infrastructure/cache"
	"github.com/bnema/keyroute/internal/logging"
)

// maxCachedClauses bounds the compiled when clauses kept in memory.
const maxCachedClauses = 512

// ErrDuplicateAction is returned when an action id is registered twice.
var ErrDuplicateAction = errors.New("duplicate action")

// Handler runs an action. It reports whether the action handled the key.
type Handler func(ctx context.Context) (bool, error)

// Definition describes one action.
type Definition struct {
	ID    string
	Title string
	// When is a JavaScript boolean expression over the UI context flags.
	// Empty means always applicable.
	When    string
	Handler Handler
}

// Catalog is an ordered, append-only set of actions.
type Catalog struct {
	ctx context.Context

	mu      sync.RWMutex
	order   []string
	actions map[string]*action

	clauses *cache.LRU[string, *clause]

	eval *evaluator
}

var (
	_ port.ActionCatalog = (*Catalog)(nil)
	_ port.ActionTitles  = (*Catalog)(nil)
)

// New creates an empty catalog. ctx carries the logger used for
// evaluation failures.
func New(ctx context.Context) *Catalog {
	return &Catalog{
		ctx:     logging.WithComponent(ctx, "catalog"),
		actions: make(map[string]*action),
		clauses: cache.NewLRU[string, *clause](maxCachedClauses),
		eval:    newEvaluator(),
	}
}

// Register adds an action.
func (c *Catalog) Register(def Definition) error {
	if def.ID == "" {
		return fmt.Errorf("action id cannot be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.actions[def.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateAction, def.ID)
	}
	c.actions[def.ID] = &action{def: def}
	c.order = append(c.order, def.ID)
	return nil
}

// MustRegister is Register for static tables; it panics on error.
func (c *Catalog) MustRegister(defs ...Definition) {
	for _, def := range defs {
		if err := c.Register(def); err != nil {
			panic(err)
		}
	}
}

// Has reports whether id is registered.
func (c *Catalog) Has(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.actions[id]
	return ok
}

// Definition returns the definition registered under id.
func (c *Catalog) Definition(id string) (Definition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.actions[id]
	if !ok {
		return Definition{}, false
	}
	return a.def, true
}

// ActionTitle returns the title of id, falling back to the id itself when
// the definition has none.
func (c *Catalog) ActionTitle(id string) (string, bool) {
	def, ok := c.Definition(id)
	if !ok {
		return "", false
	}
	if def.Title == "" {
		return def.ID, true
	}
	return def.Title, true
}

// Definitions returns every definition in registration order.
func (c *Catalog) Definitions() []Definition {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Definition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.actions[id].def)
	}
	return out
}

// ApplicableActions returns the actions among ids whose when clause holds
// in uctx. The order of ids is kept; unknown ids are dropped.
func (c *Catalog) ApplicableActions(ids []string, uctx entity.UIContext) []port.Action {
	c.mu.RLock()
	candidates := make([]*action, 0, len(ids))
	for _, id := range ids {
		if a, ok := c.actions[id]; ok {
			candidates = append(candidates, a)
		} else {
			logging.FromContext(logging.WithActionID(c.ctx, id)).Debug().Msg("action not in catalog")
		}
	}
	c.mu.RUnlock()

	out := make([]port.Action, 0, len(candidates))
	for _, a := range candidates {
		if a.def.When == "" {
			out = append(out, a)
			continue
		}
		ok, err := c.eval.eval(c.ctx, c.clause(a.def.When), uctx)
		if err != nil {
			logging.FromContext(logging.WithActionID(c.ctx, a.def.ID)).Warn().Err(err).Msg("when clause failed, action skipped")
			continue
		}
		if ok {
			out = append(out, a)
		}
	}
	return out
}

// Precompile compiles every when clause up front and reports the first
// syntax error. Compiled clauses are cached for ApplicableActions.
func (c *Catalog) Precompile(ctx context.Context) error {
	c.mu.RLock()
	exprs := make(map[string]string)
	for _, id := range c.order {
		if w := c.actions[id].def.When; w != "" {
			if _, seen := exprs[w]; !seen {
				exprs[w] = id
			}
		}
	}
	c.mu.RUnlock()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for expr, id := range exprs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if cl := c.clause(expr); cl.err != nil {
				return fmt.Errorf("action %q: %w", id, cl.err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().Int("clauses", len(exprs)).Msg("when clauses compiled")
	return nil
}

func (c *Catalog) clause(expr string) *clause {
	return c.clauses.GetOrAdd(expr, func() *clause { return compileClause(expr) })
}

type action struct {
	def Definition
}

func (a *action) ID() string { return a.def.ID }

func (a *action) Execute(ctx context.Context) (bool, error) {
	if a.def.Handler == nil {
		return false, nil
	}
	return a.def.Handler(ctx)
}
