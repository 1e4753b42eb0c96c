// Package state holds the mutable UI state the host exposes to the
// shortcut registry.
package state

import (
	"sync"

	"github.com/bnema/keyroute/internal/application/port"
	"github.com/bnema/keyroute/internal/domain/entity"
)

// ContextStore is a concurrency-safe UIContext that actions can update.
type ContextStore struct {
	mu       sync.RWMutex
	current  entity.UIContext
	onChange func(entity.UIContext)
}

var _ port.UIContextProvider = (*ContextStore)(nil)

// NewContextStore creates a store seeded with initial.
func NewContextStore(initial entity.UIContext) *ContextStore {
	return &ContextStore{current: initial.Clone()}
}

// CurrentContext returns a snapshot of the context.
func (s *ContextStore) CurrentContext() entity.UIContext {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Set updates one flag.
func (s *ContextStore) Set(key string, value any) {
	s.Apply(map[string]any{key: value})
}

// Apply updates several flags at once and fires the change callback once.
func (s *ContextStore) Apply(flags map[string]any) {
	if len(flags) == 0 {
		return
	}

	s.mu.Lock()
	next := s.current.Clone()
	for k, v := range flags {
		next.Set(k, v)
	}
	s.current = next
	cb := s.onChange
	s.mu.Unlock()

	if cb != nil {
		cb(next.Clone())
	}
}

// SetOnChange registers a callback invoked after every update.
func (s *ContextStore) SetOnChange(fn func(entity.UIContext)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}
