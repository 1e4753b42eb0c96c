package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/keyroute/internal/domain/entity"
)

func TestContextStore_SnapshotIsIsolated(t *testing.T) {
	s := NewContextStore(entity.NewUIContext().With("panel", "console"))

	snap := s.CurrentContext()
	snap.Set("panel", "elements")

	v, ok := s.CurrentContext().Value("panel")
	require.True(t, ok)
	assert.Equal(t, "console", v)
}

func TestContextStore_ApplyNotifiesOnce(t *testing.T) {
	s := NewContextStore(entity.NewUIContext())

	var calls []entity.UIContext
	s.SetOnChange(func(c entity.UIContext) { calls = append(calls, c) })

	s.Apply(map[string]any{"debugger_paused": true, "panel": "sources"})
	s.Apply(nil)

	require.Len(t, calls, 1)
	assert.Equal(t, []string{"debugger_paused", "panel"}, calls[0].Keys())

	s.Set("debugger_paused", false)
	v, _ := s.CurrentContext().Value("debugger_paused")
	assert.Equal(t, false, v)
	assert.Len(t, calls, 2)
}

func TestContextStore_ConcurrentAccess(t *testing.T) {
	s := NewContextStore(entity.NewUIContext())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			s.Set("n", i)
		}(i)
		go func() {
			defer wg.Done()
			_ = s.CurrentContext().Flags()
		}()
	}
	wg.Wait()

	_, ok := s.CurrentContext().Value("n")
	assert.True(t, ok)
}
