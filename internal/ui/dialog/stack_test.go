package dialog

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStack_InitialState(t *testing.T) {
	s := NewStack(context.Background())

	assert.False(t, s.HasDialog())
	assert.Equal(t, "", s.Top())
	assert.Equal(t, 0, s.Depth())
}

func TestStack_OpenClose(t *testing.T) {
	s := NewStack(context.Background())

	s.Open("confirm", 0)
	s.Open("settings", 0)

	assert.True(t, s.HasDialog())
	assert.Equal(t, "settings", s.Top())
	assert.Equal(t, 2, s.Depth())

	s.Close("settings")
	assert.Equal(t, "confirm", s.Top())

	top, ok := s.CloseTop()
	assert.True(t, ok)
	assert.Equal(t, "confirm", top)
	assert.False(t, s.HasDialog())

	_, ok = s.CloseTop()
	assert.False(t, ok)
}

func TestStack_ReopenMovesToTop(t *testing.T) {
	s := NewStack(context.Background())

	s.Open("a", 0)
	s.Open("b", 0)
	s.Open("a", 0)

	assert.Equal(t, 2, s.Depth())
	assert.Equal(t, "a", s.Top())
}

func TestStack_CloseUnknownIsNoop(t *testing.T) {
	s := NewStack(context.Background())
	calls := 0
	s.SetOnChange(func(string, int) { calls++ })

	s.Close("ghost")

	assert.Equal(t, 0, calls)
}

func TestStack_Timeout(t *testing.T) {
	s := NewStack(context.Background())

	s.Open("toast", 20*time.Millisecond)
	assert.True(t, s.HasDialog())

	assert.Eventually(t, func() bool { return !s.HasDialog() }, time.Second, 5*time.Millisecond)
}

func TestStack_ReopenIgnoresStaleTimer(t *testing.T) {
	s := NewStack(context.Background())

	s.Open("toast", time.Hour)
	stale := s.gens["toast"]
	s.Open("toast", 0)

	// A timer from the first opening that already fired and is waiting on
	// the lock must not close the reopened dialog.
	s.expire("toast", stale)

	assert.True(t, s.HasDialog())
	assert.Equal(t, "toast", s.Top())
}

func TestStack_CloseThenExpireIsNoop(t *testing.T) {
	s := NewStack(context.Background())
	calls := 0
	s.SetOnChange(func(string, int) { calls++ })

	s.Open("toast", time.Hour)
	gen := s.gens["toast"]
	s.Close("toast")
	s.expire("toast", gen)

	assert.False(t, s.HasDialog())
	assert.Equal(t, 2, calls)
}

func TestStack_ReopenWithTimeoutExpiresOnce(t *testing.T) {
	s := NewStack(context.Background())

	s.Open("toast", time.Hour)
	s.Open("toast", 20*time.Millisecond)

	assert.Eventually(t, func() bool { return !s.HasDialog() }, time.Second, 5*time.Millisecond)
}

func TestStack_OnChange(t *testing.T) {
	s := NewStack(context.Background())

	var mu sync.Mutex
	var tops []string
	var depths []int
	s.SetOnChange(func(top string, depth int) {
		mu.Lock()
		defer mu.Unlock()
		tops = append(tops, top)
		depths = append(depths, depth)
	})

	s.Open("a", 0)
	s.Open("b", 0)
	s.Close("b")
	s.Close("a")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"a", "b", "a", ""}, tops)
	assert.Equal(t, []int{1, 2, 1, 0}, depths)
}
