// Package dialog tracks the modal dialogs currently on screen.
package dialog

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/bnema/keyroute/internal/application/port"
	"github.com/bnema/keyroute/internal/logging"
)

// Stack is the set of open modal dialogs, most recent last.
// A dialog may be opened with a timeout after which it closes itself.
type Stack struct {
	open   []string
	timers map[string]*time.Timer
	// gens holds the generation of each open dialog. A timer only closes
	// the dialog if it still carries the generation it was armed for.
	gens map[string]uint64
	seq  uint64

	// Callback for changes (called synchronously under lock).
	onChange func(top string, depth int)

	ctx context.Context
	mu  sync.RWMutex
}

// Compile-time interface check.
var _ port.DialogPresence = (*Stack)(nil)

// NewStack creates an empty dialog stack.
func NewStack(ctx context.Context) *Stack {
	return &Stack{
		timers: make(map[string]*time.Timer),
		gens:   make(map[string]uint64),
		ctx:    ctx,
	}
}

// HasDialog reports whether any dialog is open.
func (s *Stack) HasDialog() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.open) > 0
}

// Top returns the most recently opened dialog, or "" when none is open.
func (s *Stack) Top() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.open) == 0 {
		return ""
	}
	return s.open[len(s.open)-1]
}

// Depth returns the number of open dialogs.
func (s *Stack) Depth() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.open)
}

// Open pushes name onto the stack. Opening a dialog that is already open
// moves it to the top and restarts its timeout. A zero timeout keeps the
// dialog until Close.
func (s *Stack) Open(name string, timeout time.Duration) {
	log := logging.FromContext(s.ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(name)
	s.open = append(s.open, name)
	s.seq++
	gen := s.seq
	s.gens[name] = gen
	if timeout > 0 {
		s.timers[name] = time.AfterFunc(timeout, func() {
			s.expire(name, gen)
		})
	}

	log.Debug().
		Str("dialog", name).
		Int("depth", len(s.open)).
		Dur("timeout", timeout).
		Msg("dialog opened")

	s.notifyLocked()
}

// Close removes name from the stack. Closing a dialog that is not open does
// nothing.
func (s *Stack) Close(name string) {
	log := logging.FromContext(s.ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.removeLocked(name) {
		return
	}

	log.Debug().
		Str("dialog", name).
		Int("depth", len(s.open)).
		Msg("dialog closed")

	s.notifyLocked()
}

// expire closes name if it is still the opening the timer was armed for.
// A timer that fired while the dialog was being reopened finds a newer
// generation and does nothing.
func (s *Stack) expire(name string, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gens[name] != gen || !s.removeLocked(name) {
		return
	}

	logging.FromContext(s.ctx).Debug().
		Str("dialog", name).
		Int("depth", len(s.open)).
		Msg("dialog timed out")

	s.notifyLocked()
}

// CloseTop closes the most recently opened dialog and returns its name.
func (s *Stack) CloseTop() (string, bool) {
	top := s.Top()
	if top == "" {
		return "", false
	}
	s.Close(top)
	return top, true
}

// SetOnChange sets the callback invoked after every open or close.
// The callback is invoked synchronously under the lock.
func (s *Stack) SetOnChange(fn func(top string, depth int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// removeLocked drops name and its timer. Must be called with s.mu held.
func (s *Stack) removeLocked(name string) bool {
	if t, ok := s.timers[name]; ok {
		t.Stop()
		delete(s.timers, name)
	}
	delete(s.gens, name)
	i := slices.Index(s.open, name)
	if i < 0 {
		return false
	}
	s.open = slices.Delete(s.open, i, i+1)
	return true
}

func (s *Stack) notifyLocked() {
	if s.onChange == nil {
		return
	}
	top := ""
	if len(s.open) > 0 {
		top = s.open[len(s.open)-1]
	}
	s.onChange(top, len(s.open))
}
