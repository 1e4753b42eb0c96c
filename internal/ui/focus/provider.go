// Package focus tracks which text input currently receives keystrokes.
package focus

import (
	"sync"

	"github.com/bnema/keyroute/internal/application/port"
)

// Provider tracks which text input target currently has focus.
// While a target is focused the shortcut guard treats plain keys as typing.
type Provider struct {
	target port.TextInputTarget
	mu     sync.RWMutex
}

// Compile-time interface checks.
var (
	_ port.FocusedInputProvider = (*Provider)(nil)
	_ port.EditingFocus         = (*Provider)(nil)
)

// NewProvider creates a new focus provider.
func NewProvider() *Provider {
	return &Provider{}
}

// GetFocusedInput returns the currently focused text input target.
// Returns nil if no text input has focus.
func (p *Provider) GetFocusedInput() port.TextInputTarget {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.target
}

// SetFocusedInput sets the currently focused text input target.
// Pass nil to clear focus.
func (p *Provider) SetFocusedInput(target port.TextInputTarget) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.target = target
}

// IsEditing reports whether a text input has focus.
func (p *Provider) IsEditing() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.target != nil
}

// Field is a named text input target.
type Field string

// InputID returns the field name.
func (f Field) InputID() string {
	return string(f)
}
