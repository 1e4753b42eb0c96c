package port

// TextInputTarget is a text input field that can hold keyboard focus.
type TextInputTarget interface {
	// InputID identifies the field in logs.
	InputID() string
}

// FocusedInputProvider tracks which text input target currently has focus.
type FocusedInputProvider interface {
	// GetFocusedInput returns the currently focused text input target.
	// Returns nil if no text input has focus.
	GetFocusedInput() TextInputTarget

	// SetFocusedInput sets the currently focused text input target.
	// Pass nil to clear focus.
	SetFocusedInput(target TextInputTarget)
}

// EditingFocus reports whether keystrokes currently go to a text field.
type EditingFocus interface {
	IsEditing() bool
}

// DialogPresence reports whether a modal dialog is on screen.
type DialogPresence interface {
	HasDialog() bool
}
