package input

import (
	"errors"
	"fmt"
)

// ErrUnknownAction is logged when a query names an action with no bindings.
var ErrUnknownAction = errors.New("unknown action")

// Outcome is the terminal result of dispatching one key event.
type Outcome interface {
	// Consumed reports whether the event was consumed by the registry.
	Consumed() bool
	String() string
	outcome()
}

// Fired reports that ActionID ran and accepted the event.
type Fired struct {
	ActionID string
}

// ForwardedShortcut marks an event deliberately left to the host.
type ForwardedShortcut struct{}

// Blocked reports that a modal dialog swallowed the event before any action ran.
type Blocked struct{}

// Unhandled reports that every candidate declined the event.
type Unhandled struct{}

func (Fired) Consumed() bool             { return true }
func (ForwardedShortcut) Consumed() bool { return false }
func (Blocked) Consumed() bool           { return true }
func (Unhandled) Consumed() bool         { return true }

func (Fired) outcome()             {}
func (ForwardedShortcut) outcome() {}
func (Blocked) outcome()           {}
func (Unhandled) outcome()         {}

func (f Fired) String() string           { return "fired " + f.ActionID }
func (ForwardedShortcut) String() string { return "forwarded" }
func (Blocked) String() string           { return "blocked by dialog" }
func (Unhandled) String() string         { return "unhandled" }

// ActionError wraps a failure returned by an action's Execute. The event that
// triggered it was already consumed and no further candidate was tried.
type ActionError struct {
	ActionID string
	Err      error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("action %q failed: %v", e.ActionID, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}
