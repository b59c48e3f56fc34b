package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates the application is already running.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrNoBackend indicates Run was called before SetBackend.
	ErrNoBackend = errors.New("no display backend")
)

// ComponentError represents an error from a specific component.
type ComponentError struct {
	Component string // Component name (e.g., "backend", "config", "editor")
	Action    string // Action being performed
	Err       error  // Underlying error
}

// NewComponentError creates a new ComponentError.
func NewComponentError(component, action string, err error) *ComponentError {
	return &ComponentError{
		Component: component,
		Action:    action,
		Err:       err,
	}
}

func (e *ComponentError) Error() string {
	if e == nil {
		return ""
	}

	if e.Action != "" {
		if e.Err != nil {
			return fmt.Sprintf("%s: %s: %v", e.Component, e.Action, e.Err)
		}
		return fmt.Sprintf("%s: %s", e.Component, e.Action)
	}

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Component, e.Err)
	}

	return e.Component
}

func (e *ComponentError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// FatalError wraps a panic recovered while handling an event. The editor
// state can no longer be trusted, so the application stops.
type FatalError struct {
	Event string // Event being handled
	Value any    // Recovered panic value
	Stack string
}

// NewFatalError creates a FatalError for a recovered panic value.
func NewFatalError(event string, value any, stack string) *FatalError {
	return &FatalError{Event: event, Value: value, Stack: stack}
}

// Error omits the stack; log it separately when needed.
func (e *FatalError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("fatal error handling %s: %v", e.Event, e.Value)
}

// Unwrap exposes the panic value when it is itself an error, so callers can
// match an *editor.InvariantError with errors.As.
func (e *FatalError) Unwrap() error {
	if e == nil {
		return nil
	}
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
