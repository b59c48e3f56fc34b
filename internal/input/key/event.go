package key

import "time"

// Event represents a single physical key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewEvent creates a key event with the current timestamp.
func NewEvent(k Key, mods Modifier) Event {
	return Event{
		Key:       k,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// Shifted reports whether Shift is held.
func (e Event) Shifted() bool {
	return e.Modifiers.HasShift()
}

// IsModified returns true if a modifier other than Shift is held.
func (e Event) IsModified() bool {
	return e.Modifiers.Without(ModShift) != ModNone
}

// String returns a representation like "Shift+A".
func (e Event) String() string {
	if e.Modifiers == ModNone {
		return e.Key.String()
	}
	return e.Modifiers.String() + "+" + e.Key.String()
}
