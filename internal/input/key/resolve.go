package key

// Action is the category of a resolved key press.
type Action uint8

const (
	// ActionIgnore is any key the typewriter does not react to.
	ActionIgnore Action = iota
	// ActionChar types Symbol.Char.
	ActionChar
	ActionBackspace
	ActionLeft
	ActionRight
	ActionEnter
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionIgnore:
		return "ignore"
	case ActionChar:
		return "char"
	case ActionBackspace:
		return "backspace"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionEnter:
		return "enter"
	default:
		return "unknown"
	}
}

// Symbol is a key press resolved against a layout.
type Symbol struct {
	Action Action
	Char   rune // valid when Action is ActionChar
}

// Resolver maps key events to symbols.
type Resolver struct {
	layout *Layout
}

// NewResolver creates a resolver for the given layout.
func NewResolver(layout *Layout) *Resolver {
	return &Resolver{layout: layout}
}

// Layout returns the active layout.
func (r *Resolver) Layout() *Layout {
	return r.layout
}

// Resolve maps an event to a symbol. Presses with Ctrl, Alt or Meta held
// are ignored.
func (r *Resolver) Resolve(ev Event) Symbol {
	if ev.IsModified() {
		return Symbol{Action: ActionIgnore}
	}
	switch ev.Key {
	case KeyBackspace:
		return Symbol{Action: ActionBackspace}
	case KeyLeft:
		return Symbol{Action: ActionLeft}
	case KeyRight:
		return Symbol{Action: ActionRight}
	case KeyEnter:
		return Symbol{Action: ActionEnter}
	}
	if ch, ok := r.layout.Char(ev.Key, ev.Shifted()); ok {
		return Symbol{Action: ActionChar, Char: ch}
	}
	return Symbol{Action: ActionIgnore}
}
