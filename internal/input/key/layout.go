package key

import (
	"fmt"
	"strings"
)

// legend is the pair of characters printed on a key. A zero rune means the
// key prints nothing in that shift state.
type legend struct {
	normal  rune
	shifted rune
}

// Layout maps physical keys to characters.
type Layout struct {
	name    string
	legends map[Key]legend
	reverse map[rune]Event
}

// Names of the built-in layouts.
const (
	LayoutQWERTY = "qwerty"
	LayoutQWERTZ = "qwertz"
)

var usPunctuation = map[Key]legend{
	Key0:            {'0', ')'},
	Key1:            {'1', '!'},
	Key2:            {'2', '@'},
	Key3:            {'3', '#'},
	Key4:            {'4', '$'},
	Key5:            {'5', '%'},
	Key6:            {'6', '^'},
	Key7:            {'7', '&'},
	Key8:            {'8', '*'},
	Key9:            {'9', '('},
	KeySpace:        {' ', ' '},
	KeyMinus:        {'-', '_'},
	KeyEqual:        {'=', '+'},
	KeyLeftBracket:  {'[', '{'},
	KeyRightBracket: {']', '}'},
	KeyBackslash:    {'\\', '|'},
	KeySemicolon:    {';', ':'},
	KeyQuote:        {'\'', '"'},
	KeyBackquote:    {'`', '~'},
	KeyComma:        {',', '<'},
	KeyPeriod:       {'.', '>'},
	KeySlash:        {'/', '?'},
}

// germanPunctuation is the legend set of a German typewriter, addressed by
// US key position. Keys it omits print nothing.
var germanPunctuation = map[Key]legend{
	Key0:            {'0', '='},
	Key1:            {'1', '!'},
	Key2:            {'2', '"'},
	Key3:            {'3', 0},
	Key4:            {'4', 0},
	Key5:            {'5', 0},
	Key6:            {'6', 0},
	Key7:            {'7', '/'},
	Key8:            {'8', '('},
	Key9:            {'9', ')'},
	KeySpace:        {' ', ' '},
	KeyMinus:        {0, '?'},
	KeyRightBracket: {'+', '*'},
	KeyBackslash:    {0, '\''},
	KeyComma:        {',', 0},
	KeyPeriod:       {'.', ':'},
	KeySlash:        {'-', 0},
}

// newLayout builds a layout from letter legends plus punctuation, applying
// swaps of letter keys. Each swap exchanges both the shifted and unshifted
// legends.
func newLayout(name string, punctuation map[Key]legend, swaps map[Key]Key) *Layout {
	l := &Layout{
		name:    name,
		legends: make(map[Key]legend, len(punctuation)+26),
	}
	for k := KeyA; k <= KeyZ; k++ {
		lower := rune('a' + (k - KeyA))
		l.legends[k] = legend{lower, lower - 'a' + 'A'}
	}
	for k, lg := range punctuation {
		l.legends[k] = lg
	}
	for a, b := range swaps {
		l.legends[a], l.legends[b] = l.legends[b], l.legends[a]
	}
	l.buildReverse()
	return l
}

func (l *Layout) buildReverse() {
	l.reverse = make(map[rune]Event, 2*len(l.legends))
	for k, lg := range l.legends {
		if _, ok := l.reverse[lg.normal]; !ok && lg.normal != 0 {
			l.reverse[lg.normal] = Event{Key: k}
		}
		if lg.shifted != lg.normal && lg.shifted != 0 {
			l.reverse[lg.shifted] = Event{Key: k, Modifiers: ModShift}
		}
	}
}

// QWERTY returns the US layout.
func QWERTY() *Layout {
	return newLayout(LayoutQWERTY, usPunctuation, nil)
}

// QWERTZ returns the German typewriter layout: Y and Z transposed and the
// German punctuation legends.
func QWERTZ() *Layout {
	return newLayout(LayoutQWERTZ, germanPunctuation, map[Key]Key{KeyY: KeyZ})
}

// LayoutByName returns a built-in layout.
func LayoutByName(name string) (*Layout, error) {
	switch strings.ToLower(name) {
	case LayoutQWERTY:
		return QWERTY(), nil
	case LayoutQWERTZ, "":
		return QWERTZ(), nil
	default:
		return nil, fmt.Errorf("unknown keyboard layout %q", name)
	}
}

// Name returns the layout name.
func (l *Layout) Name() string {
	return l.name
}

// Char returns the character produced by k, or false if k prints nothing.
func (l *Layout) Char(k Key, shifted bool) (rune, bool) {
	lg, ok := l.legends[k]
	if !ok {
		return 0, false
	}
	ch := lg.normal
	if shifted {
		ch = lg.shifted
	}
	return ch, ch != 0
}

// KeyFor returns the key press that produces r on this layout.
func (l *Layout) KeyFor(r rune) (Event, bool) {
	ev, ok := l.reverse[r]
	return ev, ok
}

var usLayout = QWERTY()

// FromRune returns the physical key press that types r on a US keyboard.
// Terminals report characters rather than key positions; this recovers the
// position so a layout can be applied on top.
func FromRune(r rune) (Event, bool) {
	return usLayout.KeyFor(r)
}
