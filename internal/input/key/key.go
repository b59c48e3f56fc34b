package key

// Key identifies a physical key. Letter and punctuation keys are named by
// their US-layout legend.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Letter keys
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Digit row
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// Punctuation
	KeySpace
	KeyMinus
	KeyEqual
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeySemicolon
	KeyQuote
	KeyBackquote
	KeyComma
	KeyPeriod
	KeySlash

	// Control keys
	KeyEnter
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEscape
	KeyTab
	KeyDelete
	KeyHome
	KeyEnd

	keyCount
)

var keyNames = map[Key]string{
	KeyNone:         "None",
	KeySpace:        "Space",
	KeyMinus:        "Minus",
	KeyEqual:        "Equal",
	KeyLeftBracket:  "LeftBracket",
	KeyRightBracket: "RightBracket",
	KeyBackslash:    "Backslash",
	KeySemicolon:    "Semicolon",
	KeyQuote:        "Quote",
	KeyBackquote:    "Backquote",
	KeyComma:        "Comma",
	KeyPeriod:       "Period",
	KeySlash:        "Slash",
	KeyEnter:        "Enter",
	KeyBackspace:    "Backspace",
	KeyLeft:         "Left",
	KeyRight:        "Right",
	KeyUp:           "Up",
	KeyDown:         "Down",
	KeyEscape:       "Escape",
	KeyTab:          "Tab",
	KeyDelete:       "Delete",
	KeyHome:         "Home",
	KeyEnd:          "End",
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch {
	case k.IsLetter():
		return string(rune('A' + (k - KeyA)))
	case k.IsDigit():
		return string(rune('0' + (k - Key0)))
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsLetter returns true for KeyA through KeyZ.
func (k Key) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// IsDigit returns true for Key0 through Key9.
func (k Key) IsDigit() bool {
	return k >= Key0 && k <= Key9
}

// IsValid returns true for any defined key other than KeyNone.
func (k Key) IsValid() bool {
	return k > KeyNone && k < keyCount
}
