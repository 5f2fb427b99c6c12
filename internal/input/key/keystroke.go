package key

// Keystroke identifies a physical key together with the Modifiers snapshot
// active when it was pressed. Keystrokes are comparable value types;
// equality is structural.
type Keystroke struct {
	// Modifiers held when the key was pressed.
	Modifiers Modifiers

	// Key is the canonical lowercase key name: a single character such as
	// "g", or a named key such as "enter", "escape", "f4".
	Key string
}

// Stroke builds a Keystroke from a key name and modifiers.
func Stroke(name string, mods Modifiers) Keystroke {
	return Keystroke{Modifiers: mods, Key: name}
}

// IsZero returns true for the zero-value keystroke (no key, no modifiers).
func (k Keystroke) IsZero() bool {
	return k.Key == "" && k.Modifiers == ModNone
}

// String returns the canonical spec form, e.g. "ctrl-g" or "enter".
// The result round-trips through ParseKeystroke.
func (k Keystroke) String() string {
	mods := k.Modifiers.String()
	if mods == "" {
		return k.Key
	}
	return mods + "-" + k.Key
}

// Matches reports whether the keystroke matches a spec string. A malformed
// spec matches nothing.
func (k Keystroke) Matches(spec string) bool {
	parsed, err := ParseKeystroke(spec)
	if err != nil {
		return false
	}
	return k == parsed
}
