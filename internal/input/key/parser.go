package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse errors.
var (
	ErrEmptySpec   = errors.New("empty keystroke specification")
	ErrInvalidSpec = errors.New("invalid keystroke specification")
)

// keyNameAliases maps accepted key-name spellings to their canonical form.
var keyNameAliases = map[string]string{
	"esc":    "escape",
	"return": "enter",
	"cr":     "enter",
	"bs":     "backspace",
	"del":    "delete",
	"ins":    "insert",
	"pgup":   "pageup",
	"pgdn":   "pagedown",
}

// namedKeys is the set of recognized multi-character key names, canonical
// spelling only.
var namedKeys = map[string]bool{
	"escape":    true,
	"enter":     true,
	"tab":       true,
	"backspace": true,
	"delete":    true,
	"insert":    true,
	"home":      true,
	"end":       true,
	"pageup":    true,
	"pagedown":  true,
	"up":        true,
	"down":      true,
	"left":      true,
	"right":     true,
	"space":     true,
	"f1":        true,
	"f2":        true,
	"f3":        true,
	"f4":        true,
	"f5":        true,
	"f6":        true,
	"f7":        true,
	"f8":        true,
	"f9":        true,
	"f10":       true,
	"f11":       true,
	"f12":       true,
}

// ParseKeystroke parses a spec string like "ctrl-g", "cmd-shift-p", "enter"
// or "alt-f4" into a Keystroke. The last hyphen-separated token is the key;
// every preceding token must name a modifier. A trailing "-" denotes the
// literal hyphen key, so "ctrl--" parses as control plus "-".
func ParseKeystroke(spec string) (Keystroke, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Keystroke{}, ErrEmptySpec
	}

	parts := strings.Split(spec, "-")
	keyPart := parts[len(parts)-1]
	modParts := parts[:len(parts)-1]

	// "ctrl--" splits into ["ctrl", "", ""]: the empty tail means the key
	// itself is a hyphen.
	if keyPart == "" {
		if len(modParts) == 0 {
			return Keystroke{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
		}
		keyPart = "-"
		modParts = modParts[:len(modParts)-1]
	}

	var mods Modifiers
	for _, p := range modParts {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Keystroke{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidSpec, p, spec)
		}
		mods = mods.With(mod)
	}

	name, err := normalizeKeyName(keyPart)
	if err != nil {
		return Keystroke{}, fmt.Errorf("%w in %q", err, spec)
	}

	return Keystroke{Modifiers: mods, Key: name}, nil
}

// MustParseKeystroke parses a spec and panics on error. Use only for
// known-valid specs in initialization code.
func MustParseKeystroke(spec string) Keystroke {
	k, err := ParseKeystroke(spec)
	if err != nil {
		panic("invalid keystroke specification: " + spec + ": " + err.Error())
	}
	return k
}

// normalizeKeyName canonicalizes a key token: single characters are
// lowercased, named keys are resolved through their aliases.
func normalizeKeyName(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", fmt.Errorf("%w: missing key", ErrInvalidSpec)
	}

	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		if r == ' ' {
			return "space", nil
		}
		return string(unicode.ToLower(r)), nil
	}

	if canonical, ok := keyNameAliases[name]; ok {
		name = canonical
	}
	if namedKeys[name] {
		return name, nil
	}
	return "", fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, name)
}
