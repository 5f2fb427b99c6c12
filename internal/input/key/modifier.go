package key

import "strings"

// Modifiers is a snapshot of the modifier keys held at the moment of an
// event. It is a value captured by the platform layer, not a live query.
type Modifiers uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifiers = 0

	// ModControl indicates the Control key.
	ModControl Modifiers = 1 << iota

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModShift indicates the Shift key.
	ModShift

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta

	// ModFunction indicates the Fn key.
	ModFunction
)

// Has returns true if m contains the specified modifier.
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod != 0
}

// HasControl returns true if Control is held.
func (m Modifiers) HasControl() bool {
	return m.Has(ModControl)
}

// HasAlt returns true if Alt is held.
func (m Modifiers) HasAlt() bool {
	return m.Has(ModAlt)
}

// HasShift returns true if Shift is held.
func (m Modifiers) HasShift() bool {
	return m.Has(ModShift)
}

// HasMeta returns true if Meta is held.
func (m Modifiers) HasMeta() bool {
	return m.Has(ModMeta)
}

// HasFunction returns true if Fn is held.
func (m Modifiers) HasFunction() bool {
	return m.Has(ModFunction)
}

// With returns a new Modifiers with the specified modifier added.
func (m Modifiers) With(mod Modifiers) Modifiers {
	return m | mod
}

// Without returns a new Modifiers with the specified modifier removed.
func (m Modifiers) Without(mod Modifiers) Modifiers {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are held.
func (m Modifiers) IsEmpty() bool {
	return m == ModNone
}

// String returns the canonical hyphen-separated representation, e.g.
// "ctrl-shift". The order is always ctrl, alt, shift, cmd, fn. Empty
// modifiers render as "".
func (m Modifiers) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.HasControl() {
		parts = append(parts, "ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "alt")
	}
	if m.HasShift() {
		parts = append(parts, "shift")
	}
	if m.HasMeta() {
		parts = append(parts, "cmd")
	}
	if m.HasFunction() {
		parts = append(parts, "fn")
	}
	return strings.Join(parts, "-")
}

// modifierNameMap maps modifier names (lowercase) to Modifiers values.
var modifierNameMap = map[string]Modifiers{
	"ctrl":     ModControl,
	"control":  ModControl,
	"alt":      ModAlt,
	"option":   ModAlt,
	"opt":      ModAlt,
	"shift":    ModShift,
	"cmd":      ModMeta,
	"command":  ModMeta,
	"meta":     ModMeta,
	"super":    ModMeta,
	"win":      ModMeta,
	"fn":       ModFunction,
	"function": ModFunction,
}

// ModifierFromName returns the Modifiers value for a given name
// (case-insensitive). Returns ModNone if the name is not recognized.
func ModifierFromName(name string) Modifiers {
	if m, ok := modifierNameMap[strings.ToLower(strings.TrimSpace(name))]; ok {
		return m
	}
	return ModNone
}

// ParseModifiers parses a hyphen-separated modifier list like "ctrl-shift".
// Unrecognized names are ignored. An empty string yields ModNone.
func ParseModifiers(s string) Modifiers {
	var result Modifiers
	if s == "" {
		return result
	}
	for _, part := range strings.Split(s, "-") {
		result = result.With(ModifierFromName(part))
	}
	return result
}
