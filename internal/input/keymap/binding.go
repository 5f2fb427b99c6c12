package keymap

import (
	"fmt"

	"github.com/crestui/crest/internal/input/key"
)

// Binding is one raw keybinding as written by a user or a config file.
type Binding struct {
	// Keys is the keystroke spec, e.g. "ctrl-g".
	Keys string `toml:"keys"`

	// Action is the registered action name to synthesize on a match.
	Action string `toml:"action"`

	// Context optionally scopes the binding to a key context label.
	// Empty means the binding applies wherever focus is.
	Context string `toml:"context,omitempty"`
}

// Compiled is a binding with its keystroke parsed and its registration
// sequence recorded. The sequence number orders same-specificity matches:
// higher (later) wins.
type Compiled struct {
	Keystroke key.Keystroke
	Action    string
	Context   string

	seq uint64
}

// MalformedBindingError reports a binding spec that failed to parse at bind
// time. The offending binding is rejected; the rest of its batch installs.
type MalformedBindingError struct {
	Keys string
	Err  error
}

// Error implements error.
func (e *MalformedBindingError) Error() string {
	return fmt.Sprintf("malformed binding %q: %v", e.Keys, e.Err)
}

// Unwrap exposes the parse error.
func (e *MalformedBindingError) Unwrap() error {
	return e.Err
}
