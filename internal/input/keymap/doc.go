// Package keymap maintains the table of named, context-scoped keybindings.
//
// A binding maps a keystroke spec like "ctrl-g" to an action name, optionally
// scoped to a key context: an opaque label that UI nodes declare to restrict
// which bindings apply while focus is within them. Matching is resolved
// against the focused node's ancestor context sequence, innermost first;
// the binding scoped to the deepest declared context wins, and registration
// order breaks remaining ties with the most recent registration winning.
//
// Malformed binding specs are rejected individually at bind time; the rest
// of the batch still installs, and the error reports every offender so a
// bad binding is observable at configuration-load time instead of silently
// doing nothing forever.
//
// Dispatch takes an explicit Snapshot of the table at the start of each
// pass, so a mid-pass rebind cannot retroactively alter in-flight routing.
//
// Bindings load from TOML files:
//
//	[[bindings]]
//	keys = "ctrl-g"
//	action = "demo.ping"
//	context = "parent"
//
// and a Watcher re-applies a file whenever it changes on disk.
package keymap
