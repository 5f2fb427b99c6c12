// Package key provides the keyboard primitives for the input system.
//
// Two types carry all keyboard state:
//
//   - Modifiers: an immutable snapshot of the modifier keys (control, alt,
//     shift, meta/command, function) held at the moment of an event.
//   - Keystroke: a physical key identity plus the Modifiers snapshot active
//     when it was pressed. Equality is structural.
//
// # Keystroke specifications
//
// Keystrokes serialize to and parse from hyphen-separated specs:
//
//   - Bare keys: "g", "enter", "f4", "space"
//   - With modifiers: "ctrl-g", "cmd-shift-p", "alt-f4"
//
// The serialization is canonical: modifiers always appear in the order
// ctrl, alt, shift, cmd, fn, and key names are lowercase. For any
// representable keystroke k, ParseKeystroke(k.String()) == k.
package key
