// Package action gives named actions their identity.
//
// An action is a nominally-typed, data-carrying marker: any Go type can
// serve, usually an empty or small struct. Its identity is its concrete
// type, which is stable and comparable; its payload shape is irrelevant to
// dispatch. A Registry maps human-readable names (the vocabulary used by
// keybinding tables) to action types and builds zero-value instances from
// those names, in the spirit of gob.Register.
package action
