// Package event defines the normalized input-event taxonomy shared by every
// layer of the interaction system.
//
// The taxonomy is a closed union: exactly nine kinds of events exist
// (KeyDown, KeyUp, ModifiersChanged, MouseDown, MouseUp, MouseMove,
// MouseExited, ScrollWheel, FileDrop) and downstream code can neither add
// nor remove variants. The Event interface is sealed with an unexported
// method so that dispatch logic can switch over Kind exhaustively.
//
// Two query operations cover every consumer:
//
//   - Position extracts the pointer position from any variant that carries
//     one; keyboard variants and the Exited phase of a file drop do not.
//   - MouseEvent and KeyboardEvent narrow an event into an Erased handle
//     whose payload can be recovered with a checked downcast via As. The
//     two predicates partition the taxonomy completely and disjointly.
//
// ClickEvent is deliberately outside the union: it is synthesized by the
// router from a MouseDown/MouseUp pair on the same target, never produced
// by the platform layer.
//
// All event payloads are immutable value types. An event is valid only for
// the dispatch pass that delivers it; listeners that need it later must
// copy it (a plain assignment suffices).
package event
