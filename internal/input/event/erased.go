package event

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch is returned by As when the erased handle does not hold
// the requested concrete event type. It marks a programming error in the
// caller, never a routine runtime condition.
var ErrTypeMismatch = errors.New("erased event does not hold the requested type")

// Erased is a type-erased handle to one event from the union, produced by
// MouseEvent or KeyboardEvent. The concrete payload is recovered with As;
// asking for the wrong type fails loudly instead of returning wrong data.
type Erased struct {
	event Event
}

// Kind identifies the variant behind the handle.
func (e Erased) Kind() Kind {
	return e.event.Kind()
}

// Event returns the underlying event.
func (e Erased) Event() Event {
	return e.event
}

// MouseEvent narrows an event to its mouse capability. It returns a handle
// for MouseDown, MouseUp, MouseMove, MouseExited, ScrollWheel and every
// FileDrop phase, and reports false for the keyboard variants. FileDrop is
// classified here because it carries pointer semantics, not because a mouse
// produced it.
func MouseEvent(e Event) (Erased, bool) {
	switch e.Kind() {
	case KindMouseDown, KindMouseUp, KindMouseMove, KindMouseExited, KindScrollWheel, KindFileDrop:
		return Erased{event: e}, true
	default:
		return Erased{}, false
	}
}

// KeyboardEvent narrows an event to its keyboard capability. It returns a
// handle for KeyDown, KeyUp and ModifiersChanged and reports false
// otherwise. Together with MouseEvent it partitions the union: every
// variant satisfies exactly one of the two.
func KeyboardEvent(e Event) (Erased, bool) {
	switch e.Kind() {
	case KindKeyDown, KindKeyUp, KindModifiersChanged:
		return Erased{event: e}, true
	default:
		return Erased{}, false
	}
}

// As recovers the concrete payload from an erased handle. It fails with
// ErrTypeMismatch when T is not the type behind the handle.
func As[T Event](e Erased) (T, error) {
	typed, ok := e.event.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: have %T, want %T", ErrTypeMismatch, e.event, zero)
	}
	return typed, nil
}
