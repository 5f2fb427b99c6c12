package event

import (
	"fmt"

	"github.com/crestui/crest/internal/geometry"
)

// Kind identifies one variant of the input-event union.
type Kind uint8

const (
	// KindKeyDown is a key press or OS key repeat.
	KindKeyDown Kind = iota
	// KindKeyUp is a key release.
	KindKeyUp
	// KindModifiersChanged is a modifier transition with no key press.
	KindModifiersChanged
	// KindMouseDown is a mouse button press.
	KindMouseDown
	// KindMouseUp is a mouse button release.
	KindMouseUp
	// KindMouseMove is a pointer move, hovering or dragging.
	KindMouseMove
	// KindMouseExited is the pointer leaving a tracked region.
	KindMouseExited
	// KindScrollWheel is a wheel or trackpad scroll.
	KindScrollWheel
	// KindFileDrop is one phase of a drag-and-drop gesture.
	KindFileDrop
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindKeyDown:
		return "key-down"
	case KindKeyUp:
		return "key-up"
	case KindModifiersChanged:
		return "modifiers-changed"
	case KindMouseDown:
		return "mouse-down"
	case KindMouseUp:
		return "mouse-up"
	case KindMouseMove:
		return "mouse-move"
	case KindMouseExited:
		return "mouse-exited"
	case KindScrollWheel:
		return "scroll-wheel"
	case KindFileDrop:
		return "file-drop"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Event is the closed union over all normalized input events. Only the nine
// variant types in this package implement it.
type Event interface {
	// Kind identifies the variant.
	Kind() Kind

	sealed()
}

// Position returns the pointer position carried by the event. The second
// return is false for KeyDown, KeyUp, ModifiersChanged, and the Exited
// phase of a FileDrop; every other variant stores a position at
// construction and returns it here unchanged.
func Position(e Event) (geometry.Point, bool) {
	switch ev := e.(type) {
	case KeyDownEvent:
		return geometry.Point{}, false
	case KeyUpEvent:
		return geometry.Point{}, false
	case ModifiersChangedEvent:
		return geometry.Point{}, false
	case MouseDownEvent:
		return ev.Position, true
	case MouseUpEvent:
		return ev.Position, true
	case MouseMoveEvent:
		return ev.Position, true
	case MouseExitEvent:
		return ev.Position, true
	case ScrollWheelEvent:
		return ev.Position, true
	case FileDropEvent:
		if ev.Phase == FileDropExited {
			return geometry.Point{}, false
		}
		return ev.Position, true
	default:
		// Unreachable: the union is sealed.
		return geometry.Point{}, false
	}
}
