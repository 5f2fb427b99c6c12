package event

import (
	"github.com/crestui/crest/internal/geometry"
	"github.com/crestui/crest/internal/input/key"
)

// NavigationDirection distinguishes the two navigation mouse buttons.
type NavigationDirection uint8

const (
	// NavigateBack is the back navigation button (mouse button 4).
	NavigateBack NavigationDirection = iota
	// NavigateForward is the forward navigation button (mouse button 5).
	NavigateForward
)

// String returns "back" or "forward".
func (d NavigationDirection) String() string {
	if d == NavigateForward {
		return "forward"
	}
	return "back"
}

// MouseButton is the closed set of mouse buttons. The zero value is Left.
type MouseButton uint8

const (
	// MouseButtonLeft is the primary button.
	MouseButtonLeft MouseButton = iota
	// MouseButtonRight is the secondary button.
	MouseButtonRight
	// MouseButtonMiddle is the middle button (wheel click).
	MouseButtonMiddle
	// MouseButtonNavigateBack is the back navigation button.
	MouseButtonNavigateBack
	// MouseButtonNavigateForward is the forward navigation button.
	MouseButtonNavigateForward
)

// Navigate returns the navigation button for a direction.
func Navigate(d NavigationDirection) MouseButton {
	if d == NavigateForward {
		return MouseButtonNavigateForward
	}
	return MouseButtonNavigateBack
}

// AllMouseButtons returns the five canonical buttons in fixed order:
// left, right, middle, navigate-back, navigate-forward. Iteration-based
// consumers (e.g. cursor registration per button) rely on this exact order.
func AllMouseButtons() []MouseButton {
	return []MouseButton{
		MouseButtonLeft,
		MouseButtonRight,
		MouseButtonMiddle,
		MouseButtonNavigateBack,
		MouseButtonNavigateForward,
	}
}

// String returns a human-readable button name.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	case MouseButtonNavigateBack:
		return "navigate-back"
	case MouseButtonNavigateForward:
		return "navigate-forward"
	default:
		return "unknown"
	}
}

// MouseDownEvent is a button press. ClickCount is 1 for a single click,
// 2 for a double click, and so on; the platform layer computes it from its
// own timing and distance thresholds.
type MouseDownEvent struct {
	Button     MouseButton
	Position   geometry.Point
	Modifiers  key.Modifiers
	ClickCount int
}

// Kind implements Event.
func (MouseDownEvent) Kind() Kind { return KindMouseDown }

func (MouseDownEvent) sealed() {}

// MouseUpEvent is a button release.
type MouseUpEvent struct {
	Button     MouseButton
	Position   geometry.Point
	Modifiers  key.Modifiers
	ClickCount int
}

// Kind implements Event.
func (MouseUpEvent) Kind() Kind { return KindMouseUp }

func (MouseUpEvent) sealed() {}

// ClickEvent pairs a MouseDown with the qualifying MouseUp that completed
// the click gesture on the same target. It is synthesized by the router and
// is not a member of the input-event union.
type ClickEvent struct {
	Down MouseDownEvent
	Up   MouseUpEvent
}

// MouseMoveEvent is a pointer move. PressedButton is nil for a hover move
// and names the held button during a drag move.
type MouseMoveEvent struct {
	Position      geometry.Point
	PressedButton *MouseButton
	Modifiers     key.Modifiers
}

// Kind implements Event.
func (MouseMoveEvent) Kind() Kind { return KindMouseMove }

func (MouseMoveEvent) sealed() {}

// Dragging returns true if a button is held during the move.
func (e MouseMoveEvent) Dragging() bool {
	return e.PressedButton != nil
}

// MouseExitEvent fires when the pointer leaves a tracked region. It has the
// same shape as MouseMoveEvent and exposes the Modifiers read surface
// transparently.
type MouseExitEvent struct {
	Position      geometry.Point
	PressedButton *MouseButton
	key.Modifiers
}

// Kind implements Event.
func (MouseExitEvent) Kind() Kind { return KindMouseExited }

func (MouseExitEvent) sealed() {}
