package event

import "github.com/crestui/crest/internal/input/key"

// KeyDownEvent is a key press. IsHeld distinguishes an OS key repeat from
// an initial press; both are delivered to listeners, and any auto-repeat
// suppression is a routing policy, not encoded here.
type KeyDownEvent struct {
	Keystroke key.Keystroke
	IsHeld    bool
}

// Kind implements Event.
func (KeyDownEvent) Kind() Kind { return KindKeyDown }

func (KeyDownEvent) sealed() {}

// KeyUpEvent is a key release.
type KeyUpEvent struct {
	Keystroke key.Keystroke
}

// Kind implements Event.
func (KeyUpEvent) Kind() Kind { return KindKeyUp }

func (KeyUpEvent) sealed() {}

// ModifiersChangedEvent fires when the modifier snapshot changes without a
// key press or release, e.g. shift held on its own. The embedded Modifiers
// exposes its read surface directly: consumers call HasShift and friends on
// the event itself.
type ModifiersChangedEvent struct {
	key.Modifiers
}

// Kind implements Event.
func (ModifiersChangedEvent) Kind() Kind { return KindModifiersChanged }

func (ModifiersChangedEvent) sealed() {}
