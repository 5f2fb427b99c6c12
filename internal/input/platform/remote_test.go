package platform

import (
	"errors"
	"testing"

	"github.com/crestui/crest/internal/input/event"
	"github.com/crestui/crest/internal/input/key"
)

func TestDecodeKeyDown(t *testing.T) {
	ev, err := DecodeEvent(WireEvent{Type: "key-down", Keys: "ctrl-g", Held: true})
	if err != nil {
		t.Fatalf("DecodeEvent: %v", err)
	}
	kd, ok := ev.(event.KeyDownEvent)
	if !ok {
		t.Fatalf("got %T, want KeyDownEvent", ev)
	}
	if kd.Keystroke != key.MustParseKeystroke("ctrl-g") {
		t.Errorf("keystroke = %v, want ctrl-g", kd.Keystroke)
	}
	if !kd.IsHeld {
		t.Error("held flag dropped")
	}
}

func TestDecodeModifiersChanged(t *testing.T) {
	ev, err := DecodeEvent(WireEvent{Type: "modifiers-changed", Modifiers: []string{"ctrl", "shift"}})
	if err != nil {
		t.Fatalf("DecodeEvent: %v", err)
	}
	mc := ev.(event.ModifiersChangedEvent)
	if !mc.HasControl() || !mc.HasShift() || mc.HasAlt() {
		t.Errorf("modifiers = %v, want ctrl-shift", mc.Modifiers)
	}
}

func TestDecodeMouseDown(t *testing.T) {
	ev, err := DecodeEvent(WireEvent{
		Type: "mouse-down", Button: "right", X: 10, Y: 20,
		Modifiers: []string{"alt"}, ClickCount: 2,
	})
	if err != nil {
		t.Fatalf("DecodeEvent: %v", err)
	}
	md := ev.(event.MouseDownEvent)
	if md.Button != event.MouseButtonRight {
		t.Errorf("button = %v, want right", md.Button)
	}
	if md.Position.X != 10 || md.Position.Y != 20 {
		t.Errorf("position = %v, want (10, 20)", md.Position)
	}
	if md.ClickCount != 2 {
		t.Errorf("click count = %d, want 2", md.ClickCount)
	}
	if !md.Modifiers.HasAlt() {
		t.Error("alt modifier dropped")
	}
}

func TestDecodeMouseDownDefaultsClickCount(t *testing.T) {
	ev, err := DecodeEvent(WireEvent{Type: "mouse-down", Button: "left"})
	if err != nil {
		t.Fatalf("DecodeEvent: %v", err)
	}
	if count := ev.(event.MouseDownEvent).ClickCount; count != 1 {
		t.Errorf("click count = %d, want 1", count)
	}
}

func TestDecodeMouseMoveDrag(t *testing.T) {
	ev, err := DecodeEvent(WireEvent{Type: "mouse-move", X: 1, Y: 2, Pressed: "middle"})
	if err != nil {
		t.Fatalf("DecodeEvent: %v", err)
	}
	mm := ev.(event.MouseMoveEvent)
	if !mm.Dragging() || *mm.PressedButton != event.MouseButtonMiddle {
		t.Errorf("pressed = %v, want middle", mm.PressedButton)
	}
}

func TestDecodeScrollWheel(t *testing.T) {
	tests := []struct {
		name        string
		wire        WireEvent
		wantPrecise bool
		wantPhase   event.TouchPhase
	}{
		{
			"wheel lines",
			WireEvent{Type: "scroll-wheel", DeltaY: -3},
			false, event.TouchMoved,
		},
		{
			"trackpad pixels",
			WireEvent{Type: "scroll-wheel", DeltaX: 1.5, DeltaY: -40.25, Precise: true, Phase: "started"},
			true, event.TouchStarted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := DecodeEvent(tt.wire)
			if err != nil {
				t.Fatalf("DecodeEvent: %v", err)
			}
			sw := ev.(event.ScrollWheelEvent)
			if sw.Delta.Precise() != tt.wantPrecise {
				t.Errorf("precise = %v, want %v", sw.Delta.Precise(), tt.wantPrecise)
			}
			if sw.Phase != tt.wantPhase {
				t.Errorf("phase = %v, want %v", sw.Phase, tt.wantPhase)
			}
			if raw := sw.Delta.Raw(); raw.X != tt.wire.DeltaX || raw.Y != tt.wire.DeltaY {
				t.Errorf("delta = %v, want (%g, %g)", raw, tt.wire.DeltaX, tt.wire.DeltaY)
			}
		})
	}
}

func TestDecodeFileDrop(t *testing.T) {
	ev, err := DecodeEvent(WireEvent{
		Type: "file-drop", Phase: "entered", X: 5, Y: 5,
		Files: []string{"/tmp/a.txt", "/tmp/b.txt"},
	})
	if err != nil {
		t.Fatalf("DecodeEvent: %v", err)
	}
	fd := ev.(event.FileDropEvent)
	if fd.Phase != event.FileDropEntered {
		t.Errorf("phase = %v, want entered", fd.Phase)
	}
	if len(fd.Files) != 2 {
		t.Errorf("files = %v, want 2 paths", fd.Files)
	}
}

func TestDecodeRejectsMalformedFrames(t *testing.T) {
	tests := []struct {
		name    string
		wire    WireEvent
		wantErr error
	}{
		{"unknown type", WireEvent{Type: "gamepad"}, ErrUnknownWireType},
		{"bad keys", WireEvent{Type: "key-down", Keys: "hyper-g"}, ErrBadWireField},
		{"bad button", WireEvent{Type: "mouse-down", Button: "thumb"}, ErrBadWireField},
		{"bad modifier", WireEvent{Type: "modifiers-changed", Modifiers: []string{"hyper"}}, ErrBadWireField},
		{"bad drop phase", WireEvent{Type: "file-drop", Phase: "hovering"}, ErrBadWireField},
		{"bad scroll phase", WireEvent{Type: "scroll-wheel", Phase: "warp"}, ErrBadWireField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeEvent(tt.wire); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
