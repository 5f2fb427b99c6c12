package event

import (
	"errors"
	"testing"

	"github.com/crestui/crest/internal/geometry"
	"github.com/crestui/crest/internal/input/key"
)

func TestAsRecoversPayload(t *testing.T) {
	down := MouseDownEvent{
		Button:     MouseButtonRight,
		Position:   geometry.Pt(10, 20),
		ClickCount: 2,
	}

	erased, ok := MouseEvent(down)
	if !ok {
		t.Fatal("MouseEvent(MouseDownEvent) returned no handle")
	}
	if erased.Kind() != KindMouseDown {
		t.Errorf("erased Kind = %v, want mouse-down", erased.Kind())
	}

	got, err := As[MouseDownEvent](erased)
	if err != nil {
		t.Fatalf("As[MouseDownEvent] error: %v", err)
	}
	if got != down {
		t.Errorf("As payload = %+v, want %+v", got, down)
	}
}

func TestAsWrongTypeFails(t *testing.T) {
	erased, ok := KeyboardEvent(KeyDownEvent{Keystroke: key.MustParseKeystroke("g")})
	if !ok {
		t.Fatal("KeyboardEvent(KeyDownEvent) returned no handle")
	}

	if _, err := As[KeyUpEvent](erased); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("As with wrong type: err = %v, want ErrTypeMismatch", err)
	}

	// The mismatch never aliases data: the correct type still works.
	if _, err := As[KeyDownEvent](erased); err != nil {
		t.Errorf("As with correct type after mismatch: %v", err)
	}
}

func TestNarrowingRejectsWrongCapability(t *testing.T) {
	if _, ok := MouseEvent(KeyUpEvent{}); ok {
		t.Error("MouseEvent accepted a keyboard variant")
	}
	if _, ok := KeyboardEvent(ScrollWheelEvent{}); ok {
		t.Error("KeyboardEvent accepted a mouse variant")
	}
}
