package platform

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/crestui/crest/internal/input/event"
	"github.com/crestui/crest/internal/input/key"
)

func TestTranslateKeyEvents(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"plain rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), "a"},
		{"uppercase rune normalized", tcell.NewEventKey(tcell.KeyRune, 'G', tcell.ModNone), "g"},
		{"space rune", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "space"},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), "alt-x"},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlG, 0, tcell.ModCtrl), "ctrl-g"},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "escape"},
		{"enter over ctrl-m", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "enter"},
		{"tab over ctrl-i", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), "tab"},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), "backspace"},
		{"function key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), "f5"},
		{"shifted arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift), "shift-up"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTranslator()
			out := tr.Translate(tt.ev)
			if len(out) != 1 {
				t.Fatalf("got %d events, want 1", len(out))
			}
			kd, ok := out[0].(event.KeyDownEvent)
			if !ok {
				t.Fatalf("got %T, want KeyDownEvent", out[0])
			}
			if got := kd.Keystroke.String(); got != tt.want {
				t.Errorf("keystroke = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTranslateKeyMatchesParser(t *testing.T) {
	// Translator output must round-trip through the binding parser, or
	// terminal keys could never match bindings.
	tr := NewTranslator()
	out := tr.Translate(tcell.NewEventKey(tcell.KeyCtrlG, 0, tcell.ModCtrl))
	if len(out) != 1 {
		t.Fatalf("got %d events, want 1", len(out))
	}
	kd := out[0].(event.KeyDownEvent)

	parsed, err := key.ParseKeystroke(kd.Keystroke.String())
	if err != nil {
		t.Fatalf("ParseKeystroke(%q): %v", kd.Keystroke.String(), err)
	}
	if parsed != kd.Keystroke {
		t.Errorf("round-trip = %v, want %v", parsed, kd.Keystroke)
	}
}

func TestTranslateMouseButtonTransitions(t *testing.T) {
	tr := NewTranslator()

	out := tr.Translate(tcell.NewEventMouse(4, 2, tcell.Button1, tcell.ModNone))
	if len(out) != 1 {
		t.Fatalf("press: got %d events, want 1", len(out))
	}
	down, ok := out[0].(event.MouseDownEvent)
	if !ok {
		t.Fatalf("press: got %T, want MouseDownEvent", out[0])
	}
	if down.Button != event.MouseButtonLeft {
		t.Errorf("button = %v, want left", down.Button)
	}
	if down.Position.X != 4 || down.Position.Y != 2 {
		t.Errorf("position = %v, want (4, 2)", down.Position)
	}
	if down.ClickCount != 1 {
		t.Errorf("click count = %d, want 1", down.ClickCount)
	}

	out = tr.Translate(tcell.NewEventMouse(4, 2, tcell.ButtonNone, tcell.ModNone))
	if len(out) != 1 {
		t.Fatalf("release: got %d events, want 1", len(out))
	}
	if _, ok := out[0].(event.MouseUpEvent); !ok {
		t.Fatalf("release: got %T, want MouseUpEvent", out[0])
	}
}

func TestTranslateDoubleClick(t *testing.T) {
	tr := NewTranslator()

	tr.Translate(tcell.NewEventMouse(4, 2, tcell.Button1, tcell.ModNone))
	tr.Translate(tcell.NewEventMouse(4, 2, tcell.ButtonNone, tcell.ModNone))
	out := tr.Translate(tcell.NewEventMouse(4, 2, tcell.Button1, tcell.ModNone))

	if len(out) != 1 {
		t.Fatalf("got %d events, want 1", len(out))
	}
	down := out[0].(event.MouseDownEvent)
	if down.ClickCount != 2 {
		t.Errorf("click count = %d, want 2", down.ClickCount)
	}
}

func TestTranslateClickSequenceBreaksOnDistance(t *testing.T) {
	tr := NewTranslator()

	tr.Translate(tcell.NewEventMouse(4, 2, tcell.Button1, tcell.ModNone))
	tr.Translate(tcell.NewEventMouse(4, 2, tcell.ButtonNone, tcell.ModNone))
	out := tr.Translate(tcell.NewEventMouse(40, 20, tcell.Button1, tcell.ModNone))

	if len(out) != 1 {
		t.Fatalf("got %d events, want 1", len(out))
	}
	down := out[0].(event.MouseDownEvent)
	if down.ClickCount != 1 {
		t.Errorf("click count = %d, want 1 after large move", down.ClickCount)
	}
}

func TestTranslateMouseMove(t *testing.T) {
	tr := NewTranslator()

	// First report establishes position; no move is synthesized.
	if out := tr.Translate(tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone)); len(out) != 0 {
		t.Fatalf("initial report produced %d events, want 0", len(out))
	}

	out := tr.Translate(tcell.NewEventMouse(2, 1, tcell.ButtonNone, tcell.ModNone))
	if len(out) != 1 {
		t.Fatalf("got %d events, want 1", len(out))
	}
	move, ok := out[0].(event.MouseMoveEvent)
	if !ok {
		t.Fatalf("got %T, want MouseMoveEvent", out[0])
	}
	if move.Dragging() {
		t.Error("hover move reports dragging")
	}
}

func TestTranslateDragMove(t *testing.T) {
	tr := NewTranslator()

	tr.Translate(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	out := tr.Translate(tcell.NewEventMouse(5, 5, tcell.Button1, tcell.ModNone))

	if len(out) != 1 {
		t.Fatalf("got %d events, want 1", len(out))
	}
	move := out[0].(event.MouseMoveEvent)
	if !move.Dragging() {
		t.Fatal("drag move not flagged as dragging")
	}
	if *move.PressedButton != event.MouseButtonLeft {
		t.Errorf("pressed button = %v, want left", *move.PressedButton)
	}
}

func TestTranslateWheel(t *testing.T) {
	tr := NewTranslator()

	out := tr.Translate(tcell.NewEventMouse(3, 3, tcell.WheelUp, tcell.ModCtrl))
	if len(out) != 1 {
		t.Fatalf("got %d events, want 1", len(out))
	}
	sw, ok := out[0].(event.ScrollWheelEvent)
	if !ok {
		t.Fatalf("got %T, want ScrollWheelEvent", out[0])
	}
	if sw.Delta.Precise() {
		t.Error("wheel tick reported as precise")
	}
	if raw := sw.Delta.Raw(); raw.Y != 1 || raw.X != 0 {
		t.Errorf("delta = %v, want (0, 1)", raw)
	}
	if !sw.HasControl() {
		t.Error("ctrl modifier lost")
	}
	if sw.Phase != event.TouchMoved {
		t.Errorf("phase = %v, want moved", sw.Phase)
	}
}

func TestTranslateIgnoresResize(t *testing.T) {
	tr := NewTranslator()
	if out := tr.Translate(tcell.NewEventResize(80, 24)); len(out) != 0 {
		t.Errorf("resize produced %d events, want 0", len(out))
	}
}
