package event

import (
	"testing"

	"github.com/crestui/crest/internal/geometry"
	"github.com/crestui/crest/internal/input/key"
)

// allVariants returns one instance of each member of the union, positioned
// at p where the variant carries a position.
func allVariants(p geometry.Point) []Event {
	left := MouseButtonLeft
	return []Event{
		KeyDownEvent{Keystroke: key.MustParseKeystroke("ctrl-g")},
		KeyUpEvent{Keystroke: key.MustParseKeystroke("ctrl-g")},
		ModifiersChangedEvent{Modifiers: key.ModShift},
		MouseDownEvent{Button: MouseButtonLeft, Position: p, ClickCount: 1},
		MouseUpEvent{Button: MouseButtonLeft, Position: p, ClickCount: 1},
		MouseMoveEvent{Position: p, PressedButton: &left},
		MouseExitEvent{Position: p},
		ScrollWheelEvent{Position: p, Delta: ScrollLines(geometry.Pt(0, -1)), Phase: TouchMoved},
		FileDropEvent{Phase: FileDropEntered, Position: p, Files: ExternalPaths{"/tmp/a.txt"}},
	}
}

func TestPositionPerVariant(t *testing.T) {
	p := geometry.Pt(12.5, -3)

	for _, ev := range allVariants(p) {
		got, ok := Position(ev)
		switch ev.Kind() {
		case KindKeyDown, KindKeyUp, KindModifiersChanged:
			if ok {
				t.Errorf("%v: Position ok = true, want false", ev.Kind())
			}
		default:
			if !ok {
				t.Errorf("%v: Position ok = false, want true", ev.Kind())
			} else if got != p {
				t.Errorf("%v: Position = %v, want %v", ev.Kind(), got, p)
			}
		}
	}
}

func TestPositionFileDropPhases(t *testing.T) {
	p := geometry.Pt(4, 9)

	tests := []struct {
		phase   FileDropPhase
		wantPos bool
	}{
		{FileDropEntered, true},
		{FileDropPending, true},
		{FileDropSubmit, true},
		{FileDropExited, false},
	}

	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			got, ok := Position(FileDropEvent{Phase: tt.phase, Position: p})
			if ok != tt.wantPos {
				t.Fatalf("Position ok = %v, want %v", ok, tt.wantPos)
			}
			if ok && got != p {
				t.Errorf("Position = %v, want %v", got, p)
			}
		})
	}
}

func TestMouseKeyboardPartition(t *testing.T) {
	for _, ev := range allVariants(geometry.Pt(1, 1)) {
		_, isMouse := MouseEvent(ev)
		_, isKeyboard := KeyboardEvent(ev)
		if isMouse == isKeyboard {
			t.Errorf("%v: mouse=%v keyboard=%v, want exactly one", ev.Kind(), isMouse, isKeyboard)
		}
	}

	// Every file drop phase is mouse-capable, Exited included.
	for _, phase := range []FileDropPhase{FileDropEntered, FileDropPending, FileDropSubmit, FileDropExited} {
		if _, ok := MouseEvent(FileDropEvent{Phase: phase}); !ok {
			t.Errorf("FileDrop(%v) not classified as mouse event", phase)
		}
	}
}

func TestAllMouseButtons(t *testing.T) {
	want := []MouseButton{
		MouseButtonLeft,
		MouseButtonRight,
		MouseButtonMiddle,
		MouseButtonNavigateBack,
		MouseButtonNavigateForward,
	}

	got := AllMouseButtons()
	if len(got) != 5 {
		t.Fatalf("AllMouseButtons() length = %d, want 5", len(got))
	}
	seen := make(map[MouseButton]bool)
	for i, b := range got {
		if b != want[i] {
			t.Errorf("AllMouseButtons()[%d] = %v, want %v", i, b, want[i])
		}
		if seen[b] {
			t.Errorf("AllMouseButtons() contains %v twice", b)
		}
		seen[b] = true
	}
}

func TestMouseButtonDefaults(t *testing.T) {
	var b MouseButton
	if b != MouseButtonLeft {
		t.Errorf("zero MouseButton = %v, want left", b)
	}
	var d NavigationDirection
	if d != NavigateBack {
		t.Errorf("zero NavigationDirection = %v, want back", d)
	}
	if Navigate(NavigateForward) != MouseButtonNavigateForward {
		t.Error("Navigate(forward) != navigate-forward button")
	}
}

func TestModifiersPassThrough(t *testing.T) {
	changed := ModifiersChangedEvent{Modifiers: key.ModControl | key.ModShift}
	if !changed.HasControl() || !changed.HasShift() || changed.HasAlt() {
		t.Error("ModifiersChangedEvent does not expose the Modifiers read surface")
	}

	exit := MouseExitEvent{Modifiers: key.ModMeta}
	if !exit.HasMeta() {
		t.Error("MouseExitEvent does not expose the Modifiers read surface")
	}

	wheel := ScrollWheelEvent{Modifiers: key.ModAlt}
	if !wheel.HasAlt() {
		t.Error("ScrollWheelEvent does not expose the Modifiers read surface")
	}
}
