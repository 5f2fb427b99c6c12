package platform

import (
	"math"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/crestui/crest/internal/geometry"
	"github.com/crestui/crest/internal/input/event"
	"github.com/crestui/crest/internal/input/key"
)

// Click sequence thresholds. Distance is in terminal cells, Manhattan.
const (
	DefaultClickInterval = 400 * time.Millisecond
	DefaultClickDistance = 2.0
)

// tcellNamedKeys maps tcell special keys to canonical key names.
var tcellNamedKeys = map[tcell.Key]string{
	tcell.KeyEscape:     "escape",
	tcell.KeyEnter:      "enter",
	tcell.KeyTab:        "tab",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyDelete:     "delete",
	tcell.KeyInsert:     "insert",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyPgUp:       "pageup",
	tcell.KeyPgDn:       "pagedown",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyF1:         "f1",
	tcell.KeyF2:         "f2",
	tcell.KeyF3:         "f3",
	tcell.KeyF4:         "f4",
	tcell.KeyF5:         "f5",
	tcell.KeyF6:         "f6",
	tcell.KeyF7:         "f7",
	tcell.KeyF8:         "f8",
	tcell.KeyF9:         "f9",
	tcell.KeyF10:        "f10",
	tcell.KeyF11:        "f11",
	tcell.KeyF12:        "f12",
}

// tcellButtons pairs each tracked tcell button bit with its normalized
// button, in reporting order.
var tcellButtons = []struct {
	mask   tcell.ButtonMask
	button event.MouseButton
}{
	{tcell.Button1, event.MouseButtonLeft},
	{tcell.Button2, event.MouseButtonRight},
	{tcell.Button3, event.MouseButtonMiddle},
	{tcell.Button4, event.MouseButtonNavigateBack},
	{tcell.Button5, event.MouseButtonNavigateForward},
}

// Translator converts tcell terminal events into normalized input events.
//
// Terminals report key presses only, so the translator emits KeyDownEvents
// and never KeyUp or ModifiersChanged. Mouse state is delivered as button
// masks per report; the translator diffs consecutive masks to recover
// press, release, and move transitions, and tracks click sequences for
// ClickCount. Not safe for concurrent use; drive it from the single tcell
// polling goroutine.
type Translator struct {
	clickInterval time.Duration
	clickDistance float64

	heldButtons tcell.ButtonMask
	lastPos     geometry.Point
	havePos     bool

	lastClickPos    geometry.Point
	lastClickTime   time.Time
	lastClickButton event.MouseButton
	clickCount      int
}

// TranslatorOption configures a Translator.
type TranslatorOption func(*Translator)

// WithClickInterval sets the maximum delay between presses of a click
// sequence.
func WithClickInterval(d time.Duration) TranslatorOption {
	return func(t *Translator) { t.clickInterval = d }
}

// WithClickDistance sets the maximum Manhattan cell distance between
// presses of a click sequence.
func WithClickDistance(cells float64) TranslatorOption {
	return func(t *Translator) { t.clickDistance = cells }
}

// NewTranslator creates a translator with default click thresholds.
func NewTranslator(opts ...TranslatorOption) *Translator {
	t := &Translator{
		clickInterval: DefaultClickInterval,
		clickDistance: DefaultClickDistance,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Translate converts one tcell event. A single mouse report can carry
// several transitions (a release plus a move, wheel ticks during a drag),
// so the result is a slice; it is empty for events with no input meaning
// (resize, paste markers).
func (t *Translator) Translate(ev tcell.Event) []event.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if kd, ok := t.translateKey(e); ok {
			return []event.Event{kd}
		}
		return nil
	case *tcell.EventMouse:
		return t.translateMouse(e)
	default:
		return nil
	}
}

func (t *Translator) translateKey(e *tcell.EventKey) (event.KeyDownEvent, bool) {
	mods := translateModMask(e.Modifiers())

	if name, ok := tcellNamedKeys[e.Key()]; ok {
		return event.KeyDownEvent{
			Keystroke: key.Keystroke{Modifiers: mods, Key: name},
		}, true
	}

	switch {
	case e.Key() == tcell.KeyRune:
		r := e.Rune()
		name := string(unicode.ToLower(r))
		if r == ' ' {
			name = "space"
		}
		return event.KeyDownEvent{
			Keystroke: key.Keystroke{Modifiers: mods, Key: name},
		}, true

	case e.Key() >= tcell.KeyCtrlA && e.Key() <= tcell.KeyCtrlZ:
		// Control characters arrive pre-combined; recover the letter.
		r := rune('a' + e.Key() - tcell.KeyCtrlA)
		return event.KeyDownEvent{
			Keystroke: key.Keystroke{
				Modifiers: mods.With(key.ModControl),
				Key:       string(r),
			},
		}, true
	}

	return event.KeyDownEvent{}, false
}

func (t *Translator) translateMouse(e *tcell.EventMouse) []event.Event {
	x, y := e.Position()
	pos := geometry.Pt(float64(x), float64(y))
	mods := translateModMask(e.Modifiers())
	buttons := e.Buttons()

	var out []event.Event

	if delta, ok := wheelDelta(buttons); ok {
		out = append(out, event.ScrollWheelEvent{
			Position:  pos,
			Delta:     event.ScrollLines(delta),
			Modifiers: mods,
			Phase:     event.TouchMoved,
		})
	}

	held := buttons & tcell.ButtonMask(0xff) // strip wheel bits
	for _, tb := range tcellButtons {
		was := t.heldButtons&tb.mask != 0
		now := held&tb.mask != 0

		switch {
		case now && !was:
			out = append(out, event.MouseDownEvent{
				Button:     tb.button,
				Position:   pos,
				Modifiers:  mods,
				ClickCount: t.recordPress(tb.button, pos, e.When()),
			})
		case was && !now:
			out = append(out, event.MouseUpEvent{
				Button:     tb.button,
				Position:   pos,
				Modifiers:  mods,
				ClickCount: t.clickCount,
			})
		}
	}

	if len(out) == 0 && t.havePos && pos != t.lastPos {
		out = append(out, event.MouseMoveEvent{
			Position:      pos,
			PressedButton: t.pressedButton(held),
			Modifiers:     mods,
		})
	}

	t.heldButtons = held
	t.lastPos = pos
	t.havePos = true
	return out
}

// recordPress advances the click sequence and returns the count for the
// press: 1 for a fresh click, 2 and 3 for double and triple, wrapping back
// to 1 afterward.
func (t *Translator) recordPress(b event.MouseButton, pos geometry.Point, when time.Time) int {
	if when.IsZero() {
		when = time.Now()
	}

	elapsed := when.Sub(t.lastClickTime)
	sameSequence := t.clickCount > 0 &&
		b == t.lastClickButton &&
		elapsed >= 0 && elapsed <= t.clickInterval &&
		manhattan(pos, t.lastClickPos) <= t.clickDistance

	if sameSequence {
		t.clickCount++
		if t.clickCount > 3 {
			t.clickCount = 1
		}
	} else {
		t.clickCount = 1
	}

	t.lastClickPos = pos
	t.lastClickTime = when
	t.lastClickButton = b
	return t.clickCount
}

func (t *Translator) pressedButton(held tcell.ButtonMask) *event.MouseButton {
	for _, tb := range tcellButtons {
		if held&tb.mask != 0 {
			b := tb.button
			return &b
		}
	}
	return nil
}

// wheelDelta extracts the line delta encoded in wheel bits. Scrolling up
// and left are positive, matching pixel-space scroll accumulation.
func wheelDelta(buttons tcell.ButtonMask) (geometry.Point, bool) {
	var d geometry.Point
	ok := false

	if buttons&tcell.WheelUp != 0 {
		d.Y++
		ok = true
	}
	if buttons&tcell.WheelDown != 0 {
		d.Y--
		ok = true
	}
	if buttons&tcell.WheelLeft != 0 {
		d.X++
		ok = true
	}
	if buttons&tcell.WheelRight != 0 {
		d.X--
		ok = true
	}
	return d, ok
}

func translateModMask(m tcell.ModMask) key.Modifiers {
	var mods key.Modifiers
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModControl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}

func manhattan(a, b geometry.Point) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}
