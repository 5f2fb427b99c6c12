package platform

import (
	"context"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/crestui/crest/internal/geometry"
	"github.com/crestui/crest/internal/input/event"
	"github.com/crestui/crest/internal/input/key"
)

// Wire format errors.
var (
	ErrUnknownWireType = errors.New("unknown wire event type")
	ErrBadWireField    = errors.New("bad wire event field")
)

// WireEvent is the JSON frame a remote producer sends, one event per
// message. Type selects the variant; the other fields are read per variant
// and ignored otherwise.
type WireEvent struct {
	Type string `json:"type"`

	// Keyboard fields.
	Keys      string   `json:"keys,omitempty"`
	Held      bool     `json:"held,omitempty"`
	Modifiers []string `json:"modifiers,omitempty"`

	// Pointer fields.
	X          float64 `json:"x,omitempty"`
	Y          float64 `json:"y,omitempty"`
	Button     string  `json:"button,omitempty"`
	ClickCount int     `json:"click_count,omitempty"`
	Pressed    string  `json:"pressed,omitempty"`

	// Scroll fields.
	DeltaX  float64 `json:"delta_x,omitempty"`
	DeltaY  float64 `json:"delta_y,omitempty"`
	Precise bool    `json:"precise,omitempty"`
	Phase   string  `json:"phase,omitempty"`

	// File drop fields.
	Files []string `json:"files,omitempty"`
}

// wireButtons maps wire button names to normalized buttons.
var wireButtons = map[string]event.MouseButton{
	"left":             event.MouseButtonLeft,
	"right":            event.MouseButtonRight,
	"middle":           event.MouseButtonMiddle,
	"navigate-back":    event.MouseButtonNavigateBack,
	"navigate-forward": event.MouseButtonNavigateForward,
}

var wireTouchPhases = map[string]event.TouchPhase{
	"":        event.TouchMoved,
	"started": event.TouchStarted,
	"moved":   event.TouchMoved,
	"ended":   event.TouchEnded,
}

var wireDropPhases = map[string]event.FileDropPhase{
	"entered": event.FileDropEntered,
	"pending": event.FileDropPending,
	"submit":  event.FileDropSubmit,
	"exited":  event.FileDropExited,
}

// DecodeEvent converts one wire frame into a normalized event.
func DecodeEvent(w WireEvent) (event.Event, error) {
	switch w.Type {
	case "key-down":
		ks, err := key.ParseKeystroke(w.Keys)
		if err != nil {
			return nil, fmt.Errorf("%w: keys %q: %v", ErrBadWireField, w.Keys, err)
		}
		return event.KeyDownEvent{Keystroke: ks, IsHeld: w.Held}, nil

	case "key-up":
		ks, err := key.ParseKeystroke(w.Keys)
		if err != nil {
			return nil, fmt.Errorf("%w: keys %q: %v", ErrBadWireField, w.Keys, err)
		}
		return event.KeyUpEvent{Keystroke: ks}, nil

	case "modifiers-changed":
		mods, err := decodeModifiers(w.Modifiers)
		if err != nil {
			return nil, err
		}
		return event.ModifiersChangedEvent{Modifiers: mods}, nil

	case "mouse-down", "mouse-up":
		button, ok := wireButtons[w.Button]
		if !ok {
			return nil, fmt.Errorf("%w: button %q", ErrBadWireField, w.Button)
		}
		mods, err := decodeModifiers(w.Modifiers)
		if err != nil {
			return nil, err
		}
		count := w.ClickCount
		if count == 0 {
			count = 1
		}
		if w.Type == "mouse-down" {
			return event.MouseDownEvent{
				Button:     button,
				Position:   geometry.Pt(w.X, w.Y),
				Modifiers:  mods,
				ClickCount: count,
			}, nil
		}
		return event.MouseUpEvent{
			Button:     button,
			Position:   geometry.Pt(w.X, w.Y),
			Modifiers:  mods,
			ClickCount: count,
		}, nil

	case "mouse-move":
		mods, err := decodeModifiers(w.Modifiers)
		if err != nil {
			return nil, err
		}
		ev := event.MouseMoveEvent{Position: geometry.Pt(w.X, w.Y), Modifiers: mods}
		if w.Pressed != "" {
			button, ok := wireButtons[w.Pressed]
			if !ok {
				return nil, fmt.Errorf("%w: pressed %q", ErrBadWireField, w.Pressed)
			}
			ev.PressedButton = &button
		}
		return ev, nil

	case "mouse-exited":
		mods, err := decodeModifiers(w.Modifiers)
		if err != nil {
			return nil, err
		}
		ev := event.MouseExitEvent{Position: geometry.Pt(w.X, w.Y), Modifiers: mods}
		if w.Pressed != "" {
			button, ok := wireButtons[w.Pressed]
			if !ok {
				return nil, fmt.Errorf("%w: pressed %q", ErrBadWireField, w.Pressed)
			}
			ev.PressedButton = &button
		}
		return ev, nil

	case "scroll-wheel":
		phase, ok := wireTouchPhases[w.Phase]
		if !ok {
			return nil, fmt.Errorf("%w: phase %q", ErrBadWireField, w.Phase)
		}
		mods, err := decodeModifiers(w.Modifiers)
		if err != nil {
			return nil, err
		}
		delta := event.ScrollLines(geometry.Pt(w.DeltaX, w.DeltaY))
		if w.Precise {
			delta = event.ScrollPixels(geometry.Pt(w.DeltaX, w.DeltaY))
		}
		return event.ScrollWheelEvent{
			Position:  geometry.Pt(w.X, w.Y),
			Delta:     delta,
			Modifiers: mods,
			Phase:     phase,
		}, nil

	case "file-drop":
		phase, ok := wireDropPhases[w.Phase]
		if !ok {
			return nil, fmt.Errorf("%w: phase %q", ErrBadWireField, w.Phase)
		}
		return event.FileDropEvent{
			Phase:    phase,
			Position: geometry.Pt(w.X, w.Y),
			Files:    event.ExternalPaths(w.Files),
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownWireType, w.Type)
	}
}

func decodeModifiers(names []string) (key.Modifiers, error) {
	var mods key.Modifiers
	for _, name := range names {
		m := key.ModifierFromName(name)
		if m == key.ModNone {
			return 0, fmt.Errorf("%w: modifier %q", ErrBadWireField, name)
		}
		mods = mods.With(m)
	}
	return mods, nil
}

// RemoteSource reads normalized events from a websocket peer, one JSON
// frame per message. It pairs with DecodeEvent's wire format so a browser
// or companion process can drive the router remotely.
type RemoteSource struct {
	conn *websocket.Conn
}

// Dial connects to a remote event producer.
func Dial(ctx context.Context, url string) (*RemoteSource, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("remote source: dial %s: %w", url, err)
	}
	return &RemoteSource{conn: conn}, nil
}

// NewRemoteSource wraps an established connection, e.g. one accepted
// server-side by a websocket.Upgrader.
func NewRemoteSource(conn *websocket.Conn) *RemoteSource {
	return &RemoteSource{conn: conn}
}

// ReadEvent blocks for the next frame and decodes it. A malformed frame
// returns an error without closing the connection; the caller decides
// whether to skip or disconnect.
func (s *RemoteSource) ReadEvent() (event.Event, error) {
	var w WireEvent
	if err := s.conn.ReadJSON(&w); err != nil {
		return nil, fmt.Errorf("remote source: read: %w", err)
	}
	return DecodeEvent(w)
}

// Close closes the underlying connection.
func (s *RemoteSource) Close() error {
	return s.conn.Close()
}
