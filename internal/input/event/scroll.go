package event

import (
	"fmt"

	"github.com/crestui/crest/internal/geometry"
	"github.com/crestui/crest/internal/input/key"
)

// TouchPhase is the phase of a touch motion driving a scroll.
type TouchPhase uint8

const (
	// TouchStarted begins a touch-driven scroll.
	TouchStarted TouchPhase = iota
	// TouchMoved continues it; discrete wheel ticks also use this phase.
	TouchMoved
	// TouchEnded completes it.
	TouchEnded
)

// String returns "started", "moved" or "ended".
func (p TouchPhase) String() string {
	switch p {
	case TouchStarted:
		return "started"
	case TouchMoved:
		return "moved"
	case TouchEnded:
		return "ended"
	default:
		return fmt.Sprintf("TouchPhase(%d)", p)
	}
}

// ScrollDelta is a scroll amount in one of two representations: precise
// pixels (trackpads) or fractional line counts (wheels). The zero value is
// zero lines.
type ScrollDelta struct {
	value   geometry.Point
	precise bool
}

// ScrollPixels builds a precise pixel delta.
func ScrollPixels(p geometry.Point) ScrollDelta {
	return ScrollDelta{value: p, precise: true}
}

// ScrollLines builds a line-count delta. Components may be fractional.
func ScrollLines(l geometry.Point) ScrollDelta {
	return ScrollDelta{value: l}
}

// Precise returns true only for pixel deltas.
func (d ScrollDelta) Precise() bool {
	return d.precise
}

// Raw returns the stored vector: pixels for a precise delta, line counts
// otherwise.
func (d ScrollDelta) Raw() geometry.Point {
	return d.value
}

// PixelDelta normalizes the delta to pixels. A pixel delta is returned
// unchanged regardless of lineHeight; a line delta multiplies each axis by
// lineHeight exactly, with no rounding, since the result feeds
// scroll-position accumulation.
func (d ScrollDelta) PixelDelta(lineHeight float64) geometry.Point {
	if d.precise {
		return d.value
	}
	return geometry.Pt(d.value.X*lineHeight, d.value.Y*lineHeight)
}

// String renders the delta with its representation, e.g. "lines(0, -3)".
func (d ScrollDelta) String() string {
	if d.precise {
		return fmt.Sprintf("pixels(%g, %g)", d.value.X, d.value.Y)
	}
	return fmt.Sprintf("lines(%g, %g)", d.value.X, d.value.Y)
}

// ScrollWheelEvent is a wheel or trackpad scroll. The embedded Modifiers
// exposes its read surface transparently.
type ScrollWheelEvent struct {
	Position geometry.Point
	Delta    ScrollDelta
	key.Modifiers
	Phase TouchPhase
}

// Kind implements Event.
func (ScrollWheelEvent) Kind() Kind { return KindScrollWheel }

func (ScrollWheelEvent) sealed() {}
