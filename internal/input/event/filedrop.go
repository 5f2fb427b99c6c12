package event

import (
	"fmt"
	"strings"

	"github.com/crestui/crest/internal/geometry"
)

// ExternalPaths is the ordered sequence of filesystem paths carried by a
// drag gesture. It owns its backing slice; typical drags carry one or two
// paths but the count is unbounded. The drag thumbnail is drawn by the
// platform compositor, so the paths have no visual representation here.
type ExternalPaths []string

// String joins the paths for display.
func (p ExternalPaths) String() string {
	return strings.Join(p, ", ")
}

// FileDropPhase is one step of a drag-and-drop gesture. A drag is a linear
// sequence: Entered exactly once, Pending zero or more times, terminated by
// exactly one of Submit or Exited.
type FileDropPhase uint8

const (
	// FileDropEntered starts a drag over a droppable region; carries the files.
	FileDropEntered FileDropPhase = iota
	// FileDropPending reports drag movement within the region.
	FileDropPending
	// FileDropSubmit completes the drop.
	FileDropSubmit
	// FileDropExited cancels the drag or reports it leaving the region;
	// carries no position.
	FileDropExited
)

// String returns the phase name.
func (p FileDropPhase) String() string {
	switch p {
	case FileDropEntered:
		return "entered"
	case FileDropPending:
		return "pending"
	case FileDropSubmit:
		return "submit"
	case FileDropExited:
		return "exited"
	default:
		return fmt.Sprintf("FileDropPhase(%d)", p)
	}
}

// FileDropEvent is one phase of a drag-and-drop gesture. Position is
// meaningful for every phase except Exited; Files is populated only for
// Entered.
type FileDropEvent struct {
	Phase    FileDropPhase
	Position geometry.Point
	Files    ExternalPaths
}

// Kind implements Event.
func (FileDropEvent) Kind() Kind { return KindFileDrop }

func (FileDropEvent) sealed() {}
