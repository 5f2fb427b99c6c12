package router

import (
	"runtime/debug"
)

// Failure describes one isolated listener failure. A failing listener never
// unwinds past the router; the host application observes it through the
// FailureHandler instead.
type Failure struct {
	// Node the listener was registered on; NoNode for deferred callbacks
	// and focus listeners.
	Node NodeID

	// Event being routed when the failure occurred: an event.Event, an
	// action, or a ClickEvent.
	Event any

	// PanicValue is the value passed to panic(), if the failure was a
	// panic.
	PanicValue any

	// Stack is the stack trace captured at the recovery point, if the
	// failure was a panic.
	Stack []byte

	// Err is set instead of PanicValue when the failure was a returned
	// error: a key filter rejecting a keystroke, or an action that could
	// not be built from a matched binding.
	Err error
}

// FailureHandler receives listener failures. It runs on the dispatch
// thread; a panic inside the handler itself is swallowed.
type FailureHandler func(Failure)

// invoke runs one listener with panic isolation. A panicking listener's
// handled-mark is ambiguous, so the pass's pre-invocation handled state is
// restored and propagation continues.
func (r *Router) invoke(node NodeID, ev any, p *Pass, fn func()) {
	wasHandled := false
	if p != nil {
		wasHandled = p.handled
	}

	defer func() {
		if rec := recover(); rec != nil {
			if p != nil {
				p.handled = wasHandled
			}
			r.reportFailure(Failure{
				Node:       node,
				Event:      ev,
				PanicValue: rec,
				Stack:      debug.Stack(),
			})
		}
	}()

	fn()
}

func (r *Router) reportFailure(f Failure) {
	handler := r.onFailure
	if handler == nil {
		return
	}
	defer func() {
		// A broken failure handler must not take down dispatch.
		_ = recover()
	}()
	handler(f)
}
