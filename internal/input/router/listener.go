package router

import (
	"github.com/google/uuid"

	"github.com/crestui/crest/internal/input/action"
	"github.com/crestui/crest/internal/input/event"
)

// Subscription undoes a listener registration.
type Subscription struct {
	cancel func()
}

// Cancel removes the listener. Safe to call more than once.
func (s Subscription) Cancel() {
	if s.cancel != nil {
		s.cancel()
	}
}

type listenerEntry struct {
	id string
	fn func(event.Event, *Pass)
}

type actionEntry struct {
	id string
	fn func(action.Action, *Pass)
}

type clickEntry struct {
	id string
	fn func(event.ClickEvent, *Pass)
}

type focusEntry struct {
	id string
	fn func(FocusEvent)
}

// on registers a kind-keyed listener on a node. The typed On* wrappers
// below assert the concrete payload before calling user code.
func (r *Router) on(node NodeID, kind event.Kind, fn func(event.Event, *Pass)) Subscription {
	id := uuid.NewString()

	r.mu.Lock()
	byKind, ok := r.listeners[node]
	if !ok {
		byKind = make(map[event.Kind][]listenerEntry)
		r.listeners[node] = byKind
	}
	byKind[kind] = append(byKind[kind], listenerEntry{id: id, fn: fn})
	r.mu.Unlock()

	return Subscription{cancel: func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		entries := r.listeners[node][kind]
		for i, e := range entries {
			if e.id == id {
				r.listeners[node][kind] = append(entries[:i:i], entries[i+1:]...)
				break
			}
		}
	}}
}

// OnKeyDown registers a key-down listener on a node.
func (r *Router) OnKeyDown(node NodeID, fn func(event.KeyDownEvent, *Pass)) Subscription {
	return r.on(node, event.KindKeyDown, func(ev event.Event, p *Pass) {
		fn(ev.(event.KeyDownEvent), p)
	})
}

// OnKeyUp registers a key-up listener on a node.
func (r *Router) OnKeyUp(node NodeID, fn func(event.KeyUpEvent, *Pass)) Subscription {
	return r.on(node, event.KindKeyUp, func(ev event.Event, p *Pass) {
		fn(ev.(event.KeyUpEvent), p)
	})
}

// OnModifiersChanged registers a modifiers-changed listener on a node.
func (r *Router) OnModifiersChanged(node NodeID, fn func(event.ModifiersChangedEvent, *Pass)) Subscription {
	return r.on(node, event.KindModifiersChanged, func(ev event.Event, p *Pass) {
		fn(ev.(event.ModifiersChangedEvent), p)
	})
}

// OnMouseDown registers a mouse-down listener on a node.
func (r *Router) OnMouseDown(node NodeID, fn func(event.MouseDownEvent, *Pass)) Subscription {
	return r.on(node, event.KindMouseDown, func(ev event.Event, p *Pass) {
		fn(ev.(event.MouseDownEvent), p)
	})
}

// OnMouseUp registers a mouse-up listener on a node.
func (r *Router) OnMouseUp(node NodeID, fn func(event.MouseUpEvent, *Pass)) Subscription {
	return r.on(node, event.KindMouseUp, func(ev event.Event, p *Pass) {
		fn(ev.(event.MouseUpEvent), p)
	})
}

// OnMouseMove registers a mouse-move listener on a node.
func (r *Router) OnMouseMove(node NodeID, fn func(event.MouseMoveEvent, *Pass)) Subscription {
	return r.on(node, event.KindMouseMove, func(ev event.Event, p *Pass) {
		fn(ev.(event.MouseMoveEvent), p)
	})
}

// OnMouseExited registers a mouse-exit listener on a node.
func (r *Router) OnMouseExited(node NodeID, fn func(event.MouseExitEvent, *Pass)) Subscription {
	return r.on(node, event.KindMouseExited, func(ev event.Event, p *Pass) {
		fn(ev.(event.MouseExitEvent), p)
	})
}

// OnScrollWheel registers a scroll listener on a node.
func (r *Router) OnScrollWheel(node NodeID, fn func(event.ScrollWheelEvent, *Pass)) Subscription {
	return r.on(node, event.KindScrollWheel, func(ev event.Event, p *Pass) {
		fn(ev.(event.ScrollWheelEvent), p)
	})
}

// OnFileDrop registers a file-drop listener on a node. The listener sees
// every phase of a drag gesture in order.
func (r *Router) OnFileDrop(node NodeID, fn func(event.FileDropEvent, *Pass)) Subscription {
	return r.on(node, event.KindFileDrop, func(ev event.Event, p *Pass) {
		fn(ev.(event.FileDropEvent), p)
	})
}

// OnAction registers a handler on a node for the concrete action type of
// prototype. The handler fires when a matched keybinding synthesizes that
// action on the node or one of its descendants.
func (r *Router) OnAction(node NodeID, prototype action.Action, fn func(action.Action, *Pass)) Subscription {
	id := uuid.NewString()
	actionID := action.IDOf(prototype)

	r.mu.Lock()
	byType, ok := r.actionSubs[node]
	if !ok {
		byType = make(map[action.ID][]actionEntry)
		r.actionSubs[node] = byType
	}
	byType[actionID] = append(byType[actionID], actionEntry{id: id, fn: fn})
	r.mu.Unlock()

	return Subscription{cancel: func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		entries := r.actionSubs[node][actionID]
		for i, e := range entries {
			if e.id == id {
				r.actionSubs[node][actionID] = append(entries[:i:i], entries[i+1:]...)
				break
			}
		}
	}}
}

// OnClick registers a click listener on a node. Clicks are synthesized
// from a mouse-down/mouse-up pair landing on the same innermost node.
func (r *Router) OnClick(node NodeID, fn func(event.ClickEvent, *Pass)) Subscription {
	id := uuid.NewString()

	r.mu.Lock()
	r.clickSubs[node] = append(r.clickSubs[node], clickEntry{id: id, fn: fn})
	r.mu.Unlock()

	return Subscription{cancel: func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		entries := r.clickSubs[node]
		for i, e := range entries {
			if e.id == id {
				r.clickSubs[node] = append(entries[:i:i], entries[i+1:]...)
				break
			}
		}
	}}
}

// OnFocusChanged registers a global focus-transition listener.
func (r *Router) OnFocusChanged(fn func(FocusEvent)) Subscription {
	id := uuid.NewString()

	r.mu.Lock()
	r.focusSubs = append(r.focusSubs, focusEntry{id: id, fn: fn})
	r.mu.Unlock()

	return Subscription{cancel: func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i, e := range r.focusSubs {
			if e.id == id {
				r.focusSubs = append(r.focusSubs[:i:i], r.focusSubs[i+1:]...)
				break
			}
		}
	}}
}
