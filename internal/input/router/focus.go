package router

// FocusHandle refers to a focusable node.
type FocusHandle struct {
	Node NodeID
}

// FocusEvent describes a focus transition. Both fields may be set (focus
// moved node to node), only Focused (initial focus), only Blurred (focus
// cleared), or transiently neither during teardown.
type FocusEvent struct {
	Blurred *FocusHandle
	Focused *FocusHandle
}

// Focus makes id the focus target for keyboard routing and notifies focus
// listeners of the transition. Focusing the already-focused node is a
// no-op.
func (r *Router) Focus(id NodeID) {
	if id == NoNode {
		r.Blur()
		return
	}

	r.mu.Lock()
	if r.focused == id {
		r.mu.Unlock()
		return
	}
	prev := r.focused
	r.focused = id
	subs := append([]focusEntry(nil), r.focusSubs...)
	r.mu.Unlock()

	ev := FocusEvent{Focused: &FocusHandle{Node: id}}
	if prev != NoNode {
		ev.Blurred = &FocusHandle{Node: prev}
	}
	r.notifyFocus(subs, ev)
}

// Blur clears the focus target. Key events arriving with nothing focused
// are dropped.
func (r *Router) Blur() {
	r.mu.Lock()
	if r.focused == NoNode {
		r.mu.Unlock()
		return
	}
	prev := r.focused
	r.focused = NoNode
	subs := append([]focusEntry(nil), r.focusSubs...)
	r.mu.Unlock()

	r.notifyFocus(subs, FocusEvent{Blurred: &FocusHandle{Node: prev}})
}

// Focused returns the current focus target.
func (r *Router) Focused() (NodeID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.focused, r.focused != NoNode
}

func (r *Router) notifyFocus(subs []focusEntry, ev FocusEvent) {
	for _, sub := range subs {
		fn := sub.fn
		r.invoke(NoNode, ev, nil, func() { fn(ev) })
	}
}
