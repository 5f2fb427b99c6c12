package router

import (
	"sync"

	"github.com/crestui/crest/internal/geometry"
	"github.com/crestui/crest/internal/input/action"
	"github.com/crestui/crest/internal/input/event"
	"github.com/crestui/crest/internal/input/keymap"
)

// Resolver builds a named action. *action.Registry satisfies it.
type Resolver interface {
	Build(name string) (action.Action, error)
}

// HitTester maps a position to the ordered node chain to dispatch through,
// innermost node first. Geometry belongs to the layout system; the router
// only consumes the resulting chain.
type HitTester interface {
	HitTest(p geometry.Point) []NodeID
}

// KeyFilter inspects a key-down before routing. Returning true consumes
// the event: no listener or binding observes it. A filter error is
// surfaced through the failure handler and the event routes normally.
type KeyFilter interface {
	FilterKeyDown(ev event.KeyDownEvent) (consumed bool, err error)
}

// Config holds routing policy.
type Config struct {
	// KeyDownHandledSuppressesAction, when true, skips the synthesized
	// action if a raw key-down listener already stopped propagation.
	// Default false: the raw key and the action are independent logical
	// events and both fire.
	KeyDownHandledSuppressesAction bool
}

// Router routes normalized input events to node listeners and named
// actions. See the package documentation for the dispatch model.
type Router struct {
	mu sync.Mutex

	cfg       Config
	table     *keymap.Table
	actions   Resolver
	hit       HitTester
	onFailure FailureHandler
	filters   []KeyFilter

	nextNode NodeID
	parent   map[NodeID]NodeID
	contexts map[NodeID]string

	focused   NodeID
	focusSubs []focusEntry

	listeners  map[NodeID]map[event.Kind][]listenerEntry
	actionSubs map[NodeID]map[action.ID][]actionEntry
	clickSubs  map[NodeID][]clickEntry

	pendingClick *pendingClick
	dropChain    []NodeID
}

type pendingClick struct {
	target NodeID
	chain  []NodeID
	down   event.MouseDownEvent
}

// Option configures a Router.
type Option func(*Router)

// WithBindings uses an existing binding table instead of a fresh one.
func WithBindings(t *keymap.Table) Option {
	return func(r *Router) { r.table = t }
}

// WithActions sets the action resolver used to synthesize bound actions.
func WithActions(res Resolver) Option {
	return func(r *Router) { r.actions = res }
}

// WithHitTester sets the layout collaborator used for positional events.
func WithHitTester(h HitTester) Option {
	return func(r *Router) { r.hit = h }
}

// WithFailureHandler sets the sink for isolated listener failures.
func WithFailureHandler(h FailureHandler) Option {
	return func(r *Router) { r.onFailure = h }
}

// WithConfig sets the routing policy.
func WithConfig(cfg Config) Option {
	return func(r *Router) { r.cfg = cfg }
}

// NewRouter creates a router. Without options it gets an empty binding
// table, an empty action registry, no hit tester (positional events are
// dropped) and no failure handler (failures are discarded).
func NewRouter(opts ...Option) *Router {
	r := &Router{
		parent:     make(map[NodeID]NodeID),
		contexts:   make(map[NodeID]string),
		listeners:  make(map[NodeID]map[event.Kind][]listenerEntry),
		actionSubs: make(map[NodeID]map[action.ID][]actionEntry),
		clickSubs:  make(map[NodeID][]clickEntry),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.table == nil {
		r.table = keymap.NewTable()
	}
	if r.actions == nil {
		r.actions = action.NewRegistry()
	}
	return r
}

// Bindings exposes the router's binding table.
func (r *Router) Bindings() *keymap.Table {
	return r.table
}

// BindKeys installs keybindings, with per-binding rejection of malformed
// specs.
func (r *Router) BindKeys(bindings []keymap.Binding) error {
	return r.table.BindKeys(bindings)
}

// SetHitTester replaces the layout collaborator.
func (r *Router) SetHitTester(h HitTester) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hit = h
}

// AddKeyFilter appends a key filter. Filters run in registration order
// before any key-down routing.
func (r *Router) AddKeyFilter(f KeyFilter) {
	if f == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters = append(r.filters, f)
}

// Dispatch routes one normalized input event to completion: every matched
// listener runs, in propagation order, before Dispatch returns. Events are
// immutable values; dispatching the same value twice yields two identical,
// independent passes. Dispatch must not be called concurrently with itself
// on the same tree.
func (r *Router) Dispatch(ev event.Event) {
	var deferred []func()

	switch ev.Kind() {
	case event.KindKeyDown:
		r.dispatchKeyDown(ev.(event.KeyDownEvent), &deferred)
	case event.KindKeyUp, event.KindModifiersChanged:
		r.dispatchFocused(ev, &deferred)
	default:
		r.dispatchPositional(ev, &deferred)
	}

	// Deferred work runs after routing; a deferred callback may defer
	// more work, which runs in the same drain.
	for len(deferred) > 0 {
		fn := deferred[0]
		deferred = deferred[1:]
		r.invoke(NoNode, ev, nil, fn)
	}
}

// dispatchKeyDown resolves context-scoped bindings against the focus chain
// and interleaves the raw key pass with the synthesized action pass.
func (r *Router) dispatchKeyDown(ev event.KeyDownEvent, deferred *[]func()) {
	r.mu.Lock()
	filters := append([]KeyFilter(nil), r.filters...)
	r.mu.Unlock()

	for _, f := range filters {
		consumed, err := f.FilterKeyDown(ev)
		if err != nil {
			r.reportFailure(Failure{Event: ev, Err: err})
			continue
		}
		if consumed {
			return
		}
	}

	r.mu.Lock()
	if r.focused == NoNode {
		// Routine UI state, not an error: nothing focused, nothing to do.
		r.mu.Unlock()
		return
	}
	chain := r.ancestorChain(r.focused)
	raw := r.copyListenersLocked(chain, event.KindKeyDown)

	var labels []string
	var labelIdx []int
	for i, n := range chain {
		if c := r.contexts[n]; c != "" {
			labels = append(labels, c)
			labelIdx = append(labelIdx, i)
		}
	}
	snap := r.table.Snapshot()
	resolver := r.actions
	cfg := r.cfg
	r.mu.Unlock()

	matchIndex := -1
	var act action.Action
	if m, ok := snap.Match(ev.Keystroke, labels); ok {
		if m.Depth == len(labels) {
			// Unscoped binding: the action bubbles from the focused node.
			matchIndex = 0
		} else {
			matchIndex = labelIdx[m.Depth]
		}
		built, err := resolver.Build(m.Binding.Action)
		if err != nil {
			r.reportFailure(Failure{Node: chain[matchIndex], Event: ev, Err: err})
		} else {
			act = built
		}
	}

	var actionLists [][]actionEntry
	if act != nil {
		aid := action.IDOf(act)
		r.mu.Lock()
		for _, n := range chain[matchIndex:] {
			actionLists = append(actionLists, append([]actionEntry(nil), r.actionSubs[n][aid]...))
		}
		r.mu.Unlock()
	}

	rawPass := newPass(deferred)
	actionDispatched := false

	for i := range chain {
		if !rawPass.handled {
			r.runListeners(chain[i], ev, raw[i], rawPass)
		}

		if i == matchIndex && !actionDispatched {
			actionDispatched = true
			suppressed := cfg.KeyDownHandledSuppressesAction && rawPass.handled
			if act != nil && !suppressed {
				actPass := newPass(deferred)
				for j, list := range actionLists {
					node := chain[matchIndex+j]
					for _, e := range list {
						if actPass.handled {
							break
						}
						fn := e.fn
						r.invoke(node, act, actPass, func() { fn(act, actPass) })
					}
					if actPass.handled {
						break
					}
				}
			}
		}

		if rawPass.handled && (matchIndex < 0 || actionDispatched) {
			break
		}
	}
}

// dispatchFocused bubbles a non-key-down keyboard event along the focus
// chain.
func (r *Router) dispatchFocused(ev event.Event, deferred *[]func()) {
	r.mu.Lock()
	if r.focused == NoNode {
		r.mu.Unlock()
		return
	}
	chain := r.ancestorChain(r.focused)
	lists := r.copyListenersLocked(chain, ev.Kind())
	r.mu.Unlock()

	r.bubble(ev, chain, lists, newPass(deferred))
}

// dispatchPositional hit-tests the event position and bubbles through the
// resulting chain, maintaining file-drop and click-pairing state.
func (r *Router) dispatchPositional(ev event.Event, deferred *[]func()) {
	pos, hasPos := event.Position(ev)

	var chain []NodeID
	if !hasPos {
		// Only FileDrop(Exited) lacks a position: deliver it along the
		// chain the drag entered through, then forget the drag.
		r.mu.Lock()
		chain = r.dropChain
		r.dropChain = nil
		r.mu.Unlock()
		if len(chain) == 0 {
			return
		}
	} else {
		r.mu.Lock()
		hit := r.hit
		r.mu.Unlock()
		if hit == nil {
			return
		}
		chain = hit.HitTest(pos)
	}

	if fd, ok := ev.(event.FileDropEvent); ok {
		r.mu.Lock()
		switch fd.Phase {
		case event.FileDropEntered, event.FileDropPending:
			r.dropChain = append([]NodeID(nil), chain...)
		case event.FileDropSubmit:
			r.dropChain = nil
		}
		r.mu.Unlock()
	}

	if len(chain) == 0 {
		if ev.Kind() == event.KindMouseUp {
			r.mu.Lock()
			r.pendingClick = nil
			r.mu.Unlock()
		}
		return
	}

	r.mu.Lock()
	lists := r.copyListenersLocked(chain, ev.Kind())
	r.mu.Unlock()

	r.bubble(ev, chain, lists, newPass(deferred))

	switch e := ev.(type) {
	case event.MouseDownEvent:
		r.mu.Lock()
		r.pendingClick = &pendingClick{
			target: chain[0],
			chain:  append([]NodeID(nil), chain...),
			down:   e,
		}
		r.mu.Unlock()
	case event.MouseUpEvent:
		r.synthesizeClick(e, chain, deferred)
	}
}

// synthesizeClick pairs a mouse-up with the pending mouse-down and bubbles
// a ClickEvent from the shared target when the gesture qualifies.
func (r *Router) synthesizeClick(up event.MouseUpEvent, upChain []NodeID, deferred *[]func()) {
	r.mu.Lock()
	pc := r.pendingClick
	r.pendingClick = nil

	var clickChain []NodeID
	var lists [][]clickEntry
	if pc != nil && pc.down.Button == up.Button && containsNode(upChain, pc.target) {
		clickChain = pc.chain
		for _, n := range clickChain {
			lists = append(lists, append([]clickEntry(nil), r.clickSubs[n]...))
		}
	}
	r.mu.Unlock()

	if clickChain == nil {
		return
	}

	click := event.ClickEvent{Down: pc.down, Up: up}
	p := newPass(deferred)
	for i, list := range lists {
		node := clickChain[i]
		for _, e := range list {
			if p.handled {
				return
			}
			fn := e.fn
			r.invoke(node, click, p, func() { fn(click, p) })
		}
	}
}

// bubble delivers an event innermost-first along a chain until a listener
// stops propagation.
func (r *Router) bubble(ev event.Event, chain []NodeID, lists [][]listenerEntry, p *Pass) {
	for i := range chain {
		if p.handled {
			return
		}
		r.runListeners(chain[i], ev, lists[i], p)
	}
}

// runListeners invokes one node's listeners for an event, each isolated,
// honoring a stop-propagation mark between invocations on the same node.
func (r *Router) runListeners(node NodeID, ev event.Event, list []listenerEntry, p *Pass) {
	for _, e := range list {
		if p.handled {
			return
		}
		fn := e.fn
		r.invoke(node, ev, p, func() { fn(ev, p) })
	}
}

// copyListenersLocked snapshots the listener lists for one kind along a
// chain, so mid-pass registration changes cannot alter the pass. Caller
// must hold r.mu.
func (r *Router) copyListenersLocked(chain []NodeID, kind event.Kind) [][]listenerEntry {
	lists := make([][]listenerEntry, len(chain))
	for i, n := range chain {
		lists[i] = append([]listenerEntry(nil), r.listeners[n][kind]...)
	}
	return lists
}

func containsNode(chain []NodeID, id NodeID) bool {
	for _, n := range chain {
		if n == id {
			return true
		}
	}
	return false
}
