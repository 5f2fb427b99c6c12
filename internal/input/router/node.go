package router

// NodeID identifies a UI node registered with the router. The router keeps
// only a parent mapping and per-node routing state; geometry and rendering
// live elsewhere.
type NodeID uint64

// NoNode is the zero NodeID; it never identifies a registered node.
const NoNode NodeID = 0

// NewNode registers a node. Pass NoNode for a root-level node.
func (r *Router) NewNode(parent NodeID) NodeID {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextNode++
	id := r.nextNode
	if parent != NoNode {
		r.parent[id] = parent
	}
	return id
}

// RemoveNode unregisters a node: its listeners and key context are dropped
// and its children are reparented to its parent. Removing the focused node
// clears focus.
func (r *Router) RemoveNode(id NodeID) {
	if id == NoNode {
		return
	}

	r.mu.Lock()
	parent := r.parent[id]
	for child, p := range r.parent {
		if p == id {
			if parent != NoNode {
				r.parent[child] = parent
			} else {
				delete(r.parent, child)
			}
		}
	}
	delete(r.parent, id)
	delete(r.contexts, id)
	delete(r.listeners, id)
	delete(r.actionSubs, id)
	delete(r.clickSubs, id)
	focusLost := r.focused == id
	r.mu.Unlock()

	if focusLost {
		r.Blur()
	}
}

// SetKeyContext declares the key context label for a node, scoping which
// keybindings apply while focus is within it or its descendants. An empty
// label clears the declaration.
func (r *Router) SetKeyContext(id NodeID, label string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if label == "" {
		delete(r.contexts, id)
		return
	}
	r.contexts[id] = label
}

// KeyContext returns the context label declared on a node, if any.
func (r *Router) KeyContext(id NodeID) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.contexts[id]
}

// ancestorChain returns the node and its ancestors, innermost first.
// Caller must hold r.mu. The walk is iterative over the parent map and
// guards against accidental cycles.
func (r *Router) ancestorChain(id NodeID) []NodeID {
	chain := make([]NodeID, 0, 8)
	limit := len(r.parent) + 1

	for n := id; n != NoNode && len(chain) <= limit; n = r.parent[n] {
		chain = append(chain, n)
	}
	return chain
}
