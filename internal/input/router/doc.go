// Package router is the dispatch core of the interaction layer.
//
// The router owns the mutable UI-side state that input routing needs: a
// node tree held as a materialized parent map, per-node key contexts,
// per-node listeners keyed by event kind or action type, and the current
// focus. It reconciles two independent binding mechanisms that must agree
// on ordering:
//
//   - Direct listeners, registered per node for one event kind. Positional
//     events route through the hit-tested node chain, key events through
//     the focused node's ancestor chain, both innermost first (bubble
//     order). A listener stops further propagation by marking its Pass
//     handled.
//
//   - Named, context-scoped keybindings. On key-down the router walks the
//     focus chain outward, collects declared key contexts, matches the
//     keystroke against a snapshot of the binding table, synthesizes the
//     bound action, and bubbles it from the node that declared the winning
//     context. The raw key event and the synthesized action are distinct
//     logical events; listeners for both fire in the same pass unless the
//     suppression policy is enabled.
//
// Dispatch is single-threaded and cooperative: one event is fully routed
// before the next is accepted, listeners run synchronously, and a listener
// that needs to do more work defers it to run after the pass completes.
// Each listener invocation is isolated: a panic is recovered, surfaced to
// the host through the failure handler, and never corrupts propagation for
// the remaining listeners in the pass.
package router
