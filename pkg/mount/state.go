package mount

import (
	"github.com/arbor-ui/arbor/pkg/backend"
	"github.com/arbor-ui/arbor/pkg/vtree"
)

// Debug enables caller-contract checks that are skipped in normal
// operation: duplicate sibling keys and double unmount. Violations
// panic, since both are programming errors rather than runtime
// conditions. Set at startup, not during runtime.
var Debug bool

// State is the live counterpart of a vtree.VNode after mounting: the
// platform handles the node materialized into, plus the bookkeeping
// needed to diff it against a future tree.
//
// A State is owned exclusively by the mount site that created it. It is
// mutated in place by Patch and destroyed by Unmount; it is never
// shared between trees or goroutines.
type State struct {
	kind    vtree.Kind
	tag     string
	condTag string
	key     string

	// node is the platform object for element/text nodes. Fragments,
	// components, conditionals, and keyed lists own no platform node
	// of their own; their children live directly under parent.
	node   backend.NodeRef
	parent backend.NodeRef

	// attrs is the last-applied attribute snapshot (elements only).
	attrs map[string]string

	// text is the last-applied content (text/raw nodes only).
	text string

	// children holds child states: element children, fragment and
	// keyed-list items, a conditional's single branch, or a
	// component's rendered output.
	children []*State

	// comp is the component instance (components only).
	comp vtree.Component

	// cancels releases the subscriptions owned by this node. Element
	// states hold their bound-attribute subscriptions here; text
	// states their content subscription.
	cancels []func()

	unmounted bool
}

// Key returns the reconciliation key this state was mounted with.
func (s *State) Key() string {
	return s.key
}

// Kind returns the node variant this state materialized.
func (s *State) Kind() vtree.Kind {
	return s.kind
}

// Node returns the platform handle for element and text states, nil for
// container states that own no platform node.
func (s *State) Node() backend.NodeRef {
	return s.node
}

// firstNode returns the first platform node in this state's region, or
// nil if the region is currently empty (e.g. an empty fragment).
func (s *State) firstNode() backend.NodeRef {
	if s.node != nil {
		return s.node
	}
	for _, c := range s.children {
		if n := c.firstNode(); n != nil {
			return n
		}
	}
	return nil
}

// topNodes appends this state's top-level platform nodes to out, in
// document order. A fragment contributes each item's top nodes.
func (s *State) topNodes(out []backend.NodeRef) []backend.NodeRef {
	if s.node != nil {
		return append(out, s.node)
	}
	for _, c := range s.children {
		out = c.topNodes(out)
	}
	return out
}

// release cancels every subscription rooted at this state, depth-first.
// Platform nodes are not touched; Unmount removes those separately.
func (s *State) release() {
	for _, c := range s.children {
		c.release()
	}
	for _, cancel := range s.cancels {
		cancel()
	}
	s.cancels = nil
}
