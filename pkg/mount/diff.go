package mount

import (
	"github.com/arbor-ui/arbor/pkg/backend"
	"github.com/arbor-ui/arbor/pkg/vtree"
)

// Patch converges the mounted state onto next, reusing platform nodes
// wherever the shapes line up and replacing subtrees wholesale where
// they do not. It returns the state describing the result, which is st
// itself unless the root had to be replaced.
//
// Patching a state twice against the same tree performs no platform
// mutations on the second pass.
func Patch(b backend.Backend, st *State, next *vtree.VNode) *State {
	return patchNode(b, st, next, nil)
}

// patchNode diffs one state against one node. tail is the platform node
// immediately after st's region, used as the insertion anchor when the
// region has to grow or be rebuilt; nil means the end of the parent.
func patchNode(b backend.Backend, st *State, next *vtree.VNode, tail backend.NodeRef) *State {
	next = normalize(next)
	if st.kind != next.Kind {
		return replace(b, st, next, tail)
	}

	switch next.Kind {
	case vtree.KindElement:
		if st.tag != next.Tag {
			return replace(b, st, next, tail)
		}
		patchElement(b, st, next)

	case vtree.KindText, vtree.KindRaw:
		patchText(b, st, next)

	case vtree.KindFragment:
		reconcileChildren(b, st, next.Children, st.parent, tail)

	case vtree.KindKeyedList:
		if Debug {
			checkDuplicateKeys(next.Children)
		}
		reconcileChildren(b, st, next.Children, st.parent, tail)

	case vtree.KindCond:
		patchCond(b, st, next, tail)

	case vtree.KindComponent:
		patchComponent(b, st, next, tail)
	}

	st.key = next.Key
	return st
}

// replace mounts next at st's current position, then tears st down. The
// old region's first node serves as the insertion anchor so siblings
// keep their order.
func replace(b backend.Backend, st *State, next *vtree.VNode, tail backend.NodeRef) *State {
	anchor := st.firstNode()
	if anchor == nil {
		anchor = tail
	}
	fresh := mountNode(b, next, st.parent, anchor)
	Unmount(b, st)
	return fresh
}

func patchElement(b backend.Backend, st *State, next *vtree.VNode) {
	// Re-derive the desired attribute set. Bound attributes are
	// resubscribed against the incoming sources; the old subscriptions
	// may point at sources the new tree no longer references.
	for _, cancel := range st.cancels {
		cancel()
	}
	st.cancels = nil

	prev := st.attrs
	st.attrs = make(map[string]string, len(next.Props))
	for name, value := range next.Props {
		if src, ok := value.(vtree.TextSource); ok {
			v := src.Get()
			if old, had := prev[name]; !had || old != v {
				b.SetAttribute(st.node, name, v)
			}
			st.attrs[name] = v
			rebindAttr(b, st, name, src)
			continue
		}
		v, present := attrValue(value)
		if !present {
			continue
		}
		if old, had := prev[name]; !had || old != v {
			b.SetAttribute(st.node, name, v)
		}
		st.attrs[name] = v
	}
	for name := range prev {
		if _, still := st.attrs[name]; !still {
			b.RemoveAttribute(st.node, name)
		}
	}

	reconcileChildren(b, st, next.Children, st.node, nil)
}

// rebindAttr installs a subscription for an already-applied bound
// attribute, without re-pushing the current value.
func rebindAttr(b backend.Backend, st *State, name string, src vtree.TextSource) {
	n := st.node
	cancel := src.Subscribe(func() {
		cur := src.Get()
		if st.attrs[name] == cur {
			return
		}
		b.SetAttribute(n, name, cur)
		st.attrs[name] = cur
	})
	st.cancels = append(st.cancels, cancel)
}

func patchText(b backend.Backend, st *State, next *vtree.VNode) {
	for _, cancel := range st.cancels {
		cancel()
	}
	st.cancels = nil

	desired := next.Text
	if next.Src != nil {
		desired = next.Src.Get()
	}
	if st.text != desired {
		b.SetText(st.node, desired)
		st.text = desired
	}
	if next.Src != nil {
		bindText(b, st, st.node, next.Src)
	}
}

// patchCond keeps the wrapper state and swaps the single branch when
// the tag changes, so alternating branches never leak state from the
// other arm even when both render the same element shape.
func patchCond(b backend.Backend, st *State, next *vtree.VNode, tail backend.NodeRef) {
	var branch *vtree.VNode
	if len(next.Children) > 0 {
		branch = next.Children[0]
	}

	old := st.children[0]
	if st.condTag == next.CondTag {
		st.children[0] = patchNode(b, old, branch, tail)
		return
	}

	anchor := old.firstNode()
	if anchor == nil {
		anchor = tail
	}
	st.children[0] = mountNode(b, branch, st.parent, anchor)
	Unmount(b, old)
	st.condTag = next.CondTag
}

func patchComponent(b backend.Backend, st *State, next *vtree.VNode, tail backend.NodeRef) {
	st.children[0] = patchNode(b, st.children[0], next.Comp.Render(), tail)
	st.comp = next.Comp
}
