package mount

import (
	"github.com/arbor-ui/arbor/pkg/backend"
	"github.com/arbor-ui/arbor/pkg/vtree"
)

// reconcileChildren converges st's child states onto newChildren under
// parent. Keys on either side switch reconciliation to identity
// matching with minimal moves; otherwise children pair up by position.
func reconcileChildren(b backend.Backend, st *State, newChildren []*vtree.VNode, parent, tail backend.NodeRef) {
	if hasStateKeys(st.children) || hasNodeKeys(newChildren) {
		reconcileKeyed(b, st, newChildren, parent, tail)
		return
	}
	reconcilePositional(b, st, newChildren, parent, tail)
}

func hasStateKeys(states []*State) bool {
	for _, s := range states {
		if s.key != "" {
			return true
		}
	}
	return false
}

func hasNodeKeys(nodes []*vtree.VNode) bool {
	for _, n := range nodes {
		if n != nil && n.Key != "" {
			return true
		}
	}
	return false
}

func reconcilePositional(b backend.Backend, st *State, newChildren []*vtree.VNode, parent, tail backend.NodeRef) {
	old := st.children
	common := len(old)
	if len(newChildren) < common {
		common = len(newChildren)
	}

	result := make([]*State, 0, len(newChildren))
	for i := 0; i < common; i++ {
		// The anchor after this child is the next surviving sibling's
		// first node; patching i never rearranges its siblings.
		result = append(result, patchNode(b, old[i], newChildren[i], anchorAfter(old, i+1, tail)))
	}
	for _, extra := range old[common:] {
		Unmount(b, extra)
	}
	for _, added := range newChildren[common:] {
		result = append(result, mountNode(b, added, parent, tail))
	}
	st.children = result
}

// anchorAfter finds the first platform node at or after index from, or
// falls back to the region's tail anchor.
func anchorAfter(states []*State, from int, tail backend.NodeRef) backend.NodeRef {
	for _, s := range states[from:] {
		if n := s.firstNode(); n != nil {
			return n
		}
	}
	return tail
}

// reconcileKeyed matches children by key, patches survivors in place,
// and applies the minimum number of moves by keeping the longest
// increasing subsequence of surviving positions stationary.
func reconcileKeyed(b backend.Backend, st *State, newChildren []*vtree.VNode, parent, tail backend.NodeRef) {
	old := st.children
	oldIndex := make(map[string]int, len(old))
	for i, s := range old {
		if s.key != "" {
			oldIndex[s.key] = i
		}
	}

	// sources[i] is the old position reused by new child i, or -1 for
	// a fresh mount.
	sources := make([]int, len(newChildren))
	matched := make([]bool, len(old))
	for i, nc := range newChildren {
		sources[i] = -1
		if nc == nil || nc.Key == "" {
			continue
		}
		if oi, ok := oldIndex[nc.Key]; ok && !matched[oi] {
			sources[i] = oi
			matched[oi] = true
		}
	}

	for i, s := range old {
		if !matched[i] {
			Unmount(b, s)
		}
	}

	stationary := lisMembers(sources)

	// Walk back to front so the anchor for each child is the already
	// settled child to its right.
	result := make([]*State, len(newChildren))
	anchor := tail
	for i := len(newChildren) - 1; i >= 0; i-- {
		if sources[i] < 0 {
			result[i] = mountNode(b, newChildren[i], parent, anchor)
		} else {
			result[i] = patchNode(b, old[sources[i]], newChildren[i], anchor)
			if !stationary[i] {
				move(b, result[i], parent, anchor)
			}
		}
		if n := result[i].firstNode(); n != nil {
			anchor = n
		}
	}
	st.children = result
}

// lisMembers marks the indices forming a longest strictly increasing
// subsequence of sources, ignoring -1 entries. O(n log n).
func lisMembers(sources []int) []bool {
	members := make([]bool, len(sources))
	prev := make([]int, len(sources))
	// tails[k] is the index whose value ends the shortest known
	// increasing run of length k+1.
	tails := make([]int, 0, len(sources))

	for i, v := range sources {
		if v < 0 {
			continue
		}
		lo, hi := 0, len(tails)
		for lo < hi {
			mid := (lo + hi) / 2
			if sources[tails[mid]] < v {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		if lo > 0 {
			prev[i] = tails[lo-1]
		} else {
			prev[i] = -1
		}
		if lo == len(tails) {
			tails = append(tails, i)
		} else {
			tails[lo] = i
		}
	}

	if len(tails) == 0 {
		return members
	}
	for i := tails[len(tails)-1]; i >= 0; i = prev[i] {
		members[i] = true
	}
	return members
}
