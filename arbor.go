package arbor

import (
	"github.com/arbor-ui/arbor/pkg/backend"
	"github.com/arbor-ui/arbor/pkg/mount"
	"github.com/arbor-ui/arbor/pkg/reactive"
	"github.com/arbor-ui/arbor/pkg/vtree"
)

// =============================================================================
// Re-exports
// =============================================================================
//
// These re-exports let application code work from a single import:
//
//	count := arbor.NewSignal(0)
//	st := arbor.Mount(b, view(), root)
//
// The element constructors are still imported from vtree:
//
//	import (
//	    "github.com/arbor-ui/arbor"
//	    . "github.com/arbor-ui/arbor/pkg/vtree"
//	)

// VNode is an alias for vtree.VNode, one node of a view tree.
type VNode = vtree.VNode

// Component is an alias for vtree.Component.
type Component = vtree.Component

// Props is an alias for vtree.Props.
type Props = vtree.Props

// Backend is an alias for backend.Backend, the platform a tree
// materializes into.
type Backend = backend.Backend

// NodeRef is an alias for backend.NodeRef.
type NodeRef = backend.NodeRef

// State is an alias for mount.State, a live mounted subtree.
type State = mount.State

// Re-export node kind constants.
const (
	KindElement   = vtree.KindElement
	KindText      = vtree.KindText
	KindFragment  = vtree.KindFragment
	KindComponent = vtree.KindComponent
	KindCond      = vtree.KindCond
	KindKeyedList = vtree.KindKeyedList
	KindRaw       = vtree.KindRaw
)

// Func wraps a render function as a Component.
func Func(render func() *vtree.VNode) vtree.Component {
	return vtree.Func(render)
}

// Mount materializes node under parent and returns its live state.
func Mount(b backend.Backend, node *vtree.VNode, parent backend.NodeRef) *mount.State {
	return mount.Mount(b, node, parent, nil)
}

// Patch converges a mounted state onto next.
func Patch(b backend.Backend, st *mount.State, next *vtree.VNode) *mount.State {
	return mount.Patch(b, st, next)
}

// Unmount tears a mounted state down.
func Unmount(b backend.Backend, st *mount.State) {
	mount.Unmount(b, st)
}

// Hydrate adopts existing platform nodes under parent.
func Hydrate(b backend.Backend, node *vtree.VNode, parent backend.NodeRef) (*mount.State, error) {
	return mount.Hydrate(b, node, parent)
}

// HydrateOrMount hydrates, falling back to a clean mount on mismatch.
func HydrateOrMount(b backend.Backend, node *vtree.VNode, parent backend.NodeRef) *mount.State {
	return mount.HydrateOrMount(b, node, parent)
}

// NewSignal creates a reactive value.
func NewSignal[T any](initial T) *reactive.Signal[T] {
	return reactive.NewSignal(initial)
}

// NewMemo creates a cached derived value.
func NewMemo[T any](compute func() T) *reactive.Memo[T] {
	return reactive.NewMemo(compute)
}

// CreateEffect runs fn now and again whenever its dependencies change.
// The returned cleanup, if any, runs before each rerun and on disposal.
func CreateEffect(fn func() reactive.Cleanup) *reactive.Effect {
	return reactive.CreateEffect(fn)
}

// Batch coalesces notifications from multiple writes into one pass.
func Batch(fn func()) {
	reactive.Batch(fn)
}
