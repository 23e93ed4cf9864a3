package vtree

// TextSource is a reactive string value the tree can bind to.
//
// It is the collaborator interface for external signal graphs: the tree
// only needs the current value and a way to be told when it changes.
// Subscribe returns a cancel function; after cancellation the callback
// must never fire again. The reactive package satisfies this interface.
type TextSource interface {
	// Get returns the current value.
	Get() string

	// Subscribe registers fn to run whenever the value changes and
	// returns a function that releases the subscription.
	Subscribe(fn func()) (cancel func())
}

// DynText creates a text node bound to a reactive source.
//
// On mount the engine installs a subscription so that a source update
// rewrites only this text node, without re-diffing any ancestor.
func DynText(src TextSource) *VNode {
	return &VNode{
		Kind: KindText,
		Text: src.Get(),
		Src:  src,
	}
}

// BindAttr creates an attribute bound to a reactive source.
//
// On mount the engine installs a subscription so that a source update
// issues a single SetAttribute call on the owning element.
func BindAttr(name string, src TextSource) Attr {
	return Attr{Key: name, Value: src}
}
