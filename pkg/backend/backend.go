package backend

// NodeRef is an opaque handle to a platform node. Only the backend that
// created a NodeRef may interpret it; the mount engine treats it as an
// identity token.
type NodeRef any

// NodeKind classifies a platform node for hydration matching.
type NodeKind uint8

const (
	NodeElement NodeKind = iota
	NodeText
)

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case NodeElement:
		return "Element"
	case NodeText:
		return "Text"
	default:
		return "Unknown"
	}
}

// NodeDesc describes a platform node for hydration matching.
type NodeDesc struct {
	Kind NodeKind
	Tag  string // Element tag, lower case
	Text string // Text content for NodeText
}

// Backend is the capability interface a host platform implements.
//
// Every primitive is synchronous and must not fail under normal
// operation. A platform that cannot support a primitive documents it as a
// no-op. The mount engine never touches platform objects except through
// this interface, so the same engine logic drives a live UI surface, an
// in-memory test double, or any other target without modification.
type Backend interface {
	// CreateElement creates a detached element node.
	CreateElement(tag string) NodeRef

	// CreateText creates a detached text node.
	CreateText(text string) NodeRef

	// SetText replaces the content of a text node.
	SetText(node NodeRef, text string)

	// SetAttribute sets or updates an attribute on an element.
	SetAttribute(node NodeRef, name, value string)

	// RemoveAttribute removes an attribute from an element.
	RemoveAttribute(node NodeRef, name string)

	// InsertBefore inserts node under parent, immediately before the
	// reference node. A nil reference appends. Inserting an attached
	// node moves it.
	InsertBefore(parent, node, before NodeRef)

	// RemoveChild detaches node from parent.
	RemoveChild(parent, node NodeRef)

	// FirstChild returns the first child of node, or nil.
	// Used by the hydration cursor.
	FirstChild(node NodeRef) NodeRef

	// NextSibling returns the node's next sibling, or nil.
	// Used by the hydration cursor.
	NextSibling(node NodeRef) NodeRef

	// Describe reports the shape of an existing node so hydration can
	// match it against an expected view-tree node.
	Describe(node NodeRef) NodeDesc
}
