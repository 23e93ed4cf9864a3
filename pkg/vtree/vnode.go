package vtree

// Kind is the node variant discriminator.
type Kind uint8

const (
	KindElement   Kind = iota // <div>, <button>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
	KindComponent             // Nested component
	KindCond                  // Tagged conditional branch
	KindKeyedList             // Keyed child list
	KindRaw                   // Raw HTML (dangerous)
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindCond:
		return "Cond"
	case KindKeyedList:
		return "KeyedList"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is a typed description of one node in the view tree.
//
// A VNode is immutable once constructed: updates are expressed by building
// a new tree and diffing it against the previous one, never by mutating a
// VNode in place. Construction has no side effects; all effects happen
// during mount, patch, or hydrate.
type VNode struct {
	Kind     Kind       // Node variant
	Tag      string     // Element tag name (e.g., "div")
	Props    Props      // Attributes (static values or bound sources)
	Children []*VNode   // Child nodes
	Key      string     // Reconciliation key (keyed lists)
	Text     string     // For KindText and KindRaw
	Src      TextSource // For bound text leaves (DynText)
	Comp     Component  // For KindComponent
	CondTag  string     // Branch discriminator for KindCond
}

// Props holds attributes. Values are strings for static attributes or
// TextSource for reactively bound ones.
type Props map[string]any

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}
