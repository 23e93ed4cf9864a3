package mount

import (
	"fmt"

	"github.com/arbor-ui/arbor/internal/errors"
	"github.com/arbor-ui/arbor/pkg/backend"
	"github.com/arbor-ui/arbor/pkg/vtree"
)

// Mount materializes node under parent, inserting before the given
// sibling (nil appends). It returns the State needed to later Patch or
// Unmount the subtree.
func Mount(b backend.Backend, node *vtree.VNode, parent, before backend.NodeRef) *State {
	return mountNode(b, node, parent, before)
}

// normalize maps the nil node helpers return for "render nothing" onto
// an empty fragment, which occupies a position without platform nodes.
func normalize(node *vtree.VNode) *vtree.VNode {
	if node == nil {
		return &vtree.VNode{Kind: vtree.KindFragment}
	}
	return node
}

func mountNode(b backend.Backend, node *vtree.VNode, parent, before backend.NodeRef) *State {
	node = normalize(node)
	st := &State{
		kind:   node.Kind,
		key:    node.Key,
		parent: parent,
	}

	switch node.Kind {
	case vtree.KindElement:
		mountElement(b, st, node, parent, before)

	case vtree.KindText, vtree.KindRaw:
		// Raw content is emitted verbatim by markup encoders; live
		// backends carry it as a text node.
		mountText(b, st, node, parent, before)

	case vtree.KindFragment:
		mountChildren(b, st, node.Children, parent, before)

	case vtree.KindCond:
		var branch *vtree.VNode
		if len(node.Children) > 0 {
			branch = node.Children[0]
		}
		st.children = []*State{mountNode(b, branch, parent, before)}
		st.condTag = node.CondTag

	case vtree.KindKeyedList:
		if Debug {
			checkDuplicateKeys(node.Children)
		}
		mountChildren(b, st, node.Children, parent, before)

	case vtree.KindComponent:
		st.comp = node.Comp
		st.children = []*State{mountNode(b, node.Comp.Render(), parent, before)}

	default:
		panic(errors.New("A001").WithDetail("kind %d", int(node.Kind)).Error())
	}
	return st
}

func mountElement(b backend.Backend, st *State, node *vtree.VNode, parent, before backend.NodeRef) {
	n := b.CreateElement(node.Tag)
	st.tag = node.Tag
	st.node = n
	st.attrs = make(map[string]string, len(node.Props))

	for name, value := range node.Props {
		if src, ok := value.(vtree.TextSource); ok {
			bindAttr(b, st, n, name, src)
			continue
		}
		if v, ok := attrValue(value); ok {
			b.SetAttribute(n, name, v)
			st.attrs[name] = v
		}
	}

	for _, child := range node.Children {
		st.children = append(st.children, mountNode(b, child, n, nil))
	}
	b.InsertBefore(parent, n, before)
}

func mountText(b backend.Backend, st *State, node *vtree.VNode, parent, before backend.NodeRef) {
	content := node.Text
	if node.Src != nil {
		content = node.Src.Get()
	}
	n := b.CreateText(content)
	st.node = n
	st.text = content
	if node.Src != nil {
		bindText(b, st, n, node.Src)
	}
	b.InsertBefore(parent, n, before)
}

func mountChildren(b backend.Backend, st *State, children []*vtree.VNode, parent, before backend.NodeRef) {
	for _, child := range children {
		st.children = append(st.children, mountNode(b, child, parent, before))
	}
}

// bindAttr subscribes an attribute to a live source. The callback keeps
// the applied snapshot current so a later diff does not rewrite a value
// the subscription already pushed.
func bindAttr(b backend.Backend, st *State, n backend.NodeRef, name string, src vtree.TextSource) {
	v := src.Get()
	b.SetAttribute(n, name, v)
	st.attrs[name] = v
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

func bindText(b backend.Backend, st *State, n backend.NodeRef, src vtree.TextSource) {
	cancel := src.Subscribe(func() {
		cur := src.Get()
		if st.text == cur {
			return
		}
		b.SetText(n, cur)
		st.text = cur
	})
	st.cancels = append(st.cancels, cancel)
}

// attrValue converts a prop value to its attribute string. The second
// return reports whether the attribute should be present at all: false
// booleans and nils are omitted, true booleans become the empty-valued
// form used by setAttribute.
func attrValue(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		if v {
			return "", true
		}
		return "", false
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}

// Unmount releases every subscription in the subtree, then detaches its
// top-level platform nodes. Children of a removed element go away with
// it; only container states detach per item.
func Unmount(b backend.Backend, st *State) {
	if st == nil {
		return
	}
	if st.unmounted {
		if Debug {
			panic(errors.New("A004").Error())
		}
		return
	}
	st.unmounted = true

	st.release()
	for _, n := range st.topNodes(nil) {
		b.RemoveChild(st.parent, n)
	}
}

// move re-inserts a mounted state's top-level nodes before the given
// anchor without touching its subscriptions or inner structure.
func move(b backend.Backend, st *State, parent, before backend.NodeRef) {
	for _, n := range st.topNodes(nil) {
		b.InsertBefore(parent, n, before)
	}
}

func checkDuplicateKeys(children []*vtree.VNode) {
	seen := make(map[string]struct{}, len(children))
	for _, c := range children {
		if c.Key == "" {
			continue
		}
		if _, dup := seen[c.Key]; dup {
			panic(fmt.Sprintf("[ARBOR A003] duplicate key %q among keyed siblings", c.Key))
		}
		seen[c.Key] = struct{}{}
	}
}
