package mount

import (
	"strings"

	"github.com/arbor-ui/arbor/internal/errors"
	"github.com/arbor-ui/arbor/internal/log"
	"github.com/arbor-ui/arbor/pkg/backend"
	"github.com/arbor-ui/arbor/pkg/vtree"
)

// cursor walks the pre-existing children of one platform parent during
// hydration. Each expected node consumes exactly one platform node;
// whitespace-only text nodes between elements are skipped, since markup
// encoders may emit indentation the tree never described.
type cursor struct {
	b   backend.Backend
	par backend.NodeRef
	cur backend.NodeRef
}

func newCursor(b backend.Backend, parent backend.NodeRef) *cursor {
	return &cursor{b: b, par: parent, cur: b.FirstChild(parent)}
}

func (c *cursor) take() backend.NodeRef {
	n := c.cur
	if n != nil {
		c.cur = c.b.NextSibling(n)
	}
	return n
}

func (c *cursor) skipWhitespace() {
	for c.cur != nil {
		d := c.b.Describe(c.cur)
		if d.Kind != backend.NodeText || strings.TrimSpace(d.Text) != "" {
			return
		}
		c.cur = c.b.NextSibling(c.cur)
	}
}

// Hydrate adopts the platform nodes already under parent as the live
// representation of node, installing subscriptions without recreating
// anything. Text content that drifted from the tree is corrected in
// place; a structural mismatch (wrong tag, wrong node kind, missing
// node) aborts with an A002 error and leaves the adopted prefix
// untouched for the caller to discard.
func Hydrate(b backend.Backend, node *vtree.VNode, parent backend.NodeRef) (*State, error) {
	c := newCursor(b, parent)
	st, err := hydrateNode(b, node, c)
	if err != nil {
		// Bindings installed on the adopted prefix must not outlive
		// the failed attempt.
		if st != nil {
			st.release()
		}
		return nil, err
	}
	return st, nil
}

// HydrateOrMount hydrates, and on mismatch logs the failure, clears
// parent, and mounts from scratch. The returned state is usable either
// way.
func HydrateOrMount(b backend.Backend, node *vtree.VNode, parent backend.NodeRef) *State {
	st, err := Hydrate(b, node, parent)
	if err == nil {
		return st
	}
	log.Warn().Err(err).Msg("hydration mismatch, remounting from scratch")
	for child := b.FirstChild(parent); child != nil; child = b.FirstChild(parent) {
		b.RemoveChild(parent, child)
	}
	return Mount(b, node, parent, nil)
}

func hydrateNode(b backend.Backend, node *vtree.VNode, c *cursor) (*State, error) {
	node = normalize(node)
	st := &State{
		kind:   node.Kind,
		key:    node.Key,
		parent: c.par,
	}

	switch node.Kind {
	case vtree.KindElement:
		if err := hydrateElement(b, st, node, c); err != nil {
			return st, err
		}

	case vtree.KindText, vtree.KindRaw:
		if err := hydrateText(b, st, node, c); err != nil {
			return st, err
		}

	case vtree.KindFragment, vtree.KindKeyedList:
		for _, child := range node.Children {
			cs, err := hydrateNode(b, child, c)
			if cs != nil {
				st.children = append(st.children, cs)
			}
			if err != nil {
				return st, err
			}
		}

	case vtree.KindCond:
		var branch *vtree.VNode
		if len(node.Children) > 0 {
			branch = node.Children[0]
		}
		cs, err := hydrateNode(b, branch, c)
		if cs != nil {
			st.children = append(st.children, cs)
		}
		if err != nil {
			return st, err
		}
		st.condTag = node.CondTag

	case vtree.KindComponent:
		st.comp = node.Comp
		cs, err := hydrateNode(b, node.Comp.Render(), c)
		if cs != nil {
			st.children = append(st.children, cs)
		}
		if err != nil {
			return st, err
		}

	default:
		return st, errors.New("A001").WithDetail("kind %d", int(node.Kind))
	}
	return st, nil
}

func hydrateElement(b backend.Backend, st *State, node *vtree.VNode, c *cursor) error {
	c.skipWhitespace()
	n := c.take()
	if n == nil {
		return errors.New("A002").WithDetail("expected <%s>, ran out of nodes", node.Tag)
	}
	d := b.Describe(n)
	if d.Kind != backend.NodeElement {
		return errors.New("A002").WithDetail("expected <%s>, found %s node", node.Tag, d.Kind)
	}
	if d.Tag != node.Tag {
		return errors.New("A002").WithDetail("expected <%s>, found <%s>", node.Tag, d.Tag)
	}

	st.tag = node.Tag
	st.node = n
	// Attributes are trusted to match what was serialized; only the
	// snapshot and live bindings are established here.
	st.attrs = make(map[string]string, len(node.Props))
	for name, value := range node.Props {
		if src, ok := value.(vtree.TextSource); ok {
			st.attrs[name] = src.Get()
			rebindAttr(b, st, name, src)
			continue
		}
		if v, present := attrValue(value); present {
			st.attrs[name] = v
		}
	}

	inner := newCursor(b, n)
	for _, child := range node.Children {
		cs, err := hydrateNode(b, child, inner)
		if cs != nil {
			st.children = append(st.children, cs)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// hydrateText adopts a text node. Raw nodes hydrate the same way: live
// backends carry raw content as text, so a single text node is
// expected; raw markup that parsed into elements will mismatch and
// trigger a remount.
func hydrateText(b backend.Backend, st *State, node *vtree.VNode, c *cursor) error {
	n := c.take()
	if n == nil {
		return errors.New("A002").WithDetail("expected text, ran out of nodes")
	}
	d := b.Describe(n)
	if d.Kind != backend.NodeText {
		return errors.New("A002").WithDetail("expected text, found <%s>", d.Tag)
	}

	desired := node.Text
	if node.Src != nil {
		desired = node.Src.Get()
	}
	if d.Text != desired {
		b.SetText(n, desired)
	}
	st.node = n
	st.text = desired
	if node.Src != nil {
		bindText(b, st, n, node.Src)
	}
	return nil
}
