package memdom

import (
	"sort"
	"strings"

	"github.com/arbor-ui/arbor/pkg/backend"
)

// Node is one node in the in-memory document.
type Node struct {
	Kind     backend.NodeKind
	Tag      string
	Text     string
	Attrs    map[string]string
	Parent   *Node
	Children []*Node
}

// OpCounts records how many times each backend primitive was called.
// Tests use it to assert the minimal-operation properties of the engine.
type OpCounts struct {
	CreateElement   int
	CreateText      int
	SetText         int
	SetAttribute    int
	RemoveAttribute int
	InsertBefore    int
	RemoveChild     int
}

// Mutations returns the number of calls that mutated the live tree.
// Node creation alone does not mutate the document.
func (o OpCounts) Mutations() int {
	return o.SetText + o.SetAttribute + o.RemoveAttribute + o.InsertBefore + o.RemoveChild
}

// DOM is an in-memory document implementing backend.Backend.
//
// It is the test double for the engine: it tracks per-primitive call
// counts and can serialize any subtree to HTML-ish text for assertions.
// A DOM is not safe for concurrent use; like a real render target it has
// a single logical owner.
type DOM struct {
	root *Node
	ops  OpCounts
}

// New creates an empty document with a detached root element.
func New() *DOM {
	return &DOM{
		root: &Node{
			Kind:  backend.NodeElement,
			Tag:   "root",
			Attrs: make(map[string]string),
		},
	}
}

// Root returns the document root element.
func (d *DOM) Root() *Node {
	return d.root
}

// Ops returns the operation counters accumulated so far.
func (d *DOM) Ops() OpCounts {
	return d.ops
}

// ResetOps clears the operation counters.
func (d *DOM) ResetOps() {
	d.ops = OpCounts{}
}

// CreateElement implements backend.Backend.
func (d *DOM) CreateElement(tag string) backend.NodeRef {
	d.ops.CreateElement++
	return &Node{
		Kind:  backend.NodeElement,
		Tag:   tag,
		Attrs: make(map[string]string),
	}
}

// CreateText implements backend.Backend.
func (d *DOM) CreateText(text string) backend.NodeRef {
	d.ops.CreateText++
	return &Node{
		Kind: backend.NodeText,
		Text: text,
	}
}

// SetText implements backend.Backend.
func (d *DOM) SetText(node backend.NodeRef, text string) {
	d.ops.SetText++
	node.(*Node).Text = text
}

// SetAttribute implements backend.Backend.
func (d *DOM) SetAttribute(node backend.NodeRef, name, value string) {
	d.ops.SetAttribute++
	n := node.(*Node)
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[name] = value
}

// RemoveAttribute implements backend.Backend.
func (d *DOM) RemoveAttribute(node backend.NodeRef, name string) {
	d.ops.RemoveAttribute++
	delete(node.(*Node).Attrs, name)
}

// InsertBefore implements backend.Backend. A nil before appends.
// Inserting an already-attached node moves it.
func (d *DOM) InsertBefore(parent, node, before backend.NodeRef) {
	d.ops.InsertBefore++
	p := parent.(*Node)
	n := node.(*Node)

	// Detach first so a move never duplicates the node.
	if n.Parent != nil {
		n.Parent.detach(n)
	}

	if before == nil {
		p.Children = append(p.Children, n)
	} else {
		ref := before.(*Node)
		idx := p.indexOf(ref)
		if idx < 0 {
			p.Children = append(p.Children, n)
		} else {
			p.Children = append(p.Children, nil)
			copy(p.Children[idx+1:], p.Children[idx:])
			p.Children[idx] = n
		}
	}
	n.Parent = p
}

// RemoveChild implements backend.Backend.
func (d *DOM) RemoveChild(parent, node backend.NodeRef) {
	d.ops.RemoveChild++
	p := parent.(*Node)
	n := node.(*Node)
	p.detach(n)
	n.Parent = nil
}

// FirstChild implements backend.Backend.
func (d *DOM) FirstChild(node backend.NodeRef) backend.NodeRef {
	n := node.(*Node)
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// NextSibling implements backend.Backend.
func (d *DOM) NextSibling(node backend.NodeRef) backend.NodeRef {
	n := node.(*Node)
	if n.Parent == nil {
		return nil
	}
	idx := n.Parent.indexOf(n)
	if idx < 0 || idx+1 >= len(n.Parent.Children) {
		return nil
	}
	return n.Parent.Children[idx+1]
}

// Describe implements backend.Backend.
func (d *DOM) Describe(node backend.NodeRef) backend.NodeDesc {
	n := node.(*Node)
	return backend.NodeDesc{
		Kind: n.Kind,
		Tag:  n.Tag,
		Text: n.Text,
	}
}

func (n *Node) indexOf(child *Node) int {
	for i, c := range n.Children {
		if c == child {
			return i
		}
	}
	return -1
}

func (n *Node) detach(child *Node) {
	idx := n.indexOf(child)
	if idx >= 0 {
		n.Children = append(n.Children[:idx], n.Children[idx+1:]...)
	}
}

// InnerHTML serializes the children of node. Attributes are sorted for
// deterministic output; text is not escaped, this is a test aid and not
// an HTML encoder.
func (d *DOM) InnerHTML(node backend.NodeRef) string {
	var b strings.Builder
	for _, c := range node.(*Node).Children {
		writeNode(&b, c)
	}
	return b.String()
}

// OuterHTML serializes node including itself.
func (d *DOM) OuterHTML(node backend.NodeRef) string {
	var b strings.Builder
	writeNode(&b, node.(*Node))
	return b.String()
}

func writeNode(b *strings.Builder, n *Node) {
	if n.Kind == backend.NodeText {
		b.WriteString(n.Text)
		return
	}

	b.WriteByte('<')
	b.WriteString(n.Tag)

	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(n.Attrs[k])
		b.WriteByte('"')
	}
	b.WriteByte('>')

	for _, c := range n.Children {
		writeNode(b, c)
	}

	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}
