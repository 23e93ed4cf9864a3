package vtree

import "fmt"

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) *VNode {
	return &VNode{
		Kind: KindRaw,
		Text: html,
	}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	node := &VNode{
		Kind:     KindFragment,
		Children: make([]*VNode, 0),
	}

	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}
		case string:
			node.Children = append(node.Children, Text(v))
		case Component:
			node.Children = append(node.Children, &VNode{
				Kind: KindComponent,
				Comp: v,
			})
		}
	}

	return node
}

// Keyed creates a keyed child list. Each child must carry a Key (set via
// the Key attribute or WithKey); keys must be unique among siblings.
// Duplicate keys are a caller contract violation: matching becomes
// undefined, and debug builds of the mount engine reject them.
//
// Keyed lists preserve child identity across reorders. Plain (unkeyed)
// children diff positionally instead, which is cheaper but loses identity
// when the list is reordered.
func Keyed(children ...*VNode) *VNode {
	node := &VNode{
		Kind:     KindKeyedList,
		Children: make([]*VNode, 0, len(children)),
	}
	for _, c := range children {
		if c != nil {
			node.Children = append(node.Children, c)
		}
	}
	return node
}

// WithKey returns the node with its reconciliation key set.
// The key is converted to a string using fmt.Sprintf.
func WithKey(node *VNode, key any) *VNode {
	if node != nil {
		node.Key = fmt.Sprintf("%v", key)
	}
	return node
}

// Key creates a key attribute for reconciliation.
func Key(key any) Attr {
	return attr("key", fmt.Sprintf("%v", key))
}

// Cond creates a tagged conditional branch. Two Cond nodes diff in place
// only when their tags match; a tag change replaces the branch wholesale.
func Cond(tag string, child *VNode) *VNode {
	return &VNode{
		Kind:     KindCond,
		CondTag:  tag,
		Children: []*VNode{child},
	}
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// IfElse returns a tagged branch: the first node if condition is true,
// the second otherwise. The branch tag makes the diff engine replace the
// subtree when the condition flips rather than patching across branches.
func IfElse(condition bool, ifTrue, ifFalse *VNode) *VNode {
	if condition {
		return Cond("then", ifTrue)
	}
	return Cond("else", ifFalse)
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *VNode) *VNode {
	if condition {
		return fn()
	}
	return nil
}

// Unless is the inverse of If.
func Unless(condition bool, node *VNode) *VNode {
	if !condition {
		return node
	}
	return nil
}

// Case represents a case in a Switch statement.
type Case[T comparable] struct {
	Value     T
	Node      *VNode
	IsDefault bool
}

// Case_ creates a case for Switch.
func Case_[T comparable](value T, node *VNode) Case[T] {
	return Case[T]{Value: value, Node: node}
}

// Default creates a default case for Switch.
func Default[T comparable](node *VNode) Case[T] {
	return Case[T]{Node: node, IsDefault: true}
}

// Switch returns a tagged branch for the matching case value, so that a
// value change replaces the branch subtree instead of patching across
// unrelated branches.
func Switch[T comparable](value T, cases ...Case[T]) *VNode {
	for _, c := range cases {
		if !c.IsDefault && c.Value == value {
			return Cond(fmt.Sprintf("%v", c.Value), c.Node)
		}
	}
	for _, c := range cases {
		if c.IsDefault {
			return Cond("default", c.Node)
		}
	}
	return nil
}

// Range maps a slice to VNodes.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	result := make([]*VNode, 0, len(items))
	for i, item := range items {
		node := fn(item, i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Repeat creates n nodes using the given function.
func Repeat(n int, fn func(i int) *VNode) []*VNode {
	if n <= 0 {
		return nil
	}
	result := make([]*VNode, 0, n)
	for i := 0; i < n; i++ {
		node := fn(i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Nothing returns nil, useful for conditional rendering.
func Nothing() *VNode {
	return nil
}

// Either returns first if it's not nil, otherwise second.
func Either(first, second *VNode) *VNode {
	if first != nil {
		return first
	}
	return second
}
