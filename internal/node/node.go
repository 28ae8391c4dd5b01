// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package node provides the generic, UI-facing tree that model documents are
// materialized into. A tree is made of three node variants: composite nodes
// that group children, parameter nodes that carry a physical quantity, and
// text nodes that carry a free-text value.
//
// Nodes hold no reference back to the document they were built from; once a
// tree is returned its ownership passes entirely to the caller.
package node

import (
	"fmt"

	"github.com/vk/nmltree/internal/nodeid"
	"github.com/vk/nmltree/internal/quantity"
)

// NodeType distinguishes between the node variants.
type NodeType int

const (
	// CompositeNode groups an ordered sequence of children.
	CompositeNode NodeType = iota
	// ParameterNode is a leaf carrying a physical quantity.
	ParameterNode
	// TextNode is a leaf carrying a string value.
	TextNode
)

// String implements fmt.Stringer.
func (t NodeType) String() string {
	switch t {
	case CompositeNode:
		return "composite"
	case ParameterNode:
		return "parameter"
	case TextNode:
		return "text"
	default:
		return fmt.Sprintf("NodeType(%d)", int(t))
	}
}

// TreeLabel is the kind label of a tree root created by NewTree.
const TreeLabel = "ModelTree"

// Node is a single vertex of the output tree.
type Node struct {
	// Label is the kind label of the node, e.g. "ChannelDensity" or
	// "condDensity".
	Label string
	// ID is the display identifier, unique within its parent by convention.
	ID string
	// Type is the node variant.
	Type NodeType

	// IsPlaceholder is true for composite nodes that only reference another
	// component by id without containing it.
	IsPlaceholder bool

	// Quantity holds the value of a parameter node.
	Quantity quantity.Quantity
	// Text holds the value of a text node.
	Text string

	children []*Node
}

// NewTree creates an empty composite root.
func NewTree(id string) *Node {
	return NewComposite(TreeLabel, id)
}

// NewComposite creates a composite node with no children.
func NewComposite(label, id string) *Node {
	return &Node{Label: label, ID: id, Type: CompositeNode}
}

// NewReference creates a placeholder composite node that stands in for the
// component identified by ref.
func NewReference(label, ref string) *Node {
	n := NewComposite(label, ref)
	n.IsPlaceholder = true
	return n
}

// NewParameter creates a parameter leaf carrying q unchanged.
func NewParameter(label, id string, q quantity.Quantity) *Node {
	return &Node{Label: label, ID: id, Type: ParameterNode, Quantity: q}
}

// NewText creates a text leaf.
func NewText(label, id, value string) *Node {
	return &Node{Label: label, ID: id, Type: TextNode, Text: value}
}

// AddChild appends child to n. Only composite nodes accept children; adding
// to a leaf is a programming error and panics.
func (n *Node) AddChild(child *Node) {
	if n.Type != CompositeNode {
		panic(fmt.Sprintf("node: cannot add child to %s node %q", n.Type, n.ID))
	}
	if child == nil {
		panic("node: cannot add nil child")
	}
	n.children = append(n.children, child)
}

// Children returns the children of n in insertion order. The returned slice
// must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Child returns the first child with the given id.
func (n *Node) Child(id string) (*Node, bool) {
	for _, c := range n.children {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// IsLeaf reports whether n is a parameter or text node.
func (n *Node) IsLeaf() bool {
	return n.Type != CompositeNode
}

// Walk visits n and its descendants depth-first in child order. depth is 0
// for n. Returning false from fn skips the children of the visited node.
func (n *Node) Walk(fn func(n *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(n *Node, depth int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.children {
		c.walk(fn, depth+1)
	}
}

// Find resolves an address relative to n. Each path segment matches a child
// by ID; a segment index selects among siblings sharing that ID (0 when
// omitted).
func (n *Node) Find(addr *nodeid.Address) (*Node, bool) {
	if addr == nil {
		return nil, false
	}
	current := n
	for _, segment := range addr.Path {
		want := 0
		if segment.HasIndex() {
			want = segment.Index
		}
		var next *Node
		seen := 0
		for _, c := range current.children {
			if c.ID != segment.Name {
				continue
			}
			if seen == want {
				next = c
				break
			}
			seen++
		}
		if next == nil {
			return nil, false
		}
		current = next
	}
	return current, true
}

// Count returns the number of nodes in the subtree rooted at n, n included.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node, int) bool {
		total++
		return true
	})
	return total
}
