// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/vk/nmltree/internal/node"
)

var (
	enumeratorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).MarginRight(1)
	rootStyle       = lipgloss.NewStyle().Bold(true)
)

func renderText(w io.Writer, root *node.Node) error {
	t := toTextTree(root).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumeratorStyle).
		RootStyle(rootStyle)
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func toTextTree(n *node.Node) *tree.Tree {
	t := tree.Root(textLabel(n))
	for _, c := range n.Children() {
		if c.IsLeaf() {
			t.Child(textLabel(c))
			continue
		}
		t.Child(toTextTree(c))
	}
	return t
}

func textLabel(n *node.Node) string {
	switch n.Type {
	case node.ParameterNode:
		if n.Quantity.IsZero() {
			return n.ID + " = (unset)"
		}
		return n.ID + " = " + n.Quantity.String()
	case node.TextNode:
		return n.ID + " = " + strconv.Quote(n.Text)
	default:
		label := n.Label + "[" + n.ID + "]"
		if n.IsPlaceholder {
			label += " (ref)"
		}
		return label
	}
}
