// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package render

import (
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/vk/nmltree/internal/node"
	"github.com/zclconf/go-cty/cty"
)

// HCL block types, one per node variant.
const (
	hclBlockComposite = "composite"
	hclBlockReference = "reference"
	hclBlockParameter = "parameter"
	hclBlockText      = "text"
)

func renderHCL(w io.Writer, root *node.Node) error {
	f := hclwrite.NewEmptyFile()
	writeHCLBlock(f.Body(), root)
	_, err := f.WriteTo(w)
	return err
}

// writeHCLBlock appends n to body as a block labelled with the node label and
// display id.
func writeHCLBlock(body *hclwrite.Body, n *node.Node) {
	blockType := hclBlockComposite
	switch {
	case n.Type == node.ParameterNode:
		blockType = hclBlockParameter
	case n.Type == node.TextNode:
		blockType = hclBlockText
	case n.IsPlaceholder:
		blockType = hclBlockReference
	}

	block := body.AppendNewBlock(blockType, []string{n.Label, n.ID})
	inner := block.Body()

	switch n.Type {
	case node.ParameterNode:
		inner.SetAttributeValue("value", cty.NumberFloatVal(n.Quantity.Value))
		if n.Quantity.Unit != "" {
			inner.SetAttributeValue("unit", cty.StringVal(n.Quantity.Unit))
		}
	case node.TextNode:
		inner.SetAttributeValue("value", cty.StringVal(n.Text))
	default:
		for _, c := range n.Children() {
			writeHCLBlock(inner, c)
		}
	}
}
