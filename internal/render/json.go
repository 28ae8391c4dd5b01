// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/vk/nmltree/internal/node"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

func renderJSON(w io.Writer, root *node.Node) error {
	val := toCty(root)
	raw, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return fmt.Errorf("render: failed to marshal tree: %w", err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return fmt.Errorf("render: failed to indent json: %w", err)
	}
	out.WriteByte('\n')
	_, err = out.WriteTo(w)
	return err
}

// toCty converts n into a cty object. Children of different shapes are kept
// in a tuple.
func toCty(n *node.Node) cty.Value {
	attrs := map[string]cty.Value{
		"label": cty.StringVal(n.Label),
		"id":    cty.StringVal(n.ID),
		"type":  cty.StringVal(n.Type.String()),
	}

	switch n.Type {
	case node.ParameterNode:
		attrs["quantity"] = n.Quantity.CtyValue()
	case node.TextNode:
		attrs["text"] = cty.StringVal(n.Text)
	default:
		if n.IsPlaceholder {
			attrs["placeholder"] = cty.True
		}
		children := make([]cty.Value, 0, len(n.Children()))
		for _, c := range n.Children() {
			children = append(children, toCty(c))
		}
		if len(children) == 0 {
			attrs["children"] = cty.EmptyTupleVal
		} else {
			attrs["children"] = cty.TupleVal(children)
		}
	}

	return cty.ObjectVal(attrs)
}
