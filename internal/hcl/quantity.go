// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/nmltree/internal/quantity"
)

// decodeQuantity evaluates expr without variables and converts the result
// into a Quantity. An absent optional attribute evaluates to null and yields
// the zero Quantity.
func decodeQuantity(expr hcl.Expression, attr string) (quantity.Quantity, hcl.Diagnostics) {
	if expr == nil {
		return quantity.Quantity{}, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return quantity.Quantity{}, diags
	}

	q, err := quantity.FromCty(val)
	if err != nil {
		rng := expr.Range()
		return quantity.Quantity{}, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid quantity",
			Detail:   fmt.Sprintf("Attribute %q: %s.", attr, err),
			Subject:  &rng,
		}}
	}
	return q, nil
}

// quantityField pairs a source expression with its destination.
type quantityField struct {
	attr string
	expr hcl.Expression
	dst  *quantity.Quantity
}

// decodeQuantities decodes every field, collecting all diagnostics.
func decodeQuantities(fields ...quantityField) hcl.Diagnostics {
	var diags hcl.Diagnostics
	for _, f := range fields {
		q, d := decodeQuantity(f.expr, f.attr)
		diags = append(diags, d...)
		*f.dst = q
	}
	return diags
}

// decodeParameters evaluates a `parameters` map and converts every element
// into a Quantity.
func decodeParameters(expr hcl.Expression) (map[string]quantity.Quantity, hcl.Diagnostics) {
	if expr == nil {
		return nil, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}

	rng := expr.Range()
	ty := val.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid parameters",
			Detail:   fmt.Sprintf("Attribute \"parameters\" must be a map, got %s.", ty.FriendlyName()),
			Subject:  &rng,
		}}
	}
	if !val.IsWhollyKnown() {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid parameters",
			Detail:   "Attribute \"parameters\" must be known without variables.",
			Subject:  &rng,
		}}
	}

	params := make(map[string]quantity.Quantity, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		k, v := it.Element()
		name := k.AsString()
		q, err := quantity.FromCty(v)
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid quantity",
				Detail:   fmt.Sprintf("Parameter %q: %s.", name, err),
				Subject:  &rng,
			})
			continue
		}
		params[name] = q
	}
	return params, diags
}
