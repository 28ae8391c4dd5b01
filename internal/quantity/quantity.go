// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package quantity holds the physical-quantity value carried by model fields
// and parameter nodes: a numeric magnitude paired with a unit symbol, exactly
// as it was written in the source document. No unit conversion is performed.
package quantity

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Quantity is a magnitude with an optional unit, e.g. 120 mS_per_cm2.
type Quantity struct {
	Value float64 `cty:"value"`
	Unit  string  `cty:"unit"`
}

// Type is the cty object type a Quantity converts to and from.
var Type = cty.Object(map[string]cty.Type{
	"value": cty.Number,
	"unit":  cty.String,
})

// inputType is the object form accepted by FromCty. The unit may be left
// out for dimensionless values.
var inputType = cty.ObjectWithOptionalAttrs(map[string]cty.Type{
	"value": cty.Number,
	"unit":  cty.String,
}, []string{"unit"})

// quantityRegex matches NeuroML-style quantity strings such as `-65mV`,
// `120 mS_per_cm2` or `1e-4 mM`. The unit part is optional.
var quantityRegex = regexp.MustCompile(`^([-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?)\s*([A-Za-z_][A-Za-z0-9_]*)?$`)

// New returns a Quantity with the given magnitude and unit.
func New(value float64, unit string) Quantity {
	return Quantity{Value: value, Unit: unit}
}

// Parse reads a quantity string. Surrounding whitespace is ignored.
func Parse(raw string) (Quantity, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Quantity{}, fmt.Errorf("quantity cannot be empty")
	}

	matches := quantityRegex.FindStringSubmatch(s)
	if matches == nil {
		return Quantity{}, fmt.Errorf("invalid quantity format: %q", raw)
	}

	v, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid magnitude in quantity %q: %w", raw, err)
	}
	return Quantity{Value: v, Unit: matches[2]}, nil
}

// MustParse is like Parse but panics on malformed input. Intended for
// fixtures and tests.
func MustParse(raw string) Quantity {
	q, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return q
}

// IsZero reports whether the quantity was never set.
func (q Quantity) IsZero() bool {
	return q.Value == 0 && q.Unit == ""
}

// String formats the quantity as `<magnitude> <unit>`, or just the magnitude
// for dimensionless values.
func (q Quantity) String() string {
	v := strconv.FormatFloat(q.Value, 'g', -1, 64)
	if q.Unit == "" {
		return v
	}
	return v + " " + q.Unit
}

// CtyValue converts the quantity into a cty object of Type.
func (q Quantity) CtyValue() cty.Value {
	val, err := gocty.ToCtyValue(q, Type)
	if err != nil {
		// Unreachable: Quantity always matches Type.
		panic(fmt.Sprintf("quantity: cannot convert to cty: %v", err))
	}
	return val
}

// FromCty decodes a quantity from a cty value. Numbers are taken as
// dimensionless magnitudes, strings are parsed with Parse and objects need a
// numeric value and an optional unit. A null value yields the zero Quantity.
func FromCty(val cty.Value) (Quantity, error) {
	if val.IsNull() {
		return Quantity{}, nil
	}
	if !val.IsKnown() {
		return Quantity{}, fmt.Errorf("quantity value is not known")
	}

	ty := val.Type()
	switch {
	case ty.Equals(cty.Number):
		var f float64
		if err := gocty.FromCtyValue(val, &f); err != nil {
			return Quantity{}, err
		}
		return Quantity{Value: f}, nil
	case ty.Equals(cty.String):
		return Parse(val.AsString())
	case ty.IsObjectType():
		converted, err := convert.Convert(val, inputType)
		if err != nil {
			return Quantity{}, fmt.Errorf("cannot convert %s to quantity: %w", ty.FriendlyName(), err)
		}
		value := converted.GetAttr("value")
		if value.IsNull() {
			return Quantity{}, fmt.Errorf("quantity value cannot be null")
		}
		var q Quantity
		if err := gocty.FromCtyValue(value, &q.Value); err != nil {
			return Quantity{}, err
		}
		if unit := converted.GetAttr("unit"); !unit.IsNull() {
			q.Unit = unit.AsString()
		}
		return q, nil
	default:
		return Quantity{}, fmt.Errorf("cannot use %s as a quantity", ty.FriendlyName())
	}
}
