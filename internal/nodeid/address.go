// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package nodeid

import (
	"slices"
	"strconv"
	"strings"
)

// String renders the address as `id.id[index]...`.
func (a *Address) String() string {
	if a == nil {
		return ""
	}

	parts := make([]string, len(a.Path))
	for i, segment := range a.Path {
		parts[i] = segment.String()
	}
	return strings.Join(parts, ".")
}

// String renders one segment.
func (ps PathSegment) String() string {
	if !ps.HasIndex() {
		return ps.Name
	}
	return ps.Name + "[" + strconv.Itoa(ps.Index) + "]"
}

// Len returns the number of segments.
func (a *Address) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Path)
}

// Parent returns the address without its last segment. The parent of a
// single-segment address is nil.
func (a *Address) Parent() *Address {
	if a.Len() <= 1 {
		return nil
	}
	return &Address{Path: slices.Clone(a.Path[:len(a.Path)-1])}
}
