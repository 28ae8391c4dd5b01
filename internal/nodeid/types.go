// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package nodeid

// PathSegment is a single component of an address path, e.g. `name[index]`.
type PathSegment struct {
	Name  string
	Index int // -1 indicates no index is present.
}

// NewPathSegment creates a new path segment without an index.
func NewPathSegment(name string) PathSegment {
	return PathSegment{Name: name, Index: -1}
}

// NewPathSegmentWithIndex creates a new path segment that includes an index.
func NewPathSegmentWithIndex(name string, index int) PathSegment {
	return PathSegment{Name: name, Index: index}
}

// HasIndex returns true if the path segment has an explicit index.
func (ps PathSegment) HasIndex() bool {
	return ps.Index != -1
}

// Address is a path from a tree node down to one of its descendants.
type Address struct {
	Path []PathSegment
}

// New builds an address from plain display ids.
func New(ids ...string) *Address {
	addr := &Address{Path: make([]PathSegment, 0, len(ids))}
	for _, id := range ids {
		addr.Path = append(addr.Path, NewPathSegment(id))
	}
	return addr
}
