// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package nodeid

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Parse reads a path in the canonical format produced by Address.String.
func Parse(raw string) (*Address, error) {
	if raw == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	addr := &Address{}
	for _, part := range strings.Split(raw, ".") {
		segment, err := parseSegment(part)
		if err != nil {
			return nil, fmt.Errorf("invalid path %q: %w", raw, err)
		}
		addr.Path = append(addr.Path, segment)
	}
	return addr, nil
}

// parseSegment reads `id` or `id[index]`.
func parseSegment(s string) (PathSegment, error) {
	if s == "" {
		return PathSegment{}, fmt.Errorf("empty segment")
	}

	name, rest, hasIndex := strings.Cut(s, "[")
	if name == "" {
		return PathSegment{}, fmt.Errorf("segment %q has no id", s)
	}
	if i := strings.IndexFunc(name, invalidIDRune); i >= 0 {
		return PathSegment{}, fmt.Errorf("segment %q contains %q", s, name[i])
	}
	if !hasIndex {
		return NewPathSegment(name), nil
	}

	digits, ok := strings.CutSuffix(rest, "]")
	if !ok || digits == "" {
		return PathSegment{}, fmt.Errorf("segment %q has a malformed index", s)
	}
	index, err := strconv.Atoi(digits)
	if err != nil || index < 0 || strings.ContainsAny(digits, "+-") {
		return PathSegment{}, fmt.Errorf("segment %q has a malformed index", s)
	}
	return NewPathSegmentWithIndex(name, index), nil
}

func invalidIDRune(r rune) bool {
	return r == ']' || unicode.IsSpace(r) || !unicode.IsPrint(r)
}
