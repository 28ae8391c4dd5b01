// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package render writes a built node tree in one of several formats.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/vk/nmltree/internal/node"
)

// Format names an output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatHCL  Format = "hcl"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatHCL}
}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want text, json or hcl)", s)
}

// Render writes root to w in the given format.
func Render(w io.Writer, root *node.Node, format Format) error {
	if root == nil {
		return fmt.Errorf("render: nil tree")
	}
	switch format {
	case FormatText:
		return renderText(w, root)
	case FormatJSON:
		return renderJSON(w, root)
	case FormatHCL:
		return renderHCL(w, root)
	default:
		return fmt.Errorf("render: unsupported format %q", format)
	}
}
