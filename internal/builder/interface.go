// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package builder

import (
	"context"

	"github.com/vk/nmltree/internal/model"
	"github.com/vk/nmltree/internal/node"
)

// TreeBuilder attaches materialized biophysical properties to a caller-owned
// tree root.
//
// # State
//
// A TreeBuilder carries a single flag: whether anything has been populated
// during its lifetime. The flag only ever goes from false to true, so one
// TreeBuilder corresponds to one session.
//
// # Thread-Safety
//
// Implementations are not safe for concurrent use. The root passed in is
// owned by the caller for the duration of the call.
type TreeBuilder interface {
	// Populate attaches the subtree for props to root. A nil props is a
	// no-op. It returns the populated flag after the call.
	Populate(ctx context.Context, root *node.Node, props *model.BiophysicalProperties) bool

	// PopulateModelTree calls Populate for the biophysical properties of
	// every cell in doc, in document order. It returns the populated flag
	// after the call.
	PopulateModelTree(ctx context.Context, root *node.Node, doc *model.Document) bool

	// Populated reports whether any biophysical properties node has been
	// attached so far.
	Populated() bool
}
