// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package builder

import (
	"context"

	"github.com/vk/nmltree/internal/ctxlog"
	"github.com/vk/nmltree/internal/model"
	"github.com/vk/nmltree/internal/node"
)

// Builder is the default TreeBuilder.
type Builder struct {
	populated bool
}

// New creates a Builder that has not populated anything yet.
func New() *Builder {
	return &Builder{}
}

var _ TreeBuilder = (*Builder)(nil)

// Populated reports whether any biophysical properties node has been attached.
func (b *Builder) Populated() bool {
	return b.populated
}

// Populate attaches the subtree for props to root.
func (b *Builder) Populate(ctx context.Context, root *node.Node, props *model.BiophysicalProperties) bool {
	logger := ctxlog.FromContext(ctx)

	subtree := BuildBiophysicalProperties(props)
	if subtree == nil {
		logger.Debug("No biophysical properties, nothing to populate.")
		return b.populated
	}

	root.AddChild(subtree)
	b.populated = true
	logger.Debug("Biophysical properties attached.", "id", props.ID, "nodes", subtree.Count())
	return b.populated
}

// PopulateModelTree populates root from every cell of doc.
func (b *Builder) PopulateModelTree(ctx context.Context, root *node.Node, doc *model.Document) bool {
	logger := ctxlog.FromContext(ctx)

	cells := doc.Partition(model.KindCell)
	if len(cells) == 0 {
		logger.Warn("Document has no cells, model tree left empty.")
		return b.populated
	}

	logger.Debug("Populating model tree.", "cells", len(cells))
	for _, c := range cells {
		cell := c.(*model.Cell)
		logger.Debug("Populating cell.", "cell", cell.ID, "source", cell.FSInformation.String())
		b.Populate(ctx, root, cell.BiophysicalProperties)
	}
	return b.populated
}
