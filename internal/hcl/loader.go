// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/nmltree/internal/config"
	"github.com/vk/nmltree/internal/ctxlog"
	"github.com/vk/nmltree/internal/fsutil"
	"github.com/vk/nmltree/internal/model"
	"github.com/vk/nmltree/internal/schema"
)

// DefaultInclude selects every .hcl file below a directory.
const DefaultInclude = "**/*.hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	include []string
}

// NewLoader creates a new HCL document loader. Directory paths are filtered
// with the include patterns; with none, DefaultInclude is used.
func NewLoader(include ...string) *Loader {
	if len(include) == 0 {
		include = []string{DefaultInclude}
	}
	return &Loader{include: include}
}

var _ config.Loader = (*Loader)(nil)

// Load discovers, parses, and translates every document file under paths
// into a single Document. Components keep file order, then declaration
// order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*model.Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths), "include", l.include)

	files, err := fsutil.FindFiles(paths, l.include)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		logger.Warn("No document files found.", "paths", paths, "include", l.include)
		return model.NewDocument(), nil
	}
	logger.Debug("Discovered document files.", "count", len(files))

	doc := model.NewDocument()
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.File
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		part, diags := translateFile(&root, model.NewFSInfo(file))
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to translate HCL file %s: %w", file, diags)
		}
		doc.Merge(part)
		logger.Debug("Loaded document file.", "file", file, "components", part.Len())
	}

	logger.Debug("HCL loading complete.", "files", len(files), "components", doc.Len(), "cells", len(doc.Cells))
	return doc, nil
}
