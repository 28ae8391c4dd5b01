// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package config

import (
	"context"

	"github.com/vk/nmltree/internal/model"
)

// Loader is the interface for a format-specific document loader.
type Loader interface {
	// Load reads every document found under paths, translates them into the
	// format-agnostic model and merges them, in path order, into a single
	// Document.
	Load(ctx context.Context, paths ...string) (*model.Document, error)
}
