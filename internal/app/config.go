// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package app

import (
	"errors"

	"github.com/vk/nmltree/internal/config"
	"github.com/vk/nmltree/internal/nodeid"
	"github.com/vk/nmltree/internal/resolver"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// DocPaths are the document files or directories to load.
	DocPaths []string
	// Settings are the merged defaults, settings file, and flags.
	Settings *config.Settings
	// Requests are the components to resolve after the tree is built.
	Requests []resolver.Request
	// Select, when set, limits rendering to the subtree at this path,
	// relative to the tree root.
	Select *nodeid.Address
}

// NewConfig validates cfg. Nil Settings are replaced by the defaults.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.DocPaths) == 0 {
		return nil, errors.New("at least one document path is required")
	}
	if cfg.Settings == nil {
		cfg.Settings = config.DefaultSettings()
	}
	if err := cfg.Settings.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
