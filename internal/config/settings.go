// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/vk/nmltree/internal/componentstore"
	"gopkg.in/yaml.v3"
)

// DefaultSettingsFile is the settings file name looked up in the working
// directory when no explicit path is given.
const DefaultSettingsFile = "nmltree.yaml"

// Output formats understood by the renderer.
var OutputFormats = []string{"text", "json", "hcl"}

// Settings holds the options that can be set in the settings file.
type Settings struct {
	// LookupMode is "permissive" (identifier-only cache) or "strict"
	// (identifier and kind).
	LookupMode string `yaml:"lookup_mode"`
	// OutputFormat is one of OutputFormats.
	OutputFormat string `yaml:"output_format"`
	// Include lists doublestar patterns selecting document files.
	Include []string `yaml:"include"`
	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
	// LogFormat is text or json.
	LogFormat string `yaml:"log_format"`
}

// DefaultSettings returns Settings with the built-in defaults.
func DefaultSettings() *Settings {
	return &Settings{
		LookupMode:   componentstore.ModePermissive.String(),
		OutputFormat: "text",
		Include:      []string{"**/*.hcl"},
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// LoadSettings reads a YAML settings file on top of the defaults.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	return settings, nil
}

// Merge overlays the non-zero fields of other onto s.
func (s *Settings) Merge(other *Settings) {
	if other == nil {
		return
	}
	if other.LookupMode != "" {
		s.LookupMode = other.LookupMode
	}
	if other.OutputFormat != "" {
		s.OutputFormat = other.OutputFormat
	}
	if len(other.Include) > 0 {
		s.Include = slices.Clone(other.Include)
	}
	if other.LogLevel != "" {
		s.LogLevel = other.LogLevel
	}
	if other.LogFormat != "" {
		s.LogFormat = other.LogFormat
	}
}

// Mode parses LookupMode.
func (s *Settings) Mode() (componentstore.Mode, error) {
	return componentstore.ParseMode(s.LookupMode)
}

// Validate checks that every field holds a known value.
func (s *Settings) Validate() error {
	if _, err := s.Mode(); err != nil {
		return fmt.Errorf("lookup_mode: %w", err)
	}
	if !slices.Contains(OutputFormats, s.OutputFormat) {
		return fmt.Errorf("output_format: unknown format %q (want one of %v)", s.OutputFormat, OutputFormats)
	}
	if len(s.Include) == 0 {
		return fmt.Errorf("include: at least one pattern is required")
	}
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level: unknown level %q", s.LogLevel)
	}
	switch s.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format: unknown format %q", s.LogFormat)
	}
	return nil
}
