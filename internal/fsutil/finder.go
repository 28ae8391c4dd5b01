// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// ValidatePatterns checks that every pattern is a valid doublestar pattern.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(filepath.ToSlash(p)) {
			return fmt.Errorf("invalid include pattern %q", p)
		}
	}
	return nil
}

// MatchAny reports whether rel, a slash- or OS-separated path relative to a
// search root, matches at least one of patterns.
func MatchAny(patterns []string, rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, p := range patterns {
		if ok, _ := doublestar.Match(filepath.ToSlash(p), rel); ok {
			return true
		}
	}
	return false
}

// FindFiles returns the files selected by paths and patterns. A directory
// path is walked recursively and its files are kept when their path relative
// to the directory matches a pattern. A file path is kept as given. The
// result holds each file once, in path order and then lexical walk order.
func FindFiles(paths []string, patterns []string) ([]string, error) {
	if err := ValidatePatterns(patterns); err != nil {
		return nil, err
	}

	var files []string
	seen := make(map[string]struct{})
	add := func(p string) {
		clean := filepath.Clean(p)
		if _, dup := seen[clean]; dup {
			return
		}
		seen[clean] = struct{}{}
		files = append(files, clean)
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", root, err)
		}

		if !info.IsDir() {
			add(root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			if MatchAny(patterns, rel) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}
