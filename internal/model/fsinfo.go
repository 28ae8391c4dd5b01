// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines FSInfo, the source-file metadata attached to every
// component. When a document is merged from several files, FSInfo is the only
// way to tell where a component came from, which is what error messages and
// debug logs report.
package model

// FSInfo records where a component was declared.
type FSInfo struct {
	FilePath string
}

// NewFSInfo returns FSInfo for the given file path.
func NewFSInfo(filePath string) *FSInfo {
	return &FSInfo{
		FilePath: filePath,
	}
}

// String returns the file path, or "<memory>" for components built in code.
func (f *FSInfo) String() string {
	if f == nil || f.FilePath == "" {
		return "<memory>"
	}
	return f.FilePath
}
