// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package config defines the format-agnostic Loader interface that turns
// source files into a model.Document, and the Settings read from the
// optional nmltree.yaml settings file.
//
// Concrete loaders, such as the HCL one, are provided in separate packages.
package config
