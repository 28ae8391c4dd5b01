// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

/*
Package nodeid provides a structured representation of paths into a built
model tree, based on the canonical format `path`.

The format is a dot-separated sequence of node display ids, each optionally
followed by an index that selects among siblings sharing the same id, e.g.
`bioPhys1.membraneProperties.naChans.condDensity_naChans` or `hh.naChan[1]`.

Display ids never contain dots, so the dot is always a separator.
*/
package nodeid
