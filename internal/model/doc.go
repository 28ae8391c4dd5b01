// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the strongly-typed, in-memory representation of a
// parsed neuron model document. It is format-agnostic: loaders (such as the
// HCL loader) translate their source format into these structs, and every
// consumer downstream (the component resolver, the tree builder) reads only
// from here.
//
// # Core Concepts
//
//   - Document: the root container. Components are kept in partitions, one
//     collection per component Kind, in the order they were declared.
//
//   - Component: one named domain object inside a partition (an ion channel, a
//     cell, a concentration model, ...). The set of component kinds is closed;
//     every concrete type implements the Component interface and is reachable
//     through exactly one partition.
//
//   - BiophysicalProperties: the nested property graph of a Cell (membrane and
//     intracellular properties) that the tree builder materializes.
//
//   - FSInfo: metadata linking every component back to the file it was
//     declared in, so errors and logs can point at the source.
//
// A Document is treated as read-only once loaded. It is safe to share a single
// Document between concurrent sessions as long as nothing mutates it.
package model
