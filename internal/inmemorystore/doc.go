// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package inmemorystore provides the in-memory implementation of the
// componentstore.Store interface.
//
// # Characteristics
//
//   - Ephemeral: created fresh for each session, never persisted
//   - Monotonic: entries are only ever added, the first observation wins
//   - Ordered: IDs reports identifiers in discovery order
//   - Not thread-safe: one store per session, owned by one goroutine
package inmemorystore
