// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package componentstore defines the cache of discovered components shared by
// the resolvers of one session.
//
// # Why Component Store Exists
//
// Resolving a component by id means scanning document partitions. Every
// component seen during a scan is remembered, not just the one searched for,
// so later lookups of neighbouring ids are served without another scan. The
// store is that memory.
//
// # Lifecycle and Usage
//
// The store is:
//  1. Created empty when a session starts
//  2. Grown monotonically by the resolvers as partitions are scanned
//  3. Discarded when the session is closed
//
// There is no eviction and no overwrite: the first component observed under a
// key stays there for the life of the session.
//
// # Lookup Modes
//
// Identifiers are unique within a partition only. The store supports two
// lookup disciplines, selected by Mode:
//
//   - ModePermissive keys entries by id alone. A lookup returns whatever was
//     cached under the id even when it belongs to a kind the caller did not
//     ask for. This is the legacy behavior; an id reused across kinds yields
//     the first one observed.
//   - ModeStrict keys entries by (id, kind). A lookup only returns components
//     whose kind the caller accepts.
package componentstore

import (
	"fmt"
	"strings"

	"github.com/vk/nmltree/internal/model"
)

// Mode selects how a Store keys and matches its entries.
type Mode int

const (
	// ModePermissive keys by identifier only.
	ModePermissive Mode = iota
	// ModeStrict keys by identifier and kind.
	ModeStrict
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModePermissive:
		return "permissive"
	case ModeStrict:
		return "strict"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "permissive" or "strict", case-insensitively. An empty
// string yields ModePermissive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "permissive":
		return ModePermissive, nil
	case "strict":
		return ModeStrict, nil
	default:
		return ModePermissive, fmt.Errorf("unknown lookup mode %q (want permissive or strict)", s)
	}
}

// Store is the discovered-components cache of one session.
//
// # Thread-Safety
//
// Implementations are not required to be safe for concurrent use. Callers
// needing parallel resolution use one session, and so one Store, per
// goroutine.
type Store interface {
	// Mode returns the lookup discipline of the store.
	Mode() Mode

	// Lookup returns the cached component for id. In permissive mode kinds
	// is ignored. In strict mode only components whose kind is listed in
	// kinds match, and the first listed kind with an entry wins.
	Lookup(id string, kinds []model.Kind) (model.Component, bool)

	// Remember caches c unless its key is already taken. It reports whether
	// c was stored.
	Remember(c model.Component) bool

	// MarkScanned records that every component of kind has been remembered.
	MarkScanned(kind model.Kind)

	// Scanned reports whether kind was marked as fully scanned.
	Scanned(kind model.Kind) bool

	// Len returns the number of cached entries.
	Len() int

	// IDs returns the distinct cached identifiers in the order they were
	// first remembered.
	IDs() []string
}
