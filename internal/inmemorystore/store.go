// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package inmemorystore

import (
	"github.com/vk/nmltree/internal/componentstore"
	"github.com/vk/nmltree/internal/model"
)

// key identifies an entry. In permissive mode kind is always empty, which
// collapses the key space to identifiers only.
type key struct {
	id   string
	kind model.Kind
}

// Store is an in-memory componentstore.Store.
//
// The store maintains:
//   - entries: components by key
//   - byID: the kinds cached under each identifier, in arrival order
//   - order: distinct identifiers in discovery order
//   - scanned: partitions whose every component has been remembered
type Store struct {
	mode    componentstore.Mode
	entries map[key]model.Component
	byID    map[string][]model.Kind
	order   []string
	scanned map[model.Kind]struct{}
}

// New creates an empty store with the given lookup mode.
func New(mode componentstore.Mode) *Store {
	return &Store{
		mode:    mode,
		entries: make(map[key]model.Component),
		byID:    make(map[string][]model.Kind),
		scanned: make(map[model.Kind]struct{}),
	}
}

var _ componentstore.Store = (*Store)(nil)

// Mode returns the lookup mode of the store.
func (s *Store) Mode() componentstore.Mode {
	return s.mode
}

func (s *Store) keyOf(id string, kind model.Kind) key {
	if s.mode == componentstore.ModePermissive {
		return key{id: id}
	}
	return key{id: id, kind: kind}
}

// Lookup returns the cached component for id.
func (s *Store) Lookup(id string, kinds []model.Kind) (model.Component, bool) {
	if s.mode == componentstore.ModePermissive {
		c, ok := s.entries[key{id: id}]
		return c, ok
	}
	for _, kind := range kinds {
		if c, ok := s.entries[key{id: id, kind: kind}]; ok {
			return c, true
		}
	}
	return nil, false
}

// Remember caches c unless its key is already taken.
func (s *Store) Remember(c model.Component) bool {
	id := c.ComponentID()
	k := s.keyOf(id, c.Kind())
	if _, exists := s.entries[k]; exists {
		return false
	}
	s.entries[k] = c

	if _, seen := s.byID[id]; !seen {
		s.order = append(s.order, id)
	}
	s.byID[id] = append(s.byID[id], c.Kind())
	return true
}

// MarkScanned records kind as fully scanned.
func (s *Store) MarkScanned(kind model.Kind) {
	s.scanned[kind] = struct{}{}
}

// Scanned reports whether kind was fully scanned.
func (s *Store) Scanned(kind model.Kind) bool {
	_, ok := s.scanned[kind]
	return ok
}

// Len returns the number of cached entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// IDs returns the distinct identifiers in discovery order.
func (s *Store) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
