// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package componentstore

import "github.com/vk/nmltree/internal/model"

// Scan walks the kind partition of doc in declaration order, remembering
// every component it passes, and stops at the first component whose id is
// id. When the partition is exhausted without a match it is marked as
// scanned in cache, since every one of its components is now cached.
//
// Scan does not consult Scanned; callers decide whether a scan is needed.
func Scan(cache Store, doc *model.Document, kind model.Kind, id string) (model.Component, bool) {
	for _, c := range doc.Partition(kind) {
		cache.Remember(c)
		if c.ComponentID() == id {
			return c, true
		}
	}
	cache.MarkScanned(kind)
	return nil, false
}
