// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package lems resolves components of the LEMS family: user-defined
// component types and the generic components that instantiate them. It is
// the fallback of the NeuroML resolver and shares its session cache.
package lems

import (
	"context"

	"github.com/vk/nmltree/internal/componentstore"
	"github.com/vk/nmltree/internal/ctxlog"
	"github.com/vk/nmltree/internal/metrics"
	"github.com/vk/nmltree/internal/model"
)

// Resolver is the LEMS fallback resolver.
type Resolver struct {
	metrics *metrics.Resolver
}

// New creates a Resolver. m may be nil.
func New(m *metrics.Resolver) *Resolver {
	return &Resolver{metrics: m}
}

// Kinds returns the LEMS partitions in scan order.
func (r *Resolver) Kinds() []model.Kind {
	return []model.Kind{model.KindComponentType, model.KindComponent}
}

// ComponentFromCache looks id up in cache, partition by partition. In strict
// mode it stops at the first partition not yet fully scanned, since that
// partition may still hold an earlier match.
func (r *Resolver) ComponentFromCache(id string, cache componentstore.Store) (model.Component, bool) {
	for _, kind := range r.Kinds() {
		if c, ok := cache.Lookup(id, []model.Kind{kind}); ok {
			return c, true
		}
		if !cache.Scanned(kind) {
			return nil, false
		}
	}
	return nil, false
}

// ComponentByID walks the LEMS partitions of doc in order. Each partition is
// looked up in cache first and scanned only when it has not been fully
// scanned before.
func (r *Resolver) ComponentByID(ctx context.Context, id string, doc *model.Document, cache componentstore.Store) (model.Component, bool) {
	logger := ctxlog.FromContext(ctx)
	for _, kind := range r.Kinds() {
		if c, ok := cache.Lookup(id, []model.Kind{kind}); ok {
			return c, true
		}
		if cache.Scanned(kind) {
			continue
		}
		r.metrics.PartitionScanned(kind)
		logger.Debug("Scanning LEMS partition.", "partition", kind, "id", id)
		if c, found := componentstore.Scan(cache, doc, kind, id); found {
			return c, true
		}
	}
	return nil, false
}
