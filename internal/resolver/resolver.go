// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package resolver

import (
	"context"
	"slices"

	"github.com/vk/nmltree/internal/componentstore"
	"github.com/vk/nmltree/internal/ctxlog"
	"github.com/vk/nmltree/internal/metrics"
	"github.com/vk/nmltree/internal/model"
	"github.com/vk/nmltree/internal/registry"
)

// FallbackResolver resolves components of a family disjoint from the plans
// of the registry. It is consulted last, after every planned partition.
type FallbackResolver interface {
	// Kinds returns the partitions the fallback is responsible for.
	Kinds() []model.Kind
	// ComponentFromCache looks id up in cache without scanning. In strict
	// mode it answers only from partitions that precede any unscanned one.
	ComponentFromCache(id string, cache componentstore.Store) (model.Component, bool)
	// ComponentByID scans the fallback partitions of doc for id, remembering
	// every component passed.
	ComponentByID(ctx context.Context, id string, doc *model.Document, cache componentstore.Store) (model.Component, bool)
}

// Resolver is the ComponentResolver.
type Resolver struct {
	registry *registry.Registry
	fallback FallbackResolver
	metrics  *metrics.Resolver
}

// New creates a Resolver. fallback and m may be nil.
func New(reg *registry.Registry, fallback FallbackResolver, m *metrics.Resolver) *Resolver {
	return &Resolver{
		registry: reg,
		fallback: fallback,
		metrics:  m,
	}
}

// accepts reports whether a component of kind may answer a request for
// resource.
func (r *Resolver) accepts(resource registry.Resource, kind model.Kind) bool {
	if r.registry.Accepts(resource, kind) {
		return true
	}
	return r.fallback != nil && slices.Contains(r.fallback.Kinds(), kind)
}

// Resolve returns the component identified by id, looked up as resource.
//
// In permissive mode the cache is keyed by id alone and is consulted once,
// before any scan. In strict mode the plan is walked in order and each
// partition is looked up in the cache before it is scanned, so an earlier
// partition always wins over a later one regardless of what was resolved
// before.
func (r *Resolver) Resolve(
	ctx context.Context,
	id string,
	resource registry.Resource,
	doc *model.Document,
	cache componentstore.Store,
) (model.Component, error) {
	logger := ctxlog.FromContext(ctx).With("id", id, "resource", resource)

	if cache.Mode() == componentstore.ModePermissive {
		if c, ok := cache.Lookup(id, nil); ok {
			r.metrics.CacheHit()
			if !r.accepts(resource, c.Kind()) {
				logger.Warn("Cached component has a kind the resource does not plan for.", "kind", c.Kind())
			}
			logger.Debug("Component served from cache.", "kind", c.Kind())
			return c, nil
		}
	}

	plan, ok := r.registry.Plan(resource)
	if !ok {
		logger.Debug("No plan for resource, consulting fallback only.")
	}

	scanned := false
	found := func(c model.Component) (model.Component, error) {
		if scanned {
			r.metrics.CacheMiss()
		} else {
			r.metrics.CacheHit()
		}
		logger.Debug("Component found.", "kind", c.Kind(), "scanned", scanned, "cached", cache.Len())
		return c, nil
	}

	for _, kind := range plan {
		if c, ok := cache.Lookup(id, []model.Kind{kind}); ok {
			return found(c)
		}
		if cache.Scanned(kind) {
			logger.Debug("Partition already scanned, skipping.", "partition", kind)
			continue
		}
		scanned = true
		r.metrics.PartitionScanned(kind)
		logger.Debug("Scanning partition.", "partition", kind)
		if c, ok := componentstore.Scan(cache, doc, kind, id); ok {
			return found(c)
		}
	}

	if r.fallback != nil {
		if c, ok := r.fallback.ComponentFromCache(id, cache); ok {
			return found(c)
		}
		scanned = true
		if c, ok := r.fallback.ComponentByID(ctx, id, doc, cache); ok {
			return found(c)
		}
	}

	r.metrics.CacheMiss()
	r.metrics.ComponentNotFound()
	logger.Debug("Component not found.")
	return nil, &NotFoundError{ID: id, Resource: resource}
}
