// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package localsession provides a concrete implementation of the
// session.Session and session.SessionFactory interfaces for in-process use.
package localsession

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/vk/nmltree/internal/builder"
	"github.com/vk/nmltree/internal/componentstore"
	"github.com/vk/nmltree/internal/ctxlog"
	"github.com/vk/nmltree/internal/inmemorystore"
	"github.com/vk/nmltree/internal/lems"
	"github.com/vk/nmltree/internal/metrics"
	"github.com/vk/nmltree/internal/model"
	"github.com/vk/nmltree/internal/node"
	"github.com/vk/nmltree/internal/registry"
	"github.com/vk/nmltree/internal/resolver"
	"github.com/vk/nmltree/internal/session"
)

// Factory implements session.SessionFactory for local runs.
type Factory struct{}

var _ session.SessionFactory = (*Factory)(nil)

// NewSession creates and wires a new local session over doc.
func (f *Factory) NewSession(ctx context.Context, doc *model.Document, opts session.Options) (session.Session, error) {
	id := uuid.NewString()
	ctx = ctxlog.With(ctx, "session", id)
	logger := ctxlog.FromContext(ctx)

	reg := opts.Registry
	if reg == nil {
		reg = registry.NewDefault()
	}
	if err := reg.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid resolution plans: %w", err)
	}

	// --- dependency wiring ---
	promReg := prometheus.NewRegistry()
	m := metrics.NewResolver(promReg)
	cache := inmemorystore.New(opts.Mode)
	res := resolver.New(reg, lems.New(m), m)
	tree := builder.New()
	// --- end of dependency wiring ---

	logger.Debug("Local session created.", "mode", opts.Mode, "components", doc.Len())

	return &Session{
		id:       id,
		doc:      doc,
		cache:    cache,
		resolver: res,
		builder:  tree,
		metrics:  promReg,
	}, nil
}

// Session implements session.Session for local runs.
type Session struct {
	id       string
	doc      *model.Document
	cache    componentstore.Store
	resolver *resolver.Resolver
	builder  builder.TreeBuilder
	metrics  *prometheus.Registry
	closed   bool
}

var _ session.Session = (*Session)(nil)

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Resolve resolves id requested as resource.
func (s *Session) Resolve(ctx context.Context, id string, resource registry.Resource) (model.Component, error) {
	if s.closed {
		return nil, session.ErrClosed
	}
	return s.resolver.Resolve(ctxlog.With(ctx, "session", s.id), id, resource, s.doc, s.cache)
}

// PopulateModelTree populates root from the session document.
func (s *Session) PopulateModelTree(ctx context.Context, root *node.Node) (bool, error) {
	if s.closed {
		return false, session.ErrClosed
	}
	return s.builder.PopulateModelTree(ctxlog.With(ctx, "session", s.id), root, s.doc), nil
}

// Metrics returns the session's metrics gatherer.
func (s *Session) Metrics() prometheus.Gatherer {
	return s.metrics
}

// Close discards the cache. Closing twice is a no-op.
func (s *Session) Close(ctx context.Context) error {
	if s.closed {
		return nil
	}
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Closing local session.", "session", s.id, "cached", s.cache.Len())
	s.cache = nil
	s.closed = true
	return nil
}
