// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package session defines the core interfaces for creating and managing a
// document-processing session. A session scopes the discovered-components
// cache, the tree builder's populated flag, and the resolver metrics to one
// document.
package session

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vk/nmltree/internal/componentstore"
	"github.com/vk/nmltree/internal/model"
	"github.com/vk/nmltree/internal/node"
	"github.com/vk/nmltree/internal/registry"
)

// ErrClosed is returned by every Session method called after Close.
var ErrClosed = errors.New("session is closed")

// Options configure a new Session.
type Options struct {
	// Mode selects the cache lookup discipline.
	Mode componentstore.Mode
	// Registry holds the resolution plans. Nil means registry.NewDefault().
	Registry *registry.Registry
}

// SessionFactory creates a Session over a parsed document. Different
// implementations can back the session differently.
type SessionFactory interface {
	NewSession(ctx context.Context, doc *model.Document, opts Options) (Session, error)
}

// Session represents a single document-processing run and manages its
// lifecycle. A Session is not safe for concurrent use.
type Session interface {
	// ID returns the unique identifier of the session.
	ID() string

	// Resolve resolves id requested as resource, using the session cache.
	Resolve(ctx context.Context, id string, resource registry.Resource) (model.Component, error)

	// PopulateModelTree attaches the biophysical properties of every cell of
	// the session document to root. It reports whether anything has been
	// populated during the session.
	PopulateModelTree(ctx context.Context, root *node.Node) (bool, error)

	// Metrics returns the gatherer of the session's resolver counters.
	Metrics() prometheus.Gatherer

	// Close discards the session cache. It accepts a context to allow for
	// logging during cleanup.
	Close(ctx context.Context) error
}
