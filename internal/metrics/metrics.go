// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package metrics instruments component resolution with Prometheus counters.
//
// Each session registers its counters on its own registry, so counts never
// leak between sessions and tests can read them without global state.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/vk/nmltree/internal/model"
)

const namespace = "nmltree"

// Resolver holds the counters of one resolver. A nil *Resolver is valid and
// records nothing.
type Resolver struct {
	PartitionScans *prometheus.CounterVec
	CacheHits      prometheus.Counter
	CacheMisses    prometheus.Counter
	NotFound       prometheus.Counter
}

// NewResolver creates the resolver counters and registers them on reg. A nil
// reg creates unregistered counters.
func NewResolver(reg prometheus.Registerer) *Resolver {
	factory := promauto.With(reg)
	return &Resolver{
		PartitionScans: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "resolver",
			Name:      "partition_scans_total",
			Help:      "Number of document partitions scanned, by partition.",
		}, []string{"partition"}),
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "resolver",
			Name:      "cache_hits_total",
			Help:      "Number of resolutions served from the discovered-components cache.",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "resolver",
			Name:      "cache_misses_total",
			Help:      "Number of resolutions that had to scan the document.",
		}),
		NotFound: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "resolver",
			Name:      "not_found_total",
			Help:      "Number of resolutions that failed with component not found.",
		}),
	}
}

// PartitionScanned counts one scan of kind.
func (m *Resolver) PartitionScanned(kind model.Kind) {
	if m == nil {
		return
	}
	m.PartitionScans.WithLabelValues(kind.String()).Inc()
}

// CacheHit counts one cache hit.
func (m *Resolver) CacheHit() {
	if m == nil {
		return
	}
	m.CacheHits.Inc()
}

// CacheMiss counts one cache miss.
func (m *Resolver) CacheMiss() {
	if m == nil {
		return
	}
	m.CacheMisses.Inc()
}

// ComponentNotFound counts one failed resolution.
func (m *Resolver) ComponentNotFound() {
	if m == nil {
		return
	}
	m.NotFound.Inc()
}
