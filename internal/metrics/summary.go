// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Summarize flattens every counter gathered from g into a map keyed by metric
// name, with label pairs appended in braces, e.g.
// nmltree_resolver_partition_scans_total{partition=cell}.
func Summarize(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	out := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			counter := m.GetCounter()
			if counter == nil {
				continue
			}
			name := mf.GetName()
			if labels := m.GetLabel(); len(labels) > 0 {
				pairs := make([]string, 0, len(labels))
				for _, lp := range labels {
					pairs = append(pairs, lp.GetName()+"="+lp.GetValue())
				}
				sort.Strings(pairs)
				name += "{" + strings.Join(pairs, ",") + "}"
			}
			out[name] = counter.GetValue()
		}
	}
	return out, nil
}
