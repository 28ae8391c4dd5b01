// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/nmltree/internal/ctxlog"
	"github.com/vk/nmltree/internal/model"
)

// Validate checks every plan against the document partition table: each
// partition must exist and appear at most once per plan. All problems are
// reported together.
func (r *Registry) Validate(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, resource := range r.Resources() {
		plan := r.plans[resource]
		if len(plan) == 0 {
			logger.Warn("Plan has no partitions; resource is served by the fallback resolver only.", "resource", resource)
			continue
		}

		seen := make(map[model.Kind]struct{}, len(plan))
		for _, kind := range plan {
			if !model.IsPartition(kind) {
				errs = append(errs, fmt.Sprintf("resource '%s': unknown partition '%s'", resource, kind))
				continue
			}
			if _, dup := seen[kind]; dup {
				errs = append(errs, fmt.Sprintf("resource '%s': partition '%s' listed more than once", resource, kind))
				continue
			}
			seen[kind] = struct{}{}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Registry validated.", "resources", len(r.plans))
	return nil
}
