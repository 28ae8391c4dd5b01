// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package registry

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"

	"github.com/vk/nmltree/internal/model"
)

// Resource names what a caller asks the resolver for. It is broader than a
// model.Kind: one resource may be served by several partitions.
type Resource string

const (
	ResourceIonChannel         Resource = "ionChannel"
	ResourceCell               Resource = "cell"
	ResourceConcentrationModel Resource = "concentrationModel"
)

// String implements fmt.Stringer.
func (r Resource) String() string {
	return string(r)
}

// Module is implemented by anything that contributes plans.
type Module interface {
	Register(r *Registry)
}

// Registry maps resources to their ordered partition plans.
type Registry struct {
	plans map[Resource][]model.Kind
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{plans: make(map[Resource][]model.Kind)}
}

// NewDefault creates a Registry with the built-in NeuroML plans registered.
func NewDefault() *Registry {
	r := New()
	DefaultPlans{}.Register(r)
	return r
}

// RegisterPlan registers the ordered partitions scanned for resource.
// Registering the same resource twice is a programming error and panics.
func (r *Registry) RegisterPlan(resource Resource, partitions ...model.Kind) {
	if _, exists := r.plans[resource]; exists {
		panic(fmt.Sprintf("plan for resource '%s' already registered", resource))
	}
	slog.Debug("Registering resolution plan.", "resource", resource, "partitions", partitions)
	r.plans[resource] = slices.Clone(partitions)
}

// Plan returns a copy of the partitions registered for resource. The second
// result is false for resources without a plan; those are served by the
// fallback resolver only.
func (r *Registry) Plan(resource Resource) ([]model.Kind, bool) {
	plan, ok := r.plans[resource]
	if !ok {
		return nil, false
	}
	return slices.Clone(plan), true
}

// Accepts reports whether kind is part of the plan for resource.
func (r *Registry) Accepts(resource Resource, kind model.Kind) bool {
	return slices.Contains(r.plans[resource], kind)
}

// Resources returns every registered resource in sorted order.
func (r *Registry) Resources() []Resource {
	out := make([]Resource, 0, len(r.plans))
	for res := range r.plans {
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
