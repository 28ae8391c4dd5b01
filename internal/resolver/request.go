// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package resolver

import (
	"fmt"
	"strings"

	"github.com/vk/nmltree/internal/registry"
)

// DefaultResource is used for requests that do not name a resource. Its
// plan covers every NeuroML partition.
const DefaultResource = registry.ResourceIonChannel

// Request is one parsed "[resource:]id" lookup.
type Request struct {
	ID       string
	Resource registry.Resource
}

func (q Request) String() string {
	return string(q.Resource) + ":" + q.ID
}

// ParseRequest parses "resource:id" or a bare "id". A bare id is requested
// as DefaultResource.
func ParseRequest(raw string) (Request, error) {
	raw = strings.TrimSpace(raw)
	resource, id, hasResource := strings.Cut(raw, ":")
	if !hasResource {
		id, resource = resource, string(DefaultResource)
	}
	if id == "" {
		return Request{}, fmt.Errorf("invalid request %q: empty identifier", raw)
	}
	if resource == "" {
		return Request{}, fmt.Errorf("invalid request %q: empty resource", raw)
	}
	return Request{ID: id, Resource: registry.Resource(resource)}, nil
}
