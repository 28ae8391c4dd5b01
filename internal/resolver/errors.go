// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package resolver

import (
	"errors"
	"fmt"

	"github.com/vk/nmltree/internal/registry"
)

// ErrComponentNotFound is matched by every resolution failure.
var ErrComponentNotFound = errors.New("component not found")

// NotFoundError reports that no partition, nor the fallback resolver, holds a
// component with the requested id.
type NotFoundError struct {
	ID       string
	Resource registry.Resource
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("component %q not found (requested as %s)", e.ID, e.Resource)
}

// Is makes errors.Is(err, ErrComponentNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrComponentNotFound
}
