// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package app

import "github.com/vk/nmltree/internal/registry"

// coreModules is the list of plan modules compiled into the binary.
var coreModules = []registry.Module{
	registry.DefaultPlans{},
}
