// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the LEMS component family: user-defined component types
// and the generic components instantiating them. They live in the same
// Document but are resolved by a separate resolver (see package lems).
package model

import "github.com/vk/nmltree/internal/quantity"

// ComponentType is a user-defined component type. Its Name doubles as its
// identifier.
type ComponentType struct {
	sealed
	Name          string
	Extends       string
	Description   string
	FSInformation *FSInfo
}

func (c *ComponentType) ComponentID() string { return c.Name }
func (c *ComponentType) Kind() Kind          { return KindComponentType }
func (c *ComponentType) Source() *FSInfo     { return c.FSInformation }

// LEMSComponent is a generic component of a user-defined type.
type LEMSComponent struct {
	sealed
	ID            string
	Type          string
	Parameters    map[string]quantity.Quantity
	FSInformation *FSInfo
}

func (c *LEMSComponent) ComponentID() string { return c.ID }
func (c *LEMSComponent) Kind() Kind          { return KindComponent }
func (c *LEMSComponent) Source() *FSInfo     { return c.FSInformation }
