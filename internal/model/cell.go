// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

import "github.com/vk/nmltree/internal/quantity"

// Cell is a multi-compartment cell. It is the root model kind: the tree
// builder walks the BiophysicalProperties of every Cell in a document.
type Cell struct {
	sealed
	ID                    string
	Notes                 string
	BiophysicalProperties *BiophysicalProperties
	FSInformation         *FSInfo
}

func (c *Cell) ComponentID() string { return c.ID }
func (c *Cell) Kind() Kind          { return KindCell }
func (c *Cell) Source() *FSInfo     { return c.FSInformation }

// IafCell is an integrate-and-fire point neuron.
type IafCell struct {
	sealed
	ID              string
	Notes           string
	LeakReversal    quantity.Quantity
	Thresh          quantity.Quantity
	Reset           quantity.Quantity
	C               quantity.Quantity
	LeakConductance quantity.Quantity
	FSInformation   *FSInfo
}

func (c *IafCell) ComponentID() string { return c.ID }
func (c *IafCell) Kind() Kind          { return KindIafCell }
func (c *IafCell) Source() *FSInfo     { return c.FSInformation }

// AdExIaFCell is an adaptive exponential integrate-and-fire point neuron.
type AdExIaFCell struct {
	sealed
	ID            string
	Notes         string
	C             quantity.Quantity
	GL            quantity.Quantity
	EL            quantity.Quantity
	Reset         quantity.Quantity
	VT            quantity.Quantity
	Thresh        quantity.Quantity
	DelT          quantity.Quantity
	Tauw          quantity.Quantity
	Refract       quantity.Quantity
	A             quantity.Quantity
	B             quantity.Quantity
	FSInformation *FSInfo
}

func (c *AdExIaFCell) ComponentID() string { return c.ID }
func (c *AdExIaFCell) Kind() Kind          { return KindAdExIaFCell }
func (c *AdExIaFCell) Source() *FSInfo     { return c.FSInformation }
