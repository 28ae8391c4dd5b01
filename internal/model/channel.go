// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

import "github.com/vk/nmltree/internal/quantity"

// IonChannel is a generic ion channel definition.
type IonChannel struct {
	sealed
	ID            string
	Notes         string
	Species       string
	Type          string
	Conductance   quantity.Quantity
	FSInformation *FSInfo
}

func (c *IonChannel) ComponentID() string { return c.ID }
func (c *IonChannel) Kind() Kind          { return KindIonChannel }
func (c *IonChannel) Source() *FSInfo     { return c.FSInformation }

// IonChannelHH is a Hodgkin-Huxley style ion channel definition. It is kept
// in its own partition even though it shares the IonChannel shape.
type IonChannelHH struct {
	sealed
	ID            string
	Notes         string
	Species       string
	Conductance   quantity.Quantity
	FSInformation *FSInfo
}

func (c *IonChannelHH) ComponentID() string { return c.ID }
func (c *IonChannelHH) Kind() Kind          { return KindIonChannelHH }
func (c *IonChannelHH) Source() *FSInfo     { return c.FSInformation }
