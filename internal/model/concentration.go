// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

import "github.com/vk/nmltree/internal/quantity"

// FixedFactorConcentrationModel models an ion pool whose influx is scaled by a
// fixed factor rho.
type FixedFactorConcentrationModel struct {
	sealed
	ID            string
	Ion           string
	RestingConc   quantity.Quantity
	DecayConstant quantity.Quantity
	Rho           quantity.Quantity
	FSInformation *FSInfo
}

func (c *FixedFactorConcentrationModel) ComponentID() string { return c.ID }
func (c *FixedFactorConcentrationModel) Kind() Kind          { return KindFixedFactorConcentrationModel }
func (c *FixedFactorConcentrationModel) Source() *FSInfo     { return c.FSInformation }

// DecayingPoolConcentrationModel models an ion pool in a submembrane shell
// that decays towards its resting concentration.
type DecayingPoolConcentrationModel struct {
	sealed
	ID             string
	Ion            string
	RestingConc    quantity.Quantity
	DecayConstant  quantity.Quantity
	ShellThickness quantity.Quantity
	FSInformation  *FSInfo
}

func (c *DecayingPoolConcentrationModel) ComponentID() string { return c.ID }
func (c *DecayingPoolConcentrationModel) Kind() Kind          { return KindDecayingPoolConcentrationModel }
func (c *DecayingPoolConcentrationModel) Source() *FSInfo     { return c.FSInformation }
