// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the biophysical property graph of a Cell. Both sub-groups
// are optional; every repeatable entry is kept in declaration order, which the
// tree builder preserves.
package model

import "github.com/vk/nmltree/internal/quantity"

// BiophysicalProperties groups the membrane and intracellular properties of a
// cell.
type BiophysicalProperties struct {
	ID                      string
	MembraneProperties      *MembraneProperties
	IntracellularProperties *IntracellularProperties
}

// MembraneProperties lists the channel densities and scalar membrane
// parameters of a cell.
type MembraneProperties struct {
	ChannelDensities     []*ChannelDensity
	SpikeThresholds      []*SpikeThresh
	SpecificCapacitances []*SpecificCapacitance
	InitMembPotentials   []*InitMembPotential
}

// ChannelDensity places an ion channel on a segment group at a given
// conductance density.
type ChannelDensity struct {
	ID           string
	IonChannel   string
	CondDensity  quantity.Quantity
	Erev         quantity.Quantity
	Ion          string
	SegmentGroup string
}

// SpikeThresh is the membrane potential at which a spike is emitted.
type SpikeThresh struct {
	Value        quantity.Quantity
	SegmentGroup string
}

// SpecificCapacitance is the membrane capacitance per unit area.
type SpecificCapacitance struct {
	Value        quantity.Quantity
	SegmentGroup string
}

// InitMembPotential is the membrane potential at the start of a simulation.
type InitMembPotential struct {
	Value        quantity.Quantity
	SegmentGroup string
}

// IntracellularProperties lists the axial resistivities and chemical species
// of a cell.
type IntracellularProperties struct {
	Resistivities []*Resistivity
	Species       []*Species
}

// Resistivity is the axial resistivity of the cytoplasm.
type Resistivity struct {
	Value        quantity.Quantity
	SegmentGroup string
}

// Species is a chemical species whose concentration is governed by a
// concentration model.
type Species struct {
	ID                      string
	ConcentrationModel      string
	Ion                     string
	InitialConcentration    quantity.Quantity
	InitialExtConcentration quantity.Quantity
	SegmentGroup            string
}
