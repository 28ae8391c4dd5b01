// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package builder

// Kind labels of the nodes the builder emits.
const (
	LabelBiophysicalProperties   = "BiophysicalProperties"
	LabelMembraneProperties      = "MembraneProperties"
	LabelIntracellularProperties = "IntracellularProperties"
	LabelChannelDensity          = "ChannelDensity"
	LabelSpecies                 = "Species"
	LabelIonChannel              = "IonChannel"
	LabelConcentrationModel      = "ConcentrationModel"

	LabelCondDensity             = "condDensity"
	LabelIon                     = "ion"
	LabelErev                    = "erev"
	LabelSpikeThresh             = "spikeThresh"
	LabelSpecificCapacitance     = "specificCapacitance"
	LabelInitMembPotential       = "initMembPotential"
	LabelResistivity             = "resistivity"
	LabelInitialConcentration    = "initialConcentration"
	LabelInitialExtConcentration = "initialExtConcentration"
)

// Display ids of the two property groups.
const (
	MembranePropertiesID      = "membraneProperties"
	IntracellularPropertiesID = "intracellularProperties"
)
