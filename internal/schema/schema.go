// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package schema holds the gohcl decoding structs of the HCL document format.
//
// Quantity-valued attributes are decoded as raw hcl.Expression and converted
// by the loader, so a quantity may be written as a string ("120 mS_per_cm2"),
// a bare number, or an object ({ value = 120, unit = "mS_per_cm2" }).
package schema

import "github.com/hashicorp/hcl/v2"

// File is the top-level structure of a document file. Every block kind may
// appear any number of times, in any file. Unknown blocks are rejected.
type File struct {
	IonChannels                     []*IonChannel                     `hcl:"ion_channel,block"`
	IonChannelHHs                   []*IonChannelHH                   `hcl:"ion_channel_hh,block"`
	Cells                           []*Cell                           `hcl:"cell,block"`
	IafCells                        []*IafCell                        `hcl:"iaf_cell,block"`
	AdExIaFCells                    []*AdExIaFCell                    `hcl:"adex_iaf_cell,block"`
	FixedFactorConcentrationModels  []*FixedFactorConcentrationModel  `hcl:"fixed_factor_concentration_model,block"`
	DecayingPoolConcentrationModels []*DecayingPoolConcentrationModel `hcl:"decaying_pool_concentration_model,block"`
	ComponentTypes                  []*ComponentType                  `hcl:"component_type,block"`
	Components                      []*Component                      `hcl:"component,block"`
}

// --- Cells ---

// Cell is a `cell "<id>"` block.
type Cell struct {
	ID                    string                 `hcl:"id,label"`
	Notes                 string                 `hcl:"notes,optional"`
	BiophysicalProperties *BiophysicalProperties `hcl:"biophysical_properties,block"`
}

// BiophysicalProperties is a `biophysical_properties "<id>"` block.
type BiophysicalProperties struct {
	ID                      string                   `hcl:"id,label"`
	MembraneProperties      *MembraneProperties      `hcl:"membrane_properties,block"`
	IntracellularProperties *IntracellularProperties `hcl:"intracellular_properties,block"`
}

// MembraneProperties is a `membrane_properties` block.
type MembraneProperties struct {
	ChannelDensities     []*ChannelDensity `hcl:"channel_density,block"`
	SpikeThresholds      []*ValueEntry     `hcl:"spike_thresh,block"`
	SpecificCapacitances []*ValueEntry     `hcl:"specific_capacitance,block"`
	InitMembPotentials   []*ValueEntry     `hcl:"init_memb_potential,block"`
}

// ChannelDensity is a `channel_density "<id>"` block.
type ChannelDensity struct {
	ID           string         `hcl:"id,label"`
	IonChannel   string         `hcl:"ion_channel"`
	CondDensity  hcl.Expression `hcl:"cond_density,optional"`
	Erev         hcl.Expression `hcl:"erev,optional"`
	Ion          string         `hcl:"ion,optional"`
	SegmentGroup string         `hcl:"segment_group,optional"`
}

// ValueEntry is a single-quantity block such as `spike_thresh`.
type ValueEntry struct {
	Value        hcl.Expression `hcl:"value"`
	SegmentGroup string         `hcl:"segment_group,optional"`
}

// IntracellularProperties is an `intracellular_properties` block.
type IntracellularProperties struct {
	Resistivities []*ValueEntry `hcl:"resistivity,block"`
	Species       []*Species    `hcl:"species,block"`
}

// Species is a `species "<id>"` block.
type Species struct {
	ID                      string         `hcl:"id,label"`
	ConcentrationModel      string         `hcl:"concentration_model"`
	Ion                     string         `hcl:"ion,optional"`
	InitialConcentration    hcl.Expression `hcl:"initial_concentration,optional"`
	InitialExtConcentration hcl.Expression `hcl:"initial_ext_concentration,optional"`
	SegmentGroup            string         `hcl:"segment_group,optional"`
}

// IafCell is an `iaf_cell "<id>"` block.
type IafCell struct {
	ID              string         `hcl:"id,label"`
	Notes           string         `hcl:"notes,optional"`
	LeakReversal    hcl.Expression `hcl:"leak_reversal,optional"`
	Thresh          hcl.Expression `hcl:"thresh,optional"`
	Reset           hcl.Expression `hcl:"reset,optional"`
	C               hcl.Expression `hcl:"c,optional"`
	LeakConductance hcl.Expression `hcl:"leak_conductance,optional"`
}

// AdExIaFCell is an `adex_iaf_cell "<id>"` block.
type AdExIaFCell struct {
	ID      string         `hcl:"id,label"`
	Notes   string         `hcl:"notes,optional"`
	C       hcl.Expression `hcl:"c,optional"`
	GL      hcl.Expression `hcl:"g_l,optional"`
	EL      hcl.Expression `hcl:"e_l,optional"`
	Reset   hcl.Expression `hcl:"reset,optional"`
	VT      hcl.Expression `hcl:"v_t,optional"`
	Thresh  hcl.Expression `hcl:"thresh,optional"`
	DelT    hcl.Expression `hcl:"del_t,optional"`
	Tauw    hcl.Expression `hcl:"tauw,optional"`
	Refract hcl.Expression `hcl:"refract,optional"`
	A       hcl.Expression `hcl:"a,optional"`
	B       hcl.Expression `hcl:"b,optional"`
}

// --- Channels ---

// IonChannel is an `ion_channel "<id>"` block.
type IonChannel struct {
	ID          string         `hcl:"id,label"`
	Notes       string         `hcl:"notes,optional"`
	Species     string         `hcl:"species,optional"`
	Type        string         `hcl:"type,optional"`
	Conductance hcl.Expression `hcl:"conductance,optional"`
}

// IonChannelHH is an `ion_channel_hh "<id>"` block.
type IonChannelHH struct {
	ID          string         `hcl:"id,label"`
	Notes       string         `hcl:"notes,optional"`
	Species     string         `hcl:"species,optional"`
	Conductance hcl.Expression `hcl:"conductance,optional"`
}

// --- Concentration models ---

// FixedFactorConcentrationModel is a `fixed_factor_concentration_model "<id>"` block.
type FixedFactorConcentrationModel struct {
	ID            string         `hcl:"id,label"`
	Ion           string         `hcl:"ion,optional"`
	RestingConc   hcl.Expression `hcl:"resting_conc,optional"`
	DecayConstant hcl.Expression `hcl:"decay_constant,optional"`
	Rho           hcl.Expression `hcl:"rho,optional"`
}

// DecayingPoolConcentrationModel is a `decaying_pool_concentration_model "<id>"` block.
type DecayingPoolConcentrationModel struct {
	ID             string         `hcl:"id,label"`
	Ion            string         `hcl:"ion,optional"`
	RestingConc    hcl.Expression `hcl:"resting_conc,optional"`
	DecayConstant  hcl.Expression `hcl:"decay_constant,optional"`
	ShellThickness hcl.Expression `hcl:"shell_thickness,optional"`
}

// --- LEMS ---

// ComponentType is a `component_type "<name>"` block.
type ComponentType struct {
	Name        string `hcl:"name,label"`
	Extends     string `hcl:"extends,optional"`
	Description string `hcl:"description,optional"`
}

// Component is a `component "<id>"` block. Each parameter is decoded as a
// quantity.
type Component struct {
	ID         string         `hcl:"id,label"`
	Type       string         `hcl:"type"`
	Parameters hcl.Expression `hcl:"parameters,optional"`
}
