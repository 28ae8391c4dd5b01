// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// This file contains the logic for translating HCL schema structs into the
// format-agnostic model defined in the model package.

package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/vk/nmltree/internal/model"
	"github.com/vk/nmltree/internal/schema"
)

// translateFile converts one decoded file into a Document fragment.
func translateFile(f *schema.File, src *model.FSInfo) (*model.Document, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	doc := model.NewDocument()

	for _, s := range f.IonChannels {
		c := &model.IonChannel{ID: s.ID, Notes: s.Notes, Species: s.Species, Type: s.Type, FSInformation: src}
		diags = append(diags, decodeQuantities(quantityField{"conductance", s.Conductance, &c.Conductance})...)
		doc.IonChannels = append(doc.IonChannels, c)
	}
	for _, s := range f.IonChannelHHs {
		c := &model.IonChannelHH{ID: s.ID, Notes: s.Notes, Species: s.Species, FSInformation: src}
		diags = append(diags, decodeQuantities(quantityField{"conductance", s.Conductance, &c.Conductance})...)
		doc.IonChannelHHs = append(doc.IonChannelHHs, c)
	}
	for _, s := range f.Cells {
		c := &model.Cell{ID: s.ID, Notes: s.Notes, FSInformation: src}
		var d hcl.Diagnostics
		c.BiophysicalProperties, d = translateBiophysicalProperties(s.BiophysicalProperties)
		diags = append(diags, d...)
		doc.Cells = append(doc.Cells, c)
	}
	for _, s := range f.IafCells {
		c := &model.IafCell{ID: s.ID, Notes: s.Notes, FSInformation: src}
		diags = append(diags, decodeQuantities(
			quantityField{"leak_reversal", s.LeakReversal, &c.LeakReversal},
			quantityField{"thresh", s.Thresh, &c.Thresh},
			quantityField{"reset", s.Reset, &c.Reset},
			quantityField{"c", s.C, &c.C},
			quantityField{"leak_conductance", s.LeakConductance, &c.LeakConductance},
		)...)
		doc.IafCells = append(doc.IafCells, c)
	}
	for _, s := range f.AdExIaFCells {
		c := &model.AdExIaFCell{ID: s.ID, Notes: s.Notes, FSInformation: src}
		diags = append(diags, decodeQuantities(
			quantityField{"c", s.C, &c.C},
			quantityField{"g_l", s.GL, &c.GL},
			quantityField{"e_l", s.EL, &c.EL},
			quantityField{"reset", s.Reset, &c.Reset},
			quantityField{"v_t", s.VT, &c.VT},
			quantityField{"thresh", s.Thresh, &c.Thresh},
			quantityField{"del_t", s.DelT, &c.DelT},
			quantityField{"tauw", s.Tauw, &c.Tauw},
			quantityField{"refract", s.Refract, &c.Refract},
			quantityField{"a", s.A, &c.A},
			quantityField{"b", s.B, &c.B},
		)...)
		doc.AdExIaFCells = append(doc.AdExIaFCells, c)
	}
	for _, s := range f.FixedFactorConcentrationModels {
		c := &model.FixedFactorConcentrationModel{ID: s.ID, Ion: s.Ion, FSInformation: src}
		diags = append(diags, decodeQuantities(
			quantityField{"resting_conc", s.RestingConc, &c.RestingConc},
			quantityField{"decay_constant", s.DecayConstant, &c.DecayConstant},
			quantityField{"rho", s.Rho, &c.Rho},
		)...)
		doc.FixedFactorConcentrationModels = append(doc.FixedFactorConcentrationModels, c)
	}
	for _, s := range f.DecayingPoolConcentrationModels {
		c := &model.DecayingPoolConcentrationModel{ID: s.ID, Ion: s.Ion, FSInformation: src}
		diags = append(diags, decodeQuantities(
			quantityField{"resting_conc", s.RestingConc, &c.RestingConc},
			quantityField{"decay_constant", s.DecayConstant, &c.DecayConstant},
			quantityField{"shell_thickness", s.ShellThickness, &c.ShellThickness},
		)...)
		doc.DecayingPoolConcentrationModels = append(doc.DecayingPoolConcentrationModels, c)
	}
	for _, s := range f.ComponentTypes {
		doc.ComponentTypes = append(doc.ComponentTypes, &model.ComponentType{
			Name:          s.Name,
			Extends:       s.Extends,
			Description:   s.Description,
			FSInformation: src,
		})
	}
	for _, s := range f.Components {
		params, d := decodeParameters(s.Parameters)
		diags = append(diags, d...)
		doc.Components = append(doc.Components, &model.LEMSComponent{
			ID:            s.ID,
			Type:          s.Type,
			Parameters:    params,
			FSInformation: src,
		})
	}

	return doc, diags
}

func translateBiophysicalProperties(s *schema.BiophysicalProperties) (*model.BiophysicalProperties, hcl.Diagnostics) {
	if s == nil {
		return nil, nil
	}
	var diags hcl.Diagnostics
	bp := &model.BiophysicalProperties{ID: s.ID}

	if mp := s.MembraneProperties; mp != nil {
		out := &model.MembraneProperties{}
		for _, cd := range mp.ChannelDensities {
			d := &model.ChannelDensity{ID: cd.ID, IonChannel: cd.IonChannel, Ion: cd.Ion, SegmentGroup: cd.SegmentGroup}
			diags = append(diags, decodeQuantities(
				quantityField{"cond_density", cd.CondDensity, &d.CondDensity},
				quantityField{"erev", cd.Erev, &d.Erev},
			)...)
			out.ChannelDensities = append(out.ChannelDensities, d)
		}
		for _, e := range mp.SpikeThresholds {
			st := &model.SpikeThresh{SegmentGroup: e.SegmentGroup}
			diags = append(diags, decodeQuantities(quantityField{"value", e.Value, &st.Value})...)
			out.SpikeThresholds = append(out.SpikeThresholds, st)
		}
		for _, e := range mp.SpecificCapacitances {
			sc := &model.SpecificCapacitance{SegmentGroup: e.SegmentGroup}
			diags = append(diags, decodeQuantities(quantityField{"value", e.Value, &sc.Value})...)
			out.SpecificCapacitances = append(out.SpecificCapacitances, sc)
		}
		for _, e := range mp.InitMembPotentials {
			imp := &model.InitMembPotential{SegmentGroup: e.SegmentGroup}
			diags = append(diags, decodeQuantities(quantityField{"value", e.Value, &imp.Value})...)
			out.InitMembPotentials = append(out.InitMembPotentials, imp)
		}
		bp.MembraneProperties = out
	}

	if ip := s.IntracellularProperties; ip != nil {
		out := &model.IntracellularProperties{}
		for _, e := range ip.Resistivities {
			r := &model.Resistivity{SegmentGroup: e.SegmentGroup}
			diags = append(diags, decodeQuantities(quantityField{"value", e.Value, &r.Value})...)
			out.Resistivities = append(out.Resistivities, r)
		}
		for _, sp := range ip.Species {
			species := &model.Species{
				ID:                 sp.ID,
				ConcentrationModel: sp.ConcentrationModel,
				Ion:                sp.Ion,
				SegmentGroup:       sp.SegmentGroup,
			}
			diags = append(diags, decodeQuantities(
				quantityField{"initial_concentration", sp.InitialConcentration, &species.InitialConcentration},
				quantityField{"initial_ext_concentration", sp.InitialExtConcentration, &species.InitialExtConcentration},
			)...)
			out.Species = append(out.Species, species)
		}
		bp.IntracellularProperties = out
	}

	return bp, diags
}
