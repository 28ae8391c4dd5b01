// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package builder

import (
	"strconv"

	"github.com/vk/nmltree/internal/model"
	"github.com/vk/nmltree/internal/node"
	"github.com/vk/nmltree/internal/quantity"
)

// BuildBiophysicalProperties builds the subtree for props without attaching
// it anywhere. It returns nil when props is nil.
func BuildBiophysicalProperties(props *model.BiophysicalProperties) *node.Node {
	if props == nil {
		return nil
	}

	bio := node.NewComposite(LabelBiophysicalProperties, props.ID)
	if props.MembraneProperties != nil {
		bio.AddChild(buildMembraneProperties(props.MembraneProperties))
	}
	if props.IntracellularProperties != nil {
		bio.AddChild(buildIntracellularProperties(props.IntracellularProperties))
	}
	return bio
}

func buildMembraneProperties(mp *model.MembraneProperties) *node.Node {
	membrane := node.NewComposite(LabelMembraneProperties, MembranePropertiesID)

	for _, cd := range mp.ChannelDensities {
		density := node.NewComposite(LabelChannelDensity, cd.ID)
		density.AddChild(newParameterNode(LabelCondDensity, roleID(LabelCondDensity, cd.ID), cd.CondDensity))
		density.AddChild(node.NewText(LabelIon, roleID(LabelIon, cd.ID), cd.Ion))
		density.AddChild(node.NewReference(LabelIonChannel, cd.IonChannel))
		density.AddChild(newParameterNode(LabelErev, roleID(LabelErev, cd.ID), cd.Erev))
		membrane.AddChild(density)
	}

	for i, st := range mp.SpikeThresholds {
		membrane.AddChild(newParameterNode(LabelSpikeThresh, indexID(LabelSpikeThresh, i), st.Value))
	}
	for i, sc := range mp.SpecificCapacitances {
		membrane.AddChild(newParameterNode(LabelSpecificCapacitance, indexID(LabelSpecificCapacitance, i), sc.Value))
	}
	for i, imp := range mp.InitMembPotentials {
		membrane.AddChild(newParameterNode(LabelInitMembPotential, indexID(LabelInitMembPotential, i), imp.Value))
	}

	return membrane
}

func buildIntracellularProperties(ip *model.IntracellularProperties) *node.Node {
	intracellular := node.NewComposite(LabelIntracellularProperties, IntracellularPropertiesID)

	for i, r := range ip.Resistivities {
		intracellular.AddChild(newParameterNode(LabelResistivity, indexID(LabelResistivity, i), r.Value))
	}

	for _, s := range ip.Species {
		species := node.NewComposite(LabelSpecies, s.ID)
		species.AddChild(newParameterNode(LabelInitialConcentration, roleID(LabelInitialConcentration, s.ID), s.InitialConcentration))
		species.AddChild(newParameterNode(LabelInitialExtConcentration, roleID(LabelInitialExtConcentration, s.ID), s.InitialExtConcentration))
		species.AddChild(node.NewText(LabelIon, roleID(LabelIon, s.ID), s.Ion))
		species.AddChild(node.NewReference(LabelConcentrationModel, s.ConcentrationModel))
		intracellular.AddChild(species)
	}

	return intracellular
}

// newParameterNode is the single place parameter leaves are created. The
// quantity is carried unchanged: no unit conversion, no range check.
func newParameterNode(role, id string, q quantity.Quantity) *node.Node {
	return node.NewParameter(role, id, q)
}

// roleID forms the display id of a leaf owned by an identified entry,
// e.g. condDensity_naChans.
func roleID(role, ownerID string) string {
	return role + "_" + ownerID
}

// indexID forms the display id of a positional entry, e.g. spikeThresh_0.
func indexID(role string, index int) string {
	return role + "_" + strconv.Itoa(index)
}
