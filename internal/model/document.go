// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Document and its partition table.
//
// Why a dispatch table?
//
// Every consumer that needs "all components of kind X" goes through
// Partition. Adding a kind means adding one row to partitionTable instead of
// another hand-written loop in each consumer.
package model

// Document is a parsed model, partitioned by component kind. Each slice keeps
// declaration order.
type Document struct {
	IonChannels                     []*IonChannel
	IonChannelHHs                   []*IonChannelHH
	Cells                           []*Cell
	IafCells                        []*IafCell
	AdExIaFCells                    []*AdExIaFCell
	FixedFactorConcentrationModels  []*FixedFactorConcentrationModel
	DecayingPoolConcentrationModels []*DecayingPoolConcentrationModel
	ComponentTypes                  []*ComponentType
	Components                      []*LEMSComponent
}

// NewDocument creates an empty Document.
func NewDocument() *Document {
	return &Document{}
}

type partition struct {
	kind       Kind
	components func(d *Document) []Component
}

// partitionTable lists every partition in canonical order.
var partitionTable = []partition{
	{KindIonChannel, func(d *Document) []Component { return asComponents(d.IonChannels) }},
	{KindIonChannelHH, func(d *Document) []Component { return asComponents(d.IonChannelHHs) }},
	{KindCell, func(d *Document) []Component { return asComponents(d.Cells) }},
	{KindIafCell, func(d *Document) []Component { return asComponents(d.IafCells) }},
	{KindAdExIaFCell, func(d *Document) []Component { return asComponents(d.AdExIaFCells) }},
	{KindFixedFactorConcentrationModel, func(d *Document) []Component { return asComponents(d.FixedFactorConcentrationModels) }},
	{KindDecayingPoolConcentrationModel, func(d *Document) []Component { return asComponents(d.DecayingPoolConcentrationModels) }},
	{KindComponentType, func(d *Document) []Component { return asComponents(d.ComponentTypes) }},
	{KindComponent, func(d *Document) []Component { return asComponents(d.Components) }},
}

func asComponents[T Component](items []T) []Component {
	out := make([]Component, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// Partitions returns every known partition kind in canonical order.
func Partitions() []Kind {
	kinds := make([]Kind, len(partitionTable))
	for i, p := range partitionTable {
		kinds[i] = p.kind
	}
	return kinds
}

// IsPartition reports whether kind names a known partition.
func IsPartition(kind Kind) bool {
	for _, p := range partitionTable {
		if p.kind == kind {
			return true
		}
	}
	return false
}

// Partition returns the components of the given kind in declaration order.
// Unknown kinds and a nil Document yield nil.
func (d *Document) Partition(kind Kind) []Component {
	if d == nil {
		return nil
	}
	for _, p := range partitionTable {
		if p.kind == kind {
			return p.components(d)
		}
	}
	return nil
}

// Len returns the total number of components across all partitions.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	n := 0
	for _, p := range partitionTable {
		n += len(p.components(d))
	}
	return n
}

// Merge appends every partition of other to d, keeping order: d's components
// first, then other's. Identifiers are not deduplicated.
func (d *Document) Merge(other *Document) {
	if other == nil {
		return
	}
	d.IonChannels = append(d.IonChannels, other.IonChannels...)
	d.IonChannelHHs = append(d.IonChannelHHs, other.IonChannelHHs...)
	d.Cells = append(d.Cells, other.Cells...)
	d.IafCells = append(d.IafCells, other.IafCells...)
	d.AdExIaFCells = append(d.AdExIaFCells, other.AdExIaFCells...)
	d.FixedFactorConcentrationModels = append(d.FixedFactorConcentrationModels, other.FixedFactorConcentrationModels...)
	d.DecayingPoolConcentrationModels = append(d.DecayingPoolConcentrationModels, other.DecayingPoolConcentrationModels...)
	d.ComponentTypes = append(d.ComponentTypes, other.ComponentTypes...)
	d.Components = append(d.Components, other.Components...)
}
