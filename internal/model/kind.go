// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the closed set of component kinds and the Component
// interface they all implement.
package model

// Kind tags a component with the partition it lives in.
type Kind string

const (
	KindIonChannel                     Kind = "ionChannel"
	KindIonChannelHH                   Kind = "ionChannelHH"
	KindCell                           Kind = "cell"
	KindIafCell                        Kind = "iafCell"
	KindAdExIaFCell                    Kind = "adExIaFCell"
	KindFixedFactorConcentrationModel  Kind = "fixedFactorConcentrationModel"
	KindDecayingPoolConcentrationModel Kind = "decayingPoolConcentrationModel"

	// LEMS family. These partitions are served by the fallback resolver.
	KindComponentType Kind = "componentType"
	KindComponent     Kind = "component"
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// Component is implemented by every object stored in a Document partition.
// Identifiers are unique within a partition only.
type Component interface {
	// ComponentID returns the identifier the component is declared with.
	ComponentID() string
	// Kind returns the partition the component belongs to.
	Kind() Kind
	// Source returns where the component was declared. May be nil.
	Source() *FSInfo

	isComponent()
}

// sealed is embedded in every concrete component so that the set of
// implementations stays inside this package.
type sealed struct{}

func (sealed) isComponent() {}
