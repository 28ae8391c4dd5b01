// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

/*
Package builder materializes the biophysical properties of model documents
into the generic node tree defined by package node.

The walk is deterministic and follows a fixed schema:

	BiophysicalProperties[id]
	├── MembraneProperties
	│   ├── ChannelDensity[id]        (one per channel density, source order)
	│   │   ├── condDensity_<id>      parameter
	│   │   ├── ion_<id>              text
	│   │   ├── IonChannel[ref]       placeholder composite
	│   │   └── erev_<id>             parameter
	│   ├── spikeThresh_<i>           parameter, one per entry
	│   ├── specificCapacitance_<i>   parameter, one per entry
	│   └── initMembPotential_<i>     parameter, one per entry
	└── IntracellularProperties
	    ├── resistivity_<i>           parameter, one per entry
	    └── Species[id]               (one per species, source order)
	        ├── initialConcentration_<id>     parameter
	        ├── initialExtConcentration_<id>  parameter
	        ├── ion_<id>                      text
	        └── ConcentrationModel[ref]       placeholder composite

Cross-references (the ion channel of a channel density, the concentration
model of a species) are emitted as placeholder composites carrying the
referenced id only. Resolving them is the job of the resolver package.

The subtree for one BiophysicalProperties is built by the pure function
BuildBiophysicalProperties. A Builder adds the only side effect: attaching
that subtree to the caller's root and remembering that something was
populated during the session.
*/
package builder
