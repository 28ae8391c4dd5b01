// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package registry

import "github.com/vk/nmltree/internal/model"

// DefaultPlans registers the NeuroML plans. Each list starts with the
// partition named by the request and widens to related families.
type DefaultPlans struct{}

var _ Module = DefaultPlans{}

func (DefaultPlans) Register(r *Registry) {
	r.RegisterPlan(ResourceIonChannel,
		model.KindIonChannel,
		model.KindIonChannelHH,
		model.KindCell,
		model.KindAdExIaFCell,
		model.KindIafCell,
		model.KindFixedFactorConcentrationModel,
		model.KindDecayingPoolConcentrationModel,
	)
	r.RegisterPlan(ResourceCell,
		model.KindCell,
		model.KindAdExIaFCell,
		model.KindIafCell,
		model.KindFixedFactorConcentrationModel,
		model.KindDecayingPoolConcentrationModel,
	)
	r.RegisterPlan(ResourceConcentrationModel,
		model.KindFixedFactorConcentrationModel,
		model.KindDecayingPoolConcentrationModel,
	)
}
