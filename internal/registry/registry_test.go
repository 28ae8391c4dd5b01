package registry

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/nmltree/internal/ctxlog"
	"github.com/vk/nmltree/internal/model"
)

func testCtx(buf *bytes.Buffer) context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(buf, nil)))
}

func TestDefaultPlans(t *testing.T) {
	r := NewDefault()

	testCases := []struct {
		resource Resource
		want     []model.Kind
	}{
		{
			resource: ResourceIonChannel,
			want: []model.Kind{
				model.KindIonChannel, model.KindIonChannelHH, model.KindCell, model.KindAdExIaFCell,
				model.KindIafCell, model.KindFixedFactorConcentrationModel, model.KindDecayingPoolConcentrationModel,
			},
		},
		{
			resource: ResourceCell,
			want: []model.Kind{
				model.KindCell, model.KindAdExIaFCell, model.KindIafCell,
				model.KindFixedFactorConcentrationModel, model.KindDecayingPoolConcentrationModel,
			},
		},
		{
			resource: ResourceConcentrationModel,
			want:     []model.Kind{model.KindFixedFactorConcentrationModel, model.KindDecayingPoolConcentrationModel},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.resource.String(), func(t *testing.T) {
			got, ok := r.Plan(tc.resource)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}

	require.NoError(t, r.Validate(testCtx(&bytes.Buffer{})))
}

func TestPlan_UnknownResource(t *testing.T) {
	plan, ok := NewDefault().Plan("network")
	assert.False(t, ok)
	assert.Nil(t, plan)
}

func TestPlan_ReturnsCopy(t *testing.T) {
	r := NewDefault()
	plan, _ := r.Plan(ResourceCell)
	plan[0] = model.KindComponent

	again, _ := r.Plan(ResourceCell)
	assert.Equal(t, model.KindCell, again[0])
}

func TestRegisterPlan_PanicsOnDuplicate(t *testing.T) {
	r := New()
	r.RegisterPlan("x", model.KindCell)
	assert.Panics(t, func() { r.RegisterPlan("x", model.KindIafCell) })
}

func TestAccepts(t *testing.T) {
	r := NewDefault()
	assert.True(t, r.Accepts(ResourceCell, model.KindIafCell))
	assert.False(t, r.Accepts(ResourceCell, model.KindIonChannel))
	assert.False(t, r.Accepts("unknown", model.KindCell))
}

func TestResources_Sorted(t *testing.T) {
	assert.Equal(t,
		[]Resource{ResourceCell, ResourceConcentrationModel, ResourceIonChannel},
		NewDefault().Resources())
}

func TestValidate(t *testing.T) {
	t.Run("unknown and duplicate partitions", func(t *testing.T) {
		r := New()
		r.RegisterPlan("bad", model.KindCell, "network", model.KindCell)

		err := r.Validate(testCtx(&bytes.Buffer{}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown partition 'network'")
		assert.Contains(t, err.Error(), "partition 'cell' listed more than once")
	})

	t.Run("empty plan warns", func(t *testing.T) {
		var buf bytes.Buffer
		r := New()
		r.RegisterPlan("empty")

		require.NoError(t, r.Validate(testCtx(&buf)))
		assert.Contains(t, buf.String(), "fallback resolver only")
	})
}
