package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/nmltree/internal/config"
	"github.com/vk/nmltree/internal/hcl"
	"github.com/vk/nmltree/internal/model"
	"github.com/vk/nmltree/internal/nodeid"
	"github.com/vk/nmltree/internal/registry"
	"github.com/vk/nmltree/internal/resolver"
)

const testModel = `
cell "hhcell" {
  biophysical_properties "bioPhys1" {
    membrane_properties {
      channel_density "naChans" {
        ion_channel  = "naChan"
        cond_density = "120.0 mS_per_cm2"
        erev         = "50.0 mV"
        ion          = "na"
      }
      spike_thresh {
        value = "-20mV"
      }
    }
    intracellular_properties {
      resistivity {
        value = "0.03 kohm_cm"
      }
    }
  }
}

ion_channel_hh "naChan" {
  species = "na"
}

iaf_cell "iaf" {
  leak_reversal = "-50mV"
}
`

func writeModel(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.hcl"), []byte(content), 0o644))
	return dir
}

func newTestConfig(t *testing.T, dir string, requests ...string) *Config {
	t.Helper()
	var reqs []resolver.Request
	for _, raw := range requests {
		req, err := resolver.ParseRequest(raw)
		require.NoError(t, err)
		reqs = append(reqs, req)
	}
	cfg, err := NewConfig(Config{DocPaths: []string{dir}, Requests: reqs})
	require.NoError(t, err)
	return cfg
}

func TestNewConfig(t *testing.T) {
	t.Run("requires a document path", func(t *testing.T) {
		_, err := NewConfig(Config{})
		require.Error(t, err)
	})

	t.Run("defaults settings", func(t *testing.T) {
		cfg, err := NewConfig(Config{DocPaths: []string{"."}})
		require.NoError(t, err)
		assert.Equal(t, config.DefaultSettings(), cfg.Settings)
	})

	t.Run("rejects invalid settings", func(t *testing.T) {
		settings := config.DefaultSettings()
		settings.LookupMode = "fuzzy"
		_, err := NewConfig(Config{DocPaths: []string{"."}, Settings: settings})
		require.ErrorContains(t, err, "lookup_mode")
	})
}

func TestNewApp_RegistersCorePlans(t *testing.T) {
	cfg := newTestConfig(t, t.TempDir())
	testApp, _, _ := SetupAppTest(t, cfg, hcl.NewLoader())

	assert.Equal(t,
		[]registry.Resource{registry.ResourceCell, registry.ResourceConcentrationModel, registry.ResourceIonChannel},
		testApp.Registry().Resources(),
	)
}

type badPlans struct{}

func (badPlans) Register(r *registry.Registry) {
	r.RegisterPlan("broken", model.KindCell, model.Kind("notAPartition"))
}

func TestNewApp_PanicsOnInvalidPlans(t *testing.T) {
	cfg := newTestConfig(t, t.TempDir())
	assert.Panics(t, func() {
		SetupAppTest(t, cfg, hcl.NewLoader(), badPlans{})
	})
}

func TestRun_RendersTreeAndResolves(t *testing.T) {
	dir := writeModel(t, testModel)
	cfg := newTestConfig(t, dir, "naChan", "cell:iaf")
	testApp, out, logs := SetupAppTest(t, cfg, hcl.NewLoader())

	require.NoError(t, testApp.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "BiophysicalProperties[bioPhys1]")
	assert.Contains(t, output, "MembraneProperties[membraneProperties]")
	assert.Contains(t, output, "ChannelDensity[naChans]")
	assert.Contains(t, output, "IonChannel[naChan] (ref)")

	logOutput := logs.String()
	assert.Contains(t, logOutput, "Component resolved.")
	assert.Contains(t, logOutput, "kind=ionChannelHH")
	assert.Contains(t, logOutput, "kind=iafCell")
	assert.Contains(t, logOutput, "Run finished.")
}

func TestRun_UnresolvedRequestsAreJoined(t *testing.T) {
	dir := writeModel(t, testModel)
	cfg := newTestConfig(t, dir, "missing1", "naChan", "cell:missing2")
	testApp, out, logs := SetupAppTest(t, cfg, hcl.NewLoader())

	err := testApp.Run(context.Background())

	require.ErrorIs(t, err, resolver.ErrComponentNotFound)
	assert.ErrorContains(t, err, "missing1")
	assert.ErrorContains(t, err, "missing2")
	assert.Contains(t, out.String(), "BiophysicalProperties[bioPhys1]", "the tree is rendered before resolution")
	assert.Contains(t, logs.String(), "Component resolution failed.")
}

func TestRun_NoCellsWarns(t *testing.T) {
	dir := writeModel(t, `ion_channel "k" {}`)
	cfg := newTestConfig(t, dir)
	testApp, out, logs := SetupAppTest(t, cfg, hcl.NewLoader())

	require.NoError(t, testApp.Run(context.Background()))

	assert.Contains(t, logs.String(), "the model tree is empty")
	assert.NotContains(t, out.String(), "BiophysicalProperties")
}

func TestRun_OutputFormats(t *testing.T) {
	dir := writeModel(t, testModel)

	for _, format := range config.OutputFormats {
		t.Run(format, func(t *testing.T) {
			cfg := newTestConfig(t, dir)
			cfg.Settings.OutputFormat = format
			testApp, out, _ := SetupAppTest(t, cfg, hcl.NewLoader())

			require.NoError(t, testApp.Run(context.Background()))
			assert.Contains(t, out.String(), "bioPhys1")
		})
	}
}

func TestRun_LoadError(t *testing.T) {
	dir := writeModel(t, `cell "broken" {`)
	cfg := newTestConfig(t, dir)
	testApp, out, _ := SetupAppTest(t, cfg, hcl.NewLoader())

	err := testApp.Run(context.Background())

	require.ErrorContains(t, err, "failed to load documents")
	assert.Empty(t, out.String())
}

func TestRun_SelectSubtree(t *testing.T) {
	dir := writeModel(t, testModel)

	t.Run("renders only the selected node", func(t *testing.T) {
		cfg := newTestConfig(t, dir)
		cfg.Select = nodeid.New("bioPhys1", "intracellularProperties")
		testApp, out, _ := SetupAppTest(t, cfg, hcl.NewLoader())

		require.NoError(t, testApp.Run(context.Background()))
		assert.Contains(t, out.String(), "IntracellularProperties[intracellularProperties]")
		assert.Contains(t, out.String(), "resistivity_0")
		assert.NotContains(t, out.String(), "naChans")
	})

	t.Run("unknown root segment has no prefix", func(t *testing.T) {
		cfg := newTestConfig(t, dir)
		cfg.Select = nodeid.New("nope", "membraneProperties")
		testApp, _, _ := SetupAppTest(t, cfg, hcl.NewLoader())

		err := testApp.Run(context.Background())
		require.EqualError(t, err, `no node at path "nope.membraneProperties"`)
	})

	t.Run("unknown path fails", func(t *testing.T) {
		cfg := newTestConfig(t, dir)
		cfg.Select = nodeid.New("bioPhys1", "nope")
		testApp, out, _ := SetupAppTest(t, cfg, hcl.NewLoader())

		err := testApp.Run(context.Background())
		require.ErrorContains(t, err, `no node at path "bioPhys1.nope"`)
		assert.ErrorContains(t, err, `deepest existing path is "bioPhys1"`)
		assert.Empty(t, out.String())
	})
}
