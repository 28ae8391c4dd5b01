package hcl

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/nmltree/internal/ctxlog"
	"github.com/vk/nmltree/internal/quantity"
)

func testCtx() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const hhCell = `
cell "hhcell" {
  notes = "A single compartment HH cell"

  biophysical_properties "bioPhys1" {
    membrane_properties {
      channel_density "naChans" {
        ion_channel   = "naChan"
        cond_density  = "120.0 mS_per_cm2"
        erev          = "50.0 mV"
        ion           = "na"
        segment_group = "all"
      }
      channel_density "kChans" {
        ion_channel  = "kChan"
        cond_density = { value = 36, unit = "mS_per_cm2" }
        erev         = "-77mV"
        ion          = "k"
      }
      spike_thresh {
        value = "-20mV"
      }
      specific_capacitance {
        value = "1.0 uF_per_cm2"
      }
      init_memb_potential {
        value = "-65mV"
      }
    }

    intracellular_properties {
      resistivity {
        value = "0.03 kohm_cm"
      }
      species "ca" {
        concentration_model       = "caPool"
        ion                       = "ca"
        initial_concentration     = "5e-5 mM"
        initial_ext_concentration = 2
      }
    }
  }
}
`

const channels = `
ion_channel "naChan" {
  type        = "ionChannelHH"
  species     = "na"
  conductance = "10pS"
}

ion_channel_hh "kChan" {
  species = "k"
}

iaf_cell "iaf" {
  leak_reversal    = "-50mV"
  thresh           = "-55mV"
  reset            = "-70mV"
  c                = "0.2nF"
  leak_conductance = "0.01uS"
}

adex_iaf_cell "adex" {
  c     = "281pF"
  g_l   = "30nS"
  tauw  = "144ms"
}

fixed_factor_concentration_model "caPool" {
  ion            = "ca"
  resting_conc   = "0mM"
  decay_constant = "20ms"
  rho            = "5.2e-6 mol_per_m_per_A_per_s"
}

decaying_pool_concentration_model "caShell" {
  ion             = "ca"
  shell_thickness = "1um"
}

component_type "myType" {
  extends     = "baseCell"
  description = "user type"
}

component "inst" {
  type       = "myType"
  parameters = { tau = "10ms", gain = 2 }
}
`

func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()
	cellPath := writeFile(t, dir, "cells/hh.hcl", hhCell)
	chanPath := writeFile(t, dir, "channels.hcl", channels)
	writeFile(t, dir, "README.md", "not a document")

	doc, err := NewLoader().Load(testCtx(), dir)
	require.NoError(t, err)

	require.Len(t, doc.Cells, 1)
	cell := doc.Cells[0]
	assert.Equal(t, "hhcell", cell.ID)
	assert.Equal(t, "A single compartment HH cell", cell.Notes)
	assert.Equal(t, cellPath, cell.Source().FilePath)

	bp := cell.BiophysicalProperties
	require.NotNil(t, bp)
	assert.Equal(t, "bioPhys1", bp.ID)

	mp := bp.MembraneProperties
	require.NotNil(t, mp)
	require.Len(t, mp.ChannelDensities, 2)
	na := mp.ChannelDensities[0]
	assert.Equal(t, "naChans", na.ID)
	assert.Equal(t, "naChan", na.IonChannel)
	assert.Equal(t, quantity.New(120, "mS_per_cm2"), na.CondDensity)
	assert.Equal(t, quantity.New(50, "mV"), na.Erev)
	assert.Equal(t, "all", na.SegmentGroup)
	assert.Equal(t, quantity.New(36, "mS_per_cm2"), mp.ChannelDensities[1].CondDensity)
	assert.Equal(t, quantity.New(-77, "mV"), mp.ChannelDensities[1].Erev)
	require.Len(t, mp.SpikeThresholds, 1)
	assert.Equal(t, quantity.New(-20, "mV"), mp.SpikeThresholds[0].Value)
	assert.Equal(t, quantity.New(1, "uF_per_cm2"), mp.SpecificCapacitances[0].Value)
	assert.Equal(t, quantity.New(-65, "mV"), mp.InitMembPotentials[0].Value)

	ip := bp.IntracellularProperties
	require.NotNil(t, ip)
	assert.Equal(t, quantity.New(0.03, "kohm_cm"), ip.Resistivities[0].Value)
	require.Len(t, ip.Species, 1)
	assert.Equal(t, "caPool", ip.Species[0].ConcentrationModel)
	assert.Equal(t, quantity.New(5e-5, "mM"), ip.Species[0].InitialConcentration)
	assert.Equal(t, quantity.New(2, ""), ip.Species[0].InitialExtConcentration)

	require.Len(t, doc.IonChannels, 1)
	assert.Equal(t, "ionChannelHH", doc.IonChannels[0].Type)
	assert.Equal(t, quantity.New(10, "pS"), doc.IonChannels[0].Conductance)
	assert.Equal(t, chanPath, doc.IonChannels[0].Source().FilePath)

	require.Len(t, doc.IonChannelHHs, 1)
	assert.True(t, doc.IonChannelHHs[0].Conductance.IsZero())

	require.Len(t, doc.IafCells, 1)
	assert.Equal(t, quantity.New(0.2, "nF"), doc.IafCells[0].C)
	require.Len(t, doc.AdExIaFCells, 1)
	assert.Equal(t, quantity.New(144, "ms"), doc.AdExIaFCells[0].Tauw)
	assert.True(t, doc.AdExIaFCells[0].Refract.IsZero())

	require.Len(t, doc.FixedFactorConcentrationModels, 1)
	assert.Equal(t, quantity.New(20, "ms"), doc.FixedFactorConcentrationModels[0].DecayConstant)
	require.Len(t, doc.DecayingPoolConcentrationModels, 1)
	assert.Equal(t, quantity.New(1, "um"), doc.DecayingPoolConcentrationModels[0].ShellThickness)

	require.Len(t, doc.ComponentTypes, 1)
	assert.Equal(t, "baseCell", doc.ComponentTypes[0].Extends)
	require.Len(t, doc.Components, 1)
	assert.Equal(t, map[string]quantity.Quantity{
		"tau":  quantity.New(10, "ms"),
		"gain": quantity.New(2, ""),
	}, doc.Components[0].Parameters)
}

func TestLoad_IncludePatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cells/hh.hcl", hhCell)
	writeFile(t, dir, "channels.hcl", channels)

	doc, err := NewLoader("cells/**/*.hcl").Load(testCtx(), dir)
	require.NoError(t, err)
	assert.Len(t, doc.Cells, 1)
	assert.Empty(t, doc.IonChannels)
}

func TestLoad_MultipleFilesKeepOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.hcl", `cell "first" {}`)
	b := writeFile(t, dir, "b.hcl", `cell "second" {}`)

	doc, err := NewLoader().Load(testCtx(), b, a)
	require.NoError(t, err)
	require.Len(t, doc.Cells, 2)
	assert.Equal(t, "second", doc.Cells[0].ID)
	assert.Equal(t, "first", doc.Cells[1].ID)
	assert.Nil(t, doc.Cells[0].BiophysicalProperties)
}

func TestLoad_EmptyDirectory(t *testing.T) {
	doc, err := NewLoader().Load(testCtx(), t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, doc.Len())
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "syntax error",
			content: `cell "x" {`,
			wantErr: "failed to parse HCL file",
		},
		{
			name:    "unknown block",
			content: `network "net" {}`,
			wantErr: "failed to decode HCL file",
		},
		{
			name:    "missing required attribute",
			content: `component "inst" {}`,
			wantErr: "failed to decode HCL file",
		},
		{
			name: "bad quantity",
			content: `
cell "c" {
  biophysical_properties "bp" {
    membrane_properties {
      spike_thresh {
        value = "fast"
      }
    }
  }
}`,
			wantErr: "Invalid quantity",
		},
		{
			name: "bad parameter",
			content: `component "inst" {
  type       = "myType"
  parameters = { tau = "10ms", gain = "high" }
}`,
			wantErr: `Parameter "gain"`,
		},
		{
			name: "parameters not a map",
			content: `component "inst" {
  type       = "myType"
  parameters = "tau"
}`,
			wantErr: "Invalid parameters",
		},
		{
			name:    "quantity of wrong type",
			content: `ion_channel "x" { conductance = true }`,
			wantErr: "Invalid quantity",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "doc.hcl", tc.content)
			_, err := NewLoader().Load(testCtx(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoad_MissingPath(t *testing.T) {
	_, err := NewLoader().Load(testCtx(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
