package integration_tests

const hhCellHCL = `
cell "hhcell" {
  biophysical_properties "bioPhys1" {
    membrane_properties {
      channel_density "naChans" {
        ion_channel  = "naChan"
        cond_density = "120.0 mS_per_cm2"
        erev         = "50.0 mV"
        ion          = "na"
      }
      channel_density "kChans" {
        ion_channel  = "kChan"
        cond_density = "36 mS_per_cm2"
        erev         = "-77mV"
        ion          = "k"
      }
      spike_thresh {
        value = "-20mV"
      }
    }
    intracellular_properties {
      species "ca" {
        concentration_model   = "caPool"
        ion                   = "ca"
        initial_concentration = "5e-5 mM"
      }
    }
  }
}
`

const channelsHCL = `
ion_channel_hh "naChan" {
  species = "na"
}

ion_channel_hh "kChan" {
  species = "k"
}

fixed_factor_concentration_model "caPool" {
  ion = "ca"
}
`

const lemsHCL = `
component_type "myType" {
  extends = "baseCell"
}

component "inst" {
  type       = "myType"
  parameters = { tau = "10ms" }
}
`

const crossKindHCL = `
ion_channel "dup" {
  species = "k"
}

iaf_cell "dup" {
  thresh = "-55mV"
}
`
