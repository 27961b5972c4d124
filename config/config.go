// Copyright 2026 The Cosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package config implements the run-configuration data read from a JSON
// input file, adapted from the teacher's .sim-file idiom (inp/sim.go's
// Data struct plus its ReadSim loader: read-file, apply defaults, unmarshal,
// then post-process/validate).
package config

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gmto-project/cosim/iov"
)

// FreqOverride is one (mode_index, new_freq_Hz) entry, mirroring
// modal.Builder.EigenFrequencies's [2]float64 pair shape in a JSON-friendly
// form.
type FreqOverride struct {
	Index int     `json:"index"`
	HzNew float64 `json:"hz_new"`
}

// Data holds global run configuration for a co-simulation, the analogue of
// the teacher's inp.Data.
type Data struct {
	Desc    string `json:"desc"`    // description of the run
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/cosim
	Encoder string `json:"encoder"` // log encoding: "gob" or "json"

	FemPath       string `json:"fem_path"`        // path to the gob-encoded FEM descriptor
	WindLoadsPath string `json:"wind_loads_path"` // path to the gob-encoded wind-load time histories

	SamplingHz        float64        `json:"sampling_hz"`         // primary tick rate
	SecondaryPeriod   int            `json:"secondary_period"`    // N in "every Nth tick" (reference: 10)
	InputTags         []iov.Tag      `json:"input_tags"`          // declared FEM input ports, in order
	OutputTags        []iov.Tag      `json:"output_tags"`         // declared FEM output ports, in order
	DampingOverride   float64        `json:"damping_override"`    // uniform ζ override; ignored if DampingSet is false
	DampingSet        bool           `json:"damping_override_set"`
	FreqOverrides     []FreqOverride `json:"freq_overrides"`
	MaxEigenHz        float64        `json:"max_eigen_hz"` // truncation threshold; ignored if MaxEigenSet is false
	MaxEigenSet       bool           `json:"max_eigen_set"`
	NumWorkers        int            `json:"num_workers"` // 0 selects GOMAXPROCS
	DumpEigenFreqPath string         `json:"dump_eigen_freq_path"`

	MaxTicks int `json:"max_ticks"` // tick budget; read from the file but not passed to the driver, which always runs until the wind source is exhausted
}

// SetDefault fills zero-valued fields with the reference system's defaults
// (spec.md §6), matching the teacher's SetDefault idiom
// (inp.SolverData.SetDefault).
func (d *Data) SetDefault() {
	if d.Encoder == "" {
		d.Encoder = "gob"
	}
	if d.SecondaryPeriod == 0 {
		d.SecondaryPeriod = 10
	}
	if d.SamplingHz == 0 {
		d.SamplingHz = 1000
	}
}

// PostProcess resolves fields that depend on others after unmarshalling
// (output directory defaulting, encoder validation), matching the teacher's
// SolverData.PostProcess idiom.
func (d *Data) PostProcess(cfgPath string) {
	if d.DirOut == "" {
		dir := filepath.Dir(cfgPath)
		fnkey := io.FnKey(filepath.Base(cfgPath))
		d.DirOut = filepath.Join(dir, fnkey+"-out")
	}
	if d.Encoder != "gob" && d.Encoder != "json" {
		d.Encoder = "gob"
	}
}

// Read loads run configuration from a JSON file, applying defaults before
// unmarshalling and post-processing after, exactly mirroring
// inp.ReadSim's read-defaults-unmarshal-postprocess sequence.
func Read(path string) (*Data, error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("config: cannot read %q: %v", path, err)
	}
	var d Data
	d.SetDefault()
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, chk.Err("config: cannot unmarshal %q: %v", path, err)
	}
	d.PostProcess(path)
	return &d, nil
}
