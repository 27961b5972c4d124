// Copyright 2026 The Cosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modal

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/gmto-project/cosim/femmodel"
	"github.com/gmto-project/cosim/iov"
	"github.com/gmto-project/cosim/simerr"
)

// freqOverride is one (mode_index, new_freq_Hz) override entry.
type freqOverride struct {
	Index int
	HzNew float64
}

// Builder assembles a Solver from a FEM descriptor plus declared inputs,
// outputs, sampling rate and optional modal overrides (spec §4.3 -- C6).
// Setters are chained before a terminal Build(); required options are
// checked in Build(), not at setter time (spec §9), matching the teacher's
// option-struct-then-terminal-method idiom (inp.Data, msolid.Driver.Init).
type Builder struct {
	fem *femmodel.FEM

	sampling        float64
	samplingSet     bool
	u, y            []iov.Tag
	uSet, ySet      bool
	dampingOverride float64
	dampingSet      bool
	freqOverrides   []freqOverride
	maxEigenHz      float64
	maxEigenSet     bool
	numWorkers      int
	dumpPath        string
}

// NewBuilder returns a Builder over fem. fem is required and is the only
// constructor argument; every other option is set via the chained setters
// below.
func NewBuilder(fem *femmodel.FEM) *Builder {
	return &Builder{fem: fem, numWorkers: 0}
}

// Sampling sets 1/τ in Hz. Required.
func (b *Builder) Sampling(hz float64) *Builder {
	b.sampling, b.samplingSet = hz, true
	return b
}

// U sets the declared input tags, in order. Required.
func (b *Builder) U(tags ...iov.Tag) *Builder {
	b.u, b.uSet = tags, true
	return b
}

// Y sets the declared output tags, in order. Required.
func (b *Builder) Y(tags ...iov.Tag) *Builder {
	b.y, b.ySet = tags, true
	return b
}

// ProportionalDamping overrides ζ uniformly for all retained modes.
func (b *Builder) ProportionalDamping(zeta float64) *Builder {
	b.dampingOverride, b.dampingSet = zeta, true
	return b
}

// EigenFrequencies overrides individual eigenfrequencies by mode index
// (0-based, as in the original FEM's unreduced mode ordering).
func (b *Builder) EigenFrequencies(overrides ...[2]float64) *Builder {
	for _, o := range overrides {
		b.freqOverrides = append(b.freqOverrides, freqOverride{Index: int(o[0]), HzNew: o[1]})
	}
	return b
}

// MaxEigenFrequency truncates to modes with eigenfrequency <= fMaxHz.
func (b *Builder) MaxEigenFrequency(fMaxHz float64) *Builder {
	b.maxEigenHz, b.maxEigenSet = fMaxHz, true
	return b
}

// NumWorkers sets the number of persistent goroutines the assembled
// solver's per-mode fold uses. 0 (the default) selects GOMAXPROCS.
func (b *Builder) NumWorkers(n int) *Builder {
	b.numWorkers = n
	return b
}

// DumpEigenFrequencies writes the unreduced eigenfrequency vector to path
// for audit, right after FEM restriction and before truncation (spec §6,
// §8 of SPEC_FULL.md).
func (b *Builder) DumpEigenFrequencies(path string) *Builder {
	b.dumpPath = path
	return b
}

// Build assembles the Solver, validating required options and restricting
// the FEM to the declared ports (spec §4.3).
func (b *Builder) Build() (*Solver, error) {
	if b.fem == nil {
		return nil, simerr.MissingArgument("fem")
	}
	if !b.samplingSet {
		return nil, simerr.MissingArgument("sampling")
	}
	if !b.uSet {
		return nil, simerr.MissingArgument("u")
	}
	if !b.ySet {
		return nil, simerr.MissingArgument("y")
	}

	tau := 1.0 / b.sampling

	restricted, err := femmodel.Restrict(b.fem, b.u, b.y)
	if err != nil {
		return nil, err
	}

	if b.dumpPath != "" {
		dumpEigenFrequencies(b.dumpPath, b.fem.EigenFrequencies)
	}

	// step 4: mode retention (truncate first)
	nKept := b.fem.NModes
	if b.maxEigenSet {
		nKept = 0
		for _, f := range b.fem.EigenFrequencies {
			if f <= b.maxEigenHz {
				nKept++
			} else {
				break
			}
		}
	}

	// step 5: overrides (override second)
	freqs := append([]float64(nil), b.fem.EigenFrequencies[:nKept]...)
	damping := append([]float64(nil), b.fem.Damping[:nKept]...)
	for _, o := range b.freqOverrides {
		if o.Index >= 0 && o.Index < len(freqs) {
			freqs[o.Index] = o.HzNew
		}
	}
	if b.dampingSet {
		for i := range damping {
			damping[i] = b.dampingOverride
		}
	}

	// step 6: mode construction
	modes := make([]*Mode, nKept)
	for k := 0; k < nKept; k++ {
		omega := 2 * math.Pi * freqs[k]
		modes[k] = NewMode(tau, omega, damping[k], restricted.B[k], col(restricted.C, k))
	}

	s := &Solver{
		U:      make([]float64, totalWidth(restricted.Inputs)),
		Y:      make([]float64, totalWidth(restricted.Outputs)),
		Modes:  modes,
		UTags:  b.u,
		YTags:  b.y,
		YSizes: restricted.YSizes,
		pool:   newWorkerPool(b.numWorkers),
	}
	return s, nil
}

func col(c [][]float64, k int) []float64 {
	out := make([]float64, len(c))
	for i, row := range c {
		out[i] = row[k]
	}
	return out
}

func totalWidth(ports []femmodel.Port) int {
	n := 0
	for _, p := range ports {
		n += p.Width()
	}
	return n
}

func dumpEigenFrequencies(path string, freqs []float64) {
	var buf []byte
	for i, f := range freqs {
		buf = append(buf, []byte(io.Sf("%d\t%.10g\n", i, f))...)
	}
	io.WriteFileV(path, buf)
}
