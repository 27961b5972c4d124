// Copyright 2026 The Cosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package femmodel implements the immutable modal finite-element
// descriptor: eigenfrequencies, proportional damping, input-mode and
// mode-output participation matrices, and the named catalog of FEM input
// and output ports.
package femmodel

import (
	"github.com/cpmech/gosl/chk"
	"github.com/gmto-project/cosim/iov"
)

// Element is one declared group of 1-based indices within a Port: the
// on/off flag plus the column (for inputs) or row (for outputs) positions
// it occupies in the participation matrices.
type Element struct {
	On      bool  `json:"on"`
	Indices []int `json:"indices"` // 1-based
}

// Port is an optional named FEM input or output: a variant name from the
// closed iov.Tag catalog plus the elements occupying it.
type Port struct {
	Tag      iov.Tag   `json:"tag"`
	Elements []Element `json:"elements"`
}

// PortTag implements iov.Port.
func (p Port) PortTag() iov.Tag { return p.Tag }

// Indices returns the concatenated, 1-based column/row positions of all "on"
// elements of p, in declaration order.
func (p Port) Indices() []int {
	var out []int
	for _, e := range p.Elements {
		if e.On {
			out = append(out, e.Indices...)
		}
	}
	return out
}

// Width returns len(p.Indices()).
func (p Port) Width() int { return len(p.Indices()) }

// FEM is the immutable modal model consumed by the state-space builder.
type FEM struct {
	NModes              int         `json:"n_modes"`
	EigenFrequencies    []float64   `json:"eigen_frequencies"` // Hz
	Damping             []float64   `json:"damping"`
	InputsToModalForces [][]float64 `json:"inputs_to_modal_forces"` // n_modes x total_input_cols
	ModalDispToOutputs  [][]float64 `json:"modal_disp_to_outputs"`  // total_output_rows x n_modes
	Inputs              []Port      `json:"inputs"`
	Outputs             []Port      `json:"outputs"`
}

// Validate checks the shape invariants spec §3 requires of a loaded
// descriptor, panicking (via chk.Panic, matching the teacher's
// assembly-time-assertion idiom) on a structurally broken file -- this is
// distinct from the builder's returned simerr errors, which cover
// legitimate configuration mismatches, not a corrupt file.
func (f *FEM) Validate() {
	if f.NModes <= 0 {
		chk.Panic("femmodel: n_modes must be positive, got %d", f.NModes)
	}
	if len(f.EigenFrequencies) != f.NModes || len(f.Damping) != f.NModes {
		chk.Panic("femmodel: eigen_frequencies/damping length must equal n_modes=%d", f.NModes)
	}
	if len(f.InputsToModalForces) != f.NModes {
		chk.Panic("femmodel: inputs_to_modal_forces must have n_modes=%d rows", f.NModes)
	}
	for _, row := range f.ModalDispToOutputs {
		if len(row) != f.NModes {
			chk.Panic("femmodel: modal_disp_to_outputs rows must have n_modes=%d columns", f.NModes)
		}
	}
}

// InputColumns returns the total number of columns in InputsToModalForces.
func (f *FEM) InputColumns() int {
	if len(f.InputsToModalForces) == 0 {
		return 0
	}
	return len(f.InputsToModalForces[0])
}

// OutputRows returns the total number of rows in ModalDispToOutputs.
func (f *FEM) OutputRows() int {
	return len(f.ModalDispToOutputs)
}
