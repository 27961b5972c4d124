// Copyright 2026 The Cosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package femmodel

import (
	"github.com/cpmech/gosl/la"
	"github.com/gmto-project/cosim/iov"
	"github.com/gmto-project/cosim/simerr"
)

// Restricted holds the result of restricting a FEM descriptor to the ports
// declared by a state-space build (spec §4.3 step 1): the retained input
// and output ports, in the declared tag order, and the projection matrices
// drawn from the full FEM at the positions those ports occupy.
type Restricted struct {
	Inputs  []Port // retained input ports, in uTags order
	Outputs []Port // retained output ports, in yTags order

	// B is the input projection matrix, n_modes x sum(widths of Inputs).
	B [][]float64
	// C is the output projection matrix, sum(widths of Outputs) x n_modes.
	C [][]float64
	// YSizes[i] is the width of Outputs[i]'s slice inside the output
	// vector.
	YSizes []int
}

// Restrict scans f.Inputs/f.Outputs for the ports named by uTags/yTags, in
// that declared order, and builds the projection matrices. It fails with
// simerr.FemInputs/FemOutputs if a declared tag has no matching port
// (spec §4.3 step 1).
func Restrict(f *FEM, uTags, yTags []iov.Tag) (*Restricted, error) {
	r := &Restricted{}

	for _, tag := range uTags {
		p, ok := iov.Match(f.Inputs, tag)
		if !ok {
			return nil, simerr.FemInputs(tag)
		}
		r.Inputs = append(r.Inputs, p)
	}
	r.B = la.MatAlloc(f.NModes, totalWidth(r.Inputs))
	for k := 0; k < f.NModes; k++ {
		col := 0
		for _, p := range r.Inputs {
			for _, idx := range p.Indices() {
				r.B[k][col] = f.InputsToModalForces[k][idx-1]
				col++
			}
		}
	}

	for _, tag := range yTags {
		p, ok := iov.Match(f.Outputs, tag)
		if !ok {
			return nil, simerr.FemOutputs(tag)
		}
		r.Outputs = append(r.Outputs, p)
		r.YSizes = append(r.YSizes, p.Width())
	}
	totalRows := totalWidth(r.Outputs)
	r.C = la.MatAlloc(totalRows, f.NModes)
	row := 0
	for _, p := range r.Outputs {
		for _, idx := range p.Indices() {
			copy(r.C[row], f.ModalDispToOutputs[idx-1])
			row++
		}
	}

	return r, nil
}

func totalWidth(ports []Port) int {
	n := 0
	for _, p := range ports {
		n += p.Width()
	}
	return n
}
