// Copyright 2026 The Cosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctrl

import "github.com/gmto-project/cosim/iov"

func init() {
	Register("m1.cg", func() Controller { return newCG(nil) })
}

// cg stands in for the M1 center-of-gravity controller black box: a
// configurable static gain mapping the hardpoint load-cell reading to a CG
// force/moment vector fed back into the cell (spec §4.5, §4.6 step 6, §6
// reference width 42). Gain defaults to unity per channel.
type cg struct {
	in   []Port
	out  []Port
	gain []float64
}

func newCG(gain []float64) *cg {
	if gain == nil {
		gain = broadcast(1.0, 42)
	}
	return &cg{
		in:   []Port{{Tag: iov.M1HPLC, Width: 42}},
		out:  []Port{{Tag: iov.M1CGFM, Width: 42}},
		gain: gain,
	}
}

func (c *cg) Ports() (in, out []Port) { return c.in, c.out }

func (c *cg) Step(in []iov.Value) ([]iov.Value, error) {
	vecs, err := gather(c.in, in)
	if err != nil {
		return nil, err
	}
	lc := vecs[0]
	fm := make([]float64, len(lc))
	for i := range fm {
		fm[i] = c.gain[i] * lc[i]
	}
	return []iov.Value{iov.Vector(iov.M1CGFM, fm)}, nil
}
