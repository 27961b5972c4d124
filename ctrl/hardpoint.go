// Copyright 2026 The Cosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctrl

import "github.com/gmto-project/cosim/iov"

func init() {
	Register("m1.hardpoint", func() Controller { return newHardpoint(nil) })
}

// hardpoint stands in for the M1 hardpoint load-cell black box: a
// configurable static gain mapping (command - displacement) error per
// hardpoint channel to a load-cell reading (spec §4.5, §4.6 step 6, §6
// reference width 42). Gain defaults to unity per channel when none is
// supplied.
type hardpoint struct {
	in   []Port
	out  []Port
	gain []float64
}

func newHardpoint(gain []float64) *hardpoint {
	if gain == nil {
		gain = broadcast(1.0, 42)
	}
	return &hardpoint{
		in: []Port{
			{Tag: iov.M1HPCmd, Width: 42},
			{Tag: iov.OSSHardpointD, Width: 42},
		},
		out:  []Port{{Tag: iov.M1HPLC, Width: 42}},
		gain: gain,
	}
}

func (c *hardpoint) Ports() (in, out []Port) { return c.in, c.out }

func (c *hardpoint) Step(in []iov.Value) ([]iov.Value, error) {
	vecs, err := gather(c.in, in)
	if err != nil {
		return nil, err
	}
	cmd, disp := vecs[0], vecs[1]
	lc := make([]float64, len(disp))
	for i := range lc {
		lc[i] = c.gain[i] * (cmd[i] - disp[i])
	}
	return []iov.Value{iov.Vector(iov.M1HPLC, lc)}, nil
}
