// Copyright 2026 The Cosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctrl

import "github.com/gmto-project/cosim/iov"

func init() {
	Register("mount.control", func() Controller { return newMountControl() })
}

// mountControl stands in for the code-generated mount-control black box: a
// unit-gain proportional law mapping encoder angle error against a fixed
// setpoint of zero into a mount command (spec §4.5, §6 reference widths).
// It carries no state beyond the previous command, matching the teacher's
// habit of keeping model structs minimal when the physics lives elsewhere
// (mdl/retention/model.go's thin wrappers around a handful of parameters).
type mountControl struct {
	in  []Port
	out []Port
	cmd []float64
}

func newMountControl() *mountControl {
	return &mountControl{
		in: []Port{
			{Tag: iov.OSSAzEncoderAngle, Width: 6},
			{Tag: iov.OSSElEncoderAngle, Width: 4},
			{Tag: iov.OSSRotEncoderAngle, Width: 4},
		},
		out: []Port{{Tag: iov.MountCmd, Width: 3}},
		cmd: make([]float64, 3),
	}
}

func (c *mountControl) Ports() (in, out []Port) { return c.in, c.out }

// Step sets each of the three command axes (Az, El, Rot), in that order, to
// the negated mean angle of the matching encoder channel (unit gain on the
// error against the zero setpoint).
func (c *mountControl) Step(in []iov.Value) ([]iov.Value, error) {
	vecs, err := gather(c.in, in)
	if err != nil {
		return nil, err
	}
	for i, v := range vecs {
		c.cmd[i] = -mean(v)
	}
	out := append([]float64(nil), c.cmd...)
	return []iov.Value{iov.Vector(iov.MountCmd, out)}, nil
}

func mean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}
