// Copyright 2026 The Cosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctrl

import "github.com/gmto-project/cosim/iov"

func init() {
	Register("mount.drives", func() Controller { return newMountDrives() })
}

// mountDrives stands in for the code-generated drive-torque black box: a
// first-order lag from (command - encoder) error to torque, one lag state
// per drive axis, broadcast across that axis's torque channels (spec §4.5,
// §6 reference widths -- Az=12, El=4, Rot=4).
type mountDrives struct {
	in  []Port
	out []Port

	alpha float64 // lag coefficient, 0 < alpha <= 1
	state [3]float64
}

func newMountDrives() *mountDrives {
	return &mountDrives{
		in: []Port{
			{Tag: iov.MountCmd, Width: 3},
			{Tag: iov.OSSAzEncoderAngle, Width: 6},
			{Tag: iov.OSSElEncoderAngle, Width: 4},
			{Tag: iov.OSSRotEncoderAngle, Width: 4},
		},
		out: []Port{
			{Tag: iov.OSSAzDriveTorque, Width: 12},
			{Tag: iov.OSSElDriveTorque, Width: 4},
			{Tag: iov.OSSRotDriveTorque, Width: 4},
		},
		alpha: 0.2,
	}
}

func (c *mountDrives) Ports() (in, out []Port) { return c.in, c.out }

func (c *mountDrives) Step(in []iov.Value) ([]iov.Value, error) {
	vecs, err := gather(c.in, in)
	if err != nil {
		return nil, err
	}
	cmd, az, el, rot := vecs[0], vecs[1], vecs[2], vecs[3]

	errAxis := [3]float64{cmd[0] - mean(az), cmd[1] - mean(el), cmd[2] - mean(rot)}
	for i := range c.state {
		c.state[i] += c.alpha * (errAxis[i] - c.state[i])
	}

	azTorque := broadcast(c.state[0], 12)
	elTorque := broadcast(c.state[1], 4)
	rotTorque := broadcast(c.state[2], 4)

	return []iov.Value{
		iov.Vector(iov.OSSAzDriveTorque, azTorque),
		iov.Vector(iov.OSSElDriveTorque, elTorque),
		iov.Vector(iov.OSSRotDriveTorque, rotTorque),
	}, nil
}

func broadcast(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
