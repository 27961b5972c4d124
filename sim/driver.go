// Copyright 2026 The Cosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"github.com/gmto-project/cosim/ctrl"
	"github.com/gmto-project/cosim/iov"
	"github.com/gmto-project/cosim/logger"
	"github.com/gmto-project/cosim/modal"
	"github.com/gmto-project/cosim/wind"
)

// Driver composes the wind-load source, the modal solver and the subsystem
// controllers into the per-tick co-simulation loop (spec.md §4.6 -- C9),
// modeled on the teacher's construct-then-Run driver shape
// (msolid/driver.go's Driver.Run).
type Driver struct {
	Wind   *wind.Source
	Solver *modal.Solver
	Log    *logger.Log

	MountControl ctrl.Controller
	MountDrives  ctrl.Controller
	Hardpoint    ctrl.Controller
	CG           ctrl.Controller

	// Secondary mirrors the M1 hardpoint/CG rate-division rule (spec.md §4.6
	// step 6: reference N=10).
	Secondary Schedule

	tick         int
	torqueAz     []float64
	torqueEl     []float64
	torqueRot    []float64
	cgForce      []float64
	haveCGForce  bool
}

// NewDriver wires the given components into a Driver ready to Run. torque
// output widths match the mount drives' declared outputs (Az=12, El=4,
// Rot=4, spec.md §6).
func NewDriver(w *wind.Source, solver *modal.Solver, log *logger.Log, mountControl, mountDrives, hardpoint, cg ctrl.Controller, secondaryPeriod int) *Driver {
	return &Driver{
		Wind:         w,
		Solver:       solver,
		Log:          log,
		MountControl: mountControl,
		MountDrives:  mountDrives,
		Hardpoint:    hardpoint,
		CG:           cg,
		Secondary:    Schedule{Period: secondaryPeriod},
		torqueAz:     make([]float64, 12),
		torqueEl:     make([]float64, 4),
		torqueRot:    make([]float64, 4),
	}
}

// Run executes the per-tick schedule until the wind source is exhausted
// (spec.md §4.6), logging declared solver outputs at every tick.
func (d *Driver) Run() error {
	for {
		ok, err := d.step()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// step executes one tick of the schedule, returning ok=false when the wind
// source is exhausted (clean termination, spec.md §4.6 step 1).
func (d *Driver) step() (ok bool, err error) {
	// 1. pull next wind-load tagged vector set
	windValues, ok := d.Wind.Next()
	if !ok {
		return false, nil
	}

	forces := iov.NewSet()
	for _, v := range windValues {
		forces.Add(v)
	}

	// 2. append last-tick mount-drive torque (zero-torque placeholder on
	// tick 0, satisfied by the zero-initialized slices above).
	forces.Add(iov.Vector(iov.OSSAzDriveTorque, d.torqueAz))
	forces.Add(iov.Vector(iov.OSSElDriveTorque, d.torqueEl))
	forces.Add(iov.Vector(iov.OSSRotDriveTorque, d.torqueRot))

	// 3. fold last-tick M1 CG force into OSSM1Lcl6F / out of OSSCellLcl6F
	if d.haveCGForce {
		forces.Add(iov.Vector(iov.M1CGFM, d.cgForce))
		forces.Fold(iov.OSSM1Lcl6F, iov.OSSCellLcl6F, iov.M1CGFM)
	}

	// 4. execute the FEM step. Only the solver's declared input tags are
	// passed on -- forces may carry extra bookkeeping entries (e.g. M1CGFM,
	// kept only so Fold could find its source) that Solver.Inputs would
	// otherwise reject as unexpected.
	inputs := make([]iov.Value, 0, len(d.Solver.UTags))
	for _, tag := range d.Solver.UTags {
		if v, ok := forces.Get(tag); ok {
			inputs = append(inputs, v)
		}
	}
	outputs, err := d.Solver.InStepOut(inputs)
	if err != nil {
		return false, err
	}
	outSet := iov.NewSet()
	for _, v := range outputs {
		outSet.Add(v)
	}

	// 5. advance mount control, then mount drives; store torque for next tick
	mountEncoders := selectValues(outSet, iov.OSSAzEncoderAngle, iov.OSSElEncoderAngle, iov.OSSRotEncoderAngle)
	cmd, err := d.MountControl.Step(mountEncoders)
	if err != nil {
		return false, err
	}
	driveIn := append(append([]iov.Value{}, cmd...), mountEncoders...)
	torques, err := d.MountDrives.Step(driveIn)
	if err != nil {
		return false, err
	}
	for _, v := range torques {
		switch v.Tag {
		case iov.OSSAzDriveTorque:
			d.torqueAz = v.Vec
		case iov.OSSElDriveTorque:
			d.torqueEl = v.Vec
		case iov.OSSRotDriveTorque:
			d.torqueRot = v.Vec
		}
	}

	// 6. at every Nth tick, advance the hardpoint load cells then the CG
	// controller.
	if d.Secondary.Due(d.tick) {
		hpCmd := iov.Vector(iov.M1HPCmd, make([]float64, 42))
		hpDisp := selectValues(outSet, iov.OSSHardpointD)
		lc, err := d.Hardpoint.Step(append([]iov.Value{hpCmd}, hpDisp...))
		if err != nil {
			return false, err
		}
		cg, err := d.CG.Step(lc)
		if err != nil {
			return false, err
		}
		for _, v := range cg {
			if v.Tag == iov.M1CGFM {
				d.cgForce = v.Vec
				d.haveCGForce = true
			}
		}
	}

	// 7. log declared outputs
	d.Log.Record(d.tick, outputs)

	d.tick++
	return true, nil
}

func selectValues(set *iov.Set, tags ...iov.Tag) []iov.Value {
	out := make([]iov.Value, 0, len(tags))
	for _, t := range tags {
		if v, ok := set.Get(t); ok {
			out = append(out, v)
		}
	}
	return out
}
