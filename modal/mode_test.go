// Copyright 2026 The Cosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modal

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/ode"
)

// integrateNumeric advances the continuous damped oscillator
// q'' + 2ζωq' + ω²q = s (s constant over [0,τ]) from x0=(q0,q̇0) to x(τ),
// independently of Mode's closed-form discretization, mirroring the
// teacher's Update/ode.Solver cross-check idiom
// (mdl/retention/model.go's Update).
func integrateNumeric(tau, omega, zeta, s float64, x0 [2]float64) [2]float64 {
	fcn := func(f []float64, dx, x float64, y []float64) error {
		f[0] = y[1]
		f[1] = s - omega*omega*y[0] - 2*zeta*omega*y[1]
		return nil
	}
	jac := func(dfdy *la.Triplet, dx, x float64, y []float64) error {
		if dfdy.Max() == 0 {
			dfdy.Init(2, 4, 4)
		}
		dfdy.Start()
		dfdy.Put(0, 1, 1)
		dfdy.Put(1, 0, -omega*omega)
		dfdy.Put(1, 1, -2*zeta*omega)
		return nil
	}
	var solver ode.Solver
	solver.Init("Radau5", 2, fcn, jac, nil, nil)
	solver.SetTol(1e-12, 1e-10)
	solver.Distr = false
	y := []float64{x0[0], x0[1]}
	solver.Solve(y, 0, tau, tau, false)
	return [2]float64{y[0], y[1]}
}

func TestModeClosedFormMatchesNumericIntegration(tst *testing.T) {
	chk.PrintTitle("mode closed form vs numerical integration")

	cases := []struct {
		omega, zeta float64
	}{
		{2 * math.Pi * 1.0, 0.02}, // lightly damped
		{2 * math.Pi * 5.0, 0.5},  // moderately damped
		{2 * math.Pi * 0.3, 1.0},  // critically damped
	}
	tau := 1.0 / 1000.0
	x0 := [2]float64{0.37, -1.21}
	s := 0.84

	for _, c := range cases {
		m := NewMode(tau, c.omega, c.zeta, []float64{1}, []float64{1})
		m.X = x0

		ana := [2]float64{
			m.Ad[0][0]*x0[0] + m.Ad[0][1]*x0[1] + m.Bd[0]*s,
			m.Ad[1][0]*x0[0] + m.Ad[1][1]*x0[1] + m.Bd[1]*s,
		}
		num := integrateNumeric(tau, c.omega, c.zeta, s, x0)

		chk.Scalar(tst, "q", 1e-7, ana[0], num[0])
		chk.Scalar(tst, "qdot", 1e-6, ana[1], num[1])
	}
}

func TestModeRigidBodyMatchesDoubleIntegrator(tst *testing.T) {
	chk.PrintTitle("rigid-body mode vs direct double-integrator")

	tau := 0.01
	x0 := [2]float64{0.5, 2.0}
	s := 3.0

	m := NewMode(tau, 0, 0, []float64{1}, []float64{1})
	m.X = x0

	q := x0[0] + x0[1]*tau + 0.5*s*tau*tau
	qdot := x0[1] + s*tau

	ana := [2]float64{
		m.Ad[0][0]*x0[0] + m.Ad[0][1]*x0[1] + m.Bd[0]*s,
		m.Ad[1][0]*x0[0] + m.Ad[1][1]*x0[1] + m.Bd[1]*s,
	}
	chk.Scalar(tst, "q", 1e-12, ana[0], q)
	chk.Scalar(tst, "qdot", 1e-12, ana[1], qdot)
}

func TestModeSolveZeroInputHoldsEquilibrium(tst *testing.T) {
	chk.PrintTitle("zero input, zero initial state stays at zero")

	m := NewMode(1e-3, 2*math.Pi*2.0, 0.05, []float64{1, -1}, []float64{1})
	for i := 0; i < 50; i++ {
		y, err := m.Solve([]float64{0, 0})
		if err != nil {
			tst.Fatalf("Solve failed: %v", err)
		}
		for _, v := range y {
			if math.Abs(v) > 1e-12 {
				tst.Fatalf("tick %d: expected zero output, got %v", i, v)
			}
		}
	}
}
