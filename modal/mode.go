// Copyright 2026 The Cosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package modal implements the decoupled second-order modal state-space
// solver: one discrete-time mode per retained eigenfrequency (C4), their
// parallel-fold aggregation into a full discrete modal solver (C5), and
// the builder that assembles a solver from a FEM descriptor (C6).
package modal

import (
	"math"

	"github.com/gmto-project/cosim/simerr"
)

// Mode is a single retained eigenmode's discrete-time realization:
// Aₐ (2x2 state transition), Bₐ (input weight across all retained input
// columns) and C (output weight across all retained output rows), plus its
// runtime 2-state (modal displacement, modal velocity).
//
// Continuous dynamics: q̈ + 2ζωq̇ + ω²q = b·u, y = c·q. Discretized by the exact
// matrix exponential at sampling period τ (spec §4.1) -- the closed form
// below, not a general expm routine, since the 2x2 companion matrix of a
// damped oscillator has one.
type Mode struct {
	Omega float64 // rad/s
	Zeta  float64

	Ad [2][2]float64 // discrete state transition
	Bd [2]float64    // discrete base input weight; Solve scales it by B·u
	B  []float64     // input row, length = #retained input columns
	C  []float64     // output column, length = #retained output rows

	X [2]float64 // runtime state: (q, q̇)
}

// NewMode builds the discrete-time realization for one mode.
//
//	tau   -- sampling period, seconds
//	omega -- natural frequency, rad/s
//	zeta  -- damping ratio
//	b     -- this mode's row of the input projection matrix
//	c     -- this mode's column of the output projection matrix
func NewMode(tau, omega, zeta float64, b, c []float64) *Mode {
	ad, bdBase := discretize(tau, omega, zeta)
	m := &Mode{
		Omega: omega,
		Zeta:  zeta,
		Ad:    ad,
		Bd:    bdBase,
		B:     append([]float64(nil), b...),
		C:     append([]float64(nil), c...),
	}
	return m
}

// discretize computes the exact zero-order-hold discretization of
// A = [[0,1],[-ω²,-2ζω]] at period τ, returning Aₐ and the base input
// weight Bₐ = A⁻¹(Aₐ-I)·[0;1] (spec §4.1).
func discretize(tau, omega, zeta float64) (ad [2][2]float64, bd [2]float64) {
	sigma := zeta * omega
	disc := 1 - zeta*zeta
	var wd float64
	if disc > 0 {
		wd = omega * math.Sqrt(disc)
	}
	decay := math.Exp(-sigma * tau)

	var cosTerm, sinOverWd, sinTerm float64
	if wd*tau < 1e-8 {
		// critically-damped limit: sin(x)/x -> 1, cos(x) -> 1
		cosTerm = 1
		sinOverWd = tau
		sinTerm = wd * tau // -> 0, kept for symmetry, unused directly
		_ = sinTerm
	} else {
		cosTerm = math.Cos(wd * tau)
		sinOverWd = math.Sin(wd*tau) / wd
	}

	ad[0][0] = decay * (cosTerm + sigma*sinOverWd)
	ad[0][1] = decay * sinOverWd
	ad[1][0] = -decay * omega * omega * sinOverWd
	ad[1][1] = decay * (cosTerm - sigma*sinOverWd)

	// Bd = A^-1 (Ad - I) [0;1]; A^-1 = [[-2ζ/ω, -1/ω²],[1, 0]] for ω>0.
	if omega == 0 {
		// rigid-body (zero-frequency) mode: A is singular, discretize
		// directly by integrating the double-integrator q̈ = b·u.
		ad[0][0], ad[0][1] = 1, tau
		ad[1][0], ad[1][1] = 0, 1
		bd[0] = tau * tau / 2
		bd[1] = tau
		return
	}
	col0 := ad[0][1]
	col1 := ad[1][1] - 1
	bd[0] = -2*zeta/omega*col0 - col1/(omega*omega)
	bd[1] = col0
	return
}

// Solve advances this mode by one tick given the full concatenated input
// vector u (length = #FEM input columns) and returns its contribution to
// the full output vector (length = #FEM output rows). The output is
// computed from the state at the start of the tick (y = Cx), then the
// state is advanced (x' = Ax + Bu) -- the usual causal discrete
// state-space order. Returns simerr.NumericOverflow if the resulting state
// is non-finite.
func (m *Mode) Solve(u []float64) ([]float64, error) {
	var s float64
	for i, bi := range m.B {
		s += bi * u[i]
	}

	y := make([]float64, len(m.C))
	q := m.X[0]
	for i, ci := range m.C {
		y[i] = ci * q
	}

	x0 := m.Ad[0][0]*m.X[0] + m.Ad[0][1]*m.X[1] + m.Bd[0]*s
	x1 := m.Ad[1][0]*m.X[0] + m.Ad[1][1]*m.X[1] + m.Bd[1]*s
	if math.IsNaN(x0) || math.IsInf(x0, 0) || math.IsNaN(x1) || math.IsInf(x1, 0) {
		return nil, simerr.NumericOverflow("mode state")
	}
	m.X[0], m.X[1] = x0, x1
	return y, nil
}
