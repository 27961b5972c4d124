// Copyright 2026 The Cosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modal

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gmto-project/cosim/femmodel"
	"github.com/gmto-project/cosim/iov"
)

func syntheticFEM(nModes int) *femmodel.FEM {
	freqs := make([]float64, nModes)
	damp := make([]float64, nModes)
	B := make([][]float64, nModes)
	C := make([][]float64, 3)
	for i := range C {
		C[i] = make([]float64, nModes)
	}
	for k := 0; k < nModes; k++ {
		freqs[k] = float64(k+1) * 2.0 // ascending, 2,4,6,... Hz
		damp[k] = 0.02
		B[k] = []float64{float64(k + 1), -float64(k + 1)}
		for r := 0; r < 3; r++ {
			C[r][k] = 1.0 / float64(k+1)
		}
	}
	return &femmodel.FEM{
		NModes:              nModes,
		EigenFrequencies:    freqs,
		Damping:             damp,
		InputsToModalForces: B,
		ModalDispToOutputs:  C,
		Inputs: []femmodel.Port{
			{Tag: iov.OSSTopEnd6F, Elements: []femmodel.Element{{On: true, Indices: []int{1}}}},
			{Tag: iov.OSSTruss6F, Elements: []femmodel.Element{{On: true, Indices: []int{2}}}},
		},
		Outputs: []femmodel.Port{
			{Tag: iov.OSSAzEncoderAngle, Elements: []femmodel.Element{{On: true, Indices: []int{1, 2}}}},
			{Tag: iov.OSSHardpointD, Elements: []femmodel.Element{{On: true, Indices: []int{3}}}},
		},
	}
}

func buildSolver(tst *testing.T, nModes, numWorkers int) *Solver {
	fem := syntheticFEM(nModes)
	s, err := NewBuilder(fem).
		Sampling(1000).
		U(iov.OSSTopEnd6F, iov.OSSTruss6F).
		Y(iov.OSSAzEncoderAngle, iov.OSSHardpointD).
		NumWorkers(numWorkers).
		Build()
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}
	return s
}

func TestBuildRequiresOptions(tst *testing.T) {
	chk.PrintTitle("builder requires sampling/u/y")
	fem := syntheticFEM(3)
	if _, err := NewBuilder(fem).U(iov.OSSTopEnd6F).Y(iov.OSSAzEncoderAngle).Build(); err == nil {
		tst.Fatalf("expected MissingArgument for sampling")
	}
	if _, err := NewBuilder(fem).Sampling(1000).Y(iov.OSSAzEncoderAngle).Build(); err == nil {
		tst.Fatalf("expected MissingArgument for u")
	}
	if _, err := NewBuilder(fem).Sampling(1000).U(iov.OSSTopEnd6F).Build(); err == nil {
		tst.Fatalf("expected MissingArgument for y")
	}
}

func TestBuildTruncatesThenOverrides(tst *testing.T) {
	chk.PrintTitle("truncate by max eigenfrequency, then apply overrides")
	fem := syntheticFEM(5) // freqs 2,4,6,8,10 Hz
	s, err := NewBuilder(fem).
		Sampling(1000).
		U(iov.OSSTopEnd6F, iov.OSSTruss6F).
		Y(iov.OSSAzEncoderAngle, iov.OSSHardpointD).
		MaxEigenFrequency(6.5). // keeps modes 0,1,2 (2,4,6 Hz)
		ProportionalDamping(0.1).
		Build()
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}
	defer s.Close()
	if len(s.Modes) != 3 {
		tst.Fatalf("kept %d modes, want 3", len(s.Modes))
	}
	for _, m := range s.Modes {
		if m.Zeta != 0.1 {
			tst.Fatalf("damping override not applied uniformly: got %v", m.Zeta)
		}
	}
}

func TestSolverInputsOutputsRoundTrip(tst *testing.T) {
	chk.PrintTitle("Inputs/Outputs tag round trip (S4)")
	s := buildSolver(tst, 3, 1)
	defer s.Close()

	tags := s.OutputsTags()
	want := []iov.Tag{iov.OSSAzEncoderAngle, iov.OSSHardpointD}
	if len(tags) != len(want) {
		tst.Fatalf("got %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			tst.Fatalf("got %v, want %v", tags, want)
		}
	}

	// feed inputs out of declared order; Inputs must route by tag
	err := s.Inputs([]iov.Value{
		iov.Vector(iov.OSSTruss6F, []float64{1}),
		iov.Vector(iov.OSSTopEnd6F, []float64{2}),
	})
	if err != nil {
		tst.Fatalf("Inputs failed: %v", err)
	}
	if s.U[0] != 2 || s.U[1] != 1 {
		tst.Fatalf("Inputs did not route by declared tag order: %v", s.U)
	}
}

func TestSolverInputsFailsOnMissingTag(tst *testing.T) {
	chk.PrintTitle("Inputs fails on a missing declared tag (S6)")
	s := buildSolver(tst, 2, 1)
	defer s.Close()
	err := s.Inputs([]iov.Value{iov.Vector(iov.OSSTopEnd6F, []float64{1})})
	if err == nil {
		tst.Fatalf("expected an error for a missing input tag")
	}
}

func TestZeroInputZeroState(tst *testing.T) {
	chk.PrintTitle("zero input from zero state stays at zero")
	s := buildSolver(tst, 4, 2)
	defer s.Close()
	for i := 0; i < 20; i++ {
		out, err := s.InStepOut([]iov.Value{
			iov.Vector(iov.OSSTopEnd6F, []float64{0}),
			iov.Vector(iov.OSSTruss6F, []float64{0}),
		})
		if err != nil {
			tst.Fatalf("InStepOut failed: %v", err)
		}
		for _, v := range out {
			for _, x := range v.Vec {
				if math.Abs(x) > 1e-12 {
					tst.Fatalf("tick %d: expected ~0, got %v", i, x)
				}
			}
		}
	}
}

func TestParallelFoldDeterministicAcrossWorkerCounts(tst *testing.T) {
	chk.PrintTitle("per-mode fold is deterministic within tolerance across worker counts (S5)")
	nTicks := 15
	input := []iov.Value{
		iov.Vector(iov.OSSTopEnd6F, []float64{0.37}),
		iov.Vector(iov.OSSTruss6F, []float64{-0.91}),
	}

	run := func(numWorkers int) [][]iov.Value {
		s := buildSolver(tst, 6, numWorkers)
		defer s.Close()
		results := make([][]iov.Value, nTicks)
		for i := 0; i < nTicks; i++ {
			out, err := s.InStepOut(input)
			if err != nil {
				tst.Fatalf("InStepOut failed: %v", err)
			}
			results[i] = out
		}
		return results
	}

	serial := run(1)
	parallel := run(4)

	for tick := range serial {
		for j := range serial[tick] {
			a, b := serial[tick][j].Vec, parallel[tick][j].Vec
			for k := range a {
				diff := math.Abs(a[k] - b[k])
				tol := 1e-12 * (1 + math.Abs(a[k]))
				if diff > tol {
					tst.Fatalf("tick %d output %d[%d]: serial=%v parallel=%v diff=%v",
						tick, j, k, a[k], b[k], diff)
				}
			}
		}
	}
}

func TestDumpEigenFrequenciesWritesUnreducedVector(tst *testing.T) {
	chk.PrintTitle("dump-eigen-frequencies writes the unreduced vector")
	fem := syntheticFEM(5)
	path := filepath.Join(tst.TempDir(), "eigen.txt")
	s, err := NewBuilder(fem).
		Sampling(1000).
		U(iov.OSSTopEnd6F, iov.OSSTruss6F).
		Y(iov.OSSAzEncoderAngle, iov.OSSHardpointD).
		MaxEigenFrequency(4.5). // would keep only 2 modes
		DumpEigenFrequencies(path).
		Build()
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}
	defer s.Close()
	if len(s.Modes) != 2 {
		tst.Fatalf("kept %d modes, want 2", len(s.Modes))
	}

	buf, err := io.ReadFile(path)
	if err != nil {
		tst.Fatalf("cannot read dump file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(buf)), "\n")
	if len(lines) != 5 {
		tst.Fatalf("dump has %d lines, want 5 (unreduced, before truncation)", len(lines))
	}
}
