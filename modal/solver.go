// Copyright 2026 The Cosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modal

import (
	"fmt"
	"math"

	"github.com/gmto-project/cosim/iov"
	"github.com/gmto-project/cosim/simerr"
)

// Solver aggregates per-mode solvers into the full discrete modal solver
// (spec §3/§4.2 -- C5). It owns its input/output vectors exclusively from
// build to teardown.
type Solver struct {
	U, Y   []float64
	Modes  []*Mode
	UTags  []iov.Tag
	YTags  []iov.Tag
	YSizes []int

	pool *workerPool
}

// NumWorkers returns the number of persistent goroutines backing this
// solver's per-mode parallel fold.
func (s *Solver) NumWorkers() int {
	if s.pool == nil {
		return 1
	}
	return s.pool.numWorkers
}

// Close releases the solver's worker pool. Safe to call on a zero-value or
// already-closed solver.
func (s *Solver) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Step zero-initializes a scratch output vector, folds every mode's
// contribution into it via the parallel partitioned fold (spec §4.2), and
// replaces s.Y with the result. Step never allocates per-mode goroutines;
// it reuses the solver's persistent pool.
func (s *Solver) Step() error {
	u := s.U // read-only snapshot for the duration of the fold
	y := s.pool.partitionFold(len(s.Modes), len(s.Y), func(start, end int) []float64 {
		acc := make([]float64, len(s.Y))
		for i := start; i < end; i++ {
			contrib, err := s.Modes[i].Solve(u)
			if err != nil {
				// mark with NaN so the caller can detect it after the
				// barrier; a worker cannot return an error across the
				// fold boundary without additional synchronization, and
				// NumericOverflow is diagnostic-only (spec §4.1).
				for j := range acc {
					acc[j] = math.NaN()
				}
				return acc
			}
			for j, v := range contrib {
				acc[j] += v
			}
		}
		return acc
	})
	for _, v := range y {
		if math.IsNaN(v) {
			return simerr.NumericOverflow("solver output")
		}
	}
	s.Y = y
	return nil
}

// Inputs concatenates values' payloads into s.U in declared UTags order.
// The caller may pass values in any order; Inputs routes each by tag. Extra
// or missing tags are an error (spec §4.2 "Operation inputs").
func (s *Solver) Inputs(values []iov.Value) error {
	byTag := make(map[iov.Tag]iov.Value, len(values))
	for _, v := range values {
		byTag[v.Tag] = v
	}
	if len(values) != len(s.UTags) {
		return simerr.InputsMissing(tagStringers(s.UTags)...)
	}
	u := make([]float64, 0, len(s.U))
	for _, tag := range s.UTags {
		v, ok := byTag[tag]
		if !ok || v.Kind != iov.KindVector {
			return simerr.InputsMissing(tag)
		}
		u = append(u, v.Vec...)
	}
	s.U = u
	return nil
}

// Outputs slices s.Y into YSizes-sized chunks in YTags declaration order,
// wrapping each chunk as a tagged value (spec §4.2 "Operation outputs").
func (s *Solver) Outputs() []iov.Value {
	out := make([]iov.Value, len(s.YTags))
	pos := 0
	for i, tag := range s.YTags {
		n := s.YSizes[i]
		vec := make([]float64, n)
		copy(vec, s.Y[pos:pos+n])
		out[i] = iov.Vector(tag, vec)
		pos += n
	}
	return out
}

// OutputsTags returns the declared output tag order (round-trip check for
// spec §8: "Building... then calling outputs_tags() returns the declared
// order").
func (s *Solver) OutputsTags() []iov.Tag {
	return append([]iov.Tag(nil), s.YTags...)
}

// InStepOut is Inputs(values); Step(); Outputs() -- the hot-path call used
// by the simulation driver (spec §4.2).
func (s *Solver) InStepOut(values []iov.Value) ([]iov.Value, error) {
	if err := s.Inputs(values); err != nil {
		return nil, err
	}
	if err := s.Step(); err != nil {
		return nil, err
	}
	return s.Outputs(), nil
}

func tagStringers(tags []iov.Tag) []fmt.Stringer {
	out := make([]fmt.Stringer, len(tags))
	for i, t := range tags {
		out[i] = t
	}
	return out
}
