// Copyright 2026 The Cosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iov

import "github.com/cpmech/gosl/chk"

// Set is an ordered collection of tagged values supporting lookup and
// in-place mutation by tag, used at feedback fold-in points such as adding
// the M1 CG force to the M1-local-force tag while subtracting it from the
// cell-local-force tag (spec §4.4, §4.6 step 3).
type Set struct {
	values []Value
	index  map[Tag]int
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{index: make(map[Tag]int)}
}

// Add appends v, replacing any existing entry for the same tag.
func (s *Set) Add(v Value) {
	if i, ok := s.index[v.Tag]; ok {
		s.values[i] = v
		return
	}
	s.index[v.Tag] = len(s.values)
	s.values = append(s.values, v)
}

// Get returns the Value stored for tag and whether it was present.
func (s *Set) Get(tag Tag) (Value, bool) {
	i, ok := s.index[tag]
	if !ok {
		return Value{}, false
	}
	return s.values[i], true
}

// All returns the values in insertion order. The returned slice must not be
// mutated by the caller.
func (s *Set) All() []Value {
	return s.values
}

// Fold adds src's vector into dst's (element-wise, in place), creating dst
// as a zero vector of the same width if absent, and optionally subtracts
// the same vector from a second destination tag. If src is absent, Fold
// does nothing at all (neither destination is created), matching the
// driver's "if available" guard (spec §4.6 step 3).
func (s *Set) Fold(addTo Tag, subFrom Tag, src Tag) {
	sv, ok := s.Get(src)
	if !ok || sv.Kind != KindVector {
		return
	}
	s.addVec(addTo, sv.Vec, 1)
	if subFrom != TagNone {
		s.addVec(subFrom, sv.Vec, -1)
	}
}

func (s *Set) addVec(tag Tag, v []float64, sign float64) {
	cur, ok := s.Get(tag)
	if !ok {
		cur = Vector(tag, make([]float64, len(v)))
	}
	if len(cur.Vec) != len(v) {
		chk.Panic("iov.Set.Fold: width mismatch for tag %v: have %d, want %d", tag, len(cur.Vec), len(v))
	}
	out := make([]float64, len(v))
	copy(out, cur.Vec)
	for i := range v {
		out[i] += sign * v[i]
	}
	s.Add(Vector(tag, out))
}
