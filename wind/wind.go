// Copyright 2026 The Cosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package wind implements the restartable, finite wind-load time-series
// producer that feeds external forces into the co-simulation loop.
package wind

import (
	"github.com/gmto-project/cosim/iov"
	"github.com/gmto-project/cosim/simerr"
)

// Source is a finite producer of tagged force vectors, one vector per tag
// per tick, built from a pre-recorded time series (spec §3).
type Source struct {
	samples map[iov.Tag][][]float64 // tag -> [tick][width]
	order   []iov.Tag                // declared channel order
	n       int                      // shared sample count
	tick    int                      // read cursor
	dt      float64                  // 1/sampling rate, seconds
}

// New builds a Source from samples (tag -> outer length = n samples, inner
// length = channel width) and dt (the time step between consecutive
// samples). All channels must share the same outer length n; New fails
// with simerr.EmptyWindLoads if n == 0.
func New(samples map[iov.Tag][][]float64, order []iov.Tag, dt float64) (*Source, error) {
	n := 0
	for _, tag := range order {
		rows, ok := samples[tag]
		if !ok {
			continue
		}
		if n == 0 {
			n = len(rows)
		}
	}
	if n == 0 {
		return nil, simerr.EmptyWindLoads()
	}
	return &Source{samples: samples, order: order, n: n, dt: dt}, nil
}

// Len returns the shared sample count.
func (s *Source) Len() int { return s.n }

// Dt returns the time step between consecutive samples.
func (s *Source) Dt() float64 { return s.dt }

// Reset rewinds the read cursor to the first sample, so one loaded
// wind-load file can back repeated simulation runs without re-reading it
// from disk.
func (s *Source) Reset() { s.tick = 0 }

// Next returns the tagged force vectors for the next tick, in declared
// channel order, and advances the cursor. ok is false once the source is
// exhausted; the driver terminates the loop successfully in that case
// (spec §4.6 step 1).
func (s *Source) Next() (values []iov.Value, ok bool) {
	if s.tick >= s.n {
		return nil, false
	}
	out := make([]iov.Value, 0, len(s.order))
	for _, tag := range s.order {
		rows := s.samples[tag]
		if s.tick < len(rows) {
			out = append(out, iov.Vector(tag, rows[s.tick]))
		}
	}
	s.tick++
	return out, true
}

// Match implements the DOS<->wind-loads name match of spec §4.4: it
// returns the per-tick sample for tag at the current cursor without
// advancing it.
func (s *Source) Match(tag iov.Tag) ([]float64, bool) {
	rows, ok := s.samples[tag]
	if !ok || s.tick >= len(rows) {
		return nil, false
	}
	return rows[s.tick], true
}
