// Copyright 2026 The Cosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package logger implements tick-indexed recording of tagged simulation
// outputs, adapted from the teacher's results-accumulator idiom (out/out.go
// pairs a map keyed by label with an explicit order slice -- Results plus
// TimeInds/Times -- so iteration order survives even though map iteration
// order in Go does not).
package logger

import (
	"github.com/cpmech/gosl/chk"
	"github.com/gmto-project/cosim/iov"
)

// Log records, for a subset of simulation ticks, the full set of tagged
// output values produced that tick.
type Log struct {
	Rate    float64 // primary ticks per second
	entries map[int][]iov.Value
	order   []int // ticks seen, in insertion order
}

// New returns an empty Log sampling at rate primary ticks per second.
func New(rate float64) *Log {
	if rate <= 0 {
		chk.Panic("logger: rate must be positive, got %v", rate)
	}
	return &Log{
		Rate:    rate,
		entries: make(map[int][]iov.Value),
	}
}

// Record appends values under tick. Calling Record twice for the same tick
// overwrites the previous entry without duplicating it in the order slice.
func (l *Log) Record(tick int, values []iov.Value) {
	if _, seen := l.entries[tick]; !seen {
		l.order = append(l.order, tick)
	}
	cp := append([]iov.Value(nil), values...)
	l.entries[tick] = cp
}

// Ticks returns every recorded tick, in the order first recorded.
func (l *Log) Ticks() []int {
	return append([]int(nil), l.order...)
}

// At returns the tagged values recorded for tick, if any.
func (l *Log) At(tick int) ([]iov.Value, bool) {
	v, ok := l.entries[tick]
	return v, ok
}

// Series collects, across every recorded tick in order, the vector recorded
// under tag -- a single-channel time series suitable for plotting or export.
func (l *Log) Series(tag iov.Tag) [][]float64 {
	var out [][]float64
	for _, tick := range l.order {
		for _, v := range l.entries[tick] {
			if v.Tag == tag {
				out = append(out, v.Vec)
				break
			}
		}
	}
	return out
}

// Last returns the most recently recorded value under tag, a telltale-style
// read-only probe for driver-loop debugging and test assertions without
// re-walking the whole log.
func (l *Log) Last(tag iov.Tag) ([]float64, bool) {
	for i := len(l.order) - 1; i >= 0; i-- {
		for _, v := range l.entries[l.order[i]] {
			if v.Tag == tag {
				return v.Vec, true
			}
		}
	}
	return nil, false
}

// TimeSeconds converts a tick index to elapsed simulation time.
func (l *Log) TimeSeconds(tick int) float64 {
	return float64(tick) / l.Rate
}
