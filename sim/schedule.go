// Copyright 2026 The Cosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sim implements the simulation driver: the per-tick schedule that
// pulls wind loads, folds them through the modal solver, advances the
// subsystem controllers at their respective rates, and logs declared
// outputs.
package sim

// Schedule labels a component with its period in primary ticks (spec.md §9:
// "a small scheduler that labels each component with its period in primary
// ticks"). A component with Period == 1 runs every tick; Period == 10 runs
// at a tenth of the primary rate.
type Schedule struct {
	Period int
}

// Due reports whether the component is due to run on tick.
func (s Schedule) Due(tick int) bool {
	if s.Period <= 1 {
		return true
	}
	return tick%s.Period == 0
}
