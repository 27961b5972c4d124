// Copyright 2026 The Cosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iov

// Port is the minimal shape a named port (FEM input/output column group, or
// a controller port) must have to participate in name matching. femmodel
// and ctrl implement this with their concrete port types so
// matching logic lives once, here, instead of being duplicated per caller
// (spec §4.4).
type Port interface {
	PortTag() Tag
}

// Match scans ports for the one whose tag equals want and returns it. ok is
// false if no port with that tag exists -- the caller turns that into a
// FemInputs/FemOutputs error as appropriate (spec §4.3 step 1, §4.4).
func Match[P Port](ports []P, want Tag) (p P, ok bool) {
	for _, port := range ports {
		if port.PortTag() == want {
			return port, true
		}
	}
	return p, false
}
