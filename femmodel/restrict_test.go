// Copyright 2026 The Cosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package femmodel

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/gmto-project/cosim/iov"
)

func TestRestrictBuildsProjectionMatrices(tst *testing.T) {
	chk.PrintTitle("restrict builds B/C from declared tags")
	f := synthetic()

	r, err := Restrict(f, []iov.Tag{iov.OSSTruss6F, iov.OSSTopEnd6F}, []iov.Tag{iov.OSSHardpointD})
	if err != nil {
		tst.Fatalf("Restrict failed: %v", err)
	}

	// declared order is preserved: OSSTruss6F (width 2) then OSSTopEnd6F (width 3)
	if len(r.Inputs) != 2 || r.Inputs[0].Tag != iov.OSSTruss6F || r.Inputs[1].Tag != iov.OSSTopEnd6F {
		tst.Fatalf("unexpected input order: %+v", r.Inputs)
	}
	if len(r.B) != f.NModes {
		tst.Fatalf("B has %d rows, want %d", len(r.B), f.NModes)
	}
	if len(r.B[0]) != 5 {
		tst.Fatalf("B row width = %d, want 5 (2+3)", len(r.B[0]))
	}
	// first two columns come from OSSTruss6F's indices {4,5} (1-based)
	if r.B[0][0] != f.InputsToModalForces[0][3] || r.B[0][1] != f.InputsToModalForces[0][4] {
		tst.Fatalf("B columns not drawn from declared indices: %v", r.B[0])
	}

	if len(r.Outputs) != 1 || r.YSizes[0] != 3 {
		tst.Fatalf("unexpected outputs: %+v, sizes %v", r.Outputs, r.YSizes)
	}
	if len(r.C) != 3 {
		tst.Fatalf("C has %d rows, want 3", len(r.C))
	}
}

func TestRestrictFailsOnUnknownInputTag(tst *testing.T) {
	chk.PrintTitle("restrict fails with FemInputs on unknown input tag")
	f := synthetic()
	_, err := Restrict(f, []iov.Tag{iov.MountCmd}, nil)
	if err == nil {
		tst.Fatalf("expected an error for an undeclared input tag")
	}
}

func TestRestrictFailsOnUnknownOutputTag(tst *testing.T) {
	chk.PrintTitle("restrict fails with FemOutputs on unknown output tag")
	f := synthetic()
	_, err := Restrict(f, nil, []iov.Tag{iov.MountCmd})
	if err == nil {
		tst.Fatalf("expected an error for an undeclared output tag")
	}
}
