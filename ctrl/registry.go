// Copyright 2026 The Cosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctrl

import "github.com/cpmech/gosl/chk"

// allocators holds all available controllers by name, adapted from the
// teacher's solver-allocator registry (fem/solver.go's
// "var allocators = make(map[string]func(...) Solver)").
var allocators = make(map[string]func() Controller)

// Register adds a controller allocator under name. Intended to be called
// from package init() by each concrete controller file, mirroring the
// teacher's registration style.
func Register(name string, alloc func() Controller) {
	allocators[name] = alloc
}

// New returns a fresh controller instance registered under name, panicking
// if name is unknown -- an unknown controller name is a configuration bug,
// not a runtime condition callers recover from, matching chk.Panic's use
// for "this should never happen" assembly failures elsewhere in this
// module.
func New(name string) Controller {
	alloc, ok := allocators[name]
	if !ok {
		chk.Panic("ctrl: no controller registered under name %q", name)
	}
	return alloc()
}
