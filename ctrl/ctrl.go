// Copyright 2026 The Cosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ctrl implements the controller contract (C7): fixed-width,
// tag-addressed discrete step functions standing in for the
// code-generated black-box controllers the real system links in
// (spec §4.5, §1 "out of scope: the specific controller transfer
// functions").
package ctrl

import (
	"fmt"

	"github.com/gmto-project/cosim/iov"
	"github.com/gmto-project/cosim/simerr"
)

// Port declares one controller input or output: a tag and its fixed width.
type Port struct {
	Tag   iov.Tag
	Width int
}

func (p Port) PortTag() iov.Tag { return p.Tag }

// Controller is the tagged-I/O step contract every subsystem controller
// implements: populate scratch inputs from matched tagged values, advance
// one discrete step, return tagged outputs (spec §4.5).
type Controller interface {
	// Ports returns the declared input and output ports, in the order
	// Step expects/produces them.
	Ports() (in, out []Port)
	// Step advances the controller by one tick given its inputs. Fails
	// with simerr.InputsMissing if any declared input tag is absent.
	Step(in []iov.Value) ([]iov.Value, error)
}

// gather copies the payload of each declared input port from values, in
// port-declaration order, failing with simerr.InputsMissing for any
// missing or absent port.
func gather(ports []Port, values []iov.Value) ([][]float64, error) {
	byTag := make(map[iov.Tag]iov.Value, len(values))
	for _, v := range values {
		byTag[v.Tag] = v
	}
	out := make([][]float64, len(ports))
	var missing []fmt.Stringer
	for i, p := range ports {
		v, ok := byTag[p.Tag]
		if !ok || v.Kind != iov.KindVector || len(v.Vec) != p.Width {
			missing = append(missing, p.Tag)
			continue
		}
		out[i] = v.Vec
	}
	if len(missing) > 0 {
		return nil, simerr.InputsMissing(missing...)
	}
	return out, nil
}
