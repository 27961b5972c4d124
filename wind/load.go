// Copyright 2026 The Cosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wind

import (
	"bytes"
	"encoding/gob"

	"github.com/cpmech/gosl/io"
	"github.com/gmto-project/cosim/iov"
	"github.com/gmto-project/cosim/simerr"
)

// file is the on-disk shape of a wind-loads blob: a named mapping from
// variant name to per-tick sample rows, plus the channel order and time
// step (spec §6 "Wind-loads format").
type file struct {
	Samples map[iov.Tag][][]float64
	Order   []iov.Tag
	Dt      float64
}

// Load reads a Gob-encoded wind-loads file from path and builds a Source.
func Load(path string) (*Source, error) {
	buf, err := io.ReadFile(path)
	if err != nil {
		return nil, simerr.Deserialization(err)
	}
	var f file
	if err := gob.NewDecoder(bytes.NewReader(buf)).Decode(&f); err != nil {
		return nil, simerr.Deserialization(err)
	}
	return New(f.Samples, f.Order, f.Dt)
}

// Save writes samples/order/dt to path as a Gob blob, for test fixtures.
func Save(path string, samples map[iov.Tag][][]float64, order []iov.Tag, dt float64) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(file{Samples: samples, Order: order, Dt: dt}); err != nil {
		return simerr.Deserialization(err)
	}
	io.WriteFile(path, &buf)
	return nil
}
