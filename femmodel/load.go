// Copyright 2026 The Cosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package femmodel

import (
	"bytes"
	"encoding/gob"

	"github.com/cpmech/gosl/io"
	"github.com/gmto-project/cosim/simerr"
)

// Load reads a Gob-encoded FEM descriptor from path. This is the Go side
// of the "FEM descriptor format" contract (spec §6): the foreign pickle
// format used upstream is out of scope, but the blob this harness reads is
// expected to deserialize into exactly this structure.
func Load(path string) (*FEM, error) {
	buf, err := io.ReadFile(path)
	if err != nil {
		return nil, simerr.Deserialization(err)
	}
	var f FEM
	if err := gob.NewDecoder(bytes.NewReader(buf)).Decode(&f); err != nil {
		return nil, simerr.Deserialization(err)
	}
	f.Validate()
	return &f, nil
}

// Save writes f to path as a Gob blob, for test fixtures and the
// round-trip invariant of spec §8 ("loading then writing the FEM
// descriptor is byte-for-byte invariant for the subset of fields this core
// consumes").
func Save(path string, f *FEM) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(f); err != nil {
		return simerr.Deserialization(err)
	}
	io.WriteFile(path, &buf)
	return nil
}
