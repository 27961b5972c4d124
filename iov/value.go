// Copyright 2026 The Cosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iov

// Kind discriminates the payload carried by a Value.
type Kind uint8

const (
	// KindAbsent is the zero value: a fresh Value carries no payload.
	KindAbsent Kind = iota
	// KindVector carries a vector of doubles; runtime tagged values are
	// always KindVector.
	KindVector
	// KindSize carries an unsigned integer; used only during port-width
	// negotiation with the FEM descriptor.
	KindSize
	// KindUnit carries no data beyond the tag itself; used for signalling
	// ("this output exists but has zero width") without allocating.
	KindUnit
)

// Value pairs a Tag with an optional payload. The zero Value is
// {Tag: TagNone, Kind: KindAbsent}.
type Value struct {
	Tag  Tag
	Kind Kind
	Vec  []float64
	Size uint
}

// Vector returns a KindVector Value for tag.
func Vector(tag Tag, v []float64) Value {
	return Value{Tag: tag, Kind: KindVector, Vec: v}
}

// SizeOf returns a KindSize Value for tag.
func SizeOf(tag Tag, n uint) Value {
	return Value{Tag: tag, Kind: KindSize, Size: n}
}

// Unit returns a KindUnit Value for tag.
func Unit(tag Tag) Value {
	return Value{Tag: tag, Kind: KindUnit}
}

// Width returns the number of elements this Value contributes to a
// concatenated vector: len(Vec) for KindVector, int(Size) for KindSize, 0
// otherwise.
func (v Value) Width() int {
	switch v.Kind {
	case KindVector:
		return len(v.Vec)
	case KindSize:
		return int(v.Size)
	default:
		return 0
	}
}
