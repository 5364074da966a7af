// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window implements the fixed-width scalar digit iterators
// from spec §4.4, generalizing the teacher's hard-coded radix-16
// digit extraction in internal/edwards25519/scalarMul.go
// (x.SignedRadix16(), walked both L→R for the basepoint table and
// R→L for the generic table) into a parametrised width and direction.
package window

// Direction selects which end of the scalar an Iterator starts from.
type Direction int

const (
	// LeftToRight yields the most significant digit first.
	LeftToRight Direction = iota
	// RightToLeft yields the least significant digit first.
	RightToLeft
)

// Iterator streams fixed-width digits out of a big-endian scalar.
type Iterator struct {
	bytes     []byte
	width     uint
	dir       Direction
	windows   int
	bitOffset int // next bit to read, counted from the MSB of bytes
	pos       int // windows already emitted
}

// effectiveBits returns the bit length of b with leading zero bytes
// elided, per spec §4.4 ("leading zero bytes of the scalar are skipped
// once at start").
func effectiveBits(b []byte, width uint) ([]byte, int) {
	i := 0
	for i < len(b) && b[i] == 0 {
		i++
	}
	trimmed := b[i:]
	bits := len(trimmed) * 8
	if bits == 0 {
		bits = int(width) // a zero scalar still yields one all-zero window
	}
	return trimmed, bits
}

func newIterator(dir Direction, width uint, scalar []byte) *Iterator {
	if width == 0 || width > 8 {
		panic("window: width must be in [1, 8]")
	}
	trimmed, bits := effectiveBits(scalar, width)
	windows := (bits + int(width) - 1) / int(width)
	return &Iterator{
		bytes:   trimmed,
		width:   width,
		dir:     dir,
		windows: windows,
	}
}

// NewLR returns an iterator over scalar's digits, most significant
// window first.
func NewLR(width uint, scalar []byte) *Iterator { return newIterator(LeftToRight, width, scalar) }

// NewRL returns an iterator over scalar's digits, least significant
// window first.
func NewRL(width uint, scalar []byte) *Iterator { return newIterator(RightToLeft, width, scalar) }

// Windows returns ⌈effective_bits / width⌉, the number of digits Next
// will yield in total.
func (it *Iterator) Windows() int { return it.windows }

// bitAt returns bit i of it.bytes, counting from the MSB (i=0), or 0
// if i falls in the implicit leading-zero padding before the trimmed
// scalar's first bit within the current window.
func (it *Iterator) bitAt(i int) int {
	totalBits := len(it.bytes) * 8
	pad := it.windows*int(it.width) - totalBits
	i -= pad
	if i < 0 {
		return 0
	}
	byteIdx := i / 8
	bitIdx := 7 - uint(i%8)
	return int((it.bytes[byteIdx] >> bitIdx) & 1)
}

// Next returns the next digit in [0, 2^width) and true, or (0, false)
// once Windows() digits have been returned.
func (it *Iterator) Next() (int, bool) {
	if it.pos >= it.windows {
		return 0, false
	}
	var windowIndex int
	switch it.dir {
	case LeftToRight:
		windowIndex = it.pos
	case RightToLeft:
		windowIndex = it.windows - 1 - it.pos
	}
	digit := 0
	base := windowIndex * int(it.width)
	for b := 0; b < int(it.width); b++ {
		digit <<= 1
		digit |= it.bitAt(base + b)
	}
	it.pos++
	return digit, true
}

// Reset rewinds the iterator to its first window.
func (it *Iterator) Reset() { it.pos = 0 }
