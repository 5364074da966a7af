// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package workplace provides a fixed-size scratch arena of field
// elements, so the addition kernels and ladders never allocate on
// their hot path. It generalizes the teacher's pattern of
// preallocating a handful of named ProjP1xP1/ProjP2/ProjCached
// temporaries once per scalar multiplication (see
// internal/edwards25519/scalarMul.go in the teacher) into an explicit,
// reusable arena sized to the largest formula this module runs.
package workplace

import "ct256.dev/weierct/field"

// SlotCount is the number of named scratch elements a Workplace lends,
// matching spec §3's 11 named slots (a..k). fullAdd, the largest
// kernel this module runs, takes 8 of them.
const SlotCount = 11

// Workplace is a scoped pool of reusable field elements. It is created
// once per scalar operation and is not safe for concurrent use or
// reuse across operations.
type Workplace struct {
	slots [SlotCount]field.Element
	next  int
}

// New allocates a Workplace with all SlotCount slots bound to ctx.
func New(ctx *field.Context) *Workplace {
	w := &Workplace{}
	for i := range w.slots {
		w.slots[i] = ctx.NewElement()
	}
	return w
}

// Slot lends the next unused named element. It panics if more than
// SlotCount slots are requested in a single Workplace lifetime — that
// would mean a kernel grew past the fixed budget this module was sized
// for, which is a programming error, not a runtime condition callers
// can recover from.
func (w *Workplace) Slot() field.Element {
	if w.next >= SlotCount {
		panic("workplace: slot budget exhausted")
	}
	s := w.slots[w.next]
	w.next++
	return s
}

// Reset makes every slot available again without reallocating the
// underlying elements, for reuse across the steps of a single ladder.
func (w *Workplace) Reset() {
	w.next = 0
}
