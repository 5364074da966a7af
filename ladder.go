// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package weierct

import (
	"ct256.dev/weierct/internal/ctable"
	"ct256.dev/weierct/internal/window"
	"ct256.dev/weierct/internal/workplace"
)

// windowWidth is the ladder's fixed nibble width (spec §4.5).
const windowWidth = 4

const windowTableSize = 1 << windowWidth

// buildPointWindow computes W[0..15] = {O, P, 2P, ..., 15P} for the
// arbitrary-point ladder, generalizing the teacher's basepoint-table
// construction (internal/edwards25519/scalarMul.go's
// basepointTable[i/2].SelectInto loop) from a fixed compile-time table
// to one built fresh per call from the caller-supplied point.
func buildPointWindow(ctx *Context, p *Point, w *workplace.Workplace) []ctable.Entry {
	fc := ctx.fieldCtx
	entries := make([]ctable.Entry, windowTableSize)
	entries[0] = ctable.Entry{fc.Zero(), fc.One(), fc.Zero()} // PAI

	prevX, prevY, prevZ := fc.NewElement().Set(p.x), fc.NewElement().Set(p.y), fc.NewElement().Set(p.z)
	entries[1] = ctable.Entry{prevX, prevY, prevZ}

	zIsOne := p.z.IsOne() == 1
	for i := 2; i < windowTableSize; i++ {
		x3, y3, z3 := fc.NewElement(), fc.NewElement(), fc.NewElement()
		prev := entries[i-1]
		if zIsOne {
			mixAdd(ctx, w, x3, y3, z3, prev[0], prev[1], prev[2], p.x, p.y)
		} else {
			fullAdd(ctx, w, x3, y3, z3, prev[0], prev[1], prev[2], p.x, p.y, p.z)
		}
		entries[i] = ctable.Entry{x3, y3, z3}
	}
	return entries
}

// scalarMul computes k*P via the arbitrary-point ladder (spec §4.5): a
// seed-scrambled 16-entry window, consumed left-to-right four bits at
// a time, with four doublings and one full projective addition per
// nibble.
func scalarMul(ctx *Context, p *Point, k []byte, seed uint64) (*Point, error) {
	w := workplace.New(ctx.fieldCtx)
	entries := buildPointWindow(ctx, p, w)
	tbl := ctable.Scatter(entries, seed)

	fc := ctx.fieldCtx
	acc := Identity(ctx)
	gathered := ctable.Entry{fc.NewElement(), fc.NewElement(), fc.NewElement()}

	it := window.NewLR(windowWidth, k)
	for {
		digit, ok := it.Next()
		if !ok {
			break
		}
		if err := tbl.Gather(gathered, digit); err != nil {
			return nil, err
		}

		for i := 0; i < windowWidth; i++ {
			x3, y3, z3 := fc.NewElement(), fc.NewElement(), fc.NewElement()
			double(ctx, w, x3, y3, z3, acc.x, acc.y, acc.z)
			acc.x, acc.y, acc.z = x3, y3, z3
		}

		x3, y3, z3 := fc.NewElement(), fc.NewElement(), fc.NewElement()
		fullAdd(ctx, w, x3, y3, z3, acc.x, acc.y, acc.z, gathered[0], gathered[1], gathered[2])
		acc.x, acc.y, acc.z = x3, y3, z3
	}
	return acc, nil
}
