// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package weierct

import (
	"encoding/hex"
	"math/big"

	"ct256.dev/weierct/field"
	"ct256.dev/weierct/internal/ctable"
	"ct256.dev/weierct/internal/window"
	"ct256.dev/weierct/internal/workplace"
)

// p256WindowSize is the width, in bits, of each generator-table digit.
const p256WindowSize = 4

// p256PointsPerTable is 2^p256WindowSize, the number of affine points
// stored per table (including the encoded point at infinity).
const p256PointsPerTable = 1 << p256WindowSize

// p256NTables is ⌈256 / p256WindowSize⌉, the number of tables needed
// to cover a full-width P-256 scalar.
const p256NTables = (field.P256ByteLen*8 + p256WindowSize - 1) / p256WindowSize

// tableSplitmix64 expands a seed into a deterministic stream used to
// derive a distinct scatter seed per generator-table window, so no two
// windows share a physical layout.
func tableSplitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Canonical NIST P-256 domain parameters (FIPS 186-4, D.1.2.3).
var (
	p256ModulusBytes = mustHex("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff")
	p256BBytes       = mustHex("5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b")
	p256NBytes       = mustHex("ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551")
	p256GxBytes      = mustHex("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296")
	p256GyBytes      = mustHex("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5")
)

// p256Tables holds the precomputed, seed-scrambled windows used by the
// generator ladder: table[i] stores {0·G, 1·G·2^(4i), ..., 15·G·2^(4i)}
// as affine (X, Y) pairs, with the point at infinity encoded as (0, 0).
type p256Tables struct {
	windows []*ctable.Table
}

// newP256Context builds a Context for NIST P-256, with its generator
// table constructed once from the canonical generator.
//
// spec §4.6/§9 leaves the provenance of the precomputed table asset
// and the MAKE_TABLE compile-time switch out of scope. This module
// resolves that by always building the table here, at context
// construction, from the addition kernels in addition.go — there is no
// static data blob to load or to fabricate, and no build variant that
// ships one.
func newP256Context(b, order []byte, length int, seed uint64) (*Context, error) {
	if length != field.P256ByteLen {
		return nil, ErrNotEnoughData
	}
	fc := field.P256()
	bEl, err := fc.ElementFromBytes(b)
	if err != nil {
		return nil, err
	}
	n := new(big.Int).SetBytes(order)
	if n.Sign() <= 0 {
		return nil, ErrValue
	}

	ctx := &Context{
		fieldCtx: fc,
		b:        bEl,
		order:    n,
		orderLen: length,
		class:    field.ClassP256,
	}

	gx, err := fc.ElementFromBytes(p256GxBytes)
	if err != nil {
		return nil, err
	}
	gy, err := fc.ElementFromBytes(p256GyBytes)
	if err != nil {
		return nil, err
	}
	gen := &Point{x: gx, y: gy, z: fc.One(), ctx: ctx}
	ctx.generator = gen

	tables, err := buildP256Tables(ctx, gen, seed)
	if err != nil {
		return nil, err
	}
	ctx.tables = tables

	return ctx, nil
}

// buildP256Tables computes p256NTables windows of p256PointsPerTable
// affine multiples of base, each scattered under a table-specific
// derivative of seed so that no two tables share a physical layout.
func buildP256Tables(ctx *Context, base *Point, seed uint64) (*p256Tables, error) {
	fc := ctx.fieldCtx
	w := workplace.New(fc)

	windows := make([]*ctable.Table, p256NTables)
	acc := base.Clone() // acc = 2^(4*i) * G, updated each iteration

	state := seed
	for i := 0; i < p256NTables; i++ {
		entries := make([]ctable.Entry, p256PointsPerTable)
		entries[0] = ctable.Entry{fc.Zero(), fc.Zero()} // encoded PAI

		multiple := acc.Clone()
		for j := 1; j < p256PointsPerTable; j++ {
			if j > 1 {
				sum, err := multiple.Add(multiple, acc)
				if err != nil {
					return nil, err
				}
				multiple = sum
			}
			affine := multiple.Clone().Normalize()
			entries[j] = ctable.Entry{fc.NewElement().Set(affine.x), fc.NewElement().Set(affine.y)}
		}

		state = tableSplitmix64(&state)
		windows[i] = ctable.Scatter(entries, state)

		if i < p256NTables-1 {
			x3, y3, z3 := fc.NewElement(), fc.NewElement(), fc.NewElement()
			double(ctx, w, x3, y3, z3, acc.x, acc.y, acc.z)
			double(ctx, w, x3, y3, z3, x3, y3, z3)
			double(ctx, w, x3, y3, z3, x3, y3, z3)
			double(ctx, w, x3, y3, z3, x3, y3, z3)
			acc.x, acc.y, acc.z = x3, y3, z3
		}
	}

	return &p256Tables{windows: windows}, nil
}

// scalarMulGenerator computes k*G using the precomputed P-256 tables,
// one mixAdd per window, no doublings (spec §4.6).
func scalarMulGenerator(ctx *Context, k []byte) (*Point, error) {
	it := window.NewRL(p256WindowSize, k)
	if it.Windows() > p256NTables {
		return nil, ErrValue
	}

	fc := ctx.fieldCtx
	w := workplace.New(fc)
	acc := Identity(ctx)
	entry := ctable.Entry{fc.NewElement(), fc.NewElement()}

	i := 0
	for {
		digit, ok := it.Next()
		if !ok {
			break
		}
		tbl := ctx.tables.windows[i]
		if err := tbl.Gather(entry, digit); err != nil {
			return nil, err
		}
		x3, y3, z3 := fc.NewElement(), fc.NewElement(), fc.NewElement()
		mixAdd(ctx, w, x3, y3, z3, acc.x, acc.y, acc.z, entry[0], entry[1])
		acc.x, acc.y, acc.z = x3, y3, z3
		i++
	}
	return acc, nil
}
