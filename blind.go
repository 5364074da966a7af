// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package weierct

import (
	"math/big"

	"ct256.dev/weierct/field"
)

// expandSeed deterministically expands seed into a splitmix64 stream,
// generalizing the teacher's seeded-random test idiom into the tiny
// deterministic expander blinding needs at call time (spec §4.7,
// decided in SPEC_FULL.md §9 item 1: the original seed+1/seed+2 offset
// scheme is not preserved).
func expandSeed(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// blindingFactor derives a nonzero field element from seed, retrying
// the expansion on the vanishingly unlikely chance of landing on zero.
func blindingFactor(ctx *Context, state *uint64) (field.Element, error) {
	fc := ctx.fieldCtx
	buf := make([]byte, fc.ByteLen())
	for attempt := 0; attempt < 4; attempt++ {
		for i := 0; i+8 <= len(buf); i += 8 {
			w := expandSeed(state)
			buf[i] = byte(w >> 56)
			buf[i+1] = byte(w >> 48)
			buf[i+2] = byte(w >> 40)
			buf[i+3] = byte(w >> 32)
			buf[i+4] = byte(w >> 24)
			buf[i+5] = byte(w >> 16)
			buf[i+6] = byte(w >> 8)
			buf[i+7] = byte(w)
		}
		el, err := fc.ElementFromBytes(buf)
		if err != nil {
			return nil, err
		}
		if el.IsZero() == 0 {
			return el, nil
		}
	}
	// Fall back to 1 rather than loop forever; a field where four
	// independent field-width draws all reduce to zero does not occur
	// for any curve this module supports.
	return fc.One(), nil
}

// blindPoint returns a clone of p with its projective representation
// rescaled by a random nonzero factor: (X, Y, Z) -> (fX, fY, fZ), which
// represents the same affine point but leaves no fixed coordinate
// pattern for a physical observer to correlate across calls.
func blindPoint(p *Point, state *uint64) (*Point, error) {
	f, err := blindingFactor(p.ctx, state)
	if err != nil {
		return nil, err
	}
	fc := p.ctx.fieldCtx
	out := &Point{
		x:   fc.NewElement().Multiply(p.x, f),
		y:   fc.NewElement().Multiply(p.y, f),
		z:   fc.NewElement().Multiply(p.z, f),
		ctx: p.ctx,
	}
	return out, nil
}

// blindScalar returns k' = k + r*n encoded big-endian, where n is the
// curve order and r is derived from state. Adding a random multiple of
// the order leaves k' == k (mod n), so k'*P == k*P, while varying the
// bit pattern the ladder actually walks across calls.
func blindScalar(ctx *Context, k []byte, state *uint64) []byte {
	r := expandSeed(state) & 0xFFFFFFFF // low 32 bits, per spec §4.7
	kk := new(big.Int).SetBytes(k)
	rn := new(big.Int).Mul(new(big.Int).SetUint64(r), ctx.order)
	kk.Add(kk, rn)

	width := ctx.orderLen
	if len(k) > width {
		width = len(k)
	}
	out := make([]byte, width+4)
	kk.FillBytes(out)
	return out
}

// Scalar sets p = k*src and returns p, where k is a big-endian scalar
// of arbitrary length.
//
// Per spec §4.7 step 1, the generator check runs first, against the
// caller's src and k exactly as given, before any blinding is applied:
// if src is the curve's own generator (compared affine-equivalently via
// Cmp, resolving spec.md's second Open Question), the precomputed
// P-256 table ladder is used directly on the unblinded k and Scalar
// returns — blinding never runs on this path, since the generator
// ladder's own windowing already bounds k to the table's width, and
// stretching k by a blinding term would push it past that bound.
// Otherwise p is computed via the arbitrary-point ladder, blinding both
// the point and the scalar first unless seed == 0.
//
// seed == 0 requests an unblinded computation, useful for tests and for
// callers operating in a context where call-pattern observation is not
// a concern.
func (p *Point) Scalar(src *Point, k []byte, seed uint64) (*Point, error) {
	if src == nil || src.ctx == nil {
		return nil, ErrNull
	}
	ctx := src.ctx

	if ctx.generator != nil && ctx.tables != nil {
		if err := src.Cmp(ctx.generator); err == nil {
			result, err := scalarMulGenerator(ctx, k)
			if err != nil {
				return nil, err
			}
			return p.Copy(result), nil
		}
	}

	if seed == 0 {
		result, err := scalarMul(ctx, src, k, 0)
		if err != nil {
			return nil, err
		}
		return p.Copy(result), nil
	}

	state := seed
	blindedPoint, err := blindPoint(src, &state)
	if err != nil {
		return nil, err
	}
	blindedScalar := blindScalar(ctx, k, &state)

	result, err := scalarMul(ctx, blindedPoint, blindedScalar, state)
	if err != nil {
		return nil, err
	}
	return p.Copy(result), nil
}
