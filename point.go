// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package weierct

import (
	"ct256.dev/weierct/field"
	"ct256.dev/weierct/internal/workplace"
)

// Point is a projective point (X:Y:Z) on a Context's curve, where
// x = X/Z, y = Y/Z when Z != 0, and Z == 0 represents the point at
// infinity, stored canonically as (0, 1, 0). A Point is exclusively
// owned by its caller; operations that mutate it are not safe for
// concurrent use (spec §5).
type Point struct {
	x, y, z field.Element
	ctx     *Context
}

// Identity returns the point at infinity for ctx.
func Identity(ctx *Context) *Point {
	p := &Point{
		x:   ctx.fieldCtx.Zero(),
		y:   ctx.fieldCtx.One(),
		z:   ctx.fieldCtx.Zero(),
		ctx: ctx,
	}
	return p
}

// NewPoint decodes the big-endian affine coordinates x, y (each up to
// length bytes) and returns the corresponding Point. (0, 0) decodes to
// the point at infinity. Any other coordinate pair that does not
// satisfy y² = x³ - 3x + b returns ErrPoint.
func NewPoint(x, y []byte, length int, ctx *Context) (*Point, error) {
	if ctx == nil {
		return nil, ErrNull
	}
	if length == 0 || length > ctx.ByteLen() {
		return nil, ErrNotEnoughData
	}
	if len(x) > length || len(y) > length {
		return nil, ErrNotEnoughData
	}

	xEl, err := ctx.fieldCtx.ElementFromBytes(x)
	if err != nil {
		return nil, err
	}
	yEl, err := ctx.fieldCtx.ElementFromBytes(y)
	if err != nil {
		return nil, err
	}

	if xEl.IsZero() == 1 && yEl.IsZero() == 1 {
		return Identity(ctx), nil
	}

	if !onCurve(ctx, xEl, yEl) {
		return nil, ErrPoint
	}

	return &Point{
		x:   xEl,
		y:   yEl,
		z:   ctx.fieldCtx.One(),
		ctx: ctx,
	}, nil
}

// onCurve reports whether y² = x³ - 3x + b (mod p).
func onCurve(ctx *Context, x, y field.Element) bool {
	fc := ctx.fieldCtx
	x2 := fc.NewElement().Square(x)
	x3 := fc.NewElement().Multiply(x2, x)

	threeX := fc.NewElement().Add(x, x)
	threeX.Add(threeX, x)

	rhs := fc.NewElement().Subtract(x3, threeX)
	rhs.Add(rhs, ctx.b)

	lhs := fc.NewElement().Square(y)
	return lhs.Equal(rhs) == 1
}

// IsPAI returns 1 if p is the point at infinity, and 0 otherwise.
func (p *Point) IsPAI() int { return p.z.IsZero() }

// Normalize replaces (X, Y, Z) with (X/Z, Y/Z, 1), or leaves p
// unchanged if it is the point at infinity.
func (p *Point) Normalize() *Point {
	if p.IsPAI() == 1 {
		return p
	}
	fc := p.ctx.fieldCtx
	zInv := fc.NewElement().Invert(p.z)
	p.x.Multiply(p.x, zInv)
	p.y.Multiply(p.y, zInv)
	p.z.SetUint64(1)
	return p
}

// Double sets p = 2*a and returns p. a and p may alias.
func (p *Point) Double(a *Point) *Point {
	w := workplace.New(a.ctx.fieldCtx)
	x3, y3, z3 := a.ctx.fieldCtx.NewElement(), a.ctx.fieldCtx.NewElement(), a.ctx.fieldCtx.NewElement()
	double(a.ctx, w, x3, y3, z3, a.x, a.y, a.z)
	p.x, p.y, p.z, p.ctx = x3, y3, z3, a.ctx
	return p
}

// Add sets p = a + b and returns p. a, b, and p may alias. Add returns
// ErrCurve if a and b belong to different contexts.
func (p *Point) Add(a, b *Point) (*Point, error) {
	if a.ctx != b.ctx {
		return nil, ErrCurve
	}
	w := workplace.New(a.ctx.fieldCtx)
	x3, y3, z3 := a.ctx.fieldCtx.NewElement(), a.ctx.fieldCtx.NewElement(), a.ctx.fieldCtx.NewElement()
	fullAdd(a.ctx, w, x3, y3, z3, a.x, a.y, a.z, b.x, b.y, b.z)
	p.x, p.y, p.z, p.ctx = x3, y3, z3, a.ctx
	return p, nil
}

// Negate sets p = -a and returns p. a and p may alias.
func (p *Point) Negate(a *Point) *Point {
	fc := a.ctx.fieldCtx
	negY := fc.NewElement().Negate(a.y)
	p.x = fc.NewElement().Set(a.x)
	p.y = negY
	p.z = fc.NewElement().Set(a.z)
	p.ctx = a.ctx
	return p
}

// Clone returns a new Point equal to p.
func (p *Point) Clone() *Point {
	return new(Point).Copy(p)
}

// Copy sets p = src and returns p.
func (p *Point) Copy(src *Point) *Point {
	fc := src.ctx.fieldCtx
	p.x = fc.NewElement().Set(src.x)
	p.y = fc.NewElement().Set(src.y)
	p.z = fc.NewElement().Set(src.z)
	p.ctx = src.ctx
	return p
}

// Cmp returns nil if p and q represent the same affine point (or are
// both the point at infinity), ErrValue if they differ, and ErrCurve
// if they belong to different contexts.
func (p *Point) Cmp(q *Point) error {
	if p.ctx != q.ctx {
		return ErrCurve
	}
	fc := p.ctx.fieldCtx

	// Cross-multiplication avoids computing either inverse:
	// x1/z1 == x2/z2  <=>  x1*z2 == x2*z1, and likewise for y.
	lx := fc.NewElement().Multiply(p.x, q.z)
	rx := fc.NewElement().Multiply(q.x, p.z)
	ly := fc.NewElement().Multiply(p.y, q.z)
	ry := fc.NewElement().Multiply(q.y, p.z)

	bothPAI := p.IsPAI() & q.IsPAI()
	eitherPAI := p.IsPAI() | q.IsPAI()
	coordsEqual := lx.Equal(rx) & ly.Equal(ry)

	// If exactly one is PAI, they cannot be equal regardless of what
	// the cross-multiplication (which is meaningless against Z=0)
	// happens to compute.
	equal := bothPAI | (coordsEqual &^ eitherPAI)
	if equal == 1 {
		return nil
	}
	return ErrValue
}

// GetXY writes p's affine coordinates, each big-endian and zero-padded
// to length bytes, into xOut and yOut. length must equal the curve's
// field byte length.
func (p *Point) GetXY(xOut, yOut []byte, length int) error {
	if length != p.ctx.ByteLen() {
		return ErrNotEnoughData
	}
	if len(xOut) != length || len(yOut) != length {
		return ErrNotEnoughData
	}
	norm := p.Clone().Normalize()
	if norm.IsPAI() == 1 {
		for i := range xOut {
			xOut[i] = 0
			yOut[i] = 0
		}
		return nil
	}
	copy(xOut, norm.x.Bytes())
	copy(yOut, norm.y.Bytes())
	return nil
}
