// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package weierct

import (
	"bytes"
	"testing"
)

func TestIdentityGetXYIsZero(t *testing.T) {
	ctx := testP256Ctx(t)
	id := Identity(ctx)
	x := make([]byte, ctx.ByteLen())
	y := make([]byte, ctx.ByteLen())
	if err := id.GetXY(x, y, ctx.ByteLen()); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(x, make([]byte, ctx.ByteLen())) || !bytes.Equal(y, make([]byte, ctx.ByteLen())) {
		t.Errorf("identity GetXY is not all-zero: x=%x y=%x", x, y)
	}
}

func TestNewPointDecodesIdentityFromZeroZero(t *testing.T) {
	ctx := testP256Ctx(t)
	zero := make([]byte, ctx.ByteLen())
	p, err := NewPoint(zero, zero, ctx.ByteLen(), ctx)
	if err != nil {
		t.Fatal(err)
	}
	if p.IsPAI() != 1 {
		t.Error("NewPoint(0, 0) did not decode to the point at infinity")
	}
}

func TestNewPointRejectsOffCurvePoint(t *testing.T) {
	ctx := testP256Ctx(t)
	gx := ctx.generator.x.Bytes()
	gy := ctx.generator.y.Bytes()
	// Perturb y so (x, y) no longer satisfies the curve equation.
	gy[len(gy)-1] ^= 1

	if _, err := NewPoint(gx, gy, ctx.ByteLen(), ctx); err != ErrPoint {
		t.Errorf("NewPoint(off-curve) = %v, want ErrPoint", err)
	}
}

func TestNewPointRoundTripsGenerator(t *testing.T) {
	ctx := testP256Ctx(t)
	gx := ctx.generator.x.Bytes()
	gy := ctx.generator.y.Bytes()

	p, err := NewPoint(gx, gy, ctx.ByteLen(), ctx)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Cmp(ctx.generator); err != nil {
		t.Errorf("round-tripped generator != original: %v", err)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	ctx := testP256Ctx(t)
	p := new(Point).Double(ctx.generator)
	once := p.Clone().Normalize()
	twice := once.Clone().Normalize()
	if err := once.Cmp(twice); err != nil {
		t.Errorf("Normalize is not idempotent: %v", err)
	}
	if twice.z.IsOne() != 1 {
		t.Errorf("normalized Z != 1: %x", twice.z.Bytes())
	}
}

func TestCmpDistinguishesDifferentPoints(t *testing.T) {
	ctx := testP256Ctx(t)
	g := ctx.generator
	g2 := new(Point).Double(g)
	if err := g.Cmp(g2); err == nil {
		t.Error("Cmp(G, 2G) reported equal")
	}
}

func TestCmpRejectsMismatchedContexts(t *testing.T) {
	p256 := testP256Ctx(t)
	other := smallGenericContext(t)
	if err := p256.generator.Cmp(other.generator); err != ErrCurve {
		t.Errorf("Cmp across contexts = %v, want ErrCurve", err)
	}
}

// smallGenericContext builds a tiny toy a = -3 curve over a small prime
// for tests that only need a second, distinct Context, not a
// cryptographically meaningful one.
func smallGenericContext(t *testing.T) *Context {
	t.Helper()
	// p = 2^61 - 1 (a Mersenne prime comfortably larger than the curve
	// arithmetic below needs), b chosen so (Gx, Gy) is on the curve.
	modulus := []byte{0x1f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	gx := []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01} // x = 1
	// y^2 = 1 - 3 + b = b - 2, choose b = 11 so y^2 = 9, y = 3.
	b := []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0b}
	gy := []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03}
	order := []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02}

	ctx, err := NewContext(modulus, b, order, 8, 0)
	if err != nil {
		t.Fatalf("NewContext(small generic): %v", err)
	}
	p, err := NewPoint(gx, gy, 8, ctx)
	if err != nil {
		t.Fatalf("NewPoint(small generic generator): %v", err)
	}
	ctx.generator = p
	return ctx
}
