// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package weierct

import (
	"testing"

	"ct256.dev/weierct/internal/workplace"
)

func testP256Ctx(t *testing.T) *Context {
	t.Helper()
	ctx, err := NewP256Context(0)
	if err != nil {
		t.Fatalf("NewP256Context: %v", err)
	}
	return ctx
}

func assertOnCurvePoint(t *testing.T, ctx *Context, p *Point) {
	t.Helper()
	n := p.Clone().Normalize()
	if n.IsPAI() == 1 {
		return
	}
	if !onCurve(ctx, n.x, n.y) {
		t.Fatalf("point not on curve: x=%x y=%x", n.x.Bytes(), n.y.Bytes())
	}
}

func TestFullAddIdentityIsNeutral(t *testing.T) {
	ctx := testP256Ctx(t)
	g := ctx.generator

	sum, err := new(Point).Add(g, Identity(ctx))
	if err != nil {
		t.Fatal(err)
	}
	if err := sum.Cmp(g); err != nil {
		t.Errorf("G + O != G: %v", err)
	}

	sum, err = new(Point).Add(Identity(ctx), g)
	if err != nil {
		t.Fatal(err)
	}
	if err := sum.Cmp(g); err != nil {
		t.Errorf("O + G != G: %v", err)
	}
}

func TestFullAddCommutes(t *testing.T) {
	ctx := testP256Ctx(t)
	g := ctx.generator
	g2 := new(Point).Double(g)

	ab, err := new(Point).Add(g, g2)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := new(Point).Add(g2, g)
	if err != nil {
		t.Fatal(err)
	}
	if err := ab.Cmp(ba); err != nil {
		t.Errorf("G + 2G != 2G + G: %v", err)
	}
	assertOnCurvePoint(t, ctx, ab)
}

func TestDoubleMatchesSelfAdd(t *testing.T) {
	ctx := testP256Ctx(t)
	g := ctx.generator

	doubled := new(Point).Double(g)
	added, err := new(Point).Add(g, g)
	if err != nil {
		t.Fatal(err)
	}
	if err := doubled.Cmp(added); err != nil {
		t.Errorf("Double(G) != G + G: %v", err)
	}
}

func TestMixAddMatchesFullAddForAffineOperand(t *testing.T) {
	ctx := testP256Ctx(t)
	w := workplace.New(ctx.fieldCtx)
	g := ctx.generator
	g2 := new(Point).Double(g).Normalize()

	fc := ctx.fieldCtx
	x3, y3, z3 := fc.NewElement(), fc.NewElement(), fc.NewElement()
	mixAdd(ctx, w, x3, y3, z3, g.x, g.y, g.z, g2.x, g2.y)
	viaMix := &Point{x: x3, y: y3, z: z3, ctx: ctx}

	viaFull, err := new(Point).Add(g, g2)
	if err != nil {
		t.Fatal(err)
	}
	if err := viaMix.Cmp(viaFull); err != nil {
		t.Errorf("mixAdd != fullAdd for an affine operand: %v", err)
	}
}

func TestMixAddShortCircuitsOnEncodedInfinity(t *testing.T) {
	ctx := testP256Ctx(t)
	w := workplace.New(ctx.fieldCtx)
	g := ctx.generator
	fc := ctx.fieldCtx

	x3, y3, z3 := fc.NewElement(), fc.NewElement(), fc.NewElement()
	mixAdd(ctx, w, x3, y3, z3, g.x, g.y, g.z, fc.Zero(), fc.Zero())
	result := &Point{x: x3, y: y3, z: z3, ctx: ctx}
	if err := result.Cmp(g); err != nil {
		t.Errorf("mixAdd(P, O) != P: %v", err)
	}
}
