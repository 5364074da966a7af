// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package weierct

import "testing"

func TestScalarUnblindedMatchesArbitraryLadder(t *testing.T) {
	ctx := testP256Ctx(t)
	p := new(Point).Double(ctx.generator).Normalize()

	k := make([]byte, ctx.ByteLen())
	k[len(k)-1] = 7

	want, err := scalarMul(ctx, p, k, 0)
	if err != nil {
		t.Fatal(err)
	}

	got, err := new(Point).Scalar(p, k, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := got.Cmp(want); err != nil {
		t.Errorf("Scalar(seed=0) != scalarMul: %v", err)
	}
}

func TestScalarBlindingIsInvariantAcrossSeeds(t *testing.T) {
	ctx := testP256Ctx(t)
	p := new(Point).Double(ctx.generator).Normalize()

	k := make([]byte, ctx.ByteLen())
	k[len(k)-1] = 13

	ref, err := new(Point).Scalar(p, k, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, seed := range []uint64{2, 3, 0xDEADBEEF, 1<<63 + 7} {
		got, err := new(Point).Scalar(p, k, seed)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if err := got.Cmp(ref); err != nil {
			t.Errorf("Scalar(seed=%d) disagrees with Scalar(seed=1): %v", seed, err)
		}
	}
}

func TestScalarDispatchesGeneratorToTableLadder(t *testing.T) {
	ctx := testP256Ctx(t)

	k := make([]byte, ctx.ByteLen())
	k[len(k)-1] = 0x42

	viaTable, err := scalarMulGenerator(ctx, k)
	if err != nil {
		t.Fatal(err)
	}
	viaScalar, err := new(Point).Scalar(ctx.generator, k, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := viaScalar.Cmp(viaTable); err != nil {
		t.Errorf("Scalar(generator) != scalarMulGenerator: %v", err)
	}
}

func TestBlindPointPreservesAffineValue(t *testing.T) {
	ctx := testP256Ctx(t)
	p := ctx.generator
	state := uint64(99)
	blinded, err := blindPoint(p, &state)
	if err != nil {
		t.Fatal(err)
	}
	if err := blinded.Cmp(p); err != nil {
		t.Errorf("blindPoint changed the represented affine point: %v", err)
	}
	if blinded.z.IsZero() == 1 {
		t.Error("blindPoint produced a zero Z coordinate")
	}
}
