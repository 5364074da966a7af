// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctable

import (
	"testing"

	"ct256.dev/weierct/field"
)

func TestGatherReturnsEachEntry(t *testing.T) {
	ctx := field.P256()
	const n = 16
	entries := make([]Entry, n)
	for i := 0; i < n; i++ {
		x := ctx.NewElement().SetUint64(uint64(i))
		y := ctx.NewElement().SetUint64(uint64(i * i))
		entries[i] = Entry{x, y}
	}

	tbl := Scatter(entries, 0xF00D)
	for i := 0; i < n; i++ {
		dst := Entry{ctx.NewElement(), ctx.NewElement()}
		if err := tbl.Gather(dst, i); err != nil {
			t.Fatalf("gather(%d): %v", i, err)
		}
		want := ctx.NewElement().SetUint64(uint64(i))
		if dst[0].Equal(want) != 1 {
			t.Errorf("gather(%d).x = %x, want %x", i, dst[0].Bytes(), want.Bytes())
		}
		want.SetUint64(uint64(i * i))
		if dst[1].Equal(want) != 1 {
			t.Errorf("gather(%d).y = %x, want %x", i, dst[1].Bytes(), want.Bytes())
		}
	}
}

func TestGatherRejectsOutOfRange(t *testing.T) {
	ctx := field.P256()
	entries := []Entry{{ctx.NewElement()}}
	tbl := Scatter(entries, 1)
	dst := Entry{ctx.NewElement()}
	if err := tbl.Gather(dst, -1); err == nil {
		t.Error("expected error for negative index")
	}
	if err := tbl.Gather(dst, 1); err == nil {
		t.Error("expected error for index == len")
	}
}

func TestScatterPermutesPhysicalOrder(t *testing.T) {
	ctx := field.P256()
	entries := make([]Entry, 8)
	for i := range entries {
		entries[i] = Entry{ctx.NewElement().SetUint64(uint64(i))}
	}
	a := Scatter(entries, 1)
	b := Scatter(entries, 2)
	samePhysicalOrder := true
	for i := range a.perm {
		if a.perm[i] != b.perm[i] {
			samePhysicalOrder = false
		}
	}
	if samePhysicalOrder {
		t.Error("different seeds produced identical physical layouts")
	}
}
