// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import "testing"

func collect(it *Iterator) []int {
	var out []int
	for {
		d, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, d)
	}
	return out
}

func TestLRSingleByteNibbles(t *testing.T) {
	it := NewLR(4, []byte{0xAB})
	got := collect(it)
	want := []int{0xA, 0xB}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("digit %d = %x, want %x", i, got[i], want[i])
		}
	}
}

func TestRLSingleByteNibbles(t *testing.T) {
	it := NewRL(4, []byte{0xAB})
	got := collect(it)
	want := []int{0xB, 0xA}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("digit %d = %x, want %x", i, got[i], want[i])
		}
	}
}

func TestLeadingZeroBytesSkipped(t *testing.T) {
	withZeros := NewLR(4, []byte{0x00, 0x00, 0xAB})
	without := NewLR(4, []byte{0xAB})
	if withZeros.Windows() != without.Windows() {
		t.Fatalf("Windows() = %d, want %d", withZeros.Windows(), without.Windows())
	}
	gotA, gotB := collect(withZeros), collect(without)
	for i := range gotA {
		if gotA[i] != gotB[i] {
			t.Errorf("digit %d differs: %x vs %x", i, gotA[i], gotB[i])
		}
	}
}

func TestZeroScalarYieldsOneZeroWindow(t *testing.T) {
	it := NewLR(4, []byte{0x00})
	got := collect(it)
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("got %v, want [0]", got)
	}
}

func TestWindowsMatchesCeilDivision(t *testing.T) {
	it := NewLR(4, []byte{0x01, 0x23, 0x45})
	if it.Windows() != 6 {
		t.Errorf("Windows() = %d, want 6", it.Windows())
	}
}
