// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package weierct implements constant-time scalar multiplication for
// short Weierstrass curves y² = x³ - 3x + b over a prime field, with a
// specialised fast path for the NIST P-256 generator.
package weierct

import (
	"bytes"
	"math/big"

	"ct256.dev/weierct/field"
)

// Context binds a curve's modulus, b parameter, and order. It is
// immutable after NewContext/NewP256Context returns and is safe to
// share across goroutines; Points, Workplaces, and protected tables
// built from it are not.
type Context struct {
	fieldCtx  *field.Context
	b         field.Element
	order     *big.Int
	orderLen  int
	class     field.Class
	generator *Point
	tables    *p256Tables
}

// ByteLen returns the field's canonical encoding length in bytes.
func (c *Context) ByteLen() int { return c.fieldCtx.ByteLen() }

// NewContext constructs a curve context for y² = x³ - 3x + b over the
// prime field with the given big-endian modulus, curve parameter b,
// and group order n, each encoded in len bytes. seed scrambles the
// generator tables if modulus identifies NIST P-256; it is otherwise
// unused at construction time (spec §6).
func NewContext(modulus, b, order []byte, length int, seed uint64) (*Context, error) {
	if modulus == nil || b == nil || order == nil {
		return nil, ErrNull
	}
	if length == 0 {
		return nil, ErrNotEnoughData
	}

	if bytes.Equal(trimLeadingZeros(modulus), trimLeadingZeros(p256ModulusBytes)) {
		return newP256Context(b, order, length, seed)
	}

	fc, err := field.NewGenericContext(modulus)
	if err != nil {
		return nil, err
	}
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
		class:    field.ClassGeneric,
	}
	return ctx, nil
}

func trimLeadingZeros(b []byte) []byte {
	i := 0
	for i < len(b) && b[i] == 0 {
		i++
	}
	return b[i:]
}

// NewP256Context returns a Context for the NIST P-256 curve, with its
// generator fast-path table built under seed. The table layout is a
// deterministic function of seed; seed == 0 still permutes the entries.
func NewP256Context(seed uint64) (*Context, error) {
	return newP256Context(p256BBytes, p256NBytes, field.P256ByteLen, seed)
}
