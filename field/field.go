// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field binds the field-arithmetic backends used by the curve
// and point packages to a common Element contract, so the rest of the
// module never has to know whether it is talking to the fiat-crypto
// P-256 backend or the generic math/big backend.
//
// This type works similarly to math/big.Int in that every method takes
// its receiver as the destination, but unlike math/big.Int the zero
// value is not meaningful on its own — elements must come from a
// Context via NewElement, Zero, or One, because every backend needs to
// know its modulus.
package field

import (
	"errors"
	"math/big"
)

// Element is an element of a prime field, in whatever internal
// representation its backend chooses (Montgomery form, for the P-256
// backend; plain math/big residues, for the generic backend).
//
// All arguments and receivers are allowed to alias, exactly as with
// math/big.Int, unless a method says otherwise.
type Element interface {
	// Set sets v = a and returns v.
	Set(a Element) Element
	// SetUint64 sets v = x and returns v.
	SetUint64(x uint64) Element
	// SetBytes sets v to x interpreted as a big-endian integer modulo
	// the field's modulus, and returns v. It returns an error if len(x)
	// exceeds the field's byte length.
	SetBytes(x []byte) (Element, error)
	// Bytes returns the big-endian encoding of v, zero-padded to the
	// field's byte length.
	Bytes() []byte

	Add(a, b Element) Element
	Subtract(a, b Element) Element
	Negate(a Element) Element
	Multiply(a, b Element) Element
	Square(a Element) Element
	// Invert sets v = 1/z if z != 0, and v = 0 if z == 0, and returns v.
	Invert(z Element) Element

	// Select sets v to a if cond == 1, and to b if cond == 0. cond must
	// be 0 or 1.
	Select(a, b Element, cond int) Element
	// CondSwap swaps v and u if cond == 1, and leaves them unchanged if
	// cond == 0. cond must be 0 or 1.
	CondSwap(u Element, cond int)

	IsZero() int
	IsOne() int
	// Equal returns 1 if v == u, and 0 otherwise.
	Equal(u Element) int
}

// Class identifies the modulus an element belongs to, so that the
// scalar-multiplication ladder can pick the generator fast path.
type Class int

const (
	// ClassGeneric covers any a = -3 curve other than the ones with a
	// dedicated backend below.
	ClassGeneric Class = iota
	// ClassP256 is the NIST P-256 modulus, backed by fiat-crypto.
	ClassP256
)

// Context binds a modulus to the backend that implements it. A Context
// is immutable after construction and safe for concurrent use; the
// Elements it produces are not.
type Context struct {
	class     Class
	byteLen   int
	modulus   *big.Int
	newZero   func() Element
	fromBytes func([]byte) (Element, error)
}

// ByteLen returns the field's canonical encoding length in bytes.
func (c *Context) ByteLen() int { return c.byteLen }

// Class reports which backend this Context uses.
func (c *Context) Class() Class { return c.class }

// Modulus returns a copy of the field modulus.
func (c *Context) Modulus() *big.Int { return new(big.Int).Set(c.modulus) }

// NewElement returns a new zero-valued element bound to this field.
func (c *Context) NewElement() Element { return c.newZero() }

// Zero returns a new element set to 0.
func (c *Context) Zero() Element { return c.newZero() }

// One returns a new element set to 1.
func (c *Context) One() Element { return c.newZero().SetUint64(1) }

// ElementFromBytes decodes a big-endian encoding into a new element.
func (c *Context) ElementFromBytes(b []byte) (Element, error) {
	return c.fromBytes(b)
}

var (
	// ErrNotEnoughData is returned when a byte length argument is zero
	// or a byte slice is too short for the operation requested.
	ErrNotEnoughData = errors.New("weierct/field: not enough data")
	// ErrValue is returned when an input value is out of range for the
	// operation requested.
	ErrValue = errors.New("weierct/field: invalid value")
)

// invertFermat computes v = z^(p-2) mod p using a generic square-and-
// multiply exponentiation. The P-256 backend inverts through it; the
// generic backend uses math/big's ModInverse instead.
//
// The exponent p-2 is a public, per-curve constant fixed at Context
// construction time, not a secret scalar, so branching on its bits does
// not violate the constant-time discipline that governs secret-scalar
// dependent code paths elsewhere in this module (see spec §5).
func invertFermat(ctx *Context, v, z Element) Element {
	exp := new(big.Int).Sub(ctx.modulus, big.NewInt(2))

	acc := ctx.One()
	base := ctx.NewElement().Set(z)

	bits := exp.Bytes()
	for _, byteVal := range bits {
		for bit := 7; bit >= 0; bit-- {
			acc.Square(acc)
			if (byteVal>>uint(bit))&1 == 1 {
				acc.Multiply(acc, base)
			}
		}
	}
	return v.Set(acc)
}
