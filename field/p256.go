// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"crypto/subtle"
	"math/big"

	fiat "github.com/mit-plv/fiat-crypto/fiat-go/64/p256"
)

// P256ByteLen is the canonical big-endian encoding length of a P-256
// field element.
const P256ByteLen = 32

// p256Modulus is 2^256 - 2^224 + 2^192 + 2^96 - 1, the NIST P-256 prime.
var p256Modulus, _ = new(big.Int).SetString(
	"ffffffff00000001000000000000000000000000ffffffffffffffffffffffff", 16)

// p256Element is a field.Element backed by the fiat-crypto generated
// P-256 arithmetic, mirroring the teacher's Element type in
// filippo.io/edwards25519/field, generalized from the unsaturated
// radix-51 curve25519 representation to fiat-crypto's saturated,
// explicit Montgomery-domain P-256 representation.
type p256Element struct {
	limbs fiat.TightFieldElement
}

func newP256Element() Element { return new(p256Element) }

// P256 returns the Context bound to the NIST P-256 prime field.
func P256() *Context {
	return &Context{
		class:   ClassP256,
		byteLen: P256ByteLen,
		modulus: p256Modulus,
		newZero: newP256Element,
		fromBytes: func(b []byte) (Element, error) {
			return new(p256Element).SetBytes(b)
		},
	}
}

func (v *p256Element) Set(a Element) Element {
	o := a.(*p256Element)
	v.limbs = o.limbs
	return v
}

func (v *p256Element) SetUint64(x uint64) Element {
	var nonMont fiat.NonMontgomeryDomainFieldElement
	nonMont[0] = x
	fiat.ToMontgomery(&v.limbs, &nonMont)
	return v
}

// SetBytes decodes x as a big-endian integer, reducing modulo p if it
// is not already in [0, p), and returns v. It returns
// field.ErrNotEnoughData if x is longer than the field's byte length.
func (v *p256Element) SetBytes(x []byte) (Element, error) {
	if len(x) > P256ByteLen {
		return nil, ErrNotEnoughData
	}
	var buf [P256ByteLen]byte
	// fiat's generated FromBytes expects the little-endian limb-packed
	// encoding; this adapter's public contract is big-endian (spec §6),
	// so the bytes are reversed at the boundary.
	off := P256ByteLen - len(x)
	for i, b := range x {
		buf[P256ByteLen-1-off-i] = b
	}
	var nonMont fiat.NonMontgomeryDomainFieldElement
	fiat.FromBytes(&nonMont, &buf)
	fiat.ToMontgomery(&v.limbs, &nonMont)
	return v, nil
}

func (v *p256Element) Bytes() []byte {
	var nonMont fiat.NonMontgomeryDomainFieldElement
	fiat.FromMontgomery(&nonMont, &v.limbs)
	var buf [P256ByteLen]byte
	fiat.ToBytes(&buf, &nonMont)
	out := make([]byte, P256ByteLen)
	for i, b := range buf {
		out[P256ByteLen-1-i] = b
	}
	return out
}

func (v *p256Element) Add(a, b Element) Element {
	fiat.Add(&v.limbs, &a.(*p256Element).limbs, &b.(*p256Element).limbs)
	return v
}

func (v *p256Element) Subtract(a, b Element) Element {
	fiat.Sub(&v.limbs, &a.(*p256Element).limbs, &b.(*p256Element).limbs)
	return v
}

func (v *p256Element) Negate(a Element) Element {
	fiat.Opp(&v.limbs, &a.(*p256Element).limbs)
	return v
}

func (v *p256Element) Multiply(a, b Element) Element {
	fiat.Mul(&v.limbs, &a.(*p256Element).limbs, &b.(*p256Element).limbs)
	return v
}

func (v *p256Element) Square(a Element) Element {
	fiat.Square(&v.limbs, &a.(*p256Element).limbs)
	return v
}

func (v *p256Element) Invert(z Element) Element {
	return invertFermat(P256(), v, z)
}

func (v *p256Element) Select(a, b Element, cond int) Element {
	var out fiat.TightFieldElement
	fiat.Selectznz((*[4]uint64)(&out), fiat.Uint1(cond),
		(*[4]uint64)(&b.(*p256Element).limbs), (*[4]uint64)(&a.(*p256Element).limbs))
	v.limbs = out
	return v
}

func (v *p256Element) CondSwap(u Element, cond int) {
	o := u.(*p256Element)
	a, b := v.limbs, o.limbs
	var sv, su fiat.TightFieldElement
	fiat.Selectznz((*[4]uint64)(&sv), fiat.Uint1(cond), (*[4]uint64)(&a), (*[4]uint64)(&b))
	fiat.Selectznz((*[4]uint64)(&su), fiat.Uint1(cond), (*[4]uint64)(&b), (*[4]uint64)(&a))
	v.limbs, o.limbs = sv, su
}

func (v *p256Element) IsZero() int {
	return subtle.ConstantTimeCompare(v.Bytes(), make([]byte, P256ByteLen))
}

func (v *p256Element) IsOne() int {
	var one p256Element
	one.SetUint64(1)
	return v.Equal(&one)
}

// Equal returns 1 if v and u are equal, and 0 otherwise.
func (v *p256Element) Equal(u Element) int {
	a, b := v.Bytes(), u.(*p256Element).Bytes()
	return subtle.ConstantTimeCompare(a, b)
}
