// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "math/big"

// genericElement is a field.Element for any a = -3 curve that does not
// have a dedicated fiat-crypto backend. It is backed by math/big, so
// unlike p256Element its running time depends on operand magnitude —
// no pack example ships a constant-time big-integer library that
// accepts an arbitrary runtime modulus (fiat-crypto is generated per
// fixed prime at compile time), so this is the documented boundary
// where the generic path trades hardening for modulus flexibility; see
// DESIGN.md.
type genericElement struct {
	ctx *Context
	v   big.Int
}

func newGenericContext(modulus []byte) (*Context, error) {
	if len(modulus) == 0 {
		return nil, ErrNotEnoughData
	}
	m := new(big.Int).SetBytes(modulus)
	if m.Sign() <= 0 {
		return nil, ErrValue
	}
	ctx := &Context{
		class:   ClassGeneric,
		byteLen: len(modulus),
		modulus: m,
	}
	ctx.newZero = func() Element { return &genericElement{ctx: ctx} }
	ctx.fromBytes = func(b []byte) (Element, error) {
		e := &genericElement{ctx: ctx}
		return e.SetBytes(b)
	}
	return ctx, nil
}

// NewGenericContext returns a Context for an arbitrary a = -3 curve's
// prime modulus, given as a big-endian byte string. It is used for
// every curve other than NIST P-256.
func NewGenericContext(modulus []byte) (*Context, error) {
	return newGenericContext(modulus)
}

func (v *genericElement) reduce() {
	v.v.Mod(&v.v, v.ctx.modulus)
}

func (v *genericElement) Set(a Element) Element {
	o := a.(*genericElement)
	v.ctx = o.ctx
	v.v.Set(&o.v)
	return v
}

func (v *genericElement) SetUint64(x uint64) Element {
	v.v.SetUint64(x)
	v.reduce()
	return v
}

func (v *genericElement) SetBytes(x []byte) (Element, error) {
	if len(x) > v.ctx.byteLen {
		return nil, ErrNotEnoughData
	}
	v.v.SetBytes(x)
	v.reduce()
	return v, nil
}

func (v *genericElement) Bytes() []byte {
	out := make([]byte, v.ctx.byteLen)
	b := v.v.Bytes()
	copy(out[len(out)-len(b):], b)
	return out
}

func (v *genericElement) Add(a, b Element) Element {
	v.ctx = a.(*genericElement).ctx
	v.v.Add(&a.(*genericElement).v, &b.(*genericElement).v)
	v.reduce()
	return v
}

func (v *genericElement) Subtract(a, b Element) Element {
	v.ctx = a.(*genericElement).ctx
	v.v.Sub(&a.(*genericElement).v, &b.(*genericElement).v)
	v.reduce()
	return v
}

func (v *genericElement) Negate(a Element) Element {
	v.ctx = a.(*genericElement).ctx
	v.v.Neg(&a.(*genericElement).v)
	v.reduce()
	return v
}

func (v *genericElement) Multiply(a, b Element) Element {
	v.ctx = a.(*genericElement).ctx
	v.v.Mul(&a.(*genericElement).v, &b.(*genericElement).v)
	v.reduce()
	return v
}

func (v *genericElement) Square(a Element) Element {
	return v.Multiply(a, a)
}

func (v *genericElement) Invert(z Element) Element {
	o := z.(*genericElement)
	v.ctx = o.ctx
	if o.v.Sign() == 0 {
		v.v.SetUint64(0)
		return v
	}
	v.v.ModInverse(&o.v, o.ctx.modulus)
	return v
}

func (v *genericElement) Select(a, b Element, cond int) Element {
	if cond == 1 {
		return v.Set(a)
	}
	return v.Set(b)
}

func (v *genericElement) CondSwap(u Element, cond int) {
	if cond == 1 {
		o := u.(*genericElement)
		v.v, o.v = o.v, v.v
	}
}

func (v *genericElement) IsZero() int {
	if v.v.Sign() == 0 {
		return 1
	}
	return 0
}

func (v *genericElement) IsOne() int {
	if v.v.Cmp(big.NewInt(1)) == 0 {
		return 1
	}
	return 0
}

func (v *genericElement) Equal(u Element) int {
	if v.v.Cmp(&u.(*genericElement).v) == 0 {
		return 1
	}
	return 0
}
