// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field implements arithmetic modulo 2^255-19, the prime field that
// Curve25519 and X25519 operate over.
package field

import (
	"crypto/subtle"
	"encoding/binary"

	"codeberg.org/DeviPrasad/c25519/internal/ctbytes"
)

// Element represents an element of the field GF(2^255-19). An element t
// represents the integer
//
//	t.l0 + t.l1*2^51 + t.l2*2^102 + t.l3*2^153 + t.l4*2^204
//
// Between operations every limb is expected to fit in 52 bits, except l0,
// which can be up to 2^51 + 2^13*19 right after carry propagation folds the
// top limb's overflow back in. The zero value is a valid zero element.
type Element struct {
	l0, l1, l2, l3, l4 uint64
}

const maskLow51Bits uint64 = 1<<51 - 1

var (
	feZero = &Element{0, 0, 0, 0, 0}
	feOne  = &Element{1, 0, 0, 0, 0}
)

// Zero sets v = 0, and returns v.
func (v *Element) Zero() *Element {
	*v = *feZero
	return v
}

// One sets v = 1, and returns v.
func (v *Element) One() *Element {
	*v = *feOne
	return v
}

// Set sets v = a, and returns v.
func (v *Element) Set(a *Element) *Element {
	*v = *a
	return v
}

// carryPropagate brings every limb below 2^51, except l0 which may carry an
// extra 19*c term from folding l4's overflow back per the reduction
// identity 2^255 = 19 (mod p). It is split into two helpers, following the
// grain of the original port, so each stays small enough to inline.
func (v *Element) carryPropagate1() *Element {
	v.l1 += v.l0 >> 51
	v.l0 &= maskLow51Bits
	v.l2 += v.l1 >> 51
	v.l1 &= maskLow51Bits
	v.l3 += v.l2 >> 51
	v.l2 &= maskLow51Bits
	return v
}

func (v *Element) carryPropagate2() *Element {
	v.l4 += v.l3 >> 51
	v.l3 &= maskLow51Bits
	v.l0 += (v.l4 >> 51) * 19
	v.l4 &= maskLow51Bits
	return v
}

// Reduce sets v to the canonical representative of u mod p, with every limb
// below 2^51, and returns v.
func (v *Element) Reduce(u *Element) *Element {
	*v = *u
	v.carryPropagate1().carryPropagate2()

	// After light reduction v < 2^255 + 2^13*19, but a canonical value needs
	// v < 2^255 - 19. c is the carry that adding 19 to v would produce if it
	// propagated through all five limbs: 0 if v < 2^255-19, 1 otherwise.
	c := (v.l0 + 19) >> 51
	c = (v.l1 + c) >> 51
	c = (v.l2 + c) >> 51
	c = (v.l3 + c) >> 51
	c = (v.l4 + c) >> 51

	v.l0 += 19 * c

	v.l1 += v.l0 >> 51
	v.l0 &= maskLow51Bits
	v.l2 += v.l1 >> 51
	v.l1 &= maskLow51Bits
	v.l3 += v.l2 >> 51
	v.l2 &= maskLow51Bits
	v.l4 += v.l3 >> 51
	v.l3 &= maskLow51Bits
	v.l4 &= maskLow51Bits

	return v
}

// Add sets v = a + b, and returns v.
func (v *Element) Add(a, b *Element) *Element {
	v.l0 = a.l0 + b.l0
	v.l1 = a.l1 + b.l1
	v.l2 = a.l2 + b.l2
	v.l3 = a.l3 + b.l3
	v.l4 = a.l4 + b.l4
	return v.carryPropagate1().carryPropagate2()
}

// Subtract sets v = a - b, and returns v.
func (v *Element) Subtract(a, b *Element) *Element {
	// Bias a by 2p before subtracting b, so each limb stays non-negative
	// regardless of b's limbs (each at most 2^52), then carry-propagate.
	v.l0 = (a.l0 + 0xFFFFFFFFFFFDA) - b.l0
	v.l1 = (a.l1 + 0xFFFFFFFFFFFFE) - b.l1
	v.l2 = (a.l2 + 0xFFFFFFFFFFFFE) - b.l2
	v.l3 = (a.l3 + 0xFFFFFFFFFFFFE) - b.l3
	v.l4 = (a.l4 + 0xFFFFFFFFFFFFE) - b.l4
	return v.carryPropagate1().carryPropagate2()
}

// Negate sets v = -a, and returns v.
func (v *Element) Negate(a *Element) *Element {
	return v.Subtract(feZero, a)
}

// SetBytes sets v to x, interpreted as a 32-byte little-endian encoding. If
// x is not 32 bytes long, SetBytes panics: a wrong-length buffer at an API
// boundary is a programmer error, not a recoverable one.
//
// Consistent with RFC 7748, the most significant bit of the last byte is
// ignored, and non-canonical values in [2^255-19, 2^255-1] are accepted
// without error.
func (v *Element) SetBytes(x []byte) *Element {
	if len(x) != 32 {
		panic("field: invalid field element input size")
	}

	// Bits 0:51 (bytes 0:8, bits 0:64, shift 0, mask 51).
	v.l0 = binary.LittleEndian.Uint64(x[0:8]) & maskLow51Bits
	// Bits 51:102 (bytes 6:14, bits 48:112, shift 3, mask 51).
	v.l1 = (binary.LittleEndian.Uint64(x[6:14]) >> 3) & maskLow51Bits
	// Bits 102:153 (bytes 12:20, bits 96:160, shift 6, mask 51).
	v.l2 = (binary.LittleEndian.Uint64(x[12:20]) >> 6) & maskLow51Bits
	// Bits 153:204 (bytes 19:27, bits 152:216, shift 1, mask 51).
	v.l3 = (binary.LittleEndian.Uint64(x[19:27]) >> 1) & maskLow51Bits
	// Bits 204:255 (bytes 24:32, bits 192:256, shift 12, mask 51).
	// Reading bytes 24:32 rather than 25:33 avoids a 33rd-byte overread.
	v.l4 = (binary.LittleEndian.Uint64(x[24:32]) >> 12) & maskLow51Bits

	return v
}

// Bytes returns the canonical 32-byte little-endian encoding of v.
func (v *Element) Bytes() []byte {
	var out [32]byte
	v.putBytes(out[:])
	return out[:]
}

// putBytes writes the canonical 32-byte little-endian encoding of v into b,
// which must be exactly 32 bytes long.
func (v *Element) putBytes(b []byte) {
	if len(b) != 32 {
		panic("field: invalid output buffer size")
	}
	t := new(Element).Reduce(v)

	for i := range b {
		b[i] = 0
	}

	var buf [8]byte
	limbs := [5]uint64{t.l0, t.l1, t.l2, t.l3, t.l4}
	for i, l := range limbs {
		bitOffset := i * 51
		binary.LittleEndian.PutUint64(buf[:], l<<uint(bitOffset%8))
		for j, bb := range buf {
			off := bitOffset/8 + j
			if off >= len(b) {
				break
			}
			b[off] |= bb
		}
	}
}

// Equal returns 1 if v and u are equal, and 0 otherwise.
func (v *Element) Equal(u *Element) int {
	sv, su := v.Bytes(), u.Bytes()
	if ctbytes.Equal(sv, su) {
		return 1
	}
	return 0
}

// IsZero reports whether v's canonical representative is zero.
func (v *Element) IsZero() bool {
	return subtle.ConstantTimeCompare(v.Bytes(), feZero.Bytes()) == 1
}

const mask64Bits uint64 = 1<<64 - 1

// Select sets v to a if cond == 1, and to b if cond == 0. cond must be 0 or
// 1; any other value is undefined behavior.
func (v *Element) Select(a, b *Element, cond int) *Element {
	m := uint64(cond) * mask64Bits
	v.l0 = (m & a.l0) | (^m & b.l0)
	v.l1 = (m & a.l1) | (^m & b.l1)
	v.l2 = (m & a.l2) | (^m & b.l2)
	v.l3 = (m & a.l3) | (^m & b.l3)
	v.l4 = (m & a.l4) | (^m & b.l4)
	return v
}

// Swap exchanges v and u if cond == 1, and leaves both unchanged if cond ==
// 0. cond must be 0 or 1.
func (v *Element) Swap(u *Element, cond int) {
	m := uint64(cond) * mask64Bits
	t := m & (v.l0 ^ u.l0)
	v.l0 ^= t
	u.l0 ^= t
	t = m & (v.l1 ^ u.l1)
	v.l1 ^= t
	u.l1 ^= t
	t = m & (v.l2 ^ u.l2)
	v.l2 ^= t
	u.l2 ^= t
	t = m & (v.l3 ^ u.l3)
	v.l3 ^= t
	u.l3 ^= t
	t = m & (v.l4 ^ u.l4)
	v.l4 ^= t
	u.l4 ^= t
}

// Invert sets v = 1/z mod p, and returns v.
//
// If z == 0, Invert returns v = 0.
func (v *Element) Invert(z *Element) *Element {
	// Inversion is implemented as exponentiation with exponent p-2. It uses
	// the same chain of 254 squarings and 11 multiplications as [Curve25519].
	var z2, z9, z11, z2_5_0, z2_10_0, z2_20_0, z2_50_0, z2_100_0, t Element

	z2.Square(z)             // 2
	t.Square(&z2)            // 4
	t.Square(&t)             // 8
	z9.Multiply(&t, z)       // 9
	z11.Multiply(&z9, &z2)   // 11
	t.Square(&z11)           // 22
	z2_5_0.Multiply(&t, &z9) // 31 = 2^5 - 2^0

	t.Square(&z2_5_0) // 2^6 - 2^1
	for i := 0; i < 4; i++ {
		t.Square(&t) // 2^10 - 2^5
	}
	z2_10_0.Multiply(&t, &z2_5_0) // 2^10 - 2^0

	t.Square(&z2_10_0) // 2^11 - 2^1
	for i := 0; i < 9; i++ {
		t.Square(&t) // 2^20 - 2^10
	}
	z2_20_0.Multiply(&t, &z2_10_0) // 2^20 - 2^0

	t.Square(&z2_20_0) // 2^21 - 2^1
	for i := 0; i < 19; i++ {
		t.Square(&t) // 2^40 - 2^20
	}
	t.Multiply(&t, &z2_20_0) // 2^40 - 2^0

	t.Square(&t) // 2^41 - 2^1
	for i := 0; i < 9; i++ {
		t.Square(&t) // 2^50 - 2^10
	}
	z2_50_0.Multiply(&t, &z2_10_0) // 2^50 - 2^0

	t.Square(&z2_50_0) // 2^51 - 2^1
	for i := 0; i < 49; i++ {
		t.Square(&t) // 2^100 - 2^50
	}
	z2_100_0.Multiply(&t, &z2_50_0) // 2^100 - 2^0

	t.Square(&z2_100_0) // 2^101 - 2^1
	for i := 0; i < 99; i++ {
		t.Square(&t) // 2^200 - 2^100
	}
	t.Multiply(&t, &z2_100_0) // 2^200 - 2^0

	t.Square(&t) // 2^201 - 2^1
	for i := 0; i < 49; i++ {
		t.Square(&t) // 2^250 - 2^50
	}
	t.Multiply(&t, &z2_50_0) // 2^250 - 2^0

	t.Square(&t) // 2^251 - 2^1
	t.Square(&t) // 2^252 - 2^2
	t.Square(&t) // 2^253 - 2^3
	t.Square(&t) // 2^254 - 2^4
	t.Square(&t) // 2^255 - 2^5

	return v.Multiply(&t, &z11) // 2^255 - 21
}
