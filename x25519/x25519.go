// Copyright (c) 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package x25519 implements the X25519 Diffie-Hellman function, as
// specified in RFC 7748, using the Montgomery ladder over Curve25519.
package x25519

import (
	"errors"

	"codeberg.org/DeviPrasad/c25519/field"
	"codeberg.org/DeviPrasad/c25519/internal/ctbytes"
)

// ScalarSize is the size, in bytes, of a scalar or point input to
// ScalarMult, and of a PrivateKey or PublicKey.
const ScalarSize = 32

// ladderConstant is (486662+2)/4, the Montgomery curve coefficient
// folded into the differential addition-and-double formula.
const ladderConstant = 121666

// basePoint is the X25519 base point u=9, encoded little-endian.
var basePoint = [ScalarSize]byte{9}

// clamp applies the RFC 7748 clamping rules to scalar, returning a fresh
// array so the caller's input is left untouched.
func clamp(scalar []byte) [ScalarSize]byte {
	var e [ScalarSize]byte
	copy(e[:], scalar)
	e[0] &= 248
	e[31] &= 127
	e[31] |= 64
	return e
}

// ScalarMult sets dst to the result of the X25519 scalar multiplication of
// scalar and point, and returns dst. Both scalar and point must be
// ScalarSize bytes; dst must not overlap scalar or point.
//
// scalar is clamped internally per RFC 7748 §5, so callers need not clamp it
// themselves; clamping is idempotent, so a pre-clamped scalar gives the same
// result. point is used exactly as given, including non-canonical and
// low-order encodings; ScalarMult never rejects an input, by design, since
// rejecting low-order points belongs to the ECDH layer (see (*PrivateKey).ECDH),
// not to the primitive itself.
func ScalarMult(dst, scalar, point *[ScalarSize]byte) *[ScalarSize]byte {
	e := clamp(scalar[:])

	x1 := new(field.Element).SetBytes(point[:])
	x2 := new(field.Element).One()
	x3 := new(field.Element).Set(x1)
	z2 := new(field.Element).Zero()
	z3 := new(field.Element).One()

	var t0, t1 field.Element
	swap := 0
	for pos := 254; pos >= 0; pos-- {
		b := int(e[pos/8]>>uint(pos&7)) & 1
		swap ^= b
		x2.Swap(x3, swap)
		z2.Swap(z3, swap)
		swap = b

		t0.Subtract(x3, z3)
		t1.Subtract(x2, z2)
		x2.Add(x2, z2)
		z2.Add(x3, z3)
		z3.Multiply(&t0, x2)
		z2.Multiply(z2, &t1)
		t0.Square(&t1)
		t1.Square(x2)
		x3.Add(z3, z2)
		z2.Subtract(z3, z2)
		x2.Multiply(&t1, &t0)
		t1.Subtract(&t1, &t0)
		z2.Square(z2)
		z3.Mult32(&t1, ladderConstant)
		x3.Square(x3)
		t0.Add(&t0, z3)
		z3.Multiply(x1, z2)
		z2.Multiply(&t1, &t0)
	}
	x2.Swap(x3, swap)
	z2.Swap(z3, swap)

	z2.Invert(z2)
	x2.Multiply(x2, z2)

	copy(dst[:], x2.Bytes())
	return dst
}

// PrivateKey is an X25519 private scalar. The zero value is not a valid
// PrivateKey; use NewPrivateKey.
type PrivateKey struct {
	scalar [ScalarSize]byte
}

// NewPrivateKey constructs a PrivateKey from 32 bytes of caller-supplied
// randomness. Generating that randomness is the caller's responsibility:
// NewPrivateKey performs no randomness generation of its own.
//
// NewPrivateKey does not clamp key; clamping is applied internally on every
// use, matching RFC 7748 §5's requirement that the clamped and unclamped
// forms of a key are both acceptable inputs to implementations.
//
// A wrong-length or all-zero key is a programmer error, not a condition
// that can arise from untrusted peer input, so NewPrivateKey panics rather
// than returning an error: RFC 7748 clamping turns the all-zero scalar into
// a valid-looking but degenerate key, and callers are expected to construct
// private keys from locally generated randomness, never from the wire.
func NewPrivateKey(key []byte) *PrivateKey {
	if len(key) != ScalarSize {
		panic("x25519: invalid private key size")
	}
	if ctbytes.IsZero(key) {
		panic("x25519: private key is all-zero")
	}
	p := new(PrivateKey)
	copy(p.scalar[:], key)
	return p
}

// Bytes returns the raw, unclamped 32-byte private scalar.
func (p *PrivateKey) Bytes() []byte {
	out := p.scalar
	return out[:]
}

// PublicKey derives the public key corresponding to p, computing
// ScalarMult(p, basePoint).
func (p *PrivateKey) PublicKey() *PublicKey {
	pub := new(PublicKey)
	ScalarMult(&pub.point, &p.scalar, &basePoint)
	if ctbytes.IsZero(pub.point[:]) {
		panic("x25519: internal error: derived public key is all-zero")
	}
	return pub
}

// ECDH computes the X25519 shared secret between p and peer, rejecting the
// result if it is the all-zero identity: per RFC 7748 §6.1, that only
// happens when peer encodes a point of small order, so a protocol that
// doesn't explicitly screen for such points must check the output instead.
func (p *PrivateKey) ECDH(peer *PublicKey) ([]byte, error) {
	var shared [ScalarSize]byte
	ScalarMult(&shared, &p.scalar, &peer.point)
	if ctbytes.IsZero(shared[:]) {
		return nil, errors.New("x25519: low-order point produced an all-zero shared secret")
	}
	return shared[:], nil
}

// PublicKey is an X25519 public point.
type PublicKey struct {
	point [ScalarSize]byte
}

// NewPublicKey constructs a PublicKey from its 32-byte wire encoding. The
// encoding is stored without validation, including non-canonical or
// low-order values; RFC 7748 leaves their rejection to the caller's
// protocol, via (*PrivateKey).ECDH's all-zero-output check. A wrong-length
// buffer is a precondition violation, so NewPublicKey panics rather than
// returning an error.
func NewPublicKey(key []byte) *PublicKey {
	if len(key) != ScalarSize {
		panic("x25519: invalid public key size")
	}
	p := new(PublicKey)
	copy(p.point[:], key)
	return p
}

// Bytes returns the 32-byte wire encoding of the public key.
func (p *PublicKey) Bytes() []byte {
	out := p.point
	return out[:]
}
