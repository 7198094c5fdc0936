// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package chaos implements the hyperchaotic primitives behind the Disorder
// gateway: a keyed 128-bit block cipher whose round function iterates a
// discretized skew-tent map, and a cut-and-choose trace proof over it.
package chaos

import (
	"encoding/binary"
	"math"
	"math/bits"

	"github.com/zeebo/blake3"
)

// BlockWords is the number of 64-bit words in a key, IV or block.
const BlockWords = 2

// Cipher parameters
const (
	Rounds         = 16
	TentIterations = 3

	keyScheduleContext = "nyxanic fract-cipher v1"

	// breakpointFloor keeps every tent breakpoint inside [2^62, 3*2^62).
	breakpointFloor = uint64(1) << 62
	mixMultiplier   = 0x9e3779b97f4a7c15
)

// Block is a 128-bit value stored as two words, word 0 first. Keys and IVs use
// the same representation.
type Block [BlockWords]uint64

// FractCipher is the ephemeral state derived from a key and IV. It is never
// mutated after New returns, so one value may serve any number of blocks.
type FractCipher struct {
	roundKeys   [Rounds]uint64
	breakpoints [Rounds]uint64
	whitenIn    Block
	whitenOut   Block
}

// New derives the cipher state for (key, iv).
func New(key, iv Block) *FractCipher {
	var seed [4 * 8]byte
	binary.LittleEndian.PutUint64(seed[0:], key[0])
	binary.LittleEndian.PutUint64(seed[8:], key[1])
	binary.LittleEndian.PutUint64(seed[16:], iv[0])
	binary.LittleEndian.PutUint64(seed[24:], iv[1])

	h := blake3.NewDeriveKey(keyScheduleContext)
	h.Write(seed[:])

	var stream [(2*Rounds + 2*BlockWords) * 8]byte
	h.Digest().Read(stream[:])

	c := &FractCipher{}
	off := 0
	next := func() uint64 {
		v := binary.LittleEndian.Uint64(stream[off:])
		off += 8
		return v
	}
	for i := 0; i < Rounds; i++ {
		c.roundKeys[i] = next()
		c.breakpoints[i] = breakpointFloor + next()>>1
	}
	c.whitenIn = Block{next(), next()}
	c.whitenOut = Block{next(), next()}
	return c
}

// Encrypt applies the forward transform to one block.
func (c *FractCipher) Encrypt(plaintext Block) Block {
	l := plaintext[0] ^ c.whitenIn[0]
	r := plaintext[1] ^ c.whitenIn[1]
	for i := 0; i < Rounds; i++ {
		l, r = r, l^c.round(r, i)
	}
	return Block{l ^ c.whitenOut[0], r ^ c.whitenOut[1]}
}

// Decrypt applies the inverse transform to one block.
func (c *FractCipher) Decrypt(ciphertext Block) Block {
	l := ciphertext[0] ^ c.whitenOut[0]
	r := ciphertext[1] ^ c.whitenOut[1]
	for i := Rounds - 1; i >= 0; i-- {
		l, r = r^c.round(l, i), l
	}
	return Block{l ^ c.whitenIn[0], r ^ c.whitenIn[1]}
}

func (c *FractCipher) round(x uint64, i int) uint64 {
	v := x ^ c.roundKeys[i]
	for j := 0; j < TentIterations; j++ {
		v = tent(v, c.breakpoints[i])
		v ^= bits.RotateLeft64(v, 23)
		v = v*mixMultiplier + c.roundKeys[i]
	}
	return v
}

// tent is the skew-tent map on [0, 2^64) with peak at p:
//
//	x < p:  x / p
//	x >= p: (1 - x) / (1 - p)
//
// scaled back to the full word range. p must lie strictly inside the range.
func tent(x, p uint64) uint64 {
	if x < p {
		q, _ := bits.Div64(x, 0, p)
		return q
	}
	r, d := ^x, ^p
	if r >= d {
		return math.MaxUint64
	}
	q, _ := bits.Div64(r, 0, d)
	return q
}
