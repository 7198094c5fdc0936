// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaos

import (
	"encoding/binary"
	"math/bits"
	"sort"

	"github.com/zeebo/blake3"
)

// Cut-and-choose bounds. Verification work is linear in the variant count, so
// the upper bound also caps the cost of a single verification.
const (
	MinVariants = 4
	MaxVariants = 64
)

// Opening reveals one committed variant of the trace.
type Opening struct {
	Index      uint32
	Key        Block
	IV         Block
	Plaintext  Block
	Ciphertext Block
}

// Commitment returns the leaf the opening claims to reveal.
func (o *Opening) Commitment() Hash {
	return LeafHash(o.Index, o.Key, o.IV, o.Plaintext, o.Ciphertext)
}

// ZKProof is a hyperchaotic cut-and-choose trace. The prover commits to every
// variant, the challenge derived from MerkleRoot picks half of them, and the
// picked variants are opened.
type ZKProof struct {
	MerkleRoot  Hash
	Commitments []Hash
	Openings    []Opening
}

// Root returns the commitment root the proof attests to.
func (p *ZKProof) Root() Hash {
	return p.MerkleRoot
}

// Verify reports whether the trace is internally consistent: the commitments
// hash to the root, the openings are exactly the challenged variants, and every
// opened variant re-encrypts to its committed ciphertext.
func (p *ZKProof) Verify() bool {
	n := len(p.Commitments)
	if n < MinVariants || n > MaxVariants {
		return false
	}
	if MerkleRoot(p.Commitments) != p.MerkleRoot {
		return false
	}

	challenge := Challenge(p.MerkleRoot, n)
	if len(p.Openings) != len(challenge) {
		return false
	}
	for i := range p.Openings {
		o := &p.Openings[i]
		if o.Index != challenge[i] {
			return false
		}
		if o.Commitment() != p.Commitments[o.Index] {
			return false
		}
		if New(o.Key, o.IV).Encrypt(o.Plaintext) != o.Ciphertext {
			return false
		}
	}
	return true
}

// Challenge derives the n/2 variant indices to open, in ascending order, from
// the commitment root. It draws a partial Fisher-Yates shuffle from a blake3
// XOF, so its cost is fixed for a given n.
func Challenge(root Hash, n int) []uint32 {
	if n <= 0 {
		return nil
	}

	var count [4]byte
	binary.LittleEndian.PutUint32(count[:], uint32(n))
	h := blake3.NewDeriveKey(challengeContext)
	h.Write(root[:])
	h.Write(count[:])
	xof := h.Digest()

	perm := make([]uint32, n)
	for i := range perm {
		perm[i] = uint32(i)
	}

	k := n / 2
	var word [8]byte
	for i := 0; i < k; i++ {
		xof.Read(word[:])
		span := uint64(n - i)
		j, _ := bits.Mul64(binary.LittleEndian.Uint64(word[:]), span)
		perm[i], perm[i+int(j)] = perm[i+int(j)], perm[i]
	}

	picked := perm[:k]
	sort.Slice(picked, func(a, b int) bool { return picked[a] < picked[b] })
	return picked
}
