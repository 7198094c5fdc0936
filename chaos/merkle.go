// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaos

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// HashLength is the size of a commitment or Merkle root.
const HashLength = 32

const (
	leafContext      = "nyxanic zk-disorder leaf v1"
	nodeContext      = "nyxanic zk-disorder node v1"
	challengeContext = "nyxanic zk-disorder challenge v1"
)

// Hash is a commitment or Merkle root.
type Hash [HashLength]byte

// LeafHash commits to one cut-and-choose variant.
func LeafHash(index uint32, key, iv, plaintext, ciphertext Block) Hash {
	var buf [4 + 4*BlockWords*8]byte
	binary.LittleEndian.PutUint32(buf[0:], index)
	off := 4
	for _, b := range [...]Block{key, iv, plaintext, ciphertext} {
		for _, w := range b {
			binary.LittleEndian.PutUint64(buf[off:], w)
			off += 8
		}
	}

	h := blake3.NewDeriveKey(leafContext)
	h.Write(buf[:])
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

func nodeHash(left, right Hash) Hash {
	h := blake3.NewDeriveKey(nodeContext)
	h.Write(left[:])
	h.Write(right[:])
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

// MerkleRoot computes the root over [leaves]. Levels are padded to a power of
// two by repeating the last leaf. The root of no leaves is the zero hash.
func MerkleRoot(leaves []Hash) Hash {
	if len(leaves) == 0 {
		return Hash{}
	}

	level := make([]Hash, len(leaves))
	copy(level, leaves)
	for len(level)&(len(level)-1) != 0 {
		level = append(level, level[len(level)-1])
	}

	for len(level) > 1 {
		next := make([]Hash, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			next = append(next, nodeHash(level[i], level[i+1]))
		}
		level = next
	}
	return level[0]
}
