// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package disorder

import (
	"encoding/binary"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"

	"github.com/nyxanic/disorderd/chaos"
)

func seededReader(seed string) io.Reader {
	h := blake3.New()
	h.Write([]byte(seed))
	return h.Digest()
}

func mustProve(t *testing.T, seed string, variants int) *chaos.ZKProof {
	t.Helper()
	proof, err := chaos.Prove(seededReader(seed), variants)
	require.NoError(t, err)
	return proof
}

// forgedTrace returns an 8-variant trace whose variant 0 commits to a
// ciphertext the cipher does not produce, with variant 0 among the opened
// variants. Every commitment, the root and the challenge are consistent.
func forgedTrace(t *testing.T) *chaos.ZKProof {
	t.Helper()
	const n = 8
	for seed := 0; seed < 64; seed++ {
		r := seededReader(fmt.Sprintf("forged-trace-%d", seed))
		all := make([]chaos.Opening, n)
		commitments := make([]chaos.Hash, n)
		for i := range all {
			var buf [6 * 8]byte
			_, err := io.ReadFull(r, buf[:])
			require.NoError(t, err)
			o := chaos.Opening{
				Index:     uint32(i),
				Key:       chaos.Block{binary.LittleEndian.Uint64(buf[0:]), binary.LittleEndian.Uint64(buf[8:])},
				IV:        chaos.Block{binary.LittleEndian.Uint64(buf[16:]), binary.LittleEndian.Uint64(buf[24:])},
				Plaintext: chaos.Block{binary.LittleEndian.Uint64(buf[32:]), binary.LittleEndian.Uint64(buf[40:])},
			}
			o.Ciphertext = chaos.New(o.Key, o.IV).Encrypt(o.Plaintext)
			if i == 0 {
				o.Ciphertext[1] ^= 1
			}
			all[i] = o
			commitments[i] = o.Commitment()
		}

		root := chaos.MerkleRoot(commitments)
		challenge := chaos.Challenge(root, n)
		if challenge[0] != 0 {
			continue
		}
		openings := make([]chaos.Opening, len(challenge))
		for i, idx := range challenge {
			openings[i] = all[idx]
		}
		return &chaos.ZKProof{MerkleRoot: root, Commitments: commitments, Openings: openings}
	}
	t.Fatal("no seed challenged the forged variant")
	return nil
}

// recordingRecorder keeps every record for inspection.
type recordingRecorder struct {
	messages []string
}

func (r *recordingRecorder) Record(message string) {
	r.messages = append(r.messages, message)
}

// countingVerifier wraps a verdict and counts how often it is consulted.
type countingVerifier struct {
	verdict bool
	calls   int
}

func (v *countingVerifier) Verify(*chaos.ZKProof) bool {
	v.calls++
	return v.verdict
}

func (v *countingVerifier) Root(proof *chaos.ZKProof) chaos.Hash {
	return proof.MerkleRoot
}
