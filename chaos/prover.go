// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaos

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var ErrVariantCount = errors.New("variant count out of range")

// Prove builds a trace over [variants] randomized cipher runs drawn from
// [rand]. Pass crypto/rand.Reader outside of tests.
func Prove(rand io.Reader, variants int) (*ZKProof, error) {
	if variants < MinVariants || variants > MaxVariants {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrVariantCount, variants, MinVariants, MaxVariants)
	}

	all := make([]Opening, variants)
	commitments := make([]Hash, variants)
	var buf [3 * BlockWords * 8]byte
	for i := range all {
		if _, err := io.ReadFull(rand, buf[:]); err != nil {
			return nil, fmt.Errorf("failed to sample variant %d: %w", i, err)
		}
		o := Opening{
			Index:     uint32(i),
			Key:       Block{binary.LittleEndian.Uint64(buf[0:]), binary.LittleEndian.Uint64(buf[8:])},
			IV:        Block{binary.LittleEndian.Uint64(buf[16:]), binary.LittleEndian.Uint64(buf[24:])},
			Plaintext: Block{binary.LittleEndian.Uint64(buf[32:]), binary.LittleEndian.Uint64(buf[40:])},
		}
		o.Ciphertext = New(o.Key, o.IV).Encrypt(o.Plaintext)
		all[i] = o
		commitments[i] = o.Commitment()
	}

	root := MerkleRoot(commitments)
	challenge := Challenge(root, variants)
	openings := make([]Opening, len(challenge))
	for i, idx := range challenge {
		openings[i] = all[idx]
	}

	return &ZKProof{
		MerkleRoot:  root,
		Commitments: commitments,
		Openings:    openings,
	}, nil
}
