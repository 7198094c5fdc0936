// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package disorder

import (
	"encoding/binary"
	"fmt"

	"github.com/nyxanic/disorderd/chaos"
)

// Proof wire format (little endian, no version tag):
//
//	[32 bytes merkle_root]
//	[4 bytes n_commitments][n_commitments * 32 bytes]
//	[4 bytes n_openings][n_openings * 68 bytes opening]
//
// opening = [4 bytes index][key 2*8][iv 2*8][plaintext 2*8][ciphertext 2*8]
//
// The schema carries no version discriminator; changing it breaks every
// caller at once.
const (
	MaxProofLength = 64 * 1024

	countLength   = 4
	blockLength   = chaos.BlockWords * 8
	openingLength = 4 + 4*blockLength
)

type proofReader struct {
	buf []byte
	off int
}

func (r *proofReader) remaining() int {
	return len(r.buf) - r.off
}

func (r *proofReader) take(n int) ([]byte, error) {
	if r.remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrInvalidData, n, r.off, r.remaining())
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *proofReader) readUint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *proofReader) hash() (chaos.Hash, error) {
	var h chaos.Hash
	b, err := r.take(chaos.HashLength)
	if err != nil {
		return h, err
	}
	copy(h[:], b)
	return h, nil
}

func (r *proofReader) block() (chaos.Block, error) {
	var blk chaos.Block
	b, err := r.take(blockLength)
	if err != nil {
		return blk, err
	}
	blk[0] = binary.LittleEndian.Uint64(b[0:])
	blk[1] = binary.LittleEndian.Uint64(b[8:])
	return blk, nil
}

// count reads a length prefix and checks that that many elements of
// [elemLength] bytes fit in what is left, before anything is allocated.
func (r *proofReader) count(elemLength int) (int, error) {
	n, err := r.readUint32()
	if err != nil {
		return 0, err
	}
	if uint64(n)*uint64(elemLength) > uint64(r.remaining()) {
		return 0, fmt.Errorf("%w: %d elements of %d bytes exceed remaining %d bytes", ErrInvalidData, n, elemLength, r.remaining())
	}
	return int(n), nil
}

func (r *proofReader) opening() (chaos.Opening, error) {
	var (
		o   chaos.Opening
		err error
	)
	if o.Index, err = r.readUint32(); err != nil {
		return o, err
	}
	if o.Key, err = r.block(); err != nil {
		return o, err
	}
	if o.IV, err = r.block(); err != nil {
		return o, err
	}
	if o.Plaintext, err = r.block(); err != nil {
		return o, err
	}
	if o.Ciphertext, err = r.block(); err != nil {
		return o, err
	}
	return o, nil
}

// DecodeProof decodes [data] into a proof. It either consumes every byte and
// returns a fully populated proof, or returns an error wrapping
// ErrInvalidData and no proof.
func DecodeProof(data []byte) (*chaos.ZKProof, error) {
	if len(data) > MaxProofLength {
		return nil, fmt.Errorf("%w: %d bytes exceeds maximum %d", ErrInvalidData, len(data), MaxProofLength)
	}

	r := &proofReader{buf: data}
	root, err := r.hash()
	if err != nil {
		return nil, err
	}

	n, err := r.count(chaos.HashLength)
	if err != nil {
		return nil, err
	}
	commitments := make([]chaos.Hash, n)
	for i := range commitments {
		if commitments[i], err = r.hash(); err != nil {
			return nil, err
		}
	}

	m, err := r.count(openingLength)
	if err != nil {
		return nil, err
	}
	openings := make([]chaos.Opening, m)
	for i := range openings {
		if openings[i], err = r.opening(); err != nil {
			return nil, err
		}
	}

	if r.remaining() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrInvalidData, r.remaining())
	}

	return &chaos.ZKProof{
		MerkleRoot:  root,
		Commitments: commitments,
		Openings:    openings,
	}, nil
}

// EncodedProofLength returns the size of the encoding of [proof].
func EncodedProofLength(proof *chaos.ZKProof) int {
	return chaos.HashLength +
		countLength + len(proof.Commitments)*chaos.HashLength +
		countLength + len(proof.Openings)*openingLength
}

// EncodeProof returns the canonical encoding of [proof].
func EncodeProof(proof *chaos.ZKProof) []byte {
	out := make([]byte, 0, EncodedProofLength(proof))
	out = append(out, proof.MerkleRoot[:]...)

	out = binary.LittleEndian.AppendUint32(out, uint32(len(proof.Commitments)))
	for i := range proof.Commitments {
		out = append(out, proof.Commitments[i][:]...)
	}

	out = binary.LittleEndian.AppendUint32(out, uint32(len(proof.Openings)))
	for _, o := range proof.Openings {
		out = binary.LittleEndian.AppendUint32(out, o.Index)
		for _, b := range [...]chaos.Block{o.Key, o.IV, o.Plaintext, o.Ciphertext} {
			out = binary.LittleEndian.AppendUint64(out, b[0])
			out = binary.LittleEndian.AppendUint64(out, b[1])
		}
	}
	return out
}
