// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package disorder

import (
	"fmt"

	"github.com/nyxanic/disorderd/chaos"
)

// Gateway implements the three public operations. It holds only immutable
// collaborators, so one value serves concurrent calls.
type Gateway struct {
	verifier       Verifier
	cipher         Cipher
	maxProofLength int
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithVerifier replaces the proof verifier.
func WithVerifier(v Verifier) Option {
	return func(g *Gateway) {
		g.verifier = v
	}
}

// WithCipher replaces the block cipher.
func WithCipher(c Cipher) Option {
	return func(g *Gateway) {
		g.cipher = c
	}
}

// WithMaxProofLength lowers the accepted proof size. Values outside
// (0, MaxProofLength] are ignored.
func WithMaxProofLength(n int) Option {
	return func(g *Gateway) {
		if n > 0 && n <= MaxProofLength {
			g.maxProofLength = n
		}
	}
}

// NewGateway returns a gateway backed by the chaos primitives.
func NewGateway(opts ...Option) *Gateway {
	g := &Gateway{
		verifier:       ChaosVerifier{},
		cipher:         ChaosCipher{},
		maxProofLength: MaxProofLength,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// VerifyProof decodes [proofData] and verifies it. Decoding always happens
// first: malformed bytes yield ErrInvalidData and are never handed to the
// verifier. A decoded proof that fails yields ErrChaosVerificationFailed.
// A nil [rec] discards the record.
func (g *Gateway) VerifyProof(rec Recorder, proofData []byte) (chaos.Hash, error) {
	if len(proofData) > g.maxProofLength {
		return chaos.Hash{}, fmt.Errorf("%w: %d bytes exceeds maximum %d", ErrInvalidData, len(proofData), g.maxProofLength)
	}
	proof, err := DecodeProof(proofData)
	if err != nil {
		return chaos.Hash{}, err
	}

	if !g.verifier.Verify(proof) {
		return chaos.Hash{}, ErrChaosVerificationFailed
	}

	root := g.verifier.Root(proof)
	recorderOr(rec).Record(ProofValidRecord(root))
	return root, nil
}

// EncryptSim runs one forward block transform.
func (g *Gateway) EncryptSim(rec Recorder, key, iv, plaintext chaos.Block) (chaos.Block, error) {
	ciphertext := g.cipher.EncryptBlock(key, iv, plaintext)
	recorderOr(rec).Record(EncryptedRecord(ciphertext))
	return ciphertext, nil
}

// DecryptSim runs one inverse block transform.
func (g *Gateway) DecryptSim(rec Recorder, key, iv, ciphertext chaos.Block) (chaos.Block, error) {
	plaintext := g.cipher.DecryptBlock(key, iv, ciphertext)
	recorderOr(rec).Record(DecryptedRecord(plaintext))
	return plaintext, nil
}

func recorderOr(rec Recorder) Recorder {
	if rec == nil {
		return nopRecorder{}
	}
	return rec
}
