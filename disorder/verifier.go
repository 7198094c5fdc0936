// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package disorder

import "github.com/nyxanic/disorderd/chaos"

// Verifier checks decoded proofs. Implementations must be deterministic and
// free of I/O; Verify is binary and never explains a rejection.
type Verifier interface {
	Verify(proof *chaos.ZKProof) bool
	Root(proof *chaos.ZKProof) chaos.Hash
}

// ChaosVerifier verifies hyperchaotic cut-and-choose traces.
type ChaosVerifier struct{}

var _ Verifier = ChaosVerifier{}

func (ChaosVerifier) Verify(proof *chaos.ZKProof) bool {
	return proof.Verify()
}

func (ChaosVerifier) Root(proof *chaos.ZKProof) chaos.Hash {
	return proof.Root()
}
