// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package disorder

import (
	"bytes"
	"fmt"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/log"

	"github.com/nyxanic/disorderd/chaos"
	"github.com/nyxanic/disorderd/contract"
)

// Gas costs. Every operation does at most one decode and one primitive call,
// and proof size and variant count are capped, so each cost is bounded.
const (
	GasVerifyProofBase = 60000 // covers MaxVariants/2 cipher runs and the Merkle root
	GasPerProofWord    = 200   // per 32-byte word of ABI encoded proof
	GasEncryptSim      = 3000
	GasDecryptSim      = 3000
)

// encryptSim and decryptSim take three static uint64[2] arguments.
const cipherArgsLength = 3 * chaos.BlockWords * 32

var _ contract.StatefulPrecompiledContract = (*disorderPrecompile)(nil)

type blockOp func(rec Recorder, key, iv, in chaos.Block) (chaos.Block, error)

type disorderPrecompile struct {
	gateway *Gateway
	log     log.Logger
}

func newDisorderPrecompile(gateway *Gateway, logger log.Logger) *disorderPrecompile {
	return &disorderPrecompile{
		gateway: gateway,
		log:     logger,
	}
}

// Address returns the precompile address
func (p *disorderPrecompile) Address() common.Address {
	return ContractAddress
}

// RequiredGas calculates gas for a call. Unknown selectors cost nothing and
// fail in Run.
func (p *disorderPrecompile) RequiredGas(input []byte) uint64 {
	selector, args, ok := contract.SplitSelector(input)
	if !ok {
		return 0
	}

	switch selector {
	case SelectorVerifyProof:
		return GasVerifyProofBase + contract.WordCount(len(args))*GasPerProofWord
	case SelectorEncryptSim:
		return GasEncryptSim
	case SelectorDecryptSim:
		return GasDecryptSim
	default:
		return 0
	}
}

// Run executes the disorder precompile
func (p *disorderPrecompile) Run(
	accessibleState contract.AccessibleState,
	caller common.Address,
	addr common.Address,
	input []byte,
	suppliedGas uint64,
	readOnly bool,
) (ret []byte, remainingGas uint64, err error) {
	remainingGas, err = contract.DeductGas(suppliedGas, p.RequiredGas(input))
	if err != nil {
		return nil, 0, err
	}

	selector, args, ok := contract.SplitSelector(input)
	if !ok {
		return nil, remainingGas, ErrInvalidOperation
	}

	rec := &hostRecorder{
		state:    accessibleState,
		addr:     addr,
		readOnly: readOnly,
		log:      p.log,
	}

	switch selector {
	case SelectorVerifyProof:
		ret, err = p.verifyProof(rec, args)
	case SelectorEncryptSim:
		ret, err = p.blockSim(rec, MethodEncryptSim, args, p.gateway.EncryptSim)
	case SelectorDecryptSim:
		ret, err = p.blockSim(rec, MethodDecryptSim, args, p.gateway.DecryptSim)
	default:
		return nil, remainingGas, ErrInvalidOperation
	}
	if err != nil {
		p.log.Debug("disorder call failed",
			log.String("caller", caller.Hex()),
			log.String("error", err.Error()),
		)
		return nil, remainingGas, err
	}
	return ret, remainingGas, nil
}

func (p *disorderPrecompile) verifyProof(rec Recorder, args []byte) ([]byte, error) {
	method := DisorderABI.Methods[MethodVerifyProof]
	values, err := method.Inputs.Unpack(args)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	proofData, ok := values[0].([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: proofData has type %T", ErrInvalidInput, values[0])
	}
	canonical, err := method.Inputs.Pack(proofData)
	if err != nil || !bytes.Equal(canonical, args) {
		return nil, fmt.Errorf("%w: non-canonical %s arguments", ErrInvalidInput, MethodVerifyProof)
	}

	if _, err := p.gateway.VerifyProof(rec, proofData); err != nil {
		return nil, err
	}
	return method.Outputs.Pack()
}

func (p *disorderPrecompile) blockSim(rec Recorder, name string, args []byte, op blockOp) ([]byte, error) {
	if len(args) != cipherArgsLength {
		return nil, fmt.Errorf("%w: %s expects %d bytes, got %d", ErrInvalidInput, name, cipherArgsLength, len(args))
	}
	method := DisorderABI.Methods[name]
	values, err := method.Inputs.Unpack(args)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var blocks [3]chaos.Block
	for i := range blocks {
		words, ok := values[i].([chaos.BlockWords]uint64)
		if !ok {
			return nil, fmt.Errorf("%w: %s argument %d has type %T", ErrInvalidInput, name, i, values[i])
		}
		blocks[i] = chaos.Block(words)
	}

	out, err := op(rec, blocks[0], blocks[1], blocks[2])
	if err != nil {
		return nil, err
	}
	return method.Outputs.Pack([chaos.BlockWords]uint64(out))
}
