// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/luxfi/crypto"
)

var (
	ErrOutOfGas = errors.New("out of gas")

	functionSignatureRegex = regexp.MustCompile(`^\w+\(([\w\[\]]+(,[\w\[\]]+)*)?\)$`)
)

// SelectorLength is the size of an ABI function selector.
const SelectorLength = 4

// DeductGas checks whether [suppliedGas] covers [requiredGas] and returns the
// remainder.
func DeductGas(suppliedGas uint64, requiredGas uint64) (uint64, error) {
	if suppliedGas < requiredGas {
		return 0, ErrOutOfGas
	}
	return suppliedGas - requiredGas, nil
}

// CalculateFunctionSelector returns the 4 byte selector of [functionSignature],
// e.g. "verifyProof(bytes)".
func CalculateFunctionSelector(functionSignature string) []byte {
	if !functionSignatureRegex.MatchString(functionSignature) {
		panic(fmt.Errorf("invalid function signature: %q", functionSignature))
	}
	hash := crypto.Keccak256([]byte(functionSignature))
	return hash[:SelectorLength]
}

// SplitSelector separates the selector from the ABI encoded arguments.
func SplitSelector(input []byte) ([SelectorLength]byte, []byte, bool) {
	var selector [SelectorLength]byte
	if len(input) < SelectorLength {
		return selector, nil, false
	}
	copy(selector[:], input[:SelectorLength])
	return selector, input[SelectorLength:], true
}

// WordCount returns the number of 32 byte words needed to hold [length] bytes.
func WordCount(length int) uint64 {
	return uint64(length+31) / 32
}
