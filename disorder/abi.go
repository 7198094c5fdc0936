// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package disorder

import (
	"fmt"
	"strings"

	"github.com/luxfi/geth/accounts/abi"
	"github.com/luxfi/geth/common"

	"github.com/nyxanic/disorderd/contract"
)

const rawDisorderABI = `[
	{
		"type": "function",
		"name": "verifyProof",
		"stateMutability": "nonpayable",
		"inputs": [{"name": "proofData", "type": "bytes"}],
		"outputs": []
	},
	{
		"type": "function",
		"name": "encryptSim",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "key", "type": "uint64[2]"},
			{"name": "iv", "type": "uint64[2]"},
			{"name": "plaintext", "type": "uint64[2]"}
		],
		"outputs": [{"name": "ciphertext", "type": "uint64[2]"}]
	},
	{
		"type": "function",
		"name": "decryptSim",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "key", "type": "uint64[2]"},
			{"name": "iv", "type": "uint64[2]"},
			{"name": "ciphertext", "type": "uint64[2]"}
		],
		"outputs": [{"name": "plaintext", "type": "uint64[2]"}]
	},
	{
		"type": "event",
		"name": "DisorderMessage",
		"anonymous": false,
		"inputs": [{"name": "message", "type": "string", "indexed": false}]
	}
]`

// Method and event names of the call contract.
const (
	MethodVerifyProof = "verifyProof"
	MethodEncryptSim  = "encryptSim"
	MethodDecryptSim  = "decryptSim"
	EventMessage      = "DisorderMessage"
)

var (
	// DisorderABI is the parsed call contract.
	DisorderABI = mustParseABI(rawDisorderABI)

	SelectorVerifyProof = selector("verifyProof(bytes)")
	SelectorEncryptSim  = selector("encryptSim(uint64[2],uint64[2],uint64[2])")
	SelectorDecryptSim  = selector("decryptSim(uint64[2],uint64[2],uint64[2])")
)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("failed to parse disorder ABI: %v", err))
	}
	return parsed
}

func selector(signature string) [contract.SelectorLength]byte {
	var s [contract.SelectorLength]byte
	copy(s[:], contract.CalculateFunctionSelector(signature))
	return s
}

// PackMessage packs an observability record as a DisorderMessage event.
func PackMessage(message string) ([]common.Hash, []byte, error) {
	event, ok := DisorderABI.Events[EventMessage]
	if !ok {
		return nil, nil, fmt.Errorf("event '%s' not found", EventMessage)
	}
	data, err := event.Inputs.NonIndexed().Pack(message)
	if err != nil {
		return nil, nil, err
	}
	return []common.Hash{event.ID}, data, nil
}

// UnpackMessage is the inverse of PackMessage, for indexers and tests.
func UnpackMessage(data []byte) (string, error) {
	values, err := DisorderABI.Unpack(EventMessage, data)
	if err != nil {
		return "", err
	}
	if len(values) != 1 {
		return "", fmt.Errorf("event '%s' unexpected number of values %d", EventMessage, len(values))
	}
	message, ok := values[0].(string)
	if !ok {
		return "", fmt.Errorf("event '%s' message has type %T", EventMessage, values[0])
	}
	return message, nil
}
