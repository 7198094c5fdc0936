// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package contract defines the boundary between a stateful precompile and the
// execution environment that hosts it.
package contract

import (
	"math/big"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/core/types"

	"github.com/nyxanic/disorderd/precompileconfig"
)

// StatefulPrecompiledContract is the interface every precompile implements.
// Run must not retain any reference to [input] after returning.
type StatefulPrecompiledContract interface {
	Run(
		accessibleState AccessibleState,
		caller common.Address,
		addr common.Address,
		input []byte,
		suppliedGas uint64,
		readOnly bool,
	) (ret []byte, remainingGas uint64, err error)
}

// StateDB is the subset of the host state a precompile may touch.
// Any change made through it is reverted by the host when Run returns an error.
type StateDB interface {
	AddLog(*types.Log)
	TxHash() common.Hash
}

// BlockContext exposes the block the call executes in.
type BlockContext interface {
	Number() *big.Int
	Timestamp() uint64
}

// ConfigurationBlockContext is the block context seen at activation time.
type ConfigurationBlockContext interface {
	Number() *big.Int
	Timestamp() uint64
}

// AccessibleState is handed to Run by the host for the duration of one call.
type AccessibleState interface {
	GetStateDB() StateDB
	GetBlockContext() BlockContext
}

// Configurator builds and applies the configuration of a precompile module.
type Configurator interface {
	MakeConfig() precompileconfig.Config
	Configure(
		chainConfig precompileconfig.ChainConfig,
		cfg precompileconfig.Config,
		state StateDB,
		blockContext ConfigurationBlockContext,
	) error
}
