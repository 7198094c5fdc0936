// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package disorder

import (
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/core/types"
	"github.com/luxfi/log"

	"github.com/nyxanic/disorderd/contract"
)

// hostRecorder writes a record to the node log and, outside static calls, as
// a DisorderMessage log on the precompile address. The host discards the EVM
// log together with the rest of the call if the enclosing transaction reverts.
type hostRecorder struct {
	state    contract.AccessibleState
	addr     common.Address
	readOnly bool
	log      log.Logger
}

func (r *hostRecorder) Record(message string) {
	r.log.Info(message,
		log.String("precompile", r.addr.Hex()),
		log.String("block", r.blockNumber()),
	)
	if r.readOnly {
		return
	}

	stateDB := r.state.GetStateDB()
	if stateDB == nil {
		return
	}
	topics, data, err := PackMessage(message)
	if err != nil {
		r.log.Debug("failed to pack disorder message", log.String("error", err.Error()))
		return
	}
	stateDB.AddLog(&types.Log{
		Address: r.addr,
		Topics:  topics,
		Data:    data,
		TxHash:  stateDB.TxHash(),
	})
}

func (r *hostRecorder) blockNumber() string {
	blockContext := r.state.GetBlockContext()
	if blockContext == nil || blockContext.Number() == nil {
		return "pending"
	}
	return blockContext.Number().String()
}
