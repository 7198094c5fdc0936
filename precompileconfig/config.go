// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package precompileconfig defines the configuration surface shared by all
// precompile modules.
package precompileconfig

import "math/big"

// Config is the chain-level configuration of a single precompile module.
type Config interface {
	// Key returns the json key the config is stored under.
	Key() string
	// Timestamp returns the activation timestamp, nil if never activated.
	Timestamp() *uint64
	IsDisabled() bool
	Equal(Config) bool
	Verify(ChainConfig) error
}

// ChainConfig is the view of the chain configuration a precompile may consult.
type ChainConfig interface {
	ChainID() *big.Int
}

// Upgrade describes when a precompile activates or deactivates.
type Upgrade struct {
	BlockTimestamp *uint64 `json:"blockTimestamp,omitempty"`
	Disable        bool    `json:"disable,omitempty"`
}

// Timestamp returns the activation timestamp of the upgrade.
func (u *Upgrade) Timestamp() *uint64 {
	return u.BlockTimestamp
}

// Equal reports whether two upgrades activate at the same time with the same
// disable flag.
func (u *Upgrade) Equal(other *Upgrade) bool {
	if other == nil {
		return false
	}
	if u.Disable != other.Disable {
		return false
	}
	switch {
	case u.BlockTimestamp == nil && other.BlockTimestamp == nil:
		return true
	case u.BlockTimestamp == nil || other.BlockTimestamp == nil:
		return false
	default:
		return *u.BlockTimestamp == *other.BlockTimestamp
	}
}

// IsActive reports whether the upgrade is in effect at [timestamp].
func (u *Upgrade) IsActive(timestamp uint64) bool {
	if u.Disable || u.BlockTimestamp == nil {
		return false
	}
	return *u.BlockTimestamp <= timestamp
}
