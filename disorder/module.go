// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package disorder implements the Disorder gateway precompile: verification of
// hyperchaotic cut-and-choose proofs and a single-block chaotic cipher
// simulation, callable directly or from other contracts.
//
// Address: 0x0900...40 (ZK range)
//
// Operations:
//   - verifyProof(bytes): decode then verify a proof, emitting its root
//   - encryptSim(uint64[2],uint64[2],uint64[2]) returns (uint64[2])
//   - decryptSim(uint64[2],uint64[2],uint64[2]) returns (uint64[2])
//
// Calls are stateless. The only side effect is one DisorderMessage record per
// successful call.
package disorder

import (
	"fmt"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/log"
	"github.com/luxfi/log/level"

	"github.com/nyxanic/disorderd/contract"
	"github.com/nyxanic/disorderd/modules"
	"github.com/nyxanic/disorderd/precompileconfig"
)

var _ contract.Configurator = (*configurator)(nil)

// ConfigKey is the key used in json config files to specify this precompile config.
const ConfigKey = "disorderConfig"

// ContractAddress is the address of the Disorder precompile (ZK range 0x0900)
var ContractAddress = common.HexToAddress("0x0900000000000000000000000000000000000040")

// DisorderPrecompile is the singleton instance of the Disorder precompile
var DisorderPrecompile = newDisorderPrecompile(NewGateway(), log.NewTestLogger(level.Info))

// Module is the precompile module
var Module = modules.Module{
	ConfigKey:    ConfigKey,
	Address:      ContractAddress,
	Contract:     DisorderPrecompile,
	Configurator: &configurator{},
}

type configurator struct{}

func init() {
	if err := modules.RegisterModule(Module); err != nil {
		panic(err)
	}
}

func (*configurator) MakeConfig() precompileconfig.Config {
	return new(Config)
}

// Configure validates the config and checks that its upgrade is in effect at
// the activating block. The precompile keeps no state, so there is nothing to
// write at activation.
func (*configurator) Configure(
	chainConfig precompileconfig.ChainConfig,
	cfg precompileconfig.Config,
	state contract.StateDB,
	blockContext contract.ConfigurationBlockContext,
) error {
	config, ok := cfg.(*Config)
	if !ok {
		return fmt.Errorf("expected config type %T, got %T: %v", &Config{}, cfg, cfg)
	}
	if err := config.Verify(chainConfig); err != nil {
		return err
	}
	if blockContext == nil || !config.Upgrade.IsActive(blockContext.Timestamp()) {
		return ErrNotActive
	}
	return nil
}

// Config implements the precompileconfig.Config interface
type Config struct {
	Upgrade precompileconfig.Upgrade `json:"upgrade,omitempty"`
}

func (c *Config) Key() string {
	return ConfigKey
}

func (c *Config) Timestamp() *uint64 {
	return c.Upgrade.Timestamp()
}

func (c *Config) IsDisabled() bool {
	return c.Upgrade.Disable
}

func (c *Config) Equal(cfg precompileconfig.Config) bool {
	other, ok := cfg.(*Config)
	if !ok {
		return false
	}
	return c.Upgrade.Equal(&other.Upgrade)
}

func (c *Config) Verify(chainConfig precompileconfig.ChainConfig) error {
	return nil
}
