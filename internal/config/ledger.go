package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/kimberlabs/staking-ledger/internal/ledger"
	"github.com/kimberlabs/staking-ledger/pkg"
)

// LedgerConfig holds the ledger parameters. DistributionEnd is a unix
// timestamp in seconds.
type LedgerConfig struct {
	Name            string        `mapstructure:"name"`
	Symbol          string        `mapstructure:"symbol"`
	Decimals        uint8         `mapstructure:"decimals"`
	ChainID         uint64        `mapstructure:"chain-id"`
	Address         string        `mapstructure:"address"`
	StakedToken     string        `mapstructure:"staked-token"`
	RewardToken     string        `mapstructure:"reward-token"`
	RewardsVault    string        `mapstructure:"rewards-vault"`
	EmissionManager string        `mapstructure:"emission-manager"`
	Cooldown        time.Duration `mapstructure:"cooldown"`
	UnstakeWindow   time.Duration `mapstructure:"unstake-window"`
	DistributionEnd uint64        `mapstructure:"distribution-end"`
}

func (cfg *LedgerConfig) Validate() error {
	if cfg.Name == "" {
		return errors.New("name is required")
	}

	if cfg.Symbol == "" {
		return errors.New("symbol is required")
	}

	if cfg.ChainID == 0 {
		return errors.New("chain-id must be positive")
	}

	addresses := map[string]string{
		"address":          cfg.Address,
		"staked-token":     cfg.StakedToken,
		"reward-token":     cfg.RewardToken,
		"rewards-vault":    cfg.RewardsVault,
		"emission-manager": cfg.EmissionManager,
	}
	for key, value := range addresses {
		addr, err := pkg.ParseAddress(value)
		if err != nil {
			return fmt.Errorf("%s must be a hex encoded address: %w", key, err)
		}
		if addr == (common.Address{}) {
			return fmt.Errorf("%s must not be the zero address", key)
		}
	}

	if cfg.Cooldown < time.Second || cfg.Cooldown%time.Second != 0 {
		return errors.New("cooldown must be a positive whole number of seconds")
	}

	if cfg.UnstakeWindow < time.Second || cfg.UnstakeWindow%time.Second != 0 {
		return errors.New("unstake-window must be a positive whole number of seconds")
	}

	if cfg.DistributionEnd == 0 {
		return errors.New("distribution-end must be set")
	}

	return nil
}

func (cfg *LedgerConfig) Params() ledger.Params {
	return ledger.Params{
		Name:            cfg.Name,
		Symbol:          cfg.Symbol,
		Decimals:        cfg.Decimals,
		ChainID:         cfg.ChainID,
		Address:         common.HexToAddress(cfg.Address),
		StakedToken:     common.HexToAddress(cfg.StakedToken),
		RewardToken:     common.HexToAddress(cfg.RewardToken),
		RewardsVault:    common.HexToAddress(cfg.RewardsVault),
		EmissionManager: common.HexToAddress(cfg.EmissionManager),
		CooldownSeconds: uint64(cfg.Cooldown / time.Second),
		UnstakeWindow:   uint64(cfg.UnstakeWindow / time.Second),
		DistributionEnd: cfg.DistributionEnd,
	}
}
