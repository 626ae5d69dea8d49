package services

import (
	"context"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/rs/zerolog/log"

	"github.com/kimberlabs/staking-ledger/internal/ledger"
	"github.com/kimberlabs/staking-ledger/internal/observability/metrics"
	"github.com/kimberlabs/staking-ledger/internal/utils/poller"
)

var precision = new(big.Float).SetInt(ledger.Precision.ToBig())

// StartStatsPoller starts the stats polling service
func (s *Service) StartStatsPoller(ctx context.Context) {
	statsPoller := poller.NewPoller(
		"stats",
		s.cfg.Poller.StatsPollingInterval,
		s.clock,
		metrics.RecordPollerDuration("stats", s.calculateAndUpdateStats),
	)
	go statsPoller.Start(ctx)
}

// calculateAndUpdateStats records the ledger totals and the number of
// holders per cooldown state.
func (s *Service) calculateAndUpdateStats(ctx context.Context) error {
	s.mu.Lock()
	if s.ledger == nil {
		s.mu.Unlock()
		return errNotBootstrapped
	}
	now := s.now()
	totalSupply := s.ledger.TotalSupply()
	asset := s.ledger.Asset()
	cooldownStats := s.ledger.CooldownStats(now)
	s.mu.Unlock()

	counts := make(map[string]int, len(cooldownStats))
	for state, count := range cooldownStats {
		counts[state.String()] = count
	}

	totalStaked := scaleDown(&totalSupply)
	rewardIndex := scaleDown(&asset.Index)
	metrics.RecordLedgerTotals(totalStaked, rewardIndex)
	metrics.RecordCooldownAccounts(counts)

	log.Ctx(ctx).Debug().
		Float64("total_staked", totalStaked).
		Float64("reward_index", rewardIndex).
		Interface("cooldown_accounts", counts).
		Msg("Updated ledger stats")
	return nil
}

// scaleDown converts an 18 decimals fixed point amount into a float.
func scaleDown(v *uint256.Int) float64 {
	f, _ := new(big.Float).Quo(new(big.Float).SetInt(v.ToBig()), precision).Float64()
	return f
}
