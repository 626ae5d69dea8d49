package services

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/kimberlabs/staking-ledger/internal/db/model"
	"github.com/kimberlabs/staking-ledger/internal/ledger"
	"github.com/kimberlabs/staking-ledger/internal/types"
)

const (
	DefaultEventsLimit = 100
	MaxEventsLimit     = 1000
)

type LedgerInfo struct {
	Params          ledger.Params
	Revision        uint64
	DomainSeparator common.Hash
	TotalSupply     uint256.Int
	Asset           ledger.AssetData
	Sequence        uint64
	Timestamp       uint64
}

// AccountInfo is an account snapshot. TotalRewards is unclaimed plus pending
// rewards at Timestamp.
type AccountInfo struct {
	Address       common.Address
	Account       ledger.Account
	CooldownState ledger.CooldownState
	TotalRewards  uint256.Int
	Timestamp     uint64
}

func (s *Service) LedgerInfo() (*LedgerInfo, *types.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ledger == nil {
		return nil, types.NewInternalServiceError(errNotBootstrapped)
	}
	return &LedgerInfo{
		Params:          s.ledger.Params(),
		Revision:        s.ledger.Revision(),
		DomainSeparator: s.ledger.DomainSeparator(),
		TotalSupply:     s.ledger.TotalSupply(),
		Asset:           s.ledger.Asset(),
		Sequence:        s.sequence,
		Timestamp:       s.now(),
	}, nil
}

func (s *Service) AccountInfo(addr common.Address) (*AccountInfo, *types.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ledger == nil {
		return nil, types.NewInternalServiceError(errNotBootstrapped)
	}

	now := s.now()
	total, err := s.ledger.TotalRewardsBalance(addr, now)
	if err != nil {
		return nil, types.NewLedgerError(err)
	}
	return &AccountInfo{
		Address:       addr,
		Account:       s.ledger.Account(addr),
		CooldownState: s.ledger.CooldownState(addr, now),
		TotalRewards:  total,
		Timestamp:     now,
	}, nil
}

func (s *Service) Allowance(owner, spender common.Address) (uint256.Int, *types.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ledger == nil {
		return uint256.Int{}, types.NewInternalServiceError(errNotBootstrapped)
	}
	return s.ledger.Allowance(owner, spender), nil
}

// LedgerEvents pages through the persisted event log, newest operation
// first. A zero beforeSequence starts at the latest operation.
func (s *Service) LedgerEvents(ctx context.Context, beforeSequence uint64, limit int64) ([]model.LedgerEventDocument, *types.Error) {
	if limit <= 0 {
		limit = DefaultEventsLimit
	}
	if limit > MaxEventsLimit {
		limit = MaxEventsLimit
	}

	events, err := s.db.FindLedgerEvents(ctx, beforeSequence, limit)
	if err != nil {
		return nil, types.NewInternalServiceError(err)
	}
	return events, nil
}

func (s *Service) Healthcheck(ctx context.Context) *types.Error {
	if err := s.db.Ping(ctx); err != nil {
		return types.NewInternalServiceError(err)
	}
	return nil
}
