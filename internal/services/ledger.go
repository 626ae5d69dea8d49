package services

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/kimberlabs/staking-ledger/internal/ledger"
	"github.com/kimberlabs/staking-ledger/internal/types"
)

func (s *Service) Stake(ctx context.Context, caller, onBehalfOf common.Address, amount uint256.Int) *types.Error {
	_, err := s.execute(ctx, types.OperationStake, func(tx *ledger.Tx) error {
		return tx.Stake(caller, onBehalfOf, amount)
	})
	return err
}

// Redeem returns the amount actually burned, which is capped to the
// caller's balance.
func (s *Service) Redeem(ctx context.Context, caller, to common.Address, amount uint256.Int) (uint256.Int, *types.Error) {
	var redeemed uint256.Int
	_, err := s.execute(ctx, types.OperationRedeem, func(tx *ledger.Tx) error {
		var err error
		redeemed, err = tx.Redeem(caller, to, amount)
		return err
	})
	if err != nil {
		return uint256.Int{}, err
	}
	return redeemed, nil
}

func (s *Service) Cooldown(ctx context.Context, caller common.Address) *types.Error {
	_, err := s.execute(ctx, types.OperationCooldown, func(tx *ledger.Tx) error {
		return tx.Cooldown(caller)
	})
	return err
}

// ClaimRewards returns the amount actually paid out. ledger.MaxUint256 claims
// everything.
func (s *Service) ClaimRewards(ctx context.Context, caller, to common.Address, amount uint256.Int) (uint256.Int, *types.Error) {
	var claimed uint256.Int
	_, err := s.execute(ctx, types.OperationClaimRewards, func(tx *ledger.Tx) error {
		var err error
		claimed, err = tx.ClaimRewards(caller, to, amount)
		return err
	})
	if err != nil {
		return uint256.Int{}, err
	}
	return claimed, nil
}

func (s *Service) Transfer(ctx context.Context, caller, to common.Address, amount uint256.Int) *types.Error {
	_, err := s.execute(ctx, types.OperationTransfer, func(tx *ledger.Tx) error {
		return tx.Transfer(caller, to, amount)
	})
	return err
}

func (s *Service) TransferFrom(ctx context.Context, spender, from, to common.Address, amount uint256.Int) *types.Error {
	_, err := s.execute(ctx, types.OperationTransferFrom, func(tx *ledger.Tx) error {
		return tx.TransferFrom(spender, from, to, amount)
	})
	return err
}

func (s *Service) Approve(ctx context.Context, owner, spender common.Address, amount uint256.Int) *types.Error {
	_, err := s.execute(ctx, types.OperationApprove, func(tx *ledger.Tx) error {
		return tx.Approve(owner, spender, amount)
	})
	return err
}

func (s *Service) Permit(ctx context.Context, req ledger.PermitRequest) *types.Error {
	_, err := s.execute(ctx, types.OperationPermit, func(tx *ledger.Tx) error {
		return tx.Permit(req)
	})
	return err
}

func (s *Service) ConfigureAssets(ctx context.Context, caller common.Address, inputs []ledger.AssetConfigInput) *types.Error {
	_, err := s.execute(ctx, types.OperationConfigureAssets, func(tx *ledger.Tx) error {
		return tx.ConfigureAssets(caller, inputs)
	})
	return err
}
