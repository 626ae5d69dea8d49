package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/rs/zerolog/log"

	"github.com/kimberlabs/staking-ledger/internal/types"
)

// Fund credits amount of one of the custody tokens to holder, e.g. to top
// up the rewards vault. It does not touch the ledger.
func (s *Service) Fund(ctx context.Context, token, holder common.Address, amount uint256.Int) *types.Error {
	params := s.cfg.Ledger.Params()
	if token != params.StakedToken && token != params.RewardToken {
		return types.NewValidationFailedError(fmt.Errorf("unknown token %s", token.Hex()))
	}
	if amount.IsZero() {
		return types.NewValidationFailedError(errors.New("amount must be positive"))
	}

	err := s.db.WithTransaction(ctx, func(ctx context.Context) error {
		return s.token.Mint(ctx, token, holder, amount)
	})
	if err != nil {
		return types.NewInternalServiceError(fmt.Errorf("failed to fund %s: %w", holder.Hex(), err))
	}

	log.Ctx(ctx).Info().
		Str("token", token.Hex()).
		Str("holder", holder.Hex()).
		Str("amount", amount.Dec()).
		Msg("Funded custody balance")
	return nil
}

func (s *Service) TokenBalance(ctx context.Context, token, holder common.Address) (uint256.Int, *types.Error) {
	balance, err := s.token.BalanceOf(ctx, token, holder)
	if err != nil {
		return uint256.Int{}, types.NewInternalServiceError(err)
	}
	return balance, nil
}
