package api

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/kimberlabs/staking-ledger/internal/db/model"
	"github.com/kimberlabs/staking-ledger/internal/ledger"
	"github.com/kimberlabs/staking-ledger/internal/services"
	"github.com/kimberlabs/staking-ledger/internal/types"
)

// LedgerService is the part of services.Service the http api exposes.
//
//go:generate mockery --name=LedgerService --inpackage --testonly --filename=mock_ledger_service_test.go
type LedgerService interface {
	Stake(ctx context.Context, caller, onBehalfOf common.Address, amount uint256.Int) *types.Error
	Redeem(ctx context.Context, caller, to common.Address, amount uint256.Int) (uint256.Int, *types.Error)
	Cooldown(ctx context.Context, caller common.Address) *types.Error
	ClaimRewards(ctx context.Context, caller, to common.Address, amount uint256.Int) (uint256.Int, *types.Error)
	Transfer(ctx context.Context, caller, to common.Address, amount uint256.Int) *types.Error
	TransferFrom(ctx context.Context, spender, from, to common.Address, amount uint256.Int) *types.Error
	Approve(ctx context.Context, owner, spender common.Address, amount uint256.Int) *types.Error
	Permit(ctx context.Context, req ledger.PermitRequest) *types.Error
	ConfigureAssets(ctx context.Context, caller common.Address, inputs []ledger.AssetConfigInput) *types.Error

	LedgerInfo() (*services.LedgerInfo, *types.Error)
	AccountInfo(addr common.Address) (*services.AccountInfo, *types.Error)
	Allowance(owner, spender common.Address) (uint256.Int, *types.Error)
	LedgerEvents(ctx context.Context, beforeSequence uint64, limit int64) ([]model.LedgerEventDocument, *types.Error)
	TokenBalance(ctx context.Context, token, holder common.Address) (uint256.Int, *types.Error)
	Healthcheck(ctx context.Context) *types.Error
}
