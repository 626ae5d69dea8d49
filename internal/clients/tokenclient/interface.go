package tokenclient

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// TokenInterface moves balances of the fungible tokens held in custody by
// the ledger: the staked token and the reward token.
//
//go:generate mockery --name=TokenInterface --output=../../../tests/mocks --outpkg=mocks --filename=mock_token_client.go
type TokenInterface interface {
	BalanceOf(ctx context.Context, token, holder common.Address) (uint256.Int, error)
	// Transfer fails with InsufficientFundsError when from holds less than amount.
	Transfer(ctx context.Context, token, from, to common.Address, amount uint256.Int) error
	Mint(ctx context.Context, token, to common.Address, amount uint256.Int) error
}
