package tokenclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// BalanceStore is the persistence a Client keeps balances in. Balances are
// base 10 strings.
type BalanceStore interface {
	GetTokenBalance(ctx context.Context, token, holder string) (string, error)
	SetTokenBalance(ctx context.Context, token, holder, balance string) error
}

// Client keeps token balances in a BalanceStore. Calls made with a context
// that carries a db transaction join that transaction.
type Client struct {
	store BalanceStore
}

func NewClient(store BalanceStore) *Client {
	return &Client{store: store}
}

func (c *Client) BalanceOf(ctx context.Context, token, holder common.Address) (uint256.Int, error) {
	raw, err := c.store.GetTokenBalance(ctx, token.Hex(), holder.Hex())
	if err != nil {
		return uint256.Int{}, fmt.Errorf("failed to get %s balance of %s: %w", token.Hex(), holder.Hex(), err)
	}
	if raw == "" {
		return uint256.Int{}, nil
	}
	balance, err := uint256.FromDecimal(raw)
	if err != nil {
		return uint256.Int{}, fmt.Errorf("invalid stored balance %q: %w", raw, err)
	}
	return *balance, nil
}

func (c *Client) Transfer(ctx context.Context, token, from, to common.Address, amount uint256.Int) error {
	fromBalance, err := c.BalanceOf(ctx, token, from)
	if err != nil {
		return err
	}
	if fromBalance.Lt(&amount) {
		return &InsufficientFundsError{
			Token:     token,
			Holder:    from,
			Balance:   fromBalance,
			Requested: amount,
		}
	}
	if from == to || amount.IsZero() {
		return nil
	}

	var remaining uint256.Int
	remaining.Sub(&fromBalance, &amount)
	if err := c.store.SetTokenBalance(ctx, token.Hex(), from.Hex(), remaining.Dec()); err != nil {
		return fmt.Errorf("failed to debit %s: %w", from.Hex(), err)
	}
	return c.credit(ctx, token, to, amount)
}

func (c *Client) Mint(ctx context.Context, token, to common.Address, amount uint256.Int) error {
	return c.credit(ctx, token, to, amount)
}

func (c *Client) credit(ctx context.Context, token, to common.Address, amount uint256.Int) error {
	balance, err := c.BalanceOf(ctx, token, to)
	if err != nil {
		return err
	}
	var next uint256.Int
	if _, overflow := next.AddOverflow(&balance, &amount); overflow {
		return errors.New("token balance overflow")
	}
	if err := c.store.SetTokenBalance(ctx, token.Hex(), to.Hex(), next.Dec()); err != nil {
		return fmt.Errorf("failed to credit %s: %w", to.Hex(), err)
	}
	return nil
}
