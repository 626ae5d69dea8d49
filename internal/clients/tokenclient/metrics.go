package tokenclient

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/kimberlabs/staking-ledger/internal/observability/metrics"
)

type tokenClientWithMetrics struct {
	token TokenInterface
}

func NewTokenClientWithMetrics(token TokenInterface) *tokenClientWithMetrics {
	return &tokenClientWithMetrics{token: token}
}

func (t *tokenClientWithMetrics) BalanceOf(ctx context.Context, token, holder common.Address) (uint256.Int, error) {
	return runTokenClientMethodWithMetrics("BalanceOf", func() (uint256.Int, error) {
		return t.token.BalanceOf(ctx, token, holder)
	})
}

func (t *tokenClientWithMetrics) Transfer(ctx context.Context, token, from, to common.Address, amount uint256.Int) error {
	_, err := runTokenClientMethodWithMetrics("Transfer", func() (struct{}, error) {
		return struct{}{}, t.token.Transfer(ctx, token, from, to, amount)
	})
	return err
}

func (t *tokenClientWithMetrics) Mint(ctx context.Context, token, to common.Address, amount uint256.Int) error {
	_, err := runTokenClientMethodWithMetrics("Mint", func() (struct{}, error) {
		return struct{}{}, t.token.Mint(ctx, token, to, amount)
	})
	return err
}

func runTokenClientMethodWithMetrics[T any](method string, f func() (T, error)) (T, error) {
	startTime := time.Now()
	v, err := f()
	duration := time.Since(startTime)

	metrics.RecordTokenClientLatency(duration, method, err != nil)
	return v, err
}
