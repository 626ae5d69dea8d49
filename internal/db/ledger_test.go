//go:build integration

package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kimberlabs/staking-ledger/internal/db"
	"github.com/kimberlabs/staking-ledger/internal/db/model"
)

const (
	alice = "0x00000000000000000000000000000000000A11cE"
	bob   = "0x0000000000000000000000000000000000000B0b"
	token = "0x000000000000000000000000000000000000AAAA"
)

func TestLedgerMeta(t *testing.T) {
	ctx := context.Background()

	t.Run("not initialized", func(t *testing.T) {
		resetDatabase(t)

		_, err := testDB.GetLedgerMeta(ctx)
		require.Error(t, err)
		assert.True(t, db.IsNotFoundError(err))
	})
	t.Run("sequence guard", func(t *testing.T) {
		resetDatabase(t)

		first := &model.LedgerMetaDocument{Revision: 1, TotalSupply: "0", Sequence: 1, LastUpdated: 100}
		require.NoError(t, testDB.SaveLedgerMeta(ctx, 0, first))

		second := &model.LedgerMetaDocument{Revision: 1, TotalSupply: "500", Sequence: 2, LastUpdated: 200}
		require.NoError(t, testDB.SaveLedgerMeta(ctx, 1, second))

		stale := &model.LedgerMetaDocument{Revision: 1, TotalSupply: "1", Sequence: 2, LastUpdated: 300}
		err := testDB.SaveLedgerMeta(ctx, 1, stale)
		require.Error(t, err)
		assert.True(t, db.IsSequenceConflictError(err))

		stored, err := testDB.GetLedgerMeta(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.LedgerMetaID, stored.ID)
		assert.Equal(t, "500", stored.TotalSupply)
		assert.Equal(t, uint64(2), stored.Sequence)
	})
}

func TestAccountsAndAllowances(t *testing.T) {
	ctx := context.Background()
	resetDatabase(t)

	_, err := testDB.GetAccount(ctx, alice)
	assert.True(t, db.IsNotFoundError(err))

	err = testDB.UpsertAccounts(ctx, []model.AccountDocument{
		{Address: alice, Balance: "100", RewardIndex: "0", UnclaimedRewards: "0"},
		{Address: bob, Balance: "50", CooldownTimestamp: 10, RewardIndex: "7", UnclaimedRewards: "3", Nonce: 1},
	})
	require.NoError(t, err)

	err = testDB.UpsertAccounts(ctx, []model.AccountDocument{
		{Address: alice, Balance: "40", RewardIndex: "2", UnclaimedRewards: "1"},
	})
	require.NoError(t, err)

	acc, err := testDB.GetAccount(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, "40", acc.Balance)
	assert.Equal(t, "2", acc.RewardIndex)

	accounts, err := testDB.FindAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)

	err = testDB.UpsertAllowances(ctx, []model.AllowanceDocument{
		{Owner: alice, Spender: bob, Amount: "25"},
		{Owner: bob, Spender: alice, Amount: "5"},
	})
	require.NoError(t, err)

	// zero amount removes the allowance
	err = testDB.UpsertAllowances(ctx, []model.AllowanceDocument{
		{Owner: bob, Spender: alice, Amount: "0"},
		{Owner: alice, Spender: bob, Amount: "30"},
	})
	require.NoError(t, err)

	allowances, err := testDB.FindAllowances(ctx)
	require.NoError(t, err)
	require.Len(t, allowances, 1)
	assert.Equal(t, model.AllowanceDocument{Owner: alice, Spender: bob, Amount: "30"}, allowances[0])
}

func TestLedgerEvents(t *testing.T) {
	ctx := context.Background()
	resetDatabase(t)

	for seq := uint64(1); seq <= 3; seq++ {
		docs := []model.LedgerEventDocument{
			{Sequence: seq, Position: 0, Operation: "stake", Type: "Transfer"},
			{Sequence: seq, Position: 1, Operation: "stake", Type: "Staked"},
		}
		require.NoError(t, testDB.SaveLedgerEvents(ctx, docs))
	}

	err := testDB.SaveLedgerEvents(ctx, []model.LedgerEventDocument{{Sequence: 2, Position: 0}})
	require.Error(t, err)
	assert.True(t, db.IsDuplicateKeyError(err))

	latest, err := testDB.FindLedgerEvents(ctx, 0, 3)
	require.NoError(t, err)
	require.Len(t, latest, 3)
	assert.Equal(t, uint64(3), latest[0].Sequence)
	assert.Equal(t, 0, latest[0].Position)
	assert.Equal(t, uint64(3), latest[1].Sequence)
	assert.Equal(t, 1, latest[1].Position)
	assert.Equal(t, uint64(2), latest[2].Sequence)

	older, err := testDB.FindLedgerEvents(ctx, 2, 10)
	require.NoError(t, err)
	require.Len(t, older, 2)
	for _, doc := range older {
		assert.Equal(t, uint64(1), doc.Sequence)
	}
}

func TestTokenBalances(t *testing.T) {
	ctx := context.Background()
	resetDatabase(t)

	balance, err := testDB.GetTokenBalance(ctx, token, alice)
	require.NoError(t, err)
	assert.Equal(t, "0", balance)

	require.NoError(t, testDB.SetTokenBalance(ctx, token, alice, "1000"))
	require.NoError(t, testDB.SetTokenBalance(ctx, token, alice, "900"))

	balance, err = testDB.GetTokenBalance(ctx, token, alice)
	require.NoError(t, err)
	assert.Equal(t, "900", balance)
}

func TestWithTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("rollback on error", func(t *testing.T) {
		resetDatabase(t)

		failure := errors.New("abort")
		err := testDB.WithTransaction(ctx, func(ctx context.Context) error {
			if err := testDB.SetTokenBalance(ctx, token, alice, "10"); err != nil {
				return err
			}
			if err := testDB.UpsertAccounts(ctx, []model.AccountDocument{{Address: alice, Balance: "10"}}); err != nil {
				return err
			}
			return failure
		})
		require.ErrorIs(t, err, failure)

		balance, err := testDB.GetTokenBalance(ctx, token, alice)
		require.NoError(t, err)
		assert.Equal(t, "0", balance)

		_, err = testDB.GetAccount(ctx, alice)
		assert.True(t, db.IsNotFoundError(err))
	})
	t.Run("commit", func(t *testing.T) {
		resetDatabase(t)

		err := testDB.WithTransaction(ctx, func(ctx context.Context) error {
			if err := testDB.SaveLedgerMeta(ctx, 0, &model.LedgerMetaDocument{Revision: 1, TotalSupply: "10", Sequence: 1}); err != nil {
				return err
			}
			return testDB.SetTokenBalance(ctx, token, alice, "10")
		})
		require.NoError(t, err)

		meta, err := testDB.GetLedgerMeta(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), meta.Sequence)

		balance, err := testDB.GetTokenBalance(ctx, token, alice)
		require.NoError(t, err)
		assert.Equal(t, "10", balance)
	})
}
