package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/lightningnetwork/lnd/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kimberlabs/staking-ledger/internal/clients/tokenclient"
	"github.com/kimberlabs/staking-ledger/internal/config"
	"github.com/kimberlabs/staking-ledger/internal/db"
	"github.com/kimberlabs/staking-ledger/internal/db/model"
	"github.com/kimberlabs/staking-ledger/internal/ledger"
	"github.com/kimberlabs/staking-ledger/internal/queue"
	"github.com/kimberlabs/staking-ledger/internal/types"
	"github.com/kimberlabs/staking-ledger/tests/mocks"
)

const t0 = 1_700_000_000

var (
	ledgerAddress   = common.HexToAddress("0x1000000000000000000000000000000000000001")
	stakedToken     = common.HexToAddress("0x2000000000000000000000000000000000000002")
	rewardToken     = common.HexToAddress("0x3000000000000000000000000000000000000003")
	rewardsVault    = common.HexToAddress("0x4000000000000000000000000000000000000004")
	emissionManager = common.HexToAddress("0x5000000000000000000000000000000000000005")
	alice           = common.HexToAddress("0x000000000000000000000000000000000000a11c")
	bob             = common.HexToAddress("0x0000000000000000000000000000000000000b0b")
)

func testConfig() *config.Config {
	return &config.Config{
		Ledger: config.LedgerConfig{
			Name:            "Staked Kimber",
			Symbol:          "stkKIMBER",
			Decimals:        18,
			ChainID:         31337,
			Address:         ledgerAddress.Hex(),
			StakedToken:     stakedToken.Hex(),
			RewardToken:     rewardToken.Hex(),
			RewardsVault:    rewardsVault.Hex(),
			EmissionManager: emissionManager.Hex(),
			Cooldown:        24 * time.Hour,
			UnstakeWindow:   48 * time.Hour,
			DistributionEnd: t0 + 100*365*24*3600,
		},
		Poller: config.PollerConfig{StatsPollingInterval: time.Minute},
	}
}

type testService struct {
	*Service
	db        *mocks.DbInterface
	token     *mocks.TokenInterface
	publisher *mocks.EventPublisher
	clock     *clock.TestClock
}

func runInTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// newTestService returns a bootstrapped service on an empty store whose db
// accepts every write.
func newTestService(t *testing.T) *testService {
	t.Helper()

	dbMock := mocks.NewDbInterface(t)
	tokenMock := mocks.NewTokenInterface(t)
	publisherMock := mocks.NewEventPublisher(t)
	clk := clock.NewTestClock(time.Unix(t0, 0))

	dbMock.On("GetLedgerMeta", mock.Anything).
		Return(nil, &db.NotFoundError{Key: model.LedgerMetaID, Message: "not found"}).Once()
	dbMock.On("WithTransaction", mock.Anything, mock.Anything).Return(runInTransaction).Maybe()
	dbMock.On("UpsertAsset", mock.Anything, mock.Anything).Return(nil).Maybe()
	dbMock.On("UpsertAccounts", mock.Anything, mock.Anything).Return(nil).Maybe()
	dbMock.On("UpsertAllowances", mock.Anything, mock.Anything).Return(nil).Maybe()
	dbMock.On("SaveLedgerEvents", mock.Anything, mock.Anything).Return(nil).Maybe()
	dbMock.On("SaveLedgerMeta", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	s := NewService(testConfig(), dbMock, tokenMock, publisherMock, clk)
	require.NoError(t, s.Bootstrap(context.Background()))

	return &testService{
		Service:   s,
		db:        dbMock,
		token:     tokenMock,
		publisher: publisherMock,
		clock:     clk,
	}
}

func (ts *testService) advance(seconds int64) {
	ts.clock.SetTime(ts.clock.Now().Add(time.Duration(seconds) * time.Second))
}

func TestBootstrap(t *testing.T) {
	t.Run("empty store initializes first revision", func(t *testing.T) {
		ts := newTestService(t)

		info, err := ts.LedgerInfo()
		require.Nil(t, err)
		assert.Equal(t, uint64(1), info.Revision)
		assert.Equal(t, uint64(1), info.Sequence)
		assert.Equal(t, uint64(t0), info.Asset.LastUpdateTimestamp)

		ts.db.AssertCalled(t, "SaveLedgerMeta", mock.Anything, uint64(0), mock.MatchedBy(func(doc *model.LedgerMetaDocument) bool {
			return doc.Revision == 1 && doc.Sequence == 1 && doc.TotalSupply == "0"
		}))
		ts.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
	t.Run("loads persisted state", func(t *testing.T) {
		dbMock := mocks.NewDbInterface(t)
		dbMock.On("GetLedgerMeta", mock.Anything).Return(&model.LedgerMetaDocument{
			ID: model.LedgerMetaID, Revision: 2, TotalSupply: "150", Sequence: 9, LastUpdated: t0,
		}, nil)
		dbMock.On("GetAsset", mock.Anything, ledgerAddress.Hex()).Return(&model.AssetDocument{
			Asset: ledgerAddress.Hex(), EmissionPerSecond: "0", Index: "0", LastUpdateTimestamp: t0,
		}, nil)
		dbMock.On("FindAccounts", mock.Anything).Return([]model.AccountDocument{
			{Address: alice.Hex(), Balance: "100", RewardIndex: "0", UnclaimedRewards: "0", Nonce: 3},
			{Address: bob.Hex(), Balance: "50", RewardIndex: "0", UnclaimedRewards: "0"},
		}, nil)
		dbMock.On("FindAllowances", mock.Anything).Return([]model.AllowanceDocument{
			{Owner: alice.Hex(), Spender: bob.Hex(), Amount: "7"},
		}, nil)

		s := NewService(testConfig(), dbMock, mocks.NewTokenInterface(t), mocks.NewEventPublisher(t), clock.NewTestClock(time.Unix(t0, 0)))
		require.NoError(t, s.Bootstrap(context.Background()))

		info, err := s.LedgerInfo()
		require.Nil(t, err)
		assert.Equal(t, uint64(2), info.Revision)
		assert.Equal(t, uint64(9), info.Sequence)
		assert.Equal(t, "150", info.TotalSupply.Dec())

		acc, err := s.AccountInfo(alice)
		require.Nil(t, err)
		assert.Equal(t, "100", acc.Account.Balance.Dec())
		assert.Equal(t, uint64(3), acc.Account.Nonce)

		allowance, err := s.Allowance(alice, bob)
		require.Nil(t, err)
		assert.Equal(t, uint64(7), allowance.Uint64())
	})
	t.Run("db failure", func(t *testing.T) {
		dbMock := mocks.NewDbInterface(t)
		dbMock.On("GetLedgerMeta", mock.Anything).Return(nil, errors.New("connection refused"))

		s := NewService(testConfig(), dbMock, mocks.NewTokenInterface(t), mocks.NewEventPublisher(t), clock.NewTestClock(time.Unix(t0, 0)))
		require.ErrorContains(t, s.Bootstrap(context.Background()), "connection refused")

		_, err := s.LedgerInfo()
		require.NotNil(t, err)
	})
}

func TestStake(t *testing.T) {
	ctx := context.Background()
	amount := *uint256.NewInt(1000)

	t.Run("persists and publishes", func(t *testing.T) {
		ts := newTestService(t)
		ts.token.On("Transfer", mock.Anything, stakedToken, alice, ledgerAddress, amount).Return(nil).Once()
		ts.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(msg *queue.LedgerEventMessage) bool {
			return msg.Operation == "STAKE" && msg.Sequence == 2
		})).Return(nil).Once()

		require.Nil(t, ts.Stake(ctx, alice, alice, amount))

		acc, err := ts.AccountInfo(alice)
		require.Nil(t, err)
		assert.Equal(t, amount, acc.Account.Balance)
		assert.Equal(t, ledger.CooldownInactive, acc.CooldownState)

		ts.db.AssertCalled(t, "SaveLedgerMeta", mock.Anything, uint64(1), mock.MatchedBy(func(doc *model.LedgerMetaDocument) bool {
			return doc.Sequence == 2 && doc.TotalSupply == "1000"
		}))
		ts.db.AssertCalled(t, "UpsertAccounts", mock.Anything, mock.MatchedBy(func(docs []model.AccountDocument) bool {
			return len(docs) == 1 && docs[0].Address == alice.Hex() && docs[0].Balance == "1000"
		}))
	})
	t.Run("rejected operation does not reach the db", func(t *testing.T) {
		ts := newTestService(t)

		err := ts.Stake(ctx, alice, alice, uint256.Int{})
		require.NotNil(t, err)
		assert.Equal(t, http.StatusBadRequest, err.StatusCode)
		assert.Equal(t, types.ErrorCode("INVALID_ZERO_AMOUNT"), err.ErrorCode)
		ts.token.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		ts.db.AssertNumberOfCalls(t, "WithTransaction", 1)
	})
	t.Run("insufficient custody funds leave the ledger untouched", func(t *testing.T) {
		ts := newTestService(t)
		ts.token.On("Transfer", mock.Anything, stakedToken, alice, ledgerAddress, amount).
			Return(&tokenclient.InsufficientFundsError{Token: stakedToken, Holder: alice, Requested: amount}).Once()

		err := ts.Stake(ctx, alice, alice, amount)
		require.NotNil(t, err)
		assert.Equal(t, types.InsufficientFunds, err.ErrorCode)

		info, _ := ts.LedgerInfo()
		assert.True(t, info.TotalSupply.IsZero())
		assert.Equal(t, uint64(1), info.Sequence)
		ts.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}

func TestPublishDoesNotHoldLedger(t *testing.T) {
	ctx := context.Background()
	ts := newTestService(t)
	amount := *uint256.NewInt(10)
	ts.token.On("Transfer", mock.Anything, stakedToken, alice, ledgerAddress, amount).Return(nil).Once()
	ts.token.On("Transfer", mock.Anything, stakedToken, bob, ledgerAddress, amount).Return(nil).Once()

	publishing := make(chan struct{})
	release := make(chan struct{})
	ts.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(msg *queue.LedgerEventMessage) bool {
		return msg.Sequence == 2
	})).Run(func(mock.Arguments) {
		close(publishing)
		<-release
	}).Return(errors.New("broker unreachable")).Once()
	ts.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(msg *queue.LedgerEventMessage) bool {
		return msg.Sequence == 3
	})).Return(nil).Once()

	first := make(chan *types.Error, 1)
	go func() {
		first <- ts.Stake(ctx, alice, alice, amount)
	}()
	<-publishing

	second := make(chan *types.Error, 1)
	go func() {
		second <- ts.Stake(ctx, bob, bob, amount)
	}()
	select {
	case err := <-second:
		require.Nil(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("stake waited for a pending publish")
	}

	close(release)
	require.Nil(t, <-first)

	info, err := ts.LedgerInfo()
	require.Nil(t, err)
	assert.Equal(t, uint64(3), info.Sequence)
	assert.Equal(t, "20", info.TotalSupply.Dec())
}

func TestPersistenceFailures(t *testing.T) {
	ctx := context.Background()
	amount := *uint256.NewInt(10)

	t.Run("db error is internal and keeps the ledger", func(t *testing.T) {
		dbMock := mocks.NewDbInterface(t)
		dbMock.On("GetLedgerMeta", mock.Anything).Return(nil, &db.NotFoundError{})
		dbMock.On("WithTransaction", mock.Anything, mock.Anything).Return(runInTransaction)
		dbMock.On("UpsertAsset", mock.Anything, mock.Anything).Return(nil)
		dbMock.On("UpsertAccounts", mock.Anything, mock.Anything).Return(nil)
		dbMock.On("UpsertAllowances", mock.Anything, mock.Anything).Return(nil)
		dbMock.On("SaveLedgerEvents", mock.Anything, mock.Anything).Return(nil)
		dbMock.On("SaveLedgerMeta", mock.Anything, uint64(0), mock.Anything).Return(nil).Once()
		dbMock.On("SaveLedgerMeta", mock.Anything, uint64(1), mock.Anything).Return(errors.New("write concern error")).Once()
		dbMock.On("SaveLedgerMeta", mock.Anything, uint64(1), mock.Anything).Return(nil).Once()

		tokenMock := mocks.NewTokenInterface(t)
		tokenMock.On("Transfer", mock.Anything, stakedToken, alice, ledgerAddress, amount).Return(nil)
		publisherMock := mocks.NewEventPublisher(t)
		publisherMock.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

		s := NewService(testConfig(), dbMock, tokenMock, publisherMock, clock.NewTestClock(time.Unix(t0, 0)))
		require.NoError(t, s.Bootstrap(ctx))

		err := s.Stake(ctx, alice, alice, amount)
		require.NotNil(t, err)
		assert.Equal(t, http.StatusInternalServerError, err.StatusCode)

		acc, _ := s.AccountInfo(alice)
		assert.True(t, acc.Account.Balance.IsZero())

		// the retry expects the same stored sequence
		require.Nil(t, s.Stake(ctx, alice, alice, amount))
		acc, _ = s.AccountInfo(alice)
		assert.Equal(t, amount, acc.Account.Balance)
	})
	t.Run("sequence conflict", func(t *testing.T) {
		ts := newTestService(t)
		ts.db.ExpectedCalls = nil
		ts.db.On("WithTransaction", mock.Anything, mock.Anything).
			Return(&db.SequenceConflictError{Expected: 1, Message: "moved"})

		err := ts.Cooldown(ctx, alice)
		require.NotNil(t, err)
		assert.Equal(t, types.ErrorCode("INVALID_BALANCE_ON_COOLDOWN"), err.ErrorCode)

		err = ts.Stake(ctx, alice, alice, amount)
		require.NotNil(t, err)
		assert.Equal(t, http.StatusConflict, err.StatusCode)
		assert.Equal(t, types.Conflict, err.ErrorCode)
	})
	t.Run("publish failure does not fail the operation", func(t *testing.T) {
		ts := newTestService(t)
		ts.token.On("Transfer", mock.Anything, stakedToken, alice, ledgerAddress, amount).Return(nil)
		ts.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("channel closed"))

		require.Nil(t, ts.Stake(ctx, alice, alice, amount))

		info, _ := ts.LedgerInfo()
		assert.Equal(t, uint64(2), info.Sequence)
	})
}

func TestCooldownAndRedeem(t *testing.T) {
	ctx := context.Background()
	ts := newTestService(t)
	amount := *uint256.NewInt(500)

	ts.token.On("Transfer", mock.Anything, stakedToken, alice, ledgerAddress, amount).Return(nil).Once()
	ts.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)
	require.Nil(t, ts.Stake(ctx, alice, alice, amount))

	_, err := ts.Redeem(ctx, alice, alice, amount)
	require.NotNil(t, err)
	assert.Equal(t, types.ErrorCode("UNSTAKE_WINDOW_FINISHED"), err.ErrorCode)

	require.Nil(t, ts.Cooldown(ctx, alice))
	acc, _ := ts.AccountInfo(alice)
	assert.Equal(t, ledger.CooldownCooling, acc.CooldownState)

	_, err = ts.Redeem(ctx, alice, alice, amount)
	require.NotNil(t, err)
	assert.Equal(t, types.ErrorCode("INSUFFICIENT_COOLDOWN"), err.ErrorCode)

	ts.advance(24 * 3600)
	acc, _ = ts.AccountInfo(alice)
	assert.Equal(t, ledger.CooldownRedeemable, acc.CooldownState)

	ts.token.On("Transfer", mock.Anything, stakedToken, ledgerAddress, bob, amount).Return(nil).Once()
	redeemed, err := ts.Redeem(ctx, alice, bob, *uint256.NewInt(10_000))
	require.Nil(t, err)
	assert.Equal(t, amount, redeemed)

	acc, _ = ts.AccountInfo(alice)
	assert.True(t, acc.Account.Balance.IsZero())
	assert.Equal(t, uint64(0), acc.Account.CooldownTimestamp)
}

func TestClaimRewards(t *testing.T) {
	ctx := context.Background()
	ts := newTestService(t)
	ts.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	stake := *uint256.NewInt(1_000)
	ts.token.On("Transfer", mock.Anything, stakedToken, alice, ledgerAddress, stake).Return(nil).Once()
	require.Nil(t, ts.Stake(ctx, alice, alice, stake))

	err := ts.ConfigureAssets(ctx, alice, []ledger.AssetConfigInput{{UnderlyingAsset: ledgerAddress}})
	require.NotNil(t, err)
	assert.Equal(t, http.StatusForbidden, err.StatusCode)

	require.Nil(t, ts.ConfigureAssets(ctx, emissionManager, []ledger.AssetConfigInput{{
		EmissionPerSecond: *uint256.NewInt(5),
		TotalStaked:       stake,
		UnderlyingAsset:   ledgerAddress,
	}}))

	ts.advance(100)
	acc, err := ts.AccountInfo(alice)
	require.Nil(t, err)
	assert.Equal(t, uint64(500), acc.TotalRewards.Uint64())

	expected := *uint256.NewInt(500)
	ts.token.On("Transfer", mock.Anything, rewardToken, rewardsVault, bob, expected).Return(nil).Once()
	claimed, err := ts.ClaimRewards(ctx, alice, bob, *ledger.MaxUint256)
	require.Nil(t, err)
	assert.Equal(t, expected, claimed)

	acc, _ = ts.AccountInfo(alice)
	assert.True(t, acc.TotalRewards.IsZero())
}

func TestAllowances(t *testing.T) {
	ctx := context.Background()
	ts := newTestService(t)
	ts.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	stake := *uint256.NewInt(100)
	ts.token.On("Transfer", mock.Anything, stakedToken, alice, ledgerAddress, stake).Return(nil).Once()
	require.Nil(t, ts.Stake(ctx, alice, alice, stake))

	require.Nil(t, ts.Approve(ctx, alice, bob, *uint256.NewInt(40)))
	require.Nil(t, ts.TransferFrom(ctx, bob, alice, bob, *uint256.NewInt(30)))

	err := ts.TransferFrom(ctx, bob, alice, bob, *uint256.NewInt(30))
	require.NotNil(t, err)
	assert.Equal(t, types.ErrorCode("INSUFFICIENT_ALLOWANCE"), err.ErrorCode)

	allowance, _ := ts.Allowance(alice, bob)
	assert.Equal(t, uint64(10), allowance.Uint64())

	require.Nil(t, ts.Transfer(ctx, bob, alice, *uint256.NewInt(30)))
	acc, _ := ts.AccountInfo(alice)
	assert.Equal(t, uint64(100), acc.Account.Balance.Uint64())
}

func TestFund(t *testing.T) {
	ctx := context.Background()
	ts := newTestService(t)

	err := ts.Fund(ctx, common.HexToAddress("0xdead"), rewardsVault, *uint256.NewInt(1))
	require.NotNil(t, err)
	assert.Equal(t, types.ValidationError, err.ErrorCode)

	ts.token.On("Mint", mock.Anything, rewardToken, rewardsVault, *uint256.NewInt(1_000)).Return(nil).Once()
	require.Nil(t, ts.Fund(ctx, rewardToken, rewardsVault, *uint256.NewInt(1_000)))
}

func TestStatsPoller(t *testing.T) {
	ts := newTestService(t)
	require.NoError(t, ts.calculateAndUpdateStats(context.Background()))

	empty := NewService(testConfig(), mocks.NewDbInterface(t), mocks.NewTokenInterface(t), mocks.NewEventPublisher(t), clock.NewTestClock(time.Unix(t0, 0)))
	require.ErrorIs(t, empty.calculateAndUpdateStats(context.Background()), errNotBootstrapped)
}
