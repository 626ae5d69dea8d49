package ledger

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

const (
	testCooldownSeconds = 24 * 60 * 60
	testUnstakeWindow   = 48 * 60 * 60
	t0                  = uint64(1_700_000_000)
)

var (
	ledgerAddress   = common.HexToAddress("0x1000000000000000000000000000000000000001")
	stakedToken     = common.HexToAddress("0x2000000000000000000000000000000000000002")
	rewardToken     = common.HexToAddress("0x3000000000000000000000000000000000000003")
	rewardsVault    = common.HexToAddress("0x4000000000000000000000000000000000000004")
	emissionManager = common.HexToAddress("0x5000000000000000000000000000000000000005")

	alice = common.HexToAddress("0xa11ce00000000000000000000000000000000a11")
	bob   = common.HexToAddress("0xb0b0000000000000000000000000000000000b0b")
	carol = common.HexToAddress("0xca201000000000000000000000000000000ca201")
)

func testParams() Params {
	return Params{
		Name:            "Staked Kimber",
		Symbol:          "stkKIMBER",
		Decimals:        18,
		ChainID:         31337,
		Address:         ledgerAddress,
		StakedToken:     stakedToken,
		RewardToken:     rewardToken,
		RewardsVault:    rewardsVault,
		EmissionManager: emissionManager,
		CooldownSeconds: testCooldownSeconds,
		UnstakeWindow:   testUnstakeWindow,
		DistributionEnd: t0 + 100*365*24*60*60,
	}
}

func amount(v uint64) uint256.Int {
	return *uint256.NewInt(v)
}

// newTestLedger returns a ledger initialized at t0 emitting emission reward
// units per second.
func newTestLedger(t *testing.T, params Params, emission uint64) *Ledger {
	t.Helper()

	l := New(params, nil)
	tx := l.Begin(t0)
	require.NoError(t, tx.Initialize(1))
	require.NoError(t, tx.ConfigureAssets(emissionManager, []AssetConfigInput{{
		EmissionPerSecond: amount(emission),
		UnderlyingAsset:   params.Address,
	}}))
	require.NoError(t, tx.Commit())
	return l
}

// apply runs fn in a transaction at now and commits it when fn succeeds.
func apply(t *testing.T, l *Ledger, now uint64, fn func(tx *Tx) error) error {
	t.Helper()

	tx := l.Begin(now)
	if err := fn(tx); err != nil {
		return err
	}
	require.NoError(t, tx.Commit())
	return nil
}

func mustApply(t *testing.T, l *Ledger, now uint64, fn func(tx *Tx) error) {
	t.Helper()
	require.NoError(t, apply(t, l, now, fn))
}

func stake(who common.Address, v uint64) func(tx *Tx) error {
	return func(tx *Tx) error {
		return tx.Stake(who, who, amount(v))
	}
}

func cooldown(who common.Address) func(tx *Tx) error {
	return func(tx *Tx) error {
		return tx.Cooldown(who)
	}
}

func transfer(from, to common.Address, v uint64) func(tx *Tx) error {
	return func(tx *Tx) error {
		return tx.Transfer(from, to, amount(v))
	}
}

func redeem(who common.Address, v uint256.Int) func(tx *Tx) error {
	return func(tx *Tx) error {
		_, err := tx.Redeem(who, who, v)
		return err
	}
}

func claimAll(who common.Address) func(tx *Tx) error {
	return func(tx *Tx) error {
		_, err := tx.ClaimRewards(who, who, *MaxUint256)
		return err
	}
}
