package ledger

import (
	"fmt"

	"github.com/holiman/uint256"
)

// LatestRevision is the newest data revision this build knows how to reach.
const LatestRevision uint64 = 2

var ErrUnknownRevision = newError(KindValidation, "UNKNOWN_REVISION")

type migration func(tx *Tx) error

var migrations = map[uint64]migration{
	1: initializeV1,
	2: reconcileSupplyV2,
}

// initializeV1 starts the reward clock of the empty ledger.
func initializeV1(tx *Tx) error {
	tx.asset.LastUpdateTimestamp = tx.now
	tx.assetDirty = true
	return nil
}

// reconcileSupplyV2 verifies that the recorded total supply matches the sum
// of balances before the revision is bumped.
func reconcileSupplyV2(tx *Tx) error {
	var sum uint256.Int
	accumulate := func(balance uint256.Int) error {
		next, err := add(&sum, &balance)
		if err != nil {
			return err
		}
		sum = *next
		return nil
	}
	for addr, acc := range tx.l.state.Accounts {
		if _, ok := tx.accounts[addr]; ok {
			continue
		}
		if err := accumulate(acc.Balance); err != nil {
			return err
		}
	}
	for _, acc := range tx.accounts {
		if err := accumulate(acc.Balance); err != nil {
			return err
		}
	}
	if !sum.Eq(&tx.totalSupply) {
		return fmt.Errorf("total supply %s does not match sum of balances %s", tx.totalSupply.Dec(), sum.Dec())
	}
	return nil
}

// Initialize migrates the ledger data up to revision, running every pending
// migration step in order. Initializing an already reached revision fails.
func (tx *Tx) Initialize(revision uint64) error {
	if revision <= tx.revision {
		return ErrAlreadyInitialized
	}
	if revision > LatestRevision {
		return ErrUnknownRevision
	}
	for next := tx.revision + 1; next <= revision; next++ {
		if err := migrations[next](tx); err != nil {
			return fmt.Errorf("migration to revision %d failed: %w", next, err)
		}
		tx.revision = next
	}
	return nil
}
