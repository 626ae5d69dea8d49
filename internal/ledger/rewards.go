package ledger

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// NextAssetIndex returns the asset index at now given totalStaked tokens
// participating since the last update. Accrual stops at distributionEnd.
func NextAssetIndex(asset AssetData, totalStaked *uint256.Int, now, distributionEnd uint64) (uint256.Int, error) {
	index := asset.Index
	if asset.EmissionPerSecond.IsZero() ||
		totalStaked.IsZero() ||
		now <= asset.LastUpdateTimestamp ||
		asset.LastUpdateTimestamp >= distributionEnd {
		return index, nil
	}

	elapsed := minUint64(now, distributionEnd) - asset.LastUpdateTimestamp
	emitted, err := mul(&asset.EmissionPerSecond, uint256.NewInt(elapsed))
	if err != nil {
		return index, err
	}
	delta, err := mulDiv(emitted, Precision, totalStaked)
	if err != nil {
		return index, err
	}
	next, err := add(&index, delta)
	if err != nil {
		return index, err
	}
	return *next, nil
}

// AccruedRewards returns floor(balance * (assetIndex - userIndex) / 1e18).
func AccruedRewards(balance, assetIndex, userIndex *uint256.Int) (*uint256.Int, error) {
	if balance.IsZero() {
		return new(uint256.Int), nil
	}
	diff, err := sub(assetIndex, userIndex)
	if err != nil {
		return nil, err
	}
	return mulDiv(balance, diff, Precision)
}

// updateAssetIndex settles the asset index against the current total
// supply. It runs at most once per timestamp.
func (tx *Tx) updateAssetIndex() (*uint256.Int, error) {
	return tx.updateAssetIndexWith(&tx.totalSupply)
}

// updateAssetIndexWith settles the asset index as if totalStaked tokens had
// been staked since the last update.
func (tx *Tx) updateAssetIndexWith(totalStaked *uint256.Int) (*uint256.Int, error) {
	if tx.now <= tx.asset.LastUpdateTimestamp {
		return &tx.asset.Index, nil
	}

	next, err := NextAssetIndex(tx.asset, totalStaked, tx.now, tx.l.params.DistributionEnd)
	if err != nil {
		return nil, err
	}
	if !next.Eq(&tx.asset.Index) {
		tx.asset.Index = next
		tx.emit(AssetIndexUpdatedEvent{Asset: tx.l.params.Address, Index: next})
	}
	tx.asset.LastUpdateTimestamp = tx.now
	tx.assetDirty = true
	return &tx.asset.Index, nil
}

// settle credits rewards accrued by addr holding balance since its last
// checkpoint and moves the checkpoint to the current asset index.
func (tx *Tx) settle(addr common.Address, balance *uint256.Int) (*uint256.Int, error) {
	index, err := tx.updateAssetIndex()
	if err != nil {
		return nil, err
	}

	acc := tx.account(addr)
	if acc.RewardIndex.Eq(index) {
		return new(uint256.Int), nil
	}

	accrued, err := AccruedRewards(balance, index, &acc.RewardIndex)
	if err != nil {
		return nil, err
	}
	acc.RewardIndex = *index
	tx.emit(UserIndexUpdatedEvent{User: addr, Asset: tx.l.params.Address, Index: *index})

	if accrued.IsZero() {
		return accrued, nil
	}
	unclaimed, err := add(&acc.UnclaimedRewards, accrued)
	if err != nil {
		return nil, err
	}
	acc.UnclaimedRewards = *unclaimed
	tx.emit(RewardsAccruedEvent{User: addr, Amount: *accrued})
	return accrued, nil
}
